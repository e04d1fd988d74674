package nmea

import (
	"testing"

	"github.com/ScottSyms/RustAISe/internal/domain"
)

func TestTagSingleSentenceLine(t *testing.T) {
	rec := &domain.Record{
		Sentence: `1672531200 \s:rORBCOMM000,q:u,c:1672531100*5A\!AIVDM,1,1,,B,14eG;oE01VsMDO0IS8L001OB0000,0*00`,
	}
	Tag(rec)

	if rec.LandfallTime != "1672531200" {
		t.Fatalf("landfall time = %q", rec.LandfallTime)
	}
	if rec.SatelliteAcquisitionTime != "1672531100" {
		t.Fatalf("satellite time = %q", rec.SatelliteAcquisitionTime)
	}
	if rec.Source != "rORBCOMM000" {
		t.Fatalf("source = %q", rec.Source)
	}
	if rec.Group != "" {
		t.Fatalf("group should be empty for a single sentence, got %q", rec.Group)
	}
	if rec.Channel != "B" {
		t.Fatalf("channel = %q", rec.Channel)
	}
	if rec.RawPayload != "14eG;oE01VsMDO0IS8L001OB0000" {
		t.Fatalf("payload = %q", rec.RawPayload)
	}
}

func TestTagGroupedLine(t *testing.T) {
	rec := &domain.Record{
		Sentence: `1667000100 \g:1-2-9001,s:SAT-7,c:1667000000*3B\!AIVDM,2,1,4,A,54eGNDh2<hSiH48?7;<5@h4q@T>0<598TE:2,0*1C`,
	}
	Tag(rec)

	if rec.Group != "1-2-9001" {
		t.Fatalf("group = %q", rec.Group)
	}
	if rec.Source != "SAT-7" {
		t.Fatalf("source = %q", rec.Source)
	}
	if rec.SatelliteAcquisitionTime != "1667000000" {
		t.Fatalf("satellite time = %q", rec.SatelliteAcquisitionTime)
	}
	if rec.Channel != "A" {
		t.Fatalf("channel = %q", rec.Channel)
	}
	if rec.RawPayload != "54eGNDh2<hSiH48?7;<5@h4q@T>0<598TE:2" {
		t.Fatalf("payload = %q", rec.RawPayload)
	}
}

func TestTagMissingTagsDefaultEmpty(t *testing.T) {
	rec := &domain.Record{Sentence: `!AIVDM,1,1,,A,B52MJh00=vgVg85q<`+ "`" + `0pD0000000,0*55`}
	Tag(rec)

	if rec.LandfallTime != "" {
		t.Fatalf("landfall time should be empty, got %q", rec.LandfallTime)
	}
	if rec.SatelliteAcquisitionTime != "" || rec.Source != "" || rec.Group != "" {
		t.Fatalf("tags should be empty: %+v", rec)
	}
	if rec.Channel != "A" || rec.RawPayload != "B52MJh00=vgVg85q<`0pD0000000" {
		t.Fatalf("channel/payload = %q/%q", rec.Channel, rec.RawPayload)
	}
}

func TestTagMalformedLineIsHarmless(t *testing.T) {
	rec := &domain.Record{Sentence: "VDM"}
	Tag(rec)

	if rec.Channel != "" || rec.RawPayload != "" {
		t.Fatalf("short line should not pick channel/payload: %+v", rec)
	}
	if rec.LandfallTime != "" || rec.Group != "" {
		t.Fatalf("short line should not pick tags: %+v", rec)
	}
}

func TestTagTwoFieldLine(t *testing.T) {
	rec := &domain.Record{Sentence: "AIVDM,x"}
	Tag(rec)
	if rec.Channel != "" || rec.RawPayload != "" {
		t.Fatalf("two-field line should leave channel/payload empty: %+v", rec)
	}
}

func TestTagLandfallStopsAtNonDigit(t *testing.T) {
	rec := &domain.Record{Sentence: `1615858032 \c:1615858022\!AIVDM,1,1,,A,payload,0*00`}
	Tag(rec)
	if rec.LandfallTime != "1615858032" {
		t.Fatalf("landfall time = %q", rec.LandfallTime)
	}
}

func TestTagSourceAllowsWordAndDash(t *testing.T) {
	rec := &domain.Record{Sentence: `\s:station_9-west,c:42\!AIVDM,1,1,,A,p,0*00`}
	Tag(rec)
	if rec.Source != "station_9-west" {
		t.Fatalf("source = %q", rec.Source)
	}
	if rec.SatelliteAcquisitionTime != "42" {
		t.Fatalf("satellite time = %q", rec.SatelliteAcquisitionTime)
	}
}
