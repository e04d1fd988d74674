package decode

import (
	"testing"

	"github.com/ScottSyms/RustAISe/internal/domain"
)

// Payloads below are synthetic but bit-exact for the deployed layouts.

func TestDecodeClassAPosition(t *testing.T) {
	rec := &domain.Record{RawPayload: "14eG;oE01VsMDO0IS8L001OB0000"}
	Decode(rec)

	if rec.MessageType != 1 {
		t.Fatalf("message type = %d, want 1", rec.MessageType)
	}
	if rec.MMSI != "316001245" {
		t.Fatalf("mmsi = %q, want 316001245", rec.MMSI)
	}
	if rec.Latitude != 44.65 {
		t.Fatalf("latitude = %v, want 44.65", rec.Latitude)
	}
	if rec.Longitude != -63.5 {
		t.Fatalf("longitude = %v, want -63.5", rec.Longitude)
	}
	if rec.NavigationStatus != "5" {
		t.Fatalf("navigation status = %q, want 5", rec.NavigationStatus)
	}
	if rec.SpeedOverGround != "102" {
		t.Fatalf("speed = %q, want 102", rec.SpeedOverGround)
	}
	if rec.PositionAccuracy != "1" {
		t.Fatalf("accuracy = %q, want 1", rec.PositionAccuracy)
	}
	// The deployed 27-bit course width is intentional; a 12-bit read of the
	// same payload would give a different value.
	if rec.CourseOverGround != "3049" {
		t.Fatalf("course = %q, want 3049", rec.CourseOverGround)
	}
}

func TestDecodeStaticVoyageData(t *testing.T) {
	rec := &domain.Record{
		RawPayload:               "54eGNDh2<hSiH48?7;<5@h4q@T>0<598TE:22216000001bPNA20C2APF888888888888800",
		SatelliteAcquisitionTime: "1667000000",
	}
	Decode(rec)

	if rec.MessageType != 5 {
		t.Fatalf("message type = %d, want 5", rec.MessageType)
	}
	if rec.MMSI != "316005971" {
		t.Fatalf("mmsi = %q, want 316005971", rec.MMSI)
	}
	if rec.IMO != "9224764" {
		t.Fatalf("imo = %q, want 9224764", rec.IMO)
	}
	if rec.CallSign != "VABC123" {
		t.Fatalf("call sign = %q, want VABC123", rec.CallSign)
	}
	if rec.Name != "ATLANTIC CARRIER" {
		t.Fatalf("name = %q, want ATLANTIC CARRIER", rec.Name)
	}
	if rec.ShipType != "70" {
		t.Fatalf("ship type = %q, want 70", rec.ShipType)
	}
	if rec.Destination != "HALIFAX" {
		t.Fatalf("destination = %q, want HALIFAX", rec.Destination)
	}
	if rec.Draught != "68" {
		t.Fatalf("draught = %q, want 68", rec.Draught)
	}
	// month=6, day=21, hour reads the day offset (deployed behavior),
	// minute=30; year borrowed from the acquisition time.
	if rec.ETA != "1684962200" {
		t.Fatalf("eta = %q, want 1684962200", rec.ETA)
	}
}

func TestDecodeStaticVoyageDataWithoutAcquisitionTime(t *testing.T) {
	rec := &domain.Record{
		RawPayload: "54eGNDh2<hSiH48?7;<5@h4q@T>0<598TE:22216000001bPNA20C2APF888888888888800",
	}
	Decode(rec)

	// Year term drops to zero: 6*2678400 + 21*86400 + 21*3600 + 30*60.
	if rec.ETA != "17962200" {
		t.Fatalf("eta = %q, want 17962200", rec.ETA)
	}
}

func TestDecodeClassBPosition(t *testing.T) {
	rec := &domain.Record{RawPayload: "B52MJh00=vgVg85q<`0pD0000000"}
	Decode(rec)

	if rec.MessageType != 18 {
		t.Fatalf("message type = %d, want 18", rec.MessageType)
	}
	if rec.MMSI != "338123456" {
		t.Fatalf("mmsi = %q, want 338123456", rec.MMSI)
	}
	if rec.Longitude != -70.25 {
		t.Fatalf("longitude = %v, want -70.25", rec.Longitude)
	}
	if rec.Latitude != 41.2 {
		t.Fatalf("latitude = %v, want 41.2", rec.Latitude)
	}
	if rec.SpeedOverGround != "55" {
		t.Fatalf("speed = %q, want 55", rec.SpeedOverGround)
	}
	if rec.CourseOverGround != "901" {
		t.Fatalf("course = %q, want 901", rec.CourseOverGround)
	}
	if rec.PositionAccuracy != "1" {
		t.Fatalf("accuracy = %q, want 1", rec.PositionAccuracy)
	}
	if rec.NavigationStatus != "" {
		t.Fatalf("navigation status should stay empty for type 18, got %q", rec.NavigationStatus)
	}
}

func TestDecodeClassBExtended(t *testing.T) {
	rec := &domain.Record{RawPayload: "C5Mwuah0C@000000001hP000V:30f2`6A11111111110B0000000"}
	Decode(rec)

	if rec.MessageType != 19 {
		t.Fatalf("message type = %d, want 19", rec.MessageType)
	}
	if rec.MMSI != "367000999" {
		t.Fatalf("mmsi = %q, want 367000999", rec.MMSI)
	}
	if rec.SpeedOverGround != "77" {
		t.Fatalf("speed = %q, want 77", rec.SpeedOverGround)
	}
	if rec.CourseOverGround != "1800" {
		t.Fatalf("course = %q, want 1800", rec.CourseOverGround)
	}
	if rec.Name != "SEA WATCH" {
		t.Fatalf("name = %q, want SEA WATCH", rec.Name)
	}
	if rec.ShipType != "36" {
		t.Fatalf("ship type = %q, want 36", rec.ShipType)
	}
	// Type 19 never reads a position in the deployed layout.
	if rec.Latitude != 0 || rec.Longitude != 0 {
		t.Fatalf("type 19 should not populate position, got %v/%v", rec.Latitude, rec.Longitude)
	}
}

func TestDecodeUnknownTypeKeepsDefaults(t *testing.T) {
	// 'I' armors to 25, a type this decoder does not handle.
	rec := &domain.Record{RawPayload: "I0000000", Channel: "B", LandfallTime: "1672531200"}
	Decode(rec)

	if rec.MessageType != 25 {
		t.Fatalf("message type = %d, want 25", rec.MessageType)
	}
	if rec.MMSI != "" || rec.Name != "" || rec.Latitude != 0 || rec.Longitude != 0 {
		t.Fatalf("unknown type must leave message fields at defaults: %+v", rec)
	}
	if rec.Channel != "B" || rec.LandfallTime != "1672531200" {
		t.Fatalf("header fields must survive decoding: %+v", rec)
	}
}

func TestDecodeEmptyPayload(t *testing.T) {
	rec := &domain.Record{}
	Decode(rec)
	if rec.MessageType != 0 {
		t.Fatalf("empty payload should decode as type 0, got %d", rec.MessageType)
	}
}

func TestDecodeTruncatedPayloadReadsZeros(t *testing.T) {
	// A type-1 payload cut after the MMSI: every later field reads zero.
	rec := &domain.Record{RawPayload: "14eG;o"}
	Decode(rec)
	if rec.MessageType != 1 {
		t.Fatalf("message type = %d, want 1", rec.MessageType)
	}
	if rec.Latitude != 0 || rec.Longitude != 0 {
		t.Fatalf("truncated reads should be zero, got %v/%v", rec.Latitude, rec.Longitude)
	}
	if rec.CourseOverGround != "0" || rec.SpeedOverGround != "0" {
		t.Fatalf("truncated reads should stringify as 0: %+v", rec)
	}
}
