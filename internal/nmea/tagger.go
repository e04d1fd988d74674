// Package nmea extracts routing metadata from raw AIS sentence lines.
package nmea

import (
	"regexp"
	"strings"

	"github.com/ScottSyms/RustAISe/internal/domain"
)

// Marker identifies a line as a carrier of AIS payload data. Lines without
// it are discarded before tagging.
const Marker = "VDM"

var (
	landfallRe = regexp.MustCompile(`^(\d+)`)
	satTimeRe  = regexp.MustCompile(`c:(\d+)`)
	sourceRe   = regexp.MustCompile(`s:([-\w]+)`)
	groupRe    = regexp.MustCompile(`g:([-\d]+)`)
)

// Tag fills the transport metadata fields of rec from rec.Sentence: the
// landfall timestamp (leading digits), the satellite acquisition time (c:),
// the source (s:), the multi-sentence group (g:), and the channel and
// armored payload taken as the 3rd- and 2nd-from-last comma fields. Missing
// pieces stay empty; a malformed line is never an error.
func Tag(rec *domain.Record) {
	fields := strings.Split(rec.Sentence, ",")
	if n := len(fields); n >= 3 {
		rec.Channel = fields[n-3]
		rec.RawPayload = fields[n-2]
	}

	rec.LandfallTime = capture(landfallRe, rec.Sentence)
	rec.Group = capture(groupRe, rec.Sentence)
	rec.SatelliteAcquisitionTime = capture(satTimeRe, rec.Sentence)
	rec.Source = capture(sourceRe, rec.Sentence)
}

func capture(re *regexp.Regexp, s string) string {
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}
