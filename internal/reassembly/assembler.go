// Package reassembly merges two-part AIS sentence groups back into complete
// payloads.
package reassembly

import (
	"github.com/ScottSyms/RustAISe/internal/decode"
	"github.com/ScottSyms/RustAISe/internal/domain"
)

// Assembler correlates multi-sentence fragments by group identifier. It owns
// three caches keyed by group: armored payloads, satellite acquisition times
// and sources. The caches have no locking; an Assembler must be driven by a
// single goroutine.
//
// Fragments whose partner never arrives stay cached for the life of the
// Assembler. There is no eviction: this is an accepted memory-growth
// property under truncated or malformed input.
type Assembler struct {
	payloads map[string]string
	satTimes map[string]string
	sources  map[string]string
}

func New() *Assembler {
	return &Assembler{
		payloads: make(map[string]string),
		satTimes: make(map[string]string),
		sources:  make(map[string]string),
	}
}

// Add caches one multiline fragment and, when its arrival completes a
// two-part group, returns the decoded record built from the concatenated
// payload. Completion removes the group's entries from all three caches in
// the same step; the satellite time and source are taken from the part-1
// entry and default to empty when missing.
//
// Groups are matched through canonical "1-2-" and "2-2-" keys derived from
// the last four characters of the group tag. Every multi-part message is
// assumed to have exactly two parts; groups announcing any other part count
// never complete.
func (a *Assembler) Add(rec *domain.Record) (*domain.Record, bool) {
	a.payloads[rec.Group] = rec.RawPayload
	if rec.SatelliteAcquisitionTime != "" {
		a.satTimes[rec.Group] = rec.SatelliteAcquisitionTime
	}
	if rec.Source != "" {
		a.sources[rec.Group] = rec.Source
	}

	suffix := lastFour(rec.Group)
	part1 := "1-2-" + suffix
	part2 := "2-2-" + suffix

	first, ok1 := a.payloads[part1]
	second, ok2 := a.payloads[part2]
	if !ok1 || !ok2 {
		return nil, false
	}

	rec.RawPayload = first + second
	rec.SatelliteAcquisitionTime = a.satTimes[part1]
	rec.Source = a.sources[part1]

	delete(a.payloads, part1)
	delete(a.payloads, part2)
	delete(a.satTimes, part1)
	delete(a.satTimes, part2)
	delete(a.sources, part1)
	delete(a.sources, part2)

	decode.Decode(rec)
	return rec, true
}

// Pending reports how many fragment payloads are currently cached without a
// completing partner.
func (a *Assembler) Pending() int {
	return len(a.payloads)
}

// lastFour returns the last four characters of the group tag, or the empty
// string for tags of three characters or fewer. A short tag therefore
// derives canonical keys that match nothing and can never complete.
func lastFour(group string) string {
	if len(group) > 3 {
		return group[len(group)-4:]
	}
	return ""
}
