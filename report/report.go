// Package report implements the downstream aggregations spec.md §6 names
// but leaves unshaped: a counts-per-classification/coverage summary and a
// conflicts list, both computed purely from a []tag.MatchResult with no
// new state. Rendering to spreadsheet or document formats is excluded per
// spec.md §1; this package stops at in-memory data shaping.
package report

import "github.com/tbush33767/IOCrosscheck/tag"

// Summary aggregates a MatchResult sequence into the counts and coverage
// ratios spec.md §6 lists as a downstream output.
type Summary struct {
	Counts map[tag.Classification]int

	// TotalByPanel and MatchedByPanel key on IODevice.Panel; ratio of the
	// two is panel coverage. Results with a nil Device (PLCOnly) do not
	// contribute to either map.
	TotalByPanel   map[string]int
	MatchedByPanel map[string]int

	// TotalByRack and MatchedByRack key on IODevice.Rack, same convention.
	TotalByRack   map[string]int
	MatchedByRack map[string]int
}

// Summarize computes a Summary from results. It never mutates results.
func Summarize(results []tag.MatchResult) Summary {
	s := Summary{
		Counts:         make(map[tag.Classification]int),
		TotalByPanel:   make(map[string]int),
		MatchedByPanel: make(map[string]int),
		TotalByRack:    make(map[string]int),
		MatchedByRack:  make(map[string]int),
	}

	for _, r := range results {
		s.Counts[r.Classification]++

		if r.Device == nil {
			continue
		}

		s.TotalByPanel[r.Device.Panel]++
		s.TotalByRack[r.Device.Rack]++

		if isMatched(r.Classification) {
			s.MatchedByPanel[r.Device.Panel]++
			s.MatchedByRack[r.Device.Rack]++
		}
	}

	return s
}

func isMatched(c tag.Classification) bool {
	switch c {
	case tag.Both, tag.BothRackOnly:
		return true
	default:
		return false
	}
}

// PanelCoverage returns the matched/total ratio for panel, or 0 if the
// panel has no associated devices.
func (s Summary) PanelCoverage(panel string) float64 {
	return ratio(s.MatchedByPanel[panel], s.TotalByPanel[panel])
}

// RackCoverage returns the matched/total ratio for rack, or 0 if the rack
// has no associated devices.
func (s Summary) RackCoverage(rack string) float64 {
	return ratio(s.MatchedByRack[rack], s.TotalByRack[rack])
}

func ratio(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}

// Conflicts filters results down to the Conflict classification, in input
// order.
func Conflicts(results []tag.MatchResult) []tag.MatchResult {
	var out []tag.MatchResult
	for _, r := range results {
		if r.Classification == tag.Conflict {
			out = append(out, r)
		}
	}
	return out
}
