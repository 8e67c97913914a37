package cascade

import (
	"github.com/tbush33767/IOCrosscheck/config"
	"github.com/tbush33767/IOCrosscheck/index"
	"github.com/tbush33767/IOCrosscheck/normalize"
	"github.com/tbush33767/IOCrosscheck/tag"
)

// Run walks devices in input order, emits one MatchResult per device, then
// sweeps plcTags (also in input order) for unclaimed IO-relevant records.
// Both slices must already be classified: classify.IODevice and
// classify.PLCTag are the caller's responsibility, not this package's.
func Run(devices []*tag.IODevice, plcTags []*tag.PLCTag, idx *index.Index, cfg config.Config) []tag.MatchResult {
	results := make([]tag.MatchResult, 0, len(devices))
	for _, d := range devices {
		results = append(results, processDevice(d, idx, cfg))
	}
	results = append(results, sweep(plcTags, idx)...)
	return results
}

func processDevice(d *tag.IODevice, idx *index.Index, cfg config.Config) tag.MatchResult {
	if d.IsSpare {
		return tag.MatchResult{
			Classification: tag.Spare,
			Strategy:       tag.NoStrategy,
			Confidence:     tag.NoConfidence,
			Device:         d,
		}
	}

	var audit []tag.AuditEntry
	var fired bool
	classification := tag.IOListOnly
	confidence := tag.NoConfidence
	winner := tag.NoStrategy
	var plcRefs []*tag.PLCTag
	var conflict *tag.ConflictDetail

	for _, s := range ordered() {
		id := s.id()

		if fired {
			audit = append(audit, tag.AuditEntry{Strategy: id, Outcome: tag.Skipped, Note: "earlier success"})
			continue
		}
		if !s.applies(d) {
			audit = append(audit, tag.AuditEntry{Strategy: id, Outcome: tag.Skipped, Note: "does not apply"})
			continue
		}

		r := s.tryMatch(d, idx, cfg)
		audit = append(audit, tag.AuditEntry{
			Strategy: id, Outcome: r.outcome,
			KeyConsulted: r.keyConsulted, Evidence: r.evidence, Note: r.note,
		})

		if r.outcome == tag.Matched {
			fired = true
			classification = r.classification
			confidence = r.confidence
			winner = id
			plcRefs = r.plc
			conflict = r.conflict
			claim(id, d, r, idx)
		}
	}

	audit = append(audit, rackLayoutAnnotation(d, idx)...)

	return tag.MatchResult{
		Classification: classification,
		Strategy:       winner,
		Confidence:     confidence,
		Device:         d,
		PLC:            plcRefs,
		Conflict:       conflict,
		Audit:          audit,
	}
}

// claim applies spec.md §4.4's claim-marking rule for the strategy that
// just fired. Strategy 3 is the deliberate exception: it never adds its
// Rack-IO evidence to claimed, only records that the rack had a rack-level
// hit, for index.Index.RackClaimedAtSweep to weigh against a later direct
// hit in the same rack.
func claim(id tag.StrategyID, d *tag.IODevice, r result, idx *index.Index) {
	switch id {
	case tag.DirectCLXAddress:
		idx.Claim(r.plc...)
		if key, ok := normalize.CanonCLX(d.PLCAddress); ok {
			idx.MarkRackDirect(key.Parent())
		}
	case tag.RackLevelExistence:
		if key, ok := normalize.CanonCLX(d.PLCAddress); ok {
			idx.MarkRackLevelHit(key.Parent())
		}
	default:
		idx.Claim(r.plc...)
	}
}

// rackLayoutAnnotation is Strategy 6: a read-only check against the
// optional Rack Layout stream, consulted only after the loop above has
// already fixed (or failed to fix) a classification. It never changes
// classification, confidence or the winning strategy id (spec.md §9 Open
// Question resolution), so it runs unconditionally rather than inside the
// ordered() loop.
func rackLayoutAnnotation(d *tag.IODevice, idx *index.Index) []tag.AuditEntry {
	key := index.RackLayoutKey{Panel: d.Panel, Rack: d.Rack, Slot: d.Slot, Channel: d.Channel}
	expected, ok := idx.RackLayout[key]
	if !ok {
		return nil
	}

	actual := deviceDisplayName(d)
	if trimUpper(expected) == trimUpper(actual) {
		return []tag.AuditEntry{{
			Strategy: tag.RackLayout, Outcome: tag.Matched,
			KeyConsulted: expected, Note: "agrees with rack layout",
		}}
	}
	return []tag.AuditEntry{{
		Strategy: tag.RackLayout, Outcome: tag.Failed,
		KeyConsulted: expected,
		Note:         "rack layout expects device-tag " + expected + ", got " + actual,
	}}
}

// sweep implements the PLC-Only pass of spec.md §4.4: every IO-relevant
// PLCTag not claimed by the device loop above, in plcTags' input order.
func sweep(plcTags []*tag.PLCTag, idx *index.Index) []tag.MatchResult {
	var out []tag.MatchResult
	for _, t := range plcTags {
		if !t.IsIORelevant() {
			continue
		}
		if idx.Claimed(t) {
			continue
		}
		if t.Category == tag.RackIO {
			if rk, ok := normalize.ParseRackTag(t.Name); ok && idx.RackClaimedAtSweep(rk) {
				continue
			}
		}

		var audit []tag.AuditEntry
		if t.Category == tag.ENetDevice {
			audit = []tag.AuditEntry{{Note: "expected PLC-only (overload/VFD)"}}
		}

		out = append(out, tag.MatchResult{
			Classification: tag.PLCOnly,
			Strategy:       tag.NoStrategy,
			Confidence:     tag.NoConfidence,
			PLC:            []*tag.PLCTag{t},
			Audit:          audit,
		})
	}
	return out
}
