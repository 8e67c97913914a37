// Package cascade implements the Rule Cascade and the Conflict Detector /
// Audit Builder from spec.md §4.4-§4.5: an ordered, fixed set of strategy
// objects sharing one capability set, exactly the "dynamic dispatch"
// design note in spec.md §9, grounded in the teacher's delegate.go/
// monitor.go pattern of dispatching on a closed, ordered set of handlers.
package cascade

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/tbush33767/IOCrosscheck/config"
	"github.com/tbush33767/IOCrosscheck/diagnostics"
	"github.com/tbush33767/IOCrosscheck/index"
	"github.com/tbush33767/IOCrosscheck/tag"
)

func trimUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// invariantViolation panics with a diagnostics.InternalInvariantError
// wrapped for a cause chain, for the case a strategy's applies() already
// guaranteed address-format CLX/PLC5 yet the same address fails to
// re-canonicalize: Classifier and cascade disagreeing about a device's
// address family is a bug, not a malformed-input case (spec.md §7).
func invariantViolation(raw, family string) {
	cause := errors.Errorf("plc-address %q does not canonicalize as %s despite matching address-format", raw, family)
	panic(diagnostics.InternalInvariantError{Msg: errors.WithMessage(cause, "cascade").Error()})
}

// strategy is the shared capability set spec.md §9 calls for: applies
// decides whether a strategy is even consulted for a device; tryMatch
// does the consulting. The set is closed and ordered; see ordered() below.
type strategy interface {
	id() tag.StrategyID
	applies(d *tag.IODevice) bool
	tryMatch(d *tag.IODevice, idx *index.Index, cfg config.Config) result
}

// result is a strategy's verdict before it becomes an AuditEntry. outcome
// is always Matched or Failed; Skipped entries are synthesized by Run
// itself, never by a strategy.
type result struct {
	outcome        tag.Outcome
	classification tag.Classification
	confidence     tag.Confidence
	plc            []*tag.PLCTag
	conflict       *tag.ConflictDetail
	keyConsulted   string
	evidence       *tag.PLCTag
	note           string
}

func failed(key, note string) result {
	return result{outcome: tag.Failed, keyConsulted: key, note: note}
}

// ordered returns Strategies 1-5 in priority order. Strategy 6 (Rack
// Layout) is not in this list: spec.md §4.4 and §9 treat it as a
// supporting annotation applied after a classification is already fixed,
// never a cascade participant that can itself fire or stop the cascade.
func ordered() []strategy {
	return []strategy{
		directCLX{},
		plc5Rack{},
		rackLevelExistence{},
		enetExtraction{},
		tagNameNorm{},
	}
}

// normalizedDeviceName implements the "trimmed, upper-cased" comparison
// form spec.md §4.4 Strategy 1 uses for device-tag/io-tag, distinct from
// normalize.CanonTagName's suffix-stripping: the device-tag/io-tag as
// presented on the IO List is already the identifier to compare, not a
// base name to reduce further.
func normalizedDeviceName(d *tag.IODevice) (name string, fallback bool) {
	if t := trimUpper(d.DeviceTag); t != "" {
		return t, false
	}
	return trimUpper(d.IOTag), true
}

func deviceDisplayName(d *tag.IODevice) string {
	if d.DeviceTag != "" {
		return d.DeviceTag
	}
	return d.IOTag
}
