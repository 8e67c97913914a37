// Package normalize implements the Normalizer from spec.md §4.1: pure
// transformations on tag names and addresses that produce canonical keys.
// Every function here is side-effect-free and idempotent; none of them
// perform I/O or guess at malformed input, matching spec.md's "the engine
// must not guess" rule for addresses.
package normalize

import "fmt"

// CLXKey is the canonical 4-tuple for a ControlLogix bit address:
// "Rack<N>:<D>.Data[<W>].<B>".
type CLXKey struct {
	Rack int
	Dir  byte // 'I' or 'O'
	Word int
	Bit  int
}

// String renders the canonical upper-case form, e.g. "RACK0:I.DATA[5].7".
func (k CLXKey) String() string {
	return fmt.Sprintf("RACK%d:%c.DATA[%d].%d", k.Rack, k.Dir, k.Word, k.Bit)
}

// Parent returns the rack-level key for this address's (N, D) pair.
func (k CLXKey) Parent() RackKey {
	return RackKey{Rack: k.Rack, Dir: k.Dir}
}

// RackKey is the canonical parent of a CLXKey: "Rack<N>:<D>".
type RackKey struct {
	Rack int
	Dir  byte // 'I' or 'O'
}

// String renders the canonical upper-case form, e.g. "RACK0:I".
func (k RackKey) String() string {
	return fmt.Sprintf("RACK%d:%c", k.Rack, k.Dir)
}

// PLC5Key is the canonical 5-tuple for a legacy rack-group-slot address:
// "Rack<N>_Group<G>_Slot<S>_IO.<RW>[<C>]".
type PLC5Key struct {
	Rack    int
	Group   int
	Slot    int
	RW      byte // 'R' for READ, 'W' for WRITE
	Channel int
}

// String renders the canonical upper-case form, e.g.
// "RACK0_GROUP0_SLOT0_IO.READ[14]".
func (k PLC5Key) String() string {
	rw := "READ"
	if k.RW == 'W' {
		rw = "WRITE"
	}
	return fmt.Sprintf("RACK%d_GROUP%d_SLOT%d_IO.%s[%d]", k.Rack, k.Group, k.Slot, rw, k.Channel)
}

// CanonCLX parses "Rack<N>:<D>.Data[<W>].<B>" case-insensitively and
// returns its canonical key. The second return is false for any other
// input, including trailing garbage.
func CanonCLX(raw string) (CLXKey, bool) {
	s, ok := expectToken(raw, "RACK")
	if !ok {
		return CLXKey{}, false
	}
	n, s, ok := takeDigits(s)
	if !ok {
		return CLXKey{}, false
	}
	s, ok = expectToken(s, ":")
	if !ok || len(s) == 0 {
		return CLXKey{}, false
	}
	var dir byte
	switch s[0] {
	case 'I', 'i':
		dir = 'I'
	case 'O', 'o':
		dir = 'O'
	default:
		return CLXKey{}, false
	}
	s = s[1:]
	s, ok = expectToken(s, ".DATA[")
	if !ok {
		return CLXKey{}, false
	}
	w, s, ok := takeDigits(s)
	if !ok {
		return CLXKey{}, false
	}
	s, ok = expectToken(s, "].")
	if !ok {
		return CLXKey{}, false
	}
	b, s, ok := takeDigits(s)
	if !ok || s != "" {
		return CLXKey{}, false
	}
	return CLXKey{Rack: n, Dir: dir, Word: w, Bit: b}, true
}

// ParseRackTag matches a tag name exactly against "Rack<N>:I" or
// "Rack<N>:O", case-insensitively, with no trailing content. This is the
// pattern the Classifier tests for Category RackIO (spec.md §4.2 rule 3);
// it is distinct from CanonCLX, which requires the full bit-address suffix.
func ParseRackTag(raw string) (RackKey, bool) {
	s, ok := expectToken(raw, "RACK")
	if !ok {
		return RackKey{}, false
	}
	n, s, ok := takeDigits(s)
	if !ok {
		return RackKey{}, false
	}
	s, ok = expectToken(s, ":")
	if !ok || len(s) != 1 {
		return RackKey{}, false
	}
	switch s[0] {
	case 'I', 'i':
		return RackKey{Rack: n, Dir: 'I'}, true
	case 'O', 'o':
		return RackKey{Rack: n, Dir: 'O'}, true
	default:
		return RackKey{}, false
	}
}

// CanonPLC5 parses "Rack<N>_Group<G>_Slot<S>_IO.<RW>[<C>]" case-
// insensitively, RW in {READ, WRITE}, and returns its canonical key. The
// second return is false for any other input, including trailing garbage.
func CanonPLC5(raw string) (PLC5Key, bool) {
	s, ok := expectToken(raw, "RACK")
	if !ok {
		return PLC5Key{}, false
	}
	n, s, ok := takeDigits(s)
	if !ok {
		return PLC5Key{}, false
	}
	s, ok = expectToken(s, "_GROUP")
	if !ok {
		return PLC5Key{}, false
	}
	g, s, ok := takeDigits(s)
	if !ok {
		return PLC5Key{}, false
	}
	s, ok = expectToken(s, "_SLOT")
	if !ok {
		return PLC5Key{}, false
	}
	sl, s, ok := takeDigits(s)
	if !ok {
		return PLC5Key{}, false
	}
	s, ok = expectToken(s, "_IO.")
	if !ok {
		return PLC5Key{}, false
	}

	var rw byte
	switch {
	case hasTokenPrefix(s, "READ"):
		rw = 'R'
		s = s[len("READ"):]
	case hasTokenPrefix(s, "WRITE"):
		rw = 'W'
		s = s[len("WRITE"):]
	default:
		return PLC5Key{}, false
	}

	s, ok = expectToken(s, "[")
	if !ok {
		return PLC5Key{}, false
	}
	c, s, ok := takeDigits(s)
	if !ok {
		return PLC5Key{}, false
	}
	s, ok = expectToken(s, "]")
	if !ok || s != "" {
		return PLC5Key{}, false
	}

	return PLC5Key{Rack: n, Group: g, Slot: sl, RW: rw, Channel: c}, true
}

func hasTokenPrefix(s, token string) bool {
	_, ok := expectToken(s, token)
	return ok
}

// Format tries CLX then PLC5 and reports which canonicalized, if either
// did. Callers that already know the expected family should call CanonCLX
// or CanonPLC5 directly instead.
type Format struct {
	CLX  CLXKey
	PLC5 PLC5Key
	Kind byte // 'C', 'P', or 0 for unknown
}

// CanonAddress classifies and canonicalizes a raw plc-address string. The
// engine never guesses: an address matching neither pattern returns a zero
// Format with Kind == 0.
func CanonAddress(raw string) Format {
	if k, ok := CanonCLX(raw); ok {
		return Format{CLX: k, Kind: 'C'}
	}
	if k, ok := CanonPLC5(raw); ok {
		return Format{PLC5: k, Kind: 'P'}
	}
	return Format{}
}
