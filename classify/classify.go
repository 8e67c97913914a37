// Package classify implements the Classifier from spec.md §4.2: it writes
// PLCTag.Category exactly once per tag and derives IODevice.AddressFormat
// and IODevice.IsSpare. Nothing here performs I/O or mutates anything but
// the two annotation fields the data model reserves for it.
package classify

import (
	"strings"

	"github.com/tbush33767/IOCrosscheck/config"
	"github.com/tbush33767/IOCrosscheck/normalize"
	"github.com/tbush33767/IOCrosscheck/tag"
)

// PLCTag assigns t.Category by the first-match-wins cascade of spec.md
// §4.2. Calling it more than once on the same tag is harmless but wasted:
// the data model promises Category is written exactly once.
func PLCTag(t *tag.PLCTag, cfg config.Config) {
	switch {
	case t.Kind == tag.ALIAS:
		t.Category = tag.AliasCategory

	case t.Kind == tag.COMMENT && isBitComment(t.Specifier):
		t.Category = tag.BitComment

	case t.Kind == tag.TAG && isRackIO(t.Name):
		t.Category = tag.RackIO

	case t.Kind == tag.TAG && hasModulePrefix(t.Datatype):
		t.Category = tag.IOModule

	case t.Kind == tag.TAG && hasENetPrefix(t.BaseName, cfg):
		t.Category = tag.ENetDevice

	default:
		// Rules 6 and 7 of spec.md §4.2 both land on Program; rule 7 is a
		// fallback for a datatype the program-datatype table doesn't name.
		// Category carries no note field, so the two are not distinguished
		// here; IsUnknownDatatype reports the rule 7 case, and no audit note
		// or diagnostic is recorded for it by the engine.
		t.Category = tag.ProgramCategory
	}
}

func isBitComment(specifier string) bool {
	_, ok := normalize.CanonCLX(specifier)
	return ok
}

func isRackIO(name string) bool {
	_, ok := normalize.ParseRackTag(name)
	return ok
}

func hasModulePrefix(datatype string) bool {
	return hasFold(datatype, "AB:") || hasFold(datatype, "EH:")
}

func hasFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func hasENetPrefix(baseName string, cfg config.Config) bool {
	_, ok := normalize.ENetDeviceID(baseName, cfg)
	return ok
}

// IsUnknownDatatype reports whether datatype falls through classifier rule
// 7 rather than matching the program-datatype table of rule 6 — the
// "unknown datatype" case spec.md §4.2 says must be surfaced via audit
// note. It is meaningful only for a tag already categorized Program.
func IsUnknownDatatype(datatype string, cfg config.Config) bool {
	return !cfg.IsProgramDatatype(datatype)
}

// IODevice fills d.AddressFormat and d.IsSpare from the raw fields the
// upstream parser supplied. Neither field is consulted before this call
// returns; both are written exactly once.
func IODevice(d *tag.IODevice) {
	d.AddressFormat = addressFormatOf(d.PLCAddress)
	d.IsSpare = isSpare(d)
}

func addressFormatOf(raw string) tag.AddressFormat {
	switch normalize.CanonAddress(raw).Kind {
	case 'C':
		return tag.CLX
	case 'P':
		return tag.PLC5
	default:
		return tag.UnknownFormat
	}
}

// isSpare implements spec.md §4.2's spare-detection rule: io-tag or
// device-tag trimmed-and-upper-cased equals SPARE, or both are empty
// while the row otherwise names a channel position.
func isSpare(d *tag.IODevice) bool {
	io := trimmedUpper(d.IOTag)
	dev := trimmedUpper(d.DeviceTag)
	if io == "SPARE" || dev == "SPARE" {
		return true
	}
	return io == "" && dev == "" && hasChannelPosition(d)
}

func hasChannelPosition(d *tag.IODevice) bool {
	return strings.TrimSpace(d.Channel) != ""
}

func trimmedUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
