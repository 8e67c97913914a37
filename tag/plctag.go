package tag

import "strings"

// PLCTag is one record emitted by the upstream tag-export parser for a TAG,
// COMMENT, ALIAS or RCOMMENT line. Category starts as Uncategorized and is
// written exactly once, by the Classifier; every other field is set at
// parse time and never changes.
type PLCTag struct {
	Kind RecordKind

	Scope string // controller or program name
	Name  string // raw identifier, may carry a colon-suffix

	// BaseName is Name with a recognized colon-suffix already stripped by
	// the upstream parser. When the parser does not distinguish the two,
	// BaseName may equal Name; normalize.CanonTagName strips it again.
	BaseName string

	Datatype    string // may begin with "AB:" or "EH:" for module definitions
	Description string // free text, possibly empty
	Specifier   string // for COMMENT records: the bit/word/channel path

	SourceLine int // 1-based line number in the tag-export file

	Category Category
}

// String renders a short identity for logs and diagnostics.
func (t *PLCTag) String() string {
	name := t.Name
	if name == "" {
		name = t.BaseName
	}
	return t.Kind.String() + " " + name
}

// IsIORelevant reports whether the tag's category participates in the
// PLC-only sweep (spec §4.4). Program and Alias tags never do.
func (t *PLCTag) IsIORelevant() bool {
	switch t.Category {
	case RackIO, IOModule, ENetDevice, BitComment:
		return true
	default:
		return false
	}
}

// trimmedUpper is the comparison form used throughout the cascade: trim
// surrounding whitespace, then upper-case.
func trimmedUpper(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// DescriptionKey returns the trimmed, upper-cased description, used to
// compare a Bit-Comment's description against a device's io-tag/device-tag.
func (t *PLCTag) DescriptionKey() string {
	return trimmedUpper(t.Description)
}
