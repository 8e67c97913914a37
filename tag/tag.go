// Package tag holds the data model shared by every stage of the
// reconciliation engine: the PLC tag-export records, the IO List rows, the
// per-row match result and its audit trail. PLCTag and IODevice values are
// produced once by the excluded parser components and are never mutated
// afterwards, except for the Category, AddressFormat and IsSpare annotations
// written by the Classifier.
package tag

import "fmt"

// RecordKind distinguishes the four line types the tag-export parser
// produces. The zero value is not a valid kind.
type RecordKind uint8

const (
	_ RecordKind = iota
	TAG
	COMMENT
	ALIAS
	RCOMMENT
)

// String returns the upper-case token, matching the exported line format.
func (k RecordKind) String() string {
	switch k {
	case TAG:
		return "TAG"
	case COMMENT:
		return "COMMENT"
	case ALIAS:
		return "ALIAS"
	case RCOMMENT:
		return "RCOMMENT"
	default:
		return fmt.Sprintf("RecordKind(%d)", uint8(k))
	}
}

// Category is the Classifier's verdict for a PLCTag. The zero value,
// Uncategorized, marks a tag the Classifier has not yet seen.
type Category uint8

const (
	Uncategorized Category = iota
	IOModule
	RackIO
	ENetDevice
	AliasCategory
	ProgramCategory
	BitComment
)

// String returns the label used in audit notes and diagnostics.
func (c Category) String() string {
	switch c {
	case IOModule:
		return "IO-Module"
	case RackIO:
		return "Rack-IO"
	case ENetDevice:
		return "ENet-Device"
	case AliasCategory:
		return "Alias"
	case ProgramCategory:
		return "Program"
	case BitComment:
		return "Bit-Comment"
	default:
		return "Uncategorized"
	}
}

// AddressFormat names the addressing family an IODevice's plc-address
// parses as. Neither the tag-export nor the IO List parser supplies this
// directly; it is derived once from the raw address string.
type AddressFormat uint8

const (
	UnknownFormat AddressFormat = iota
	CLX
	PLC5
)

// String returns the label used in audit notes.
func (f AddressFormat) String() string {
	switch f {
	case CLX:
		return "CLX"
	case PLC5:
		return "PLC5"
	default:
		return "Unknown"
	}
}

// Classification is one of the six terminal, exhaustive, disjoint outcomes
// of the rule cascade.
type Classification uint8

const (
	NoClassification Classification = iota
	Both
	BothRackOnly
	IOListOnly
	PLCOnly
	Conflict
	Spare
)

// String returns the label used in reports and diagnostics.
func (c Classification) String() string {
	switch c {
	case Both:
		return "Both"
	case BothRackOnly:
		return "BothRackOnly"
	case IOListOnly:
		return "IOListOnly"
	case PLCOnly:
		return "PLCOnly"
	case Conflict:
		return "Conflict"
	case Spare:
		return "Spare"
	default:
		return "<none>"
	}
}

// Confidence grades how strongly the winning strategy justifies its
// classification. None means no strategy fired.
type Confidence uint8

const (
	NoConfidence Confidence = iota
	Supporting
	Partial
	High
	Exact
)

// String returns the label used in reports and diagnostics.
func (c Confidence) String() string {
	switch c {
	case Exact:
		return "Exact"
	case High:
		return "High"
	case Partial:
		return "Partial"
	case Supporting:
		return "Supporting"
	default:
		return "None"
	}
}
