package tag

import "testing"

func TestRecordKindString(t *testing.T) {
	cases := map[RecordKind]string{
		TAG:      "TAG",
		COMMENT:  "COMMENT",
		ALIAS:    "ALIAS",
		RCOMMENT: "RCOMMENT",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
	if got := RecordKind(0).String(); got != "RecordKind(0)" {
		t.Errorf("zero value String() = %q, want RecordKind(0)", got)
	}
}

func TestCategoryString(t *testing.T) {
	cases := map[Category]string{
		IOModule:        "IO-Module",
		RackIO:          "Rack-IO",
		ENetDevice:      "ENet-Device",
		AliasCategory:   "Alias",
		ProgramCategory: "Program",
		BitComment:      "Bit-Comment",
		Uncategorized:   "Uncategorized",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", c, got, want)
		}
	}
}

func TestAddressFormatString(t *testing.T) {
	if CLX.String() != "CLX" {
		t.Errorf("CLX.String() = %q", CLX.String())
	}
	if PLC5.String() != "PLC5" {
		t.Errorf("PLC5.String() = %q", PLC5.String())
	}
	if UnknownFormat.String() != "Unknown" {
		t.Errorf("UnknownFormat.String() = %q", UnknownFormat.String())
	}
}

func TestClassificationStringCoversAllSix(t *testing.T) {
	cases := map[Classification]string{
		Both:         "Both",
		BothRackOnly: "BothRackOnly",
		IOListOnly:   "IOListOnly",
		PLCOnly:      "PLCOnly",
		Conflict:     "Conflict",
		Spare:        "Spare",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", c, got, want)
		}
	}
	if got := NoClassification.String(); got != "<none>" {
		t.Errorf("NoClassification.String() = %q", got)
	}
}

func TestConfidenceOrdering(t *testing.T) {
	if !(NoConfidence < Supporting && Supporting < Partial && Partial < High && High < Exact) {
		t.Fatal("Confidence constants must be ordered None < Supporting < Partial < High < Exact")
	}
}
