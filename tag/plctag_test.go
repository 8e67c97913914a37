package tag

import "testing"

func TestIsIORelevant(t *testing.T) {
	relevant := []Category{RackIO, IOModule, ENetDevice, BitComment}
	for _, c := range relevant {
		pt := &PLCTag{Category: c}
		if !pt.IsIORelevant() {
			t.Errorf("Category %v should be IO-relevant", c)
		}
	}

	notRelevant := []Category{ProgramCategory, AliasCategory, Uncategorized}
	for _, c := range notRelevant {
		pt := &PLCTag{Category: c}
		if pt.IsIORelevant() {
			t.Errorf("Category %v should not be IO-relevant", c)
		}
	}
}

func TestDescriptionKeyTrimsAndUppercases(t *testing.T) {
	pt := &PLCTag{Description: "  hlstl5a  "}
	if got := pt.DescriptionKey(); got != "HLSTL5A" {
		t.Errorf("DescriptionKey() = %q, want HLSTL5A", got)
	}
}

func TestPLCTagStringFallsBackToBaseName(t *testing.T) {
	pt := &PLCTag{Kind: TAG, BaseName: "TSV22"}
	if got := pt.String(); got != "TAG TSV22" {
		t.Errorf("String() = %q", got)
	}

	pt2 := &PLCTag{Kind: COMMENT, Name: "Rack0:I"}
	if got := pt2.String(); got != "COMMENT Rack0:I" {
		t.Errorf("String() = %q", got)
	}
}
