package tag

import "testing"

func TestIODeviceStringPrefersDeviceTag(t *testing.T) {
	d := &IODevice{SourceRow: 7, DeviceTag: "HLSTL5A", IOTag: "fallback"}
	if got := d.String(); got != "row 7 HLSTL5A" {
		t.Errorf("String() = %q", got)
	}
}

func TestIODeviceStringFallsBackToIOTag(t *testing.T) {
	d := &IODevice{SourceRow: 3, IOTag: "SPARE"}
	if got := d.String(); got != "row 3 SPARE" {
		t.Errorf("String() = %q", got)
	}
}
