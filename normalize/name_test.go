package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tbush33767/IOCrosscheck/config"
)

func TestCanonTagName(t *testing.T) {
	cfg := config.Default()

	golden := []struct {
		raw  string
		want string
	}{
		{"  TSV22_EV  ", "TSV22"},
		{"tsv22", "TSV22"},
		{"HLSTL5A", "HLSTL5A"},
		{"LT611", "LT611"},
		{"LT6110", "LT6110"},
		{"LT6110_Monitor", "LT6110"},
		{"FT656B_Pulse", "FT656B"},
		{"Rack0:I", "RACK0"}, // colon-suffix stripped, not an IO-type suffix
	}
	for _, g := range golden {
		assert.Equal(t, g.want, CanonTagName(g.raw, cfg), g.raw)
	}
}

func TestCanonTagNameIdempotent(t *testing.T) {
	cfg := config.Default()
	for _, raw := range []string{"TSV22_EV", "LT6110_Monitor", "HLSTL5A", ""} {
		once := CanonTagName(raw, cfg)
		twice := CanonTagName(once, cfg)
		assert.Equal(t, once, twice, raw)
	}
}

func TestCanonTagNameNeverCollidesOnSubstring(t *testing.T) {
	cfg := config.Default()
	assert.NotEqual(t, CanonTagName("LT611", cfg), CanonTagName("LT6110", cfg))
}

func TestStripLongestSuffixPicksLongerMatch(t *testing.T) {
	got := stripLongestSuffix("FOO_IN", []string{"N", "_In", "_Pulse"})
	assert.Equal(t, "FOO", got)
}

func TestENetDeviceID(t *testing.T) {
	cfg := config.Default()

	golden := []struct {
		base string
		want string
	}{
		{"E300_P621", "P621"},
		{"e300_p621", "p621"},
		{"VFD_M102", "M102"},
		{"IPDev_Scanner1", "Scanner1"},
	}
	for _, g := range golden {
		got, ok := ENetDeviceID(g.base, cfg)
		assert.True(t, ok, g.base)
		assert.Equal(t, g.want, got, g.base)
	}

	_, ok := ENetDeviceID("DINT_TAG", cfg)
	assert.False(t, ok)
}
