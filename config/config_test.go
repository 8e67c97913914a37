package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsImmediatelyUsable(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 1, cfg.Concurrency)
	assert.NotEmpty(t, cfg.ColonSuffixes)
	assert.NotEmpty(t, cfg.IOTypeSuffixes)
	assert.NotEmpty(t, cfg.ENetPrefixes)
	assert.True(t, cfg.IsProgramDatatype("DINT"))
	assert.True(t, cfg.IsProgramDatatype("dint"), "matching is case-insensitive")
	assert.False(t, cfg.IsProgramDatatype("MyCustomUDT"))
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFileIsConfigError(t *testing.T) {
	_, err := Load("/nonexistent/path/ioxcheck.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestResolveClampsNonPositiveConcurrency(t *testing.T) {
	cfg := Default()
	cfg.Concurrency = 0
	resolved, err := cfg.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, resolved.Concurrency, "zero concurrency resolves to sequential")

	cfg.Concurrency = -5
	resolved, err = cfg.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, resolved.Concurrency)
}

func TestResolveRejectsBlankListEntries(t *testing.T) {
	cfg := Default()
	cfg.ENetPrefixes = []string{"E300_", "   "}
	_, err := cfg.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blank")
}
