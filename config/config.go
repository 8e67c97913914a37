// Package config defines the immutable run configuration for the
// reconciliation engine: the Normalizer and Classifier tables named in
// spec.md §4.1/§4.2, plus the ambient knobs (concurrency, optional YAML
// override file) needed to run the engine outside of a test.
//
// A Config is read once at start and is immutable for the run, matching
// the teacher's session.TCPConfig: defaults fill every unspecified field,
// a blank list entry is reported as a ConfigError, and a non-positive
// Concurrency resolves to 1.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tbush33767/IOCrosscheck/diagnostics"
)

// Config holds the configuration surface from spec.md §6. Zero-value
// fields are filled with the defaults below by Resolve.
type Config struct {
	// ColonSuffixes are the trailing type-suffixes stripped from a raw
	// tag name before anything else. Matching is exact, case-insensitive.
	ColonSuffixes []string `yaml:"colonSuffixes"`

	// IOTypeSuffixes are the trailing suffixes stripped from a base name,
	// at most one per call. Matching is case-insensitive; the longest
	// matching suffix wins on ties.
	IOTypeSuffixes []string `yaml:"ioTypeSuffixes"`

	// ENetPrefixes mark a base name as an EtherNet/IP device tag.
	// Matching is case-insensitive on the prefix including its
	// underscore.
	ENetPrefixes []string `yaml:"enetPrefixes"`

	// ProgramDatatypes are the built-in datatypes that fall through to
	// Category Program when no earlier classifier rule matches.
	ProgramDatatypes []string `yaml:"programDatatypes"`

	// Concurrency bounds the worker pool used to evaluate independent IO
	// List rows (spec.md §5). 1 means sequential; 0 resolves to 1.
	Concurrency int `yaml:"concurrency"`
}

// Default returns the configuration spec.md §4.1/§4.2 describe when no
// override is supplied.
func Default() Config {
	return Config{
		ColonSuffixes: []string{":I", ":O", ":C", ":S", ":I1", ":O1"},
		IOTypeSuffixes: []string{
			"_EV", "_MC", "_AUX", "_ZSO", "_ZSC", "_Pulse", "_In", "_Input",
			"_Out", "_Old", "_Pos", "_FailedToClose", "_FailedToOpen",
			"_OnTimer", "_OffTimer", "_Monitor", "_Failed",
		},
		ENetPrefixes:     []string{"E300_", "VFD_", "IPDev_", "IPDEV_"},
		ProgramDatatypes: []string{"DINT", "INT", "SINT", "BOOL", "REAL", "TIMER", "COUNTER", "STRING"},
		Concurrency:      1,
	}
}

// Load reads an optional YAML override file and merges it onto Default.
// An empty path returns Default() unchanged. Any field left unset (nil
// slice, zero Concurrency) in the file keeps its default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, diagnostics.ConfigError{Msg: errors.Wrapf(err, "reading config %q", path).Error()}
	}

	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return Config{}, diagnostics.ConfigError{Msg: errors.Wrapf(err, "parsing config %q", path).Error()}
	}

	if override.ColonSuffixes != nil {
		cfg.ColonSuffixes = override.ColonSuffixes
	}
	if override.IOTypeSuffixes != nil {
		cfg.IOTypeSuffixes = override.IOTypeSuffixes
	}
	if override.ENetPrefixes != nil {
		cfg.ENetPrefixes = override.ENetPrefixes
	}
	if override.ProgramDatatypes != nil {
		cfg.ProgramDatatypes = override.ProgramDatatypes
	}
	if override.Concurrency != 0 {
		cfg.Concurrency = override.Concurrency
	}

	return cfg.resolve()
}

// resolve applies final defaulting and range checks. A panic-free
// counterpart of session.TCPConfig.check: a blank list entry in
// operator-supplied config is a ConfigError, not a crash; a non-positive
// Concurrency is set to 1 (sequential).
func (c Config) resolve() (Config, error) {
	if c.Concurrency <= 0 {
		c.Concurrency = 1
	}

	for _, list := range [][]string{c.ColonSuffixes, c.IOTypeSuffixes, c.ENetPrefixes, c.ProgramDatatypes} {
		for _, entry := range list {
			if strings.TrimSpace(entry) == "" {
				return Config{}, diagnostics.ConfigError{Msg: "configuration list entry is blank"}
			}
		}
	}

	return c, nil
}

// IsProgramDatatype reports whether datatype (compared case-insensitively)
// names one of the built-in program types.
func (c Config) IsProgramDatatype(datatype string) bool {
	for _, t := range c.ProgramDatatypes {
		if strings.EqualFold(t, datatype) {
			return true
		}
	}
	return false
}
