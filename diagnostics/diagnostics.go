// Package diagnostics implements the error taxonomy from spec.md §7:
// per-record failures that never abort a run, and the two error kinds that
// do (ConfigError before any record is processed, InternalInvariantError
// for a violated invariant in §3).
package diagnostics

import "fmt"

// InputShapeError reports a record malformed beyond recovery, e.g. a
// COMMENT with no specifier. The offending record is skipped; the run
// continues.
type InputShapeError struct {
	Source SourceRef
	Msg    string
}

// Error implements the builtin error interface.
func (e InputShapeError) Error() string {
	return fmt.Sprintf("ioxcheck: %s: %s", e.Source, e.Msg)
}

// AmbiguityError is never returned as an error. It documents, per the
// taxonomy in spec.md §7, that ambiguity at matching time surfaces as a
// Classification == Conflict MatchResult rather than as a Go error; human
// review via the conflicts report is the recovery path.
type AmbiguityError struct {
	Source SourceRef
	Msg    string
}

// Error implements the builtin error interface, for callers that log
// AmbiguityError values alongside genuine errors.
func (e AmbiguityError) Error() string {
	return fmt.Sprintf("ioxcheck: %s: ambiguous: %s", e.Source, e.Msg)
}

// ConfigError signals invalid configuration at startup. It is fatal before
// any record is processed.
type ConfigError struct {
	Msg string
}

// Error implements the builtin error interface.
func (e ConfigError) Error() string {
	return "ioxcheck: configuration: " + e.Msg
}

// InternalInvariantError signals a violation of one of the invariants in
// spec.md §3. It is a bug: the engine fails loudly with this value rather
// than emit a partial result. Callers that detect one should panic with it,
// matching session.TCPConfig.check's panic-on-out-of-range precedent.
type InternalInvariantError struct {
	Msg string
}

// Error implements the builtin error interface.
func (e InternalInvariantError) Error() string {
	return "ioxcheck: internal invariant violated: " + e.Msg
}

// SourceRef locates the record a diagnostic refers to, independent of
// whether the record survived far enough to get a stable handle.
type SourceRef struct {
	Kind string // "TAG", "COMMENT", "ALIAS", "RCOMMENT", or "IODevice"
	Line int    // source line (PLC tag export) or row (IO List), 1-based
}

// String renders a compact locator, e.g. "COMMENT:142".
func (r SourceRef) String() string {
	return fmt.Sprintf("%s:%d", r.Kind, r.Line)
}
