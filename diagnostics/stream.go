package diagnostics

import "sync"

// Entry pairs a per-record error with the source it came from.
type Entry struct {
	Err    error
	Source SourceRef
}

// Stream is an append-only, concurrency-safe collector of per-record
// diagnostics. The zero value is ready to use.
type Stream struct {
	mu      sync.Mutex
	entries []Entry
}

// Add appends one diagnostic entry. Safe for concurrent use, so the
// parallel cascade path (spec.md §5) can report from any worker.
func (s *Stream) Add(err error, src SourceRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Entry{Err: err, Source: src})
}

// Entries returns a snapshot copy, in the order entries were added.
func (s *Stream) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports the number of collected entries.
func (s *Stream) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
