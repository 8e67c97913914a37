// Package index implements the read-only multi-way lookup built once from
// the classified PLCTag stream (spec.md §4.3). It is grounded in
// track.Head from the teacher's track package: a database derived once
// from a tagged record stream and queried by address, with no payload
// duplication — every list here holds *tag.PLCTag pointers into the
// caller-owned slice, never copies.
package index

import (
	"sync"

	"github.com/tbush33767/IOCrosscheck/normalize"
	"github.com/tbush33767/IOCrosscheck/tag"
)

// NameBucket groups the two kinds of hit a canonical tag name can have:
// TAG records carrying that base-name, and COMMENT records whose
// description canonicalizes to the same key. The cascade tells them apart
// (spec.md §4.4 Strategy 5).
type NameBucket struct {
	Tags     []*tag.PLCTag
	Comments []*tag.PLCTag
}

// RackLayoutKey locates one row of the optional Rack Layout stream.
type RackLayoutKey struct {
	Panel   string
	Rack    string
	Slot    string
	Channel string
}

// Index is read-only after New returns, with the sole exception of the
// claim-tracking state consulted and updated by the rule cascade.
type Index struct {
	ByCLXAddress    map[normalize.CLXKey][]*tag.PLCTag
	ByRackTag       map[normalize.RackKey][]*tag.PLCTag
	ByPLC5Tuple     map[normalize.PLC5Key][]*tag.PLCTag
	ByCanonicalName map[string]*NameBucket
	ByENetDevice    map[string][]*tag.PLCTag
	RackLayout      map[RackLayoutKey]string

	mu         sync.Mutex
	claimed    map[*tag.PLCTag]bool
	rackDirect map[normalize.RackKey]bool
	rackLevel  map[normalize.RackKey]bool
}

// Claimed reports whether t has already been consumed by a successful
// strategy. Safe for concurrent use.
func (idx *Index) Claimed(t *tag.PLCTag) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.claimed[t]
}

// Claim marks every tag in ts as consumed. Idempotent and safe for
// concurrent use, so the optional parallel cascade (spec.md §5) can call it
// from any worker without double-booking a tag.
func (idx *Index) Claim(ts ...*tag.PLCTag) {
	if len(ts) == 0 {
		return
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for _, t := range ts {
		if t != nil {
			idx.claimed[t] = true
		}
	}
}

// MarkRackDirect records that rk had a direct (non-rack-only) match — a
// Strategy 1 success at some CLX address inside this rack.
func (idx *Index) MarkRackDirect(rk normalize.RackKey) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.rackDirect[rk] = true
}

// MarkRackLevelHit records that rk was matched by at least one Strategy 3
// (Rack-Level TAG Existence) hit, without claiming the Rack-IO tag itself
// (spec.md §4.4: "Rack-IO parents are not claimed by Strategy 3 hits, one
// rack tag may cover many devices").
func (idx *Index) MarkRackLevelHit(rk normalize.RackKey) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.rackLevel[rk] = true
}

// RackClaimedAtSweep reports whether the Rack-IO parent tag for rk should
// be excluded from the PLC-Only sweep: it is claimed exactly when rk was
// matched by Strategy 3 at least once and never by a direct Strategy 1
// match (spec.md §4.4: "they are claimed only if no non-rack-only match
// exists for the rack by sweep time").
func (idx *Index) RackClaimedAtSweep(rk normalize.RackKey) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.rackLevel[rk] && !idx.rackDirect[rk]
}
