// Package iocrosscheck wires the Normalizer, Classifier, Index and Rule
// Cascade into the end-to-end reconciliation run described in spec.md §2.
// It owns none of those layers' internals, the way the teacher's root
// part5 package wires info and session into request/response semantics
// without owning either layer.
package iocrosscheck

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/tbush33767/IOCrosscheck/cascade"
	"github.com/tbush33767/IOCrosscheck/classify"
	"github.com/tbush33767/IOCrosscheck/config"
	"github.com/tbush33767/IOCrosscheck/diagnostics"
	"github.com/tbush33767/IOCrosscheck/index"
	"github.com/tbush33767/IOCrosscheck/tag"
)

// Input bundles the three upstream streams spec.md §6 names. RackLayout is
// optional; a nil or empty slice disables Strategy 6 entirely.
type Input struct {
	PLCTags    []*tag.PLCTag
	IODevices  []*tag.IODevice
	RackLayout []tag.RackLayoutEntry
}

// Output bundles the downstream artifacts spec.md §6 names.
type Output struct {
	Results     []tag.MatchResult
	Diagnostics []diagnostics.Entry
}

// Engine runs one reconciliation pass. The zero value is not usable;
// construct with New.
type Engine struct {
	Config config.Config
	Log    *zap.Logger
}

// New returns an Engine with cfg and a no-op logger. Callers that want
// operational logging set Log after construction, matching the teacher's
// pattern of leaving observability opt-in rather than baked into the
// constructor.
func New(cfg config.Config) *Engine {
	return &Engine{Config: cfg, Log: zap.NewNop()}
}

// Run executes the full pipeline: classify every PLCTag and IODevice,
// build the Index once, run the Rule Cascade, and return the MatchResult
// sequence in spec.md §3's order (IO List rows in input order, then
// PLC-Only sweep results in input order).
//
// Run never mutates in.PLCTags or in.IODevices beyond the Category/
// AddressFormat/IsSpare annotation fields the data model reserves for the
// Classifier.
func (e *Engine) Run(in Input) Output {
	start := time.Now()
	diag := &diagnostics.Stream{}

	for _, t := range in.PLCTags {
		classify.PLCTag(t, e.Config)
	}

	if e.Config.Concurrency <= 1 {
		for _, d := range in.IODevices {
			classify.IODevice(d)
		}
	} else {
		parallelEach(in.IODevices, e.Config.Concurrency, classify.IODevice)
	}

	idx := index.New(in.PLCTags, in.RackLayout, e.Config, diag)

	var results []tag.MatchResult
	if e.Config.Concurrency <= 1 {
		results = cascade.Run(in.IODevices, in.PLCTags, idx, e.Config)
	} else {
		results = e.runParallel(in.IODevices, in.PLCTags, idx)
	}

	e.Log.Info("reconciliation run complete",
		zap.Int("plc_tags", len(in.PLCTags)),
		zap.Int("io_devices", len(in.IODevices)),
		zap.Int("results", len(results)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return Output{Results: results, Diagnostics: diag.Entries()}
}

// runParallel evaluates each IODevice against the cascade concurrently,
// bounded by Config.Concurrency, and merges results back into input order
// with a pre-sized slice rather than a channel fan-in (spec.md §5: results
// must merge in input order regardless of completion order). The PLC-Only
// sweep runs last and single-threaded, since it depends on every device
// having already claimed its matches.
func (e *Engine) runParallel(devices []*tag.IODevice, plcTags []*tag.PLCTag, idx *index.Index) []tag.MatchResult {
	out := make([]tag.MatchResult, len(devices))

	sem := make(chan struct{}, e.Config.Concurrency)
	var wg sync.WaitGroup
	for i, d := range devices {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, d *tag.IODevice) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = cascade.Run([]*tag.IODevice{d}, nil, idx, e.Config)[0]
		}(i, d)
	}
	wg.Wait()

	out = append(out, cascade.Run(nil, plcTags, idx, e.Config)...)
	return out
}

// parallelEach applies f to every element of xs concurrently, bounded by
// width. Used only for Classifier calls, which touch no shared state.
func parallelEach[T any](xs []T, width int, f func(T)) {
	sem := make(chan struct{}, width)
	var wg sync.WaitGroup
	for _, x := range xs {
		wg.Add(1)
		sem <- struct{}{}
		go func(x T) {
			defer wg.Done()
			defer func() { <-sem }()
			f(x)
		}(x)
	}
	wg.Wait()
}
