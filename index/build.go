package index

import (
	"strings"

	"github.com/tbush33767/IOCrosscheck/config"
	"github.com/tbush33767/IOCrosscheck/diagnostics"
	"github.com/tbush33767/IOCrosscheck/normalize"
	"github.com/tbush33767/IOCrosscheck/tag"
)

// New builds an Index from an already-classified PLCTag stream, in one
// pass, preserving input order within every list (spec.md §4.3: "Iteration
// order of any list is input order, for determinism"). Malformed records
// that cannot contribute to any lookup are reported to diag as
// InputShapeError and otherwise skipped; they are not fatal.
func New(tags []*tag.PLCTag, rackLayout []tag.RackLayoutEntry, cfg config.Config, diag *diagnostics.Stream) *Index {
	idx := &Index{
		ByCLXAddress:    make(map[normalize.CLXKey][]*tag.PLCTag),
		ByRackTag:       make(map[normalize.RackKey][]*tag.PLCTag),
		ByPLC5Tuple:     make(map[normalize.PLC5Key][]*tag.PLCTag),
		ByCanonicalName: make(map[string]*NameBucket),
		ByENetDevice:    make(map[string][]*tag.PLCTag),
		RackLayout:      make(map[RackLayoutKey]string),
		claimed:         make(map[*tag.PLCTag]bool),
		rackDirect:      make(map[normalize.RackKey]bool),
		rackLevel:       make(map[normalize.RackKey]bool),
	}

	bucket := func(key string) *NameBucket {
		b, ok := idx.ByCanonicalName[key]
		if !ok {
			b = &NameBucket{}
			idx.ByCanonicalName[key] = b
		}
		return b
	}

	for _, t := range tags {
		switch t.Category {
		case tag.BitComment:
			key, ok := normalize.CanonCLX(t.Specifier)
			if !ok {
				if diag != nil {
					src := diagnostics.SourceRef{Kind: t.Kind.String(), Line: t.SourceLine}
					diag.Add(diagnostics.InputShapeError{
						Source: src,
						Msg:    "Bit-Comment specifier does not canonicalize as a CLX address",
					}, src)
				}
				continue
			}
			idx.ByCLXAddress[key] = append(idx.ByCLXAddress[key], t)

			if nameKey := normalize.CanonTagName(t.Description, cfg); nameKey != "" {
				bucket(nameKey).Comments = append(bucket(nameKey).Comments, t)
			}

		case tag.RackIO:
			if rk, ok := normalize.ParseRackTag(t.Name); ok {
				idx.ByRackTag[rk] = append(idx.ByRackTag[rk], t)
			}

		case tag.ENetDevice:
			if id, ok := normalize.ENetDeviceID(t.BaseName, cfg); ok {
				key := strings.ToUpper(id)
				idx.ByENetDevice[key] = append(idx.ByENetDevice[key], t)
			}

		case tag.IOModule:
			// IO-Module tags participate in by_canonical_name like any
			// other TAG record; see the common branch below.
		}

		if t.Kind == tag.TAG {
			if key, ok := normalize.CanonPLC5(t.Name); ok {
				idx.ByPLC5Tuple[key] = append(idx.ByPLC5Tuple[key], t)
			}
			if nameKey := normalize.CanonTagName(t.BaseName, cfg); nameKey != "" {
				bucket(nameKey).Tags = append(bucket(nameKey).Tags, t)
			}
		}
	}

	for _, e := range rackLayout {
		idx.RackLayout[RackLayoutKey{Panel: e.Panel, Rack: e.Rack, Slot: e.Slot, Channel: e.Channel}] = e.DeviceTag
	}

	return idx
}
