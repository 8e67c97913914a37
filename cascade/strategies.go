package cascade

import (
	"github.com/tbush33767/IOCrosscheck/config"
	"github.com/tbush33767/IOCrosscheck/index"
	"github.com/tbush33767/IOCrosscheck/normalize"
	"github.com/tbush33767/IOCrosscheck/tag"
)

// directCLX is Strategy 1: spec.md §4.4 "Direct CLX Address Match".
type directCLX struct{}

func (directCLX) id() tag.StrategyID { return tag.DirectCLXAddress }

func (directCLX) applies(d *tag.IODevice) bool { return d.AddressFormat == tag.CLX }

func (directCLX) tryMatch(d *tag.IODevice, idx *index.Index, _ config.Config) result {
	key, ok := normalize.CanonCLX(d.PLCAddress)
	if !ok {
		invariantViolation(d.PLCAddress, "CLX")
	}
	keyStr := key.String()

	hits := idx.ByCLXAddress[key]
	switch len(hits) {
	case 0:
		return failed(keyStr, "no Bit-Comment record at address")

	case 1:
		h := hits[0]
		desc := h.DescriptionKey()
		if desc == "" {
			return result{
				outcome: tag.Matched, classification: tag.Both, confidence: tag.Partial,
				plc: hits, evidence: h, keyConsulted: keyStr, note: "description-absent",
			}
		}
		devName, _ := normalizedDeviceName(d)
		if desc == devName || desc == trimUpper(d.IOTag) {
			return result{
				outcome: tag.Matched, classification: tag.Both, confidence: tag.Exact,
				plc: hits, evidence: h, keyConsulted: keyStr,
			}
		}
		return result{
			outcome: tag.Matched, classification: tag.Conflict, confidence: tag.Exact,
			plc: hits, evidence: h, keyConsulted: keyStr,
			conflict: &tag.ConflictDetail{
				DeviceName: deviceDisplayName(d),
				PLCName:    h.Description,
				Address:    keyStr,
				PLCTags:    hits,
			},
		}

	default:
		return result{
			outcome: tag.Matched, classification: tag.Conflict, confidence: tag.Exact,
			plc: hits, evidence: hits[0], keyConsulted: keyStr,
			conflict: &tag.ConflictDetail{
				DeviceName: deviceDisplayName(d),
				PLCName:    hits[0].Description,
				Address:    keyStr,
				PLCTags:    hits,
			},
			note: "multiple Bit-Comment records at address",
		}
	}
}

// plc5Rack is Strategy 2: spec.md §4.4 "PLC5 Rack Address Match".
type plc5Rack struct{}

func (plc5Rack) id() tag.StrategyID { return tag.PLC5RackAddress }

func (plc5Rack) applies(d *tag.IODevice) bool { return d.AddressFormat == tag.PLC5 }

func (plc5Rack) tryMatch(d *tag.IODevice, idx *index.Index, _ config.Config) result {
	key, ok := normalize.CanonPLC5(d.PLCAddress)
	if !ok {
		invariantViolation(d.PLCAddress, "PLC5")
	}
	keyStr := key.String()
	hits := idx.ByPLC5Tuple[key]
	if len(hits) == 0 {
		return failed(keyStr, "no TAG record at address")
	}
	return result{
		outcome: tag.Matched, classification: tag.Both, confidence: tag.Exact,
		plc: hits, evidence: hits[0], keyConsulted: keyStr,
	}
}

// rackLevelExistence is Strategy 3: spec.md §4.4 "Rack-Level TAG
// Existence". Run only reaches this strategy when Strategy 1 produced no
// hit (its outcome was Failed, not Matched), so applies need only check
// address-format.
type rackLevelExistence struct{}

func (rackLevelExistence) id() tag.StrategyID { return tag.RackLevelExistence }

func (rackLevelExistence) applies(d *tag.IODevice) bool { return d.AddressFormat == tag.CLX }

func (rackLevelExistence) tryMatch(d *tag.IODevice, idx *index.Index, _ config.Config) result {
	key, ok := normalize.CanonCLX(d.PLCAddress)
	if !ok {
		invariantViolation(d.PLCAddress, "CLX")
	}
	rk := key.Parent()
	rackHits := idx.ByRackTag[rk]
	if len(rackHits) == 0 {
		return failed(rk.String(), "no Rack-IO tag for parent rack")
	}
	return result{
		outcome: tag.Matched, classification: tag.BothRackOnly, confidence: tag.Partial,
		plc: rackHits, evidence: rackHits[0], keyConsulted: rk.String(),
	}
}

// enetExtraction is Strategy 4: spec.md §4.4 "ENet Module Extraction". It
// applies unconditionally: an Unknown-format device bypasses Strategies
// 1-3 entirely and starts here, and a CLX/PLC5 device that reached this
// point already failed its earlier strategies.
type enetExtraction struct{}

func (enetExtraction) id() tag.StrategyID { return tag.ENetExtraction }

func (enetExtraction) applies(*tag.IODevice) bool { return true }

func (enetExtraction) tryMatch(d *tag.IODevice, idx *index.Index, cfg config.Config) result {
	name, _ := normalizedDeviceName(d)
	if name == "" {
		return failed("", "device-tag and io-tag both empty")
	}
	key := normalize.CanonTagName(name, cfg)
	if key == "" {
		return failed("", "device-tag/io-tag empty after normalization")
	}
	hits := idx.ByENetDevice[key]
	if len(hits) == 0 {
		return failed(key, "no ENet-Device tag for extracted identifier")
	}
	return result{
		outcome: tag.Matched, classification: tag.Both, confidence: tag.Exact,
		plc: hits, evidence: hits[0], keyConsulted: key,
	}
}

// tagNameNorm is Strategy 5: spec.md §4.4 "Tag Name Normalization".
type tagNameNorm struct{}

func (tagNameNorm) id() tag.StrategyID { return tag.TagNameNorm }

func (tagNameNorm) applies(*tag.IODevice) bool { return true }

func (tagNameNorm) tryMatch(d *tag.IODevice, idx *index.Index, cfg config.Config) result {
	devKey := normalize.CanonTagName(d.DeviceTag, cfg)
	ioKey := normalize.CanonTagName(d.IOTag, cfg)
	if devKey == "" && ioKey == "" {
		return failed("", "device-tag and io-tag both empty after normalization")
	}

	if devKey != "" {
		if r, ok := lookupCanonicalName(idx, devKey); ok {
			return r
		}
	}
	if ioKey != "" && ioKey != devKey {
		if r, ok := lookupCanonicalName(idx, ioKey); ok {
			return r
		}
	}

	key := devKey
	if key == "" {
		key = ioKey
	}
	return failed(key, "no TAG or COMMENT-description hit for canonical name")
}

func lookupCanonicalName(idx *index.Index, key string) (result, bool) {
	bucket, ok := idx.ByCanonicalName[key]
	if !ok {
		return result{}, false
	}
	if len(bucket.Tags) > 0 {
		return result{
			outcome: tag.Matched, classification: tag.Both, confidence: tag.High,
			plc: bucket.Tags, evidence: bucket.Tags[0], keyConsulted: key,
		}, true
	}
	if len(bucket.Comments) > 0 {
		return result{
			outcome: tag.Matched, classification: tag.Both, confidence: tag.High,
			plc: bucket.Comments, evidence: bucket.Comments[0], keyConsulted: key,
			note: "matched via COMMENT description, not a TAG name",
		}, true
	}
	return result{}, false
}
