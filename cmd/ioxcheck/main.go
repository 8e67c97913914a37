// Command ioxcheck runs the deterministic PLC/IO-List reconciliation
// engine over two JSON documents and prints the resulting match summary
// and conflicts list as JSON. Input parsing of the real tag-export text
// file and IO List workbook is out of scope (spec.md §1); JSON here
// stands in for that excluded parser's output, shaped exactly like the
// PLCTag/IODevice streams spec.md §6 defines.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	iocrosscheck "github.com/tbush33767/IOCrosscheck"
	"github.com/tbush33767/IOCrosscheck/config"
	"github.com/tbush33767/IOCrosscheck/report"
	"github.com/tbush33767/IOCrosscheck/tag"
)

// CmdLog reports fatal errors: missing flags, bad configuration, unreadable
// input files, and a failure to write the JSON output.
var CmdLog = log.New(os.Stderr, filepath.Base(os.Args[0])+": ", 0)

var (
	plcTagsFlag    = flag.String("plc-tags", "", "Path to a JSON array of PLCTag records.")
	ioDevicesFlag  = flag.String("io-devices", "", "Path to a JSON array of IODevice rows.")
	rackLayoutFlag = flag.String("rack-layout", "", "Optional path to a JSON array of RackLayoutEntry rows.")
	configFlag     = flag.String("config", "", "Optional path to a YAML configuration override.")
	verboseFlag    = flag.Bool("v", false, "Log at debug level instead of info.")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	if *plcTagsFlag == "" || *ioDevicesFlag == "" {
		CmdLog.Fatal("-plc-tags and -io-devices are required")
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		CmdLog.Fatal(err)
	}

	plcTags := mustLoadPLCTags(*plcTagsFlag)
	ioDevices := mustLoadIODevices(*ioDevicesFlag)
	var rackLayout []tag.RackLayoutEntry
	if *rackLayoutFlag != "" {
		rackLayout = mustLoadRackLayout(*rackLayoutFlag)
	}

	zapCfg := zap.NewProductionConfig()
	if *verboseFlag {
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		CmdLog.Fatal(err)
	}
	defer logger.Sync()

	engine := iocrosscheck.New(cfg)
	engine.Log = logger

	out := engine.Run(iocrosscheck.Input{
		PLCTags:    plcTags,
		IODevices:  ioDevices,
		RackLayout: rackLayout,
	})

	for _, d := range out.Diagnostics {
		logger.Warn("input diagnostic", zap.String("source", d.Source.String()), zap.Error(d.Err))
	}

	summary := report.Summarize(out.Results)
	conflicts := report.Conflicts(out.Results)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Summary   report.Summary    `json:"summary"`
		Conflicts []tag.MatchResult `json:"conflicts"`
		Results   []tag.MatchResult `json:"results"`
	}{Summary: summary, Conflicts: conflicts, Results: out.Results}); err != nil {
		CmdLog.Fatal(err)
	}
}

func mustLoadPLCTags(path string) []*tag.PLCTag {
	var records []struct {
		RecordKind  string `json:"record-kind"`
		Scope       string `json:"scope"`
		Name        string `json:"name"`
		BaseName    string `json:"base-name"`
		Datatype    string `json:"datatype"`
		Description string `json:"description"`
		Specifier   string `json:"specifier"`
		SourceLine  int    `json:"source-line"`
	}
	mustLoadJSON(path, &records)

	out := make([]*tag.PLCTag, 0, len(records))
	for _, r := range records {
		out = append(out, &tag.PLCTag{
			Kind:        parseRecordKind(r.RecordKind),
			Scope:       r.Scope,
			Name:        r.Name,
			BaseName:    r.BaseName,
			Datatype:    r.Datatype,
			Description: r.Description,
			Specifier:   r.Specifier,
			SourceLine:  r.SourceLine,
		})
	}
	return out
}

func parseRecordKind(s string) tag.RecordKind {
	switch s {
	case "TAG":
		return tag.TAG
	case "COMMENT":
		return tag.COMMENT
	case "ALIAS":
		return tag.ALIAS
	case "RCOMMENT":
		return tag.RCOMMENT
	default:
		CmdLog.Fatalf("unknown record-kind %q", s)
		return 0
	}
}

func mustLoadIODevices(path string) []*tag.IODevice {
	var rows []struct {
		Panel      string `json:"panel"`
		Rack       string `json:"rack"`
		Group      string `json:"group"`
		Slot       string `json:"slot"`
		Channel    string `json:"channel"`
		PLCAddress string `json:"plc-address"`
		IOTag      string `json:"io-tag"`
		DeviceTag  string `json:"device-tag"`
		ModuleType string `json:"module-type"`
		Module     string `json:"module"`
		RangeLow   string `json:"range-low"`
		RangeHigh  string `json:"range-high"`
		Units      string `json:"units"`
		SourceRow  int    `json:"source-row"`
	}
	mustLoadJSON(path, &rows)

	out := make([]*tag.IODevice, 0, len(rows))
	for _, r := range rows {
		out = append(out, &tag.IODevice{
			Panel: r.Panel, Rack: r.Rack, Group: r.Group, Slot: r.Slot, Channel: r.Channel,
			PLCAddress: r.PLCAddress, IOTag: r.IOTag, DeviceTag: r.DeviceTag,
			ModuleType: r.ModuleType, Module: r.Module,
			RangeLow: r.RangeLow, RangeHigh: r.RangeHigh, Units: r.Units,
			SourceRow: r.SourceRow,
		})
	}
	return out
}

func mustLoadRackLayout(path string) []tag.RackLayoutEntry {
	var entries []tag.RackLayoutEntry
	mustLoadJSON(path, &entries)
	return entries
}

func mustLoadJSON(path string, v any) {
	data, err := os.ReadFile(path)
	if err != nil {
		CmdLog.Fatal(err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		CmdLog.Fatal(fmt.Errorf("%s: %w", path, err))
	}
}
