package iocrosscheck

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbush33767/IOCrosscheck/config"
	"github.com/tbush33767/IOCrosscheck/tag"
)

func sampleInput() Input {
	return Input{
		PLCTags: []*tag.PLCTag{
			{Kind: tag.COMMENT, Specifier: "Rack0:I.Data[5].7", Description: "HLSTL5A"},
			{Kind: tag.TAG, Name: "Rack0:I"},
			{Kind: tag.TAG, BaseName: "E300_P621", Datatype: "E300"},
			{Kind: tag.TAG, BaseName: "TSV22", Datatype: "DINT"},
			{Kind: tag.TAG, BaseName: "Unused1", Datatype: "DINT"},
		},
		IODevices: []*tag.IODevice{
			{PLCAddress: "Rack0:I.Data[5].7", DeviceTag: "HLSTL5A"},
			{PLCAddress: "Rack0:I.Data[9].2", DeviceTag: "RACK_ONLY_DEV"},
			{DeviceTag: "P621"},
			{DeviceTag: "TSV22_EV"},
			{Channel: "1"}, // spare: both tags empty, channel populated
			{DeviceTag: "ORPHAN_DEVICE"},
		},
	}
}

func TestRunProducesOneResultPerDevicePlusSweep(t *testing.T) {
	e := New(config.Default())
	out := e.Run(sampleInput())

	require.Len(t, out.Results, len(sampleInput().IODevices)+1, "6 device results + 1 PLC-Only result for Rack0:I, whose rack had a direct hit; TSV22 and Unused1 are Program tags and never surface")
}

func TestRunIsOrderedIOListThenSweep(t *testing.T) {
	e := New(config.Default())
	in := sampleInput()
	out := e.Run(in)

	for i, d := range in.IODevices {
		require.Same(t, d, out.Results[i].Device, "device results must appear in input order before the sweep")
	}
	for _, r := range out.Results[len(in.IODevices):] {
		assert.Nil(t, r.Device, "sweep results carry no Device")
		assert.Equal(t, tag.PLCOnly, r.Classification)
	}
}

func TestSequentialAndParallelRunsAgree(t *testing.T) {
	seqCfg := config.Default()
	seqCfg.Concurrency = 1
	parCfg := config.Default()
	parCfg.Concurrency = 4

	seq := New(seqCfg).Run(sampleInput()).Results
	par := New(parCfg).Run(sampleInput()).Results

	require.Len(t, seq, len(par))
	for i := range seq {
		if diff := cmp.Diff(seq[i].Classification, par[i].Classification); diff != "" {
			t.Errorf("classification mismatch at %d (-seq +par):\n%s", i, diff)
		}
		assert.Equal(t, seq[i].Strategy, par[i].Strategy, "index %d", i)
		assert.Equal(t, seq[i].Confidence, par[i].Confidence, "index %d", i)
	}
}

func TestRunIsIdempotentOnFreshInputsEachCall(t *testing.T) {
	e := New(config.Default())

	first := e.Run(sampleInput())
	second := e.Run(sampleInput())

	require.Len(t, first.Results, len(second.Results))
	for i := range first.Results {
		assert.Equal(t, first.Results[i].Classification, second.Results[i].Classification)
		assert.Equal(t, first.Results[i].Strategy, second.Results[i].Strategy)
	}
}

func TestSpareDeviceNeverReachesCascade(t *testing.T) {
	e := New(config.Default())
	out := e.Run(sampleInput())

	spareResult := out.Results[4]
	assert.Equal(t, tag.Spare, spareResult.Classification)
	assert.Equal(t, tag.NoStrategy, spareResult.Strategy)
}
