package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tbush33767/IOCrosscheck/config"
	"github.com/tbush33767/IOCrosscheck/tag"
)

func TestPLCTagCascade(t *testing.T) {
	cfg := config.Default()

	golden := []struct {
		name string
		in   tag.PLCTag
		want tag.Category
	}{
		{
			name: "alias",
			in:   tag.PLCTag{Kind: tag.ALIAS},
			want: tag.AliasCategory,
		},
		{
			name: "bit comment",
			in:   tag.PLCTag{Kind: tag.COMMENT, Specifier: "Rack11:I.DATA[3].13"},
			want: tag.BitComment,
		},
		{
			name: "comment with unparseable specifier falls through to program",
			in:   tag.PLCTag{Kind: tag.COMMENT, Specifier: "not an address"},
			want: tag.ProgramCategory,
		},
		{
			name: "rack io",
			in:   tag.PLCTag{Kind: tag.TAG, Name: "Rack0:I"},
			want: tag.RackIO,
		},
		{
			name: "io module AB prefix",
			in:   tag.PLCTag{Kind: tag.TAG, Name: "Chassis1", Datatype: "AB:1756_IF16:I:0"},
			want: tag.IOModule,
		},
		{
			name: "io module EH prefix",
			in:   tag.PLCTag{Kind: tag.TAG, Datatype: "EH:Something"},
			want: tag.IOModule,
		},
		{
			name: "enet device",
			in:   tag.PLCTag{Kind: tag.TAG, BaseName: "E300_P621", Datatype: "E300"},
			want: tag.ENetDevice,
		},
		{
			name: "program known datatype",
			in:   tag.PLCTag{Kind: tag.TAG, BaseName: "Counter1", Datatype: "DINT"},
			want: tag.ProgramCategory,
		},
		{
			name: "program unknown datatype falls through rule 7",
			in:   tag.PLCTag{Kind: tag.TAG, BaseName: "Widget", Datatype: "MyCustomUDT"},
			want: tag.ProgramCategory,
		},
	}

	for _, g := range golden {
		tg := g.in
		PLCTag(&tg, cfg)
		assert.Equal(t, g.want, tg.Category, g.name)
	}
}

func TestPLCTagCategoryPriorityOverENetPrefix(t *testing.T) {
	cfg := config.Default()
	// A Rack-IO name always wins over a module/ENet check, since rule 3
	// precedes rules 4 and 5.
	tg := tag.PLCTag{Kind: tag.TAG, Name: "Rack0:I", BaseName: "E300_Rack0"}
	PLCTag(&tg, cfg)
	assert.Equal(t, tag.RackIO, tg.Category)
}

func TestIsUnknownDatatype(t *testing.T) {
	cfg := config.Default()
	assert.False(t, IsUnknownDatatype("DINT", cfg))
	assert.False(t, IsUnknownDatatype("bool", cfg))
	assert.True(t, IsUnknownDatatype("MyCustomUDT", cfg))
}

func TestIODeviceSpareDetection(t *testing.T) {
	golden := []struct {
		name string
		in   tag.IODevice
		want bool
	}{
		{"io-tag spare", tag.IODevice{IOTag: "  spare  ", Channel: "3"}, true},
		{"device-tag spare", tag.IODevice{DeviceTag: "SPARE", Channel: "3"}, true},
		{"both empty with channel", tag.IODevice{Channel: "3"}, true},
		{"both empty without channel", tag.IODevice{}, false},
		{"populated device", tag.IODevice{DeviceTag: "HLSTL5A", Channel: "3"}, false},
	}
	for _, g := range golden {
		d := g.in
		IODevice(&d)
		assert.Equal(t, g.want, d.IsSpare, g.name)
	}
}

func TestIODeviceAddressFormat(t *testing.T) {
	golden := []struct {
		addr string
		want tag.AddressFormat
	}{
		{"Rack0:I.Data[5].7", tag.CLX},
		{"Rack0_Group0_Slot0_IO.READ[14]", tag.PLC5},
		{"garbage", tag.UnknownFormat},
		{"", tag.UnknownFormat},
	}
	for _, g := range golden {
		d := tag.IODevice{PLCAddress: g.addr}
		IODevice(&d)
		assert.Equal(t, g.want, d.AddressFormat, g.addr)
	}
}
