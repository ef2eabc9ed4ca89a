package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gamebridge/snes2psx/adapter"
	"github.com/gamebridge/snes2psx/mapping"
	"github.com/gamebridge/snes2psx/psx"
	"github.com/gamebridge/snes2psx/snes"
)

func TestSelectMode(t *testing.T) {
	tests := []struct {
		name     string
		boot     snes.Snapshot
		table    mapping.Table
		identity psx.Identity
	}{
		{"nothing held", 0, mapping.Table1, psx.IdentityDigital},
		{"start", snes.ButtonStart, mapping.Table1, psx.IdentityDigital},
		{"select", snes.ButtonSelect, mapping.Table2, psx.IdentityDigital},
		{"a", snes.ButtonA, mapping.Table3, psx.IdentityDigital},
		{"b", snes.ButtonB, mapping.Table4, psx.IdentityDigital},
		{"x", snes.ButtonX, mapping.Table5, psx.IdentityDigital},
		{"y", snes.ButtonY, mapping.Table6, psx.IdentityDigital},
		{"l", snes.ButtonL, mapping.Table7, psx.IdentityDigital},
		{"up alone", snes.ButtonUp, mapping.Table1, psx.IdentityDualShock2},
		{"up and start", snes.ButtonUp | snes.ButtonStart, mapping.Table1, psx.IdentityDualShock2},
		{"up and select", snes.ButtonUp | snes.ButtonSelect, mapping.Table2, psx.IdentityDualShock2},
		// Several selector buttons at once is ambiguous and falls back.
		{"start and select", snes.ButtonStart | snes.ButtonSelect, mapping.Table1, psx.IdentityDigital},
		{"a and b", snes.ButtonA | snes.ButtonB, mapping.Table1, psx.IdentityDigital},
		// Non-selector buttons play no part in the table choice.
		{"r only", snes.ButtonR, mapping.Table1, psx.IdentityDigital},
		{"down and y", snes.ButtonDown | snes.ButtonY, mapping.Table6, psx.IdentityDigital},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, identity := adapter.SelectMode(tt.boot)
			assert.Equal(t, tt.table.Name, table.Name)
			assert.Equal(t, tt.identity, identity)
		})
	}
}
