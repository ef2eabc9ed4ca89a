package adapter

import (
	"github.com/gamebridge/snes2psx/mapping"
	"github.com/gamebridge/snes2psx/psx"
	"github.com/gamebridge/snes2psx/snes"
)

// selectMask covers the buttons that pick a mapping table at power on.
const selectMask = snes.ButtonStart | snes.ButtonSelect |
	snes.ButtonA | snes.ButtonB | snes.ButtonX | snes.ButtonY | snes.ButtonL

// SelectMode resolves the one-shot power-on configuration from the boot
// snapshot. Exactly one held selector button picks its table; none, or
// several at once, falls back to the first table. Holding Up at boot
// additionally enables the DualShock 2 identity, independent of the
// table choice. Reconfiguration needs a power cycle, the result is
// never re-evaluated.
func SelectMode(boot snes.Snapshot) (mapping.Table, psx.Identity) {
	table := mapping.Table1
	switch boot & selectMask {
	case snes.ButtonStart:
		table = mapping.Table1
	case snes.ButtonSelect:
		table = mapping.Table2
	case snes.ButtonA:
		table = mapping.Table3
	case snes.ButtonB:
		table = mapping.Table4
	case snes.ButtonX:
		table = mapping.Table5
	case snes.ButtonY:
		table = mapping.Table6
	case snes.ButtonL:
		table = mapping.Table7
	}

	identity := psx.IdentityDigital
	if boot.Pressed(snes.ButtonUp) {
		identity = psx.IdentityDualShock2
	}
	return table, identity
}
