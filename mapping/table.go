// Package mapping converts SNES controller snapshots into PlayStation
// button frames through a fixed set of translation tables.
package mapping

import (
	"github.com/gamebridge/snes2psx/psx"
	"github.com/gamebridge/snes2psx/snes"
)

// Entry routes one source button to one destination bit and optionally
// to one pressure channel of the extended frame.
type Entry struct {
	Source  snes.Snapshot
	Dest    uint16
	Channel psx.AnalogChannel
}

// MarshalYAML renders an entry with button names instead of bit values.
func (e Entry) MarshalYAML() (any, error) {
	out := map[string]string{
		"snes": snes.ButtonName(e.Source),
		"psx":  psx.ButtonName(e.Dest),
	}
	if e.Channel != psx.AnalogNone {
		out["analog"] = psx.ChannelName(e.Channel)
	}
	return out, nil
}

// Table is one complete translation preset. Tables are package-level
// constants in presets.go and are never mutated.
type Table struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

// Translate maps a snapshot through the table. The mask starts all
// released (0xFFFF, active low) and the pressure bytes all 0xFF; each
// pressed source clears its destination bit and, when the entry has a
// channel, drives that pressure byte to 0x00. Digital buttons have no
// real pressure, so full on or full off is the whole range. Total over
// any snapshot, including all-released from an unplugged pad.
func (t Table) Translate(snap snes.Snapshot) psx.Frame {
	f := psx.Frame{Mask: 0xFFFF}
	for i := range f.Analog {
		f.Analog[i] = 0xFF
	}
	for _, e := range t.Entries {
		if !snap.Pressed(e.Source) {
			continue
		}
		f.Mask &^= e.Dest
		if e.Channel != psx.AnalogNone {
			f.Analog[e.Channel] = 0x00
		}
	}
	return f
}
