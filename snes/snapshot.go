// Package snes models the controller side of the bridge: the 16-bit
// button snapshot and the latch/clock/data sampling protocol used to
// read it from real hardware.
package snes

import "strings"

// Snapshot is one normalized poll of a SNES controller. A set bit means
// the button is pressed. The serial protocol shifts bits out MSB first;
// the last four positions are reserved and always read back released.
type Snapshot uint16

const (
	ButtonB      Snapshot = 0x8000
	ButtonY      Snapshot = 0x4000
	ButtonSelect Snapshot = 0x2000
	ButtonStart  Snapshot = 0x1000
	ButtonUp     Snapshot = 0x0800
	ButtonDown   Snapshot = 0x0400
	ButtonLeft   Snapshot = 0x0200
	ButtonRight  Snapshot = 0x0100
	ButtonA      Snapshot = 0x0080
	ButtonX      Snapshot = 0x0040
	ButtonL      Snapshot = 0x0020
	ButtonR      Snapshot = 0x0010
)

// Buttons lists every real button in wire order.
var Buttons = []Snapshot{
	ButtonB, ButtonY, ButtonSelect, ButtonStart,
	ButtonUp, ButtonDown, ButtonLeft, ButtonRight,
	ButtonA, ButtonX, ButtonL, ButtonR,
}

var buttonNames = map[Snapshot]string{
	ButtonB:      "b",
	ButtonY:      "y",
	ButtonSelect: "select",
	ButtonStart:  "start",
	ButtonUp:     "up",
	ButtonDown:   "down",
	ButtonLeft:   "left",
	ButtonRight:  "right",
	ButtonA:      "a",
	ButtonX:      "x",
	ButtonL:      "l",
	ButtonR:      "r",
}

// ButtonName returns the lowercase name of a single button bit, or ""
// if b is not exactly one known button.
func ButtonName(b Snapshot) string {
	return buttonNames[b]
}

// ParseButton resolves a button name as accepted by ButtonName.
func ParseButton(name string) (Snapshot, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range buttonNames {
		if n == name {
			return b, true
		}
	}
	return 0, false
}

// Pressed reports whether every button in b is pressed in s.
func (s Snapshot) Pressed(b Snapshot) bool {
	return s&b == b
}

// String lists the pressed buttons in wire order, e.g. "start+up".
func (s Snapshot) String() string {
	var names []string
	for _, b := range Buttons {
		if s.Pressed(b) {
			names = append(names, buttonNames[b])
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

// FromWire normalizes the two raw shift-register bytes (first and
// second group of eight clocks) into a Snapshot. The wire is active
// low with pull-ups, so an absent controller reads as nothing pressed
// and the reserved bits normalize to zero.
func FromWire(first, second byte) Snapshot {
	return ^Snapshot(uint16(first)<<8|uint16(second)) &^ 0x000f
}
