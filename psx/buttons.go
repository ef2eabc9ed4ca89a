// Package psx implements the peripheral side of the PlayStation
// controller bus: button and identity constants, the acknowledge pulse,
// and the byte-for-byte responder state machine a host polls.
package psx

// Button bits of the 16-bit mask, laid out so the low byte is the first
// data byte on the wire and the high byte the second. The mask is
// active low: a cleared bit means pressed, 0xFFFF means all released.
const (
	ButtonSelect   uint16 = 0x0001
	ButtonL3       uint16 = 0x0002
	ButtonR3       uint16 = 0x0004
	ButtonStart    uint16 = 0x0008
	ButtonUp       uint16 = 0x0010
	ButtonRight    uint16 = 0x0020
	ButtonDown     uint16 = 0x0040
	ButtonLeft     uint16 = 0x0080
	ButtonL2       uint16 = 0x0100
	ButtonR2       uint16 = 0x0200
	ButtonL1       uint16 = 0x0400
	ButtonR1       uint16 = 0x0800
	ButtonTriangle uint16 = 0x1000
	ButtonCircle   uint16 = 0x2000
	ButtonCross    uint16 = 0x4000
	ButtonSquare   uint16 = 0x8000
)

var buttonNames = map[uint16]string{
	ButtonSelect:   "select",
	ButtonL3:       "l3",
	ButtonR3:       "r3",
	ButtonStart:    "start",
	ButtonUp:       "up",
	ButtonRight:    "right",
	ButtonDown:     "down",
	ButtonLeft:     "left",
	ButtonL2:       "l2",
	ButtonR2:       "r2",
	ButtonL1:       "l1",
	ButtonR1:       "r1",
	ButtonTriangle: "triangle",
	ButtonCircle:   "circle",
	ButtonCross:    "cross",
	ButtonSquare:   "square",
}

// ButtonName returns the lowercase name of a single button bit, or ""
// for anything that is not exactly one known button.
func ButtonName(b uint16) string {
	return buttonNames[b]
}

// PressedNames lists the names of all buttons pressed in an active-low
// mask, in bit order.
func PressedNames(mask uint16) []string {
	var names []string
	for bit := uint16(1); bit != 0; bit <<= 1 {
		if mask&bit == 0 {
			names = append(names, buttonNames[bit])
		}
	}
	return names
}

// Identity is the device type byte reported in response to the select
// command. Hosts use it to decide how many data bytes follow.
type Identity byte

const (
	// IdentityDigital is the original digital pad: two data bytes.
	IdentityDigital Identity = 0x41
	// IdentityDualShock2 adds four stick bytes and twelve pressure
	// bytes after the digital pair.
	IdentityDualShock2 Identity = 0x79
)

func (id Identity) String() string {
	switch id {
	case IdentityDigital:
		return "digital"
	case IdentityDualShock2:
		return "dualshock2"
	}
	return "unknown"
}

// AnalogChannel indexes the pressure byte array of the extended frame.
type AnalogChannel uint8

const (
	AnalogRight AnalogChannel = iota
	AnalogLeft
	AnalogUp
	AnalogDown
	AnalogTriangle
	AnalogCircle
	AnalogCross
	AnalogSquare
	AnalogL1
	AnalogR1
	AnalogL2
	AnalogR2
	NumAnalogChannels
)

// AnalogNone marks a mapping with no pressure channel.
const AnalogNone AnalogChannel = 0xFF

var channelNames = [NumAnalogChannels]string{
	"right", "left", "up", "down",
	"triangle", "circle", "cross", "square",
	"l1", "r1", "l2", "r2",
}

// ChannelName returns the lowercase name of a pressure channel, or ""
// for AnalogNone and out-of-range values.
func ChannelName(c AnalogChannel) string {
	if c >= NumAnalogChannels {
		return ""
	}
	return channelNames[c]
}
