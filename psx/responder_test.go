package psx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamebridge/snes2psx/psx"
)

// frameSource returns a fixed frame; the pointer form allows swapping
// the frame mid transaction to probe latching.
type frameSource struct {
	f psx.Frame
}

func (s *frameSource) Frame() psx.Frame { return s.f }

func testFrame(mask uint16) psx.Frame {
	f := psx.Frame{Mask: mask}
	for i := range f.Analog {
		f.Analog[i] = 0xFF
	}
	return f
}

// exchange feeds every byte and collects replies.
func exchange(r *psx.Responder, cmds []byte) []byte {
	out := make([]byte, len(cmds))
	for i, c := range cmds {
		out[i] = r.HandleByte(c)
	}
	return out
}

func TestDigitalPollRoundTrip(t *testing.T) {
	mask := uint16(0xFFFF) &^ (psx.ButtonCross | psx.ButtonStart)
	src := &frameSource{f: testFrame(mask)}

	acks := 0
	r := psx.NewResponder(psx.IdentityDigital, src, func() { acks++ })

	// Different titles send different filler in the data phase; both
	// 0x00 and 0x40 style fillers must be tolerated.
	replies := exchange(r, []byte{0x01, 0x42, 0x00, 0x40})
	assert.Equal(t, []byte{0x41, 0x5A, byte(^mask), byte(^mask >> 8)}, replies)
	assert.Equal(t, 4, acks)

	// Digital pads stop after two data bytes; further clocking gets a
	// released bus and no pulses.
	assert.Equal(t, byte(0xFF), r.HandleByte(0x00))
	assert.Equal(t, byte(0xFF), r.HandleByte(0x00))
	assert.Equal(t, 4, acks)

	// Only deselection arms the next transaction.
	r.Deselect()
	acks = 0
	replies = exchange(r, []byte{0x01, 0x42, 0x00, 0x00})
	assert.Equal(t, []byte{0x41, 0x5A, byte(^mask), byte(^mask >> 8)}, replies)
	assert.Equal(t, 4, acks)
}

func TestExtendedPollRoundTrip(t *testing.T) {
	mask := uint16(0xFFFF) &^ psx.ButtonCircle
	f := testFrame(mask)
	f.Analog[psx.AnalogCircle] = 0x00
	src := &frameSource{f: f}

	acks := 0
	r := psx.NewResponder(psx.IdentityDualShock2, src, func() { acks++ })

	cmds := make([]byte, 20)
	cmds[0], cmds[1] = 0x01, 0x42

	want := []byte{0x79, 0x5A, byte(^mask), byte(^mask >> 8)}
	for i := 0; i < 4; i++ {
		want = append(want, 0x7F)
	}
	want = append(want, f.Analog[:]...)

	replies := exchange(r, cmds)
	assert.Equal(t, want, replies)
	assert.Equal(t, 20, acks)

	// Channel order is fixed: circle sits at index 5.
	assert.Equal(t, byte(0x00), replies[8+5])

	assert.Equal(t, byte(0xFF), r.HandleByte(0x00))
	assert.Equal(t, 20, acks)
}

func TestNonSelectFirstByteGoesPassive(t *testing.T) {
	src := &frameSource{f: testFrame(0xFFFF)}
	acks := 0
	r := psx.NewResponder(psx.IdentityDigital, src, func() { acks++ })

	// 0x81 opens a memory card transaction on the shared bus; the pad
	// must release the bus for the rest of the window.
	assert.Equal(t, byte(0xFF), r.HandleByte(0x81))
	assert.Equal(t, byte(0xFF), r.HandleByte(0x01))
	assert.Equal(t, byte(0xFF), r.HandleByte(0x42))
	assert.Equal(t, 0, acks)

	r.Deselect()
	assert.Equal(t, byte(0x41), r.HandleByte(0x01))
	assert.Equal(t, 1, acks)
}

func TestReadyIgnoresNoise(t *testing.T) {
	src := &frameSource{f: testFrame(0xFFFF)}
	acks := 0
	r := psx.NewResponder(psx.IdentityDigital, src, func() { acks++ })

	require.Equal(t, byte(0x41), r.HandleByte(0x01))
	assert.Equal(t, 1, acks)

	// Unknown commands in the ready state neither answer nor derail.
	assert.Equal(t, byte(0xFF), r.HandleByte(0x13))
	assert.Equal(t, byte(0xFF), r.HandleByte(0x43))
	assert.Equal(t, 1, acks)

	assert.Equal(t, byte(0x5A), r.HandleByte(0x42))
	assert.Equal(t, 2, acks)
}

func TestDeselectMidExtendedFrameResetsCounters(t *testing.T) {
	f := testFrame(0xFFFF)
	for i := range f.Analog {
		f.Analog[i] = byte(i)
	}
	src := &frameSource{f: f}
	r := psx.NewResponder(psx.IdentityDualShock2, src, nil)

	// Abort after two of the four stick bytes, then again after three
	// pressure bytes.
	exchange(r, []byte{0x01, 0x42, 0x00, 0x00, 0x00, 0x00})
	r.Deselect()
	exchange(r, []byte{0x01, 0x42, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	r.Deselect()

	// The next window must again carry four stick bytes and all twelve
	// pressure bytes starting from channel zero.
	cmds := make([]byte, 20)
	cmds[0], cmds[1] = 0x01, 0x42
	replies := exchange(r, cmds)
	assert.Equal(t, []byte{0x7F, 0x7F, 0x7F, 0x7F}, replies[4:8])
	assert.Equal(t, f.Analog[:], replies[8:20])
}

func TestFrameLatchedAtDataPhase(t *testing.T) {
	maskA := uint16(0xFFFF) &^ psx.ButtonCross
	maskB := uint16(0xFFFF) &^ psx.ButtonSquare
	src := &frameSource{f: testFrame(maskA)}
	r := psx.NewResponder(psx.IdentityDigital, src, nil)

	r.HandleByte(0x01)
	r.HandleByte(0x42)
	lo := r.HandleByte(0x00)

	// A poll cycle publishing a new frame mid transaction must not mix
	// bytes from two frames.
	src.f = testFrame(maskB)
	hi := r.HandleByte(0x00)

	assert.Equal(t, byte(^maskA), lo)
	assert.Equal(t, byte(^maskA>>8), hi)
}

func TestHandleByteIsTotal(t *testing.T) {
	src := &frameSource{f: testFrame(0xFFFF)}
	r := psx.NewResponder(psx.IdentityDualShock2, src, nil)

	// Arbitrary garbage never panics and always yields a byte.
	for i := 0; i < 512; i++ {
		r.HandleByte(byte(i * 37))
		if i%7 == 0 {
			r.Deselect()
		}
	}
}
