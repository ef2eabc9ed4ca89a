package psx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gamebridge/snes2psx/psx"
)

type recordingLine struct {
	events []string
}

func (l *recordingLine) Assert()  { l.events = append(l.events, "assert") }
func (l *recordingLine) Release() { l.events = append(l.events, "release") }

func TestAckPulse(t *testing.T) {
	line := &recordingLine{}
	p := psx.NewAckPulser(line)
	assert.Equal(t, psx.DefaultAckDelay, p.Delay)
	assert.Equal(t, psx.DefaultAckHold, p.Hold)

	p.Pulse()
	p.Pulse()
	assert.Equal(t, []string{"assert", "release", "assert", "release"}, line.events)
}

func TestAckPulserAsResponderCallback(t *testing.T) {
	line := &recordingLine{}
	p := &psx.AckPulser{Line: line, Delay: 0, Hold: 0}

	src := &frameSource{f: testFrame(0xFFFF)}
	r := psx.NewResponder(psx.IdentityDigital, src, p.Pulse)

	start := time.Now()
	exchange(r, []byte{0x01, 0x42, 0x00, 0x00})
	assert.Less(t, time.Since(start), time.Second)

	// One complete pulse per acknowledged reply byte.
	assert.Len(t, line.events, 8)
}
