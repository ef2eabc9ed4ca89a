package psx

import "time"

// AckLine is the open-collector acknowledge signal. Assert pulls it
// low, Release lets the pull-up take it high again.
type AckLine interface {
	Assert()
	Release()
}

// Acknowledge pulse timings. The host expects the pulse to complete
// well before its next clock burst or it drops the peripheral.
const (
	DefaultAckDelay = 1 * time.Microsecond
	DefaultAckHold  = 3 * time.Microsecond
)

// AckPulser drives the acknowledge handshake after each response byte.
// A single pulser is shared by every responder state so the timing
// lives in exactly one place.
type AckPulser struct {
	Line  AckLine
	Delay time.Duration
	Hold  time.Duration
}

// NewAckPulser returns a pulser with the default timings.
func NewAckPulser(line AckLine) *AckPulser {
	return &AckPulser{Line: line, Delay: DefaultAckDelay, Hold: DefaultAckHold}
}

// Pulse waits out the post-byte delay, holds the line low, and releases
// it. Safe to pass as a Responder ack callback.
func (p *AckPulser) Pulse() {
	time.Sleep(p.Delay)
	p.Line.Assert()
	time.Sleep(p.Hold)
	p.Line.Release()
}
