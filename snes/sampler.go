package snes

import "time"

// Sampler produces one controller snapshot per call.
type Sampler interface {
	Sample() Snapshot
}

// SamplerFunc adapts a plain function to the Sampler interface.
type SamplerFunc func() Snapshot

func (f SamplerFunc) Sample() Snapshot { return f() }

// Line is a host-driven output signal.
type Line interface {
	High()
	Low()
}

// SenseLine is an input signal read by the sampler.
type SenseLine interface {
	Get() bool
}

// Default line timings. The controller's shift register wants a latch
// pulse of about 12us and a clock period of about 12us.
const (
	DefaultLatchWidth = 12 * time.Microsecond
	DefaultHalfClock  = 6 * time.Microsecond
)

// LineSampler bit-bangs the latch/clock/data protocol: one latch pulse
// loads the shift register, then sixteen clock falling edges shift the
// button bits out MSB first.
type LineSampler struct {
	Latch Line
	Clock Line
	Data  SenseLine

	LatchWidth time.Duration
	HalfClock  time.Duration
}

// NewLineSampler returns a LineSampler with default timings. Clock is
// expected to idle high and latch to idle low, matching the reset state
// set up by the caller's pin configuration.
func NewLineSampler(latch, clock Line, data SenseLine) *LineSampler {
	return &LineSampler{
		Latch:      latch,
		Clock:      clock,
		Data:       data,
		LatchWidth: DefaultLatchWidth,
		HalfClock:  DefaultHalfClock,
	}
}

// Sample latches and shifts out one 16-bit snapshot, normalized to
// active high.
func (s *LineSampler) Sample() Snapshot {
	s.Latch.High()
	time.Sleep(s.LatchWidth)
	s.Latch.Low()

	var raw [2]byte
	for group := range raw {
		var b byte
		for bit := 0; bit < 8; bit++ {
			time.Sleep(s.HalfClock)
			s.Clock.Low()

			b <<= 1
			if s.Data.Get() {
				b |= 1
			}

			time.Sleep(s.HalfClock)
			s.Clock.High()
		}
		raw[group] = b
	}

	return FromWire(raw[0], raw[1])
}
