package snes

import "sync/atomic"

// Feed is a Sampler whose snapshot is pushed in from elsewhere, such as
// a network client standing in for a physical controller. The zero
// value reads as nothing pressed, which matches an unplugged pad.
type Feed struct {
	v atomic.Uint32
}

// Set replaces the live snapshot.
func (f *Feed) Set(s Snapshot) {
	f.v.Store(uint32(s))
}

// Sample returns the most recently pushed snapshot.
func (f *Feed) Sample() Snapshot {
	return Snapshot(f.v.Load())
}
