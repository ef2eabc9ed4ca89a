// Package adapter owns the live bridge session: it runs the single
// writer poll loop that samples the SNES controller, translates the
// snapshot, and publishes frames for the bus responders to read.
package adapter

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gamebridge/snes2psx/mapping"
	"github.com/gamebridge/snes2psx/psx"
	"github.com/gamebridge/snes2psx/snes"
)

// DefaultInterval approximates the free-running poll cadence of the
// hardware: well inside one host poll period.
const DefaultInterval = 2 * time.Millisecond

// Config carries the session parameters fixed at construction.
type Config struct {
	// Interval is the poll period; zero means DefaultInterval.
	Interval time.Duration
	// Hold is OR'd into the boot snapshot, standing in for buttons
	// physically held at power on when the sampler has no live pad yet.
	Hold snes.Snapshot
}

// Adapter is the session context: active table, device identity, and
// the published frame. The poll loop is the only writer; responders on
// the bus side read whole frames through an atomic pointer, so a reader
// sees either the previous or the new frame, never a torn mix.
type Adapter struct {
	sampler  snes.Sampler
	table    mapping.Table
	identity psx.Identity
	interval time.Duration
	logger   *slog.Logger

	frame   atomic.Pointer[psx.Frame]
	changes chan psx.Frame
}

// New samples the boot snapshot, fixes the mapping table and identity
// for the life of the session, and returns the adapter ready to Run.
func New(sampler snes.Sampler, cfg Config, logger *slog.Logger) *Adapter {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}

	boot := sampler.Sample() | cfg.Hold
	table, identity := SelectMode(boot)

	a := &Adapter{
		sampler:  sampler,
		table:    table,
		identity: identity,
		interval: cfg.Interval,
		logger:   logger,
		changes:  make(chan psx.Frame, 64),
	}

	// Until the first poll the mask reads all released and the
	// pressure bytes all pressed, matching the power-on buffer state.
	a.frame.Store(&psx.Frame{Mask: 0xFFFF})

	logger.Info("session configured",
		"boot", boot.String(),
		"table", table.Name,
		"identity", identity.String(),
	)
	return a
}

// Table returns the active mapping table.
func (a *Adapter) Table() mapping.Table { return a.table }

// Identity returns the device identity fixed at boot.
func (a *Adapter) Identity() psx.Identity { return a.identity }

// Frame returns the most recently published frame. Safe from any
// goroutine; implements psx.FrameSource.
func (a *Adapter) Frame() psx.Frame {
	return *a.frame.Load()
}

// Responder builds a bus responder bound to this session's identity and
// frame stream. Each attention window may use its own responder; they
// share nothing but the published frame.
func (a *Adapter) Responder(ack func()) *psx.Responder {
	return psx.NewResponder(a.identity, a, ack)
}

// Changes delivers a frame whenever a poll produced a different one.
// Slow consumers miss intermediate frames rather than stalling the loop.
func (a *Adapter) Changes() <-chan psx.Frame {
	return a.changes
}

// Poll runs one sample+translate cycle and publishes the result.
func (a *Adapter) Poll() psx.Frame {
	f := a.table.Translate(a.sampler.Sample())
	a.frame.Store(&f)
	return f
}

// Run polls until the context is canceled. It never returns an error
// from the loop itself: sampling and translation are total.
func (a *Adapter) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	prev := a.Frame()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			f := a.Poll()
			if f == prev {
				continue
			}
			prev = f
			select {
			case a.changes <- f:
			default:
			}
		}
	}
}
