// Package cmd holds the subcommand implementations invoked by kong.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gamebridge/snes2psx/adapter"
	"github.com/gamebridge/snes2psx/internal/monitor"
	"github.com/gamebridge/snes2psx/internal/server"
	"github.com/gamebridge/snes2psx/snes"
)

type Serve struct {
	Addr         string        `help:"Bus server listen address" default:":3252" env:"SNES2PSX_ADDR"`
	MonitorAddr  string        `help:"WebSocket monitor listen address (empty disables)" env:"SNES2PSX_MONITOR_ADDR"`
	PollInterval time.Duration `help:"Controller poll period" default:"2ms" env:"SNES2PSX_POLL_INTERVAL"`
	Hold         []string      `help:"Buttons held at power-on, picking mapping table and identity (e.g. select,up)" env:"SNES2PSX_HOLD"`
}

// Run is called by kong when the serve command is executed.
func (s *Serve) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hold, err := parseHold(s.Hold)
	if err != nil {
		return err
	}

	feed := &snes.Feed{}
	sess := adapter.New(feed, adapter.Config{
		Interval: s.PollInterval,
		Hold:     hold,
	}, logger)

	bus := server.New(s.Addr, sess, feed, logger)
	if err := bus.Start(); err != nil {
		return err
	}
	defer bus.Close()

	if s.MonitorAddr != "" {
		hub := monitor.NewHub(logger)
		go hub.Run(ctx, sess.Changes())

		mux := http.NewServeMux()
		mux.HandleFunc("/ws", hub.Handler())
		httpSrv := &http.Server{Addr: s.MonitorAddr, Handler: mux}
		go func() {
			logger.Info("monitor listening", "addr", s.MonitorAddr)
			if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("monitor server", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = httpSrv.Shutdown(shutdownCtx)
		}()
	}

	runErr := make(chan error, 1)
	go func() {
		runErr <- sess.Run(ctx)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		<-runErr
		return nil
	case err := <-runErr:
		return err
	}
}

// parseHold turns button names into a boot snapshot. Entries may be
// repeated flags or comma separated lists.
func parseHold(names []string) (snes.Snapshot, error) {
	var snap snes.Snapshot
	for _, entry := range names {
		for _, name := range strings.Split(entry, ",") {
			if name = strings.TrimSpace(name); name == "" {
				continue
			}
			b, ok := snes.ParseButton(name)
			if !ok {
				return 0, fmt.Errorf("unknown button %q", name)
			}
			snap |= b
		}
	}
	return snap, nil
}
