// Package log builds the configured slog.Logger: a colored console
// handler when stdout is a terminal, plain text otherwise, plus an
// optional file handler.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// LevelTrace sits below Debug for byte-level protocol output.
const LevelTrace slog.Level = -8

// ParseLevel maps a level name to its slog level; unknown names and the
// empty string mean Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup builds the logger and installs it as the slog default. The
// returned closer is non-nil when a log file was opened.
func Setup(logLevel, logFile string) (*slog.Logger, io.Closer, error) {
	level := ParseLevel(logLevel)

	var console slog.Handler
	if term.IsTerminal(int(os.Stdout.Fd())) {
		console = &colorHandler{w: os.Stdout, level: level}
	} else {
		console = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	handlers := []slog.Handler{console}
	var closer io.Closer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		closer = f
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	logger := slog.New(multiHandler(handlers))
	slog.SetDefault(logger)
	return logger, closer, nil
}

// multiHandler fans records out to every handler that wants them.
type multiHandler []slog.Handler

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r)
		}
	}
	return nil
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(multiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	out := make(multiHandler, len(m))
	for i, h := range m {
		out[i] = h.WithGroup(name)
	}
	return out
}

type colorHandler struct {
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
}

func (h *colorHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func levelColor(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "\033[31m"
	case l >= slog.LevelWarn:
		return "\033[33m"
	case l >= slog.LevelInfo:
		return "\033[32m"
	case l >= slog.LevelDebug:
		return "\033[34m"
	default:
		return "\033[35m"
	}
}

func levelName(l slog.Level) string {
	if l == LevelTrace {
		return "TRACE"
	}
	return l.String()
}

func (h *colorHandler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder

	buf.WriteString("\033[90m")
	buf.WriteString(r.Time.Format("15:04:05.000"))
	buf.WriteString("\033[0m ")

	buf.WriteString(levelColor(r.Level))
	fmt.Fprintf(&buf, "%5s", levelName(r.Level))
	buf.WriteString("\033[0m ")

	buf.WriteString(r.Message)

	writeAttr := func(a slog.Attr) {
		buf.WriteString(" \033[90m")
		buf.WriteString(a.Key)
		buf.WriteString("=\033[0m")
		buf.WriteString(a.Value.String())
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a)
		return true
	})

	buf.WriteString("\n")
	_, err := io.WriteString(h.w, buf.String())
	return err
}

func (h *colorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &colorHandler{w: h.w, level: h.level, attrs: append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)}
}

func (h *colorHandler) WithGroup(string) slog.Handler { return h }
