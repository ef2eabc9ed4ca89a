// Package server exposes the controller bus over TCP with a small line
// protocol. Each "poll" line is one attention window: the client's
// bytes are exchanged with a responder session in order and the reply
// bytes come back as one hex line, after which the session is
// deselected. "input" pushes a live controller snapshot and "state"
// dumps the currently published frame.
package server

import (
	"bufio"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"strings"

	"github.com/gamebridge/snes2psx/adapter"
	"github.com/gamebridge/snes2psx/internal/log"
	"github.com/gamebridge/snes2psx/psx"
	"github.com/gamebridge/snes2psx/snes"
)

// Server serves bus transactions against one adapter session.
type Server struct {
	addr    string
	adapter *adapter.Adapter
	feed    *snes.Feed
	ln      net.Listener
	logger  *slog.Logger
}

// New creates a server for the given session. feed may be nil when the
// input comes from real hardware; "input" commands then fail cleanly.
func New(addr string, a *adapter.Adapter, feed *snes.Feed, logger *slog.Logger) *Server {
	return &Server{addr: addr, adapter: a, feed: feed, logger: logger}
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("bus listen: %w", err)
	}
	s.ln = ln
	s.logger.Info("bus listening", "addr", ln.Addr().String())
	go s.serve()
	return nil
}

// Addr returns the bound address, useful when listening on port 0.
func (s *Server) Addr() string {
	if s.ln == nil {
		return s.addr
	}
	return s.ln.Addr().String()
}

// Close stops accepting connections.
func (s *Server) Close() {
	if s.ln != nil {
		_ = s.ln.Close()
	}
}

func (s *Server) serve() {
	for {
		c, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.logger.Info("bus server stopped")
				return
			}
			s.logger.Error("bus accept", "error", err)
			return
		}
		go s.handleConn(c)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	connLogger := s.logger.With("remote", conn.RemoteAddr().String())
	connLogger.Debug("host connected")
	defer connLogger.Debug("host disconnected")

	// One responder per connection; every poll line starts from a
	// deselected session anyway.
	responder := s.adapter.Responder(nil)

	r := bufio.NewReader(conn)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				connLogger.Error("read bus line", "error", err)
			}
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		verb, rest, _ := strings.Cut(line, " ")
		var reply string
		switch verb {
		case "poll":
			reply, err = s.poll(responder, rest, connLogger)
		case "input":
			reply, err = s.input(rest)
		case "state":
			reply, err = s.state()
		default:
			err = fmt.Errorf("unknown command %q", verb)
		}
		if err != nil {
			writeError(conn, err)
			continue
		}
		fmt.Fprintf(conn, "%s\n", reply)
	}
}

func writeError(w io.Writer, err error) {
	problem, _ := json.Marshal(map[string]string{"error": err.Error()})
	fmt.Fprintf(w, "%s\n", problem)
}

// poll exchanges one attention window worth of bytes.
func (s *Server) poll(responder *psx.Responder, rest string, logger *slog.Logger) (string, error) {
	cmds, err := parseBytes(rest)
	if err != nil {
		return "", err
	}
	if len(cmds) == 0 {
		return "", errors.New("poll needs at least one byte")
	}

	replies := make([]byte, len(cmds))
	for i, c := range cmds {
		replies[i] = responder.HandleByte(c)
	}
	responder.Deselect()

	out := hex.EncodeToString(replies)
	logger.Log(context.Background(), log.LevelTrace, "bus transaction",
		"host", hex.EncodeToString(cmds), "pad", out)
	return out, nil
}

// input replaces the live snapshot of the feed sampler.
func (s *Server) input(rest string) (string, error) {
	if s.feed == nil {
		return "", errors.New("input source is not writable")
	}
	v, err := strconv.ParseUint(strings.TrimSpace(rest), 16, 16)
	if err != nil {
		return "", fmt.Errorf("bad snapshot: %w", err)
	}
	snap := snes.Snapshot(v)
	s.feed.Set(snap)
	out, err := json.Marshal(map[string]string{"held": snap.String()})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

type frameState struct {
	Mask    uint16   `json:"mask"`
	Pressed []string `json:"pressed"`
	Analog  []uint8  `json:"analog"`
}

// state reports the currently published frame.
func (s *Server) state() (string, error) {
	f := s.adapter.Frame()
	st := frameState{
		Mask:    f.Mask,
		Pressed: psx.PressedNames(f.Mask),
		Analog:  make([]uint8, len(f.Analog)),
	}
	for i, b := range f.Analog {
		st.Analog[i] = b
	}
	out, err := json.Marshal(st)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// parseBytes accepts "01 42 00 00" or "01420000".
func parseBytes(s string) ([]byte, error) {
	joined := strings.Join(strings.Fields(s), "")
	b, err := hex.DecodeString(joined)
	if err != nil {
		return nil, fmt.Errorf("bad hex bytes: %w", err)
	}
	return b, nil
}
