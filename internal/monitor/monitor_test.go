package monitor_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamebridge/snes2psx/internal/monitor"
	"github.com/gamebridge/snes2psx/psx"
)

type frameMessage struct {
	Mask    uint16   `json:"mask"`
	Pressed []string `json:"pressed"`
	Analog  []uint8  `json:"analog"`
}

func TestHubBroadcastsFrames(t *testing.T) {
	hub := monitor.NewHub(slog.Default())
	changes := make(chan psx.Frame, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx, changes)

	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	defer conn.Close()

	f := psx.Frame{Mask: 0xFFFF &^ psx.ButtonCross}
	for i := range f.Analog {
		f.Analog[i] = 0xFF
	}
	f.Analog[psx.AnalogCross] = 0x00

	// Give the client a moment to register before publishing.
	time.Sleep(50 * time.Millisecond)
	changes <- f

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg frameMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, uint16(0xFFFF)&^psx.ButtonCross, msg.Mask)
	assert.Equal(t, []string{"cross"}, msg.Pressed)
	require.Len(t, msg.Analog, int(psx.NumAnalogChannels))
	assert.Equal(t, uint8(0x00), msg.Analog[psx.AnalogCross])
}

func TestLateClientGetsLastFrame(t *testing.T) {
	hub := monitor.NewHub(slog.Default())
	changes := make(chan psx.Frame, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx, changes)

	f := psx.Frame{Mask: 0xFFFF &^ psx.ButtonStart}
	for i := range f.Analog {
		f.Analog[i] = 0xFF
	}
	changes <- f
	time.Sleep(50 * time.Millisecond)

	srv := httptest.NewServer(hub.Handler())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg frameMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, []string{"start"}, msg.Pressed)
}
