package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/love514425/kraken/pkg/frontend"
	"github.com/love514425/kraken/pkg/session"
)

type reloadCounter struct {
	mu    sync.Mutex
	count int
}

func (r *reloadCounter) HandlePageReload() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
}

func (r *reloadCounter) reloads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

func startTestServer(t *testing.T, factory SessionFactory) (*Server, context.CancelFunc) {
	t.Helper()

	server, err := NewServer(ServerConfig{
		Addr:       "127.0.0.1:0",
		NewSession: factory,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Start(ctx) }()

	// Wait for the listener to bind.
	require.Eventually(t, func() bool {
		return server.listener != nil
	}, 2*time.Second, 10*time.Millisecond)

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("server did not shut down")
		}
	})
	return server, cancel
}

func dialTestServer(t *testing.T, server *Server) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, fmt.Sprintf("ws://%s/devtools", server.Addr()), nil)
	require.NoError(t, err)
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	return decoded
}

func writeFrame(t *testing.T, conn *websocket.Conn, frame string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(frame)))
}

func TestServerDispatchesCommands(t *testing.T) {
	handler := &reloadCounter{}
	server, _ := startTestServer(t, func(channel frontend.Channel) SessionHandler {
		return session.New(channel, handler)
	})

	conn := dialTestServer(t, server)
	defer conn.Close(websocket.StatusNormalClosure, "done")

	writeFrame(t, conn, `{"id":1,"method":"Page.enable"}`)
	resp := readFrame(t, conn)
	assert.Equal(t, float64(1), resp["id"])
	assert.Contains(t, resp, "result")

	writeFrame(t, conn, `{"id":2,"method":"Page.reload"}`)
	resp = readFrame(t, conn)
	assert.Equal(t, float64(2), resp["id"])
	assert.Contains(t, resp, "result")
	assert.Equal(t, 1, handler.reloads())
}

func TestServerUnknownMethod(t *testing.T) {
	server, _ := startTestServer(t, func(channel frontend.Channel) SessionHandler {
		return session.New(channel, &reloadCounter{})
	})

	conn := dialTestServer(t, server)
	defer conn.Close(websocket.StatusNormalClosure, "done")

	writeFrame(t, conn, `{"id":7,"method":"Network.enable"}`)
	resp := readFrame(t, conn)
	assert.Equal(t, float64(7), resp["id"])
	require.Contains(t, resp, "error")
	errObj := resp["error"].(map[string]any)
	assert.Equal(t, float64(-32601), errObj["code"])
}

func TestServerOrderedResponses(t *testing.T) {
	server, _ := startTestServer(t, func(channel frontend.Channel) SessionHandler {
		return session.New(channel, &reloadCounter{})
	})

	conn := dialTestServer(t, server)
	defer conn.Close(websocket.StatusNormalClosure, "done")

	for i := 1; i <= 5; i++ {
		writeFrame(t, conn, fmt.Sprintf(`{"id":%d,"method":"Log.enable"}`, i))
	}
	for i := 1; i <= 5; i++ {
		resp := readFrame(t, conn)
		assert.Equal(t, float64(i), resp["id"])
	}
}

func TestServerClosesSessionOnDisconnect(t *testing.T) {
	closed := make(chan struct{})
	server, _ := startTestServer(t, func(channel frontend.Channel) SessionHandler {
		return &closeSignalingHandler{channel: channel, closed: closed}
	})

	conn := dialTestServer(t, server)
	require.NoError(t, conn.Close(websocket.StatusNormalClosure, "done"))

	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("session was not closed on disconnect")
	}
}

type closeSignalingHandler struct {
	channel frontend.Channel
	closed  chan struct{}
	once    sync.Once
}

func (h *closeSignalingHandler) Dispatch(raw []byte) {}

func (h *closeSignalingHandler) Close() error {
	h.once.Do(func() { close(h.closed) })
	return h.channel.Close()
}

func TestNewServerRequiresFactory(t *testing.T) {
	_, err := NewServer(ServerConfig{Addr: "127.0.0.1:0"})
	require.Error(t, err)
}
