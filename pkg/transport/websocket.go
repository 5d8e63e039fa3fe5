// Package transport carries inspector sessions over real connections. The
// dispatch core is transport-agnostic; this package supplies the websocket
// framing a DevTools front end actually speaks, exposed to the core only as
// a frontend.Channel.
package transport

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/coder/websocket"

	"github.com/love514425/kraken/pkg/frontend"
	"github.com/love514425/kraken/pkg/protocol"
)

// WebSocketChannel is a frontend.Channel writing protocol messages as text
// frames on one websocket connection. Writes are serialized, so messages
// reach the client in send order.
type WebSocketChannel struct {
	conn *websocket.Conn
	ctx  context.Context

	mu     sync.Mutex
	closed bool
}

var _ frontend.Channel = (*WebSocketChannel)(nil)

// NewWebSocketChannel wraps an accepted connection. ctx bounds every write.
func NewWebSocketChannel(ctx context.Context, conn *websocket.Conn) *WebSocketChannel {
	return &WebSocketChannel{conn: conn, ctx: ctx}
}

// SendResponse writes one command response frame.
func (c *WebSocketChannel) SendResponse(resp *protocol.Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return c.write(data)
}

// SendEvent writes one notification frame.
func (c *WebSocketChannel) SendEvent(ev *protocol.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return c.write(data)
}

// SendRaw writes a pre-serialized frame.
func (c *WebSocketChannel) SendRaw(data json.RawMessage) error {
	return c.write(data)
}

func (c *WebSocketChannel) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return frontend.ErrChannelClosed
	}
	return c.conn.Write(c.ctx, websocket.MessageText, data)
}

// Close closes the underlying connection. Idempotent.
func (c *WebSocketChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close(websocket.StatusNormalClosure, "session closed")
}
