// Package frontend provides the outbound path from the inspector core to the
// remote debugging client: the Channel abstraction over whatever transport
// carries the session, and typed per-domain frontends that build well-formed
// events before they reach the wire.
package frontend

import (
	"encoding/json"
	"sync"

	"github.com/love514425/kraken/pkg/protocol"
)

// Channel carries responses and events out of a session, independent of
// transport framing. Implementations must preserve send order: messages are
// observed by the client in the order they were sent.
type Channel interface {
	// SendResponse sends the reply for one dispatched command.
	SendResponse(resp *protocol.Response) error

	// SendEvent sends one notification.
	SendEvent(ev *protocol.Event) error

	// SendRaw sends a pre-serialized protocol message.
	SendRaw(data json.RawMessage) error

	// Close releases the channel. Sends after Close fail.
	Close() error
}

// BufferedChannel is an in-memory Channel that records everything sent
// through it, in order. It backs tests and in-process embedding.
type BufferedChannel struct {
	mu        sync.Mutex
	responses []*protocol.Response
	events    []*protocol.Event
	raw       []json.RawMessage
	closed    bool
}

// NewBufferedChannel creates an open in-memory channel.
func NewBufferedChannel() *BufferedChannel {
	return &BufferedChannel{}
}

// SendResponse records a response.
func (c *BufferedChannel) SendResponse(resp *protocol.Response) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrChannelClosed
	}
	c.responses = append(c.responses, resp)
	return nil
}

// SendEvent records an event.
func (c *BufferedChannel) SendEvent(ev *protocol.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrChannelClosed
	}
	c.events = append(c.events, ev)
	return nil
}

// SendRaw records a raw message.
func (c *BufferedChannel) SendRaw(data json.RawMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrChannelClosed
	}
	c.raw = append(c.raw, data)
	return nil
}

// Close marks the channel closed. Idempotent.
func (c *BufferedChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// Responses returns the recorded responses in send order.
func (c *BufferedChannel) Responses() []*protocol.Response {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*protocol.Response, len(c.responses))
	copy(out, c.responses)
	return out
}

// Events returns the recorded events in send order.
func (c *BufferedChannel) Events() []*protocol.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*protocol.Event, len(c.events))
	copy(out, c.events)
	return out
}

// Raw returns the recorded raw messages in send order.
func (c *BufferedChannel) Raw() []json.RawMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]json.RawMessage, len(c.raw))
	copy(out, c.raw)
	return out
}
