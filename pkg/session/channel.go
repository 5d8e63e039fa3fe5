package session

import (
	"encoding/json"

	"github.com/love514425/kraken/pkg/frontend"
	"github.com/love514425/kraken/pkg/observability"
	"github.com/love514425/kraken/pkg/protocol"
)

// observedChannel wraps the session's frontend channel so the session can
// record event metrics and observe the outcome of the command currently
// being dispatched. It adds no buffering and preserves send order.
type observedChannel struct {
	inner   frontend.Channel
	metrics observability.MetricsProvider

	inCommand    bool
	lastResponse *protocol.Response
}

var _ frontend.Channel = (*observedChannel)(nil)

// beginCommand marks the start of one dispatch turn.
func (c *observedChannel) beginCommand() {
	c.inCommand = true
	c.lastResponse = nil
}

// commandOutcome reports how the turn ended, based on the response the
// dispatcher sent.
func (c *observedChannel) commandOutcome() (status, errMsg string) {
	c.inCommand = false
	if c.lastResponse == nil {
		return "no_response", ""
	}
	if c.lastResponse.Error != nil {
		return "error", c.lastResponse.Error.Message
	}
	return "success", ""
}

func (c *observedChannel) SendResponse(resp *protocol.Response) error {
	if c.inCommand {
		c.lastResponse = resp
	}
	return c.inner.SendResponse(resp)
}

func (c *observedChannel) SendEvent(ev *protocol.Event) error {
	if err := c.inner.SendEvent(ev); err != nil {
		return err
	}
	c.metrics.RecordEvent(ev.Method)
	return nil
}

func (c *observedChannel) SendRaw(data json.RawMessage) error {
	return c.inner.SendRaw(data)
}

func (c *observedChannel) Close() error {
	return c.inner.Close()
}
