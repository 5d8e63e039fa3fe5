package frontend

import (
	"errors"
	"fmt"

	"github.com/love514425/kraken/pkg/protocol"
)

// ErrChannelClosed is returned when sending through a closed channel.
var ErrChannelClosed = errors.New("frontend: channel closed")

// LogFrontend emits Log domain events.
type LogFrontend struct {
	channel Channel
}

// NewLogFrontend creates a Log frontend over the given channel.
func NewLogFrontend(channel Channel) *LogFrontend {
	return &LogFrontend{channel: channel}
}

// EntryAdded emits Log.entryAdded with the given entry.
func (f *LogFrontend) EntryAdded(entry *protocol.LogEntry) error {
	ev, err := protocol.NewEvent("Log.entryAdded", protocol.EntryAddedParams{Entry: entry})
	if err != nil {
		return fmt.Errorf("failed to build Log.entryAdded: %w", err)
	}
	return f.channel.SendEvent(ev)
}

// DebuggerFrontend emits Debugger domain events.
type DebuggerFrontend struct {
	channel Channel
}

// NewDebuggerFrontend creates a Debugger frontend over the given channel.
func NewDebuggerFrontend(channel Channel) *DebuggerFrontend {
	return &DebuggerFrontend{channel: channel}
}

// ScriptParsed emits Debugger.scriptParsed with the given notification.
func (f *DebuggerFrontend) ScriptParsed(n *protocol.ScriptParsedNotification) error {
	ev, err := protocol.NewEvent("Debugger.scriptParsed", n)
	if err != nil {
		return fmt.Errorf("failed to build Debugger.scriptParsed: %w", err)
	}
	return f.channel.SendEvent(ev)
}

// PageFrontend emits Page domain events.
type PageFrontend struct {
	channel Channel
}

// NewPageFrontend creates a Page frontend over the given channel.
func NewPageFrontend(channel Channel) *PageFrontend {
	return &PageFrontend{channel: channel}
}

// LoadEventFired emits Page.loadEventFired. The timestamp is seconds since
// an arbitrary monotonic origin, per the Page domain schema.
func (f *PageFrontend) LoadEventFired(timestamp float64) error {
	ev, err := protocol.NewEvent("Page.loadEventFired", map[string]float64{"timestamp": timestamp})
	if err != nil {
		return fmt.Errorf("failed to build Page.loadEventFired: %w", err)
	}
	return f.channel.SendEvent(ev)
}

// FrameStartedLoading emits Page.frameStartedLoading for the given frame.
func (f *PageFrontend) FrameStartedLoading(frameID string) error {
	ev, err := protocol.NewEvent("Page.frameStartedLoading", map[string]string{"frameId": frameID})
	if err != nil {
		return fmt.Errorf("failed to build Page.frameStartedLoading: %w", err)
	}
	return f.channel.SendEvent(ev)
}
