package agents

import (
	"github.com/love514425/kraken/pkg/frontend"
	"github.com/love514425/kraken/pkg/logging"
	"github.com/love514425/kraken/pkg/protocol"
)

// LogAgent implements LogBackend. Console messages arriving while the
// backend is disabled are dropped, not buffered; the front end only sees
// entries logged after Log.enable.
type LogAgent struct {
	frontend *frontend.LogFrontend
	logger   logging.Logger
	enabled  bool
}

var _ LogBackend = (*LogAgent)(nil)

// NewLogAgent creates a disabled Log backend emitting through the given
// channel.
func NewLogAgent(channel frontend.Channel, logger logging.Logger) *LogAgent {
	if logger == nil {
		logger = logging.Nop()
	}
	return &LogAgent{
		frontend: frontend.NewLogFrontend(channel),
		logger:   logger.WithFields(logging.String("component", "log-agent")),
	}
}

// Enable turns the backend on. Idempotent.
func (a *LogAgent) Enable() protocol.DispatchResponse {
	a.enabled = true
	return protocol.OK()
}

// Disable turns the backend off and drops anything held for the front end.
// Idempotent.
func (a *LogAgent) Disable() protocol.DispatchResponse {
	a.enabled = false
	return protocol.OK()
}

// Enabled reports the lifecycle state.
func (a *LogAgent) Enabled() bool {
	return a.enabled
}

// Clear drops buffered entries. The slice keeps no replay buffer, so this
// only acknowledges the command. Idempotent.
func (a *LogAgent) Clear() protocol.DispatchResponse {
	return protocol.OK()
}

// AddMessageToConsole is the non-command entry point the engine's console
// hook invokes. Enabled: forwarded immediately as Log.entryAdded, in call
// order. Disabled: dropped.
func (a *LogAgent) AddMessageToConsole(entry *protocol.LogEntry) {
	if !a.enabled {
		a.logger.Debug("dropping console entry while disabled",
			logging.String("text", entry.Text()))
		return
	}
	if err := a.frontend.EntryAdded(entry); err != nil {
		a.logger.Error("failed to emit Log.entryAdded", logging.ErrorField(err))
	}
}
