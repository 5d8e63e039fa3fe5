package agents

import (
	"github.com/love514425/kraken/pkg/frontend"
	"github.com/love514425/kraken/pkg/logging"
	"github.com/love514425/kraken/pkg/protocol"
)

// DebuggerAgent implements the Debugger domain surface of this slice: the
// enable/disable lifecycle and the scriptParsed announcement path the engine
// calls whenever it compiles a script.
type DebuggerAgent struct {
	frontend *frontend.DebuggerFrontend
	logger   logging.Logger
	enabled  bool
}

var _ DebuggerBackend = (*DebuggerAgent)(nil)

// NewDebuggerAgent creates a disabled Debugger backend emitting through the
// given channel.
func NewDebuggerAgent(channel frontend.Channel, logger logging.Logger) *DebuggerAgent {
	if logger == nil {
		logger = logging.Nop()
	}
	return &DebuggerAgent{
		frontend: frontend.NewDebuggerFrontend(channel),
		logger:   logger.WithFields(logging.String("component", "debugger-agent")),
	}
}

// Enable turns the backend on. Idempotent.
func (a *DebuggerAgent) Enable() protocol.DispatchResponse {
	a.enabled = true
	return protocol.OK()
}

// Disable turns the backend off. Idempotent.
func (a *DebuggerAgent) Disable() protocol.DispatchResponse {
	a.enabled = false
	return protocol.OK()
}

// Enabled reports the lifecycle state.
func (a *DebuggerAgent) Enabled() bool {
	return a.enabled
}

// ScriptParsed emits Debugger.scriptParsed for one compiled script. Scripts
// parsed while the backend is disabled are not announced.
func (a *DebuggerAgent) ScriptParsed(n *protocol.ScriptParsedNotification) {
	if !a.enabled {
		return
	}
	if err := a.frontend.ScriptParsed(n); err != nil {
		a.logger.Error("failed to emit Debugger.scriptParsed",
			logging.ErrorField(err),
			logging.String("script_id", n.ScriptID()))
	}
}
