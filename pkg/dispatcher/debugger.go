package dispatcher

import (
	"encoding/json"

	"github.com/love514425/kraken/pkg/agents"
	"github.com/love514425/kraken/pkg/frontend"
	"github.com/love514425/kraken/pkg/logging"
	"github.com/love514425/kraken/pkg/protocol"
)

// DebuggerDispatcher routes the Debugger lifecycle commands this slice
// supports to a DebuggerBackend.
type DebuggerDispatcher struct {
	dispatcherBase
	backend agents.DebuggerBackend
}

var _ Dispatcher = (*DebuggerDispatcher)(nil)

// NewDebuggerDispatcher builds the Debugger dispatch map.
func NewDebuggerDispatcher(channel frontend.Channel, backend agents.DebuggerBackend, logger logging.Logger) *DebuggerDispatcher {
	d := &DebuggerDispatcher{
		dispatcherBase: newDispatcherBase("Debugger", channel, logger),
		backend:        backend,
	}
	d.dispatchMap["Debugger.enable"] = d.enable
	d.dispatchMap["Debugger.disable"] = d.disable
	return d
}

func (d *DebuggerDispatcher) enable(callID int64, method string, params json.RawMessage, errs *protocol.ErrorSupport) {
	d.sendDispatchResponse(callID, d.backend.Enable())
}

func (d *DebuggerDispatcher) disable(callID int64, method string, params json.RawMessage, errs *protocol.ErrorSupport) {
	d.sendDispatchResponse(callID, d.backend.Disable())
}
