package dispatcher

import (
	"encoding/json"

	"github.com/love514425/kraken/pkg/agents"
	"github.com/love514425/kraken/pkg/frontend"
	"github.com/love514425/kraken/pkg/logging"
	"github.com/love514425/kraken/pkg/protocol"
)

// LogDispatcher routes Log domain commands to a LogBackend. The deprecated
// Console domain's command surface is aliased onto Log, so front ends still
// speaking Console keep working.
type LogDispatcher struct {
	dispatcherBase
	backend agents.LogBackend
}

var _ Dispatcher = (*LogDispatcher)(nil)

// NewLogDispatcher builds the Log dispatch map and the Console alias table.
func NewLogDispatcher(channel frontend.Channel, backend agents.LogBackend, logger logging.Logger) *LogDispatcher {
	d := &LogDispatcher{
		dispatcherBase: newDispatcherBase("Log", channel, logger),
		backend:        backend,
	}
	d.dispatchMap["Log.enable"] = d.enable
	d.dispatchMap["Log.disable"] = d.disable
	d.dispatchMap["Log.clear"] = d.clear

	d.redirects["Console.enable"] = "Log.enable"
	d.redirects["Console.disable"] = "Log.disable"
	d.redirects["Console.clearMessages"] = "Log.clear"
	return d
}

func (d *LogDispatcher) enable(callID int64, method string, params json.RawMessage, errs *protocol.ErrorSupport) {
	d.sendDispatchResponse(callID, d.backend.Enable())
}

func (d *LogDispatcher) disable(callID int64, method string, params json.RawMessage, errs *protocol.ErrorSupport) {
	d.sendDispatchResponse(callID, d.backend.Disable())
}

func (d *LogDispatcher) clear(callID int64, method string, params json.RawMessage, errs *protocol.ErrorSupport) {
	d.sendDispatchResponse(callID, d.backend.Clear())
}
