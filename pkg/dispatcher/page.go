package dispatcher

import (
	"encoding/json"

	"github.com/love514425/kraken/pkg/agents"
	"github.com/love514425/kraken/pkg/frontend"
	"github.com/love514425/kraken/pkg/logging"
	"github.com/love514425/kraken/pkg/protocol"
)

// PageDispatcher routes Page domain commands to a PageBackend.
type PageDispatcher struct {
	dispatcherBase
	backend agents.PageBackend
}

var _ Dispatcher = (*PageDispatcher)(nil)

// NewPageDispatcher builds the Page dispatch map. The handler table is
// fixed at construction; no methods are registered later.
func NewPageDispatcher(channel frontend.Channel, backend agents.PageBackend, logger logging.Logger) *PageDispatcher {
	d := &PageDispatcher{
		dispatcherBase: newDispatcherBase("Page", channel, logger),
		backend:        backend,
	}
	d.dispatchMap["Page.enable"] = d.enable
	d.dispatchMap["Page.disable"] = d.disable
	d.dispatchMap["Page.reload"] = d.reload
	return d
}

func (d *PageDispatcher) enable(callID int64, method string, params json.RawMessage, errs *protocol.ErrorSupport) {
	d.sendDispatchResponse(callID, d.backend.Enable())
}

func (d *PageDispatcher) disable(callID int64, method string, params json.RawMessage, errs *protocol.ErrorSupport) {
	d.sendDispatchResponse(callID, d.backend.Disable())
}

func (d *PageDispatcher) reload(callID int64, method string, params json.RawMessage, errs *protocol.ErrorSupport) {
	fields := decodeParamsObject(params, errs)
	ignoreCache := optionalBool(fields, "ignoreCache", errs)
	script := optionalString(fields, "scriptToEvaluateOnLoad", errs)

	if errs.HasErrors() {
		d.reportDecodeErrors(callID, errs)
		return
	}
	d.sendDispatchResponse(callID, d.backend.Reload(ignoreCache, script))
}
