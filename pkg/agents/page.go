package agents

import (
	"github.com/love514425/kraken/pkg/logging"
	"github.com/love514425/kraken/pkg/protocol"
)

// PageAgent implements PageBackend against the host engine's page.
type PageAgent struct {
	provider ProtocolHandlerProvider
	logger   logging.Logger
	enabled  bool
}

var _ PageBackend = (*PageAgent)(nil)

// NewPageAgent creates a disabled Page backend. The provider yields the
// engine hook used for reloads; it may start returning nil when the owning
// session goes away.
func NewPageAgent(provider ProtocolHandlerProvider, logger logging.Logger) *PageAgent {
	if logger == nil {
		logger = logging.Nop()
	}
	return &PageAgent{
		provider: provider,
		logger:   logger.WithFields(logging.String("component", "page-agent")),
	}
}

// Enable turns the backend on. Idempotent.
func (a *PageAgent) Enable() protocol.DispatchResponse {
	a.enabled = true
	return protocol.OK()
}

// Disable turns the backend off. Idempotent.
func (a *PageAgent) Disable() protocol.DispatchResponse {
	a.enabled = false
	return protocol.OK()
}

// Enabled reports the lifecycle state.
func (a *PageAgent) Enabled() bool {
	return a.enabled
}

// Reload asks the engine to reload the page. Both parameters are optional;
// the engine hook decides their defaults. Fails when the owning session or
// its protocol handler is gone.
func (a *PageAgent) Reload(ignoreCache protocol.Maybe[bool], scriptToEvaluateOnLoad protocol.Maybe[string]) protocol.DispatchResponse {
	a.logger.Debug("handling reload",
		logging.Bool("ignore_cache", ignoreCache.FromMaybe(false)),
		logging.Bool("has_script", scriptToEvaluateOnLoad.IsJust()),
	)

	if a.provider == nil {
		return protocol.Failure("session destroyed or protocol handler destroyed")
	}
	handler := a.provider.ProtocolHandler()
	if handler == nil {
		return protocol.Failure("session destroyed or protocol handler destroyed")
	}
	handler.HandlePageReload()
	return protocol.OK()
}
