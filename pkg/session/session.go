// Package session implements the unit of connection-scoped inspector state:
// one Session owns a dispatcher and backend per supported domain and the
// single frontend channel used for responses and notifications. A session
// lives exactly as long as one debugging connection.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/love514425/kraken/pkg/agents"
	"github.com/love514425/kraken/pkg/dispatcher"
	inerrors "github.com/love514425/kraken/pkg/errors"
	"github.com/love514425/kraken/pkg/frontend"
	"github.com/love514425/kraken/pkg/logging"
	"github.com/love514425/kraken/pkg/observability"
	"github.com/love514425/kraken/pkg/protocol"
)

// lifecycleBackend is the slice of backend surface teardown needs.
type lifecycleBackend interface {
	Enabled() bool
	Disable() protocol.DispatchResponse
}

// Session routes inbound commands to per-domain dispatchers and owns the
// backends behind them. Commands are processed one at a time to completion;
// the caller (normally the transport read loop) provides that serialization.
type Session struct {
	id      string
	logger  logging.Logger
	metrics observability.MetricsProvider
	tracing *observability.TracingProvider

	channel     *observedChannel
	dispatchers []dispatcher.Dispatcher // registration order
	backends    []lifecycleBackend      // same order

	page     *agents.PageAgent
	log      *agents.LogAgent
	debugger *agents.DebuggerAgent
	console  *agents.ConsoleClient

	handler agents.ProtocolHandler
	closed  bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger shared by the session and its agents.
func WithLogger(logger logging.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics provider.
func WithMetrics(metrics observability.MetricsProvider) Option {
	return func(s *Session) {
		s.metrics = metrics
	}
}

// WithTracing sets the tracing provider.
func WithTracing(tracing *observability.TracingProvider) Option {
	return func(s *Session) {
		s.tracing = tracing
	}
}

// New creates a session over the given channel. handler is the engine-facing
// collaborator backends call into; it may be nil for a session whose engine
// side is already gone, and may be replaced later via SetProtocolHandler.
func New(channel frontend.Channel, handler agents.ProtocolHandler, opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		logger:  logging.Nop(),
		metrics: observability.NoopMetricsProvider{},
		handler: handler,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithFields(logging.String("session_id", s.id))
	s.channel = &observedChannel{inner: channel, metrics: s.metrics}

	s.page = agents.NewPageAgent(s, s.logger)
	s.log = agents.NewLogAgent(s.channel, s.logger)
	s.debugger = agents.NewDebuggerAgent(s.channel, s.logger)
	s.console = agents.NewConsoleClient(s.log, s.logger)

	s.register(dispatcher.NewPageDispatcher(s.channel, s.page, s.logger), s.page)
	s.register(dispatcher.NewLogDispatcher(s.channel, s.log, s.logger), s.log)
	s.register(dispatcher.NewDebuggerDispatcher(s.channel, s.debugger, s.logger), s.debugger)

	s.metrics.RecordSessionState(1)
	return s
}

func (s *Session) register(d dispatcher.Dispatcher, b lifecycleBackend) {
	s.dispatchers = append(s.dispatchers, d)
	s.backends = append(s.backends, b)
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// ProtocolHandler yields the engine collaborator, or nil once it is gone.
// Backends consult it on every command that needs the engine.
func (s *Session) ProtocolHandler() agents.ProtocolHandler {
	return s.handler
}

// SetProtocolHandler replaces the engine collaborator. Passing nil marks it
// destroyed; engine-dependent commands then fail without reaching the engine.
func (s *Session) SetProtocolHandler(handler agents.ProtocolHandler) {
	s.handler = handler
}

// PageAgent returns the Page backend for engine-side wiring.
func (s *Session) PageAgent() *agents.PageAgent { return s.page }

// LogAgent returns the Log backend for engine-side wiring.
func (s *Session) LogAgent() *agents.LogAgent { return s.log }

// DebuggerAgent returns the Debugger backend for engine-side wiring.
func (s *Session) DebuggerAgent() *agents.DebuggerAgent { return s.debugger }

// ConsoleClient returns the console hook the engine installs.
func (s *Session) ConsoleClient() *agents.ConsoleClient { return s.console }

// Dispatch processes one raw inbound message to completion: parse, route to
// the claiming domain dispatcher, respond. Exactly one response is sent per
// command carrying an id.
func (s *Session) Dispatch(raw []byte) {
	start := time.Now()

	req, err := protocol.ParseRequest(raw)
	if err != nil {
		var callID int64
		if req != nil {
			callID = req.ID
		}
		s.logger.Warn("rejecting malformed command", logging.ErrorField(err))
		s.sendError(callID, inerrors.New(inerrors.CodeParseError, inerrors.CategoryDecode, "invalid request"))
		return
	}

	var span spanCloser = nopSpan{}
	if s.tracing != nil {
		_, sp := s.tracing.StartCommandSpan(context.Background(), req.Method, req.ID)
		span = tracedSpan{tracing: s.tracing, span: sp}
	}

	for _, d := range s.dispatchers {
		if !d.CanDispatch(req.Method) {
			continue
		}
		s.channel.beginCommand()
		d.Dispatch(req.ID, req.Method, req.Params)
		status, errMsg := s.channel.commandOutcome()
		s.metrics.RecordCommand(d.Domain(), req.Method, status, time.Since(start))
		span.end(errMsg)
		return
	}

	s.logger.Debug("no dispatcher claimed method", logging.String("method", req.Method))
	s.sendError(req.ID, inerrors.MethodNotFound(req.Method))
	s.metrics.RecordCommand(domainOf(req.Method), req.Method, "unknown_method", time.Since(start))
	span.end("method not found")
}

func (s *Session) sendError(callID int64, ierr inerrors.InspectorError) {
	resp := &protocol.Response{ID: callID, Error: ierr.ToProtocolError()}
	if err := s.channel.SendResponse(resp); err != nil {
		s.logger.Error("failed to send error response", logging.ErrorField(err))
	}
}

// Close tears the session down: every backend that is currently enabled is
// disabled, in registration order, before the channel is released. Safe to
// call more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	for _, b := range s.backends {
		if b.Enabled() {
			b.Disable()
		}
	}
	s.handler = nil
	s.metrics.RecordSessionState(-1)

	err := s.channel.Close()
	s.logger.Info("session closed")
	return err
}

func domainOf(method string) string {
	for i := 0; i < len(method); i++ {
		if method[i] == '.' {
			return method[:i]
		}
	}
	return method
}

type spanCloser interface {
	end(errMsg string)
}

type nopSpan struct{}

func (nopSpan) end(string) {}

type tracedSpan struct {
	tracing *observability.TracingProvider
	span    trace.Span
}

func (t tracedSpan) end(errMsg string) {
	t.tracing.EndCommandSpan(t.span, errMsg)
}
