// Package dispatcher routes wire-level commands to domain backends. Each
// protocol domain gets one dispatcher holding a method-name-to-handler map
// built once in its constructor, an alias table for backward-compatible
// method renames, and the decode-validate-invoke-respond pipeline shared by
// every command.
package dispatcher

import (
	"encoding/json"

	inerrors "github.com/love514425/kraken/pkg/errors"
	"github.com/love514425/kraken/pkg/frontend"
	"github.com/love514425/kraken/pkg/logging"
	"github.com/love514425/kraken/pkg/protocol"
)

// Dispatcher is the per-domain router from a method name to a backend
// operation.
type Dispatcher interface {
	// Domain returns the domain prefix this dispatcher serves.
	Domain() string

	// CanDispatch reports whether the method (or one of its aliases) is
	// registered here.
	CanDispatch(method string) bool

	// Dispatch decodes params, invokes the backend and sends exactly one
	// response tagged with callID. The routing layer must have checked
	// CanDispatch first.
	Dispatch(callID int64, method string, params json.RawMessage)
}

// callHandler is one bound command handler. Decode errors accumulate in
// errs; the handler sends the response itself.
type callHandler func(callID int64, method string, params json.RawMessage, errs *protocol.ErrorSupport)

// dispatcherBase carries the machinery shared by every domain dispatcher.
type dispatcherBase struct {
	domain      string
	channel     frontend.Channel
	logger      logging.Logger
	dispatchMap map[string]callHandler
	redirects   map[string]string
}

func newDispatcherBase(domain string, channel frontend.Channel, logger logging.Logger) dispatcherBase {
	if logger == nil {
		logger = logging.Nop()
	}
	return dispatcherBase{
		domain:      domain,
		channel:     channel,
		logger:      logger.WithFields(logging.String("component", domain+"-dispatcher")),
		dispatchMap: make(map[string]callHandler),
		redirects:   make(map[string]string),
	}
}

func (d *dispatcherBase) Domain() string {
	return d.domain
}

// resolve follows the alias table to the canonical method name.
func (d *dispatcherBase) resolve(method string) string {
	if canonical, ok := d.redirects[method]; ok {
		return canonical
	}
	return method
}

func (d *dispatcherBase) CanDispatch(method string) bool {
	_, ok := d.dispatchMap[d.resolve(method)]
	return ok
}

func (d *dispatcherBase) Dispatch(callID int64, method string, params json.RawMessage) {
	handler, ok := d.dispatchMap[d.resolve(method)]
	if !ok {
		// The routing layer is supposed to guard with CanDispatch; answer
		// rather than crash if it didn't.
		d.logger.Warn("dispatch of unregistered method", logging.String("method", method))
		d.sendError(callID, inerrors.MethodNotFound(method))
		return
	}
	handler(callID, method, params, protocol.NewErrorSupport())
}

// sendResult sends a success response. A nil result serializes as {}.
func (d *dispatcherBase) sendResult(callID int64, result interface{}) {
	resp, err := protocol.NewResponse(callID, result)
	if err != nil {
		d.logger.Error("failed to build response", logging.ErrorField(err))
		d.sendError(callID, inerrors.Internal(err))
		return
	}
	if err := d.channel.SendResponse(resp); err != nil {
		d.logger.Error("failed to send response",
			logging.Int64("call_id", callID), logging.ErrorField(err))
	}
}

// sendError sends a failure response built from an inspector error.
func (d *dispatcherBase) sendError(callID int64, ierr inerrors.InspectorError) {
	wire := ierr.ToProtocolError()
	resp := &protocol.Response{ID: callID, Error: wire}
	if err := d.channel.SendResponse(resp); err != nil {
		d.logger.Error("failed to send error response",
			logging.Int64("call_id", callID), logging.ErrorField(err))
	}
}

// sendDispatchResponse translates a backend outcome into the wire response.
// Backend failures are forwarded unchanged, tagged with the original call id.
func (d *dispatcherBase) sendDispatchResponse(callID int64, resp protocol.DispatchResponse) {
	switch resp.Status() {
	case protocol.StatusSuccess:
		d.sendResult(callID, nil)
	case protocol.StatusError:
		wire := protocol.NewErrorResponse(callID, resp.ErrorCode(), resp.ErrorMessage())
		if err := d.channel.SendResponse(wire); err != nil {
			d.logger.Error("failed to send error response",
				logging.Int64("call_id", callID), logging.ErrorField(err))
		}
	case protocol.StatusFallThrough:
		// Nothing claimed the command after all.
		d.sendError(callID, inerrors.MethodNotFound(""))
	}
}

// reportDecodeErrors fails the command with the accumulated parameter
// errors. The backend is never invoked.
func (d *dispatcherBase) reportDecodeErrors(callID int64, errs *protocol.ErrorSupport) {
	d.logger.Debug("command parameters rejected",
		logging.Int64("call_id", callID), logging.String("errors", errs.Errors()))
	d.sendError(callID, inerrors.DecodeError(errs.Errors()))
}

// decodeParamsObject unmarshals a params payload into per-field raw values.
// Absent and null payloads decode as an empty object.
func decodeParamsObject(params json.RawMessage, errs *protocol.ErrorSupport) map[string]json.RawMessage {
	if len(params) == 0 || string(params) == "null" {
		return map[string]json.RawMessage{}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(params, &fields); err != nil {
		errs.AddError("params is not an object")
		return map[string]json.RawMessage{}
	}
	return fields
}

// optionalBool extracts an optional boolean field into a Maybe.
func optionalBool(fields map[string]json.RawMessage, name string, errs *protocol.ErrorSupport) protocol.Maybe[bool] {
	raw, ok := fields[name]
	if !ok {
		return protocol.Maybe[bool]{}
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		errs.Push(name)
		errs.AddError("expected bool")
		errs.Pop()
		return protocol.Maybe[bool]{}
	}
	return protocol.Just(v)
}

// optionalString extracts an optional string field into a Maybe.
func optionalString(fields map[string]json.RawMessage, name string, errs *protocol.ErrorSupport) protocol.Maybe[string] {
	raw, ok := fields[name]
	if !ok {
		return protocol.Maybe[string]{}
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		errs.Push(name)
		errs.AddError("expected string")
		errs.Pop()
		return protocol.Maybe[string]{}
	}
	return protocol.Just(v)
}
