// Package agents implements the server side of each supported protocol
// domain: the backend that receives commands for the domain, guards them
// behind the enable/disable lifecycle, and performs the engine-level side
// effects.
//
// Backends share a shape, not state: each is Disabled until an explicit
// enable command succeeds, and disable is always idempotent. Commands run on
// the session's single dispatch turn, so backends hold no locks of their own.
package agents

import (
	"github.com/love514425/kraken/pkg/protocol"
)

// PageBackend handles Page domain commands.
type PageBackend interface {
	Enable() protocol.DispatchResponse
	Disable() protocol.DispatchResponse
	Reload(ignoreCache protocol.Maybe[bool], scriptToEvaluateOnLoad protocol.Maybe[string]) protocol.DispatchResponse
}

// LogBackend handles Log domain commands plus the non-command entry point
// the engine's console hook calls.
type LogBackend interface {
	Enable() protocol.DispatchResponse
	Disable() protocol.DispatchResponse
	Clear() protocol.DispatchResponse

	// AddMessageToConsole forwards one console message as Log.entryAdded
	// when the backend is enabled; while disabled the entry is dropped.
	AddMessageToConsole(entry *protocol.LogEntry)
}

// DebuggerBackend handles the Debugger domain surface of this slice.
type DebuggerBackend interface {
	Enable() protocol.DispatchResponse
	Disable() protocol.DispatchResponse

	// ScriptParsed announces one compiled script to the front end when the
	// backend is enabled.
	ScriptParsed(n *protocol.ScriptParsedNotification)
}

// ProtocolHandler is the engine-facing collaborator backends call into to
// perform real side effects. It is consumed here, implemented by the host.
type ProtocolHandler interface {
	// HandlePageReload instructs the page to perform a navigation reload.
	HandlePageReload()
}

// ProtocolHandlerProvider yields the current engine collaborator, or nil
// once the owning session has been torn down.
type ProtocolHandlerProvider interface {
	ProtocolHandler() ProtocolHandler
}
