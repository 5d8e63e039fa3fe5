// Package protocol defines the wire types for the Kraken DevTools debugging
// channel: the command/response/event envelopes exchanged with a remote
// inspector front end, and the typed protocol values (script metadata, log
// entries, stack traces) carried inside them.
//
// # Wire format
//
// The channel speaks a Chrome-DevTools-Protocol-style JSON dialect. A command
// carries a caller-assigned id that is echoed verbatim in exactly one
// response; an event carries no id:
//
//	command:  { "id": 1, "method": "Page.reload", "params": {...} }
//	success:  { "id": 1, "result": {...} }
//	failure:  { "id": 1, "error": { "message": "...", "code": -32601 } }
//	event:    { "method": "Log.entryAdded", "params": {...} }
//
// # Protocol values
//
// Value types such as ScriptParsedNotification are immutable after Build.
// Each has a builder whose required-field setters track construction state;
// setting a required field twice or finalizing with one missing is a
// programming defect and panics rather than producing a half-built message.
// Optional fields use Maybe and are read with a caller-supplied default.
package protocol
