package errors

// Protocol error codes surfaced in failure responses. The reserved JSON-RPC
// range is shared with the DevTools wire dialect.
const (
	CodeParseError     int = -32700
	CodeInvalidRequest int = -32600
	CodeMethodNotFound int = -32601
	CodeInvalidParams  int = -32602
	CodeInternalError  int = -32603
	CodeServerError    int = -32000
)
