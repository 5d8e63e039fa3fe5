package protocol

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a protocol-level error code. The values follow the
// JSON-RPC 2.0 reserved range, which the DevTools wire dialect shares.
type ErrorCode int

const (
	ParseError     ErrorCode = -32700
	InvalidRequest ErrorCode = -32600
	MethodNotFound ErrorCode = -32601
	InvalidParams  ErrorCode = -32602
	InternalError  ErrorCode = -32603
	ServerError    ErrorCode = -32000
)

// Request represents one inbound command from the inspector front end.
// ID is caller-assigned and echoed back unmodified in the response.
type Request struct {
	ID     int64           `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// ParseRequest decodes a raw inbound message into a Request.
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse command envelope: %w", err)
	}
	if req.Method == "" {
		return &req, fmt.Errorf("command has no method")
	}
	return &req, nil
}

// Response represents the single reply produced for one Request. Exactly one
// of Result or Error is populated.
type Response struct {
	ID     int64           `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *Error          `json:"error,omitempty"`
}

// NewResponse creates a success response. A nil result serializes as an
// empty result object, matching the front end's expectation that every
// success carries a result key.
func NewResponse(id int64, result interface{}) (*Response, error) {
	resultJSON := json.RawMessage(`{}`)
	if result != nil {
		var err error
		resultJSON, err = json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}
	}
	return &Response{ID: id, Result: resultJSON}, nil
}

// NewErrorResponse creates a failure response.
func NewErrorResponse(id int64, code ErrorCode, message string) *Response {
	return &Response{ID: id, Error: &Error{Code: code, Message: message}}
}

// Event represents one outbound notification. Events carry no id and expect
// no reply.
type Event struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

// NewEvent creates an event with the given domain-qualified method name.
func NewEvent(method string, params interface{}) (*Event, error) {
	var paramsJSON json.RawMessage
	if params != nil {
		var err error
		paramsJSON, err = json.Marshal(params)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal event params: %w", err)
		}
	}
	return &Event{Method: method, Params: paramsJSON}, nil
}

// Error represents the error member of a failure response.
type Error struct {
	Code    ErrorCode `json:"code,omitempty"`
	Message string    `json:"message"`
	Data    string    `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// IsCommand reports whether a raw message looks like an inbound command
// (has an id and a method).
func IsCommand(data []byte) bool {
	var msg struct {
		ID     *int64 `json:"id"`
		Method string `json:"method"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		return false
	}
	return msg.ID != nil && msg.Method != ""
}

// IsEvent reports whether a raw message looks like an outbound event
// (method, no id).
func IsEvent(data []byte) bool {
	var msg struct {
		ID     *int64 `json:"id"`
		Method string `json:"method"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		return false
	}
	return msg.ID == nil && msg.Method != ""
}
