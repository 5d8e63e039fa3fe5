// Package errors provides structured error handling for the inspector core.
// It defines error types that map to protocol error codes so that every
// failure crossing the dispatch boundary carries a code, a category, and a
// human-readable message.
package errors

import (
	"fmt"

	"github.com/love514425/kraken/pkg/protocol"
)

// Category classifies an error for handling and logging.
type Category string

const (
	// CategoryDecode covers malformed or missing command parameters.
	CategoryDecode Category = "decode"
	// CategoryRouting covers unknown domains and methods.
	CategoryRouting Category = "routing"
	// CategorySession covers unreachable engine collaborators and torn-down
	// sessions.
	CategorySession Category = "session"
	// CategoryInternal covers everything that should not happen.
	CategoryInternal Category = "internal"
)

// InspectorError is the interface implemented by all inspector core errors.
type InspectorError interface {
	error

	// Code returns the protocol error code.
	Code() int

	// Category returns the error classification.
	Category() Category

	// Unwrap returns the underlying cause, if any.
	Unwrap() error

	// ToProtocolError converts the error into the wire error object.
	ToProtocolError() *protocol.Error
}

type baseError struct {
	code     int
	message  string
	data     string
	category Category
	cause    error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() int { return e.code }

func (e *baseError) Category() Category { return e.category }

func (e *baseError) Unwrap() error { return e.cause }

func (e *baseError) ToProtocolError() *protocol.Error {
	return &protocol.Error{Code: protocol.ErrorCode(e.code), Message: e.message, Data: e.data}
}

// New creates an inspector error with an explicit code and category.
func New(code int, category Category, message string) InspectorError {
	return &baseError{code: code, message: message, category: category}
}

// Newf creates an inspector error with a formatted message.
func Newf(code int, category Category, format string, args ...interface{}) InspectorError {
	return &baseError{code: code, message: fmt.Sprintf(format, args...), category: category}
}

// Wrap attaches a cause to an inspector error.
func Wrap(err error, code int, category Category, message string) InspectorError {
	return &baseError{code: code, message: message, category: category, cause: err}
}

// DecodeError reports malformed command parameters. The message is the
// accumulated field-level error text.
func DecodeError(message string) InspectorError {
	return New(CodeInvalidParams, CategoryDecode, message)
}

// MissingParameter reports a required command parameter that was not
// supplied.
func MissingParameter(param string) InspectorError {
	return Newf(CodeInvalidParams, CategoryDecode, "missing required parameter: %s", param)
}

// InvalidParameter reports a command parameter of the wrong shape.
func InvalidParameter(param, expected string) InspectorError {
	return Newf(CodeInvalidParams, CategoryDecode, "invalid parameter '%s': expected %s", param, expected)
}

// MethodNotFound reports a routing failure: the method is not malformed,
// merely unsupported. The offending method name travels in the error data,
// not the message, so clients can match on the message text.
func MethodNotFound(method string) InspectorError {
	err := &baseError{code: CodeMethodNotFound, message: "method not found", category: CategoryRouting}
	err.data = fmt.Sprintf("'%s' wasn't found", method)
	return err
}

// SessionDestroyed reports an unreachable engine collaborator.
func SessionDestroyed() InspectorError {
	return New(CodeServerError, CategorySession, "session destroyed or protocol handler destroyed")
}

// Internal reports an unexpected core failure.
func Internal(err error) InspectorError {
	return Wrap(err, CodeInternalError, CategoryInternal, "internal error")
}
