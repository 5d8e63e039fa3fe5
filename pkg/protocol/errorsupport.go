package protocol

import "strings"

// ErrorSupport accumulates field-level validation errors while command
// parameters are decoded. Decoders push the name of the field they are
// descending into, record errors against the current path, and pop on the
// way out; if any error was recorded the command fails before the backend
// is invoked.
type ErrorSupport struct {
	path   []string
	errors []string
}

// NewErrorSupport creates an empty accumulator.
func NewErrorSupport() *ErrorSupport {
	return &ErrorSupport{}
}

// Push descends into a named field.
func (e *ErrorSupport) Push(name string) {
	e.path = append(e.path, name)
}

// Pop ascends out of the current field.
func (e *ErrorSupport) Pop() {
	if len(e.path) == 0 {
		panic("protocol: ErrorSupport.Pop with empty path")
	}
	e.path = e.path[:len(e.path)-1]
}

// AddError records an error against the current field path.
func (e *ErrorSupport) AddError(msg string) {
	if len(e.path) > 0 {
		msg = strings.Join(e.path, ".") + ": " + msg
	}
	e.errors = append(e.errors, msg)
}

// HasErrors reports whether any error has been recorded.
func (e *ErrorSupport) HasErrors() bool {
	return len(e.errors) > 0
}

// Errors returns all recorded errors joined into one message.
func (e *ErrorSupport) Errors() string {
	return strings.Join(e.errors, "; ")
}
