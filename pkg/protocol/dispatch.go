package protocol

// DispatchStatus classifies the outcome of one backend invocation.
type DispatchStatus int

const (
	// StatusSuccess means the command completed and a result should be sent.
	StatusSuccess DispatchStatus = iota
	// StatusError means the command failed with a protocol error.
	StatusError
	// StatusFallThrough means this backend declined the command and another
	// handler may claim it.
	StatusFallThrough
)

// DispatchResponse is the typed outcome a domain backend returns for one
// command. It is translated into the wire response by the dispatcher; a
// failing backend returns an error-status response, it never panics across
// the dispatch boundary.
type DispatchResponse struct {
	status  DispatchStatus
	code    ErrorCode
	message string
}

// OK returns a success response.
func OK() DispatchResponse {
	return DispatchResponse{status: StatusSuccess}
}

// Failure returns an error response with an explanatory message.
func Failure(message string) DispatchResponse {
	return DispatchResponse{status: StatusError, code: ServerError, message: message}
}

// FailureWithCode returns an error response with an explicit error code.
func FailureWithCode(code ErrorCode, message string) DispatchResponse {
	return DispatchResponse{status: StatusError, code: code, message: message}
}

// FallThrough returns a declined response.
func FallThrough() DispatchResponse {
	return DispatchResponse{status: StatusFallThrough}
}

// Status returns the outcome classification.
func (r DispatchResponse) Status() DispatchStatus { return r.status }

// IsSuccess reports whether the command completed.
func (r DispatchResponse) IsSuccess() bool { return r.status == StatusSuccess }

// ErrorCode returns the protocol error code for a failed command.
func (r DispatchResponse) ErrorCode() ErrorCode { return r.code }

// ErrorMessage returns the explanatory message for a failed command.
func (r DispatchResponse) ErrorMessage() string { return r.message }
