package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaybeAbsent(t *testing.T) {
	var m Maybe[string]

	assert.False(t, m.IsJust())
	assert.Equal(t, "fallback", m.FromMaybe("fallback"))
	assert.Panics(t, func() { m.FromJust() })
}

func TestMaybePresent(t *testing.T) {
	m := Just(42)

	assert.True(t, m.IsJust())
	assert.Equal(t, 42, m.FromJust())
	// The default is ignored once a value is present.
	assert.Equal(t, 42, m.FromMaybe(-1))
}

func TestErrorSupportPaths(t *testing.T) {
	errs := NewErrorSupport()
	assert.False(t, errs.HasErrors())

	errs.Push("reload")
	errs.Push("ignoreCache")
	errs.AddError("expected bool")
	errs.Pop()
	errs.Pop()
	errs.AddError("bad envelope")

	assert.True(t, errs.HasErrors())
	assert.Equal(t, "reload.ignoreCache: expected bool; bad envelope", errs.Errors())
}

func TestErrorSupportPopUnderflow(t *testing.T) {
	errs := NewErrorSupport()
	assert.Panics(t, func() { errs.Pop() })
}

func TestDispatchResponse(t *testing.T) {
	ok := OK()
	assert.True(t, ok.IsSuccess())
	assert.Equal(t, StatusSuccess, ok.Status())

	fail := Failure("session destroyed or protocol handler destroyed")
	assert.False(t, fail.IsSuccess())
	assert.Equal(t, StatusError, fail.Status())
	assert.Equal(t, ServerError, fail.ErrorCode())
	assert.Equal(t, "session destroyed or protocol handler destroyed", fail.ErrorMessage())

	invalid := FailureWithCode(InvalidParams, "ignoreCache: expected bool")
	assert.Equal(t, InvalidParams, invalid.ErrorCode())

	decline := FallThrough()
	assert.Equal(t, StatusFallThrough, decline.Status())
}
