package protocol

// Maybe holds an optional protocol field: a value that is either present or
// absent, with no implicit default. The zero Maybe is absent.
type Maybe[T any] struct {
	value T
	set   bool
}

// Just wraps a present value.
func Just[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, set: true}
}

// IsJust reports whether a value is present.
func (m Maybe[T]) IsJust() bool {
	return m.set
}

// FromJust returns the contained value. Calling it on an absent Maybe is a
// programming defect and panics; callers that cannot prove presence must use
// FromMaybe.
func (m Maybe[T]) FromJust() T {
	if !m.set {
		panic("protocol: FromJust called on absent value")
	}
	return m.value
}

// FromMaybe returns the contained value, or def when absent.
func (m Maybe[T]) FromMaybe(def T) T {
	if !m.set {
		return def
	}
	return m.value
}
