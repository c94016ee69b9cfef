package canvas

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the canvas core. Use errors.Is to test for them;
// most are wrapped with call-site context.
var (
	// ErrDegenerateTransform is returned when a transform with a (near) zero
	// determinant is inverted.
	ErrDegenerateTransform = errors.New("canvas: degenerate transform")

	// ErrInvalidPaint is returned when a paint cannot be resolved, for example
	// a gradient with no stops or a pattern paint without a pattern.
	ErrInvalidPaint = errors.New("canvas: invalid paint")

	// ErrStateUnderflow is returned by Restore when only the base state is left.
	ErrStateUnderflow = errors.New("canvas: state stack underflow")

	// ErrUnsupported is wrapped by backends that decline a capability.
	ErrUnsupported = errors.New("canvas: unsupported operation")

	// ErrSegmentIndex is returned when a path segment index is out of range.
	ErrSegmentIndex = errors.New("canvas: segment index out of range")

	// ErrInvalidArc is returned when an arc angle is NaN or infinite.
	ErrInvalidArc = errors.New("canvas: invalid arc angle")

	// ErrNoBackend is returned when a canvas is used without a backend.
	ErrNoBackend = errors.New("canvas: no backend")
)

// UnsupportedError reports a capability a backend could not honor.
// The backend has already drawn its documented fallback when it returns one.
type UnsupportedError struct {
	Backend string
	Feature string
}

// NewUnsupported returns an UnsupportedError for the given backend and feature.
func NewUnsupported(backend, feature string) *UnsupportedError {
	return &UnsupportedError{Backend: backend, Feature: feature}
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("canvas: %s backend does not support %s", e.Backend, e.Feature)
}

// Unwrap makes errors.Is(err, ErrUnsupported) succeed.
func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}
