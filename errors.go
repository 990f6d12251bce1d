package pointset

import "errors"

var (
	// ErrInvalidArgument is returned when an input violates a precondition
	// that can be checked cheaply, such as a point sequence that is too
	// short.
	ErrInvalidArgument = errors.New("pointset: invalid argument")

	// ErrUndefinedInterpolation is returned when the bracketing segment of
	// an interpolation query is vertical.
	ErrUndefinedInterpolation = errors.New("pointset: undefined interpolation")

	// ErrEngineFailure wraps errors returned by an [Engine].
	ErrEngineFailure = errors.New("pointset: engine failure")
)
