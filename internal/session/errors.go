package session

import "errors"

// Domain errors for session runs.
var (
	// ErrUnknownScript indicates an unregistered hand script name.
	ErrUnknownScript = errors.New("session: unknown script")

	// ErrInvalidConfig indicates a non-positive timestep or duration.
	ErrInvalidConfig = errors.New("session: invalid run configuration")
)
