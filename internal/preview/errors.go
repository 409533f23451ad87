package preview

import "errors"

var (
	// ErrInvalidStateTransition is returned for page or zoom operations on a session
	// that is not ready or whose document type does not support paging.
	ErrInvalidStateTransition = errors.New("invalid preview state transition")
	// ErrSessionClosed is returned when opening a session that has been closed.
	ErrSessionClosed = errors.New("preview session closed")
	// ErrSessionNotFound is returned by Manager for unknown session IDs.
	ErrSessionNotFound = errors.New("preview session not found")
)
