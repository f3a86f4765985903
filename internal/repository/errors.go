package repository

import "errors"

var (
	// ErrNotFound is returned by multi-step operations whose target row is absent.
	ErrNotFound = errors.New("not found")
	// ErrSessionClosed is returned when a write targets a session whose
	// fecha_fin is already set.
	ErrSessionClosed = errors.New("session already finalized")
)
