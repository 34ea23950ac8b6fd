package adapter

import "errors"

var (
	// ErrNoteNotFound is returned when the server answers 404 for a
	// note id.
	ErrNoteNotFound = errors.New("note not found on server")

	// ErrServerUnavailable is returned when the server answers with a 5xx
	// status or the request cannot be delivered at all.
	ErrServerUnavailable = errors.New("server unavailable")
)
