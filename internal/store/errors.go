package store

import "errors"

// Sentinel errors returned by storage implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValueStore.Get] when no value has
	// been stored under the requested key. A cold start with no persisted
	// cache is expected to hit this.
	ErrKeyNotFound = errors.New("key not found in local store")

	// ErrNoteNotFound is returned when a query or delete targets a note id
	// that does not exist in the database.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoteAlreadyExists is returned when an INSERT violates the primary
	// key constraint on the notes table.
	ErrNoteAlreadyExists = errors.New("note already exists")

	// ErrNothingDeleted is returned when a DELETE completes without error
	// but affects zero rows.
	ErrNothingDeleted = errors.New("no note was deleted")
)
