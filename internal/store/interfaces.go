package store

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository is the server-side persistence contract for the note
// collection.
type NoteRepository interface {
	// GetAllNotes returns every note ordered by creation time.
	GetAllNotes(ctx context.Context) ([]models.Note, error)

	// GetNote returns the note with the given id or ErrNoteNotFound.
	GetNote(ctx context.Context, id string) (models.Note, error)

	// SaveNote inserts a new note. Returns ErrNoteAlreadyExists when the
	// id is already taken.
	SaveNote(ctx context.Context, note models.Note) error

	// DeleteNote removes the note with the given id. Returns
	// ErrNothingDeleted when no row matched.
	DeleteNote(ctx context.Context, id string) error
}
