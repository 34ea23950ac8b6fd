package service

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

// NoteService is the server-side contract for managing the note
// collection.
type NoteService interface {
	// GetAllNotes returns the full collection.
	GetAllNotes(ctx context.Context) ([]models.Note, error)

	// GetNote returns the note with the given id.
	GetNote(ctx context.Context, id string) (models.Note, error)

	// CreateNote validates payload, assigns a fresh id, and persists the
	// note. Returns the created note with its id.
	CreateNote(ctx context.Context, payload models.NotePayload) (models.Note, error)

	// DeleteNote removes the note with the given id.
	DeleteNote(ctx context.Context, id string) error
}
