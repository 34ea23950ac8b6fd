package adapter

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteStore is the client-side contract of the note collection endpoint.
// Every call maps to a single HTTP request; a non-2xx response is returned
// as an error.
type RemoteStore interface {
	// List fetches the full authoritative collection.
	List(ctx context.Context) ([]models.Note, error)

	// Create sends a without-id payload and returns the created note with
	// its server-assigned id.
	Create(ctx context.Context, payload models.NotePayload) (models.Note, error)

	// Get fetches a single note by its server-assigned id. Returns
	// ErrNoteNotFound if the server answers 404.
	Get(ctx context.Context, id string) (models.Note, error)

	// Delete removes the note with the given id.
	Delete(ctx context.Context, id string) error

	// Ping probes server reachability. A nil error means the server
	// answered within the configured timeout.
	Ping(ctx context.Context) error
}
