package service

import (
	"github.com/MKhiriev/go-note-sync/internal/store"
)

// Services groups the server-side services passed to the HTTP handler.
type Services struct {
	NoteService NoteService
}

func NewServices(repos *store.Repositories) *Services {
	return &Services{
		NoteService: NewNoteService(repos.NoteRepository),
	}
}
