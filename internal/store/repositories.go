package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/migrations"
)

// Repositories groups the server-side repositories into a single value
// passed to the service layer.
type Repositories struct {
	NoteRepository NoteRepository
}

// NewRepositories connects to PostgreSQL, applies pending schema
// migrations, and wires the repositories.
func NewRepositories(cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	log.Info().Msg("creating server repositories...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Repositories{
		NoteRepository: NewNoteRepository(db, log),
	}, nil
}
