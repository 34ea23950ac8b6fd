package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// ClientStorages groups the client-side storage backends into a single
// value that can be passed around the service layer. Currently it holds
// only the [KeyValueStore] backing the record cache and pending queue.
type ClientStorages struct {
	// KV is the SQLite-backed key/value store persisted on the client
	// device.
	KV KeyValueStore
}

// NewClientStorages initialises the client storage layer: it opens an
// SQLite connection to the file path in cfg.DB.DSN (creating the file if
// needed) and ensures the kv schema exists.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	kv, err := NewKVSQLiteStore(context.Background(), cfg.DB.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{KV: kv}, nil
}
