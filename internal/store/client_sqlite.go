package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

type kvSQLiteStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewKVSQLiteStore opens (creating if necessary) the SQLite database at
// dsn and ensures the kv table exists. An empty dsn opens an in-memory
// database.
func NewKVSQLiteStore(ctx context.Context, dsn string, log *logger.Logger) (KeyValueStore, error) {
	if dsn == "" {
		dsn = ":memory:"
	}

	if dsn != ":memory:" {
		if err := createLocalDBFileIfNotExists(dsn); err != nil {
			log.Err(err).Str("func", "NewKVSQLiteStore").Msg("error creating database file")
			return nil, fmt.Errorf("error creating database file: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewKVSQLiteStore").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to local DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewKVSQLiteStore").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createKVTable); err != nil {
		log.Err(err).Str("func", "NewKVSQLiteStore").Msg("error creating kv table")
		return nil, fmt.Errorf("error creating kv table: %w", err)
	}
	log.Debug().Str("func", "NewKVSQLiteStore").Msg("connected to local database successfully")

	return &kvSQLiteStore{db: conn, logger: log}, nil
}

func (s *kvSQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, getKVEntry, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("failed to read kv entry")
		return "", fmt.Errorf("failed to read kv entry %q: %w", key, err)
	}

	return value, nil
}

func (s *kvSQLiteStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, upsertKVEntry, key, value); err != nil {
		s.logger.Err(err).Str("key", key).Msg("failed to upsert kv entry")
		return fmt.Errorf("failed to write kv entry %q: %w", key, err)
	}

	return nil
}

func (s *kvSQLiteStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, removeKVEntry, key); err != nil {
		s.logger.Err(err).Str("key", key).Msg("failed to remove kv entry")
		return fmt.Errorf("failed to remove kv entry %q: %w", key, err)
	}

	return nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
