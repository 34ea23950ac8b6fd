package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *noteRepository) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("id", "title", "description").
		From("notes").
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build notes query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetAllNotes").
			Msg("failed to execute query for getting all notes")
		return nil, fmt.Errorf("failed to query all notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if scanErr := rows.Scan(&n.ID, &n.Title, &n.Description); scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.GetAllNotes").
				Msg("failed to scan note row")
			return nil, fmt.Errorf("failed to scan note row: %w", scanErr)
		}
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate note rows: %w", err)
	}

	return notes, nil
}

func (r *noteRepository) GetNote(ctx context.Context, id string) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Select("id", "title", "description").
		From("notes").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to build note query: %w", err)
	}

	var n models.Note
	scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(&n.ID, &n.Title, &n.Description)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Note{}, ErrNoteNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "noteRepository.GetNote").
			Str("id", id).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("failed to scan note row: %w", scanErr)
	}

	return n, nil
}

func (r *noteRepository) SaveNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Insert("notes").
		Columns("id", "title", "description").
		Values(note.ID, note.Title, note.Description).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "noteRepository.SaveNote").
			Str("id", note.ID).
			Msg("failed to execute insert for note")
		err = r.errorClassifier.Classify(err)
		if errors.Is(err, ErrNoteAlreadyExists) {
			return err
		}
		return fmt.Errorf("failed to save note (id=%s): %w", note.ID, err)
	}

	return nil
}

func (r *noteRepository) DeleteNote(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.
		Delete("notes").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("id", id).
			Msg("failed to execute delete for note")
		return fmt.Errorf("failed to delete note (id=%s): %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNothingDeleted
	}

	return nil
}
