package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
)

type noteService struct {
	repo      store.NoteRepository
	ids       *utils.IDGenerator
	validator validators.Validator
}

func NewNoteService(repo store.NoteRepository) NoteService {
	return &noteService{
		repo:      repo,
		ids:       utils.NewIDGenerator(),
		validator: validators.NewNoteValidator(),
	}
}

func (s *noteService) GetAllNotes(ctx context.Context) ([]models.Note, error) {
	notes, err := s.repo.GetAllNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all notes: %w", err)
	}

	return notes, nil
}

func (s *noteService) GetNote(ctx context.Context, id string) (models.Note, error) {
	if id == "" {
		return models.Note{}, ErrValidationEmptyID
	}

	note, err := s.repo.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note %s: %w", id, err)
	}

	return note, nil
}

func (s *noteService) CreateNote(ctx context.Context, payload models.NotePayload) (models.Note, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.Note{}, fmt.Errorf("error during note validation before saving: %w", err)
	}

	note := models.Note{
		ID:          s.ids.Generate(),
		Title:       payload.Title,
		Description: payload.Description,
	}
	if err := s.repo.SaveNote(ctx, note); err != nil {
		return models.Note{}, fmt.Errorf("save note: %w", err)
	}

	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, id string) error {
	if id == "" {
		return ErrValidationEmptyID
	}

	if err := s.repo.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}

	return nil
}
