package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-sync/models"
)

const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
)

type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.NotePayload:
		return v.validatePayload(ctx, value, fields...)
	case *models.NotePayload:
		return v.validatePayload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(ctx context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if note.ID == "" {
				return ErrEmptyNoteID
			}
		case FieldTitle:
			if strings.TrimSpace(note.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if strings.TrimSpace(note.Description) == "" {
				return ErrEmptyDescription
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validatePayload(ctx context.Context, payload models.NotePayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(payload.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldDescription:
			if strings.TrimSpace(payload.Description) == "" {
				return ErrEmptyDescription
			}
		case FieldID:
			return ErrUnknownField
		default:
			return ErrUnknownField
		}
	}

	return nil
}
