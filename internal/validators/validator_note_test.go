package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestNoteValidator_ValidNote(t *testing.T) {
	v := NewNoteValidator()

	note := models.Note{ID: "1", Title: "t", Description: "d"}
	assert.NoError(t, v.Validate(context.Background(), note))
	assert.NoError(t, v.Validate(context.Background(), &note))
}

func TestNoteValidator_Note_MissingFields(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	tests := []struct {
		name string
		note models.Note
		want error
	}{
		{name: "empty id", note: models.Note{Title: "t", Description: "d"}, want: ErrEmptyNoteID},
		{name: "empty title", note: models.Note{ID: "1", Description: "d"}, want: ErrEmptyTitle},
		{name: "whitespace title", note: models.Note{ID: "1", Title: "  ", Description: "d"}, want: ErrEmptyTitle},
		{name: "empty description", note: models.Note{ID: "1", Title: "t"}, want: ErrEmptyDescription},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, v.Validate(ctx, tt.note), tt.want)
		})
	}
}

func TestNoteValidator_Note_FieldScoping(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	// без id, но проверяем только title и description
	note := models.Note{Title: "t", Description: "d"}
	assert.NoError(t, v.Validate(ctx, note, FieldTitle, FieldDescription))

	assert.ErrorIs(t, v.Validate(ctx, note, "nonexistent"), ErrUnknownField)
}

func TestNoteValidator_Payload(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.NotePayload{Title: "t", Description: "d"}))
	assert.ErrorIs(t, v.Validate(ctx, models.NotePayload{Description: "d"}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(ctx, models.NotePayload{Title: "t"}), ErrEmptyDescription)
	assert.ErrorIs(t, v.Validate(ctx, models.NotePayload{Title: "t", Description: "d"}, FieldID), ErrUnknownField)
}

func TestNoteValidator_UnsupportedType(t *testing.T) {
	v := NewNoteValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
