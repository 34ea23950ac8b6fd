// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/mock"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNoteService(t *testing.T, ctrl *gomock.Controller) (NoteService, *mock.MockNoteRepository) {
	t.Helper()
	repo := mock.NewMockNoteRepository(ctrl)
	return NewNoteService(repo), repo
}

func TestNoteService_GetAllNotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestNoteService(t, ctrl)
	ctx := context.Background()

	want := []models.Note{{ID: "1", Title: "a", Description: "b"}}
	repo.EXPECT().GetAllNotes(ctx).Return(want, nil)

	got, err := svc.GetAllNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoteService_GetNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestNoteService(t, ctrl)
	ctx := context.Background()

	want := models.Note{ID: "1", Title: "a", Description: "b"}
	repo.EXPECT().GetNote(ctx, "1").Return(want, nil)

	got, err := svc.GetNote(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNoteService_GetNote_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNoteService(t, ctrl)

	_, err := svc.GetNote(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidationEmptyID)
}

func TestNoteService_GetNote_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestNoteService(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetNote(ctx, "missing").Return(models.Note{}, store.ErrNoteNotFound)

	_, err := svc.GetNote(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteService_CreateNote_AssignsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestNoteService(t, ctrl)
	ctx := context.Background()

	var saved models.Note
	repo.EXPECT().SaveNote(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, n models.Note) error {
		saved = n
		return nil
	})

	got, err := svc.CreateNote(ctx, models.NotePayload{Title: "t", Description: "d"})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.False(t, strings.HasPrefix(got.ID, models.ProvisionalIDPrefix), "server ids are never provisional")
	assert.Equal(t, saved, got)
	assert.Equal(t, "t", got.Title)
	assert.Equal(t, "d", got.Description)
}

func TestNoteService_CreateNote_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNoteService(t, ctrl)
	ctx := context.Background()

	_, err := svc.CreateNote(ctx, models.NotePayload{Title: " ", Description: "d"})
	assert.ErrorIs(t, err, validators.ErrEmptyTitle)

	_, err = svc.CreateNote(ctx, models.NotePayload{Title: "t", Description: ""})
	assert.ErrorIs(t, err, validators.ErrEmptyDescription)
}

func TestNoteService_DeleteNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo := newTestNoteService(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().DeleteNote(ctx, "1").Return(nil)
	require.NoError(t, svc.DeleteNote(ctx, "1"))

	repo.EXPECT().DeleteNote(ctx, "2").Return(store.ErrNothingDeleted)
	assert.ErrorIs(t, svc.DeleteNote(ctx, "2"), store.ErrNothingDeleted)
}

func TestNoteService_DeleteNote_EmptyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNoteService(t, ctrl)

	assert.ErrorIs(t, svc.DeleteNote(context.Background(), ""), ErrValidationEmptyID)
}
