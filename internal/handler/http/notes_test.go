package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Mock: NoteService ----

type mockNoteSvc struct {
	notes     []models.Note
	getErr    error
	createErr error
	deleteErr error
}

func (m *mockNoteSvc) GetAllNotes(_ context.Context) ([]models.Note, error) {
	return m.notes, m.getErr
}

func (m *mockNoteSvc) GetNote(_ context.Context, id string) (models.Note, error) {
	if m.getErr != nil {
		return models.Note{}, m.getErr
	}
	for _, n := range m.notes {
		if n.ID == id {
			return n, nil
		}
	}
	return models.Note{}, store.ErrNoteNotFound
}

func (m *mockNoteSvc) CreateNote(_ context.Context, payload models.NotePayload) (models.Note, error) {
	if m.createErr != nil {
		return models.Note{}, m.createErr
	}
	return models.Note{ID: "generated", Title: payload.Title, Description: payload.Description}, nil
}

func (m *mockNoteSvc) DeleteNote(_ context.Context, _ string) error {
	return m.deleteErr
}

func newTestRouter(svc service.NoteService) http.Handler {
	h := NewHandler(&service.Services{NoteService: svc}, logger.Nop())
	return h.Init()
}

func TestHandler_ListNotes(t *testing.T) {
	svc := &mockNoteSvc{notes: []models.Note{{ID: "1", Title: "a", Description: "b"}}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/notes/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, svc.notes, got)
}

func TestHandler_ListNotes_EmptyCollection(t *testing.T) {
	router := newTestRouter(&mockNoteSvc{})

	req := httptest.NewRequest(http.MethodGet, "/api/notes/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// пустая коллекция сериализуется как [], не как null
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandler_CreateNote(t *testing.T) {
	router := newTestRouter(&mockNoteSvc{})

	body, err := json.Marshal(models.NotePayload{Title: "t", Description: "d"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/notes/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "generated", got.ID)
	assert.Equal(t, "t", got.Title)
}

func TestHandler_CreateNote_InvalidJSON(t *testing.T) {
	router := newTestRouter(&mockNoteSvc{})

	req := httptest.NewRequest(http.MethodPost, "/api/notes/", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_CreateNote_EmptyFields(t *testing.T) {
	router := newTestRouter(&mockNoteSvc{createErr: service.ErrEmptyField})

	body, err := json.Marshal(models.NotePayload{Title: "", Description: ""})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/notes/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_GetNote(t *testing.T) {
	svc := &mockNoteSvc{notes: []models.Note{{ID: "1", Title: "a", Description: "b"}}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/notes/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, svc.notes[0], got)
}

func TestHandler_GetNote_NotFound(t *testing.T) {
	router := newTestRouter(&mockNoteSvc{})

	req := httptest.NewRequest(http.MethodGet, "/api/notes/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_DeleteNote(t *testing.T) {
	router := newTestRouter(&mockNoteSvc{})

	req := httptest.NewRequest(http.MethodDelete, "/api/notes/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_DeleteNote_NothingDeleted(t *testing.T) {
	router := newTestRouter(&mockNoteSvc{deleteErr: store.ErrNothingDeleted})

	req := httptest.NewRequest(http.MethodDelete, "/api/notes/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Ping(t *testing.T) {
	router := newTestRouter(&mockNoteSvc{})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestHandler_TraceIDHeader(t *testing.T) {
	router := newTestRouter(&mockNoteSvc{})

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader), "every response carries a trace id")

	// переданный клиентом trace id возвращается без изменений
	req = httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(traceIDHeader, "client-trace")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "client-trace", rec.Header().Get(traceIDHeader))
}
