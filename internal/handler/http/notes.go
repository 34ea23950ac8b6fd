package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	notes, err := h.services.NoteService.GetAllNotes(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error getting notes")
		http.Error(w, "error getting notes", statusFromError(err))
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	writeJSON(w, http.StatusOK, notes)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var payload models.NotePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), payload)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		http.Error(w, "error creating note", statusFromError(err))
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	note, err := h.services.NoteService.GetNote(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNote").Str("id", id).Msg("error getting note")
		http.Error(w, "error getting note", statusFromError(err))
		return
	}

	writeJSON(w, http.StatusOK, note)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	if err := h.services.NoteService.DeleteNote(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Str("id", id).Msg("error deleting note")
		http.Error(w, "error deleting note", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
