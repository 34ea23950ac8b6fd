package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyField:        http.StatusBadRequest,
	service.ErrValidationEmptyID: http.StatusBadRequest,

	validators.ErrEmptyNoteID:      http.StatusBadRequest,
	validators.ErrEmptyTitle:       http.StatusBadRequest,
	validators.ErrEmptyDescription: http.StatusBadRequest,

	store.ErrNoteNotFound:      http.StatusNotFound,
	store.ErrNothingDeleted:    http.StatusNotFound,
	store.ErrNoteAlreadyExists: http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
