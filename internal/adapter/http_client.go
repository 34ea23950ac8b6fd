package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-sync/models"
)

// HTTPClientConfig carries the settings of the HTTP note-store adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpNoteStore struct {
	client *resty.Client
}

// NewHTTPNoteStore builds a RemoteStore talking to the note server over
// HTTP. An empty base URL defaults to localhost, a non-positive timeout to
// 15 seconds.
func NewHTTPNoteStore(cfg HTTPClientConfig) RemoteStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpNoteStore{client: cli}
}

func (h *httpNoteStore) List(ctx context.Context) ([]models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/notes/")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}

	return notes, nil
}

func (h *httpNoteStore) Create(ctx context.Context, payload models.NotePayload) (models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/api/notes/")
	if err != nil {
		return models.Note{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode create response: %w", err)
	}

	return note, nil
}

func (h *httpNoteStore) Get(ctx context.Context, id string) (models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/notes/" + id)
	if err != nil {
		return models.Note{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode get response: %w", err)
	}

	return note, nil
}

func (h *httpNoteStore) Delete(ctx context.Context, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/notes/" + id)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpNoteStore) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	if code == http.StatusNotFound {
		return ErrNoteNotFound
	}
	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: http %d", ErrServerUnavailable, code)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}
	return fmt.Errorf("http %d: %s", code, body)
}
