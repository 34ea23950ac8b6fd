package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

// cachedDataKey is the local-store key holding the serialized record cache.
const cachedDataKey = "cachedData"

// noteCache holds the last known authoritative-or-optimistic view of the
// collection and mirrors every change to the local store. It is owned
// exclusively by the sync engine.
type noteCache struct {
	kv store.KeyValueStore

	mu    sync.RWMutex
	notes []models.Note
}

func newNoteCache(kv store.KeyValueStore) *noteCache {
	return &noteCache{kv: kv}
}

// Restore loads the persisted cache from the local store. A missing key is
// tolerated: the cache simply starts empty.
func (c *noteCache) Restore(ctx context.Context) error {
	raw, err := c.kv.Get(ctx, cachedDataKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read cached notes: %w", err)
	}

	var notes []models.Note
	if err = json.Unmarshal([]byte(raw), &notes); err != nil {
		return fmt.Errorf("decode cached notes: %w", err)
	}

	c.mu.Lock()
	c.notes = notes
	c.mu.Unlock()
	return nil
}

// Load returns a copy of the current in-memory view.
func (c *noteCache) Load() []models.Note {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// ReplaceAll atomically swaps the cache to exactly the given sequence and
// persists it.
func (c *noteCache) ReplaceAll(ctx context.Context, notes []models.Note) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notes = make([]models.Note, len(notes))
	copy(c.notes, notes)
	return c.persistLocked(ctx)
}

// Append adds a note at the end of the cache and persists the result.
func (c *noteCache) Append(ctx context.Context, note models.Note) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.notes = append(c.notes, note)
	return c.persistLocked(ctx)
}

// Remove deletes the note with the given id, if present, and persists the
// result. Removing an absent id is not an error.
func (c *noteCache) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, n := range c.notes {
		if n.ID == id {
			c.notes = append(c.notes[:i], c.notes[i+1:]...)
			break
		}
	}
	return c.persistLocked(ctx)
}

// RemoveProvisional deletes the first provisional note matching payload.
// Called when a queued add has been confirmed by the server, so the
// provisional copy does not linger next to the authoritative one.
func (c *noteCache) RemoveProvisional(ctx context.Context, payload models.NotePayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, n := range c.notes {
		if n.Provisional() && n.Title == payload.Title && n.Description == payload.Description {
			c.notes = append(c.notes[:i], c.notes[i+1:]...)
			break
		}
	}
	return c.persistLocked(ctx)
}

// persistLocked writes the full cache to the local store. Callers must
// hold c.mu.
func (c *noteCache) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(c.notes)
	if err != nil {
		return fmt.Errorf("encode cached notes: %w", err)
	}

	if err = c.kv.Set(ctx, cachedDataKey, string(raw)); err != nil {
		return fmt.Errorf("persist cached notes: %w", err)
	}
	return nil
}
