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

// pendingActionsKey is the local-store key holding the serialized queue.
const pendingActionsKey = "pendingActions"

// DrainReport summarises one pass over the pending queue.
type DrainReport struct {
	// Applied is the number of actions confirmed by the server and
	// removed from the queue.
	Applied int
	// Failed is the number of actions that failed and remain queued for
	// the next drain.
	Failed int
}

// pendingQueue is the durable FIFO of deferred mutations. The UI side only
// ever appends; the sync engine drains front-to-back. Owned exclusively by
// the sync engine.
type pendingQueue struct {
	kv store.KeyValueStore

	mu      sync.Mutex
	actions []models.PendingAction
}

func newPendingQueue(kv store.KeyValueStore) *pendingQueue {
	return &pendingQueue{kv: kv}
}

// Restore loads the persisted queue from the local store. A missing key is
// tolerated: the queue starts empty.
func (q *pendingQueue) Restore(ctx context.Context) error {
	raw, err := q.kv.Get(ctx, pendingActionsKey)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read pending actions: %w", err)
	}

	var actions []models.PendingAction
	if err = json.Unmarshal([]byte(raw), &actions); err != nil {
		return fmt.Errorf("decode pending actions: %w", err)
	}

	q.mu.Lock()
	q.actions = actions
	q.mu.Unlock()
	return nil
}

// Enqueue appends action and persists the full queue. A persistence
// failure rolls the in-memory append back and is returned to the caller —
// an action the local store did not accept is not queued at all.
func (q *pendingQueue) Enqueue(ctx context.Context, action models.PendingAction) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.actions = append(q.actions, action)
	if err := q.persistLocked(ctx); err != nil {
		q.actions = q.actions[:len(q.actions)-1]
		return err
	}
	return nil
}

// Len returns the number of queued actions.
func (q *pendingQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.actions)
}

// Actions returns a copy of the queued actions in order.
func (q *pendingQueue) Actions() []models.PendingAction {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.PendingAction, len(q.actions))
	copy(out, q.actions)
	return out
}

// Drain applies every queued action in FIFO order exactly once. An action
// that fails is retained and the pass continues with the next one; retries
// happen on the next drain, not within this call. Afterwards the remaining
// actions are persisted — or the key removed entirely when none remain.
//
// The queue lock is not held while apply runs, so enqueues issued from UI
// intents during a drain are kept and remain ordered after the retained
// failures.
func (q *pendingQueue) Drain(ctx context.Context, apply func(ctx context.Context, action models.PendingAction) error) (DrainReport, error) {
	q.mu.Lock()
	snapshot := make([]models.PendingAction, len(q.actions))
	copy(snapshot, q.actions)
	q.mu.Unlock()

	var report DrainReport
	retained := make([]models.PendingAction, 0, len(snapshot))
	for _, action := range snapshot {
		if err := apply(ctx, action); err != nil {
			report.Failed++
			retained = append(retained, action)
			continue
		}
		report.Applied++
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	// actions enqueued while the drain was running sit past the snapshot
	q.actions = append(retained, q.actions[len(snapshot):]...)

	if len(q.actions) == 0 {
		if err := q.kv.Remove(ctx, pendingActionsKey); err != nil {
			return report, fmt.Errorf("clear pending actions: %w", err)
		}
		return report, nil
	}
	if err := q.persistLocked(ctx); err != nil {
		return report, err
	}
	return report, nil
}

// persistLocked writes the full queue to the local store. Callers must
// hold q.mu.
func (q *pendingQueue) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(q.actions)
	if err != nil {
		return fmt.Errorf("encode pending actions: %w", err)
	}

	if err = q.kv.Set(ctx, pendingActionsKey, string(raw)); err != nil {
		return fmt.Errorf("persist pending actions: %w", err)
	}
	return nil
}
