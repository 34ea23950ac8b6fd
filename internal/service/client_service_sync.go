package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

type syncEngine struct {
	cache   *noteCache
	queue   *pendingQueue
	remote  adapter.RemoteStore
	monitor ConnectivityMonitor
	ids     *utils.IDGenerator
	logger  *logger.Logger

	offline atomic.Bool
	// syncing is the single-flight guard of the drain-then-refresh cycle.
	syncing atomic.Bool

	subMu  sync.Mutex
	subs   map[int]func(models.Snapshot)
	nextID int
}

// NewSyncEngine wires the sync engine over the client's local storage, the
// remote note store, and a connectivity monitor.
func NewSyncEngine(storages *store.ClientStorages, remote adapter.RemoteStore, monitor ConnectivityMonitor, log *logger.Logger) SyncEngine {
	return &syncEngine{
		cache:   newNoteCache(storages.KV),
		queue:   newPendingQueue(storages.KV),
		remote:  remote,
		monitor: monitor,
		ids:     utils.NewIDGenerator(),
		logger:  log,
		subs:    make(map[int]func(models.Snapshot)),
	}
}

func (e *syncEngine) Initialize(ctx context.Context) {
	connected := e.monitor.FetchCurrent(ctx)
	e.offline.Store(!connected)

	if err := e.queue.Restore(ctx); err != nil {
		e.logger.Err(err).Msg("failed to restore pending queue")
	}

	if connected {
		notes, err := e.remote.List(ctx)
		if err == nil {
			if err = e.cache.ReplaceAll(ctx, notes); err != nil {
				e.logger.Err(err).Msg("failed to persist fetched notes")
			}
			e.notify()
			return
		}
		e.logger.Warn().Err(err).Msg("initial fetch failed, falling back to persisted cache")
	}

	if err := e.cache.Restore(ctx); err != nil {
		e.logger.Err(err).Msg("failed to restore cached notes")
	}
	e.notify()
}

func (e *syncEngine) Refresh(ctx context.Context) {
	if e.offline.Load() {
		return
	}

	notes, err := e.remote.List(ctx)
	if err != nil {
		// fail soft: the cache keeps its current view
		e.logger.Warn().Err(err).Msg("refresh fetch failed")
		return
	}

	if err = e.cache.ReplaceAll(ctx, notes); err != nil {
		e.logger.Err(err).Msg("failed to persist refreshed notes")
	}
	e.notify()
}

func (e *syncEngine) AddRecord(ctx context.Context, title, description string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return ErrEmptyField
	}

	payload := models.NotePayload{Title: title, Description: description}

	if !e.offline.Load() {
		note, err := e.remote.Create(ctx, payload)
		if err == nil {
			if err = e.cache.Append(ctx, note); err != nil {
				e.logger.Err(err).Msg("failed to persist created note")
			}
			e.notify()
			return nil
		}
		// the action is never lost: degrade to the offline path
		e.logger.Warn().Err(err).Msg("immediate create failed, queueing add action")
	}

	return e.deferAdd(ctx, payload)
}

// deferAdd queues an add action and optimistically appends a provisional
// note. The enqueue comes first: a note must never show up in the cache
// without a durably queued action behind it.
func (e *syncEngine) deferAdd(ctx context.Context, payload models.NotePayload) error {
	if err := e.queue.Enqueue(ctx, models.AddAction(payload)); err != nil {
		e.logger.Err(err).Msg("failed to enqueue add action")
		return err
	}

	provisional := models.Note{
		ID:          e.ids.GenerateProvisional(),
		Title:       payload.Title,
		Description: payload.Description,
	}
	if err := e.cache.Append(ctx, provisional); err != nil {
		e.logger.Err(err).Msg("failed to persist provisional note")
	}
	e.notify()
	return nil
}

func (e *syncEngine) DeleteRecord(ctx context.Context, id string) error {
	if !e.offline.Load() {
		err := e.remote.Delete(ctx, id)
		if err == nil || errors.Is(err, adapter.ErrNoteNotFound) {
			if err = e.cache.Remove(ctx, id); err != nil {
				e.logger.Err(err).Msg("failed to persist note removal")
			}
			e.notify()
			return nil
		}
		e.logger.Warn().Err(err).Str("id", id).Msg("immediate delete failed, queueing delete action")
	}

	// one policy on every path: the note leaves the cache as soon as the
	// delete intent is durably queued
	if err := e.queue.Enqueue(ctx, models.DeleteAction(id)); err != nil {
		e.logger.Err(err).Msg("failed to enqueue delete action")
		return err
	}
	if err := e.cache.Remove(ctx, id); err != nil {
		e.logger.Err(err).Msg("failed to persist note removal")
	}
	e.notify()
	return nil
}

func (e *syncEngine) OnConnectivityChange(ctx context.Context, connected bool) {
	e.offline.Store(!connected)
	e.notify()

	if connected {
		go e.Sync(context.WithoutCancel(ctx))
	}
}

// Sync runs one drain-then-refresh cycle. The CAS on syncing makes the
// cycle single-flight; the deferred release keeps the engine unlockable on
// every exit path.
func (e *syncEngine) Sync(ctx context.Context) {
	if !e.syncing.CompareAndSwap(false, true) {
		return
	}
	defer func() {
		e.syncing.Store(false)
		e.notify()
	}()
	e.notify()

	report, err := e.queue.Drain(ctx, e.applyAction)
	if err != nil {
		e.logger.Err(err).Msg("failed to persist queue after drain")
	}
	e.logger.Info().
		Int("applied", report.Applied).
		Int("failed", report.Failed).
		Msg("pending queue drained")

	// refresh unconditionally: after a partial drain the cache freshness
	// is otherwise undefined
	e.Refresh(ctx)
}

// applyAction replays one queued action against the server.
func (e *syncEngine) applyAction(ctx context.Context, action models.PendingAction) error {
	switch action.Type {
	case models.ActionAdd:
		if action.Payload == nil {
			e.logger.Error().Msg("queued add action without payload, dropping")
			return nil
		}
		if _, err := e.remote.Create(ctx, *action.Payload); err != nil {
			return err
		}
		// the confirmed note arrives with the next refresh; drop the
		// provisional copy so it is not duplicated
		if err := e.cache.RemoveProvisional(ctx, *action.Payload); err != nil {
			e.logger.Err(err).Msg("failed to drop provisional note")
		}
		return nil

	case models.ActionDelete:
		err := e.remote.Delete(ctx, action.NoteID)
		if errors.Is(err, adapter.ErrNoteNotFound) {
			// already gone remotely, the delete is complete
			return nil
		}
		return err

	default:
		e.logger.Error().Str("type", string(action.Type)).Msg("unknown queued action type, dropping")
		return nil
	}
}

func (e *syncEngine) Snapshot() models.Snapshot {
	return models.Snapshot{
		Notes: e.cache.Load(),
		Status: models.SyncStatus{
			Offline: e.offline.Load(),
			Syncing: e.syncing.Load(),
		},
	}
}

func (e *syncEngine) Subscribe(fn func(models.Snapshot)) func() {
	e.subMu.Lock()
	id := e.nextID
	e.nextID++
	e.subs[id] = fn
	e.subMu.Unlock()

	return func() {
		e.subMu.Lock()
		delete(e.subs, id)
		e.subMu.Unlock()
	}
}

// notify delivers a fresh snapshot to every subscriber. Handlers run on
// the calling goroutine and must not block.
func (e *syncEngine) notify() {
	e.subMu.Lock()
	fns := make([]func(models.Snapshot), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.subMu.Unlock()

	snap := e.Snapshot()
	for _, fn := range fns {
		fn(snap)
	}
}
