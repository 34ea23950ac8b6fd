package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SyncEngine is the client-side core of go-note-sync. It owns the record
// cache, the pending-action queue, and the offline/syncing state; the UI
// layer only observes snapshots and issues intents through this interface.
type SyncEngine interface {
	// Initialize queries the connectivity monitor once, restores the
	// pending queue from the local store, and fills the record cache:
	// from the server when reachable, from the last persisted cache
	// otherwise. A missing persisted cache is tolerated (the cache starts
	// empty).
	Initialize(ctx context.Context)

	// Refresh re-fetches the collection from the server and replaces the
	// cache. It fails soft: on any error the cache is left unchanged and
	// nothing is returned to the caller.
	Refresh(ctx context.Context)

	// AddRecord creates a note with the given title and description.
	// Online, the note is created on the server immediately; offline or
	// on a failed attempt, an add action is queued and a provisional note
	// appears in the cache. Returns ErrEmptyField before any side effect
	// when either field is blank, or a persistence error when the queued
	// action could not be stored durably.
	AddRecord(ctx context.Context, title, description string) error

	// DeleteRecord removes the note with the given id. The note always
	// leaves the cache optimistically; when the server cannot be reached
	// the delete is queued for replay. Returns a persistence error when
	// the queued action could not be stored durably.
	DeleteRecord(ctx context.Context, id string) error

	// OnConnectivityChange updates the offline flag. A transition to
	// connected triggers Sync asynchronously; the caller is never
	// blocked.
	OnConnectivityChange(ctx context.Context, connected bool)

	// Sync runs one drain-then-refresh cycle. Concurrent calls are
	// single-flight: while a cycle is in progress every other call
	// returns immediately without effect.
	Sync(ctx context.Context)

	// Snapshot returns a copy of the current notes and status.
	Snapshot() models.Snapshot

	// Subscribe registers fn to be called with a fresh snapshot after
	// every observable state change. The returned function unsubscribes.
	Subscribe(fn func(models.Snapshot)) (unsubscribe func())
}

// ConnectivityMonitor reports server reachability.
type ConnectivityMonitor interface {
	// FetchCurrent probes the server once and returns whether it is
	// reachable right now.
	FetchCurrent(ctx context.Context) bool

	// Subscribe registers handler to be invoked with the new state on
	// every reachability change. The returned function unsubscribes.
	Subscribe(handler func(connected bool)) (unsubscribe func())
}

// ConnectivityJob is a background worker that keeps a ConnectivityMonitor
// probing on an interval.
type ConnectivityJob interface {
	// Start launches the probe goroutine. A non-positive interval
	// defaults to 5 seconds. Any previously running job is stopped
	// before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the probe goroutine to exit and blocks until it has
	// fully terminated. Safe to call when the job is not running.
	Stop()
}
