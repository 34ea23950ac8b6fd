package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

type connectivityWatcher struct {
	remote adapter.RemoteStore
	logger *logger.Logger

	connected atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	subMu    sync.Mutex
	handlers map[int]func(connected bool)
	nextID   int
}

// NewConnectivityWatcher creates a watcher that derives reachability from
// the remote store's ping endpoint. The watcher is idle until Start is
// called; FetchCurrent works regardless.
func NewConnectivityWatcher(remote adapter.RemoteStore, log *logger.Logger) interface {
	ConnectivityMonitor
	ConnectivityJob
} {
	return &connectivityWatcher{
		remote:   remote,
		logger:   log,
		handlers: make(map[int]func(bool)),
	}
}

// FetchCurrent implements ConnectivityMonitor. It probes the server once
// and records the result as the last known state.
func (w *connectivityWatcher) FetchCurrent(ctx context.Context) bool {
	ok := w.remote.Ping(ctx) == nil
	w.connected.Store(ok)
	return ok
}

// Subscribe implements ConnectivityMonitor.
func (w *connectivityWatcher) Subscribe(handler func(connected bool)) func() {
	w.subMu.Lock()
	id := w.nextID
	w.nextID++
	w.handlers[id] = handler
	w.subMu.Unlock()

	return func() {
		w.subMu.Lock()
		delete(w.handlers, id)
		w.subMu.Unlock()
	}
}

// Start implements ConnectivityJob. It stops any previously running job,
// then launches a background goroutine probing the server every interval
// and notifying subscribers on every edge. If interval is zero or negative
// it defaults to 5 seconds. The goroutine exits when ctx is cancelled or
// Stop is called.
func (w *connectivityWatcher) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Second
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.probe(jobCtx)
			}
		}
	}()
}

// Stop implements ConnectivityJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call
// when the job is not running (no-op in that case).
func (w *connectivityWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// probe pings the server and fires the subscribed handlers when the
// reachability state flipped since the previous observation.
func (w *connectivityWatcher) probe(ctx context.Context) {
	prev := w.connected.Load()
	ok := w.remote.Ping(ctx) == nil
	if ok == prev {
		return
	}
	w.connected.Store(ok)
	w.logger.Info().Bool("connected", ok).Msg("connectivity changed")

	w.subMu.Lock()
	handlers := make([]func(bool), 0, len(w.handlers))
	for _, h := range w.handlers {
		handlers = append(handlers, h)
	}
	w.subMu.Unlock()

	for _, h := range handlers {
		h(ok)
	}
}
