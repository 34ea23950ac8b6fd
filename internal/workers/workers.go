package workers

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers assembles the client's background workers: currently the
// connectivity probe keeping the sync engine informed about reachability.
func NewClientWorkers(ctx context.Context, services *service.ClientServices, cfg config.ClientWorkers) *Workers {
	return &Workers{
		workers: []Worker{
			newConnectivityWorker(ctx, services.Watcher, cfg.PingInterval),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts down every worker that supports stopping.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		if s, ok := worker.(interface{ Stop() }); ok {
			s.Stop()
		}
	}
}
