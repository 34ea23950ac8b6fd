package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/service"
)

// connectivityWorker runs the interval probe that watches server
// reachability. Run returns immediately; the probing happens on a
// background goroutine owned by the job.
type connectivityWorker struct {
	ctx      context.Context
	job      service.ConnectivityJob
	interval time.Duration
}

func newConnectivityWorker(ctx context.Context, job service.ConnectivityJob, interval time.Duration) *connectivityWorker {
	return &connectivityWorker{
		ctx:      ctx,
		job:      job,
		interval: interval,
	}
}

func (c *connectivityWorker) Run() {
	c.job.Start(c.ctx, c.interval)
}

func (c *connectivityWorker) Stop() {
	c.job.Stop()
}
