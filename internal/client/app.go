package client

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/tui"
	"github.com/MKhiriev/go-note-sync/internal/workers"
)

type App struct {
	services   *service.ClientServices
	tui        *tui.TUI
	workersCfg config.ClientWorkers
	logger     *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	return &App{
		services:   services,
		tui:        ui,
		workersCfg: workersCfg,
		logger:     log,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	a.services.Engine.Initialize(ctx)

	// reachability edges from the probe drive the engine's replay cycle
	unsubscribe := a.services.Monitor.Subscribe(func(connected bool) {
		a.services.Engine.OnConnectivityChange(ctx, connected)
	})
	defer unsubscribe()

	clientWorkers := workers.NewClientWorkers(ctx, a.services, a.workersCfg)
	clientWorkers.Run()
	defer clientWorkers.Stop()

	return a.tui.MainLoop(ctx)
}
