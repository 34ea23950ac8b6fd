package tui

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
}

func New(services *service.ClientServices, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// MainLoop runs the interactive note list until the user quits. Engine
// snapshots are pushed into the program as messages, so offline edges and
// background sync cycles show up without any polling in the model.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services)
	program := tea.NewProgram(model, tea.WithAltScreen())

	unsubscribe := t.services.Engine.Subscribe(func(snap models.Snapshot) {
		program.Send(snapshotMsg{snap: snap})
	})
	defer unsubscribe()

	_, err := program.Run()
	return err
}
