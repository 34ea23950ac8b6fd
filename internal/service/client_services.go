package service

import (
	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

// ClientServices groups the client-side services handed to the UI layer
// and the application wiring.
type ClientServices struct {
	Engine  SyncEngine
	Monitor ConnectivityMonitor
	Watcher ConnectivityJob
}

func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteStore, log *logger.Logger) *ClientServices {
	watcher := NewConnectivityWatcher(remote, log)

	return &ClientServices{
		Engine:  NewSyncEngine(storages, remote, watcher, log),
		Monitor: watcher,
		Watcher: watcher,
	}
}
