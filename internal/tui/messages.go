package tui

import (
	"github.com/MKhiriev/go-note-sync/models"
)

type snapshotMsg struct {
	snap models.Snapshot
}

type addDoneMsg struct {
	err error
}

type deleteDoneMsg struct {
	err error
}

type syncDoneMsg struct{}

type copiedMsg struct{}
