package models

// SyncStatus is the process-wide connectivity and sync state observed by
// the UI layer.
type SyncStatus struct {
	// Offline is true while the server is considered unreachable.
	Offline bool `json:"offline"`

	// Syncing is true only for the duration of a drain-then-refresh cycle.
	Syncing bool `json:"syncing"`
}

// Snapshot is an immutable view of the engine state handed to observers.
// Notes is a copy; mutating it does not affect the engine.
type Snapshot struct {
	Notes  []Note     `json:"notes"`
	Status SyncStatus `json:"status"`
}
