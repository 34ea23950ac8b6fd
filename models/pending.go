package models

// ActionType discriminates the variants of PendingAction.
type ActionType string

const (
	ActionAdd    ActionType = "add"
	ActionDelete ActionType = "delete"
)

// PendingAction is a deferred mutation waiting to be replayed against the
// server. Exactly one of Payload or NoteID is meaningful, depending on Type:
// an add carries the note payload, a delete carries the target note id.
type PendingAction struct {
	Type    ActionType   `json:"type"`
	Payload *NotePayload `json:"payload,omitempty"`
	NoteID  string       `json:"note_id,omitempty"`
}

// AddAction builds a pending add for the given payload.
func AddAction(payload NotePayload) PendingAction {
	return PendingAction{Type: ActionAdd, Payload: &payload}
}

// DeleteAction builds a pending delete for the given note id.
func DeleteAction(noteID string) PendingAction {
	return PendingAction{Type: ActionDelete, NoteID: noteID}
}
