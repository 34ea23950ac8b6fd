package models

import "strings"

// ProvisionalIDPrefix marks locally minted identifiers. A note carrying an
// id with this prefix has not yet been confirmed by the server.
const ProvisionalIDPrefix = "local-"

// Note is a single record of the synchronized collection.
type Note struct {
	// ID is assigned by the server on successful creation. While the note
	// is only known locally the id is provisional (see ProvisionalIDPrefix).
	ID string `json:"id"`

	// Title is a short human-readable name of the note.
	Title string `json:"title"`

	// Description is the free-form body of the note.
	Description string `json:"description"`
}

// NotePayload is the without-id shape of a note: what the client sends on
// creation and what a queued add action carries.
type NotePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Payload returns the without-id projection of the note.
func (n Note) Payload() NotePayload {
	return NotePayload{Title: n.Title, Description: n.Description}
}

// Provisional reports whether the note still carries a locally minted id.
func (n Note) Provisional() bool {
	return strings.HasPrefix(n.ID, ProvisionalIDPrefix)
}
