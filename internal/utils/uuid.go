package utils

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/models"
)

// IDGenerator mints note identifiers. UUIDv7 is preferred for its time
// ordering; on the rare generation failure it falls back to a random UUID.
type IDGenerator struct {
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Generate returns a new server-grade identifier.
func (g *IDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GenerateProvisional returns a locally minted identifier for a note that
// has not been confirmed by the server yet. The prefix keeps provisional
// ids distinguishable from server-assigned ones.
func (g *IDGenerator) GenerateProvisional() string {
	return models.ProvisionalIDPrefix + g.Generate()
}
