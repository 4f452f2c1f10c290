package idgen

import (
	"github.com/google/uuid"

	"github.com/mcoot/scoresheet/internal/model"
)

// Generator hands out player identities. Only uniqueness matters; nothing
// orders by the value.
type Generator interface {
	NewPlayerID() model.PlayerID
}

// UUIDGenerator issues random (version 4) UUIDs
type UUIDGenerator struct{}

// New creates a UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewPlayerID returns a fresh random player ID
func (UUIDGenerator) NewPlayerID() model.PlayerID {
	return model.PlayerID(uuid.NewString())
}
