package mocks

import (
	"fmt"

	"github.com/mcoot/scoresheet/internal/dependencies/idgen"
	"github.com/mcoot/scoresheet/internal/model"
)

// MockIDGenerator hands out queued IDs, then sequential ones ("player-1", "player-2", ...)
type MockIDGenerator struct {
	Queued []model.PlayerID
	next   int
}

// Ensure MockIDGenerator implements Generator
var _ idgen.Generator = (*MockIDGenerator)(nil)

// NewMockIDGenerator creates a MockIDGenerator
func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

// NewPlayerID returns the next queued ID, or the next sequential one
func (g *MockIDGenerator) NewPlayerID() model.PlayerID {
	if len(g.Queued) > 0 {
		id := g.Queued[0]
		g.Queued = g.Queued[1:]
		return id
	}
	g.next++
	return model.PlayerID(fmt.Sprintf("player-%d", g.next))
}

// Queue adds IDs to be returned before falling back to sequential ones
func (g *MockIDGenerator) Queue(ids ...model.PlayerID) {
	g.Queued = append(g.Queued, ids...)
}
