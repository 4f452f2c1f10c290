package factory

import (
	"time"

	"github.com/mcoot/scoresheet/internal/dependencies/mocks"
	"github.com/mcoot/scoresheet/internal/storage"
	"github.com/mcoot/scoresheet/internal/storage/memory"
	"github.com/mcoot/scoresheet/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockIDs    *mocks.MockIDGenerator
}

// NewTestApp creates an App backed by memory storage with mocked dependencies.
// Player IDs come out as "player-1", "player-2", ... and sheet codes count
// up from "AAAAAA" unless queued on MockRandom.
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	store := memory.New(mockClock, storage.DefaultSheetTTL)
	mockRandom := mocks.NewMockRandom()
	mockIDs := mocks.NewMockIDGenerator()

	app := newWithDependencies(store, mockClock, mockRandom, mockIDs, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockIDs:    mockIDs,
	}
}
