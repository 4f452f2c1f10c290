package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mcoot/scoresheet/internal/dependencies/clock"
	"github.com/mcoot/scoresheet/internal/model"
	"github.com/mcoot/scoresheet/internal/storage"
)

// sweepInterval bounds how often SaveSheet scans for expired sheets
const sweepInterval = time.Minute

type entry struct {
	sheet     *model.Sheet
	expiresAt time.Time // Zero when the sheet never expires
}

// Storage is an in-memory implementation of the storage interface.
// Each save keeps a sheet for ttl from the clock's current time; a zero ttl
// keeps sheets for the lifetime of the process.
type Storage struct {
	mu        sync.RWMutex
	sheets    map[model.SheetCode]entry
	clock     clock.Clock
	ttl       time.Duration
	nextSweep time.Time
}

// New creates a new in-memory storage instance
func New(clk clock.Clock, ttl time.Duration) *Storage {
	return &Storage{
		sheets: make(map[model.SheetCode]entry),
		clock:  clk,
		ttl:    ttl,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSheet(ctx context.Context, sheet *model.Sheet) error {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(now)

	e := entry{sheet: sheet.Clone()}
	if s.ttl > 0 {
		e.expiresAt = now.Add(s.ttl)
	}
	s.sheets[sheet.Code] = e
	return nil
}

func (s *Storage) GetSheet(ctx context.Context, code model.SheetCode) (*model.Sheet, error) {
	now := s.clock.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sheets[code]
	if !ok || e.expired(now) {
		return nil, model.ErrSheetNotFound
	}
	return e.sheet.Clone(), nil
}

func (s *Storage) DeleteSheet(ctx context.Context, code model.SheetCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sheets, code)
	return nil
}

func (s *Storage) SheetExists(ctx context.Context, code model.SheetCode) (bool, error) {
	now := s.clock.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.sheets[code]
	return ok && !e.expired(now), nil
}

// sweep drops expired sheets. Callers hold the write lock.
func (s *Storage) sweep(now time.Time) {
	if s.ttl <= 0 || now.Before(s.nextSweep) {
		return
	}
	for code, e := range s.sheets {
		if e.expired(now) {
			delete(s.sheets, code)
		}
	}
	s.nextSweep = now.Add(sweepInterval)
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}
