package storage

import (
	"context"
	"time"

	"github.com/mcoot/scoresheet/internal/model"
)

// DefaultSheetTTL is how long an untouched sheet is kept
const DefaultSheetTTL = 24 * time.Hour

// Storage persists score sheets by code.
// Implementations return model.ErrSheetNotFound for unknown codes and hand
// out copies, so callers may mutate what they get back.
type Storage interface {
	SaveSheet(ctx context.Context, sheet *model.Sheet) error
	GetSheet(ctx context.Context, code model.SheetCode) (*model.Sheet, error)
	DeleteSheet(ctx context.Context, code model.SheetCode) error
	SheetExists(ctx context.Context, code model.SheetCode) (bool, error)
}
