package sheet

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/text/unicode/norm"

	"github.com/mcoot/scoresheet/internal/dependencies/clock"
	"github.com/mcoot/scoresheet/internal/dependencies/idgen"
	"github.com/mcoot/scoresheet/internal/dependencies/random"
	"github.com/mcoot/scoresheet/internal/model"
	"github.com/mcoot/scoresheet/internal/storage"
)

const (
	// SheetCodeLength is the length of generated sheet codes
	SheetCodeLength = 6
	// SheetCodeAlphabet is the characters used in sheet codes (avoid confusing chars)
	SheetCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// ScoreEntry is one cell of the score table
type ScoreEntry struct {
	PlayerID model.PlayerID
	Round    int // 0-based
	Value    string
}

// Controller applies sheet operations to stored sheets.
//
// Operations on the same sheet are serialized. Invalid operations leave the
// sheet untouched and are not errors; the returned sheet shows the outcome.
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	ids     idgen.Generator
	logger  *slog.Logger
	locks   *sheetLocks
}

// NewController creates a new SheetController
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	ids idgen.Generator,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		ids:     ids,
		logger:  logger,
		locks:   newSheetLocks(),
	}
}

// CreateSheet creates an empty sheet with a unique code
func (c *Controller) CreateSheet(ctx context.Context) (*model.Sheet, error) {
	var code model.SheetCode
	for {
		code = model.SheetCode(c.random.String(SheetCodeLength, SheetCodeAlphabet))
		exists, err := c.storage.SheetExists(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("checking sheet code: %w", err)
		}
		if !exists {
			break
		}
	}

	sheet := model.NewSheet(code, c.clock.Now())
	if err := c.storage.SaveSheet(ctx, sheet); err != nil {
		c.logger.Error("failed to save sheet",
			slog.String("sheet_code", string(code)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("sheet created", slog.String("sheet_code", string(code)))

	return sheet, nil
}

// GetSheet retrieves a sheet by code
func (c *Controller) GetSheet(ctx context.Context, code model.SheetCode) (*model.Sheet, error) {
	return c.storage.GetSheet(ctx, code)
}

// DeleteSheet removes a sheet
func (c *Controller) DeleteSheet(ctx context.Context, code model.SheetCode) error {
	unlock := c.locks.lock(code)
	defer unlock()

	exists, err := c.storage.SheetExists(ctx, code)
	if err != nil {
		return err
	}
	if !exists {
		return model.ErrSheetNotFound
	}

	if err := c.storage.DeleteSheet(ctx, code); err != nil {
		return err
	}

	c.logger.Info("sheet deleted", slog.String("sheet_code", string(code)))

	return nil
}

// AddPlayer adds a player with a fresh ID during setup. Names are stored NFC
// normalized.
func (c *Controller) AddPlayer(ctx context.Context, code model.SheetCode, name string) (*model.Sheet, error) {
	id := c.ids.NewPlayerID()
	name = norm.NFC.String(name)
	return c.mutate(ctx, code, "player added", func(s *model.Sheet) bool {
		return s.AddPlayer(id, name)
	}, slog.String("player_id", string(id)))
}

// RemovePlayer removes a player during setup
func (c *Controller) RemovePlayer(ctx context.Context, code model.SheetCode, id model.PlayerID) (*model.Sheet, error) {
	return c.mutate(ctx, code, "player removed", func(s *model.Sheet) bool {
		return s.RemovePlayer(id)
	}, slog.String("player_id", string(id)))
}

// StartGame starts scoring once enough players have joined
func (c *Controller) StartGame(ctx context.Context, code model.SheetCode) (*model.Sheet, error) {
	return c.mutate(ctx, code, "game started", func(s *model.Sheet) bool {
		return s.StartGame()
	})
}

// AddRound appends an empty round
func (c *Controller) AddRound(ctx context.Context, code model.SheetCode) (*model.Sheet, error) {
	return c.mutate(ctx, code, "round added", func(s *model.Sheet) bool {
		return s.AddRound()
	})
}

// UpdateScore sets one player's score for a round from raw input
func (c *Controller) UpdateScore(ctx context.Context, code model.SheetCode, id model.PlayerID, round int, raw string) (*model.Sheet, error) {
	return c.mutate(ctx, code, "score updated", func(s *model.Sheet) bool {
		return s.UpdateScore(id, round, raw)
	}, slog.String("player_id", string(id)), slog.Int("round", round))
}

// UpdateScores applies a batch of score entries as one operation
func (c *Controller) UpdateScores(ctx context.Context, code model.SheetCode, entries []ScoreEntry) (*model.Sheet, error) {
	return c.mutate(ctx, code, "scores updated", func(s *model.Sheet) bool {
		changed := false
		for _, e := range entries {
			if s.UpdateScore(e.PlayerID, e.Round, e.Value) {
				changed = true
			}
		}
		return changed
	}, slog.Int("entry_count", len(entries)))
}

// ResetGame clears all scores and returns the sheet to setup
func (c *Controller) ResetGame(ctx context.Context, code model.SheetCode) (*model.Sheet, error) {
	return c.mutate(ctx, code, "game reset", func(s *model.Sheet) bool {
		return s.ResetGame()
	})
}

// mutate loads a sheet under its lock, applies op and saves if op changed it
func (c *Controller) mutate(
	ctx context.Context,
	code model.SheetCode,
	event string,
	op func(*model.Sheet) bool,
	attrs ...slog.Attr,
) (*model.Sheet, error) {
	unlock := c.locks.lock(code)
	defer unlock()

	sheet, err := c.storage.GetSheet(ctx, code)
	if err != nil {
		return nil, err
	}

	if !op(sheet) {
		c.logger.Debug("sheet unchanged",
			slog.String("sheet_code", string(code)),
			slog.String("operation", event),
		)
		return sheet, nil
	}

	sheet.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSheet(ctx, sheet); err != nil {
		c.logger.Error("failed to save sheet",
			slog.String("sheet_code", string(code)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	args := []any{
		slog.String("sheet_code", string(code)),
		slog.String("state", string(sheet.State)),
		slog.Int("player_count", len(sheet.Players)),
		slog.Int("round_count", sheet.RoundCount()),
	}
	for _, a := range attrs {
		args = append(args, a)
	}
	c.logger.Info(event, args...)

	return sheet, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateSheet(ctx context.Context) (*model.Sheet, error)
	GetSheet(ctx context.Context, code model.SheetCode) (*model.Sheet, error)
	DeleteSheet(ctx context.Context, code model.SheetCode) error
	AddPlayer(ctx context.Context, code model.SheetCode, name string) (*model.Sheet, error)
	RemovePlayer(ctx context.Context, code model.SheetCode, id model.PlayerID) (*model.Sheet, error)
	StartGame(ctx context.Context, code model.SheetCode) (*model.Sheet, error)
	AddRound(ctx context.Context, code model.SheetCode) (*model.Sheet, error)
	UpdateScore(ctx context.Context, code model.SheetCode, id model.PlayerID, round int, raw string) (*model.Sheet, error)
	UpdateScores(ctx context.Context, code model.SheetCode, entries []ScoreEntry) (*model.Sheet, error)
	ResetGame(ctx context.Context, code model.SheetCode) (*model.Sheet, error)
}

var _ ControllerInterface = (*Controller)(nil)
