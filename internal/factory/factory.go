package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/scoresheet/internal/config"
	"github.com/mcoot/scoresheet/internal/dependencies/clock"
	"github.com/mcoot/scoresheet/internal/dependencies/idgen"
	"github.com/mcoot/scoresheet/internal/dependencies/random"
	"github.com/mcoot/scoresheet/internal/services/scoring"
	"github.com/mcoot/scoresheet/internal/services/sheet"
	"github.com/mcoot/scoresheet/internal/storage"
	"github.com/mcoot/scoresheet/internal/storage/memory"
	redisstorage "github.com/mcoot/scoresheet/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    idgen.Generator

	// Services
	ScoringService  *scoring.Service
	SheetController *sheet.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SheetTTL bounds how long the memory backend keeps an untouched sheet.
	// Zero keeps sheets until the process exits. Redis uses RedisConfig.SheetTTL.
	SheetTTL time.Duration
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		store = memory.New(clk, cfg.SheetTTL)
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	logger.Info("storage ready", slog.String("storage_type", storageType))

	return newWithDependencies(store, clk, random.New(), idgen.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	ids idgen.Generator,
	logger *slog.Logger,
) *App {
	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		IDs:             ids,
		ScoringService:  scoring.New(),
		SheetController: sheet.NewController(store, clk, rnd, ids, logger),
	}
}

// Close releases the storage backend if it holds connections
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
