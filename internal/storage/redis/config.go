package redis

import (
	"time"

	"github.com/mcoot/scoresheet/internal/storage"
)

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// SheetTTL is how long an untouched sheet is kept. Every save refreshes it;
	// zero keeps sheets forever.
	SheetTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		SheetTTL:     storage.DefaultSheetTTL,
	}
}
