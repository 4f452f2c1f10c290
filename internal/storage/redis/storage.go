package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/scoresheet/internal/model"
	"github.com/mcoot/scoresheet/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Each sheet is a single JSON document.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSheet(ctx context.Context, sheet *model.Sheet) error {
	data, err := json.Marshal(sheet)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sheetKey(sheet.Code), data, s.cfg.SheetTTL).Err()
}

func (s *Storage) GetSheet(ctx context.Context, code model.SheetCode) (*model.Sheet, error) {
	data, err := s.client.Get(ctx, sheetKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSheetNotFound
		}
		return nil, err
	}

	var sheet model.Sheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, err
	}
	normalizeSheet(&sheet)
	return &sheet, nil
}

func (s *Storage) DeleteSheet(ctx context.Context, code model.SheetCode) error {
	return s.client.Del(ctx, sheetKey(code)).Err()
}

func (s *Storage) SheetExists(ctx context.Context, code model.SheetCode) (bool, error) {
	n, err := s.client.Exists(ctx, sheetKey(code)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// normalizeSheet restores empty slices that JSON decoded as nil
func normalizeSheet(sheet *model.Sheet) {
	if sheet.Players == nil {
		sheet.Players = []model.Player{}
	}
	for i := range sheet.Players {
		if sheet.Players[i].Scores == nil {
			sheet.Players[i].Scores = []int{}
		}
	}
}
