package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/storage"
	"github.com/mcoot/blackjack/internal/storage/snapshot"
)

// Storage is a Redis-backed implementation of the storage interface.
// The ledger is stored as the same snapshot blob the file backend writes.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return NewWithClient(client, cfg), nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	if cfg.Slot == "" {
		cfg.Slot = DefaultConfig().Slot
	}
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

// SavePlayer replaces the snapshot in a single SET, so readers see either
// the old or the new ledger
func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := snapshot.Encode(player)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, saveKey(s.cfg.Slot), data, s.cfg.SaveTTL).Err()
}

func (s *Storage) LoadPlayer(ctx context.Context) (*model.Player, error) {
	data, err := s.client.Get(ctx, saveKey(s.cfg.Slot)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSaveNotFound
		}
		return nil, err
	}
	return snapshot.Decode(data)
}
