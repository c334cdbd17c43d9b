package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/storage"
)

//go:embed schema.sql
var schema string

// DefaultSlot names the ledger row when no slot is configured
const DefaultSlot = "default"

// Storage keeps the ledger as one row of the ledgers table
type Storage struct {
	pool *pgxpool.Pool
	slot string
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// New connects to Postgres and applies the schema
func New(ctx context.Context, dsn, slot string) (*Storage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	s := NewWithPool(pool, slot)
	if err := s.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// NewWithPool wraps an existing pool
func NewWithPool(pool *pgxpool.Pool, slot string) *Storage {
	if slot == "" {
		slot = DefaultSlot
	}
	return &Storage{pool: pool, slot: slot}
}

// Migrate creates the ledgers table if it does not exist
func (s *Storage) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, schema)
	return err
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	_, err := s.pool.Exec(ctx, `
        INSERT INTO ledgers(slot, name, wealth, updated_at)
        VALUES ($1, $2, $3, now())
        ON CONFLICT (slot) DO UPDATE
          SET name = EXCLUDED.name,
              wealth = EXCLUDED.wealth,
              updated_at = now()
    `, s.slot, player.Name, int32(player.Wealth))
	return err
}

func (s *Storage) LoadPlayer(ctx context.Context) (*model.Player, error) {
	var (
		name   string
		wealth int32
	)
	err := s.pool.QueryRow(ctx, `SELECT name, wealth FROM ledgers WHERE slot = $1`, s.slot).Scan(&name, &wealth)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSaveNotFound
		}
		return nil, err
	}
	if wealth < 0 || wealth > int32(model.MaxWealth) {
		return nil, fmt.Errorf("%w: wealth %d out of range", model.ErrSaveCorrupted, wealth)
	}
	return &model.Player{Name: name, Wealth: model.Wealth(wealth)}, nil
}

// Delete removes the saved ledger for this slot
func (s *Storage) Delete(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM ledgers WHERE slot = $1`, s.slot)
	return err
}

func (s *Storage) Close() error {
	s.pool.Close()
	return nil
}
