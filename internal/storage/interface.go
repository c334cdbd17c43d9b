package storage

import (
	"context"

	"github.com/mcoot/blackjack/internal/model"
)

// Storage defines the interface for ledger persistence. Each backend holds
// exactly one saved ledger at a well-known location.
type Storage interface {
	// SavePlayer replaces the saved ledger
	SavePlayer(ctx context.Context, player *model.Player) error

	// LoadPlayer returns the saved ledger, or model.ErrSaveNotFound
	LoadPlayer(ctx context.Context) (*model.Player, error)

	// Close releases any connection held by the backend
	Close() error
}
