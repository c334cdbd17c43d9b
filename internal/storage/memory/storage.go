package memory

import (
	"context"
	"sync"

	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu     sync.RWMutex
	player *model.Player

	// FailSaves makes every SavePlayer call return the error (for testing)
	FailSaves error
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSaves != nil {
		return s.FailSaves
	}
	saved := *player
	s.player = &saved
	return nil
}

func (s *Storage) LoadPlayer(ctx context.Context) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.player == nil {
		return nil, model.ErrSaveNotFound
	}
	loaded := *s.player
	return &loaded, nil
}

func (s *Storage) Close() error {
	return nil
}
