package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/storage"
)

// Service loads and saves the player's ledger
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new LedgerService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "ledger-service")),
	}
}

// NewGame creates a fresh ledger for name and saves it straight away,
// replacing any existing save
func (s *Service) NewGame(ctx context.Context, name string) (*model.Player, error) {
	player := model.NewPlayer(name)
	if err := s.Save(ctx, player); err != nil {
		return nil, err
	}
	s.logger.Info("new game created",
		slog.String("name", player.Name),
		slog.Int("wealth", int(player.Wealth)),
	)
	return player, nil
}

// Load returns the saved ledger
func (s *Service) Load(ctx context.Context) (*model.Player, error) {
	player, err := s.storage.LoadPlayer(ctx)
	if err != nil {
		s.logger.Error("failed to load ledger", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: load: %w", model.ErrPersistence, err)
	}
	return player, nil
}

// Save persists the ledger
func (s *Service) Save(ctx context.Context, player *model.Player) error {
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		s.logger.Error("failed to save ledger",
			slog.String("name", player.Name),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: save: %w", model.ErrPersistence, err)
	}
	s.logger.Debug("ledger saved",
		slog.String("name", player.Name),
		slog.Int("wealth", int(player.Wealth)),
	)
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	NewGame(ctx context.Context, name string) (*model.Player, error)
	Load(ctx context.Context) (*model.Player, error)
	Save(ctx context.Context, player *model.Player) error
}

var _ ServiceInterface = (*Service)(nil)
