package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/services/round"
)

const (
	StrategyThreshold = "threshold"
	StrategyRandom    = "random"

	// MaxAutoplayRounds is a safety limit for a single Autoplay call
	MaxAutoplayRounds = 100000
)

// Service plays rounds on the player's behalf
type Service struct {
	controller *round.Controller
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(controller *round.Controller, strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		controller: controller,
		strategies: strategies,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// Strategies returns the registered strategy names in sorted order
func (s *Service) Strategies() []string {
	names := make([]string, 0, len(s.strategies))
	for name := range s.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Input returns a round.Input that answers every prompt with the named strategy
func (s *Service) Input(strategy string) (round.Input, error) {
	st, ok := s.strategies[strategy]
	if !ok {
		return nil, fmt.Errorf("unknown bot strategy: %s (available: %s)", strategy, strings.Join(s.Strategies(), ", "))
	}
	return &strategyInput{strategy: st, logger: s.logger.With(slog.String("strategy", strategy))}, nil
}

// Autoplay plays up to rounds rounds for player with the named strategy.
// It stops early when the player is bankrupt or at the wealth limit.
func (s *Service) Autoplay(ctx context.Context, player *model.Player, strategy string, rounds int, presenter round.Presenter) (*round.Summary, error) {
	input, err := s.Input(strategy)
	if err != nil {
		return nil, err
	}
	if rounds <= 0 || rounds > MaxAutoplayRounds {
		rounds = MaxAutoplayRounds
	}

	summary, err := s.controller.Play(ctx, player, round.Session{
		Input:     input,
		Presenter: presenter,
		MaxRounds: rounds,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("autoplay finished",
		slog.String("strategy", strategy),
		slog.Int("rounds", summary.Rounds),
		slog.Int("wins", summary.Wins),
		slog.Int("losses", summary.Losses),
		slog.Int("pushes", summary.Pushes),
		slog.Int("wealth", int(summary.Player.Wealth)),
	)
	return summary, nil
}

// strategyInput adapts a Strategy to the round's prompt interface
type strategyInput struct {
	strategy Strategy
	logger   *slog.Logger
}

func (in *strategyInput) ReadBet(ctx context.Context, view round.BetView) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	bet := in.strategy.ChooseBet(view)
	in.logger.Debug("bot bet", slog.Int("bet", int(bet)), slog.Int("wealth", int(view.Wealth)))
	return strconv.Itoa(int(bet)), nil
}

func (in *strategyInput) ReadAction(ctx context.Context, view round.TurnView) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	action := in.strategy.ChooseAction(view)
	in.logger.Debug("bot action",
		slog.String("action", action.String()),
		slog.Int("score", int(view.PlayerScore)),
		slog.Int("turn", view.TurnIndex),
	)
	return strconv.Itoa(int(action)), nil
}
