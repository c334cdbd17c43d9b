package bot

import (
	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/services/round"
)

const (
	// DefaultStandAt is the score at which the threshold bot stops hitting
	DefaultStandAt uint8 = 17
	// DefaultBetDivisor sets the stake as a fraction of wealth
	DefaultBetDivisor = 10
)

// ThresholdStrategy hits below a fixed score, doubles down on a strong
// opening total and stakes a fixed fraction of its wealth
type ThresholdStrategy struct {
	StandAt    uint8
	BetDivisor int
}

// NewThresholdStrategy creates a ThresholdStrategy with the default settings
func NewThresholdStrategy() *ThresholdStrategy {
	return &ThresholdStrategy{
		StandAt:    DefaultStandAt,
		BetDivisor: DefaultBetDivisor,
	}
}

// ChooseBet stakes wealth/BetDivisor, never less than 1
func (s *ThresholdStrategy) ChooseBet(view round.BetView) model.Wealth {
	divisor := s.BetDivisor
	if divisor < 1 {
		divisor = 1
	}
	bet := view.Wealth / model.Wealth(divisor)
	if bet == 0 && view.Wealth > 0 {
		bet = 1
	}
	return bet
}

// ChooseAction doubles down on an opening 10 or 11, otherwise hits until StandAt
func (s *ThresholdStrategy) ChooseAction(view round.TurnView) model.Action {
	if canDoubleDown(view) && (view.PlayerScore == 10 || view.PlayerScore == 11) {
		return model.ActionDoubleDown
	}
	if view.PlayerScore < s.StandAt {
		return model.ActionHit
	}
	return model.ActionStand
}
