package bot

import (
	"github.com/mcoot/blackjack/internal/dependencies/random"
	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/services/round"
)

// RandomStrategy bets a random amount and picks random legal actions
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseBet returns a random stake between 1 and the current wealth
func (s *RandomStrategy) ChooseBet(view round.BetView) model.Wealth {
	if view.Wealth == 0 {
		return 0
	}
	return model.Wealth(s.random.Intn(int(view.Wealth))) + 1
}

// ChooseAction picks uniformly among the actions the round will accept
func (s *RandomStrategy) ChooseAction(view round.TurnView) model.Action {
	legal := []model.Action{model.ActionHit, model.ActionStand}
	if canDoubleDown(view) {
		legal = append(legal, model.ActionDoubleDown)
	}
	return legal[s.random.Intn(len(legal))]
}
