package bot

import (
	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/services/round"
)

// Strategy defines how a bot bets and plays its hand
type Strategy interface {
	// ChooseBet selects a stake no larger than the current wealth
	ChooseBet(view round.BetView) model.Wealth
	// ChooseAction selects the next action for the player's hand
	ChooseAction(view round.TurnView) model.Action
}

// canDoubleDown mirrors the checks the round makes before accepting a double down
func canDoubleDown(view round.TurnView) bool {
	return view.TurnIndex == 1 && view.Wealth >= view.Bet
}
