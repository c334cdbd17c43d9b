package round

import "github.com/mcoot/blackjack/internal/model"

// RoundContext is the state of one round. It is owned by the round loop and
// passed explicitly to every step.
type RoundContext struct {
	ID         string
	Player     *model.Player
	Deck       *model.Deck
	PlayerHand *model.Hand
	DealerHand *model.Hand
	Bet        model.Wealth

	// TurnIndex is 1 for the player's first action and grows with each hit
	TurnIndex int
}

// NewRoundContext starts a round with empty hands
func NewRoundContext(id string, player *model.Player, deck *model.Deck) *RoundContext {
	return &RoundContext{
		ID:         id,
		Player:     player,
		Deck:       deck,
		PlayerHand: model.NewHand(),
		DealerHand: model.NewHand(),
	}
}

// Summary tallies a run of rounds
type Summary struct {
	Rounds int
	Wins   int
	Losses int
	Pushes int
	Player model.Player // Ledger after the last round
}

func (s *Summary) record(outcome model.Outcome) {
	s.Rounds++
	switch outcome {
	case model.OutcomeWin:
		s.Wins++
	case model.OutcomeLoss:
		s.Losses++
	case model.OutcomePush:
		s.Pushes++
	}
}
