package dealer

import "github.com/mcoot/blackjack/internal/services/scoring"

// DefaultStandOn is the score at which a conventional dealer stops drawing
const DefaultStandOn uint8 = 17

// Policy decides when the dealer draws.
//
// Below StandOn the dealer draws only while behind or tied with the player.
// With CatchUp set the dealer also keeps drawing at or above StandOn for as
// long as it is behind or tied and under 21.
type Policy struct {
	StandOn uint8
	CatchUp bool
}

// DefaultPolicy returns the house policy used by the game
func DefaultPolicy() Policy {
	return Policy{
		StandOn: DefaultStandOn,
		CatchUp: true,
	}
}

// ShouldHit reports whether the dealer takes another card
func (p Policy) ShouldHit(dealerScore, playerScore uint8) bool {
	if dealerScore >= scoring.Blackjack {
		return false
	}
	if dealerScore > playerScore {
		return false
	}
	if dealerScore < p.StandOn {
		return true
	}
	return p.CatchUp
}
