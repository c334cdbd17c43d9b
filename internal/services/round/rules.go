package round

import (
	"github.com/mcoot/blackjack/internal/model"
	"github.com/mcoot/blackjack/internal/services/scoring"
)

// CheckNaturals decides a round from the initial deal. ok is false when
// neither hand is a natural and play continues.
func CheckNaturals(playerNatural, dealerNatural bool) (outcome model.Outcome, reason model.Reason, ok bool) {
	switch {
	case playerNatural && dealerNatural:
		return model.OutcomePush, model.ReasonBothNatural, true
	case playerNatural:
		return model.OutcomeWin, model.ReasonPlayerNatural, true
	case dealerNatural:
		return model.OutcomeLoss, model.ReasonDealerNatural, true
	default:
		return "", "", false
	}
}

// CompareScores decides a round once both turns are over
func CompareScores(playerScore, dealerScore uint8) (model.Outcome, model.Reason) {
	switch {
	case playerScore > scoring.Blackjack:
		return model.OutcomeLoss, model.ReasonPlayerBust
	case dealerScore > scoring.Blackjack:
		return model.OutcomeWin, model.ReasonDealerBust
	case playerScore == dealerScore:
		return model.OutcomePush, model.ReasonEqualScores
	case playerScore > dealerScore:
		return model.OutcomeWin, model.ReasonPlayerHigher
	default:
		return model.OutcomeLoss, model.ReasonDealerHigher
	}
}

// Payout is the amount credited back for an outcome: the stake twice for a
// win, the stake once for a push, nothing for a loss
func Payout(outcome model.Outcome, bet model.Wealth) uint32 {
	switch outcome {
	case model.OutcomeWin:
		return uint32(bet) * 2
	case model.OutcomePush:
		return uint32(bet)
	default:
		return 0
	}
}
