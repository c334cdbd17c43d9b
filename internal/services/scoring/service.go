package scoring

import (
	"math"
	"strconv"

	"github.com/mcoot/blackjack/internal/model"
)

const (
	// Blackjack is the best possible score
	Blackjack uint8 = 21

	aceHigh    uint8 = 11
	faceValue  uint8 = 10
	aceDemoted uint8 = aceHigh - 1
)

// Service scores hands under blackjack ace rules
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// CardValue returns the value a card contributes before any ace is demoted
func CardValue(c model.Card) uint8 {
	switch c.Rank {
	case model.Ace:
		return aceHigh
	case model.Jack, model.Queen, model.King:
		return faceValue
	default:
		v, err := strconv.ParseUint(string(c.Rank), 10, 8)
		if err != nil {
			return 0
		}
		return uint8(v)
	}
}

// score returns the hand total and how many aces are still counted as 11
func score(cards []model.Card) (uint8, int) {
	total := 0
	softAces := 0
	for _, c := range cards {
		total += int(CardValue(c))
		if c.IsAce() {
			softAces++
		}
	}

	// Demote one ace at a time, each at most once
	for total > int(Blackjack) && softAces > 0 {
		total -= int(aceDemoted)
		softAces--
	}
	if total > math.MaxUint8 {
		total = math.MaxUint8
	}
	return uint8(total), softAces
}

// Score returns the point total of the cards. The result can exceed 21.
func (s *Service) Score(cards []model.Card) uint8 {
	total, _ := score(cards)
	return total
}

// ScoreHand is Score for a hand
func (s *Service) ScoreHand(hand *model.Hand) uint8 {
	return s.Score(hand.Cards)
}

// IsBust returns true if the hand scores over 21
func (s *Service) IsBust(hand *model.Hand) bool {
	return s.ScoreHand(hand) > Blackjack
}

// IsNatural returns true for a two-card 21
func (s *Service) IsNatural(hand *model.Hand) bool {
	return hand.Len() == 2 && s.ScoreHand(hand) == Blackjack
}

// IsSoft returns true while an ace in the hand still counts as 11
func (s *Service) IsSoft(hand *model.Hand) bool {
	_, soft := score(hand.Cards)
	return soft > 0
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(cards []model.Card) uint8
	ScoreHand(hand *model.Hand) uint8
	IsBust(hand *model.Hand) bool
	IsNatural(hand *model.Hand) bool
	IsSoft(hand *model.Hand) bool
}

var _ ServiceInterface = (*Service)(nil)
