package round

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/mcoot/blackjack/internal/model"
)

// BetView is what the player sees when asked for a bet
type BetView struct {
	Wealth model.Wealth
}

// TurnView is what the player sees when asked for an action
type TurnView struct {
	PlayerHand   []model.Card
	DealerUpCard model.Card
	PlayerScore  uint8
	Bet          model.Wealth
	Wealth       model.Wealth
	TurnIndex    int
}

// Input supplies raw answers to the round's prompts. It blocks until an
// answer is available and returns model.ErrInputClosed when there will be
// no more input.
type Input interface {
	ReadBet(ctx context.Context, view BetView) (string, error)
	ReadAction(ctx context.Context, view TurnView) (string, error)
}

// Presenter receives the events of a round for display
type Presenter interface {
	Present(ev model.Event)
}

// ParseBet validates a typed bet against the current wealth
func ParseBet(raw string, wealth model.Wealth) (model.Wealth, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, model.ErrInvalidInput
	}
	if n <= 0 {
		return 0, model.ErrInvalidBet
	}
	if n > int64(wealth) {
		return 0, model.ErrInsufficientFunds
	}
	return model.Wealth(n), nil
}

// ParseActionInput decodes a typed action menu number
func ParseActionInput(raw string) (model.Action, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 8)
	if err != nil {
		return 0, model.ErrInvalidInput
	}
	return model.ParseAction(uint8(n))
}

// ParseMenuInput decodes a typed main menu number
func ParseMenuInput(raw string) (model.MenuChoice, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 8)
	if err != nil {
		return 0, model.ErrInvalidInput
	}
	return model.ParseMenuChoice(uint8(n))
}

// betRejection is the message shown for a rejected bet
func betRejection(err error) string {
	if errors.Is(err, model.ErrInsufficientFunds) {
		return "You don't have that much money"
	}
	return "Input a whole number greater than 0"
}
