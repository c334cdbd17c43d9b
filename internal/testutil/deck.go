package testutil

import "github.com/mcoot/blackjack/internal/model"

// StackedDeck returns a full 52-card deck arranged so that the given cards
// are drawn first, in the order given. The remaining cards sit underneath in
// generation order, so the deck stays above the reshuffle threshold for any
// realistic round.
func StackedDeck(draws ...model.Card) *model.Deck {
	top := make(map[model.Card]bool, len(draws))
	for _, c := range draws {
		top[c] = true
	}

	cards := make([]model.Card, 0, model.DeckSize)
	for _, c := range model.BuildDeck().Cards {
		if !top[c] {
			cards = append(cards, c)
		}
	}
	for i := len(draws) - 1; i >= 0; i-- {
		cards = append(cards, draws[i])
	}
	return &model.Deck{Cards: cards}
}

// Card is shorthand for building a card in test tables, e.g. Card("A", '♠')
func Card(rank string, suit rune) model.Card {
	return model.NewCard(model.Rank(rank), model.Suit(suit))
}
