package model

// DeckSize is the number of cards in a fresh deck
const DeckSize = 52

// ReshuffleThreshold is the remaining deck size below which a fresh deck is built
const ReshuffleThreshold = DeckSize / 2

// Deck is an ordered stack of cards. The top of the stack is the end of Cards.
type Deck struct {
	Cards []Card
}

// BuildDeck returns all 52 cards in generation order, unshuffled
func BuildDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return &Deck{Cards: cards}
}

// Len returns the number of cards remaining
func (d *Deck) Len() int {
	return len(d.Cards)
}

// NeedsReshuffle returns true when fewer than ReshuffleThreshold cards remain
func (d *Deck) NeedsReshuffle() bool {
	return d.Len() < ReshuffleThreshold
}
