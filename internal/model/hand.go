package model

// Hand is the ordered set of cards held by the player or the dealer
type Hand struct {
	Cards []Card
}

// NewHand creates a hand holding the given cards
func NewHand(cards ...Card) *Hand {
	return &Hand{Cards: append([]Card(nil), cards...)}
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.Cards)
}

// Add appends cards in the order given
func (h *Hand) Add(cards ...Card) {
	h.Cards = append(h.Cards, cards...)
}

// Snapshot returns a copy of the cards safe to hand to the presentation layer
func (h *Hand) Snapshot() []Card {
	out := make([]Card, len(h.Cards))
	copy(out, h.Cards)
	return out
}
