package model

// Suit is one of the four card suits
type Suit rune

const (
	Spades   Suit = '♠'
	Clubs    Suit = '♣'
	Hearts   Suit = '♥'
	Diamonds Suit = '♦'
)

// Rank is the face of a card, stored as its printed symbol
type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

// Suits lists suits in deck generation order
var Suits = []Suit{Spades, Clubs, Hearts, Diamonds}

// Ranks lists ranks in deck generation order
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Card is a single playing card. Cards are values and never mutated.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// IsAce returns true for aces
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// String renders the card as rank followed by suit, e.g. "10♥"
func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}
