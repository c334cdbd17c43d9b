package deck

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/blackjack/internal/dependencies/random"
	"github.com/mcoot/blackjack/internal/model"
)

// Service builds, shuffles and deals from decks
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new DeckService
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger.With(slog.String("component", "deck-service")),
	}
}

// NewShuffledDeck builds a fresh 52-card deck and shuffles it
func (s *Service) NewShuffledDeck() *model.Deck {
	deck := model.BuildDeck()
	s.Shuffle(deck)
	return deck
}

// Shuffle permutes the deck in place
func (s *Service) Shuffle(deck *model.Deck) {
	s.random.Shuffle(len(deck.Cards), func(i, j int) {
		deck.Cards[i], deck.Cards[j] = deck.Cards[j], deck.Cards[i]
	})
}

// Deal moves the top n cards of the deck onto the hand in draw order.
// Nothing moves if the deck holds fewer than n cards.
func (s *Service) Deal(deck *model.Deck, hand *model.Hand, n int) error {
	if n < 0 {
		return fmt.Errorf("cannot deal %d cards", n)
	}
	remaining := deck.Len()
	if remaining < n {
		s.logger.Error("deck exhausted",
			slog.Int("requested", n),
			slog.Int("remaining", remaining),
		)
		return fmt.Errorf("%w: requested %d, %d remaining", model.ErrDeckExhausted, n, remaining)
	}

	for i := 1; i <= n; i++ {
		hand.Add(deck.Cards[remaining-i])
	}
	deck.Cards = deck.Cards[:remaining-n]
	return nil
}

// EnsureFresh replaces the deck's contents with a newly shuffled deck when
// fewer than model.ReshuffleThreshold cards remain. Any leftover cards are
// discarded. Returns true if the deck was rebuilt.
func (s *Service) EnsureFresh(deck *model.Deck) bool {
	if !deck.NeedsReshuffle() {
		return false
	}
	s.logger.Debug("rebuilding deck", slog.Int("remaining", deck.Len()))
	deck.Cards = s.NewShuffledDeck().Cards
	return true
}

// Interface for dependency injection
type ServiceInterface interface {
	NewShuffledDeck() *model.Deck
	Shuffle(deck *model.Deck)
	Deal(deck *model.Deck, hand *model.Hand, n int) error
	EnsureFresh(deck *model.Deck) bool
}

var _ ServiceInterface = (*Service)(nil)
