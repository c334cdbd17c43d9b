package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	// Session events
	EventClearScreen EventType = "clear_screen"
	EventNotice      EventType = "notice"
	EventSaved       EventType = "saved"

	// Round events
	EventBetRequested  EventType = "bet_requested"
	EventBetPlaced     EventType = "bet_placed"
	EventShuffled      EventType = "shuffled"
	EventCardsDealt    EventType = "cards_dealt"
	EventTurnStarted   EventType = "turn_started"
	EventHandsUpdated  EventType = "hands_updated"
	EventDealerTurn    EventType = "dealer_turn"
	EventRoundResolved EventType = "round_resolved"

	// Ledger events
	EventBankrupt    EventType = "bankrupt"
	EventWealthLimit EventType = "wealth_limit"
)

// Event is the base structure for everything the round loop reports
// to the presentation layer
type Event struct {
	Type      EventType
	Timestamp time.Time
	RoundID   string // Empty for events outside a round
	Payload   any    // Type-specific data
}

// NoticeDuration is how long a notice stays on screen
type NoticeDuration int

const (
	NoticeShort NoticeDuration = iota
	NoticeLong
)

// AsDuration converts a NoticeDuration to wall-clock time
func (d NoticeDuration) AsDuration() time.Duration {
	if d == NoticeLong {
		return 2 * time.Second
	}
	return time.Second
}

// NoticePayload contains a temporary message for the player
type NoticePayload struct {
	Message  string
	Duration NoticeDuration
}

// BetRequestedPayload contains data for bet requested events
type BetRequestedPayload struct {
	Wealth Wealth
}

// BetPlacedPayload contains data for bet placed events
type BetPlacedPayload struct {
	Bet    Wealth
	Wealth Wealth // Balance after the debit
}

// CardsDealtPayload contains data for cards dealt events
type CardsDealtPayload struct {
	ToDealer bool
	Cards    []Card
}

// HandsPayload is a render request for both hands. The dealer's
// second card is hidden unless RevealDealer is set.
type HandsPayload struct {
	PlayerHand   []Card
	DealerHand   []Card
	PlayerScore  uint8
	DealerScore  uint8
	PlayerSoft   bool // An ace in the hand still counts as 11
	DealerSoft   bool
	RevealDealer bool
	Bet          Wealth
}

// TurnStartedPayload contains data for turn started events
type TurnStartedPayload struct {
	Bet Wealth
}

// Outcome is how a round ended for the player
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomePush Outcome = "push"
)

// Reason explains an outcome
type Reason string

const (
	ReasonBothNatural   Reason = "both_natural"
	ReasonPlayerNatural Reason = "player_natural"
	ReasonDealerNatural Reason = "dealer_natural"
	ReasonPlayerBust    Reason = "player_bust"
	ReasonDealerBust    Reason = "dealer_bust"
	ReasonEqualScores   Reason = "equal_scores"
	ReasonPlayerHigher  Reason = "player_higher"
	ReasonDealerHigher  Reason = "dealer_higher"
)

// RoundResolvedPayload contains data for round resolved events
type RoundResolvedPayload struct {
	Outcome     Outcome
	Reason      Reason
	Bet         Wealth
	Payout      uint32 // Amount credited back to the ledger
	PlayerScore uint8
	DealerScore uint8
	Wealth      Wealth // Balance after the payout
}

// LedgerPayload contains the ledger for saved, bankrupt and limit events
type LedgerPayload struct {
	Name   string
	Wealth Wealth
}
