package model

import "math"

// Wealth is the player's balance. The width of this type bounds the ledger.
type Wealth uint16

const (
	// MaxWealth is the largest balance the casino will hold for a player
	MaxWealth Wealth = math.MaxUint16

	// StartingWealth is the balance of a brand new game
	StartingWealth Wealth = 10

	// DefaultPlayerName is used when the OS account has no usable name
	DefaultPlayerName = "User"
)

// Player is the persisted ledger record
type Player struct {
	Name   string
	Wealth Wealth
}

// NewPlayer creates a player holding the starting wealth
func NewPlayer(name string) *Player {
	if name == "" {
		name = DefaultPlayerName
	}
	return &Player{Name: name, Wealth: StartingWealth}
}

// Debit removes amount from the balance, saturating at zero
func (p *Player) Debit(amount Wealth) {
	if amount >= p.Wealth {
		p.Wealth = 0
		return
	}
	p.Wealth -= amount
}

// Credit adds amount to the balance, saturating at MaxWealth.
// amount is wider than Wealth so that a doubled payout cannot wrap.
func (p *Player) Credit(amount uint32) {
	total := uint32(p.Wealth) + amount
	if total > uint32(MaxWealth) {
		p.Wealth = MaxWealth
		return
	}
	p.Wealth = Wealth(total)
}

// CanAfford returns true if the balance covers amount
func (p *Player) CanAfford(amount Wealth) bool {
	return amount <= p.Wealth
}

// IsBankrupt returns true once the balance has reached zero
func (p *Player) IsBankrupt() bool {
	return p.Wealth == 0
}

// IsAtLimit returns true once the balance has reached MaxWealth
func (p *Player) IsAtLimit() bool {
	return p.Wealth == MaxWealth
}

// CanPlay returns true while the player is neither bankrupt nor at the limit
func (p *Player) CanPlay() bool {
	return !p.IsBankrupt() && !p.IsAtLimit()
}
