package model

import "errors"

// Common errors used across the application
var (
	// Input errors, recovered by re-prompting
	ErrInvalidInput         = errors.New("input is not a whole number")
	ErrInvalidChoice        = errors.New("invalid menu choice")
	ErrInvalidBet           = errors.New("bet must be greater than 0")
	ErrInsufficientFunds    = errors.New("not enough money")
	ErrDoubleDownNotAllowed = errors.New("double down is only allowed as the first action")

	// Round errors
	ErrDeckExhausted = errors.New("not enough cards left in the deck")
	ErrInputClosed   = errors.New("input closed")

	// Ledger errors
	ErrPersistence   = errors.New("persistence failure")
	ErrSaveNotFound  = errors.New("save not found")
	ErrSaveCorrupted = errors.New("save is corrupted")
)
