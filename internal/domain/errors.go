package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Wager errors
	ErrMsgInvalidWager      = "invalid wager"
	ErrMsgWagerOutOfRange   = "wager out of range"
	ErrMsgInsufficientFunds = "insufficient funds"

	// Balance errors
	ErrMsgInvalidAmount = "invalid amount"

	// Simulation errors
	ErrMsgInvalidCount = "invalid simulation count"

	// Paytable errors
	ErrMsgInvalidPaytable = "invalid paytable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Wager errors
	ErrInvalidWager      = errors.New(ErrMsgInvalidWager)
	ErrWagerOutOfRange   = errors.New(ErrMsgWagerOutOfRange)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Balance errors
	ErrInvalidAmount = errors.New(ErrMsgInvalidAmount)

	// Simulation errors
	ErrInvalidCount = errors.New(ErrMsgInvalidCount)

	// Paytable errors
	ErrInvalidPaytable = errors.New(ErrMsgInvalidPaytable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
