package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. These represent domain events published by the ledger
// and the reveal driver.
//
// Event types follow the pattern: <entity>.<action> (e.g., "spin.resolved")
const (
	// EventTypeSpinResolved is published when a bet is applied and its outcome credited
	EventTypeSpinResolved = "spin.resolved"

	// EventTypeBatchCompleted is published when a quick simulation run finishes
	EventTypeBatchCompleted = "batch.completed"

	// EventTypeBalanceAdjusted is published after a relative balance adjustment
	EventTypeBalanceAdjusted = "balance.adjusted"

	// EventTypeBalanceSet is published after the balance is overwritten
	EventTypeBalanceSet = "balance.set"

	// EventTypeRevealFrame is published for every frame of a staged reveal
	EventTypeRevealFrame = "reveal.frame"
)
