package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/OwoSlots_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Slot event types
const (
	SpinResolved    Type = domain.EventTypeSpinResolved
	BatchCompleted  Type = domain.EventTypeBatchCompleted
	BalanceAdjusted Type = domain.EventTypeBalanceAdjusted
	BalanceSet      Type = domain.EventTypeBalanceSet
	RevealFrame     Type = domain.EventTypeRevealFrame
)

// Typed event payloads for type safety

// SpinResolvedPayloadV1 is the typed payload for spin events
type SpinResolvedPayloadV1 struct {
	SpinID       string                 `json:"spin_id"`
	Combination  domain.ReelCombination `json:"combination"`
	Wager        int64                  `json:"wager"`
	Prize        int64                  `json:"prize"`
	RuleName     string                 `json:"rule_name,omitempty"`
	BalanceAfter int64                  `json:"balance_after"`
	EventIndex   int64                  `json:"event_index"`
	Timestamp    int64                  `json:"timestamp"`
}

// BatchCompletedPayloadV1 is the typed payload for quick simulation events
type BatchCompletedPayloadV1 struct {
	Summary         domain.BatchSummary `json:"summary"`
	Wager           int64               `json:"wager"`
	TotalWagered    int64               `json:"total_wagered"`
	TotalPaid       int64               `json:"total_paid"`
	FirstEventIndex int64               `json:"first_event_index"`
	Timestamp       int64               `json:"timestamp"`
}

// BalanceChangedPayloadV1 is the typed payload for adjust and set events
type BalanceChangedPayloadV1 struct {
	Previous   int64 `json:"previous"`
	Balance    int64 `json:"balance"`
	Requested  int64 `json:"requested"` // delta for adjust, amount for set
	EventIndex int64 `json:"event_index"`
	Timestamp  int64 `json:"timestamp"`
}

// RevealFramePayloadV1 is the typed payload for one staged reveal frame
type RevealFramePayloadV1 struct {
	SpinID  string                 `json:"spin_id"`
	Phase   string                 `json:"phase"`
	Reels   domain.ReelCombination `json:"reels"`
	Message string                 `json:"message,omitempty"`
}

// Type-safe event constructors

// NewSpinResolvedEvent creates a spin event from an applied outcome
func NewSpinResolvedEvent(outcome domain.SpinOutcome, entry domain.LedgerEntry) Event {
	spinID := outcome.SpinID
	return Event{
		Version: EventSchemaVersion,
		Type:    SpinResolved,
		Payload: SpinResolvedPayloadV1{
			SpinID:       spinID,
			Combination:  outcome.Combination,
			Wager:        outcome.Wager,
			Prize:        outcome.Prize,
			RuleName:     outcome.RuleName(),
			BalanceAfter: entry.BalanceAfter,
			EventIndex:   entry.EventIndex,
			Timestamp:    time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			"spin_id": spinID,
		},
	}
}

// NewBatchCompletedEvent creates a quick simulation event
func NewBatchCompletedEvent(summary domain.BatchSummary, wager, totalPaid, firstEventIndex int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BatchCompleted,
		Payload: BatchCompletedPayloadV1{
			Summary:         summary,
			Wager:           wager,
			TotalWagered:    wager * int64(summary.SpinsRun),
			TotalPaid:       totalPaid,
			FirstEventIndex: firstEventIndex,
			Timestamp:       time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewBalanceEvent creates an adjust or set event
func NewBalanceEvent(eventType Type, previous, requested int64, entry domain.LedgerEntry) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: BalanceChangedPayloadV1{
			Previous:   previous,
			Balance:    entry.BalanceAfter,
			Requested:  requested,
			EventIndex: entry.EventIndex,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewRevealFrameEvent creates a reveal frame event
func NewRevealFrameEvent(spinID, phase string, reels domain.ReelCombination, message string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    RevealFrame,
		Payload: RevealFramePayloadV1{
			SpinID:  spinID,
			Phase:   phase,
			Reels:   reels,
			Message: message,
		},
		Metadata: map[string]interface{}{
			"spin_id": spinID,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher is the publishing half of a Bus
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously on the caller's goroutine.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// NopPublisher discards events
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
