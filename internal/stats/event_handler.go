package stats

import (
	"context"
	"fmt"

	"github.com/osse101/OwoSlots_Go/internal/event"
)

// EventHandler feeds ledger events into the stats service
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new stats event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{
		service: service,
	}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.SpinResolved, h.HandleSpinResolved)
	bus.Subscribe(event.BatchCompleted, h.HandleBatchCompleted)
}

// HandleSpinResolved records a live spin
func (h *EventHandler) HandleSpinResolved(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.SpinResolvedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodeSpinPayload, err)
	}
	h.service.RecordSpin(ctx, payload)
	return nil
}

// HandleBatchCompleted records a quick simulation
func (h *EventHandler) HandleBatchCompleted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.BatchCompletedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodeBatchPayload, err)
	}
	h.service.RecordBatch(ctx, payload)
	return nil
}
