package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/OwoSlots_Go/internal/event"
	"github.com/osse101/OwoSlots_Go/internal/slots"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.SpinResolved, s.handleSpinResolved)
	s.bus.Subscribe(event.RevealFrame, s.handleRevealFrame)
	s.bus.Subscribe(event.BatchCompleted, s.handleBatchCompleted)
	s.bus.Subscribe(event.BalanceAdjusted, s.handleBalanceChanged)
	s.bus.Subscribe(event.BalanceSet, s.handleBalanceChanged)

	slog.Info(LogMsgSubscribed,
		"types", []string{
			string(event.SpinResolved),
			string(event.RevealFrame),
			string(event.BatchCompleted),
			string(event.BalanceAdjusted),
			string(event.BalanceSet),
		})
}

func (s *Subscriber) handleSpinResolved(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.SpinResolvedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeSpinResolved, SpinPayload{
		SpinID:      p.SpinID,
		Combination: p.Combination,
		Wager:       p.Wager,
		Prize:       p.Prize,
		RuleName:    p.RuleName,
		Balance:     p.BalanceAfter,
		EventIndex:  p.EventIndex,
	})
	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeSpinResolved, "spin_id", p.SpinID)
	return nil
}

func (s *Subscriber) handleRevealFrame(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.RevealFramePayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeRevealFrame, RevealFramePayload{
		SpinID:  p.SpinID,
		Phase:   p.Phase,
		Reels:   p.Reels,
		Display: p.Reels.Display(),
		Message: p.Message,
	})
	return nil
}

func (s *Subscriber) handleBatchCompleted(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.BatchCompletedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeBatchCompleted, BatchPayload{
		Summary:         p.Summary,
		Message:         slots.FormatBatchMessage(p.Summary),
		FirstEventIndex: p.FirstEventIndex,
	})
	slog.Debug(LogMsgEventBroadcast, "event_type", EventTypeBatchCompleted, "spins_run", p.Summary.SpinsRun)
	return nil
}

func (s *Subscriber) handleBalanceChanged(_ context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.BalanceChangedPayloadV1](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	payload := BalancePayload{
		Previous:   p.Previous,
		Balance:    p.Balance,
		EventIndex: p.EventIndex,
	}
	if evt.Type == event.BalanceSet {
		payload.Source = "set"
		payload.Message = slots.FormatSetMessage(p.Balance)
	} else {
		payload.Source = "adjust"
		payload.Message = slots.FormatAdjustMessage(p.Requested, p.Balance)
	}

	s.hub.Broadcast(EventTypeBalanceChanged, payload)
	return nil
}
