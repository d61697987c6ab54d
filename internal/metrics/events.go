package metrics

import (
	"context"

	"github.com/osse101/OwoSlots_Go/internal/event"
	"github.com/osse101/OwoSlots_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SpinResolved,
		event.BatchCompleted,
		event.BalanceAdjusted,
		event.BalanceSet,
		event.RevealFrame,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.SpinResolved:
		err = e.recordSpin(evt)
	case event.BatchCompleted:
		err = e.recordBatch(evt)
	case event.BalanceAdjusted:
		err = e.recordBalance(evt, LabelValueAdjust)
	case event.BalanceSet:
		err = e.recordBalance(evt, LabelValueSet)
	case event.RevealFrame:
		err = e.recordFrame(evt)
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) recordSpin(evt event.Event) error {
	p, err := event.DecodePayload[event.SpinResolvedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	rule := p.RuleName
	if rule == "" {
		rule = LabelValueLoss
	}
	Spins.WithLabelValues(rule, LabelValueSpin).Inc()
	Wagered.WithLabelValues(LabelValueSpin).Add(float64(p.Wager))
	Paid.WithLabelValues(LabelValueSpin).Add(float64(p.Prize))
	Balance.Set(float64(p.BalanceAfter))
	return nil
}

func (e *EventMetricsCollector) recordBatch(evt event.Event) error {
	p, err := event.DecodePayload[event.BatchCompletedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	Batches.Inc()
	BatchSpins.Observe(float64(p.Summary.SpinsRun))
	Spins.WithLabelValues(LabelValueSimulated, LabelValueSimulated).Add(float64(p.Summary.SpinsRun))
	Wagered.WithLabelValues(LabelValueSimulated).Add(float64(p.TotalWagered))
	Paid.WithLabelValues(LabelValueSimulated).Add(float64(p.TotalPaid))
	Balance.Set(float64(p.Summary.FinalBalance))
	return nil
}

func (e *EventMetricsCollector) recordBalance(evt event.Event, source string) error {
	p, err := event.DecodePayload[event.BalanceChangedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	BalanceChanges.WithLabelValues(source).Inc()
	Balance.Set(float64(p.Balance))
	return nil
}

func (e *EventMetricsCollector) recordFrame(evt event.Event) error {
	p, err := event.DecodePayload[event.RevealFramePayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	RevealFrames.WithLabelValues(p.Phase).Inc()
	return nil
}
