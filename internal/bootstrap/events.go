package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/OwoSlots_Go/internal/event"
	"github.com/osse101/OwoSlots_Go/internal/metrics"
	"github.com/osse101/OwoSlots_Go/internal/reveal"
	"github.com/osse101/OwoSlots_Go/internal/sse"
	"github.com/osse101/OwoSlots_Go/internal/stats"
)

// InitializeEventSystem creates the in-process event bus.
func InitializeEventSystem() *event.MemoryBus {
	bus := event.NewMemoryBus()
	slog.Info(LogMsgEventSystemInitialized)
	return bus
}

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus     event.Bus
	Hub          *sse.Hub
	RevealDriver *reveal.Driver
	Stats        stats.Service
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// the metrics collector, session stats, the reveal driver that turns
// resolved spins into frames, and the SSE bridge to connected clients.
//
// The metrics collector is registered first so counters are updated before
// a frame or stream event can be observed.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Stats != nil {
		stats.NewEventHandler(deps.Stats).Register(deps.EventBus)
		slog.Info(LogMsgStatsHandlerRegistered)
	}

	if deps.RevealDriver != nil {
		deps.RevealDriver.Subscribe(deps.EventBus)
		slog.Info(LogMsgRevealDriverSubscribed, "total_delay", deps.RevealDriver.Delays().Total())
	}

	if deps.Hub != nil {
		deps.Hub.OnDrop(metrics.RecordSSEDrop)
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	return nil
}
