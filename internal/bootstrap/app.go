package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/OwoSlots_Go/internal/config"
	"github.com/osse101/OwoSlots_Go/internal/event"
	"github.com/osse101/OwoSlots_Go/internal/handler"
	"github.com/osse101/OwoSlots_Go/internal/ledger"
	"github.com/osse101/OwoSlots_Go/internal/reveal"
	"github.com/osse101/OwoSlots_Go/internal/server"
	"github.com/osse101/OwoSlots_Go/internal/slots"
	"github.com/osse101/OwoSlots_Go/internal/sse"
	"github.com/osse101/OwoSlots_Go/internal/stats"
)

// App is the fully wired slots service
type App struct {
	Bus          *event.MemoryBus
	Engine       *slots.Engine
	Ledger       *ledger.Ledger
	Hub          *sse.Hub
	RevealDriver *reveal.Driver
	Stats        stats.Service
	Idempotency  *handler.IdempotencyCache
	Server       *server.Server
}

// NewApp builds every component from cfg and registers the event handlers.
// The SSE hub is running on return; the HTTP server is not.
func NewApp(cfg *config.Config) (*App, error) {
	bus := InitializeEventSystem()

	var engineOpts []slots.Option
	if cfg.RNGSeed != nil {
		engineOpts = append(engineOpts, slots.WithSeed(*cfg.RNGSeed))
		slog.Warn(LogMsgDeterministicEngine, "seed", *cfg.RNGSeed)
	}
	engine, err := slots.NewEngine(engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateEngine, err)
	}

	l, err := ledger.New(engine, ledger.DefaultLimits(), ledger.WithPublisher(bus))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateLedger, err)
	}

	hub := sse.NewHub()
	driver := reveal.NewDriver(reveal.Delays{
		Reel1: cfg.RevealDelayReel1,
		Reel3: cfg.RevealDelayReel3,
		Reel2: cfg.RevealDelayReel2,
	}, reveal.PublisherSink(bus))

	sessionStats := stats.NewService(slots.RuleOwOJackpot)

	if err := RegisterEventHandlers(EventHandlerDependencies{
		EventBus:     bus,
		Hub:          hub,
		RevealDriver: driver,
		Stats:        sessionStats,
	}); err != nil {
		return nil, err
	}
	hub.Start()

	idempotency := handler.NewIdempotencyCache(cfg.IdempotencyCacheSize, cfg.IdempotencyTTL)

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		AllowedOrigins: cfg.AllowedOrigins,
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
	}, server.Dependencies{
		Ledger:      l,
		Machine:     engine,
		Idempotency: idempotency,
		Hub:         hub,
		Stats:       sessionStats,
		Readiness:   []handler.HealthChecker{driver},
	})

	return &App{
		Bus:          bus,
		Engine:       engine,
		Ledger:       l,
		Hub:          hub,
		RevealDriver: driver,
		Stats:        sessionStats,
		Idempotency:  idempotency,
		Server:       srv,
	}, nil
}

// ShutdownComponents returns the components GracefulShutdown stops
func (a *App) ShutdownComponents() ShutdownComponents {
	return ShutdownComponents{
		Server:       a.Server,
		RevealDriver: a.RevealDriver,
		Hub:          a.Hub,
	}
}
