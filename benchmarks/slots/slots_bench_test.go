package slots_bench

import (
	"context"
	"testing"

	"github.com/osse101/OwoSlots_Go/internal/event"
	"github.com/osse101/OwoSlots_Go/internal/ledger"
	"github.com/osse101/OwoSlots_Go/internal/slots"
)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

// StubBus implements event.Bus
type StubBus struct{}

func (b *StubBus) Publish(ctx context.Context, e event.Event) error { return nil }
func (b *StubBus) Subscribe(eventType event.Type, handler event.Handler) {}

// --- Benchmarks ---

func BenchmarkResolveSpin(b *testing.B) {
	engine := slots.MustNewEngine(slots.WithSeed(1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.ResolveSpin(100); err != nil {
			b.Fatalf("ResolveSpin failed: %v", err)
		}
	}
}

func BenchmarkApplyBet(b *testing.B) {
	l, err := ledger.New(slots.MustNewEngine(slots.WithSeed(1)), ledger.DefaultLimits(), ledger.WithPublisher(&StubBus{}))
	if err != nil {
		b.Fatalf("ledger.New failed: %v", err)
	}
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if l.Balance() < 100 {
			b.StopTimer()
			_, _ = l.SetBalance(ctx, ledger.DefaultInitialBalance)
			b.StartTimer()
		}
		if _, err := l.ApplyBet(ctx, 100); err != nil {
			b.Fatalf("ApplyBet failed: %v", err)
		}
	}
}

func BenchmarkRunBatch_Max(b *testing.B) {
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		l, err := ledger.New(slots.MustNewEngine(slots.WithSeed(uint64(i))), ledger.DefaultLimits(), ledger.WithPublisher(&StubBus{}))
		if err != nil {
			b.Fatalf("ledger.New failed: %v", err)
		}
		_, _ = l.SetBalance(ctx, 1_000_000_000)
		b.StartTimer()

		if _, err := l.RunBatch(ctx, 100, ledger.DefaultMaxBatchSize); err != nil {
			b.Fatalf("RunBatch failed: %v", err)
		}
	}
}

func BenchmarkBus_SpinFanout(b *testing.B) {
	bus := event.NewMemoryBus()
	for i := 0; i < 3; i++ {
		bus.Subscribe(event.SpinResolved, func(context.Context, event.Event) error { return nil })
	}
	l, err := ledger.New(slots.MustNewEngine(slots.WithSeed(1)), ledger.DefaultLimits(), ledger.WithPublisher(bus))
	if err != nil {
		b.Fatalf("ledger.New failed: %v", err)
	}
	ctx := context.Background()
	_, _ = l.SetBalance(ctx, 1_000_000_000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.ApplyBet(ctx, 100); err != nil {
			b.Fatalf("ApplyBet failed: %v", err)
		}
	}
}
