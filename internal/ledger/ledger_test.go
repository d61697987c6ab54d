package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/OwoSlots_Go/internal/domain"
	"github.com/osse101/OwoSlots_Go/internal/event"
	"github.com/osse101/OwoSlots_Go/internal/slots"
)

// MockResolver is a testify mock for Resolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveSpin(wager int64) (domain.SpinOutcome, error) {
	args := m.Called(wager)
	return args.Get(0).(domain.SpinOutcome), args.Error(1)
}

type resolverFunc func(int64) (domain.SpinOutcome, error)

func (f resolverFunc) ResolveSpin(wager int64) (domain.SpinOutcome, error) { return f(wager) }

func newForcedLedger(t *testing.T, draws ...float64) *Ledger {
	t.Helper()
	engine, err := slots.NewEngine(slots.WithRandomSource(slots.NewSequenceSource(draws...)))
	require.NoError(t, err)
	l, err := New(engine, DefaultLimits())
	require.NoError(t, err)
	return l
}

func TestNew_SeedsInitialEntry(t *testing.T) {
	l := newForcedLedger(t, 0.9)

	assert.Equal(t, DefaultInitialBalance, l.Balance())
	assert.Equal(t, []domain.LedgerEntry{{EventIndex: 0, BalanceAfter: 10000, Kind: domain.EntryInitial}}, l.History())
	assert.Equal(t, DefaultLimits(), l.Limits())
}

func TestNew_RejectsBadLimits(t *testing.T) {
	engine := slots.MustNewEngine(slots.WithSeed(1))

	_, err := New(engine, Limits{MinWager: 0, MaxWager: 10, InitialBalance: 1, MaxBatchSize: 1})
	assert.Error(t, err)
	_, err = New(engine, Limits{MinWager: 10, MaxWager: 5, InitialBalance: 1, MaxBatchSize: 1})
	assert.Error(t, err)
	_, err = New(engine, Limits{MinWager: 1, MaxWager: 5, InitialBalance: -1, MaxBatchSize: 1})
	assert.Error(t, err)
	_, err = New(engine, Limits{MinWager: 1, MaxWager: 5, InitialBalance: 1, MaxBatchSize: 0})
	assert.Error(t, err)
	_, err = New(nil, DefaultLimits())
	assert.Error(t, err)
}

func TestApplyBet_EndToEnd(t *testing.T) {
	t.Run("eggplants returns the wager", func(t *testing.T) {
		l := newForcedLedger(t, 0.10)
		outcome, err := l.ApplyBet(context.Background(), 100)
		require.NoError(t, err)

		assert.Equal(t, slots.RuleEggplants, outcome.RuleName())
		assert.Equal(t, int64(100), outcome.Prize)
		assert.NotEmpty(t, outcome.SpinID)
		assert.Equal(t, int64(10000), l.Balance())
		history := l.History()
		require.Len(t, history, 2)
		assert.Equal(t, domain.LedgerEntry{EventIndex: 1, BalanceAfter: 10000, Kind: domain.EntrySpin}, history[1])
	})

	t.Run("jackpot pays ten times", func(t *testing.T) {
		l := newForcedLedger(t, 0.48)
		outcome, err := l.ApplyBet(context.Background(), 100)
		require.NoError(t, err)

		assert.Equal(t, slots.RuleOwOJackpot, outcome.RuleName())
		assert.Equal(t, int64(1000), outcome.Prize)
		assert.Equal(t, int64(10900), l.Balance())
		assert.Equal(t, int64(10900), l.History()[1].BalanceAfter)
		assert.Equal(t, int64(10900), outcome.BalanceAfter)
		assert.Equal(t, int64(1), outcome.EventIndex)
	})

	t.Run("insufficient funds appends nothing", func(t *testing.T) {
		l := newForcedLedger(t, 0.10)
		_, err := l.SetBalance(context.Background(), 50)
		require.NoError(t, err)

		_, err = l.ApplyBet(context.Background(), 100)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, int64(50), l.Balance())
		assert.Len(t, l.History(), 2)
	})

	t.Run("negative set is rejected", func(t *testing.T) {
		l := newForcedLedger(t, 0.10)
		_, err := l.SetBalance(context.Background(), -5)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		assert.Equal(t, int64(10000), l.Balance())
		assert.Len(t, l.History(), 1)
	})
}

func TestApplyBet_RejectsWagers(t *testing.T) {
	l := newForcedLedger(t, 0.10)
	ctx := context.Background()

	_, err := l.ApplyBet(ctx, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidWager)
	assert.ErrorIs(t, err, domain.ErrWagerOutOfRange)

	_, err = l.ApplyBet(ctx, -100)
	assert.ErrorIs(t, err, domain.ErrInvalidWager)

	_, err = l.ApplyBet(ctx, DefaultMaxWager+1)
	assert.ErrorIs(t, err, domain.ErrWagerOutOfRange)
	assert.NotErrorIs(t, err, domain.ErrInvalidWager)

	assert.Len(t, l.History(), 1)
	assert.Equal(t, DefaultInitialBalance, l.Balance())
}

func TestApplyBet_BalanceConservation(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("ResolveSpin", int64(300)).Return(domain.SpinOutcome{Wager: 300, Prize: 900}, nil).Once()
	resolver.On("ResolveSpin", int64(300)).Return(domain.SpinOutcome{Wager: 300, Prize: 0}, nil).Once()

	l, err := New(resolver, DefaultLimits(), WithSpinIDGenerator(func() string { return "fixed" }))
	require.NoError(t, err)

	before := l.Balance()
	outcome, err := l.ApplyBet(context.Background(), 300)
	require.NoError(t, err)
	assert.Equal(t, before-300+900, l.Balance())
	assert.Equal(t, "fixed", outcome.SpinID)

	before = l.Balance()
	_, err = l.ApplyBet(context.Background(), 300)
	require.NoError(t, err)
	assert.Equal(t, before-300, l.Balance())

	resolver.AssertExpectations(t)
}

func TestApplyBet_ResolverErrorLeavesStateUntouched(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("ResolveSpin", int64(10)).Return(domain.SpinOutcome{}, errors.New("boom"))

	l, err := New(resolver, DefaultLimits())
	require.NoError(t, err)

	_, err = l.ApplyBet(context.Background(), 10)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgResolveFailed)
	assert.Equal(t, DefaultInitialBalance, l.Balance())
	assert.Len(t, l.History(), 1)
}

func TestApplyBet_CancelledContext(t *testing.T) {
	l := newForcedLedger(t, 0.10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.ApplyBet(ctx, 100)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, l.History(), 1)
}

func TestAdjustBalance(t *testing.T) {
	l := newForcedLedger(t, 0.10)
	ctx := context.Background()

	balance, err := l.AdjustBalance(ctx, 2500)
	require.NoError(t, err)
	assert.Equal(t, int64(12500), balance)

	balance, err = l.AdjustBalance(ctx, -20000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	history := l.History()
	require.Len(t, history, 3)
	assert.Equal(t, domain.EntryAdjustment, history[2].Kind)
	assert.Equal(t, int64(0), history[2].BalanceAfter)
	assert.Equal(t, int64(2), history[2].EventIndex)
}

func TestSetBalance(t *testing.T) {
	l := newForcedLedger(t, 0.10)

	balance, err := l.SetBalance(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	last := l.History()[1]
	assert.Equal(t, domain.LedgerEntry{EventIndex: 1, BalanceAfter: 0, Kind: domain.EntrySet}, last)
}

func TestClampWager(t *testing.T) {
	l := newForcedLedger(t, 0.10)

	clamped, err := l.ClampWager(300000)
	assert.Equal(t, DefaultMaxWager, clamped)
	assert.ErrorIs(t, err, domain.ErrWagerOutOfRange)

	clamped, err = l.ClampWager(0)
	assert.Equal(t, DefaultMinWager, clamped)
	assert.ErrorIs(t, err, domain.ErrWagerOutOfRange)

	clamped, err = l.ClampWager(777)
	assert.Equal(t, int64(777), clamped)
	assert.NoError(t, err)
}

func TestAllInAndPresetWagers(t *testing.T) {
	l := newForcedLedger(t, 0.10)
	ctx := context.Background()

	assert.Equal(t, int64(10000), l.AllInWager())

	_, _ = l.SetBalance(ctx, 1_000_000)
	assert.Equal(t, DefaultMaxWager, l.AllInWager())

	_, _ = l.SetBalance(ctx, 0)
	assert.Equal(t, DefaultMinWager, l.AllInWager())

	assert.Equal(t, int64(500), l.PresetWager(500))
	assert.Equal(t, DefaultMaxWager, l.PresetWager(1_000_000))
}

func TestLedger_PublishesEvents(t *testing.T) {
	bus := event.NewMemoryBus()
	var mu sync.Mutex
	var got []event.Event
	record := func(_ context.Context, evt event.Event) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, evt)
		return nil
	}
	for _, typ := range []event.Type{event.SpinResolved, event.BatchCompleted, event.BalanceAdjusted, event.BalanceSet} {
		bus.Subscribe(typ, record)
	}

	engine := slots.MustNewEngine(slots.WithRandomSource(slots.NewSequenceSource(0.48)))
	l, err := New(engine, DefaultLimits(), WithPublisher(bus))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = l.ApplyBet(ctx, 100)
	require.NoError(t, err)
	_, err = l.AdjustBalance(ctx, 100)
	require.NoError(t, err)
	_, err = l.SetBalance(ctx, 5000)
	require.NoError(t, err)
	_, err = l.RunBatch(ctx, 100, 3)
	require.NoError(t, err)

	require.Len(t, got, 4)
	assert.Equal(t, event.SpinResolved, got[0].Type)
	spin, err := event.DecodePayload[event.SpinResolvedPayloadV1](got[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, int64(10900), spin.BalanceAfter)
	assert.Equal(t, slots.RuleOwOJackpot, spin.RuleName)

	assert.Equal(t, event.BalanceAdjusted, got[1].Type)
	assert.Equal(t, event.BalanceSet, got[2].Type)

	batch, err := event.DecodePayload[event.BatchCompletedPayloadV1](got[3].Payload)
	require.NoError(t, err)
	assert.Equal(t, 3, batch.Summary.SpinsRun)
	assert.Equal(t, int64(300), batch.TotalWagered)
	assert.Equal(t, int64(4), batch.FirstEventIndex)
}

func TestLedger_ConcurrentBets(t *testing.T) {
	engine := slots.MustNewEngine(slots.WithSeed(7))
	l, err := New(engine, DefaultLimits())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_, _ = l.ApplyBet(context.Background(), 10)
			}
		}()
	}
	wg.Wait()

	history := l.History()
	for i, e := range history {
		assert.Equal(t, int64(i), e.EventIndex)
	}
	assert.Equal(t, history[len(history)-1].BalanceAfter, l.Balance())
}
