package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/osse101/OwoSlots_Go/internal/domain"
	"github.com/osse101/OwoSlots_Go/internal/slots"
)

func TestRunBatch_InsufficientStartBalance(t *testing.T) {
	l := newForcedLedger(t, 0.10)
	ctx := context.Background()
	_, err := l.SetBalance(ctx, 5)
	require.NoError(t, err)

	summary, err := l.RunBatch(ctx, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.SpinsRun)
	assert.Equal(t, 5, summary.Requested)
	assert.Equal(t, int64(0), summary.NetChange)
	assert.Equal(t, int64(5), summary.FinalBalance)
	assert.True(t, summary.StoppedEarly())
	assert.Len(t, l.History(), 2)
}

func TestRunBatch_RejectsBadInput(t *testing.T) {
	l := newForcedLedger(t, 0.10)
	ctx := context.Background()

	_, err := l.RunBatch(ctx, 100, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidCount)

	_, err = l.RunBatch(ctx, 100, DefaultMaxBatchSize+1)
	assert.ErrorIs(t, err, domain.ErrInvalidCount)

	_, err = l.RunBatch(ctx, 0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidWager)

	_, err = l.RunBatch(ctx, DefaultMaxWager+1, 10)
	assert.ErrorIs(t, err, domain.ErrWagerOutOfRange)

	assert.Len(t, l.History(), 1)
}

func TestRunBatch_AllLosses(t *testing.T) {
	// every ladder draw of 0.9 loses
	l := newForcedLedger(t, 0.9)
	summary, err := l.RunBatch(context.Background(), 1000, 4)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.SpinsRun)
	assert.Equal(t, 0, summary.Wins)
	assert.Equal(t, int64(-4000), summary.NetChange)
	assert.Equal(t, int64(6000), summary.FinalBalance)

	history := l.History()
	require.Len(t, history, 5)
	for i, e := range history[1:] {
		assert.Equal(t, domain.EntrySimulatedSpin, e.Kind)
		assert.Equal(t, int64(10000-1000*(i+1)), e.BalanceAfter)
	}
}

func TestRunBatch_StopsWhenBalanceRunsOut(t *testing.T) {
	l := newForcedLedger(t, 0.9)
	_, err := l.SetBalance(context.Background(), 2500)
	require.NoError(t, err)

	summary, err := l.RunBatch(context.Background(), 1000, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.SpinsRun)
	assert.Equal(t, int64(500), summary.FinalBalance)
	assert.Equal(t, int64(-2000), summary.NetChange)
	assert.Len(t, l.History(), 4)
}

func TestRunBatch_CancelKeepsAppliedSpins(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	resolver := resolverFunc(func(wager int64) (domain.SpinOutcome, error) {
		calls++
		if calls == 3 {
			cancel()
		}
		return domain.SpinOutcome{Wager: wager}, nil
	})
	l, err := New(resolver, DefaultLimits())
	require.NoError(t, err)

	summary, err := l.RunBatch(ctx, 10, 100)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, summary.SpinsRun)
	assert.Equal(t, int64(-30), summary.NetChange)
	assert.Len(t, l.History(), 4)
	assert.Equal(t, summary.FinalBalance, l.Balance())
}

func TestRunBatch_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		start := rapid.Int64Range(0, 50000).Draw(t, "start")
		wager := rapid.Int64Range(1, 5000).Draw(t, "wager")
		count := rapid.IntRange(1, 300).Draw(t, "count")

		l, err := New(slots.MustNewEngine(slots.WithSeed(seed)), DefaultLimits())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		ctx := context.Background()
		if _, err := l.SetBalance(ctx, start); err != nil {
			t.Fatalf("SetBalance: %v", err)
		}
		before := len(l.History())

		summary, err := l.RunBatch(ctx, wager, count)
		if err != nil {
			t.Fatalf("RunBatch: %v", err)
		}

		history := l.History()
		added := history[before:]
		if len(added) != summary.SpinsRun || summary.SpinsRun > count {
			t.Fatalf("added %d entries for %d spins of %d", len(added), summary.SpinsRun, count)
		}
		if summary.FinalBalance != start+summary.NetChange || summary.FinalBalance != l.Balance() {
			t.Fatalf("final %d != start %d + net %d", summary.FinalBalance, start, summary.NetChange)
		}
		if summary.SpinsRun < count && summary.FinalBalance >= wager {
			t.Fatalf("stopped early with balance %d >= wager %d", summary.FinalBalance, wager)
		}
		prev := start
		for _, e := range added {
			if prev < wager {
				t.Fatalf("spun with balance %d below wager %d", prev, wager)
			}
			if e.Kind != domain.EntrySimulatedSpin {
				t.Fatalf("unexpected entry kind %s", e.Kind)
			}
			prev = e.BalanceAfter
		}
	})
}

func TestLedger_EventIndexMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l, err := New(slots.MustNewEngine(slots.WithSeed(rapid.Uint64().Draw(t, "seed"))), DefaultLimits())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		ctx := context.Background()

		ops := rapid.IntRange(1, 40).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			before := len(l.History())
			beforeBalance := l.Balance()
			var opErr error
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				_, opErr = l.ApplyBet(ctx, rapid.Int64Range(-10, 300000).Draw(t, "wager"))
			case 1:
				_, opErr = l.AdjustBalance(ctx, rapid.Int64Range(-20000, 20000).Draw(t, "delta"))
			case 2:
				_, opErr = l.SetBalance(ctx, rapid.Int64Range(-10, 100000).Draw(t, "amount"))
			case 3:
				_, opErr = l.RunBatch(ctx, rapid.Int64Range(1, 1000).Draw(t, "batchWager"), rapid.IntRange(0, 50).Draw(t, "count"))
			}
			after := len(l.History())
			if opErr != nil && (after != before || l.Balance() != beforeBalance) {
				t.Fatalf("rejected operation changed state: %v", opErr)
			}
			if l.Balance() < 0 {
				t.Fatalf("negative balance %d", l.Balance())
			}
		}

		for i, e := range l.History() {
			if e.EventIndex != int64(i) {
				t.Fatalf("entry %d has index %d", i, e.EventIndex)
			}
		}
	})
}
