package ledger

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/OwoSlots_Go/internal/domain"
	"github.com/osse101/OwoSlots_Go/internal/event"
	"github.com/osse101/OwoSlots_Go/internal/logger"
)

// Resolver draws spin outcomes. *slots.Engine satisfies it.
type Resolver interface {
	ResolveSpin(wager int64) (domain.SpinOutcome, error)
}

// Limits bounds wagers and batch runs for one ledger
type Limits struct {
	MinWager       int64 `json:"min_wager"`
	MaxWager       int64 `json:"max_wager"`
	InitialBalance int64 `json:"initial_balance"`
	MaxBatchSize   int   `json:"max_batch_size"`
}

// DefaultLimits returns the build-time limits
func DefaultLimits() Limits {
	return Limits{
		MinWager:       DefaultMinWager,
		MaxWager:       DefaultMaxWager,
		InitialBalance: DefaultInitialBalance,
		MaxBatchSize:   DefaultMaxBatchSize,
	}
}

// Validate checks the limits are internally consistent
func (l Limits) Validate() error {
	if l.MinWager <= 0 || l.MaxWager < l.MinWager {
		return fmt.Errorf("%s: "+ErrMsgLimitsWagerRange, ErrMsgInvalidLimits, l.MinWager, l.MaxWager)
	}
	if l.InitialBalance < 0 {
		return fmt.Errorf("%s: "+ErrMsgLimitsBalance, ErrMsgInvalidLimits, l.InitialBalance)
	}
	if l.MaxBatchSize <= 0 {
		return fmt.Errorf("%s: "+ErrMsgLimitsBatchSize, ErrMsgInvalidLimits, l.MaxBatchSize)
	}
	return nil
}

// Ledger owns one session's balance and its append-only history.
// Every operation holds the ledger lock for its full duration, so concurrent
// callers observe operations one at a time and never a partial batch.
type Ledger struct {
	mu        sync.Mutex
	resolver  Resolver
	limits    Limits
	balance   int64
	history   []domain.LedgerEntry
	publisher event.Publisher
	newSpinID func() string
}

// Option configures a Ledger
type Option func(*Ledger)

// WithPublisher publishes ledger events after each successful operation
func WithPublisher(p event.Publisher) Option {
	return func(l *Ledger) {
		l.publisher = p
	}
}

// WithSpinIDGenerator overrides the uuid spin IDs
func WithSpinIDGenerator(fn func() string) Option {
	return func(l *Ledger) {
		l.newSpinID = fn
	}
}

// New creates a ledger seeded with limits.InitialBalance and one initial entry
func New(resolver Resolver, limits Limits, opts ...Option) (*Ledger, error) {
	if resolver == nil {
		return nil, errors.New("resolver is required")
	}
	if err := limits.Validate(); err != nil {
		return nil, err
	}

	l := &Ledger{
		resolver:  resolver,
		limits:    limits,
		balance:   limits.InitialBalance,
		publisher: event.NopPublisher{},
		newSpinID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.history = []domain.LedgerEntry{{
		EventIndex:   0,
		BalanceAfter: l.balance,
		Kind:         domain.EntryInitial,
	}}
	return l, nil
}

// Balance returns the current balance
func (l *Ledger) Balance() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Limits returns the ledger's limits
func (l *Ledger) Limits() Limits {
	return l.limits
}

// History returns a copy of every entry in order
func (l *Ledger) History() []domain.LedgerEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.LedgerEntry, len(l.history))
	copy(out, l.history)
	return out
}

// appendEntry must be called with mu held
func (l *Ledger) appendEntry(kind domain.EntryKind) domain.LedgerEntry {
	entry := domain.LedgerEntry{
		EventIndex:   l.history[len(l.history)-1].EventIndex + 1,
		BalanceAfter: l.balance,
		Kind:         kind,
	}
	l.history = append(l.history, entry)
	return entry
}

func (l *Ledger) checkWager(wager int64) error {
	if wager <= 0 {
		return fmt.Errorf("%w: %w: "+ErrMsgWagerNotPositive, domain.ErrInvalidWager, domain.ErrWagerOutOfRange, wager)
	}
	if wager < l.limits.MinWager {
		return fmt.Errorf("%w: "+ErrMsgWagerBelowMin, domain.ErrWagerOutOfRange, wager, l.limits.MinWager)
	}
	if wager > l.limits.MaxWager {
		return fmt.Errorf("%w: "+ErrMsgWagerAboveMax, domain.ErrWagerOutOfRange, wager, l.limits.MaxWager)
	}
	return nil
}

func (l *Ledger) publish(ctx context.Context, evt event.Event) {
	if err := l.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}

// ApplyBet debits wager, resolves a spin, credits the prize and appends one spin entry.
// A rejected bet leaves balance and history untouched.
func (l *Ledger) ApplyBet(ctx context.Context, wager int64) (domain.SpinOutcome, error) {
	if err := ctx.Err(); err != nil {
		return domain.SpinOutcome{}, err
	}
	log := logger.FromContext(ctx)

	l.mu.Lock()
	if err := l.checkWager(wager); err != nil {
		l.mu.Unlock()
		log.Debug(LogMsgBetRejected, "wager", wager, "error", err)
		return domain.SpinOutcome{}, err
	}
	if l.balance < wager {
		balance := l.balance
		l.mu.Unlock()
		return domain.SpinOutcome{}, fmt.Errorf("%w: "+ErrMsgFundsShort, domain.ErrInsufficientFunds, balance, wager)
	}

	outcome, err := l.resolver.ResolveSpin(wager)
	if err != nil {
		l.mu.Unlock()
		log.Warn(LogMsgResolverRejected, "wager", wager, "error", err)
		return domain.SpinOutcome{}, fmt.Errorf("%s: %w", ErrMsgResolveFailed, err)
	}
	afterDebit := l.balance - wager
	if outcome.Prize > math.MaxInt64-afterDebit {
		l.mu.Unlock()
		return domain.SpinOutcome{}, fmt.Errorf("%w: "+ErrMsgBalanceOverflow, domain.ErrInvalidAmount, afterDebit, outcome.Prize)
	}

	l.balance = afterDebit + outcome.Prize
	outcome.SpinID = l.newSpinID()
	entry := l.appendEntry(domain.EntrySpin)
	l.mu.Unlock()
	outcome.BalanceAfter = entry.BalanceAfter
	outcome.EventIndex = entry.EventIndex

	log.Debug(LogMsgSpinApplied,
		"spin_id", outcome.SpinID,
		"wager", wager,
		"prize", outcome.Prize,
		"rule", outcome.RuleName(),
		"balance", entry.BalanceAfter)
	l.publish(ctx, event.NewSpinResolvedEvent(outcome, entry))

	return outcome, nil
}

// AdjustBalance adds delta to the balance, clamping the result at 0, and appends one adjustment entry
func (l *Ledger) AdjustBalance(ctx context.Context, delta int64) (int64, error) {
	l.mu.Lock()
	previous := l.balance
	if delta > 0 && previous > math.MaxInt64-delta {
		l.mu.Unlock()
		return previous, fmt.Errorf("%w: "+ErrMsgBalanceOverflow, domain.ErrInvalidAmount, previous, delta)
	}
	l.balance = max(0, previous+delta)
	entry := l.appendEntry(domain.EntryAdjustment)
	l.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgBalanceAdjusted, "delta", delta, "previous", previous, "balance", entry.BalanceAfter)
	l.publish(ctx, event.NewBalanceEvent(event.BalanceAdjusted, previous, delta, entry))
	return entry.BalanceAfter, nil
}

// SetBalance overwrites the balance and appends one set entry. Negative amounts are rejected.
func (l *Ledger) SetBalance(ctx context.Context, amount int64) (int64, error) {
	if amount < 0 {
		return l.Balance(), fmt.Errorf("%w: "+ErrMsgNegativeAmount, domain.ErrInvalidAmount, amount)
	}

	l.mu.Lock()
	previous := l.balance
	l.balance = amount
	entry := l.appendEntry(domain.EntrySet)
	l.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgBalanceSet, "previous", previous, "balance", amount)
	l.publish(ctx, event.NewBalanceEvent(event.BalanceSet, previous, amount, entry))
	return amount, nil
}

// RunBatch runs up to count spins of wager back to back, stopping as soon as the
// balance cannot cover the wager. Each spin appends one simulated_spin entry.
// When ctx is cancelled between spins the spins already applied are kept and the
// partial summary is returned with ctx's error.
func (l *Ledger) RunBatch(ctx context.Context, wager int64, count int) (domain.BatchSummary, error) {
	if count < 1 || count > l.limits.MaxBatchSize {
		return domain.BatchSummary{}, fmt.Errorf("%w: "+ErrMsgCountOutOfRange, domain.ErrInvalidCount, count, l.limits.MaxBatchSize)
	}
	log := logger.FromContext(ctx)

	l.mu.Lock()
	if err := l.checkWager(wager); err != nil {
		l.mu.Unlock()
		return domain.BatchSummary{}, err
	}

	summary := domain.BatchSummary{
		Requested:    count,
		StartBalance: l.balance,
	}
	firstIndex := l.history[len(l.history)-1].EventIndex + 1
	var totalPaid int64
	var runErr error

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		if l.balance < wager {
			break
		}
		outcome, err := l.resolver.ResolveSpin(wager)
		if err != nil {
			runErr = fmt.Errorf("%s: %w", ErrMsgResolveFailed, err)
			break
		}
		afterDebit := l.balance - wager
		if outcome.Prize > math.MaxInt64-afterDebit {
			runErr = fmt.Errorf("%w: "+ErrMsgBalanceOverflow, domain.ErrInvalidAmount, afterDebit, outcome.Prize)
			break
		}
		l.balance = afterDebit + outcome.Prize
		l.appendEntry(domain.EntrySimulatedSpin)

		summary.SpinsRun++
		summary.NetChange += outcome.Prize - wager
		totalPaid += outcome.Prize
		if outcome.IsWin() {
			summary.Wins++
		}
	}
	summary.FinalBalance = l.balance
	l.mu.Unlock()

	if runErr != nil {
		log.Warn(LogMsgBatchCancelled, "spins_run", summary.SpinsRun, "requested", count, "error", runErr)
	} else {
		log.Info(LogMsgBatchCompleted,
			"spins_run", summary.SpinsRun,
			"requested", count,
			"net_change", summary.NetChange,
			"final_balance", summary.FinalBalance)
	}
	if summary.SpinsRun > 0 {
		l.publish(ctx, event.NewBatchCompletedEvent(summary, wager, totalPaid, firstIndex))
	}
	return summary, runErr
}

// ClampWager moves wager into [MinWager, MaxWager]. When it had to move, the
// clamped value comes back together with an ErrWagerOutOfRange describing the change.
func (l *Ledger) ClampWager(wager int64) (int64, error) {
	switch {
	case wager > l.limits.MaxWager:
		return l.limits.MaxWager, fmt.Errorf("%w: "+ErrMsgWagerClampedToMax, domain.ErrWagerOutOfRange, wager, l.limits.MaxWager)
	case wager < l.limits.MinWager:
		return l.limits.MinWager, fmt.Errorf("%w: "+ErrMsgWagerClampedToMin, domain.ErrWagerOutOfRange, wager, l.limits.MinWager)
	default:
		return wager, nil
	}
}

// AllInWager is the largest wager the current balance allows, never below MinWager
func (l *Ledger) AllInWager() int64 {
	balance := l.Balance()
	return max(l.limits.MinWager, min(balance, l.limits.MaxWager))
}

// PresetWager clamps a quick bet preset into the wager limits without complaint
func (l *Ledger) PresetWager(amount int64) int64 {
	return max(l.limits.MinWager, min(amount, l.limits.MaxWager))
}
