package slots

import (
	"fmt"
	"math"

	"github.com/osse101/OwoSlots_Go/internal/domain"
)

// Engine resolves spins against a paytable and draw ladder.
// An Engine is safe for concurrent use when its RandomSource is.
type Engine struct {
	paytable Paytable
	ladder   Ladder
	src      RandomSource
}

// Option configures an Engine
type Option func(*Engine)

// WithRandomSource injects the randomness used for ladder and loss draws
func WithRandomSource(src RandomSource) Option {
	return func(e *Engine) {
		e.src = src
	}
}

// WithSeed makes the engine deterministic
func WithSeed(seed uint64) Option {
	return WithRandomSource(NewSeededSource(seed))
}

// WithPaytable replaces the built-in paytable and ladder
func WithPaytable(p Paytable, l Ladder) Option {
	return func(e *Engine) {
		e.paytable = append(Paytable(nil), p...)
		e.ladder = append(Ladder(nil), l...)
	}
}

// NewEngine builds an engine with the default paytable and an OS-seeded source
// unless overridden by options.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		paytable: DefaultPaytable(),
		ladder:   DefaultLadder(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = NewSource()
	}

	if err := e.paytable.Validate(); err != nil {
		return nil, err
	}
	if err := e.ladder.Validate(e.paytable); err != nil {
		return nil, err
	}
	if err := checkLossDisjoint(e.paytable); err != nil {
		return nil, err
	}
	return e, nil
}

// MustNewEngine is NewEngine for built-in tables, panicking on error
func MustNewEngine(opts ...Option) *Engine {
	e, err := NewEngine(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Paytable returns a copy of the engine's paytable
func (e *Engine) Paytable() Paytable {
	return append(Paytable(nil), e.paytable...)
}

// Ladder returns a copy of the engine's draw ladder
func (e *Engine) Ladder() Ladder {
	return append(Ladder(nil), e.ladder...)
}

// ResolveSpin draws an outcome for wager
func (e *Engine) ResolveSpin(wager int64) (domain.SpinOutcome, error) {
	if wager <= 0 {
		return domain.SpinOutcome{}, fmt.Errorf("%w: "+ErrMsgNonPositiveWager, domain.ErrInvalidWager, wager)
	}
	return e.ResolveDraw(wager, DrawScale*e.src.Float64())
}

// ResolveDraw resolves wager against a given ladder draw d in [0,100).
// A losing draw still consumes the engine's randomness for the loss combination.
func (e *Engine) ResolveDraw(wager int64, d float64) (domain.SpinOutcome, error) {
	if wager <= 0 {
		return domain.SpinOutcome{}, fmt.Errorf("%w: "+ErrMsgNonPositiveWager, domain.ErrInvalidWager, wager)
	}
	if d < 0 || d >= DrawScale || math.IsNaN(d) {
		return domain.SpinOutcome{}, fmt.Errorf("%w: draw %v outside [0,100)", domain.ErrInvalidInput, d)
	}

	outcome := domain.SpinOutcome{Wager: wager, Draw: d}

	for _, tier := range e.ladder {
		if d > tier.Bound {
			continue
		}
		rule, _ := e.paytable.Rule(tier.Rule)
		if wager > math.MaxInt64/rule.Multiplier {
			return domain.SpinOutcome{}, fmt.Errorf("%w: wager %d overflows prize for %q", domain.ErrWagerOutOfRange, wager, rule.Name)
		}
		outcome.Combination = rule.Combination
		outcome.Prize = wager * rule.Multiplier
		outcome.Rule = &rule
		return outcome, nil
	}

	outcome.Combination = drawLoss(e.src)
	return outcome, nil
}
