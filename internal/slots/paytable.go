package slots

import (
	"fmt"

	"github.com/osse101/OwoSlots_Go/internal/domain"
)

// Paytable is the ordered list of paying combinations
type Paytable []domain.PayoutRule

// Tier is one rung of the draw ladder: draws at or below Bound pay Rule
type Tier struct {
	Bound float64
	Rule  string
}

// Ladder is evaluated in order, first match wins
type Ladder []Tier

func triple(s domain.Symbol) domain.ReelCombination {
	return domain.ReelCombination{s, s, s}
}

func newRule(name string, comb domain.ReelCombination, multiplier int64) domain.PayoutRule {
	return domain.PayoutRule{
		Name:        name,
		Combination: comb,
		Multiplier:  multiplier,
		Display:     comb.Display(),
	}
}

// DefaultPaytable returns the built-in paytable
func DefaultPaytable() Paytable {
	return Paytable{
		newRule(RuleEggplants, triple(domain.SymbolEggplant), 1),
		newRule(RuleHearts, triple(domain.SymbolHeart), 2),
		newRule(RuleCherries, triple(domain.SymbolCherry), 3),
		newRule(RuleCowoncies, triple(domain.SymbolCowoncy), 4),
		newRule(RuleOwOJackpot, domain.ReelCombination{domain.SymbolO, domain.SymbolW, domain.SymbolO}, 10),
	}
}

// DefaultLadder returns the built-in draw ladder
func DefaultLadder() Ladder {
	return Ladder{
		{Bound: BoundEggplants, Rule: RuleEggplants},
		{Bound: BoundHearts, Rule: RuleHearts},
		{Bound: BoundCherries, Rule: RuleCherries},
		{Bound: BoundCowoncies, Rule: RuleCowoncies},
		{Bound: BoundOwOJackpot, Rule: RuleOwOJackpot},
	}
}

// Validate checks that rule names and combinations are unique and multipliers positive
func (p Paytable) Validate() error {
	seenComb := make(map[domain.ReelCombination]string, len(p))
	seenName := make(map[string]struct{}, len(p))
	for i, r := range p {
		if r.Name == "" {
			return fmt.Errorf("%w: "+ErrMsgEmptyRuleName, domain.ErrInvalidPaytable, i)
		}
		if _, dup := seenName[r.Name]; dup {
			return fmt.Errorf("%w: duplicate rule name %q", domain.ErrInvalidPaytable, r.Name)
		}
		seenName[r.Name] = struct{}{}
		if r.Multiplier <= 0 {
			return fmt.Errorf("%w: "+ErrMsgNonPositiveMultiplier, domain.ErrInvalidPaytable, r.Name, r.Multiplier)
		}
		if !r.Combination.Resolved() {
			return fmt.Errorf("%w: "+ErrMsgUnresolvableRule, domain.ErrInvalidPaytable, r.Name, r.Combination)
		}
		if other, dup := seenComb[r.Combination]; dup {
			return fmt.Errorf("%w: "+ErrMsgDuplicateCombination, domain.ErrInvalidPaytable, r.Combination, other, r.Name)
		}
		seenComb[r.Combination] = r.Name
	}
	return nil
}

// Lookup finds the rule paying for comb
func (p Paytable) Lookup(comb domain.ReelCombination) (domain.PayoutRule, bool) {
	for _, r := range p {
		if r.Combination == comb {
			return r, true
		}
	}
	return domain.PayoutRule{}, false
}

// Rule finds a rule by name
func (p Paytable) Rule(name string) (domain.PayoutRule, bool) {
	for _, r := range p {
		if r.Name == name {
			return r, true
		}
	}
	return domain.PayoutRule{}, false
}

// Validate checks the ladder against a paytable: bounds strictly increase inside
// (0,100) and every tier names a rule of the table.
func (l Ladder) Validate(p Paytable) error {
	if len(l) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidPaytable, ErrMsgEmptyLadder)
	}
	prev := 0.0
	for i, t := range l {
		if t.Bound <= 0 || t.Bound >= DrawScale {
			return fmt.Errorf("%w: "+ErrMsgTierBoundRange, domain.ErrInvalidPaytable, i, t.Bound)
		}
		if i > 0 && t.Bound <= prev {
			return fmt.Errorf("%w: "+ErrMsgTierBoundOrder, domain.ErrInvalidPaytable, i, t.Bound, prev)
		}
		if _, ok := p.Rule(t.Rule); !ok {
			return fmt.Errorf("%w: "+ErrMsgUnknownTierRule, domain.ErrInvalidPaytable, i, t.Rule)
		}
		prev = t.Bound
	}
	return nil
}
