package slots

import (
	"github.com/shopspring/decimal"
)

// TierOdds is the probability and multiplier of one ladder tier
type TierOdds struct {
	Rule        string          `json:"rule"`
	Probability decimal.Decimal `json:"probability"`
	Multiplier  int64           `json:"multiplier"`
}

// Odds lists each tier's probability of a uniform draw landing in it
func (e *Engine) Odds() []TierOdds {
	scale := decimal.NewFromFloat(DrawScale)
	prev := decimal.Zero
	odds := make([]TierOdds, 0, len(e.ladder))
	for _, t := range e.ladder {
		bound := decimal.NewFromFloat(t.Bound)
		rule, _ := e.paytable.Rule(t.Rule)
		odds = append(odds, TierOdds{
			Rule:        t.Rule,
			Probability: bound.Sub(prev).Div(scale),
			Multiplier:  rule.Multiplier,
		})
		prev = bound
	}
	return odds
}

// ExpectedReturn is the theoretical return to player per unit wagered
func (e *Engine) ExpectedReturn() decimal.Decimal {
	total := decimal.Zero
	for _, o := range e.Odds() {
		total = total.Add(o.Probability.Mul(decimal.NewFromInt(o.Multiplier)))
	}
	return total
}

// LossProbability is the chance a draw falls above the last ladder tier
func (e *Engine) LossProbability() decimal.Decimal {
	win := decimal.Zero
	for _, o := range e.Odds() {
		win = win.Add(o.Probability)
	}
	return decimal.NewFromInt(1).Sub(win)
}
