package domain

import (
	"fmt"
	"strings"
)

// Symbol is a single reel symbol
type Symbol int

// Symbols in bot slots order. The order matters: the loss draw indexes into it.
const (
	SymbolEggplant Symbol = iota
	SymbolHeart
	SymbolCherry
	SymbolCowoncy
	SymbolO
	SymbolW
	SymbolSpinning // display placeholder, never part of a resolved outcome
)

var symbolNames = [...]string{
	SymbolEggplant: "eggplant",
	SymbolHeart:    "heart",
	SymbolCherry:   "cherry",
	SymbolCowoncy:  "cowoncy",
	SymbolO:        "o",
	SymbolW:        "w",
	SymbolSpinning: "spinning",
}

var symbolGlyphs = [...]string{
	SymbolEggplant: "🍆",
	SymbolHeart:    "❤️",
	SymbolCherry:   "🍒",
	SymbolCowoncy:  "💰",
	SymbolO:        "🅾️",
	SymbolW:        "🇼",
	SymbolSpinning: "🎰",
}

// BotSlotsOrder is the resolvable alphabet, excluding the Spinning placeholder
var BotSlotsOrder = []Symbol{
	SymbolEggplant,
	SymbolHeart,
	SymbolCherry,
	SymbolCowoncy,
	SymbolO,
	SymbolW,
}

// Valid reports whether s is a known symbol
func (s Symbol) Valid() bool {
	return s >= SymbolEggplant && s <= SymbolSpinning
}

// Resolvable reports whether s may appear in a resolved outcome
func (s Symbol) Resolvable() bool {
	return s.Valid() && s != SymbolSpinning
}

func (s Symbol) String() string {
	if !s.Valid() {
		return fmt.Sprintf("symbol(%d)", int(s))
	}
	return symbolNames[s]
}

// Glyph returns the emoji shown on the reel
func (s Symbol) Glyph() string {
	if !s.Valid() {
		return "?"
	}
	return symbolGlyphs[s]
}

// MarshalText encodes the symbol by name
func (s Symbol) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown symbol %d", int(s))
	}
	return []byte(symbolNames[s]), nil
}

// UnmarshalText decodes a symbol name
func (s *Symbol) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for i, n := range symbolNames {
		if n == name {
			*s = Symbol(i)
			return nil
		}
	}
	return fmt.Errorf("unknown symbol %q", string(text))
}

// ReelCombination is the ordered triple shown on reels 1, 2 and 3
type ReelCombination [3]Symbol

// SpinningReels is the display state while all reels are still spinning
var SpinningReels = ReelCombination{SymbolSpinning, SymbolSpinning, SymbolSpinning}

// Resolved reports whether every reel holds a resolvable symbol
func (c ReelCombination) Resolved() bool {
	for _, s := range c {
		if !s.Resolvable() {
			return false
		}
	}
	return true
}

// TripleMatch reports whether all three reels show the same symbol
func (c ReelCombination) TripleMatch() bool {
	return c[0] == c[1] && c[1] == c[2]
}

// Display renders the combination as glyphs
func (c ReelCombination) Display() string {
	return c[0].Glyph() + c[1].Glyph() + c[2].Glyph()
}

func (c ReelCombination) String() string {
	return fmt.Sprintf("[%s %s %s]", c[0], c[1], c[2])
}

// PayoutRule is one row of the paytable
type PayoutRule struct {
	Name        string          `json:"name"`
	Combination ReelCombination `json:"combination"`
	Multiplier  int64           `json:"multiplier"`
	Display     string          `json:"display"`
}

// SpinOutcome is the fully resolved result of a single spin
type SpinOutcome struct {
	SpinID      string          `json:"spin_id,omitempty"` // assigned when applied to a ledger
	Combination ReelCombination `json:"combination"`
	Wager       int64           `json:"wager"`
	Prize       int64           `json:"prize"`          // 0 on a loss
	Rule        *PayoutRule     `json:"rule,omitempty"` // nil on a loss
	Draw        float64         `json:"draw"`           // ladder draw in [0,100)

	// set by the ledger under its lock
	BalanceAfter int64 `json:"balance_after"`
	EventIndex   int64 `json:"event_index,omitempty"`
}

// IsWin reports whether the outcome matched a paytable rule
func (o SpinOutcome) IsWin() bool {
	return o.Rule != nil
}

// RuleName returns the matched rule name, or "" on a loss
func (o SpinOutcome) RuleName() string {
	if o.Rule == nil {
		return ""
	}
	return o.Rule.Name
}

// NetChange is the balance effect of the spin once the wager is paid
func (o SpinOutcome) NetChange() int64 {
	return o.Prize - o.Wager
}
