package domain

import "github.com/shopspring/decimal"

// SlotsStats aggregates the spins played in the current session.
// Simulated spins count toward totals but not RuleHits, since a batch
// only reports its summary.
type SlotsStats struct {
	TotalSpins     int             `json:"total_spins"`
	SimulatedSpins int             `json:"simulated_spins"`
	Batches        int             `json:"batches"`
	TotalWins      int             `json:"total_wins"`
	TotalBet       int64           `json:"total_bet"`
	TotalPayout    int64           `json:"total_payout"`
	NetProfit      int64           `json:"net_profit"`
	WinRate        float64         `json:"win_rate"` // Percentage
	ObservedReturn decimal.Decimal `json:"observed_return"`
	JackpotsHit    int             `json:"jackpots_hit"`
	BiggestWin     int64           `json:"biggest_win"`
	BiggestWinRule string          `json:"biggest_win_rule,omitempty"`
	RuleHits       map[string]int  `json:"rule_hits"`
}
