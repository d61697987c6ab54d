package slots

// Paytable rule names
const (
	RuleEggplants  = "Eggplants"
	RuleHearts     = "Hearts"
	RuleCherries   = "Cherries"
	RuleCowoncies  = "Cowoncies"
	RuleOwOJackpot = "OwO Jackpot"
)

// Draw ladder upper bounds (inclusive) on a [0,100) draw
const (
	BoundEggplants  = 20.0
	BoundHearts     = 40.0
	BoundCherries   = 45.0
	BoundCowoncies  = 47.5
	BoundOwOJackpot = 48.5
)

// DrawScale maps a [0,1) random value onto the ladder range
const DrawScale = 100.0

// Loss draw alphabet: the first lossAlphabetSize symbols of the bot slots order.
// Index lossReservedIndex (O) may not sit on reel 2, it is replaced by W.
const (
	lossAlphabetSize  = 5
	lossReservedIndex = 4
	lossWIndex        = 5
)

// Message formats
const (
	MsgWinFormat             = "🎉 You won %s cowoncy! (%s) 🎉"
	MsgLoss                  = "Better luck next time! You won nothing. :c"
	MsgBatchFormat           = "Quick simulation of %s spins complete.\nNet change: %s %s\nFinal Balance: %s."
	MsgRatioNotAvail         = "(N/A)"
	MsgRatioZero             = "(+0.00%)"
	MsgBalanceAdjustedFormat = "Balance adjusted by %s. New balance: %s."
	MsgBalanceSetFormat      = "Balance set to %s."
	MsgWagerAboveMaxFormat   = "Bet exceeds max: %s. Adjusted to max."
	MsgWagerBelowMinFormat   = "Invalid bet. Min: %s."
)

// Error message constants
const (
	ErrMsgDuplicateCombination  = "duplicate combination %s in rules %q and %q"
	ErrMsgNonPositiveMultiplier = "rule %q has non-positive multiplier %d"
	ErrMsgUnresolvableRule      = "rule %q has an unresolvable combination %s"
	ErrMsgEmptyRuleName         = "rule at position %d has no name"
	ErrMsgUnknownTierRule       = "ladder tier %d names unknown rule %q"
	ErrMsgTierBoundOrder        = "ladder tier %d bound %.2f does not exceed previous bound %.2f"
	ErrMsgTierBoundRange        = "ladder tier %d bound %.2f outside (0,100)"
	ErrMsgEmptyLadder           = "ladder has no tiers"
	ErrMsgNonPositiveWager      = "wager %d must be positive"
)
