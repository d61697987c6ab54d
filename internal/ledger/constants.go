package ledger

// Build-time limits
const (
	DefaultMinWager       int64 = 1
	DefaultMaxWager       int64 = 250000
	DefaultInitialBalance int64 = 10000
	DefaultMaxBatchSize         = 10000
)

// QuickBetPresets are the one-click wager buttons offered next to "all in"
var QuickBetPresets = []int64{100, 500, 1000, 5000}

// Log messages
const (
	LogMsgSpinApplied      = "Spin applied"
	LogMsgBatchCompleted   = "Quick simulation completed"
	LogMsgBatchCancelled   = "Quick simulation cancelled"
	LogMsgBalanceAdjusted  = "Balance adjusted"
	LogMsgBalanceSet       = "Balance set"
	LogMsgPublishFailed    = "Failed to publish ledger event"
	LogMsgBetRejected      = "Bet rejected"
	LogMsgResolverRejected = "Outcome resolver rejected wager"
)

// Error message formats
const (
	ErrMsgWagerNotPositive  = "wager %d must be positive"
	ErrMsgWagerBelowMin     = "wager %d below minimum %d"
	ErrMsgWagerAboveMax     = "wager %d above maximum %d"
	ErrMsgFundsShort        = "balance %d cannot cover wager %d"
	ErrMsgNegativeAmount    = "amount %d must be 0 or greater"
	ErrMsgBalanceOverflow   = "balance %d cannot absorb %d"
	ErrMsgCountOutOfRange   = "count %d outside [1,%d]"
	ErrMsgInvalidLimits     = "invalid limits"
	ErrMsgLimitsWagerRange  = "min wager %d and max wager %d must satisfy 0 < min <= max"
	ErrMsgLimitsBalance     = "initial balance %d must be 0 or greater"
	ErrMsgLimitsBatchSize   = "max batch size %d must be positive"
	ErrMsgResolveFailed     = "failed to resolve spin"
	ErrMsgWagerClampedToMax = "wager %d clamped to maximum %d"
	ErrMsgWagerClampedToMin = "wager %d clamped to minimum %d"
)
