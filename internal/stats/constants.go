package stats

// ============================================================================
// Rounding
// ============================================================================

// ReturnPrecision is the number of decimal places kept in ObservedReturn
const ReturnPrecision = 4

// WinRatePrecision is the number of decimal places kept in WinRate
const WinRatePrecision = 2

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSpinRecorded  = "Spin recorded in session stats"
	LogMsgBatchRecorded = "Batch recorded in session stats"
	LogMsgStatsReset    = "Session stats reset"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgDecodeSpinPayload  = "failed to decode spin payload"
	ErrMsgDecodeBatchPayload = "failed to decode batch payload"
)
