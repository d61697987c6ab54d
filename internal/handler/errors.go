package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Parameter validation error messages
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgInvalidIdempotencyKey = "Idempotency key is too long"

	// Operation failures
	ErrMsgSpinFailed     = "Failed to spin"
	ErrMsgSimulateFailed = "Failed to run quick simulation"
	ErrMsgAdjustFailed   = "Failed to adjust balance"
	ErrMsgSetFailed      = "Failed to set balance"

	// Readiness
	ErrMsgNotReady = "service is shutting down"
)

// Labels
const (
	MsgAllInLabel = "all in"
)

// Log messages
const (
	LogMsgIdempotentReplay = "Replaying cached response for idempotency key"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
)

// Headers
const (
	HeaderIdempotencyKey   = "Idempotency-Key"
	HeaderIdempotentReplay = "Idempotent-Replay"
	QueryParamHistoryLimit = "limit"
)

// DefaultVersion is reported until a release version is configured
const DefaultVersion = "dev"
