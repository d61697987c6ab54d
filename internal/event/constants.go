package event

import "errors"

// EventSchemaVersion is stamped on every event built by the New*Event constructors
const EventSchemaVersion = "1.0"

const (
	// LogMsgHandlerErrorFormat joins the handler errors returned by Publish
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

	// LogMsgPublishFailed is logged by publishers that do not propagate bus errors
	LogMsgPublishFailed = "Event publish failed"

	// ErrMsgDecodePayloadFormat wraps payload decode failures with the target type
	ErrMsgDecodePayloadFormat = "decode payload as %T: %w"
)

var errNilPayload = errors.New("nil payload")
