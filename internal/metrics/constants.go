package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
	MetricNameSSEEventsDropped   = "sse_events_dropped_total"
)

// Business metric names
const (
	MetricNameSpins         = "slots_spins_total"
	MetricNameWagered       = "slots_wagered_total"
	MetricNamePaid          = "slots_paid_total"
	MetricNameBatches       = "slots_batches_total"
	MetricNameBatchSpins    = "slots_batch_spins"
	MetricNameBalance       = "slots_balance"
	MetricNameBalanceResets = "slots_balance_changes_total"
	MetricNameRevealFrames  = "slots_reveal_frames_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
	HelpTextSSEEventsDropped   = "Total number of SSE events dropped because a buffer was full"
)

// Business metric help text
const (
	HelpTextSpins         = "Total number of spins by paying rule, including simulated spins"
	HelpTextWagered       = "Total cowoncy wagered"
	HelpTextPaid          = "Total cowoncy paid out"
	HelpTextBatches       = "Total number of quick simulation runs"
	HelpTextBatchSpins    = "Spins run per quick simulation"
	HelpTextBalance       = "Current session balance"
	HelpTextBalanceResets = "Total number of manual balance changes by source"
	HelpTextRevealFrames  = "Total number of reveal frames emitted by phase"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelRule   = "rule"
	LabelKind   = "kind"
	LabelSource = "source"
	LabelPhase  = "phase"
)

// Label values
const (
	LabelValueLoss      = "loss"
	LabelValueSpin      = "spin"
	LabelValueSimulated = "simulated"
	LabelValueAdjust    = "adjust"
	LabelValueSet       = "set"
	LabelValueUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// BatchSizeBuckets covers single spins up to the largest quick simulation
var BatchSizeBuckets = []float64{1, 10, 50, 100, 500, 1000, 5000, 10000}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgInvalidPayload  = "Event payload could not be decoded for metrics"
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
