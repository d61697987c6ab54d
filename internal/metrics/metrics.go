package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)

	SSEEventsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSSEEventsDropped,
			Help: HelpTextSSEEventsDropped,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	Spins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSpins,
			Help: HelpTextSpins,
		},
		[]string{LabelRule, LabelKind},
	)

	Wagered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWagered,
			Help: HelpTextWagered,
		},
		[]string{LabelKind},
	)

	Paid = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePaid,
			Help: HelpTextPaid,
		},
		[]string{LabelKind},
	)

	Batches = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBatches,
			Help: HelpTextBatches,
		},
	)

	BatchSpins = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameBatchSpins,
			Help:    HelpTextBatchSpins,
			Buckets: BatchSizeBuckets,
		},
	)

	Balance = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameBalance,
			Help: HelpTextBalance,
		},
	)

	BalanceChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBalanceResets,
			Help: HelpTextBalanceResets,
		},
		[]string{LabelSource},
	)

	RevealFrames = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRevealFrames,
			Help: HelpTextRevealFrames,
		},
		[]string{LabelPhase},
	)
)

// RecordSSEDrop counts an event the SSE hub could not buffer
func RecordSSEDrop(eventType string) {
	SSEEventsDropped.WithLabelValues(eventType).Inc()
}
