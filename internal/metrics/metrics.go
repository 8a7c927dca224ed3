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
)

// Crafting Metrics
var (
	CombineAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCombineAttempts,
			Help: HelpTextCombineAttempts,
		},
		[]string{LabelOutcome},
	)

	Unlocks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUnlocks,
			Help: HelpTextUnlocks,
		},
		[]string{LabelKind},
	)

	HintsGiven = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHintsGiven,
			Help: HelpTextHintsGiven,
		},
	)

	BoardActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBoardActions,
			Help: HelpTextBoardActions,
		},
		[]string{LabelState},
	)

	GameResets = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGameResets,
			Help: HelpTextGameResets,
		},
	)
)

// Persistence Metrics
var (
	SaveWrites = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSaveWrites,
			Help: HelpTextSaveWrites,
		},
	)

	SaveFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSaveFailures,
			Help: HelpTextSaveFailures,
		},
		[]string{LabelOperation},
	)

	SaveDefaultsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSaveCreated,
			Help: HelpTextSaveCreated,
		},
	)

	SaveCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSaveCache,
			Help: HelpTextSaveCache,
		},
		[]string{LabelResult},
	)
)
