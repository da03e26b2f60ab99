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

// Business Metrics
var (
	CampaignsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCampaignsResolved,
			Help: HelpTextCampaignsResolved,
		},
		[]string{LabelMode, LabelOutcome},
	)

	StagesCleared = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameStagesCleared,
			Help:    HelpTextStagesCleared,
			Buckets: StageBuckets,
		},
		[]string{LabelMode},
	)

	EnhanceAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnhanceAttempts,
			Help: HelpTextEnhanceAttempts,
		},
		[]string{LabelRarity, LabelOutcome},
	)

	EnhanceGoldSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEnhanceGoldSpent,
			Help: HelpTextEnhanceGoldSpent,
		},
	)

	ItemsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsGenerated,
			Help: HelpTextItemsGenerated,
		},
		[]string{LabelRarity},
	)

	DuelsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDuelsCompleted,
			Help: HelpTextDuelsCompleted,
		},
		[]string{LabelTermination},
	)

	DuelGoldWagered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDuelGoldWagered,
			Help: HelpTextDuelGoldWagered,
		},
	)

	ChallengesExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameChallengesExpired,
			Help: HelpTextChallengesExpired,
		},
	)
)

// Cache Metrics
var (
	ItemCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemCacheLookups,
			Help: HelpTextItemCacheLookups,
		},
		[]string{LabelResult},
	)
)

// Background job metrics
var (
	JobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobRuns,
			Help: HelpTextJobRuns,
		},
		[]string{LabelJob, LabelOutcome},
	)

	JobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameJobDuration,
			Help:    HelpTextJobDuration,
			Buckets: JobDurationBuckets,
		},
		[]string{LabelJob},
	)

	JobsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobsSkipped,
			Help: HelpTextJobsSkipped,
		},
		[]string{LabelJob},
	)
)
