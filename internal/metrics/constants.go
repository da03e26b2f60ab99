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
)

// Business metric names
const (
	MetricNameCampaignsResolved = "campaigns_resolved_total"
	MetricNameStagesCleared     = "campaign_stages_cleared"
	MetricNameEnhanceAttempts   = "enhance_attempts_total"
	MetricNameEnhanceGoldSpent  = "enhance_gold_spent_total"
	MetricNameItemsGenerated    = "items_generated_total"
	MetricNameDuelsCompleted    = "duels_completed_total"
	MetricNameDuelGoldWagered   = "duel_gold_wagered_total"
	MetricNameChallengesExpired = "duel_challenges_expired_total"
	MetricNameItemCacheLookups  = "item_cache_lookups_total"
)

// Background job metric names
const (
	MetricNameJobRuns        = "background_job_runs_total"
	MetricNameJobDuration    = "background_job_duration_seconds"
	MetricNameJobsSkipped    = "background_jobs_skipped_total"
	MetricNameDBPoolConns    = "db_pool_connections"
	MetricNameDBPoolMaxConns = "db_pool_max_connections"
	MetricNameDBPoolAcquires = "db_pool_acquires_total"
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
)

// Business metric help text
const (
	HelpTextCampaignsResolved = "Total number of adventure and raid runs applied"
	HelpTextStagesCleared     = "Stages cleared per adventure or raid run"
	HelpTextEnhanceAttempts   = "Total number of paid enhancement attempts"
	HelpTextEnhanceGoldSpent  = "Total gold spent on enhancement"
	HelpTextItemsGenerated    = "Total number of items generated"
	HelpTextDuelsCompleted    = "Total number of duels fought"
	HelpTextDuelGoldWagered   = "Total gold transferred by duels"
	HelpTextChallengesExpired = "Total number of duel challenges that expired unanswered"
	HelpTextItemCacheLookups  = "Item cache lookups by result"
)

// Background job help text
const (
	HelpTextJobRuns        = "Background job runs by outcome"
	HelpTextJobDuration    = "Background job run time in seconds"
	HelpTextJobsSkipped    = "Scheduled runs dropped because the worker queue was full"
	HelpTextDBPoolConns    = "Database pool connections by state"
	HelpTextDBPoolMaxConns = "Configured database pool size"
	HelpTextDBPoolAcquires = "Cumulative successful database pool acquires"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelMode        = "mode"
	LabelOutcome     = "outcome"
	LabelRarity      = "rarity"
	LabelTermination = "termination"
	LabelResult      = "result"
	LabelJob         = "job"
	LabelState       = "state"
)

// Label values
const (
	OutcomeCompleted = "completed"
	OutcomeFailed    = "failed"
	OutcomeSuccess   = "success"

	OutcomePanicked  = "panicked"

	StateIdle     = "idle"
	StateAcquired = "acquired"
	StateTotal    = "total"

	CacheResultHit  = "hit"
	CacheResultMiss = "miss"

	// PathUnmatched labels requests that matched no route
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// JobDurationBuckets spans quick sweeps to slow table cleanups
var JobDurationBuckets = []float64{.001, .01, .1, .5, 1, 5, 30, 120}

// StageBuckets covers raid (10) and adventure (50) run lengths
var StageBuckets = []float64{0, 1, 2, 5, 10, 20, 30, 40, 50}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadInvalid = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
