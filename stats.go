package swrcache

// Metric names reported to stats.Tracker, all carry "name" label.
const (
	MetricHit       = "cache_hit"
	MetricMiss      = "cache_miss"
	MetricExpired   = "cache_expired"
	MetricRefreshed = "cache_refreshed"
	MetricBuild     = "cache_build"
	MetricFailed    = "cache_failed"
	MetricWrite     = "cache_write"
	MetricItems     = "cache_items"
)
