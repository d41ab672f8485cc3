package constants

import "time"

// Redis cache keys and TTLs for admin aggregates.
// Pattern: venuely:{module}:{operation}:{params?}

const (
	CACHE_PREFIX = "venuely"
)

const (
	CACHE_KEY_ANALYTICS_DASHBOARD  = CACHE_PREFIX + ":analytics:dashboard"
	CACHE_KEY_ANALYTICS_STATISTICS = CACHE_PREFIX + ":analytics:statistics:period:" // + weekly|monthly|yearly
	CACHE_KEY_ANALYTICS_SCHEDULE   = CACHE_PREFIX + ":analytics:schedule:monthly"
)

const (
	TTL_ANALYTICS_DASHBOARD  = 1 * time.Minute
	TTL_ANALYTICS_STATISTICS = 5 * time.Minute
	TTL_ANALYTICS_SCHEDULE   = 1 * time.Minute
)

// BuildStatisticsKey returns the statistics cache key for a period selector.
func BuildStatisticsKey(period string) string {
	return CACHE_KEY_ANALYTICS_STATISTICS + period
}
