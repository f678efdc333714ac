package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envTeam         = "TEAM"
	envTimezone     = "TZ_OVERRIDE"
	envNbaBaseURL   = "NBA_BASE_URL"
	envNbaSchedule  = "NBA_SCHEDULE_URL"
	envCacheBackend = "CACHE_BACKEND"
	envRedisURL     = "REDIS_URL"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Live games are re-fetched on this cadence; the CDN endpoints are
	// unauthenticated and tolerate it comfortably.
	defaultPollInterval = 15 * Duration(time.Second)
	defaultTeam         = "GSW"
	defaultCacheBackend = CacheBackendMemory
	defaultMetricsPort  = "9090"
)
