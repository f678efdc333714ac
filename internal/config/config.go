package config

// Config holds runtime configuration for the tracker service.
type Config struct {
	Port         string
	PollInterval Duration
	Team         string
	Timezone     string
	NBA          NBAConfig
	Cache        CacheConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Team:         envOrDefault(envTeam, defaultTeam),
		Timezone:     envOrDefault(envTimezone, ""),
		NBA:          loadNBA(),
		Cache:        loadCache(),
		Metrics:      loadMetrics(),
	}
}
