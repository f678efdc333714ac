package config

// Cache backend selectors.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// CacheConfig selects the response-cache backend.
type CacheConfig struct {
	Backend  string
	RedisURL string
}

func loadCache() CacheConfig {
	return CacheConfig{
		Backend:  envOrDefault(envCacheBackend, defaultCacheBackend),
		RedisURL: envOrDefault(envRedisURL, "redis://localhost:6379/0"),
	}
}
