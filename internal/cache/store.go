// Package cache provides the byte response cache keyed by request URL,
// with per-endpoint freshness policy.
package cache

import (
	"context"
	"strings"
	"time"
)

// Store is a key-value byte cache. Implementations must be safe for
// concurrent use; read/write atomicity per key is the store's problem,
// not the caller's.
type Store interface {
	// Get returns the cached value and whether a fresh entry exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key. A non-positive ttl means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Per-endpoint freshness. The box score is effectively immutable for a
// game (the arena does not move); play-by-play only grows, and a 5
// minute window lets a reopened app restore without a network hit;
// scoreboard and schedule need to be fresh for live updates.
const (
	BoxScoreTTL   = 24 * time.Hour
	PlayByPlayTTL = 5 * time.Minute
	DefaultTTL    = 60 * time.Second
)

// TTLForURL returns the freshness window for a request URL.
func TTLForURL(url string) time.Duration {
	switch {
	case strings.Contains(url, "boxscore"):
		return BoxScoreTTL
	case strings.Contains(url, "playbyplay"):
		return PlayByPlayTTL
	default:
		return DefaultTTL
	}
}
