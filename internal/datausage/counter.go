// Package datausage tracks how many wire bytes the app has pulled from
// the upstream API, persisted so the count survives restarts.
package datausage

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"nba-worm-tracker/internal/cache"
	"nba-worm-tracker/internal/logging"
)

const (
	storeKey     = "tracker:datausage:bytes"
	persistEvery = 5 * time.Second
)

// Counter accumulates received byte counts. Persistence through the
// cache store is best effort and rate limited; the in-memory count is
// the source of truth while the process lives.
type Counter struct {
	mu          sync.Mutex
	bytes       int64
	lastPersist time.Time

	store  cache.Store
	logger *slog.Logger
	now    func() time.Time
}

// NewCounter builds a Counter, restoring any persisted total.
func NewCounter(store cache.Store, logger *slog.Logger) *Counter {
	c := &Counter{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	c.restore()
	return c
}

func (c *Counter) restore() {
	if c.store == nil {
		return
	}
	raw, ok, err := c.store.Get(context.Background(), storeKey)
	if err != nil || !ok {
		return
	}
	if v, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
		c.bytes = v
	}
}

// Add records n received bytes.
func (c *Counter) Add(n int64) {
	if c == nil || n <= 0 {
		return
	}
	c.mu.Lock()
	c.bytes += n
	persist := c.store != nil && c.now().Sub(c.lastPersist) >= persistEvery
	if persist {
		c.lastPersist = c.now()
	}
	total := c.bytes
	c.mu.Unlock()

	if persist {
		c.persist(total)
	}
}

// Bytes returns the accumulated byte count.
func (c *Counter) Bytes() int64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bytes
}

// Reset zeroes the counter and the persisted total.
func (c *Counter) Reset() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.bytes = 0
	c.lastPersist = time.Time{}
	c.mu.Unlock()
	c.persist(0)
}

func (c *Counter) persist(total int64) {
	if c.store == nil {
		return
	}
	err := c.store.Set(context.Background(), storeKey, []byte(strconv.FormatInt(total, 10)), 0)
	if err != nil {
		logging.Warn(c.logger, "data usage persist failed", "error", err)
	}
}
