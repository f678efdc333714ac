package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type trackerStats struct {
	cycles       int
	cycleErrors  int
	wormFetches  int
	wormFailures int
}

// Recorder captures lightweight, in-memory metrics about provider calls
// and tracker cycles, mirrored onto OTel instruments when telemetry is
// enabled. A nil Recorder is safe to use everywhere.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*providerStats
	tracker trackerStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for an upstream call and
// stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordTrackerCycle tracks one fetch-and-decide cycle.
func (r *Recorder) RecordTrackerCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.tracker.cycles++
	if err != nil {
		r.tracker.cycleErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordTrackerCycle(duration, err)
	}
}

// RecordWormRefresh tracks a play-by-play refresh attempt.
func (r *Recorder) RecordWormRefresh(err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.tracker.wormFetches++
	if err != nil {
		r.tracker.wormFailures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordWormRefresh(err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := r.ensureStats(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// TrackerCycles returns the number of fetch cycles recorded.
func (r *Recorder) TrackerCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracker.cycles
}

// WormRefreshes returns attempted and failed play-by-play refreshes.
func (r *Recorder) WormRefreshes() (attempts, failures int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tracker.wormFetches, r.tracker.wormFailures
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
