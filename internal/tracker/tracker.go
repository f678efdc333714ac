// Package tracker runs the polling state machine for a single tracked
// team: it resolves the relevant game, derives the worm series from
// play-by-play, and publishes GameState values to subscribers.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"nba-worm-tracker/internal/domain"
	"nba-worm-tracker/internal/gameclock"
	"nba-worm-tracker/internal/logging"
	"nba-worm-tracker/internal/metrics"
	"nba-worm-tracker/internal/providers"
	"nba-worm-tracker/internal/resolver"
	"nba-worm-tracker/internal/worm"
)

// defaultInterval is how often a live game is re-fetched.
const defaultInterval = 15 * time.Second

// subscriberBuffer sizes each subscriber channel. Slow consumers drop
// intermediate states rather than blocking the poll loop.
const subscriberBuffer = 8

// Tracker owns the game state for one tracked team and drives the poll
// loop that keeps it current.
type Tracker struct {
	resolver *resolver.Resolver
	provider providers.DataProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	mu             sync.Mutex
	team           string
	state          domain.GameState
	subscribers    map[chan domain.GameState]struct{}
	polling        bool
	pollCancel     context.CancelFunc
	baseCtx        context.Context
	lastKnownScore *domain.Score
	lastUpdate     time.Time
	liveTricodes   map[string]struct{}

	inFlight atomic.Bool
}

// Option customizes a Tracker.
type Option func(*Tracker)

// WithInterval overrides the live-game poll interval.
func WithInterval(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New builds a Tracker for the given team tricode.
func New(res *resolver.Resolver, provider providers.DataProvider, team string, logger *slog.Logger, recorder *metrics.Recorder, opts ...Option) *Tracker {
	t := &Tracker{
		resolver:    res,
		provider:    provider,
		logger:      logger,
		metrics:     recorder,
		interval:    defaultInterval,
		now:         time.Now,
		team:        team,
		state:       domain.Loading(),
		subscribers: make(map[chan domain.GameState]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start kicks off the initial fetch and remembers ctx as the base for
// any poll loops started later. It returns once the first cycle is done.
func (t *Tracker) Start(ctx context.Context) {
	t.mu.Lock()
	t.baseCtx = ctx
	t.mu.Unlock()
	t.fetchCycle(ctx, true)
}

// Stop halts any active poll loop. The last published state remains
// readable.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopPollingLocked()
}

// Refresh re-runs the fetch cycle on demand, showing the loading state
// first the way the initial load does.
func (t *Tracker) Refresh(ctx context.Context) {
	t.fetchCycle(ctx, true)
}

// SelectTeam switches the tracked team and restarts from a clean
// loading state. Selecting the current team is a no-op.
func (t *Tracker) SelectTeam(ctx context.Context, tricode string) {
	t.mu.Lock()
	if tricode == t.team {
		t.mu.Unlock()
		return
	}
	t.team = tricode
	t.lastKnownScore = nil
	t.stopPollingLocked()
	t.mu.Unlock()

	logging.Info(t.logger, "team selected", logging.FieldTeam, tricode)
	t.fetchCycle(ctx, true)
}

// State returns the last published state.
func (t *Tracker) State() domain.GameState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Team returns the currently tracked tricode.
func (t *Tracker) Team() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.team
}

// IsPolling reports whether a live poll loop is running.
func (t *Tracker) IsPolling() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.polling
}

// LastUpdate returns when a state was last published.
func (t *Tracker) LastUpdate() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastUpdate
}

// LiveTeams returns the tricodes with a live game on the latest board.
func (t *Tracker) LiveTeams() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	teams := make([]string, 0, len(t.liveTricodes))
	for code := range t.liveTricodes {
		teams = append(teams, code)
	}
	return teams
}

// Subscribe registers a channel receiving every published state,
// starting with the current one. Call the returned cancel func to
// unsubscribe.
func (t *Tracker) Subscribe() (<-chan domain.GameState, func()) {
	ch := make(chan domain.GameState, subscriberBuffer)

	t.mu.Lock()
	t.subscribers[ch] = struct{}{}
	current := t.state
	t.mu.Unlock()

	ch <- current

	cancel := func() {
		t.mu.Lock()
		if _, ok := t.subscribers[ch]; ok {
			delete(t.subscribers, ch)
			close(ch)
		}
		t.mu.Unlock()
	}
	return ch, cancel
}

// fetchCycle runs one resolve-and-decide pass. Only one cycle runs at a
// time; overlapping calls (a manual refresh landing mid-poll) are
// dropped rather than queued.
func (t *Tracker) fetchCycle(ctx context.Context, showLoading bool) {
	if !t.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer t.inFlight.Store(false)

	start := t.now()
	err := t.runCycle(ctx, showLoading)
	t.metrics.RecordTrackerCycle(time.Since(start), err)
}

func (t *Tracker) runCycle(ctx context.Context, showLoading bool) error {
	team := t.Team()

	if showLoading {
		t.publish(domain.Loading())
	}

	res, err := t.resolver.TodaysGame(ctx, team)
	if err != nil {
		// Resolution failures always surface, even on background polls.
		// A stale live view is worse than an honest error.
		logging.Error(t.logger, "game resolution failed", err, logging.FieldTeam, team)
		t.publish(domain.ErrorState(fmt.Sprintf("Unable to load game data: %v", err)))
		t.Stop()
		return err
	}

	t.setLiveTricodes(res.LiveTricodes)

	if res.Game == nil || (res.Game.Status == domain.StatusFinal && gameclock.IsStale(res.Date, t.now())) {
		t.showNextGame(ctx, team)
		return nil
	}

	game := *res.Game
	switch game.Status {
	case domain.StatusScheduled:
		t.publish(domain.ScheduledState(game))
		t.Stop()
	case domain.StatusLive:
		t.handleLive(ctx, team, game)
	case domain.StatusFinal:
		t.handleFinal(ctx, team, game)
	default:
		logging.Warn(t.logger, "unknown game status",
			logging.FieldGameID, game.ID, "status", game.Status)
		t.publish(domain.ErrorState(fmt.Sprintf("Unknown game status %d", game.Status)))
		t.Stop()
	}
	return nil
}

// showNextGame looks up the next scheduled game on a best-effort basis
// and publishes it as an upcoming game; with nothing on the schedule
// the no-game view is shown instead.
func (t *Tracker) showNextGame(ctx context.Context, team string) {
	next, err := t.resolver.NextGame(ctx, team)
	if err != nil {
		logging.Warn(t.logger, "next game lookup failed", logging.FieldTeam, team, "error", err)
		next = nil
	}
	if next != nil {
		t.publish(domain.ScheduledState(*next))
	} else {
		t.publish(domain.NoGameToday())
	}
	t.Stop()
}

// handleLive publishes the live view. Cached play-by-play (or the data
// carried on the previous live state) is shown immediately; a network
// refresh follows only when the period advanced or the score moved.
func (t *Tracker) handleLive(ctx context.Context, team string, game domain.Game) {
	trackedHome := game.IsHome(team)

	points, plays, lastFetched := t.restoreLiveData(ctx, game.ID, trackedHome)
	state := domain.LiveState(game, points, plays, lastFetched)
	t.publish(state)

	if refreshed, ok := t.refreshPlayByPlayIfNeeded(ctx, game, trackedHome, lastFetched); ok {
		t.publish(refreshed(state))
	}

	t.setLastKnownScore(game.CurrentScore())
	t.startPolling()
}

// restoreLiveData recovers worm data without touching the network:
// first the response cache, then whatever the previous live state held.
func (t *Tracker) restoreLiveData(ctx context.Context, gameID string, trackedHome bool) ([]domain.WormPoint, []domain.RecentPlay, int) {
	pbp, err := t.provider.FetchPlayByPlay(ctx, gameID, providers.FetchCacheOnly)
	if err == nil && pbp != nil {
		return worm.Points(pbp.Actions, trackedHome), worm.RecentPlays(pbp.Actions), pbp.LastPeriod()
	}
	if err != nil {
		logging.Warn(t.logger, "cached play-by-play read failed", logging.FieldGameID, gameID, "error", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.Kind == domain.KindLive && t.state.Game != nil && t.state.Game.ID == gameID {
		return t.state.WormData, t.state.RecentPlays, t.state.LastFetchedPeriod
	}
	return nil, nil, 0
}

// refreshPlayByPlayIfNeeded force-fetches play-by-play when the live
// game shows progress. It returns an update function and true when new
// data arrived; a failed refresh keeps the already-published data.
func (t *Tracker) refreshPlayByPlayIfNeeded(ctx context.Context, game domain.Game, trackedHome bool, lastFetched int) (func(domain.GameState) domain.GameState, bool) {
	periodAdvanced := game.Period > 0 && game.Period != lastFetched
	scoreMoved := t.scoreChanged(game.CurrentScore())
	if !periodAdvanced && !scoreMoved {
		return nil, false
	}

	pbp, err := t.provider.FetchPlayByPlay(ctx, game.ID, providers.FetchForce)
	t.metrics.RecordWormRefresh(err)
	if err != nil || pbp == nil {
		// Refresh failures during a live game are swallowed: the worm
		// just lags until the next poll succeeds.
		logging.Warn(t.logger, "play-by-play refresh failed",
			logging.FieldGameID, game.ID, "error", err)
		return nil, false
	}

	points := worm.Points(pbp.Actions, trackedHome)
	plays := worm.RecentPlays(pbp.Actions)
	fetched := pbp.LastPeriod()
	return func(s domain.GameState) domain.GameState {
		return s.WithPlayByPlay(points, plays, fetched)
	}, true
}

// handleFinal publishes the final view with the complete worm and a
// best-effort pointer at the next game, then stops polling.
func (t *Tracker) handleFinal(ctx context.Context, team string, game domain.Game) {
	trackedHome := game.IsHome(team)

	var points []domain.WormPoint
	lastFetched := 0
	pbp, err := t.provider.FetchPlayByPlay(ctx, game.ID, providers.FetchForce)
	t.metrics.RecordWormRefresh(err)
	if err != nil || pbp == nil {
		logging.Warn(t.logger, "final play-by-play fetch failed",
			logging.FieldGameID, game.ID, "error", err)
	} else {
		points = worm.Points(pbp.Actions, trackedHome)
		lastFetched = pbp.LastPeriod()
	}

	next, err := t.resolver.NextGame(ctx, team)
	if err != nil {
		logging.Warn(t.logger, "next game lookup failed", logging.FieldTeam, team, "error", err)
		next = nil
	}

	t.publish(domain.FinalState(game, points, lastFetched, next))
	t.Stop()
}

// startPolling launches the ticker loop when one is not already
// running. The loop inherits the context Start was given so that
// process shutdown cancels it.
func (t *Tracker) startPolling() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.polling {
		return
	}
	base := t.baseCtx
	if base == nil {
		base = context.Background()
	}
	ctx, cancel := context.WithCancel(base)
	t.polling = true
	t.pollCancel = cancel

	go t.pollLoop(ctx)
	logging.Info(t.logger, "polling started", logging.FieldTeam, t.team, "interval", t.interval.String())
}

func (t *Tracker) pollLoop(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.fetchCycle(ctx, false)
		}
	}
}

// stopPollingLocked must be called with t.mu held.
func (t *Tracker) stopPollingLocked() {
	if t.pollCancel != nil {
		t.pollCancel()
		t.pollCancel = nil
	}
	if t.polling {
		t.polling = false
		logging.Info(t.logger, "polling stopped", logging.FieldTeam, t.team)
	}
	t.lastKnownScore = nil
}

// publish stores the new state and fans it out. Sends happen under the
// lock so an unsubscribe cannot close a channel mid-send; they are
// non-blocking, so subscribers that cannot keep up miss intermediate
// states instead of stalling the poll loop.
func (t *Tracker) publish(state domain.GameState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = state
	t.lastUpdate = t.now()
	for ch := range t.subscribers {
		select {
		case ch <- state:
		default:
		}
	}
}

// scoreChanged reports whether the score moved since the last observed
// value. With nothing observed yet (first cycle after start, restart,
// or team switch) the score counts as changed, so a restart mid-game
// refreshes the worm instead of serving stale cached data.
func (t *Tracker) scoreChanged(score domain.Score) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastKnownScore == nil || *t.lastKnownScore != score
}

func (t *Tracker) setLastKnownScore(score domain.Score) {
	t.mu.Lock()
	t.lastKnownScore = &score
	t.mu.Unlock()
}

func (t *Tracker) setLiveTricodes(live map[string]struct{}) {
	t.mu.Lock()
	t.liveTricodes = live
	t.mu.Unlock()
}
