// Package teststubs holds shared test doubles for the provider and
// cache interfaces.
package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"nba-worm-tracker/internal/domain"
	"nba-worm-tracker/internal/providers"
)

// StubProvider is a test double for providers.DataProvider. Each
// resource has its own canned value and error; play-by-play fetch modes
// are recorded for assertions.
type StubProvider struct {
	Scoreboard    domain.Scoreboard
	ScoreboardErr error

	PlayByPlay       *domain.PlayByPlay
	PlayByPlayErr    error
	CachedPlayByPlay *domain.PlayByPlay

	BoxScore    domain.BoxScoreInfo
	BoxScoreErr error

	Schedule    domain.Schedule
	ScheduleErr error

	Standings    []domain.TeamStanding
	StandingsErr error

	ScoreboardCalls atomic.Int32
	PlayByPlayCalls atomic.Int32
	BoxScoreCalls   atomic.Int32
	ScheduleCalls   atomic.Int32
	StandingsCalls  atomic.Int32

	mu    sync.Mutex
	modes []providers.FetchMode
}

func (s *StubProvider) FetchScoreboard(ctx context.Context) (domain.Scoreboard, error) {
	_ = ctx
	s.ScoreboardCalls.Add(1)
	return s.Scoreboard, s.ScoreboardErr
}

// FetchPlayByPlay serves CachedPlayByPlay for cache-only requests and
// PlayByPlay otherwise. A nil CachedPlayByPlay models a cache miss.
func (s *StubProvider) FetchPlayByPlay(ctx context.Context, gameID string, mode providers.FetchMode) (*domain.PlayByPlay, error) {
	_ = ctx
	_ = gameID
	s.PlayByPlayCalls.Add(1)
	s.mu.Lock()
	s.modes = append(s.modes, mode)
	s.mu.Unlock()

	if mode == providers.FetchCacheOnly {
		return s.CachedPlayByPlay, nil
	}
	return s.PlayByPlay, s.PlayByPlayErr
}

func (s *StubProvider) FetchBoxScore(ctx context.Context, gameID string) (domain.BoxScoreInfo, error) {
	_ = ctx
	_ = gameID
	s.BoxScoreCalls.Add(1)
	return s.BoxScore, s.BoxScoreErr
}

func (s *StubProvider) FetchSchedule(ctx context.Context) (domain.Schedule, error) {
	_ = ctx
	s.ScheduleCalls.Add(1)
	return s.Schedule, s.ScheduleErr
}

func (s *StubProvider) FetchStandings(ctx context.Context) ([]domain.TeamStanding, error) {
	_ = ctx
	s.StandingsCalls.Add(1)
	return s.Standings, s.StandingsErr
}

// Modes returns the play-by-play fetch modes observed so far.
func (s *StubProvider) Modes() []providers.FetchMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]providers.FetchMode, len(s.modes))
	copy(out, s.modes)
	return out
}

// StubStore is a test double for cache.Store backed by a plain map.
// TTLs are recorded but never enforced.
type StubStore struct {
	mu     sync.Mutex
	Values map[string][]byte
	TTLs   map[string]time.Duration
	GetErr error
	SetErr error
}

func NewStubStore() *StubStore {
	return &StubStore{
		Values: make(map[string][]byte),
		TTLs:   make(map[string]time.Duration),
	}
}

func (s *StubStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	value, ok := s.Values[key]
	return value, ok, nil
}

func (s *StubStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.Values[key] = value
	s.TTLs[key] = ttl
	return nil
}
