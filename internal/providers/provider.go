package providers

import (
	"context"
	"time"

	"nba-worm-tracker/internal/domain"
)

// FetchMode selects how a play-by-play fetch interacts with the
// response cache. A three-way enum keeps the semantics unambiguous.
type FetchMode int

const (
	// FetchDefault serves from cache when fresh, otherwise the network.
	FetchDefault FetchMode = iota
	// FetchForce attempts the network first; on failure it falls back
	// to a cache-permitting fetch before surfacing the error.
	FetchForce
	// FetchCacheOnly never touches the network. A miss is a typed
	// absence, not an error.
	FetchCacheOnly
)

func (m FetchMode) String() string {
	switch m {
	case FetchForce:
		return "force"
	case FetchCacheOnly:
		return "cache-only"
	default:
		return "default"
	}
}

// ScoreboardProvider fetches the daily scoreboard snapshot.
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context) (domain.Scoreboard, error)
}

// PlayByPlayProvider fetches the action list for one game. A cache-only
// miss returns (nil, nil).
type PlayByPlayProvider interface {
	FetchPlayByPlay(ctx context.Context, gameID string, mode FetchMode) (*domain.PlayByPlay, error)
}

// BoxScoreProvider fetches the per-game box score slice (arena name).
type BoxScoreProvider interface {
	FetchBoxScore(ctx context.Context, gameID string) (domain.BoxScoreInfo, error)
}

// ScheduleProvider fetches the full season schedule.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context) (domain.Schedule, error)
}

// StandingsProvider fetches season win/loss records by team id.
type StandingsProvider interface {
	FetchStandings(ctx context.Context) ([]domain.TeamStanding, error)
}

// DataProvider combines every upstream capability the tracker needs.
type DataProvider interface {
	ScoreboardProvider
	PlayByPlayProvider
	BoxScoreProvider
	ScheduleProvider
	StandingsProvider
}

// ResolveTimezone returns a location for a tz string, or nil if invalid.
func ResolveTimezone(tz string) *time.Location {
	if tz == "" {
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil
	}
	return loc
}
