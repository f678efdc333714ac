// Package resolver answers "which game matters right now" for a tracked
// team: today's game from the scoreboard, or the next scheduled one.
package resolver

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"nba-worm-tracker/internal/domain"
	"nba-worm-tracker/internal/logging"
	"nba-worm-tracker/internal/providers"
)

// Resolver looks up games for a tracked team against a data provider.
type Resolver struct {
	provider providers.DataProvider
	logger   *slog.Logger
	now      func() time.Time
	loc      *time.Location
}

// Resolution is the outcome of a scoreboard lookup: the board date, the
// tracked team's game if it appears, and the set of tricodes currently
// playing a live game anywhere in the league.
type Resolution struct {
	Date         string
	Game         *domain.Game
	LiveTricodes map[string]struct{}
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) { r.now = now }
}

// WithLocation sets the location used to render scheduled tip-off times.
func WithLocation(loc *time.Location) Option {
	return func(r *Resolver) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// New builds a Resolver over the given provider.
func New(provider providers.DataProvider, logger *slog.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		provider: provider,
		logger:   logger,
		now:      time.Now,
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TodaysGame fetches the scoreboard and resolves the tracked team's game
// for today, if any. The arena name is attached from the box score on a
// best-effort basis: a box-score failure degrades to a game without an
// arena rather than failing the resolution.
func (r *Resolver) TodaysGame(ctx context.Context, tricode string) (Resolution, error) {
	board, err := r.provider.FetchScoreboard(ctx)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{
		Date:         board.GameDate,
		LiveTricodes: liveTricodes(board.Games),
	}

	for i := range board.Games {
		if !board.Games[i].Involves(tricode) {
			continue
		}
		game := board.Games[i]
		if info, boxErr := r.provider.FetchBoxScore(ctx, game.ID); boxErr == nil {
			game = game.WithArena(info.ArenaName)
		} else {
			logging.Warn(r.logger, "box score lookup failed",
				logging.FieldGameID, game.ID, "error", boxErr)
		}
		res.Game = &game
		break
	}
	return res, nil
}

// NextGame scans the season schedule for the tracked team's earliest
// game strictly after now. Placeholder matchups with an empty tricode on
// either side (TBD brackets) are skipped. Returns nil when the schedule
// holds nothing further.
func (r *Resolver) NextGame(ctx context.Context, tricode string) (*domain.Game, error) {
	schedule, err := r.provider.FetchSchedule(ctx)
	if err != nil {
		return nil, err
	}

	now := r.now()
	type candidate struct {
		game domain.ScheduledGame
		at   time.Time
	}
	var candidates []candidate
	for _, g := range schedule.Games {
		if !g.Involves(tricode) {
			continue
		}
		if g.HomeTeam.Tricode == "" || g.AwayTeam.Tricode == "" {
			continue
		}
		at, parseErr := time.Parse(time.RFC3339, g.StartTimeUTC)
		if parseErr != nil {
			continue
		}
		if !at.After(now) {
			continue
		}
		candidates = append(candidates, candidate{game: g, at: at})
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].at.Before(candidates[j].at)
	})

	game := r.scheduledToGame(candidates[0].game, candidates[0].at)
	return &game, nil
}

// scheduledToGame lifts a schedule entry into the Game shape the state
// machine works with: status scheduled, no period or clock, and the
// local tip-off time as the status text.
func (r *Resolver) scheduledToGame(g domain.ScheduledGame, at time.Time) domain.Game {
	return domain.Game{
		ID:           g.ID,
		Code:         g.Code,
		Status:       domain.StatusScheduled,
		StatusText:   at.In(r.loc).Format("Mon Jan 2, 3:04 PM"),
		StartTimeUTC: g.StartTimeUTC,
		ArenaName:    g.ArenaName,
		HomeTeam:     scheduledTeam(g.HomeTeam),
		AwayTeam:     scheduledTeam(g.AwayTeam),
	}
}

func scheduledTeam(t domain.ScheduledTeam) domain.Team {
	return domain.Team{
		ID:      t.ID,
		Name:    t.Name,
		City:    t.City,
		Tricode: t.Tricode,
	}
}

func liveTricodes(games []domain.Game) map[string]struct{} {
	live := make(map[string]struct{})
	for _, g := range games {
		if g.Status != domain.StatusLive {
			continue
		}
		if g.HomeTeam.Tricode != "" {
			live[g.HomeTeam.Tricode] = struct{}{}
		}
		if g.AwayTeam.Tricode != "" {
			live[g.AwayTeam.Tricode] = struct{}{}
		}
	}
	return live
}
