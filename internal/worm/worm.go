// Package worm derives the score-differential time series ("worm")
// and the recent-plays list from raw play-by-play actions.
package worm

import (
	"strconv"

	"nba-worm-tracker/internal/domain"
	"nba-worm-tracker/internal/gameclock"
)

// Points converts an ordered action list into worm points oriented to
// the tracked team. Actions missing either score, or carrying a
// non-numeric one, are dropped silently. Output keeps the input order
// (the feed is chronological and authoritative; never re-sort) and
// contains at most one point per elapsed-second value, first action
// wins. An action list with no scoring events yields an empty series.
func Points(actions []domain.GameAction, trackedHome bool) []domain.WormPoint {
	points := make([]domain.WormPoint, 0, len(actions))
	seen := make(map[int]struct{}, len(actions))

	for _, action := range actions {
		if action.ScoreHome == "" || action.ScoreAway == "" {
			continue
		}
		home, err := strconv.Atoi(action.ScoreHome)
		if err != nil {
			continue
		}
		away, err := strconv.Atoi(action.ScoreAway)
		if err != nil {
			continue
		}

		seconds := gameclock.ElapsedSeconds(action.Period, action.Clock)
		if _, dup := seen[seconds]; dup {
			continue
		}
		seen[seconds] = struct{}{}

		tracked, opponent := home, away
		if !trackedHome {
			tracked, opponent = away, home
		}

		points = append(points, domain.WormPoint{
			Seconds:   seconds,
			Period:    action.Period,
			HomeScore: home,
			AwayScore: away,
			ScoreDiff: tracked - opponent,
		})
	}

	return points
}

// RecentPlays returns display entries for every action carrying a
// description, most recent first. Independent of the scoring filter
// used for Points.
func RecentPlays(actions []domain.GameAction) []domain.RecentPlay {
	plays := make([]domain.RecentPlay, 0, len(actions))
	for i := len(actions) - 1; i >= 0; i-- {
		action := actions[i]
		if action.Description == "" {
			continue
		}
		plays = append(plays, domain.RecentPlay{
			Description: action.Description,
			TeamTricode: action.TeamTricode,
			Clock:       gameclock.FormatClock(action.Clock),
			Period:      action.Period,
			Seconds:     gameclock.ElapsedSeconds(action.Period, action.Clock),
		})
	}
	return plays
}
