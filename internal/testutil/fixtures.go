package testutil

import (
	"fmt"

	"nba-worm-tracker/internal/domain"
)

// LiveGame returns a game in progress between home and away.
func LiveGame(id, home, away string) domain.Game {
	return domain.Game{
		ID:         id,
		Status:     domain.StatusLive,
		StatusText: "Q2 5:30",
		Period:     2,
		Clock:      "PT05M30.00S",
		HomeTeam:   domain.Team{Tricode: home, Name: home, Score: 48},
		AwayTeam:   domain.Team{Tricode: away, Name: away, Score: 45},
	}
}

// ScheduledGame returns a game that has not tipped off.
func ScheduledGame(id, home, away string) domain.Game {
	return domain.Game{
		ID:         id,
		Status:     domain.StatusScheduled,
		StatusText: "7:30 PM ET",
		HomeTeam:   domain.Team{Tricode: home, Name: home},
		AwayTeam:   domain.Team{Tricode: away, Name: away},
	}
}

// FinalGame returns a completed game.
func FinalGame(id, home, away string) domain.Game {
	return domain.Game{
		ID:         id,
		Status:     domain.StatusFinal,
		StatusText: "Final",
		Period:     4,
		HomeTeam:   domain.Team{Tricode: home, Name: home, Score: 112},
		AwayTeam:   domain.Team{Tricode: away, Name: away, Score: 108},
	}
}

// ScoringActions returns n scoring actions spread one per game minute,
// with the home side pulling ahead by a point each time.
func ScoringActions(n int) []domain.GameAction {
	actions := make([]domain.GameAction, 0, n)
	for i := 0; i < n; i++ {
		actions = append(actions, domain.GameAction{
			ActionNumber: i + 1,
			Period:       1 + i/12,
			Clock:        fmt.Sprintf("PT%02dM00.00S", 11-i%12),
			ScoreHome:    fmt.Sprintf("%d", 2*(i+1)),
			ScoreAway:    fmt.Sprintf("%d", i+1),
			Description:  fmt.Sprintf("Jump shot %d", i+1),
		})
	}
	return actions
}
