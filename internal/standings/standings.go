// Package standings assembles conference standings from raw win/loss
// records. Ranking and games-back are derived locally; the upstream
// result set only supplies team id, wins, and losses.
package standings

import (
	"sort"

	"nba-worm-tracker/internal/domain"
	"nba-worm-tracker/internal/teams"
)

// Entry is one team's line in a conference table.
type Entry struct {
	TeamID    int     `json:"teamId"`
	Tricode   string  `json:"tricode"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	Rank      int     `json:"rank"`
	WinPct    float64 `json:"winPct"`
	GamesBack float64 `json:"gamesBack"`
}

// Standings is the two-conference view.
type Standings struct {
	Western []Entry `json:"western"`
	Eastern []Entry `json:"eastern"`
}

// Build splits records by conference, ranks each conference by winning
// percentage, and computes games back from the conference leader.
// Records for unknown team ids are dropped.
func Build(records []domain.TeamStanding) Standings {
	var western, eastern []Entry

	for _, rec := range records {
		conf, ok := teams.ConferenceOf(rec.TeamID)
		if !ok {
			continue
		}
		tricode, _ := teams.TricodeByID(rec.TeamID)
		entry := Entry{
			TeamID:  rec.TeamID,
			Tricode: tricode,
			Wins:    rec.Wins,
			Losses:  rec.Losses,
			WinPct:  winPct(rec.Wins, rec.Losses),
		}
		if conf == teams.Western {
			western = append(western, entry)
		} else {
			eastern = append(eastern, entry)
		}
	}

	return Standings{
		Western: rank(western),
		Eastern: rank(eastern),
	}
}

func winPct(wins, losses int) float64 {
	games := wins + losses
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games)
}

func rank(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].WinPct != entries[j].WinPct {
			return entries[i].WinPct > entries[j].WinPct
		}
		return entries[i].Wins > entries[j].Wins
	})
	if len(entries) == 0 {
		return entries
	}
	leader := entries[0]
	for i := range entries {
		entries[i].Rank = i + 1
		entries[i].GamesBack = float64((leader.Wins-entries[i].Wins)+(entries[i].Losses-leader.Losses)) / 2
	}
	return entries
}
