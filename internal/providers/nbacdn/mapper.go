package nbacdn

import (
	"nba-worm-tracker/internal/domain"
)

// Fixed column positions in the standings result set.
const (
	standingsColTeamID = 2
	standingsColWins   = 13
	standingsColLosses = 14
)

func mapScoreboard(resp scoreboardResponse) domain.Scoreboard {
	games := make([]domain.Game, 0, len(resp.Scoreboard.Games))
	for _, g := range resp.Scoreboard.Games {
		games = append(games, mapGame(g))
	}
	return domain.Scoreboard{
		GameDate: resp.Scoreboard.GameDate,
		Games:    games,
	}
}

func mapGame(g gameResponse) domain.Game {
	return domain.Game{
		ID:           g.GameID,
		Code:         g.GameCode,
		Status:       g.GameStatus,
		StatusText:   g.GameStatusText,
		Period:       g.Period,
		Clock:        g.GameClock,
		StartTimeUTC: g.GameTimeUTC,
		HomeTeam:     mapTeam(g.HomeTeam),
		AwayTeam:     mapTeam(g.AwayTeam),
	}
}

func mapTeam(t teamResponse) domain.Team {
	periods := make([]domain.Period, 0, len(t.Periods))
	for _, p := range t.Periods {
		periods = append(periods, domain.Period{
			Period:     p.Period,
			PeriodType: p.PeriodType,
			Score:      p.Score,
		})
	}
	return domain.Team{
		ID:      t.TeamID,
		Name:    t.TeamName,
		City:    t.TeamCity,
		Tricode: t.TeamTricode,
		Score:   t.Score,
		Wins:    t.Wins,
		Losses:  t.Losses,
		Periods: periods,
	}
}

func mapPlayByPlay(resp playByPlayResponse) *domain.PlayByPlay {
	actions := make([]domain.GameAction, 0, len(resp.Game.Actions))
	for _, a := range resp.Game.Actions {
		actions = append(actions, domain.GameAction{
			ActionNumber: a.ActionNumber,
			Period:       a.Period,
			Clock:        a.Clock,
			TimeActual:   a.TimeActual,
			ScoreHome:    a.ScoreHome,
			ScoreAway:    a.ScoreAway,
			ActionType:   a.ActionType,
			ShotResult:   a.ShotResult,
			TeamTricode:  a.TeamTricode,
			PlayerName:   a.PlayerNameI,
			Description:  a.Description,
		})
	}
	return &domain.PlayByPlay{
		GameID:  resp.Game.GameID,
		Actions: actions,
	}
}

func mapBoxScore(resp boxScoreResponse) domain.BoxScoreInfo {
	info := domain.BoxScoreInfo{GameID: resp.Game.GameID}
	if resp.Game.Arena != nil {
		info.ArenaName = resp.Game.Arena.ArenaName
	}
	return info
}

func mapSchedule(resp scheduleResponse) domain.Schedule {
	var games []domain.ScheduledGame
	for _, date := range resp.LeagueSchedule.GameDates {
		for _, g := range date.Games {
			games = append(games, domain.ScheduledGame{
				ID:           g.GameID,
				Code:         g.GameCode,
				Label:        g.GameLabel,
				StartTimeUTC: g.GameDateTimeUTC,
				HomeTeam:     mapScheduledTeam(g.HomeTeam),
				AwayTeam:     mapScheduledTeam(g.AwayTeam),
				ArenaName:    g.ArenaName,
				ArenaCity:    g.ArenaCity,
			})
		}
	}
	return domain.Schedule{
		SeasonYear: resp.LeagueSchedule.SeasonYear,
		Games:      games,
	}
}

func mapScheduledTeam(t scheduledTeamResponse) domain.ScheduledTeam {
	return domain.ScheduledTeam{
		ID:      t.TeamID,
		Name:    t.TeamName,
		City:    t.TeamCity,
		Tricode: t.TeamTricode,
	}
}

// mapStandings extracts team id / wins / losses from the first result
// set's rows. Rows too short or carrying non-numeric cells are skipped
// rather than failing the whole decode.
func mapStandings(resp standingsResponse) []domain.TeamStanding {
	if len(resp.ResultSets) == 0 {
		return nil
	}
	rows := resp.ResultSets[0].RowSet
	records := make([]domain.TeamStanding, 0, len(rows))
	for _, row := range rows {
		if len(row) <= standingsColLosses {
			continue
		}
		teamID, ok := cellInt(row[standingsColTeamID])
		if !ok {
			continue
		}
		wins, ok := cellInt(row[standingsColWins])
		if !ok {
			continue
		}
		losses, ok := cellInt(row[standingsColLosses])
		if !ok {
			continue
		}
		records = append(records, domain.TeamStanding{
			TeamID: teamID,
			Wins:   wins,
			Losses: losses,
		})
	}
	return records
}

// cellInt coerces a result-set cell to int. encoding/json decodes
// untyped numbers as float64.
func cellInt(cell any) (int, bool) {
	switch v := cell.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
