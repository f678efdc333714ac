package nbacdn

import (
	"encoding/json"
	"testing"
)

func TestMapStandings(t *testing.T) {
	raw := `{"resultSets":[{"name":"Standings","headers":[],"rowSet":[
		["2025-26","00",1610612744,"Golden State","Warriors","GSW",1,2,3,4,5,6,7,15,4],
		["2025-26","00",1610612747,"Los Angeles","Lakers","LAL",1,2,3,4,5,6,7,12,8],
		["2025-26","00","bogus","x","y","Z",1,2,3,4,5,6,7,1,1],
		["short","row"]
	]}]}`
	var resp standingsResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	records := mapStandings(resp)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d: %+v", len(records), records)
	}
	if records[0].TeamID != 1610612744 || records[0].Wins != 15 || records[0].Losses != 4 {
		t.Fatalf("unexpected first record: %+v", records[0])
	}
}

func TestMapStandingsEmptyResultSets(t *testing.T) {
	if records := mapStandings(standingsResponse{}); records != nil {
		t.Fatalf("expected nil for empty result sets, got %+v", records)
	}
}

func TestMapScheduleFlattensGameDates(t *testing.T) {
	resp := scheduleResponse{
		LeagueSchedule: leagueScheduleResponse{
			SeasonYear: "2025-26",
			GameDates: []gameDateResponse{
				{Games: []scheduledGameResponse{{GameID: "a"}, {GameID: "b"}}},
				{Games: []scheduledGameResponse{{GameID: "c"}}},
			},
		},
	}
	schedule := mapSchedule(resp)
	if len(schedule.Games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(schedule.Games))
	}
	if schedule.Games[2].ID != "c" {
		t.Fatalf("flattening lost order: %+v", schedule.Games)
	}
}

func TestMapBoxScoreWithoutArena(t *testing.T) {
	info := mapBoxScore(boxScoreResponse{Game: boxScoreGame{GameID: "g1"}})
	if info.GameID != "g1" || info.ArenaName != "" {
		t.Fatalf("unexpected box score info: %+v", info)
	}
}
