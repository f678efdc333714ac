package resolver

import (
	"context"
	"errors"
	"testing"
	"time"

	"nba-worm-tracker/internal/domain"
	"nba-worm-tracker/internal/teststubs"
	"nba-worm-tracker/internal/testutil"
)

func TestTodaysGameFindsTrackedTeam(t *testing.T) {
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{
			GameDate: "2025-11-19",
			Games: []domain.Game{
				testutil.LiveGame("g1", "BOS", "NYK"),
				testutil.LiveGame("g2", "GSW", "LAL"),
			},
		},
		BoxScore: domain.BoxScoreInfo{GameID: "g2", ArenaName: "Chase Center"},
	}
	r := New(stub, nil)

	res, err := r.TodaysGame(context.Background(), "GSW")
	if err != nil {
		t.Fatalf("TodaysGame failed: %v", err)
	}
	if res.Game == nil || res.Game.ID != "g2" {
		t.Fatalf("expected g2, got %+v", res.Game)
	}
	if res.Game.ArenaName != "Chase Center" {
		t.Fatalf("arena not attached: %+v", res.Game)
	}
	if res.Date != "2025-11-19" {
		t.Fatalf("unexpected date %q", res.Date)
	}
}

func TestTodaysGameArenaIsBestEffort(t *testing.T) {
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{
			Games: []domain.Game{testutil.LiveGame("g1", "GSW", "LAL")},
		},
		BoxScoreErr: errors.New("boom"),
	}
	r := New(stub, nil)

	res, err := r.TodaysGame(context.Background(), "GSW")
	if err != nil {
		t.Fatalf("box score failure must not fail resolution: %v", err)
	}
	if res.Game == nil || res.Game.ArenaName != "" {
		t.Fatalf("expected game without arena, got %+v", res.Game)
	}
}

func TestTodaysGameNoMatch(t *testing.T) {
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{
			Games: []domain.Game{testutil.LiveGame("g1", "BOS", "NYK")},
		},
	}
	r := New(stub, nil)

	res, err := r.TodaysGame(context.Background(), "GSW")
	if err != nil {
		t.Fatalf("TodaysGame failed: %v", err)
	}
	if res.Game != nil {
		t.Fatalf("expected no game, got %+v", res.Game)
	}
}

func TestTodaysGameCollectsLiveTricodes(t *testing.T) {
	scheduled := testutil.ScheduledGame("g3", "MIA", "ORL")
	stub := &teststubs.StubProvider{
		Scoreboard: domain.Scoreboard{
			Games: []domain.Game{
				testutil.LiveGame("g1", "BOS", "NYK"),
				scheduled,
			},
		},
	}
	r := New(stub, nil)

	res, err := r.TodaysGame(context.Background(), "GSW")
	if err != nil {
		t.Fatalf("TodaysGame failed: %v", err)
	}
	for _, code := range []string{"BOS", "NYK"} {
		if _, ok := res.LiveTricodes[code]; !ok {
			t.Fatalf("expected %s in live set, got %v", code, res.LiveTricodes)
		}
	}
	if _, ok := res.LiveTricodes["MIA"]; ok {
		t.Fatalf("scheduled teams must not be live: %v", res.LiveTricodes)
	}
}

func TestNextGamePicksEarliestFutureGame(t *testing.T) {
	now := testutil.MustParseRFC3339("2025-11-19T20:00:00Z")
	stub := &teststubs.StubProvider{
		Schedule: domain.Schedule{Games: []domain.ScheduledGame{
			{
				ID:           "past",
				StartTimeUTC: "2025-11-18T02:00:00Z",
				HomeTeam:     domain.ScheduledTeam{Tricode: "GSW"},
				AwayTeam:     domain.ScheduledTeam{Tricode: "LAL"},
			},
			{
				ID:           "later",
				StartTimeUTC: "2025-11-23T02:00:00Z",
				HomeTeam:     domain.ScheduledTeam{Tricode: "DEN"},
				AwayTeam:     domain.ScheduledTeam{Tricode: "GSW"},
			},
			{
				ID:           "next",
				StartTimeUTC: "2025-11-21T02:00:00Z",
				HomeTeam:     domain.ScheduledTeam{Tricode: "GSW"},
				AwayTeam:     domain.ScheduledTeam{Tricode: "SAS"},
			},
		}},
	}
	r := New(stub, nil, WithClock(testutil.NowAt(now)), WithLocation(time.UTC))

	game, err := r.NextGame(context.Background(), "GSW")
	if err != nil {
		t.Fatalf("NextGame failed: %v", err)
	}
	if game == nil || game.ID != "next" {
		t.Fatalf("expected game next, got %+v", game)
	}
	if game.Status != domain.StatusScheduled {
		t.Fatalf("next game must be scheduled, got %d", game.Status)
	}
	if game.StatusText == "" {
		t.Fatal("expected formatted tip-off time in status text")
	}
}

func TestNextGameSkipsPlaceholderMatchups(t *testing.T) {
	now := testutil.MustParseRFC3339("2025-11-19T20:00:00Z")
	stub := &teststubs.StubProvider{
		Schedule: domain.Schedule{Games: []domain.ScheduledGame{
			{
				ID:           "tbd",
				StartTimeUTC: "2025-11-20T02:00:00Z",
				HomeTeam:     domain.ScheduledTeam{Tricode: "GSW"},
				AwayTeam:     domain.ScheduledTeam{Tricode: ""},
			},
		}},
	}
	r := New(stub, nil, WithClock(testutil.NowAt(now)))

	game, err := r.NextGame(context.Background(), "GSW")
	if err != nil {
		t.Fatalf("NextGame failed: %v", err)
	}
	if game != nil {
		t.Fatalf("placeholder matchup must be skipped, got %+v", game)
	}
}

func TestNextGameEmptySchedule(t *testing.T) {
	stub := &teststubs.StubProvider{}
	r := New(stub, nil)

	game, err := r.NextGame(context.Background(), "GSW")
	if err != nil || game != nil {
		t.Fatalf("expected (nil, nil), got %+v %v", game, err)
	}
}
