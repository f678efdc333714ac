package nbacdn

import (
	"strings"
	"testing"
	"time"
)

func TestStandingsURLSeason(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want string
	}{
		{"november uses current season", time.Date(2025, 11, 19, 0, 0, 0, 0, time.UTC), "2025-26"},
		{"february uses prior start year", time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), "2025-26"},
		{"july falls back to previous season", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), "2024-25"},
		{"october flips seasons", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), "2025-26"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			url := standingsURL(tc.now)
			if !strings.Contains(url, "Season="+tc.want) {
				t.Fatalf("standingsURL(%v) = %q, want season %s", tc.now, url, tc.want)
			}
		})
	}
}

func TestResourceURLs(t *testing.T) {
	c := NewClient(Config{BaseURL: "https://example.test/data/"})
	if got := c.scoreboardURL(); got != "https://example.test/data/scoreboard/todaysScoreboard_00.json" {
		t.Fatalf("scoreboardURL = %q", got)
	}
	if got := c.playByPlayURL("0022500001"); got != "https://example.test/data/playbyplay/playbyplay_0022500001.json" {
		t.Fatalf("playByPlayURL = %q", got)
	}
	if got := c.boxScoreURL("0022500001"); got != "https://example.test/data/boxscore/boxscore_0022500001.json" {
		t.Fatalf("boxScoreURL = %q", got)
	}
}
