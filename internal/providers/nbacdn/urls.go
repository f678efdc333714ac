package nbacdn

import (
	"fmt"
	"time"
)

func (c *Client) scoreboardURL() string {
	return c.baseURL + "/scoreboard/todaysScoreboard_00.json"
}

func (c *Client) playByPlayURL(gameID string) string {
	return fmt.Sprintf("%s/playbyplay/playbyplay_%s.json", c.baseURL, gameID)
}

func (c *Client) boxScoreURL(gameID string) string {
	return fmt.Sprintf("%s/boxscore/boxscore_%s.json", c.baseURL, gameID)
}

// standingsURL computes the endpoint for the season in progress at now.
// The season runs October to June: Oct-Dec belongs to the season that
// started that year, Jan-Jun to the one that started the year before,
// and Jul-Sep (off-season) falls back to the previous season.
func standingsURL(now time.Time) string {
	year := now.Year()
	var season string
	if int(now.Month()) >= 10 {
		season = fmt.Sprintf("%d-%02d", year, (year+1)%100)
	} else {
		season = fmt.Sprintf("%d-%02d", year-1, year%100)
	}
	return fmt.Sprintf(standingsURLFormat, season)
}
