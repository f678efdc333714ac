package nbacdn

import "time"

const providerName = "nbacdn"

const (
	defaultBaseURL     = "https://cdn.nba.com/static/json/liveData"
	defaultScheduleURL = "https://cdn.nba.com/static/json/staticData/scheduleLeagueV2.json"
	standingsURLFormat = "https://stats.nba.com/stats/leaguestandingsv3?LeagueID=00&Season=%s&SeasonType=Regular+Season"

	defaultHTTPTimeout = 30 * time.Second
)
