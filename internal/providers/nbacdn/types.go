package nbacdn

// Wire shapes for the liveData endpoints. Decoding is tolerant: unknown
// fields are ignored and optional fields default to their zero values.

type scoreboardResponse struct {
	Scoreboard scoreboardPayload `json:"scoreboard"`
}

type scoreboardPayload struct {
	GameDate string         `json:"gameDate"`
	Games    []gameResponse `json:"games"`
}

type gameResponse struct {
	GameID         string       `json:"gameId"`
	GameCode       string       `json:"gameCode"`
	GameStatus     int          `json:"gameStatus"`
	GameStatusText string       `json:"gameStatusText"`
	Period         int          `json:"period"`
	GameClock      string       `json:"gameClock"`
	GameTimeUTC    string       `json:"gameTimeUTC"`
	HomeTeam       teamResponse `json:"homeTeam"`
	AwayTeam       teamResponse `json:"awayTeam"`
}

type teamResponse struct {
	TeamID      int              `json:"teamId"`
	TeamName    string           `json:"teamName"`
	TeamCity    string           `json:"teamCity"`
	TeamTricode string           `json:"teamTricode"`
	Score       int              `json:"score"`
	Wins        int              `json:"wins"`
	Losses      int              `json:"losses"`
	Periods     []periodResponse `json:"periods"`
}

type periodResponse struct {
	Period     int    `json:"period"`
	PeriodType string `json:"periodType"`
	Score      int    `json:"score"`
}

type playByPlayResponse struct {
	Game playByPlayGame `json:"game"`
}

type playByPlayGame struct {
	GameID  string           `json:"gameId"`
	Actions []actionResponse `json:"actions"`
}

type actionResponse struct {
	ActionNumber int    `json:"actionNumber"`
	Period       int    `json:"period"`
	Clock        string `json:"clock"`
	TimeActual   string `json:"timeActual"`
	ScoreHome    string `json:"scoreHome"`
	ScoreAway    string `json:"scoreAway"`
	ActionType   string `json:"actionType"`
	ShotResult   string `json:"shotResult"`
	TeamTricode  string `json:"teamTricode"`
	PlayerNameI  string `json:"playerNameI"`
	Description  string `json:"description"`
}

type boxScoreResponse struct {
	Game boxScoreGame `json:"game"`
}

type boxScoreGame struct {
	GameID string         `json:"gameId"`
	Arena  *arenaResponse `json:"arena"`
}

type arenaResponse struct {
	ArenaName string `json:"arenaName"`
}

type scheduleResponse struct {
	LeagueSchedule leagueScheduleResponse `json:"leagueSchedule"`
}

type leagueScheduleResponse struct {
	SeasonYear string             `json:"seasonYear"`
	GameDates  []gameDateResponse `json:"gameDates"`
}

type gameDateResponse struct {
	GameDate string                  `json:"gameDate"`
	Games    []scheduledGameResponse `json:"games"`
}

type scheduledGameResponse struct {
	GameID          string                `json:"gameId"`
	GameCode        string                `json:"gameCode"`
	GameLabel       string                `json:"gameLabel"`
	GameDateTimeUTC string                `json:"gameDateTimeUTC"`
	HomeTeam        scheduledTeamResponse `json:"homeTeam"`
	AwayTeam        scheduledTeamResponse `json:"awayTeam"`
	ArenaName       string                `json:"arenaName"`
	ArenaCity       string                `json:"arenaCity"`
}

type scheduledTeamResponse struct {
	TeamID      int    `json:"teamId"`
	TeamName    string `json:"teamName"`
	TeamCity    string `json:"teamCity"`
	TeamTricode string `json:"teamTricode"`
}

// The standings endpoint returns a tabular "result set": named column
// headers plus untyped rows.
type standingsResponse struct {
	ResultSets []resultSetResponse `json:"resultSets"`
}

type resultSetResponse struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}
