package domain

// GameAction is one raw play-by-play event. Score fields stay strings
// because the feed omits them on non-scoring actions; only actions with
// both present are eligible for worm-point derivation.
type GameAction struct {
	ActionNumber int    `json:"actionNumber"`
	Period       int    `json:"period"`
	Clock        string `json:"clock"`
	TimeActual   string `json:"timeActual,omitempty"`
	ScoreHome    string `json:"scoreHome,omitempty"`
	ScoreAway    string `json:"scoreAway,omitempty"`
	ActionType   string `json:"actionType,omitempty"`
	ShotResult   string `json:"shotResult,omitempty"`
	TeamTricode  string `json:"teamTricode,omitempty"`
	PlayerName   string `json:"playerNameI,omitempty"`
	Description  string `json:"description,omitempty"`
}

// PlayByPlay is the full action list for one game.
type PlayByPlay struct {
	GameID  string       `json:"gameId"`
	Actions []GameAction `json:"actions"`
}

// LastPeriod returns the period of the most recent action, or 0 when empty.
func (p PlayByPlay) LastPeriod() int {
	if len(p.Actions) == 0 {
		return 0
	}
	return p.Actions[len(p.Actions)-1].Period
}

// WormPoint is one sample of the score-differential time series.
// ScoreDiff is signed relative to the tracked team (tracked - opponent).
type WormPoint struct {
	Seconds   int `json:"gameTimeSeconds"`
	Period    int `json:"period"`
	HomeScore int `json:"homeScore"`
	AwayScore int `json:"awayScore"`
	ScoreDiff int `json:"scoreDiff"`
}

// RecentPlay is a display-ready play entry, most-recent-first.
type RecentPlay struct {
	Description string `json:"description"`
	TeamTricode string `json:"teamTricode,omitempty"`
	Clock       string `json:"clock"`
	Period      int    `json:"period"`
	Seconds     int    `json:"gameTimeSeconds"`
}
