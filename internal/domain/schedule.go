package domain

// ScheduledTeam is a team entry in the season schedule. Tricode may be
// empty for TBD placeholder matchups (play-in, finals brackets).
type ScheduledTeam struct {
	ID      int    `json:"teamId"`
	Name    string `json:"teamName"`
	City    string `json:"teamCity"`
	Tricode string `json:"teamTricode"`
}

// ScheduledGame is one entry from the full-season schedule.
type ScheduledGame struct {
	ID           string        `json:"gameId"`
	Code         string        `json:"gameCode"`
	Label        string        `json:"gameLabel,omitempty"`
	StartTimeUTC string        `json:"gameDateTimeUTC"`
	HomeTeam     ScheduledTeam `json:"homeTeam"`
	AwayTeam     ScheduledTeam `json:"awayTeam"`
	ArenaName    string        `json:"arenaName,omitempty"`
	ArenaCity    string        `json:"arenaCity,omitempty"`
}

// Involves reports whether either side carries the given tricode.
func (g ScheduledGame) Involves(tricode string) bool {
	return g.HomeTeam.Tricode == tricode || g.AwayTeam.Tricode == tricode
}

// Schedule is the season schedule with game dates flattened out.
type Schedule struct {
	SeasonYear string          `json:"seasonYear"`
	Games      []ScheduledGame `json:"games"`
}

// TeamStanding is a season win/loss record keyed by numeric team id,
// as extracted from the league standings result set.
type TeamStanding struct {
	TeamID int `json:"teamId"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}
