package domain

// Game status codes as reported by the scoreboard feed.
const (
	StatusScheduled = 1
	StatusLive      = 2
	StatusFinal     = 3
)

// Period holds the score a team posted in a single period.
// Periods 5 and up are overtime.
type Period struct {
	Period     int    `json:"period"`
	PeriodType string `json:"periodType"`
	Score      int    `json:"score"`
}

// Team is one side of a game as the scoreboard reports it.
type Team struct {
	ID      int      `json:"teamId"`
	Name    string   `json:"teamName"`
	City    string   `json:"teamCity"`
	Tricode string   `json:"teamTricode"`
	Score   int      `json:"score"`
	Wins    int      `json:"wins"`
	Losses  int      `json:"losses"`
	Periods []Period `json:"periods,omitempty"`
}

// Score is a home/away score pair, used to detect scoring changes between polls.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Game is the normalized shape of one contest.
type Game struct {
	ID           string `json:"gameId"`
	Code         string `json:"gameCode"`
	Status       int    `json:"gameStatus"`
	StatusText   string `json:"gameStatusText"`
	Period       int    `json:"period"`
	Clock        string `json:"gameClock"`
	StartTimeUTC string `json:"gameTimeUTC,omitempty"`
	ArenaName    string `json:"arenaName,omitempty"`
	HomeTeam     Team   `json:"homeTeam"`
	AwayTeam     Team   `json:"awayTeam"`
}

// WithArena returns a copy of the game with the arena name populated.
// The arena arrives from the box score after the game itself is built,
// so it is attached as an immutable update rather than mutated in place.
func (g Game) WithArena(name string) Game {
	g.ArenaName = name
	return g
}

// Involves reports whether either side carries the given tricode.
func (g Game) Involves(tricode string) bool {
	return g.HomeTeam.Tricode == tricode || g.AwayTeam.Tricode == tricode
}

// IsHome reports whether the given tricode is the home side.
func (g Game) IsHome(tricode string) bool {
	return g.HomeTeam.Tricode == tricode
}

// Opponent returns the tricode of the side the given team is playing.
func (g Game) Opponent(tricode string) string {
	if g.HomeTeam.Tricode == tricode {
		return g.AwayTeam.Tricode
	}
	return g.HomeTeam.Tricode
}

// CurrentScore returns the home/away score pair.
func (g Game) CurrentScore() Score {
	return Score{Home: g.HomeTeam.Score, Away: g.AwayTeam.Score}
}

// Scoreboard is the daily scoreboard snapshot.
type Scoreboard struct {
	GameDate string `json:"gameDate"`
	Games    []Game `json:"games"`
}

// BoxScoreInfo is the slice of the box score this service consumes.
type BoxScoreInfo struct {
	GameID    string `json:"gameId"`
	ArenaName string `json:"arenaName"`
}
