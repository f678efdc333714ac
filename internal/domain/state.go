package domain

// StateKind tags the GameState union. Renderers are expected to switch
// exhaustively on it.
type StateKind string

const (
	KindLoading     StateKind = "loading"
	KindNoGameToday StateKind = "no_game_today"
	KindScheduled   StateKind = "scheduled"
	KindLive        StateKind = "live"
	KindFinal       StateKind = "final"
	KindError       StateKind = "error"
)

// GameState is the view the tracker publishes. Exactly one variant is
// active at a time, identified by Kind; the remaining fields are only
// meaningful for the variants that carry them.
type GameState struct {
	Kind              StateKind    `json:"kind"`
	Message           string       `json:"message,omitempty"`
	Game              *Game        `json:"game,omitempty"`
	NextGame          *Game        `json:"nextGame,omitempty"`
	WormData          []WormPoint  `json:"wormData,omitempty"`
	RecentPlays       []RecentPlay `json:"recentPlays,omitempty"`
	LastFetchedPeriod int          `json:"lastFetchedPeriod,omitempty"`
}

// Loading is the initial state and the state shown during a manual refresh.
func Loading() GameState {
	return GameState{Kind: KindLoading}
}

// NoGameToday reports that the tracked team has no game on the board
// and none found on the schedule either.
func NoGameToday() GameState {
	return GameState{Kind: KindNoGameToday}
}

// ScheduledState shows an upcoming game before tip-off.
func ScheduledState(game Game) GameState {
	return GameState{Kind: KindScheduled, Game: &game}
}

// LiveState shows a game in progress with its accumulated worm data.
func LiveState(game Game, points []WormPoint, plays []RecentPlay, lastFetchedPeriod int) GameState {
	return GameState{
		Kind:              KindLive,
		Game:              &game,
		WormData:          points,
		RecentPlays:       plays,
		LastFetchedPeriod: lastFetchedPeriod,
	}
}

// FinalState shows a completed game, optionally with the next game attached.
func FinalState(game Game, points []WormPoint, lastFetchedPeriod int, next *Game) GameState {
	return GameState{
		Kind:              KindFinal,
		Game:              &game,
		WormData:          points,
		LastFetchedPeriod: lastFetchedPeriod,
		NextGame:          next,
	}
}

// ErrorState carries a human-readable failure message.
func ErrorState(message string) GameState {
	return GameState{Kind: KindError, Message: message}
}

// WithPlayByPlay returns a copy of a live state with refreshed worm
// data. States are updated by copy, never mutated, so concurrent
// readers of a published state are safe.
func (s GameState) WithPlayByPlay(points []WormPoint, plays []RecentPlay, lastFetchedPeriod int) GameState {
	s.WormData = points
	s.RecentPlays = plays
	s.LastFetchedPeriod = lastFetchedPeriod
	return s
}
