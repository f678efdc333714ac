package gameclock

import "time"

// DateLayout is the canonical scoreboard date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// staleCutoffHour is the local hour on the day after a game at which a
// finished game stops being shown and the next game takes over.
const staleCutoffHour = 10

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsStale reports whether a finished game dated gameDate should no
// longer be shown at the local wall-clock time now. The cutoff is 10:00
// on the calendar day after the game. An unparseable date is never
// stale: a parse error must not hide a legitimately current game.
func IsStale(gameDate string, now time.Time) bool {
	day, err := time.ParseInLocation(DateLayout, gameDate, now.Location())
	if err != nil {
		return false
	}
	cutoff := time.Date(day.Year(), day.Month(), day.Day()+1, staleCutoffHour, 0, 0, 0, now.Location())
	return !now.Before(cutoff)
}
