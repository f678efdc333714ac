// Package gameclock converts the feed's period/clock representation
// into elapsed game seconds and handles the related date arithmetic.
package gameclock

import (
	"fmt"
	"regexp"
	"strconv"
)

// QuarterSeconds is the fixed length of a regulation quarter.
const QuarterSeconds = 12 * 60

// Clock strings arrive as ISO-8601 durations, e.g. "PT11M58.00S".
var (
	minutesPattern = regexp.MustCompile(`(\d+)M`)
	secondsPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)S`)
)

// ElapsedSeconds converts a period number and the clock-remaining string
// into seconds elapsed since tip-off. Fractional seconds are truncated.
// Missing minute or second components default to zero. Malformed input
// that produces an implausible value is passed through unchanged.
func ElapsedSeconds(period int, clock string) int {
	remaining := remainingSeconds(clock)
	return (period-1)*QuarterSeconds + (QuarterSeconds - remaining)
}

// FormatClock renders a clock-remaining string as "m:ss".
func FormatClock(clock string) string {
	remaining := remainingSeconds(clock)
	return fmt.Sprintf("%d:%02d", remaining/60, remaining%60)
}

func remainingSeconds(clock string) int {
	minutes := 0
	if m := minutesPattern.FindStringSubmatch(clock); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			minutes = v
		}
	}
	seconds := 0
	if m := secondsPattern.FindStringSubmatch(clock); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			seconds = int(v)
		}
	}
	return minutes*60 + seconds
}
