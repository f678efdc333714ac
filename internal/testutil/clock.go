package testutil

import "time"

// NowAt pins a component clock (tracker, resolver, wire client) to a
// fixed instant, keeping game-night versus morning-after scenarios
// deterministic.
func NowAt(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// MustParseRFC3339 parses a fixture timestamp, typically a scheduled
// tip-off time, and panics on malformed input.
func MustParseRFC3339(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("testutil: bad RFC3339 timestamp " + value + ": " + err.Error())
	}
	return parsed
}
