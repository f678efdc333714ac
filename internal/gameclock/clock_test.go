package gameclock

import "testing"

func TestElapsedSeconds(t *testing.T) {
	cases := []struct {
		name   string
		period int
		clock  string
		want   int
	}{
		{"start of game", 1, "PT12M00.00S", 0},
		{"two seconds in", 1, "PT11M58.00S", 2},
		{"end of first quarter", 1, "PT00M00.00S", 720},
		{"start of second quarter", 2, "PT12M00.00S", 720},
		{"midway through third", 3, "PT06M00.00S", 1800},
		{"fractional seconds truncate", 1, "PT11M59.70S", 1},
		{"overtime period", 5, "PT12M00.00S", 2880},
		{"missing seconds component", 1, "PT10M", 120},
		{"empty clock", 2, "", 1440},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ElapsedSeconds(tc.period, tc.clock); got != tc.want {
				t.Fatalf("ElapsedSeconds(%d, %q) = %d, want %d", tc.period, tc.clock, got, tc.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		clock string
		want  string
	}{
		{"PT11M58.00S", "11:58"},
		{"PT00M09.50S", "0:09"},
		{"PT12M00.00S", "12:00"},
		{"", "0:00"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.clock); got != tc.want {
			t.Fatalf("FormatClock(%q) = %q, want %q", tc.clock, got, tc.want)
		}
	}
}
