// Package teams carries the static league reference data: the team
// picklist and conference membership.
package teams

// Team is a picklist entry.
type Team struct {
	Tricode string `json:"tricode"`
	Name    string `json:"name"`
	City    string `json:"city"`
}

// FullName returns "City Name".
func (t Team) FullName() string {
	return t.City + " " + t.Name
}

// DefaultTricode is the team tracked when none has been selected.
const DefaultTricode = "GSW"

// All lists every NBA team, sorted by tricode.
var All = []Team{
	{"ATL", "Hawks", "Atlanta"},
	{"BOS", "Celtics", "Boston"},
	{"BKN", "Nets", "Brooklyn"},
	{"CHA", "Hornets", "Charlotte"},
	{"CHI", "Bulls", "Chicago"},
	{"CLE", "Cavaliers", "Cleveland"},
	{"DAL", "Mavericks", "Dallas"},
	{"DEN", "Nuggets", "Denver"},
	{"DET", "Pistons", "Detroit"},
	{"GSW", "Warriors", "Golden State"},
	{"HOU", "Rockets", "Houston"},
	{"IND", "Pacers", "Indiana"},
	{"LAC", "Clippers", "LA"},
	{"LAL", "Lakers", "Los Angeles"},
	{"MEM", "Grizzlies", "Memphis"},
	{"MIA", "Heat", "Miami"},
	{"MIL", "Bucks", "Milwaukee"},
	{"MIN", "Timberwolves", "Minnesota"},
	{"NOP", "Pelicans", "New Orleans"},
	{"NYK", "Knicks", "New York"},
	{"OKC", "Thunder", "Oklahoma City"},
	{"ORL", "Magic", "Orlando"},
	{"PHI", "76ers", "Philadelphia"},
	{"PHX", "Suns", "Phoenix"},
	{"POR", "Trail Blazers", "Portland"},
	{"SAC", "Kings", "Sacramento"},
	{"SAS", "Spurs", "San Antonio"},
	{"TOR", "Raptors", "Toronto"},
	{"UTA", "Jazz", "Utah"},
	{"WAS", "Wizards", "Washington"},
}

// ByTricode looks a team up by its three-letter code.
func ByTricode(tricode string) (Team, bool) {
	for _, t := range All {
		if t.Tricode == tricode {
			return t, true
		}
	}
	return Team{}, false
}

// Default returns the default tracked team.
func Default() Team {
	t, _ := ByTricode(DefaultTricode)
	return t
}
