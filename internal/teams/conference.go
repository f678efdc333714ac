package teams

// Conference identifies one of the league's two conferences.
type Conference string

const (
	Western Conference = "western"
	Eastern Conference = "eastern"
)

// Conference membership is hardcoded; it effectively never changes.
// Keys are the league's numeric team ids.
var westernIDs = map[int]string{
	1610612742: "DAL",
	1610612743: "DEN",
	1610612744: "GSW",
	1610612745: "HOU",
	1610612746: "LAC",
	1610612747: "LAL",
	1610612740: "NOP",
	1610612750: "MIN",
	1610612756: "PHX",
	1610612757: "POR",
	1610612758: "SAC",
	1610612759: "SAS",
	1610612760: "OKC",
	1610612762: "UTA",
	1610612763: "MEM",
}

var easternIDs = map[int]string{
	1610612737: "ATL",
	1610612738: "BOS",
	1610612739: "CLE",
	1610612741: "CHI",
	1610612748: "MIA",
	1610612749: "MIL",
	1610612751: "BKN",
	1610612752: "NYK",
	1610612753: "ORL",
	1610612754: "IND",
	1610612755: "PHI",
	1610612761: "TOR",
	1610612764: "WAS",
	1610612765: "DET",
	1610612766: "CHA",
}

// ConferenceOf returns the conference for a numeric team id.
func ConferenceOf(teamID int) (Conference, bool) {
	if _, ok := westernIDs[teamID]; ok {
		return Western, true
	}
	if _, ok := easternIDs[teamID]; ok {
		return Eastern, true
	}
	return "", false
}

// TricodeByID maps a numeric team id to its tricode.
func TricodeByID(teamID int) (string, bool) {
	if code, ok := westernIDs[teamID]; ok {
		return code, true
	}
	if code, ok := easternIDs[teamID]; ok {
		return code, true
	}
	return "", false
}
