package teams

import "testing"

func TestAllTeamsComplete(t *testing.T) {
	if len(All) != 30 {
		t.Fatalf("expected 30 teams, got %d", len(All))
	}
	seen := make(map[string]struct{}, len(All))
	for _, team := range All {
		if len(team.Tricode) != 3 {
			t.Fatalf("bad tricode %q", team.Tricode)
		}
		if _, dup := seen[team.Tricode]; dup {
			t.Fatalf("duplicate tricode %q", team.Tricode)
		}
		seen[team.Tricode] = struct{}{}
	}
}

func TestByTricode(t *testing.T) {
	team, ok := ByTricode("GSW")
	if !ok {
		t.Fatal("GSW not found")
	}
	if team.FullName() != "Golden State Warriors" {
		t.Fatalf("unexpected full name %q", team.FullName())
	}
	if _, ok := ByTricode("XXX"); ok {
		t.Fatal("unknown tricode must not resolve")
	}
}

func TestEveryTeamHasConference(t *testing.T) {
	count := 0
	for id := range westernIDs {
		if _, ok := ConferenceOf(id); !ok {
			t.Fatalf("western id %d missing conference", id)
		}
		count++
	}
	for id := range easternIDs {
		if _, ok := ConferenceOf(id); !ok {
			t.Fatalf("eastern id %d missing conference", id)
		}
		count++
	}
	if count != 30 {
		t.Fatalf("expected 30 conference entries, got %d", count)
	}
}

func TestConferenceTricodesMatchPicklist(t *testing.T) {
	for id := range westernIDs {
		code, _ := TricodeByID(id)
		if _, ok := ByTricode(code); !ok {
			t.Fatalf("conference tricode %q not in picklist", code)
		}
	}
	for id := range easternIDs {
		code, _ := TricodeByID(id)
		if _, ok := ByTricode(code); !ok {
			t.Fatalf("conference tricode %q not in picklist", code)
		}
	}
}

func TestDefault(t *testing.T) {
	if Default().Tricode != DefaultTricode {
		t.Fatalf("default team mismatch: %+v", Default())
	}
}
