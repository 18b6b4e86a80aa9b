package engine

import (
	"strconv"
	"testing"
)

func battingRow(gameID, playerID, name, team string, ab, h int) AppearanceRow {
	return AppearanceRow{
		GameID:     gameID,
		PlayerID:   playerID,
		PlayerName: name,
		Team:       team,
		Cells: map[string]string{
			"AB": strconv.Itoa(ab),
			"H":  strconv.Itoa(h),
		},
	}
}

func pitchingRow(gameID, playerID, name, team, ip string, cells map[string]string) AppearanceRow {
	merged := map[string]string{"IP": ip}
	for k, v := range cells {
		merged[k] = v
	}
	return AppearanceRow{
		GameID:     gameID,
		PlayerID:   playerID,
		PlayerName: name,
		Team:       team,
		Position:   "P",
		Cells:      merged,
	}
}

func TestAccumulatorSumsAndCountsDistinctGames(t *testing.T) {
	acc := NewAccumulator()
	rows := []AppearanceRow{
		battingRow("g1", "p1", "Jeter", "NYY", 4, 1),
		battingRow("g2", "p1", "Jeter", "NYY", 3, 2),
		// Second row for the same game: stats sum, games played does not.
		battingRow("g2", "p1", "Jeter", "NYY", 1, 1),
	}
	for _, row := range rows {
		acc.Fold(row)
	}

	batting := acc.Batting()
	if len(batting) != 1 {
		t.Fatalf("got %d batting entities, want 1", len(batting))
	}
	ent := batting[0]
	if got := ent.Totals["AB"]; got != 8 {
		t.Errorf("AB = %v, want 8", got)
	}
	if got := ent.Totals["H"]; got != 4 {
		t.Errorf("H = %v, want 4", got)
	}
	if got := ent.GamesPlayed(); got != 2 {
		t.Errorf("games played = %d, want 2", got)
	}
}

func TestAccumulatorQualifyingFields(t *testing.T) {
	acc := NewAccumulator()
	// No AB cell: not a batting appearance.
	acc.Fold(AppearanceRow{GameID: "g1", PlayerID: "p1", Team: "NYY", Cells: map[string]string{"R": "1"}})
	// AB present but empty: still not a batting appearance.
	acc.Fold(AppearanceRow{GameID: "g1", PlayerID: "p2", Team: "NYY", Cells: map[string]string{"AB": ""}})
	if got := len(acc.Batting()); got != 0 {
		t.Errorf("got %d batting entities, want 0", got)
	}
}

func TestAccumulatorPitchingRequiresPitcherPosition(t *testing.T) {
	acc := NewAccumulator()
	// An IP cell on a non-pitcher row (e.g. a position player mopping up is
	// recorded under POS "P"; a stray IP under "LF" is not pitching).
	row := AppearanceRow{
		GameID: "g1", PlayerID: "p1", Team: "NYY", Position: "LF",
		Cells: map[string]string{"IP": "1.0"},
	}
	acc.Fold(row)
	if got := len(acc.Pitching()); got != 0 {
		t.Errorf("got %d pitching entities, want 0", got)
	}

	acc.Fold(pitchingRow("g1", "p2", "Cone", "NYY", "6.1", nil))
	pitching := acc.Pitching()
	if len(pitching) != 1 {
		t.Fatalf("got %d pitching entities, want 1", len(pitching))
	}
	want := 6 + 1.0/3.0
	if got := pitching[0].Totals["IP"]; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("IP = %v, want %v", pitching[0].Totals["IP"], want)
	}
}

func TestAccumulatorFieldingExcludesNonDefensiveRoles(t *testing.T) {
	acc := NewAccumulator()
	acc.Fold(AppearanceRow{
		GameID: "g1", PlayerID: "p1", Team: "NYY", Position: "DH",
		Cells: map[string]string{"INN": "9.0"},
	})
	acc.Fold(AppearanceRow{
		GameID: "g1", PlayerID: "p2", Team: "NYY", Position: "SS",
		Cells: map[string]string{"INN": "9.0", "PO": "2", "A": "5"},
	})
	fielding := acc.Fielding()
	if len(fielding) != 1 {
		t.Fatalf("got %d fielding entities, want 1", len(fielding))
	}
	if fielding[0].Position != "SS" {
		t.Errorf("position = %q, want SS", fielding[0].Position)
	}
	if got := fielding[0].Totals["A"]; got != 5 {
		t.Errorf("A = %v, want 5", got)
	}
}

func TestAccumulatorKeysFieldingByPosition(t *testing.T) {
	acc := NewAccumulator()
	acc.Fold(AppearanceRow{
		GameID: "g1", PlayerID: "p1", Team: "NYY", Position: "SS",
		Cells: map[string]string{"INN": "5.0"},
	})
	acc.Fold(AppearanceRow{
		GameID: "g1", PlayerID: "p1", Team: "NYY", Position: "2B",
		Cells: map[string]string{"INN": "4.0"},
	})
	if got := len(acc.Fielding()); got != 2 {
		t.Errorf("got %d fielding entities, want 2 (one per position)", got)
	}
}

func TestAccumulatorLastSeenNameWins(t *testing.T) {
	acc := NewAccumulator()
	acc.Fold(battingRow("g1", "p1", "D. Jeter", "NYY", 4, 1))
	acc.Fold(battingRow("g2", "p1", "Derek Jeter", "NYY", 4, 1))
	if got := acc.Batting()[0].PlayerName; got != "Derek Jeter" {
		t.Errorf("player name = %q, want last-seen \"Derek Jeter\"", got)
	}
}
