package engine

import "testing"

func accumulateBatting(t *testing.T, rows []AppearanceRow) []StatLine {
	t.Helper()
	acc := NewAccumulator()
	for _, row := range NormalizeRows(rows) {
		acc.Fold(row)
	}
	return BattingLines(acc.Batting())
}

func TestBattingDerivedStats(t *testing.T) {
	rows := []AppearanceRow{
		{GameID: "g1", PlayerID: "p1", PlayerName: "Jeter", Team: "NYY", Cells: map[string]string{
			"AB": "4", "H": "2", "2B": "1", "3B": "0", "HR": "1", "BB": "1", "HBP": "0", "SF": "0",
		}},
	}
	lines := accumulateBatting(t, rows)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]

	// TB = 2 + 1 + 0 + 3 = 6, PA = 5.
	if got := line["TB"]; got != 6 {
		t.Errorf("TB = %v, want 6", got)
	}
	if got := line["PA"]; got != 5 {
		t.Errorf("PA = %v, want 5", got)
	}
	if got := line["AVG"]; got != ".500" {
		t.Errorf("AVG = %v, want .500", got)
	}
	// OBP = 3/5, SLG = 6/4, OPS = .600 + 1.500.
	if got := line["OBP"]; got != ".600" {
		t.Errorf("OBP = %v, want .600", got)
	}
	if got := line["SLG"]; got != "1.500" {
		t.Errorf("SLG = %v, want 1.500", got)
	}
	if got := line["OPS"]; got != "2.100" {
		t.Errorf("OPS = %v, want 2.100", got)
	}
}

func TestBattingZeroDenominators(t *testing.T) {
	rows := []AppearanceRow{
		{GameID: "g1", PlayerID: "p1", Team: "NYY", Cells: map[string]string{"AB": "0"}},
	}
	line := accumulateBatting(t, rows)[0]
	if got := line["AVG"]; got != ".000" {
		t.Errorf("AVG with AB=0 = %v, want .000", got)
	}
	if got := line["OBP"]; got != ".000" {
		t.Errorf("OBP with PA=0 = %v, want .000", got)
	}
}

func TestBattingPerfectAverageDisplaysInFull(t *testing.T) {
	rows := []AppearanceRow{
		{GameID: "g1", PlayerID: "p1", Team: "NYY", Cells: map[string]string{"AB": "3", "H": "3"}},
	}
	line := accumulateBatting(t, rows)[0]
	if got := line["AVG"]; got != "1.000" {
		t.Errorf("AVG = %v, want 1.000", got)
	}
}

func TestFormatRate3(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.275, ".275"},
		{0.4285714, ".429"},
		{1, "1.000"},
		{0, ".000"},
		{2.1, "2.100"},
	}
	for _, tt := range tests {
		if got := FormatRate3(tt.in); got != tt.want {
			t.Errorf("FormatRate3(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSeasonBattingAccumulation(t *testing.T) {
	rows := []AppearanceRow{
		{GameID: "g1", PlayerID: "P1", PlayerName: "Jones", Team: "X", Cells: map[string]string{"AB": "4", "H": "1"}},
		{GameID: "g2", PlayerID: "P1", PlayerName: "Jones", Team: "X", Cells: map[string]string{"AB": "3", "H": "2"}},
	}
	lines := accumulateBatting(t, rows)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]
	if got := line["AB"]; got != 7 {
		t.Errorf("AB = %v, want 7", got)
	}
	if got := line["H"]; got != 3 {
		t.Errorf("H = %v, want 3", got)
	}
	if got := line["AVG"]; got != ".429" {
		t.Errorf("AVG = %v, want .429", got)
	}
	if got := line["G"]; got != 2 {
		t.Errorf("G = %v, want 2", got)
	}
}
