package engine

import "testing"

func TestCompleteGameDetection(t *testing.T) {
	rows := []AppearanceRow{
		// Game 1: one pitcher for NYY, two for BOS.
		pitchingRow("g1", "p1", "Cone", "NYY", "9.0", map[string]string{"R against": "2"}),
		pitchingRow("g1", "p2", "Martinez", "BOS", "7.0", map[string]string{"R against": "3"}),
		pitchingRow("g1", "p3", "Wakefield", "BOS", "2.0", map[string]string{"R against": "1"}),
	}
	c := DetectConditions(rows)

	if got := c.CompleteGames("p1", "NYY", "P"); got != 1 {
		t.Errorf("lone pitcher CG = %d, want 1", got)
	}
	if got := c.CompleteGames("p2", "BOS", "P"); got != 0 {
		t.Errorf("first of two pitchers CG = %d, want 0", got)
	}
	if got := c.CompleteGames("p3", "BOS", "P"); got != 0 {
		t.Errorf("second of two pitchers CG = %d, want 0", got)
	}
}

func TestShutoutRequiresCompleteGameAndZeroRuns(t *testing.T) {
	rows := []AppearanceRow{
		pitchingRow("g1", "p1", "Cone", "NYY", "9.0", map[string]string{"R against": "0"}),
		pitchingRow("g2", "p1", "Cone", "NYY", "9.0", map[string]string{"R against": "1"}),
		// Two pitchers combine on zero runs: no shutout for either.
		pitchingRow("g3", "p2", "Martinez", "BOS", "5.0", map[string]string{"R against": "0"}),
		pitchingRow("g3", "p3", "Wakefield", "BOS", "4.0", map[string]string{"R against": "0"}),
	}
	c := DetectConditions(rows)

	if got := c.Shutouts("p1", "NYY"); got != 1 {
		t.Errorf("p1 SHO = %d, want 1", got)
	}
	if got := c.CompleteGames("p1", "NYY", "P"); got != 2 {
		t.Errorf("p1 CG = %d, want 2", got)
	}
	if got := c.Shutouts("p2", "BOS"); got != 0 {
		t.Errorf("p2 SHO = %d, want 0", got)
	}
}

func TestFieldingCompleteGamePerPosition(t *testing.T) {
	rows := []AppearanceRow{
		{GameID: "g1", PlayerID: "p1", Team: "NYY", Position: "SS", Cells: map[string]string{"INN": "9.0"}},
		{GameID: "g1", PlayerID: "p2", Team: "NYY", Position: "C", Cells: map[string]string{"INN": "7.0"}},
		{GameID: "g1", PlayerID: "p3", Team: "NYY", Position: "C", Cells: map[string]string{"INN": "2.0"}},
	}
	c := DetectConditions(rows)

	if got := c.CompleteGames("p1", "NYY", "SS"); got != 1 {
		t.Errorf("lone shortstop CG = %d, want 1", got)
	}
	if got := c.CompleteGames("p2", "NYY", "C"); got != 0 {
		t.Errorf("shared catcher CG = %d, want 0", got)
	}
}

func TestConditionsAcceptNumericPositionCodes(t *testing.T) {
	rows := []AppearanceRow{
		{GameID: "g1", PlayerID: "p1", Team: "NYY", Position: "1", Cells: map[string]string{"IP": "9.0", "R against": "0"}},
	}
	c := DetectConditions(rows)
	if got := c.CompleteGames("p1", "NYY", "P"); got != 1 {
		t.Errorf("CG with numeric position code = %d, want 1", got)
	}
	if got := c.Shutouts("p1", "NYY"); got != 1 {
		t.Errorf("SHO with numeric position code = %d, want 1", got)
	}
}
