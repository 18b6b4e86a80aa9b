package engine

import "testing"

func accumulatePitching(t *testing.T, rows []AppearanceRow) []StatLine {
	t.Helper()
	normalized := NormalizeRows(rows)
	acc := NewAccumulator()
	for _, row := range normalized {
		acc.Fold(row)
	}
	return PitchingLines(acc.Pitching(), DetectConditions(normalized))
}

func TestPitchingDerivedStats(t *testing.T) {
	rows := []AppearanceRow{
		pitchingRow("g1", "p1", "Cone", "NYY", "9.0", map[string]string{
			"ER": "2", "H allowed": "6", "BB against": "3", "SO against": "9",
			"HR allowed": "1", "R against": "2", "W": "1",
		}),
	}
	line := accumulatePitching(t, rows)[0]

	if got := line["ERA"]; got != "2.00" {
		t.Errorf("ERA = %v, want 2.00", got)
	}
	if got := line["H9"]; got != "6.0" {
		t.Errorf("H9 = %v, want 6.0", got)
	}
	if got := line["SO9"]; got != "9.0" {
		t.Errorf("SO9 = %v, want 9.0", got)
	}
	if got := line["SO/BB"]; got != "3.0" {
		t.Errorf("SO/BB = %v, want 3.0", got)
	}
	if got := line["WHIP"]; got != "1.00" {
		t.Errorf("WHIP = %v, want 1.00", got)
	}
	if got := line["W-L%"]; got != "1.000" {
		t.Errorf("W-L%% = %v, want 1.000", got)
	}
	if got := line["IP"]; got != "9.0" {
		t.Errorf("IP = %v, want 9.0", got)
	}
	if got := line["CG"]; got != 1 {
		t.Errorf("CG = %v, want 1", got)
	}
	if got := line["SHO"]; got != 0 {
		t.Errorf("SHO = %v, want 0", got)
	}
}

func TestPitchingZeroInnings(t *testing.T) {
	rows := []AppearanceRow{
		pitchingRow("g1", "p1", "Cone", "NYY", "0.0", map[string]string{"ER": "3", "BB against": "2"}),
	}
	line := accumulatePitching(t, rows)[0]

	if got := line["ERA"]; got != "0.00" {
		t.Errorf("ERA with IP=0 = %v, want 0.00", got)
	}
	if got := line["BB9"]; got != "0.0" {
		t.Errorf("BB9 with IP=0 = %v, want 0.0", got)
	}
	if got := line["W-L%"]; got != ".000" {
		t.Errorf("W-L%% with no decisions = %v, want .000", got)
	}
}

func TestPitchingFractionalInningsSummation(t *testing.T) {
	rows := []AppearanceRow{
		pitchingRow("g1", "p1", "Rivera", "NYY", "1.1", map[string]string{"SO against": "2"}),
		pitchingRow("g2", "p1", "Rivera", "NYY", "1.2", map[string]string{"SO against": "1"}),
	}
	line := accumulatePitching(t, rows)[0]
	if got := line["IP"]; got != "3.0" {
		t.Errorf("IP = %v, want 3.0 (1.1 + 1.2 in thirds notation)", got)
	}
	if got := line["SO"]; got != 3 {
		t.Errorf("SO = %v, want 3", got)
	}
}

func TestPitchingWinLossPercentage(t *testing.T) {
	rows := []AppearanceRow{
		pitchingRow("g1", "p1", "Cone", "NYY", "7.0", map[string]string{"W": "1"}),
		pitchingRow("g2", "p1", "Cone", "NYY", "6.0", map[string]string{"W": "1"}),
		pitchingRow("g3", "p1", "Cone", "NYY", "5.0", map[string]string{"L": "1"}),
	}
	line := accumulatePitching(t, rows)[0]
	if got := line["W"]; got != 2 {
		t.Errorf("W = %v, want 2", got)
	}
	if got := line["L"]; got != 1 {
		t.Errorf("L = %v, want 1", got)
	}
	if got := line["W-L%"]; got != ".667" {
		t.Errorf("W-L%% = %v, want .667", got)
	}
}

func TestQualifiedPitcher(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"3.0", true},
		{"10.2", true},
		{"2.2", false},
		{"0.0", false},
	}
	for _, tt := range tests {
		line := StatLine{"IP": tt.ip}
		if got := QualifiedPitcher(line); got != tt.want {
			t.Errorf("QualifiedPitcher(IP=%s) = %v, want %v", tt.ip, got, tt.want)
		}
	}
}
