package engine

// Counting stats published on a pitching line, in addition to IP and the
// detector-derived CG/SHO.
var pitchingCountingStats = []string{
	"W", "L", "GS", "SV", "ER", "R", "H", "HR", "BB", "IBB", "SO", "HBP", "BK", "WP",
}

// PitchingLines converts accumulated pitching totals into published stat
// lines. CG and SHO come from the special-condition detector rather than
// summed raw flags, which are unreliable game to game.
func PitchingLines(entities []*Accumulated, conditions *Conditions) []StatLine {
	lines := make([]StatLine, 0, len(entities))
	for _, ent := range entities {
		lines = append(lines, pitchingLine(ent, conditions))
	}
	return lines
}

func pitchingLine(ent *Accumulated, conditions *Conditions) StatLine {
	line := StatLine{
		"Player":    ent.PlayerName,
		"Player ID": ent.PlayerID,
		"team":      ent.Team,
		"G":         ent.GamesPlayed(),
		"CG":        conditions.CompleteGames(ent.PlayerID, ent.Team, "P"),
		"SHO":       conditions.Shutouts(ent.PlayerID, ent.Team),
	}
	for _, stat := range pitchingCountingStats {
		line[stat] = int(ent.Totals[stat])
	}

	ip := ent.Totals["IP"]
	er := ent.Totals["ER"]
	h := ent.Totals["H"]
	hr := ent.Totals["HR"]
	bb := ent.Totals["BB"]
	so := ent.Totals["SO"]
	w := ent.Totals["W"]
	l := ent.Totals["L"]

	// ERA with zero innings publishes "0.00"; see DESIGN.md.
	line["IP"] = EncodeInnings(ip)
	line["ERA"] = FormatFixed(safeDiv(er*9, ip), 2)
	line["WHIP"] = FormatFixed(safeDiv(bb+h, ip), 2)
	line["H9"] = FormatFixed(safeDiv(h*9, ip), 1)
	line["HR9"] = FormatFixed(safeDiv(hr*9, ip), 1)
	line["BB9"] = FormatFixed(safeDiv(bb*9, ip), 1)
	line["SO9"] = FormatFixed(safeDiv(so*9, ip), 1)
	line["SO/BB"] = FormatFixed(safeDiv(so, bb), 1)
	line["W-L%"] = FormatRate3(round3(safeDiv(w, w+l)))
	return line
}

// MinQualifyingIP is the innings-pitched threshold for rate-stat leaderboards.
const MinQualifyingIP = 3.0

// QualifiedPitcher reports whether a pitching line has enough innings to
// qualify for rate-stat leaderboards.
func QualifiedPitcher(line StatLine) bool {
	ip, _ := line["IP"].(string)
	return DecodeInnings(LenientFloat(ip)) >= MinQualifyingIP
}
