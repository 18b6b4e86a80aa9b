package engine

// BattingLines converts accumulated batting totals into published stat
// lines: counting stats, games played, and the derived rate stats in their
// display form.
func BattingLines(entities []*Accumulated) []StatLine {
	lines := make([]StatLine, 0, len(entities))
	for _, ent := range entities {
		lines = append(lines, battingLine(ent))
	}
	return lines
}

func battingLine(ent *Accumulated) StatLine {
	line := StatLine{
		"Player":    ent.PlayerName,
		"Player ID": ent.PlayerID,
		"team":      ent.Team,
		"G":         ent.GamesPlayed(),
	}
	for _, cell := range battingCells {
		line[cell] = int(ent.Totals[cell])
	}

	ab := ent.Totals["AB"]
	h := ent.Totals["H"]
	bb := ent.Totals["BB"]
	hbp := ent.Totals["HBP"]
	sf := ent.Totals["SF"]
	tb := h + ent.Totals["2B"] + 2*ent.Totals["3B"] + 3*ent.Totals["HR"]
	pa := ab + bb + hbp + sf

	avg := round3(safeDiv(h, ab))
	obp := round3(safeDiv(h+bb+hbp, pa))
	slg := round3(safeDiv(tb, ab))
	ops := round3(obp + slg)

	line["TB"] = int(tb)
	line["PA"] = int(pa)
	line["AVG"] = FormatRate3(avg)
	line["OBP"] = FormatRate3(obp)
	line["SLG"] = FormatRate3(slg)
	line["OPS"] = FormatRate3(ops)
	return line
}

// MinQualifyingPA is the plate-appearance threshold for rate-stat leaderboards.
const MinQualifyingPA = 10

// QualifiedBatter reports whether a batting line has enough plate appearances
// to qualify for rate-stat leaderboards. Lines themselves are never filtered;
// consumers decide.
func QualifiedBatter(line StatLine) bool {
	pa, _ := line["PA"].(int)
	return pa >= MinQualifyingPA
}
