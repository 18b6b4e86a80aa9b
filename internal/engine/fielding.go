package engine

// FieldingLines converts accumulated per-position fielding totals into
// published stat lines. Several fields are position-conditional: stolen-base
// data is only meaningful for the battery (pitcher and catcher), passed
// balls only for catchers, pickoffs only for pitchers. For every other
// position those keys are absent from the line, not zero.
func FieldingLines(entities []*Accumulated, conditions *Conditions) []StatLine {
	lines := make([]StatLine, 0, len(entities))
	for _, ent := range entities {
		lines = append(lines, fieldingLine(ent, conditions))
	}
	return lines
}

func fieldingLine(ent *Accumulated, conditions *Conditions) StatLine {
	line := StatLine{
		"Player":    ent.PlayerName,
		"Player ID": ent.PlayerID,
		"team":      ent.Team,
		"POS":       ent.Position,
		"G":         ent.GamesPlayed(),
		"CG":        conditions.CompleteGames(ent.PlayerID, ent.Team, ent.Position),
		"INN":       EncodeInnings(ent.Totals["INN"]),
		"PO":        int(ent.Totals["PO"]),
		"A":         int(ent.Totals["A"]),
		"E":         int(ent.Totals["E"]),
		"DP":        int(ent.Totals["DP"]),
	}

	po := ent.Totals["PO"]
	a := ent.Totals["A"]
	e := ent.Totals["E"]
	chances := po + a + e
	line["Ch"] = int(chances)
	if chances > 0 {
		line["Fld%"] = FormatRate3(round3((po + a) / chances))
	} else {
		line["Fld%"] = ""
	}

	battery := IsPitcher(ent.Position) || IsCatcher(ent.Position)
	if battery {
		sb := ent.Totals["SB"]
		cs := ent.Totals["CS"]
		line["SB"] = int(sb)
		line["CS"] = int(cs)
		if sb+cs > 0 {
			line["CS%"] = FormatPercent(cs / (sb + cs))
		} else {
			line["CS%"] = ""
		}
	}
	if IsCatcher(ent.Position) {
		line["PB"] = int(ent.Totals["PB"])
	}
	if IsPitcher(ent.Position) {
		line["PkO"] = int(ent.Totals["PkO"])
	}
	return line
}

// MinQualifyingFieldingGames is the games threshold for fielding leaderboards.
const MinQualifyingFieldingGames = 5

// QualifiedFielder reports whether a fielding line has enough games to
// qualify for leaderboards.
func QualifiedFielder(line StatLine) bool {
	g, _ := line["G"].(int)
	return g >= MinQualifyingFieldingGames
}
