package engine

// TotalTeam is the sentinel team code on rows synthesized for players who
// appeared under more than one team in a season.
const TotalTeam = "TOT"

// MergeMultiTeam appends one synthesized TOT row per player who has lines
// under more than one team. Only summable numeric fields carry over; the
// formatted rate strings are per-team artifacts and are left off the
// combined row. Players with a single team are returned untouched.
func MergeMultiTeam(lines []StatLine) []StatLine {
	return mergeBy(lines, func(l StatLine) string { return l.PlayerID() })
}

// MergeMultiTeamFielding merges fielding lines, which are keyed by position
// as well as player: a TOT row is synthesized per (player, position) held
// under more than one team.
func MergeMultiTeamFielding(lines []StatLine) []StatLine {
	return mergeBy(lines, func(l StatLine) string {
		pos, _ := l["POS"].(string)
		return l.PlayerID() + "\x00" + pos
	})
}

func mergeBy(lines []StatLine, groupKey func(StatLine) string) []StatLine {
	groups := make(map[string][]StatLine)
	var order []string
	for _, line := range lines {
		k := groupKey(line)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], line)
	}

	out := make([]StatLine, len(lines))
	copy(out, lines)
	for _, k := range order {
		group := groups[k]
		if !multiTeam(group) {
			continue
		}
		out = append(out, synthesizeTotal(group))
	}
	return out
}

func multiTeam(group []StatLine) bool {
	teams := make(map[string]struct{}, len(group))
	for _, line := range group {
		teams[line.Team()] = struct{}{}
	}
	return len(teams) > 1
}

func synthesizeTotal(group []StatLine) StatLine {
	total := StatLine{
		"Player":    group[len(group)-1].Player(),
		"Player ID": group[0].PlayerID(),
		"team":      TotalTeam,
	}
	if pos, ok := group[0]["POS"].(string); ok {
		total["POS"] = pos
	}
	for _, line := range group {
		for name, value := range line {
			switch v := value.(type) {
			case int:
				prev, _ := total[name].(int)
				total[name] = prev + v
			case float64:
				prev, _ := total[name].(float64)
				total[name] = prev + v
			}
		}
	}
	return total
}
