package engine

// PlayerSummary aggregates one player's per-category season lines with
// identity metadata for the player pages.
type PlayerSummary struct {
	PlayerID string     `json:"id"`
	Name     string     `json:"name"`
	Ref      string     `json:"ref"`
	Teams    []string   `json:"teams"`
	Batting  []StatLine `json:"batting,omitempty"`
	Pitching []StatLine `json:"pitching,omitempty"`
	Fielding []StatLine `json:"fielding,omitempty"`
}

// CombinePlayers groups the merged category lines by player id into one
// summary per player, in first-appearance order across the three categories.
func CombinePlayers(batting, pitching, fielding []StatLine) []PlayerSummary {
	byID := make(map[string]*PlayerSummary)
	var order []string

	get := func(line StatLine) *PlayerSummary {
		id := line.PlayerID()
		p, ok := byID[id]
		if !ok {
			p = &PlayerSummary{PlayerID: id, Ref: "/players/" + id}
			byID[id] = p
			order = append(order, id)
		}
		if name := line.Player(); name != "" {
			p.Name = name
		}
		if team := line.Team(); team != "" && team != TotalTeam {
			p.addTeam(team)
		}
		return p
	}

	for _, line := range batting {
		p := get(line)
		p.Batting = append(p.Batting, line)
	}
	for _, line := range pitching {
		p := get(line)
		p.Pitching = append(p.Pitching, line)
	}
	for _, line := range fielding {
		p := get(line)
		p.Fielding = append(p.Fielding, line)
	}

	out := make([]PlayerSummary, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	return out
}

func (p *PlayerSummary) addTeam(team string) {
	for _, t := range p.Teams {
		if t == team {
			return
		}
	}
	p.Teams = append(p.Teams, team)
}
