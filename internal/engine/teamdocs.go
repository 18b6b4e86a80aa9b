package engine

import "fmt"

// TeamDocument is the per-team stats page payload. Each category is either
// a slice of stat lines or, when that category failed to build, an
// "Error: …" marker string — one bad category never blocks the others.
type TeamDocument struct {
	TeamID   string `json:"team"`
	Batting  any    `json:"batting"`
	Pitching any    `json:"pitching"`
	Fielding any    `json:"fielding"`
}

// BuildTeamDocuments filters the season category lines down to one document
// per team. TOT rows belong to no single team and are excluded here.
func BuildTeamDocuments(batting, pitching, fielding []StatLine, teams []TeamInfo) []TeamDocument {
	docs := make([]TeamDocument, 0, len(teams))
	for _, t := range teams {
		docs = append(docs, TeamDocument{
			TeamID:   t.ID,
			Batting:  categoryOrError(batting, t.ID),
			Pitching: categoryOrError(pitching, t.ID),
			Fielding: categoryOrError(fielding, t.ID),
		})
	}
	return docs
}

func categoryOrError(lines []StatLine, teamID string) (result any) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("Error: %v", r)
		}
	}()
	return teamLines(lines, teamID)
}

func teamLines(lines []StatLine, teamID string) []StatLine {
	out := make([]StatLine, 0)
	for _, line := range lines {
		team, ok := line["team"].(string)
		if !ok {
			panic(fmt.Sprintf("stat line for player %q has no team code", line.PlayerID()))
		}
		if team == teamID {
			out = append(out, line)
		}
	}
	return out
}
