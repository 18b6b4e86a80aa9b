// Package engine turns a season's raw per-appearance game-log rows into
// published season statistics: batting, pitching, and fielding lines,
// standings, per-game boxscores, per-team documents, and per-player
// summaries. One Convert call is one run; all accumulation state is owned by
// the call and discarded with it.
package engine

// Input is everything one conversion run consumes.
type Input struct {
	Rows     []AppearanceRow
	Schedule []ScheduleGame
	Teams    []TeamInfo
}

// Output is the full document set produced by one conversion run. Nothing in
// it is mutated after Convert returns.
type Output struct {
	Batting   []StatLine               `json:"batting"`
	Pitching  []StatLine               `json:"pitching"`
	Fielding  []StatLine               `json:"fielding"`
	Standings Standings                `json:"standings"`
	Schedule  []ScheduleGame           `json:"schedule"`
	Boxscores map[string]*BoxscoreGame `json:"boxscores"`
	Players   []PlayerSummary          `json:"players_combined"`
	TeamDocs  []TeamDocument           `json:"teams"`
}

// Convert runs the whole pipeline: normalize, accumulate, detect per-game
// conditions, derive rate stats, merge multi-team players, and build
// standings, boxscores, and the combined documents.
func Convert(in Input) *Output {
	rows := NormalizeRows(in.Rows)

	acc := NewAccumulator()
	for _, row := range rows {
		acc.Fold(row)
	}
	conditions := DetectConditions(rows)

	batting := MergeMultiTeam(BattingLines(acc.Batting()))
	pitching := MergeMultiTeam(PitchingLines(acc.Pitching(), conditions))
	fielding := MergeMultiTeamFielding(FieldingLines(acc.Fielding(), conditions))

	return &Output{
		Batting:   batting,
		Pitching:  pitching,
		Fielding:  fielding,
		Standings: BuildStandings(GameOutcomes(rows), in.Teams, in.Schedule),
		Schedule:  in.Schedule,
		Boxscores: AssembleBoxscores(rows, in.Schedule),
		Players:   CombinePlayers(batting, pitching, fielding),
		TeamDocs:  BuildTeamDocuments(batting, pitching, fielding, in.Teams),
	}
}
