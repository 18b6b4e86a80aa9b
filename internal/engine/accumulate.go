package engine

// Statistic cells folded per category. Batting and pitching totals are keyed
// by (player, team); fielding is additionally keyed by position.
var (
	battingCells = []string{
		"AB", "R", "H", "2B", "3B", "HR", "RBI", "BB", "IBB",
		"SO", "HBP", "SH", "SF", "GDP", "SB", "CS",
	}

	// Pitching cells keep their "allowed"/"against" sheet names so they never
	// collide with the same-named batting cells on a two-way player's row.
	pitchingCells = map[string]string{
		"W":           "W",
		"L":           "L",
		"SV":          "SV",
		"GS":          "GS",
		"ER":          "ER",
		"R against":   "R",
		"H allowed":   "H",
		"HR allowed":  "HR",
		"BB against":  "BB",
		"IBB against": "IBB",
		"SO against":  "SO",
		"HBP against": "HBP",
		"BK":          "BK",
		"WP":          "WP",
	}

	fieldingCells = []string{"PO", "A", "E", "DP", "SB", "CS", "PB", "PkO"}
)

type entityKey struct {
	PlayerID string
	Team     string
}

type fieldingKey struct {
	PlayerID string
	Team     string
	Position string // canonical letter code
}

// Accumulated is the running total for one grouping key. Totals only ever
// grow; games played is the cardinality of the distinct game-id set, not the
// row count, since one player can appear in several rows of the same game.
type Accumulated struct {
	PlayerID   string
	PlayerName string
	Team       string
	Position   string // fielding only
	Totals     map[string]float64
	games      map[string]struct{}
}

func newAccumulated(playerID, team, position string) *Accumulated {
	return &Accumulated{
		PlayerID: playerID,
		Team:     team,
		Position: position,
		Totals:   make(map[string]float64),
		games:    make(map[string]struct{}),
	}
}

func (a *Accumulated) fold(name string, gameID string, playerName string, v float64) {
	a.Totals[name] += v
	a.games[gameID] = struct{}{}
	if playerName != "" {
		a.PlayerName = playerName
	}
}

// GamesPlayed returns the number of distinct games this entity appeared in.
func (a *Accumulated) GamesPlayed() int {
	return len(a.games)
}

// Accumulator folds normalized appearance rows into per-entity season totals
// for the three categories. Output order is first-appearance order, so the
// published documents are stable for a given input.
type Accumulator struct {
	batting       map[entityKey]*Accumulated
	battingOrder  []entityKey
	pitching      map[entityKey]*Accumulated
	pitchingOrder []entityKey
	fielding      map[fieldingKey]*Accumulated
	fieldingOrder []fieldingKey
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		batting:  make(map[entityKey]*Accumulated),
		pitching: make(map[entityKey]*Accumulated),
		fielding: make(map[fieldingKey]*Accumulated),
	}
}

// Fold adds one normalized row to the running totals. A row joins a category
// only when it carries that category's qualifying cell: AB for batting, IP
// for pitching (pitcher-position rows only), INN for fielding (defensive
// positions only).
func (ac *Accumulator) Fold(row AppearanceRow) {
	if row.Has("AB") {
		ac.foldBatting(row)
	}
	if row.Has("IP") && IsPitcher(row.Position) {
		ac.foldPitching(row)
	}
	if row.Has("INN") && IsDefensive(row.Position) {
		ac.foldFielding(row)
	}
}

func (ac *Accumulator) foldBatting(row AppearanceRow) {
	k := entityKey{PlayerID: row.PlayerID, Team: row.Team}
	ent, ok := ac.batting[k]
	if !ok {
		ent = newAccumulated(row.PlayerID, row.Team, "")
		ac.batting[k] = ent
		ac.battingOrder = append(ac.battingOrder, k)
	}
	for _, cell := range battingCells {
		ent.fold(cell, row.GameID, row.PlayerName, float64(row.Int(cell)))
	}
}

func (ac *Accumulator) foldPitching(row AppearanceRow) {
	k := entityKey{PlayerID: row.PlayerID, Team: row.Team}
	ent, ok := ac.pitching[k]
	if !ok {
		ent = newAccumulated(row.PlayerID, row.Team, "")
		ac.pitching[k] = ent
		ac.pitchingOrder = append(ac.pitchingOrder, k)
	}
	ent.fold("IP", row.GameID, row.PlayerName, DecodeInnings(row.Float("IP")))
	for cell, stat := range pitchingCells {
		ent.fold(stat, row.GameID, row.PlayerName, float64(row.Int(cell)))
	}
}

func (ac *Accumulator) foldFielding(row AppearanceRow) {
	k := fieldingKey{PlayerID: row.PlayerID, Team: row.Team, Position: PositionCode(row.Position)}
	ent, ok := ac.fielding[k]
	if !ok {
		ent = newAccumulated(row.PlayerID, row.Team, k.Position)
		ac.fielding[k] = ent
		ac.fieldingOrder = append(ac.fieldingOrder, k)
	}
	ent.fold("INN", row.GameID, row.PlayerName, DecodeInnings(row.Float("INN")))
	for _, cell := range fieldingCells {
		ent.fold(cell, row.GameID, row.PlayerName, float64(row.Int(cell)))
	}
}

// Batting returns the batting entities in first-appearance order.
func (ac *Accumulator) Batting() []*Accumulated {
	out := make([]*Accumulated, 0, len(ac.battingOrder))
	for _, k := range ac.battingOrder {
		out = append(out, ac.batting[k])
	}
	return out
}

// Pitching returns the pitching entities in first-appearance order.
func (ac *Accumulator) Pitching() []*Accumulated {
	out := make([]*Accumulated, 0, len(ac.pitchingOrder))
	for _, k := range ac.pitchingOrder {
		out = append(out, ac.pitching[k])
	}
	return out
}

// Fielding returns the fielding entities in first-appearance order.
func (ac *Accumulator) Fielding() []*Accumulated {
	out := make([]*Accumulated, 0, len(ac.fieldingOrder))
	for _, k := range ac.fieldingOrder {
		out = append(out, ac.fielding[k])
	}
	return out
}
