package engine

// AppearanceRow is one player's participation record in one game, as handed
// over by the ingestion side. Identity fields are split out; every named
// statistic cell stays in Cells exactly as it appeared in the source, so a
// missing cell and a zero cell remain distinguishable.
type AppearanceRow struct {
	GameID       string
	PlayerID     string
	PlayerName   string
	Team         string
	Position     string // raw position code; empty for non-fielding entries
	BattingOrder int    // lineup slot, 0 when the row has none
	Cells        map[string]string
}

// Has reports whether the row carries a value for the named cell.
func (r AppearanceRow) Has(name string) bool {
	v, ok := r.Cells[name]
	return ok && v != ""
}

// Int returns the named cell leniently parsed as an integer.
func (r AppearanceRow) Int(name string) int {
	return LenientInt(r.Cells[name])
}

// Float returns the named cell leniently parsed as a float.
func (r AppearanceRow) Float(name string) float64 {
	return LenientFloat(r.Cells[name])
}

// ScheduleGame is the authoritative schedule record for one game.
type ScheduleGame struct {
	GameID    string `json:"game_id"`
	Date      string `json:"date"`
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	Completed bool   `json:"completed"`
}

// TeamInfo is league/division metadata for one team.
type TeamInfo struct {
	ID       string `json:"id"`
	League   string `json:"league"`
	Division string `json:"division"`
}

// StatLine is one published per-entity record. Lines are maps rather than
// structs because several fields are position-conditional: they must be
// absent from the wire, not zero, for positions they do not apply to.
type StatLine map[string]any

// Player returns the line's display name.
func (l StatLine) Player() string {
	s, _ := l["Player"].(string)
	return s
}

// PlayerID returns the line's player identifier.
func (l StatLine) PlayerID() string {
	s, _ := l["Player ID"].(string)
	return s
}

// Team returns the line's team code.
func (l StatLine) Team() string {
	s, _ := l["team"].(string)
	return s
}
