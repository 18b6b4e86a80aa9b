package engine

// Complete games and shutouts cannot be read off accumulated totals: "this
// pitcher finished the game alone" is a property of the row population for
// one game, so the detector runs its own pass over the raw rows.

type conditionKey struct {
	PlayerID string
	Team     string
	Position string // canonical letter code
}

// Conditions holds per-entity complete-game and shutout counts for a season.
type Conditions struct {
	completeGames map[conditionKey]int
	shutouts      map[conditionKey]int
}

type gamePositionKey struct {
	GameID   string
	Team     string
	Position string
}

// DetectConditions scans normalized rows and credits a complete game at a
// position whenever a team fielded exactly one player there for a whole
// game. A complete-game pitcher who allowed no runs is also credited a
// shutout. Per-appearance CG/SHO flags in the sheet are ignored; group
// uniqueness is the authoritative signal.
func DetectConditions(rows []AppearanceRow) *Conditions {
	groups := make(map[gamePositionKey][]AppearanceRow)
	for _, row := range rows {
		if !IsDefensive(row.Position) {
			continue
		}
		k := gamePositionKey{GameID: row.GameID, Team: row.Team, Position: PositionCode(row.Position)}
		groups[k] = append(groups[k], row)
	}

	c := &Conditions{
		completeGames: make(map[conditionKey]int),
		shutouts:      make(map[conditionKey]int),
	}
	for k, group := range groups {
		if len(group) != 1 {
			continue
		}
		row := group[0]
		ck := conditionKey{PlayerID: row.PlayerID, Team: row.Team, Position: k.Position}
		c.completeGames[ck]++
		if IsPitcher(k.Position) && row.Int("R against") == 0 {
			c.shutouts[ck]++
		}
	}
	return c
}

// CompleteGames returns the complete-game count for a player at a position
// on a team.
func (c *Conditions) CompleteGames(playerID, team, position string) int {
	return c.completeGames[conditionKey{PlayerID: playerID, Team: team, Position: PositionCode(position)}]
}

// Shutouts returns the shutout count for a pitcher on a team.
func (c *Conditions) Shutouts(playerID, team string) int {
	return c.shutouts[conditionKey{PlayerID: playerID, Team: team, Position: "P"}]
}
