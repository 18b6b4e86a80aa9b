package engine

// Batting cells shown on a boxscore line.
var boxscoreBattingCells = []string{"AB", "R", "H", "2B", "3B", "HR", "RBI", "BB", "SO"}

// BoxscoreGame is the per-game structured summary of both teams' lines.
// Metadata comes from the schedule record, never from appearance rows, so
// conflicting cells across a game's rows cannot leak into it.
type BoxscoreGame struct {
	GameID          string                         `json:"game_id"`
	Date            string                         `json:"date"`
	Home            string                         `json:"home"`
	Away            string                         `json:"away"`
	HomeScore       int                            `json:"home_score"`
	AwayScore       int                            `json:"away_score"`
	Batting         map[string][]StatLine          `json:"batting"`
	Pitching        map[string][]StatLine          `json:"pitching"`
	PositionsPlayed map[string]map[string][]string `json:"positions_played"`
	GamesStarted    map[string]map[string]int      `json:"games_started"`

	battingIdx  map[boxLineKey]StatLine
	pitchingIdx map[boxLineKey]StatLine
	pitchingIP  map[boxLineKey]float64
}

type boxLineKey struct {
	Team     string
	PlayerID string
}

// AssembleBoxscores builds one BoxscoreGame per completed game. Rows whose
// game id has no schedule record are skipped as unknown games.
func AssembleBoxscores(rows []AppearanceRow, schedule []ScheduleGame) map[string]*BoxscoreGame {
	games := make(map[string]*BoxscoreGame, len(schedule))
	for _, sg := range schedule {
		if !sg.Completed || sg.GameID == "" {
			continue
		}
		games[sg.GameID] = newBoxscoreGame(sg)
	}

	for _, row := range rows {
		game, ok := games[row.GameID]
		if !ok {
			continue
		}
		game.fold(row)
	}

	for _, game := range games {
		game.finish()
	}
	return games
}

func newBoxscoreGame(sg ScheduleGame) *BoxscoreGame {
	return &BoxscoreGame{
		GameID:          sg.GameID,
		Date:            sg.Date,
		Home:            sg.Home,
		Away:            sg.Away,
		HomeScore:       sg.HomeScore,
		AwayScore:       sg.AwayScore,
		Batting:         make(map[string][]StatLine),
		Pitching:        make(map[string][]StatLine),
		PositionsPlayed: make(map[string]map[string][]string),
		GamesStarted:    make(map[string]map[string]int),
		battingIdx:      make(map[boxLineKey]StatLine),
		pitchingIdx:     make(map[boxLineKey]StatLine),
		pitchingIP:      make(map[boxLineKey]float64),
	}
}

func (g *BoxscoreGame) fold(row AppearanceRow) {
	if row.BattingOrder > 0 {
		g.foldBatting(row)
	}
	if IsPitcher(row.Position) && row.Has("IP") {
		g.foldPitching(row)
	}
	if IsDefensive(row.Position) {
		g.trackPosition(row)
	}
	if row.Int("GS") > 0 {
		g.trackStart(row)
	}
}

// foldBatting accumulates a player's batting line, appending it on first
// sight so the team's list keeps first-insertion order per lineup slot. A
// player with several plate-appearance rows in one game stays on one line.
func (g *BoxscoreGame) foldBatting(row AppearanceRow) {
	k := boxLineKey{Team: row.Team, PlayerID: row.PlayerID}
	line, ok := g.battingIdx[k]
	if !ok {
		line = StatLine{
			"Player":    row.PlayerName,
			"Player ID": row.PlayerID,
			"BOP":       row.BattingOrder,
		}
		for _, cell := range boxscoreBattingCells {
			line[cell] = 0
		}
		g.battingIdx[k] = line
		g.Batting[row.Team] = append(g.Batting[row.Team], line)
	}
	for _, cell := range boxscoreBattingCells {
		prev, _ := line[cell].(int)
		line[cell] = prev + row.Int(cell)
	}
}

func (g *BoxscoreGame) foldPitching(row AppearanceRow) {
	k := boxLineKey{Team: row.Team, PlayerID: row.PlayerID}
	line, ok := g.pitchingIdx[k]
	if !ok {
		line = StatLine{
			"Player":    row.PlayerName,
			"Player ID": row.PlayerID,
			"H":         0, "R": 0, "ER": 0, "BB": 0, "SO": 0, "HR": 0,
			"W": 0, "L": 0, "SV": 0,
		}
		g.pitchingIdx[k] = line
		g.Pitching[row.Team] = append(g.Pitching[row.Team], line)
	}
	g.pitchingIP[k] += DecodeInnings(row.Float("IP"))
	for cell, stat := range map[string]string{
		"H allowed": "H", "R against": "R", "ER": "ER",
		"BB against": "BB", "SO against": "SO", "HR allowed": "HR",
		"W": "W", "L": "L", "SV": "SV",
	} {
		prev, _ := line[stat].(int)
		line[stat] = prev + row.Int(cell)
	}
}

func (g *BoxscoreGame) trackPosition(row AppearanceRow) {
	players := g.PositionsPlayed[row.Team]
	if players == nil {
		players = make(map[string][]string)
		g.PositionsPlayed[row.Team] = players
	}
	code := PositionCode(row.Position)
	for _, seen := range players[row.PlayerID] {
		if seen == code {
			return
		}
	}
	players[row.PlayerID] = append(players[row.PlayerID], code)
}

func (g *BoxscoreGame) trackStart(row AppearanceRow) {
	starts := g.GamesStarted[row.Team]
	if starts == nil {
		starts = make(map[string]int)
		g.GamesStarted[row.Team] = starts
	}
	starts[row.PlayerID]++
}

// finish renders accumulated pitching innings in display form and drops the
// build-time indexes.
func (g *BoxscoreGame) finish() {
	for k, line := range g.pitchingIdx {
		line["IP"] = EncodeInnings(g.pitchingIP[k])
	}
	g.battingIdx = nil
	g.pitchingIdx = nil
	g.pitchingIP = nil
}
