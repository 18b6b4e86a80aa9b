package engine

import (
	"strconv"
	"testing"
)

func outcomeRow(gameID, team string, runs int) AppearanceRow {
	return AppearanceRow{
		GameID:   gameID,
		PlayerID: gameID + "-" + team,
		Team:     team,
		Cells:    map[string]string{"R": strconv.Itoa(runs)},
	}
}

func TestGameOutcomes(t *testing.T) {
	rows := []AppearanceRow{
		outcomeRow("g1", "NYY", 3),
		outcomeRow("g1", "NYY", 2),
		outcomeRow("g1", "BOS", 4),
		outcomeRow("g2", "BOS", 1),
		outcomeRow("g2", "NYY", 7),
	}
	outcomes := GameOutcomes(rows)
	if len(outcomes) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(outcomes))
	}
	if outcomes[0].Winner != "NYY" || outcomes[0].Loser != "BOS" {
		t.Errorf("g1 = %s over %s, want NYY over BOS (runs sum across rows)", outcomes[0].Winner, outcomes[0].Loser)
	}
	if outcomes[1].Winner != "NYY" || outcomes[1].Loser != "BOS" {
		t.Errorf("g2 = %s over %s, want NYY over BOS", outcomes[1].Winner, outcomes[1].Loser)
	}
}

func TestGameOutcomesSkipsMalformedGames(t *testing.T) {
	rows := []AppearanceRow{
		// One team only.
		outcomeRow("g1", "NYY", 3),
		// Three teams.
		outcomeRow("g2", "NYY", 3),
		outcomeRow("g2", "BOS", 2),
		outcomeRow("g2", "TB", 1),
	}
	if outcomes := GameOutcomes(rows); len(outcomes) != 0 {
		t.Errorf("got %d outcomes from malformed games, want 0", len(outcomes))
	}
}

func standingsTeams() []TeamInfo {
	return []TeamInfo{
		{ID: "NYY", League: "AL", Division: "East"},
		{ID: "BOS", League: "AL", Division: "East"},
		{ID: "TB", League: "AL", Division: "East"},
	}
}

func repeatOutcomes(winner, loser string, n int, start int) []TeamGameOutcome {
	out := make([]TeamGameOutcome, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, TeamGameOutcome{
			GameID: winner + loser + strconv.Itoa(start+i),
			Winner: winner,
			Loser:  loser,
		})
	}
	return out
}

func TestBuildStandingsOrderAndGamesBehind(t *testing.T) {
	var outcomes []TeamGameOutcome
	// NYY 4-0, BOS 2-2, TB 0-4.
	outcomes = append(outcomes, repeatOutcomes("NYY", "BOS", 2, 0)...)
	outcomes = append(outcomes, repeatOutcomes("NYY", "TB", 2, 0)...)
	outcomes = append(outcomes, repeatOutcomes("BOS", "TB", 2, 0)...)

	standings := BuildStandings(outcomes, standingsTeams(), nil)
	rows := standings["AL"]["East"]
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	if rows[0].Team != "NYY" || rows[1].Team != "BOS" || rows[2].Team != "TB" {
		t.Fatalf("order = %s, %s, %s; want NYY, BOS, TB", rows[0].Team, rows[1].Team, rows[2].Team)
	}
	if rows[0].GB != GBLeader {
		t.Errorf("leader GB = %q, want %q", rows[0].GB, GBLeader)
	}
	if rows[1].GB != "2.0" {
		t.Errorf("BOS GB = %q, want 2.0", rows[1].GB)
	}
	if rows[2].GB != "4.0" {
		t.Errorf("TB GB = %q, want 4.0", rows[2].GB)
	}
	if rows[0].Pct != "1.000" {
		t.Errorf("NYY pct = %q, want 1.000", rows[0].Pct)
	}
	if rows[1].Pct != ".500" {
		t.Errorf("BOS pct = %q, want .500", rows[1].Pct)
	}
}

func TestBuildStandingsExactTieSharesLeaderMark(t *testing.T) {
	var outcomes []TeamGameOutcome
	// NYY and BOS both 1-1; TB 0-0 never played.
	outcomes = append(outcomes, TeamGameOutcome{GameID: "g1", Winner: "NYY", Loser: "BOS"})
	outcomes = append(outcomes, TeamGameOutcome{GameID: "g2", Winner: "BOS", Loser: "NYY"})

	standings := BuildStandings(outcomes, standingsTeams(), nil)
	rows := standings["AL"]["East"]

	// Stable sort keeps the input team order for the tied pair.
	if rows[0].Team != "NYY" || rows[1].Team != "BOS" {
		t.Fatalf("tied order = %s, %s; want NYY, BOS", rows[0].Team, rows[1].Team)
	}
	if rows[0].GB != GBLeader || rows[1].GB != GBLeader {
		t.Errorf("tied GB = %q, %q; want both %q", rows[0].GB, rows[1].GB, GBLeader)
	}
}

func TestBuildStandingsHalfGameBehind(t *testing.T) {
	// NYY 1-0, BOS 1-1: same wins are not enough, GB is half a game.
	outcomes := []TeamGameOutcome{
		{GameID: "g1", Winner: "NYY", Loser: "TB"},
		{GameID: "g2", Winner: "BOS", Loser: "TB"},
		{GameID: "g3", Winner: "TB", Loser: "BOS"},
	}
	standings := BuildStandings(outcomes, standingsTeams(), nil)
	rows := standings["AL"]["East"]
	if rows[0].Team != "NYY" {
		t.Fatalf("leader = %s, want NYY", rows[0].Team)
	}
	if rows[1].Team != "BOS" || rows[1].GB != "0.5" {
		t.Errorf("BOS GB = %q, want 0.5", rows[1].GB)
	}
}

func TestStreakAndLastTen(t *testing.T) {
	schedule := []ScheduleGame{
		{GameID: "g1", Home: "NYY", Away: "BOS", HomeScore: 5, AwayScore: 2, Completed: true},
		{GameID: "g2", Home: "BOS", Away: "NYY", HomeScore: 3, AwayScore: 1, Completed: true},
		{GameID: "g3", Home: "NYY", Away: "BOS", HomeScore: 4, AwayScore: 0, Completed: true},
		{GameID: "g4", Home: "NYY", Away: "BOS", HomeScore: 6, AwayScore: 5, Completed: true},
		// Unplayed games contribute nothing.
		{GameID: "g5", Home: "NYY", Away: "BOS"},
	}
	outcomes := []TeamGameOutcome{
		{GameID: "g1", Winner: "NYY", Loser: "BOS"},
		{GameID: "g2", Winner: "BOS", Loser: "NYY"},
		{GameID: "g3", Winner: "NYY", Loser: "BOS"},
		{GameID: "g4", Winner: "NYY", Loser: "BOS"},
	}
	standings := BuildStandings(outcomes, standingsTeams(), schedule)
	rows := standings["AL"]["East"]

	if rows[0].Team != "NYY" {
		t.Fatalf("leader = %s, want NYY", rows[0].Team)
	}
	if rows[0].Streak != "W2" {
		t.Errorf("NYY STRK = %q, want W2", rows[0].Streak)
	}
	if rows[0].LastTen != "3-1" {
		t.Errorf("NYY L10 = %q, want 3-1", rows[0].LastTen)
	}
	if rows[1].Streak != "L2" {
		t.Errorf("BOS STRK = %q, want L2", rows[1].Streak)
	}
}

func TestLastTenWindowCapsAtTen(t *testing.T) {
	results := []string{"L", "L", "L", "W", "W", "W", "W", "W", "W", "W", "W", "W", "W"}
	if got := lastTen(results); got != "10-0" {
		t.Errorf("lastTen = %q, want 10-0", got)
	}
}
