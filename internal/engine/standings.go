package engine

import (
	"sort"
	"strconv"
)

// Fixed publication order for leagues and divisions.
var (
	LeagueOrder   = []string{"AL", "NL"}
	DivisionOrder = []string{"East", "Central", "West"}
)

// GBLeader is the games-behind sentinel for the division leader and any team
// tied with it on both wins and losses.
const GBLeader = "--"

// StandingsRow is one team's line in the division standings.
type StandingsRow struct {
	Team    string `json:"id"`
	W       int    `json:"W"`
	L       int    `json:"L"`
	Pct     string `json:"pct"`
	GB      string `json:"GB"`
	Streak  string `json:"STRK"`
	LastTen string `json:"L10"`
}

// Standings maps league, then division, to rank-ordered team rows.
type Standings map[string]map[string][]StandingsRow

// TeamGameOutcome records the winner and loser of one completed game.
type TeamGameOutcome struct {
	GameID string
	Winner string
	Loser  string
}

// GameOutcomes derives one win/loss outcome per game by comparing the two
// participating teams' summed runs. Games with anything other than exactly
// two participating teams are malformed input and skipped.
func GameOutcomes(rows []AppearanceRow) []TeamGameOutcome {
	type teamRuns struct {
		team string
		runs int
	}
	byGame := make(map[string][]*teamRuns)
	var gameOrder []string
	for _, row := range rows {
		if row.GameID == "" || row.Team == "" || !row.Has("R") {
			continue
		}
		entries := byGame[row.GameID]
		if entries == nil {
			gameOrder = append(gameOrder, row.GameID)
		}
		var entry *teamRuns
		for _, e := range entries {
			if e.team == row.Team {
				entry = e
				break
			}
		}
		if entry == nil {
			entry = &teamRuns{team: row.Team}
			byGame[row.GameID] = append(entries, entry)
		}
		entry.runs += row.Int("R")
	}

	var outcomes []TeamGameOutcome
	for _, gameID := range gameOrder {
		entries := byGame[gameID]
		if len(entries) != 2 {
			continue
		}
		first, second := entries[0], entries[1]
		if first.runs > second.runs {
			outcomes = append(outcomes, TeamGameOutcome{GameID: gameID, Winner: first.team, Loser: second.team})
		} else {
			outcomes = append(outcomes, TeamGameOutcome{GameID: gameID, Winner: second.team, Loser: first.team})
		}
	}
	return outcomes
}

// BuildStandings aggregates game outcomes into league/division standings:
// winning percentage, games behind the division leader, and the streak and
// last-ten form figures computed from the completed schedule.
func BuildStandings(outcomes []TeamGameOutcome, teams []TeamInfo, schedule []ScheduleGame) Standings {
	type record struct{ w, l int }
	records := make(map[string]*record, len(teams))
	for _, t := range teams {
		records[t.ID] = &record{}
	}
	for _, o := range outcomes {
		if r, ok := records[o.Winner]; ok {
			r.w++
		}
		if r, ok := records[o.Loser]; ok {
			r.l++
		}
	}

	standings := make(Standings, len(LeagueOrder))
	for _, league := range LeagueOrder {
		divisions := make(map[string][]StandingsRow, len(DivisionOrder))
		for _, division := range DivisionOrder {
			var rows []StandingsRow
			for _, t := range teams {
				if t.League != league || t.Division != division {
					continue
				}
				r := records[t.ID]
				pct := 0.0
				if r.w+r.l > 0 {
					pct = float64(r.w) / float64(r.w+r.l)
				}
				results := teamResults(schedule, t.ID)
				rows = append(rows, StandingsRow{
					Team:    t.ID,
					W:       r.w,
					L:       r.l,
					Pct:     FormatRate3(round3(pct)),
					Streak:  streak(results),
					LastTen: lastTen(results),
				})
			}
			if len(rows) == 0 {
				continue
			}
			sort.SliceStable(rows, func(i, j int) bool {
				pi := winPct(rows[i])
				pj := winPct(rows[j])
				if pi != pj {
					return pi > pj
				}
				return rows[i].W > rows[j].W
			})
			leader := rows[0]
			for i := range rows {
				rows[i].GB = gamesBehind(leader, rows[i])
			}
			divisions[division] = rows
		}
		standings[league] = divisions
	}
	return standings
}

func winPct(r StandingsRow) float64 {
	return safeDiv(float64(r.W), float64(r.W+r.L))
}

func gamesBehind(leader, team StandingsRow) string {
	if team.W == leader.W && team.L == leader.L {
		return GBLeader
	}
	gb := (float64(leader.W-team.W) + float64(team.L-leader.L)) / 2
	return FormatFixed(gb, 1)
}

// teamResults lists a team's completed results, "W" or "L", in schedule order.
func teamResults(schedule []ScheduleGame, teamID string) []string {
	var results []string
	for _, game := range schedule {
		if !game.Completed {
			continue
		}
		var teamScore, oppScore int
		switch teamID {
		case game.Home:
			teamScore, oppScore = game.HomeScore, game.AwayScore
		case game.Away:
			teamScore, oppScore = game.AwayScore, game.HomeScore
		default:
			continue
		}
		if teamScore > oppScore {
			results = append(results, "W")
		} else {
			results = append(results, "L")
		}
	}
	return results
}

func streak(results []string) string {
	if len(results) == 0 {
		return ""
	}
	kind := results[len(results)-1]
	n := 0
	for i := len(results) - 1; i >= 0 && results[i] == kind; i-- {
		n++
	}
	return kind + strconv.Itoa(n)
}

func lastTen(results []string) string {
	if len(results) > 10 {
		results = results[len(results)-10:]
	}
	w := 0
	for _, r := range results {
		if r == "W" {
			w++
		}
	}
	return strconv.Itoa(w) + "-" + strconv.Itoa(len(results)-w)
}
