package sheets

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// GamelogRow is one parsed appearance row from the GameLog tab. Identity
// columns are split out; every other column is a statistic cell and passes
// through verbatim.
type GamelogRow struct {
	GameID       string
	PlayerID     string
	PlayerName   string
	Team         string
	Position     string
	BattingOrder int
	Cells        map[string]string
}

// ScheduleRow is one parsed row from the Schedule tab.
type ScheduleRow struct {
	GameID    string
	Date      string
	Home      string
	Away      string
	HomeScore int
	AwayScore int
	Completed bool
}

// TeamRow is one parsed row from the Teams tab.
type TeamRow struct {
	TeamID   string
	League   string
	Division string
	FullName string
}

// ParseGamelog extracts appearance rows from the GameLog tab. The first
// table row is the header; cell values are kept as raw strings so blank and
// zero stay distinct downstream.
func ParseGamelog(doc *goquery.Document) ([]GamelogRow, error) {
	headers, dataRows, err := tableRows(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing gamelog table: %w", err)
	}

	var rows []GamelogRow
	for _, cells := range dataRows {
		row := GamelogRow{Cells: make(map[string]string)}
		for i, value := range cells {
			if i >= len(headers) {
				break
			}
			switch header := headers[i]; header {
			case "Game ID":
				row.GameID = value
			case "Player ID":
				row.PlayerID = value
			case "Player":
				row.PlayerName = value
			case "team":
				row.Team = value
			case "POS":
				row.Position = value
			case "BOP":
				row.BattingOrder, _ = strconv.Atoi(value)
			default:
				if value != "" {
					row.Cells[header] = value
				}
			}
		}
		rows = append(rows, row)
	}

	log.Printf("Parsed %d gamelog rows", len(rows))
	return rows, nil
}

// ParseSchedule extracts the season schedule from the Schedule tab. A game
// is completed when both score cells are present.
func ParseSchedule(doc *goquery.Document) ([]ScheduleRow, error) {
	headers, dataRows, err := tableRows(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule table: %w", err)
	}

	var games []ScheduleRow
	for _, cells := range dataRows {
		game := ScheduleRow{}
		var homeScoreRaw, awayScoreRaw string
		for i, value := range cells {
			if i >= len(headers) {
				break
			}
			switch headers[i] {
			case "Game ID":
				game.GameID = value
			case "Date":
				game.Date = value
			case "Home":
				game.Home = value
			case "Away":
				game.Away = value
			case "Home Score":
				homeScoreRaw = value
			case "Away Score":
				awayScoreRaw = value
			}
		}
		if game.GameID == "" {
			continue
		}
		if homeScoreRaw != "" && awayScoreRaw != "" {
			game.HomeScore, _ = strconv.Atoi(homeScoreRaw)
			game.AwayScore, _ = strconv.Atoi(awayScoreRaw)
			game.Completed = true
		}
		games = append(games, game)
	}

	log.Printf("Parsed %d schedule rows", len(games))
	return games, nil
}

// ParseTeams extracts team metadata from the Teams tab.
func ParseTeams(doc *goquery.Document) ([]TeamRow, error) {
	headers, dataRows, err := tableRows(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing teams table: %w", err)
	}

	var teams []TeamRow
	for _, cells := range dataRows {
		team := TeamRow{}
		for i, value := range cells {
			if i >= len(headers) {
				break
			}
			switch headers[i] {
			case "team":
				team.TeamID = value
			case "League":
				team.League = value
			case "Division":
				team.Division = value
			case "Name":
				team.FullName = value
			}
		}
		if team.TeamID == "" {
			continue
		}
		teams = append(teams, team)
	}

	log.Printf("Parsed %d team rows", len(teams))
	return teams, nil
}

// tableRows splits the first table in the document into a header row and
// trimmed data rows.
func tableRows(doc *goquery.Document) ([]string, [][]string, error) {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, nil, fmt.Errorf("no table found in document")
	}

	var headers []string
	var dataRows [][]string

	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) == 0 {
			return
		}
		if headers == nil {
			headers = cells
			return
		}
		dataRows = append(dataRows, cells)
	})

	if headers == nil {
		return nil, nil, fmt.Errorf("table has no header row")
	}
	return headers, dataRows, nil
}
