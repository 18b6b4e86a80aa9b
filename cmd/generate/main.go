package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fortuna/scorebook/internal/engine"
	"github.com/fortuna/scorebook/internal/service"
	"github.com/fortuna/scorebook/internal/store"
)

// generate runs the season stats pipeline once. With a postgres DSN it loads
// the season from the store and persists the documents; with CSV inputs it
// runs fully offline and only writes files.
func main() {
	var (
		dsn         = flag.String("dsn", os.Getenv("POSTGRES_DSN"), "postgres DSN; omit for CSV mode")
		gamelogCSV  = flag.String("gamelog", "", "gamelog CSV file for offline mode")
		scheduleCSV = flag.String("schedule", "", "schedule CSV file for offline mode")
		teamsCSV    = flag.String("teams", "", "teams CSV file for offline mode")
		outDir      = flag.String("out", "out", "directory to write JSON documents to")
	)
	flag.Parse()

	ctx := context.Background()

	var out *engine.Output
	var err error
	switch {
	case *gamelogCSV != "":
		out, err = generateFromCSV(*gamelogCSV, *scheduleCSV, *teamsCSV)
	case *dsn != "":
		out, err = generateFromStore(ctx, *dsn)
	default:
		log.Fatal("either -dsn or -gamelog must be given")
	}
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	if err := writeDocuments(*outDir, out); err != nil {
		log.Fatalf("Failed to write documents: %v", err)
	}

	log.Printf("✓ Wrote %d documents to %s (%d games, %d players)",
		len(service.DocumentNames), *outDir, len(out.Boxscores), len(out.Players))
}

func generateFromStore(ctx context.Context, dsn string) (*engine.Output, error) {
	db, err := store.NewDatabase(dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	// Cache and publisher are service-mode concerns; the batch run skips them.
	svc := service.NewGenerationService(db, nil, nil)
	return svc.Generate(ctx)
}

func generateFromCSV(gamelogPath, schedulePath, teamsPath string) (*engine.Output, error) {
	input := engine.Input{}

	rows, err := readGamelogCSV(gamelogPath)
	if err != nil {
		return nil, fmt.Errorf("reading gamelog: %w", err)
	}
	input.Rows = rows

	if schedulePath != "" {
		schedule, err := readScheduleCSV(schedulePath)
		if err != nil {
			return nil, fmt.Errorf("reading schedule: %w", err)
		}
		input.Schedule = schedule
	}
	if teamsPath != "" {
		teams, err := readTeamsCSV(teamsPath)
		if err != nil {
			return nil, fmt.Errorf("reading teams: %w", err)
		}
		input.Teams = teams
	}

	return engine.Convert(input), nil
}

// readGamelogCSV reads appearance rows from a CSV export of the gamelog tab.
// The header row names the columns; identity columns are split out and the
// rest become statistic cells.
func readGamelogCSV(path string) ([]engine.AppearanceRow, error) {
	headers, records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	var rows []engine.AppearanceRow
	for _, record := range records {
		row := engine.AppearanceRow{Cells: make(map[string]string)}
		for i, value := range record {
			if i >= len(headers) {
				break
			}
			switch headers[i] {
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
					row.Cells[headers[i]] = value
				}
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readScheduleCSV(path string) ([]engine.ScheduleGame, error) {
	headers, records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	var games []engine.ScheduleGame
	for _, record := range records {
		game := engine.ScheduleGame{}
		var homeScore, awayScore string
		for i, value := range record {
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
				homeScore = value
			case "Away Score":
				awayScore = value
			}
		}
		if game.GameID == "" {
			continue
		}
		if homeScore != "" && awayScore != "" {
			game.HomeScore, _ = strconv.Atoi(homeScore)
			game.AwayScore, _ = strconv.Atoi(awayScore)
			game.Completed = true
		}
		games = append(games, game)
	}
	return games, nil
}

func readTeamsCSV(path string) ([]engine.TeamInfo, error) {
	headers, records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	var teams []engine.TeamInfo
	for _, record := range records {
		team := engine.TeamInfo{}
		for i, value := range record {
			if i >= len(headers) {
				break
			}
			switch headers[i] {
			case "team":
				team.ID = value
			case "League":
				team.League = value
			case "Division":
				team.Division = value
			}
		}
		if team.ID != "" {
			teams = append(teams, team)
		}
	}
	return teams, nil
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s is empty", path)
	}
	return records[0], records[1:], nil
}

func writeDocuments(dir string, out *engine.Output) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	documents := map[string]any{
		"batting":          out.Batting,
		"pitching":         out.Pitching,
		"fielding":         out.Fielding,
		"standings":        out.Standings,
		"schedule":         out.Schedule,
		"boxscores":        out.Boxscores,
		"players_combined": out.Players,
		"teams":            out.TeamDocs,
	}

	for _, name := range service.DocumentNames {
		payload, err := json.MarshalIndent(documents[name], "", "  ")
		if err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}
		path := filepath.Join(dir, name+".json")
		if err := os.WriteFile(path, payload, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
