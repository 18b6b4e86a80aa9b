package ingest

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/PuerkitoBio/goquery"
	"github.com/fortuna/scorebook/internal/ingest/sheets"
	"github.com/fortuna/scorebook/internal/publisher"
	"github.com/fortuna/scorebook/internal/store"
	"github.com/fortuna/scorebook/internal/store/repository"
)

// TabURLs locates the published spreadsheet tabs to ingest.
type TabURLs struct {
	Gamelog  string
	Schedule string
	Teams    string
}

// Ingester pulls the published spreadsheet into the store: teams first, then
// the schedule, then the game log grouped per game.
type Ingester struct {
	client       *sheets.Client
	tabs         TabURLs
	gamelogRepo  *repository.GamelogRepository
	scheduleRepo *repository.ScheduleRepository
	teamRepo     *repository.TeamRepository
	publisher    *publisher.RedisStreamPublisher
}

// NewIngester creates a new spreadsheet ingester. The publisher is optional;
// nil disables ingest events.
func NewIngester(tabs TabURLs, db *store.Database, pub *publisher.RedisStreamPublisher) (*Ingester, error) {
	client, err := sheets.NewClient()
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}

	return &Ingester{
		client:       client,
		tabs:         tabs,
		gamelogRepo:  repository.NewGamelogRepository(db),
		scheduleRepo: repository.NewScheduleRepository(db),
		teamRepo:     repository.NewTeamRepository(db),
		publisher:    pub,
	}, nil
}

// Close releases resources
func (in *Ingester) Close() {
	if in.client != nil {
		in.client.Close()
	}
}

// IngestSeason fetches and stores all three tabs.
func (in *Ingester) IngestSeason(ctx context.Context) error {
	log.Println("Ingesting season from published spreadsheet...")

	if err := in.ingestTeams(ctx); err != nil {
		return fmt.Errorf("ingesting teams: %w", err)
	}
	if err := in.ingestSchedule(ctx); err != nil {
		return fmt.Errorf("ingesting schedule: %w", err)
	}
	if err := in.ingestGamelog(ctx); err != nil {
		return fmt.Errorf("ingesting gamelog: %w", err)
	}

	log.Println("✓ Season ingestion complete")
	return nil
}

func (in *Ingester) ingestTeams(ctx context.Context) error {
	doc, err := in.fetchTab(ctx, in.tabs.Teams)
	if err != nil {
		return err
	}

	teams, err := sheets.ParseTeams(doc)
	if err != nil {
		return err
	}

	for _, team := range teams {
		record := &store.Team{
			TeamID:   team.TeamID,
			League:   team.League,
			Division: team.Division,
			FullName: sql.NullString{String: team.FullName, Valid: team.FullName != ""},
		}
		if err := in.teamRepo.Upsert(ctx, record); err != nil {
			return err
		}
	}

	log.Printf("✓ Ingested %d teams", len(teams))
	return nil
}

func (in *Ingester) ingestSchedule(ctx context.Context) error {
	doc, err := in.fetchTab(ctx, in.tabs.Schedule)
	if err != nil {
		return err
	}

	games, err := sheets.ParseSchedule(doc)
	if err != nil {
		return err
	}

	for _, game := range games {
		record := &store.ScheduledGame{
			GameID:    game.GameID,
			GameDate:  game.Date,
			HomeTeam:  game.Home,
			AwayTeam:  game.Away,
			Completed: game.Completed,
		}
		if game.Completed {
			record.HomeScore = sql.NullInt32{Int32: int32(game.HomeScore), Valid: true}
			record.AwayScore = sql.NullInt32{Int32: int32(game.AwayScore), Valid: true}
		}
		if err := in.scheduleRepo.Upsert(ctx, record); err != nil {
			return err
		}
	}

	log.Printf("✓ Ingested %d scheduled games", len(games))
	return nil
}

func (in *Ingester) ingestGamelog(ctx context.Context) error {
	doc, err := in.fetchTab(ctx, in.tabs.Gamelog)
	if err != nil {
		return err
	}

	rows, err := sheets.ParseGamelog(doc)
	if err != nil {
		return err
	}

	// Group per game so each game's rows land atomically.
	byGame := make(map[string][]*store.GamelogRow)
	var gameOrder []string
	for _, row := range rows {
		record, err := gamelogRecord(row)
		if err != nil {
			return err
		}
		if _, ok := byGame[row.GameID]; !ok {
			gameOrder = append(gameOrder, row.GameID)
		}
		byGame[row.GameID] = append(byGame[row.GameID], record)
	}

	for _, gameID := range gameOrder {
		gameRows := byGame[gameID]
		if err := in.gamelogRepo.ReplaceGame(ctx, gameID, gameRows); err != nil {
			return err
		}
		if in.publisher != nil {
			event := publisher.IngestEvent{GameID: gameID, Rows: len(gameRows)}
			if err := in.publisher.PublishIngest(ctx, event); err != nil {
				log.Printf("Warning: failed to publish ingest event for %s: %v", gameID, err)
			}
		}
	}

	log.Printf("✓ Ingested %d gamelog rows across %d games", len(rows), len(gameOrder))
	return nil
}

func (in *Ingester) fetchTab(ctx context.Context, url string) (*goquery.Document, error) {
	html, err := in.client.FetchTab(ctx, url)
	if err != nil {
		return nil, err
	}
	return sheets.ParseHTML(html)
}

func gamelogRecord(row sheets.GamelogRow) (*store.GamelogRow, error) {
	cells, err := json.Marshal(row.Cells)
	if err != nil {
		return nil, fmt.Errorf("encoding cells for %s: %w", row.PlayerID, err)
	}
	return &store.GamelogRow{
		GameID:       row.GameID,
		PlayerID:     row.PlayerID,
		PlayerName:   row.PlayerName,
		Team:         row.Team,
		Position:     sql.NullString{String: row.Position, Valid: row.Position != ""},
		BattingOrder: sql.NullInt32{Int32: int32(row.BattingOrder), Valid: row.BattingOrder > 0},
		Cells:        cells,
	}, nil
}
