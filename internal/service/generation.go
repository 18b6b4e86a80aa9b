package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/fortuna/scorebook/internal/cache"
	"github.com/fortuna/scorebook/internal/engine"
	"github.com/fortuna/scorebook/internal/publisher"
	"github.com/fortuna/scorebook/internal/store"
	"github.com/fortuna/scorebook/internal/store/repository"
)

// Document names under which generation output is stored and cached.
var DocumentNames = []string{
	"batting", "pitching", "fielding", "standings",
	"schedule", "boxscores", "players_combined", "teams",
}

const documentCacheTTL = 15 * time.Minute

// GenerationService runs the season stats pipeline: load the gamelog,
// convert it, persist the output documents, refresh the cache, and announce
// the run on the stats stream.
type GenerationService struct {
	gamelogRepo  *repository.GamelogRepository
	scheduleRepo *repository.ScheduleRepository
	teamRepo     *repository.TeamRepository
	docRepo      *repository.DocumentRepository
	cache        *cache.RedisCache
	publisher    *publisher.RedisStreamPublisher
}

// NewGenerationService creates a new generation service. Cache and publisher
// are optional; a nil value disables that side effect.
func NewGenerationService(db *store.Database, c *cache.RedisCache, p *publisher.RedisStreamPublisher) *GenerationService {
	return &GenerationService{
		gamelogRepo:  repository.NewGamelogRepository(db),
		scheduleRepo: repository.NewScheduleRepository(db),
		teamRepo:     repository.NewTeamRepository(db),
		docRepo:      repository.NewDocumentRepository(db),
		cache:        c,
		publisher:    p,
	}
}

// Generate runs one full conversion and returns the engine output after
// persisting and caching every document.
func (s *GenerationService) Generate(ctx context.Context) (*engine.Output, error) {
	input, err := s.loadInput(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading generation input: %w", err)
	}

	out := engine.Convert(*input)

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

	for _, name := range DocumentNames {
		payload, err := json.Marshal(documents[name])
		if err != nil {
			return nil, fmt.Errorf("encoding %s document: %w", name, err)
		}
		if err := s.docRepo.Put(ctx, name, payload); err != nil {
			return nil, fmt.Errorf("storing %s document: %w", name, err)
		}
		if s.cache != nil {
			if err := s.cache.SetDocument(ctx, name, payload, documentCacheTTL); err != nil {
				log.Printf("Warning: failed to cache %s document: %v", name, err)
			}
		}
	}

	if s.publisher != nil {
		event := publisher.GenerationEvent{
			Documents: DocumentNames,
			Games:     len(out.Boxscores),
			Players:   len(out.Players),
		}
		if err := s.publisher.PublishGeneration(ctx, event); err != nil {
			log.Printf("Warning: failed to publish generation event: %v", err)
		}
	}

	log.Printf("Generated %d documents (%d games, %d players)",
		len(DocumentNames), len(out.Boxscores), len(out.Players))
	return out, nil
}

// Document returns one generated document payload, from cache when warm and
// from the store otherwise.
func (s *GenerationService) Document(ctx context.Context, name string) ([]byte, error) {
	if !validDocumentName(name) {
		return nil, fmt.Errorf("unknown document: %s", name)
	}

	if s.cache != nil {
		if payload, err := s.cache.GetDocument(ctx, name); err == nil {
			return payload, nil
		}
	}

	doc, err := s.docRepo.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetDocument(ctx, name, doc.Payload, documentCacheTTL); err != nil {
			log.Printf("Warning: failed to refill %s cache: %v", name, err)
		}
	}
	return doc.Payload, nil
}

func validDocumentName(name string) bool {
	for _, n := range DocumentNames {
		if n == name {
			return true
		}
	}
	return false
}

func (s *GenerationService) loadInput(ctx context.Context) (*engine.Input, error) {
	gamelog, err := s.gamelogRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching gamelog: %w", err)
	}
	schedule, err := s.scheduleRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}
	teams, err := s.teamRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}

	input := &engine.Input{}
	for _, row := range gamelog {
		appearance, err := appearanceFromRow(row)
		if err != nil {
			return nil, err
		}
		input.Rows = append(input.Rows, appearance)
	}
	for _, game := range schedule {
		input.Schedule = append(input.Schedule, scheduleFromRow(game))
	}
	for _, team := range teams {
		input.Teams = append(input.Teams, engine.TeamInfo{
			ID:       team.TeamID,
			League:   team.League,
			Division: team.Division,
		})
	}
	return input, nil
}

func appearanceFromRow(row *store.GamelogRow) (engine.AppearanceRow, error) {
	cells := make(map[string]string)
	if len(row.Cells) > 0 {
		if err := json.Unmarshal(row.Cells, &cells); err != nil {
			return engine.AppearanceRow{}, fmt.Errorf("decoding cells for row %d: %w", row.ID, err)
		}
	}
	return engine.AppearanceRow{
		GameID:       row.GameID,
		PlayerID:     row.PlayerID,
		PlayerName:   row.PlayerName,
		Team:         row.Team,
		Position:     row.Position.String,
		BattingOrder: int(row.BattingOrder.Int32),
		Cells:        cells,
	}, nil
}

func scheduleFromRow(game *store.ScheduledGame) engine.ScheduleGame {
	return engine.ScheduleGame{
		GameID:    game.GameID,
		Date:      game.GameDate,
		Home:      game.HomeTeam,
		Away:      game.AwayTeam,
		HomeScore: int(game.HomeScore.Int32),
		AwayScore: int(game.AwayScore.Int32),
		Completed: game.Completed,
	}
}
