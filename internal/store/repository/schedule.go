package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/scorebook/internal/store"
)

// ScheduleRepository handles schedule data access
type ScheduleRepository struct {
	db *store.Database
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *store.Database) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// GetAll returns the full season schedule in date order
func (r *ScheduleRepository) GetAll(ctx context.Context) ([]*store.ScheduledGame, error) {
	query := `
		SELECT game_id, game_date, home_team, away_team, home_score, away_score,
			completed, created_at, updated_at
		FROM schedule
		ORDER BY game_date, game_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying schedule: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// GetByID finds a scheduled game by its game id
func (r *ScheduleRepository) GetByID(ctx context.Context, gameID string) (*store.ScheduledGame, error) {
	query := `
		SELECT game_id, game_date, home_team, away_team, home_score, away_score,
			completed, created_at, updated_at
		FROM schedule
		WHERE game_id = $1
	`

	game := &store.ScheduledGame{}
	err := r.db.DB().QueryRowContext(ctx, query, gameID).Scan(
		&game.GameID, &game.GameDate, &game.HomeTeam, &game.AwayTeam,
		&game.HomeScore, &game.AwayScore, &game.Completed,
		&game.CreatedAt, &game.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game not found: %s", gameID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying game: %w", err)
	}

	return game, nil
}

// GetCompleted returns only games that have been played
func (r *ScheduleRepository) GetCompleted(ctx context.Context) ([]*store.ScheduledGame, error) {
	query := `
		SELECT game_id, game_date, home_team, away_team, home_score, away_score,
			completed, created_at, updated_at
		FROM schedule
		WHERE completed = true
		ORDER BY game_date, game_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying completed games: %w", err)
	}
	defer rows.Close()

	return r.scanGames(rows)
}

// Upsert inserts or refreshes one schedule row.
func (r *ScheduleRepository) Upsert(ctx context.Context, game *store.ScheduledGame) error {
	query := `
		INSERT INTO schedule (game_id, game_date, home_team, away_team,
			home_score, away_score, completed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (game_id) DO UPDATE SET
			game_date = EXCLUDED.game_date,
			home_team = EXCLUDED.home_team,
			away_team = EXCLUDED.away_team,
			home_score = EXCLUDED.home_score,
			away_score = EXCLUDED.away_score,
			completed = EXCLUDED.completed,
			updated_at = NOW()
	`

	_, err := r.db.DB().ExecContext(ctx, query,
		game.GameID, game.GameDate, game.HomeTeam, game.AwayTeam,
		game.HomeScore, game.AwayScore, game.Completed,
	)
	if err != nil {
		return fmt.Errorf("upserting game %s: %w", game.GameID, err)
	}
	return nil
}

func (r *ScheduleRepository) scanGames(rows *sql.Rows) ([]*store.ScheduledGame, error) {
	var games []*store.ScheduledGame
	for rows.Next() {
		game := &store.ScheduledGame{}
		err := rows.Scan(
			&game.GameID, &game.GameDate, &game.HomeTeam, &game.AwayTeam,
			&game.HomeScore, &game.AwayScore, &game.Completed,
			&game.CreatedAt, &game.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning game: %w", err)
		}
		games = append(games, game)
	}
	return games, rows.Err()
}
