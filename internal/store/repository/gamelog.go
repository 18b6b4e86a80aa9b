package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/scorebook/internal/store"
)

// GamelogRepository handles appearance-row data access
type GamelogRepository struct {
	db *store.Database
}

// NewGamelogRepository creates a new gamelog repository
func NewGamelogRepository(db *store.Database) *GamelogRepository {
	return &GamelogRepository{db: db}
}

// GetAll returns every ingested appearance row in ingestion order
func (r *GamelogRepository) GetAll(ctx context.Context) ([]*store.GamelogRow, error) {
	query := `
		SELECT id, game_id, player_id, player_name, team, position,
			batting_order, cells, ingested_at
		FROM gamelog
		ORDER BY id
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying gamelog: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// GetByGame returns a single game's appearance rows
func (r *GamelogRepository) GetByGame(ctx context.Context, gameID string) ([]*store.GamelogRow, error) {
	query := `
		SELECT id, game_id, player_id, player_name, team, position,
			batting_order, cells, ingested_at
		FROM gamelog
		WHERE game_id = $1
		ORDER BY id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("querying gamelog for game %s: %w", gameID, err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// GetByPlayer returns one player's appearance rows across the season
func (r *GamelogRepository) GetByPlayer(ctx context.Context, playerID string) ([]*store.GamelogRow, error) {
	query := `
		SELECT id, game_id, player_id, player_name, team, position,
			batting_order, cells, ingested_at
		FROM gamelog
		WHERE player_id = $1
		ORDER BY id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("querying gamelog for player %s: %w", playerID, err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// ReplaceGame swaps one game's rows for a fresh set in a single transaction,
// so a re-ingested game never leaves a partial mix of old and new rows.
func (r *GamelogRepository) ReplaceGame(ctx context.Context, gameID string, gameRows []*store.GamelogRow) error {
	tx, err := r.db.DB().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning gamelog transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM gamelog WHERE game_id = $1", gameID); err != nil {
		return fmt.Errorf("clearing gamelog for game %s: %w", gameID, err)
	}

	query := `
		INSERT INTO gamelog (game_id, player_id, player_name, team, position,
			batting_order, cells)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, row := range gameRows {
		_, err := tx.ExecContext(ctx, query,
			row.GameID, row.PlayerID, row.PlayerName, row.Team,
			row.Position, row.BattingOrder, row.Cells,
		)
		if err != nil {
			return fmt.Errorf("inserting gamelog row for %s: %w", row.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing gamelog for game %s: %w", gameID, err)
	}
	return nil
}

func (r *GamelogRepository) scanRows(rows *sql.Rows) ([]*store.GamelogRow, error) {
	var out []*store.GamelogRow
	for rows.Next() {
		row := &store.GamelogRow{}
		err := rows.Scan(
			&row.ID, &row.GameID, &row.PlayerID, &row.PlayerName, &row.Team,
			&row.Position, &row.BattingOrder, &row.Cells, &row.IngestedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning gamelog row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
