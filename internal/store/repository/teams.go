package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/scorebook/internal/store"
)

// TeamRepository handles team data access
type TeamRepository struct {
	db *store.Database
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *store.Database) *TeamRepository {
	return &TeamRepository{db: db}
}

// GetAll returns all active teams
func (r *TeamRepository) GetAll(ctx context.Context) ([]*store.Team, error) {
	query := `
		SELECT team_id, league, division, full_name, venue, is_active,
			created_at, updated_at
		FROM teams
		WHERE is_active = true
		ORDER BY league, division, team_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	var teams []*store.Team
	for rows.Next() {
		team := &store.Team{}
		err := rows.Scan(
			&team.TeamID, &team.League, &team.Division, &team.FullName,
			&team.Venue, &team.IsActive, &team.CreatedAt, &team.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

// GetByID finds a team by its code (e.g. "NYY", "BOS")
func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (*store.Team, error) {
	query := `
		SELECT team_id, league, division, full_name, venue, is_active,
			created_at, updated_at
		FROM teams
		WHERE team_id = $1
	`

	team := &store.Team{}
	err := r.db.DB().QueryRowContext(ctx, query, teamID).Scan(
		&team.TeamID, &team.League, &team.Division, &team.FullName,
		&team.Venue, &team.IsActive, &team.CreatedAt, &team.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("team not found: %s", teamID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return team, nil
}

// GetByDivision returns all teams in one league division
func (r *TeamRepository) GetByDivision(ctx context.Context, league, division string) ([]*store.Team, error) {
	query := `
		SELECT team_id, league, division, full_name, venue, is_active,
			created_at, updated_at
		FROM teams
		WHERE league = $1 AND division = $2 AND is_active = true
		ORDER BY team_id
	`

	rows, err := r.db.DB().QueryContext(ctx, query, league, division)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	var teams []*store.Team
	for rows.Next() {
		team := &store.Team{}
		err := rows.Scan(
			&team.TeamID, &team.League, &team.Division, &team.FullName,
			&team.Venue, &team.IsActive, &team.CreatedAt, &team.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

// Upsert inserts or refreshes one team row.
func (r *TeamRepository) Upsert(ctx context.Context, team *store.Team) error {
	query := `
		INSERT INTO teams (team_id, league, division, full_name, venue, is_active)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (team_id) DO UPDATE SET
			league = EXCLUDED.league,
			division = EXCLUDED.division,
			full_name = EXCLUDED.full_name,
			venue = EXCLUDED.venue,
			updated_at = NOW()
	`

	_, err := r.db.DB().ExecContext(ctx, query,
		team.TeamID, team.League, team.Division, team.FullName, team.Venue,
	)
	if err != nil {
		return fmt.Errorf("upserting team %s: %w", team.TeamID, err)
	}
	return nil
}
