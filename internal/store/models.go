package store

import (
	"database/sql"
	"time"
)

// Team is one franchise row from the teams table.
type Team struct {
	TeamID    string         `json:"team_id" db:"team_id"`
	League    string         `json:"league" db:"league"`
	Division  string         `json:"division" db:"division"`
	FullName  sql.NullString `json:"full_name,omitempty" db:"full_name"`
	Venue     sql.NullString `json:"venue,omitempty" db:"venue"`
	IsActive  bool           `json:"is_active" db:"is_active"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}

// ScheduledGame is one row of the season schedule.
type ScheduledGame struct {
	GameID    string        `json:"game_id" db:"game_id"`
	GameDate  string        `json:"game_date" db:"game_date"`
	HomeTeam  string        `json:"home_team" db:"home_team"`
	AwayTeam  string        `json:"away_team" db:"away_team"`
	HomeScore sql.NullInt32 `json:"home_score,omitempty" db:"home_score"`
	AwayScore sql.NullInt32 `json:"away_score,omitempty" db:"away_score"`
	Completed bool          `json:"completed" db:"completed"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" db:"updated_at"`
}

// GamelogRow is one player-appearance row as ingested from the sheet. The
// statistic cells ride along as a JSONB object of name to raw string so a
// blank cell and a zero cell stay distinguishable all the way through.
type GamelogRow struct {
	ID           int            `json:"id" db:"id"`
	GameID       string         `json:"game_id" db:"game_id"`
	PlayerID     string         `json:"player_id" db:"player_id"`
	PlayerName   string         `json:"player_name" db:"player_name"`
	Team         string         `json:"team" db:"team"`
	Position     sql.NullString `json:"position,omitempty" db:"position"`
	BattingOrder sql.NullInt32  `json:"batting_order,omitempty" db:"batting_order"`
	Cells        []byte         `json:"cells" db:"cells"`
	IngestedAt   time.Time      `json:"ingested_at" db:"ingested_at"`
}

// Document is one generated stats document, stored by name for serving and
// for diffing against the next generation run.
type Document struct {
	Name        string    `json:"name" db:"name"`
	Payload     []byte    `json:"payload" db:"payload"`
	GeneratedAt time.Time `json:"generated_at" db:"generated_at"`
}
