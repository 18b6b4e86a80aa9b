package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/scorebook/internal/store"
)

// DocumentRepository handles generated-document persistence
type DocumentRepository struct {
	db *store.Database
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *store.Database) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Get returns one generated document by name (e.g. "batting", "standings")
func (r *DocumentRepository) Get(ctx context.Context, name string) (*store.Document, error) {
	query := `
		SELECT name, payload, generated_at
		FROM documents
		WHERE name = $1
	`

	doc := &store.Document{}
	err := r.db.DB().QueryRowContext(ctx, query, name).Scan(
		&doc.Name, &doc.Payload, &doc.GeneratedAt,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("document not found: %s", name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying document %s: %w", name, err)
	}

	return doc, nil
}

// List returns the names of all stored documents
func (r *DocumentRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.DB().QueryContext(ctx, "SELECT name FROM documents ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning document name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Put stores one generated document, replacing any previous generation.
func (r *DocumentRepository) Put(ctx context.Context, name string, payload []byte) error {
	query := `
		INSERT INTO documents (name, payload, generated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET
			payload = EXCLUDED.payload,
			generated_at = NOW()
	`

	_, err := r.db.DB().ExecContext(ctx, query, name, payload)
	if err != nil {
		return fmt.Errorf("storing document %s: %w", name, err)
	}
	return nil
}
