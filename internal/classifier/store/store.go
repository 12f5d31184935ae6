// Package store persists user-defined classification overrides: narration
// patterns mapped to a category (and optionally a mode). Overrides are
// consulted before the built-in keyword table.
package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Find returns the override for the narration, preferring the longest
// matching pattern. Empty strings mean no override.
func (s *Store) Find(ctx context.Context, description string) (string, string, error) {
	query := `
		SELECT category, COALESCE(mode, '')
		FROM classification_overrides
		WHERE $1 ILIKE '%' || pattern || '%'
		ORDER BY LENGTH(pattern) DESC, created_at DESC
		LIMIT 1
	`

	var category, mode string

	err := s.db.QueryRowContext(ctx, query, description).Scan(&category, &mode)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", "", nil
		}

		return "", "", fmt.Errorf("finding override: %w", err)
	}

	return category, mode, nil
}

// Save remembers a new pattern-to-category mapping.
func (s *Store) Save(ctx context.Context, pattern, category, mode string) error {
	query := `
		INSERT INTO classification_overrides (pattern, category, mode, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NOW())
	`

	_, err := s.db.ExecContext(ctx, query, pattern, category, mode)
	if err != nil {
		return fmt.Errorf("saving override: %w", err)
	}

	return nil
}
