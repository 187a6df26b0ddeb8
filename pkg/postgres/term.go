package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coursestaff/assignment-solver/pkg/db"
)

// GetTerm retrieves a single term, returning db.ErrNotFound if it does not exist
func (d *DB) GetTerm(ctx context.Context, termID string) (*db.Term, error) {
	var t db.Term
	err := d.pool.QueryRow(ctx, `
		SELECT id, name
		FROM term
		WHERE id = $1
	`, termID).Scan(&t.ID, &t.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("term %s: %w", termID, db.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query term: %w", err)
	}

	return &t, nil
}
