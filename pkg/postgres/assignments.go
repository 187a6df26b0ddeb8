package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/coursestaff/assignment-solver/pkg/db"
)

// GetAssignments retrieves all assignments (locked and proposed) for sections of a term
func (d *DB) GetAssignments(ctx context.Context, termID string) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT a.id, a.section_id, a.staff_id, a.locked, a.created_at
		FROM assignment a
		JOIN section s ON s.id = a.section_id
		WHERE s.term_id = $1
		ORDER BY a.section_id, a.created_at, a.id
	`, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		if err := rows.Scan(&a.ID, &a.SectionID, &a.StaffID, &a.Locked, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// ReplaceProposedAssignments swaps the term's unlocked assignments for the given ones
// in a single transaction. Locked assignments are left untouched.
func (d *DB) ReplaceProposedAssignments(ctx context.Context, termID string, assignments []db.Assignment) error {
	return d.withTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			DELETE FROM assignment a
			USING section s
			WHERE s.id = a.section_id
			  AND s.term_id = $1
			  AND a.locked = FALSE
		`, termID)
		if err != nil {
			return fmt.Errorf("failed to delete proposed assignments: %w", err)
		}

		if len(assignments) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, a := range assignments {
			if a.Locked {
				return fmt.Errorf("refusing to write locked assignment %s for staff %s", a.ID, a.StaffID)
			}
			batch.Queue(`
				INSERT INTO assignment (id, section_id, staff_id, locked, created_at)
				VALUES ($1, $2, $3, FALSE, $4)
			`, a.ID, a.SectionID, a.StaffID, a.CreatedAt)
		}

		results := tx.SendBatch(ctx, batch)
		for range assignments {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to insert assignment: %w", err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to insert assignments: %w", err)
		}

		return nil
	})
}
