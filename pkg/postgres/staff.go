package postgres

import (
	"context"
	"fmt"

	"github.com/coursestaff/assignment-solver/pkg/db"
)

// GetStaff retrieves all staff records
func (d *DB) GetStaff(ctx context.Context) ([]db.Staff, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, role, hours
		FROM staff
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var staff []db.Staff
	for rows.Next() {
		var s db.Staff
		var role string
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &role, &s.Hours); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		s.Role = db.StaffRole(role)
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}

	return staff, nil
}

// GetStaffSectionPreferences retrieves every staff qualification and rank declared for a term
func (d *DB) GetStaffSectionPreferences(ctx context.Context, termID string) ([]db.StaffSectionPreference, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT term_id, staff_id, section_id, qualified, rank
		FROM staff_section_preference
		WHERE term_id = $1
		ORDER BY staff_id, section_id
	`, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff section preferences: %w", err)
	}
	defer rows.Close()

	var prefs []db.StaffSectionPreference
	for rows.Next() {
		var p db.StaffSectionPreference
		var rank *string
		if err := rows.Scan(&p.TermID, &p.StaffID, &p.SectionID, &p.Qualified, &rank); err != nil {
			return nil, fmt.Errorf("failed to scan staff section preference: %w", err)
		}
		if rank != nil {
			p.Rank = *rank
		}
		prefs = append(prefs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff section preferences: %w", err)
	}

	return prefs, nil
}
