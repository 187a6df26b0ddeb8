package postgres

import (
	"context"
	"fmt"

	"github.com/coursestaff/assignment-solver/pkg/db"
)

// GetSections retrieves all sections of a term, ordered by course code and section number
func (d *DB) GetSections(ctx context.Context, termID string) ([]db.Section, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, term_id, course_code, section_number, required_hours
		FROM section
		WHERE term_id = $1
		ORDER BY course_code, section_number, id
	`, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer rows.Close()

	var sections []db.Section
	for rows.Next() {
		var s db.Section
		if err := rows.Scan(&s.ID, &s.TermID, &s.CourseCode, &s.SectionNumber, &s.RequiredHours); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sections: %w", err)
	}

	return sections, nil
}

// GetProfessorPreferences retrieves the avoid and prefer entries for every section of a term
func (d *DB) GetProfessorPreferences(ctx context.Context, termID string) ([]db.ProfessorPreference, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT p.section_id, p.staff_id, p.kind
		FROM professor_staff_preference p
		JOIN section s ON s.id = p.section_id
		WHERE s.term_id = $1
		ORDER BY p.section_id, p.kind, p.staff_id
	`, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to query professor preferences: %w", err)
	}
	defer rows.Close()

	var prefs []db.ProfessorPreference
	for rows.Next() {
		var p db.ProfessorPreference
		var kind string
		if err := rows.Scan(&p.SectionID, &p.StaffID, &kind); err != nil {
			return nil, fmt.Errorf("failed to scan professor preference: %w", err)
		}
		p.Kind = db.ProfessorPreferenceKind(kind)
		prefs = append(prefs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating professor preferences: %w", err)
	}

	return prefs, nil
}
