package db

import "context"

// TermStore defines the read operations needed to build a solver snapshot for a term
type TermStore interface {
	GetTerm(ctx context.Context, termID string) (*Term, error)
	GetSections(ctx context.Context, termID string) ([]Section, error)
	GetProfessorPreferences(ctx context.Context, termID string) ([]ProfessorPreference, error)
	GetStaff(ctx context.Context) ([]Staff, error)
	GetStaffSectionPreferences(ctx context.Context, termID string) ([]StaffSectionPreference, error)
	GetAssignments(ctx context.Context, termID string) ([]Assignment, error)
}

// Database defines the interface for all database operations.
// postgres.DB implements this interface.
type Database interface {
	TermStore

	// ReplaceProposedAssignments deletes the term's unlocked assignments and inserts
	// the given ones in a single transaction. Locked assignments are never touched.
	ReplaceProposedAssignments(ctx context.Context, termID string, assignments []Assignment) error
}
