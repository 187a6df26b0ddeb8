package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coursestaff/assignment-solver/internal/config"
	"github.com/coursestaff/assignment-solver/pkg/core/solver"
	"github.com/coursestaff/assignment-solver/pkg/db"
)

// SolveTermStore defines the database operations needed to solve a term
type SolveTermStore interface {
	db.TermStore
	ReplaceProposedAssignments(ctx context.Context, termID string, assignments []db.Assignment) error
}

// TermSnapshot holds every record the solver needs for one term
type TermSnapshot struct {
	Term              *db.Term
	Sections          []db.Section
	ProfessorPrefs    []db.ProfessorPreference
	Staff             []db.Staff
	StaffSectionPrefs []db.StaffSectionPreference
	Assignments       []db.Assignment
}

// SolveTermResult represents the result of solving a term
type SolveTermResult struct {
	TermID   string
	TermName string
	Strategy string
	DryRun   bool
	// Saved is true when proposed assignments were written back to the store
	Saved       bool
	Assignments solver.SolverAssignments
	Coverage    []solver.SectionCoverage
	Success     bool

	// Display labels keyed by ID
	SectionLabels map[string]string
	StaffNames    map[string]string
}

// SolveTerm loads a term from the store, runs the named strategy over it and, unless dryRun is set,
// replaces the term's unlocked assignments with the proposal. An empty strategyName uses
// cfg.DefaultStrategy. Locked assignments are never modified.
func SolveTerm(
	ctx context.Context,
	store SolveTermStore,
	cfg *config.Config,
	logger *zap.Logger,
	termID string,
	strategyName string,
	dryRun bool,
) (*SolveTermResult, error) {
	fail := func(err error) (*SolveTermResult, error) {
		return nil, fmt.Errorf("cannot solve term %s: %w", termID, err)
	}

	if strategyName == "" {
		strategyName = cfg.DefaultStrategy
	}

	logger.Debug("Solving term",
		zap.String("term_id", termID),
		zap.String("strategy", strategyName),
		zap.Bool("dry_run", dryRun))

	strategy, err := solver.LookupStrategy(strategyName, cfg.SolverWeights())
	if err != nil {
		return fail(err)
	}

	snapshot, err := LoadTermSnapshot(ctx, store, logger, termID)
	if err != nil {
		return fail(err)
	}

	data := BuildSolverData(snapshot)
	logger.Debug("Built solver input",
		zap.Int("sections", len(data.Sections)),
		zap.Int("staff", len(data.StaffPreferences)))

	outcome, err := solver.Solve(data, strategy)
	if err != nil {
		return fail(err)
	}

	result := &SolveTermResult{
		TermID:        snapshot.Term.ID,
		TermName:      snapshot.Term.Name,
		Strategy:      outcome.Strategy,
		DryRun:        dryRun,
		Assignments:   outcome.Assignments,
		Coverage:      outcome.Coverage,
		Success:       outcome.Success,
		SectionLabels: sectionLabels(snapshot.Sections),
		StaffNames:    staffNames(snapshot.Staff),
	}

	for _, c := range solver.Understaffed(outcome.Coverage) {
		logger.Warn("Section remains understaffed",
			zap.String("section_id", c.SectionID),
			zap.Int("required_hours", c.RequiredHours),
			zap.Int("shortfall", c.Shortfall))
	}

	rows := convertToDBAssignments(data.Sections, outcome.Assignments, time.Now())
	logger.Info("Solved term",
		zap.String("term_id", termID),
		zap.String("strategy", outcome.Strategy),
		zap.Int("proposed", len(rows)),
		zap.Bool("success", outcome.Success))

	if dryRun {
		logger.Info("Dry run, not saving assignments")
		return result, nil
	}

	if err := store.ReplaceProposedAssignments(ctx, termID, rows); err != nil {
		return fail(fmt.Errorf("failed to save assignments: %w", err))
	}
	result.Saved = true

	logger.Debug("Saved proposed assignments", zap.Int("count", len(rows)))

	return result, nil
}

// LoadTermSnapshot fetches the term and all of its solver-relevant records
func LoadTermSnapshot(ctx context.Context, store db.TermStore, logger *zap.Logger, termID string) (*TermSnapshot, error) {
	logger.Debug("Fetching term", zap.String("term_id", termID))
	term, err := store.GetTerm(ctx, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch term: %w", err)
	}

	sections, err := store.GetSections(ctx, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sections: %w", err)
	}

	profPrefs, err := store.GetProfessorPreferences(ctx, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professor preferences: %w", err)
	}

	staff, err := store.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	staffPrefs, err := store.GetStaffSectionPreferences(ctx, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff preferences: %w", err)
	}

	assignments, err := store.GetAssignments(ctx, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	logger.Debug("Fetched term snapshot",
		zap.Int("sections", len(sections)),
		zap.Int("professor_preferences", len(profPrefs)),
		zap.Int("staff", len(staff)),
		zap.Int("staff_preferences", len(staffPrefs)),
		zap.Int("assignments", len(assignments)))

	return &TermSnapshot{
		Term:              term,
		Sections:          sections,
		ProfessorPrefs:    profPrefs,
		Staff:             staff,
		StaffSectionPrefs: staffPrefs,
		Assignments:       assignments,
	}, nil
}

// BuildSolverData converts a term snapshot into solver input.
// Sections keep the snapshot order. Staff are included when they declared anything for the term
// or hold a locked assignment, and are sorted by ID. Unlocked assignments are carried through so the
// solver sees them, but they are replaced when the proposal is saved.
func BuildSolverData(snapshot *TermSnapshot) solver.SolverData {
	existing := make(map[string][]solver.ExistingAssignment)
	lockedStaff := make(map[string]bool)
	for _, a := range snapshot.Assignments {
		existing[a.SectionID] = append(existing[a.SectionID], solver.ExistingAssignment{
			StaffID: a.StaffID,
			Locked:  a.Locked,
		})
		if a.Locked {
			lockedStaff[a.StaffID] = true
		}
	}

	avoided := make(map[string][]string)
	preferred := make(map[string][]string)
	for _, p := range snapshot.ProfessorPrefs {
		switch p.Kind {
		case db.ProfessorAvoid:
			avoided[p.SectionID] = append(avoided[p.SectionID], p.StaffID)
		case db.ProfessorPrefer:
			preferred[p.SectionID] = append(preferred[p.SectionID], p.StaffID)
		}
	}

	sections := make([]solver.Section, 0, len(snapshot.Sections))
	for _, s := range snapshot.Sections {
		sections = append(sections, solver.Section{
			ID:                         s.ID,
			RequiredHours:              s.RequiredHours,
			ExistingAssignments:        existing[s.ID],
			ProfessorAvoidedStaffIDs:   avoided[s.ID],
			ProfessorPreferredStaffIDs: preferred[s.ID],
		})
	}

	declared := make(map[string][]db.StaffSectionPreference)
	for _, p := range snapshot.StaffSectionPrefs {
		declared[p.StaffID] = append(declared[p.StaffID], p)
	}

	staff := make([]db.Staff, len(snapshot.Staff))
	copy(staff, snapshot.Staff)
	sort.Slice(staff, func(i, j int) bool { return staff[i].ID < staff[j].ID })

	var prefs []solver.StaffPreference
	for _, member := range staff {
		rows, hasRows := declared[member.ID]
		if !hasRows && !lockedStaff[member.ID] {
			continue
		}

		pref := solver.StaffPreference{
			StaffID:    member.ID,
			StaffHours: member.Hours,
		}
		for _, row := range rows {
			if row.Qualified {
				pref.QualifiedSectionIDs = append(pref.QualifiedSectionIDs, row.SectionID)
			}
			if row.Rank != "" {
				pref.PreferredSections = append(pref.PreferredSections, solver.SectionPreference{
					SectionID: row.SectionID,
					Rank:      solver.Rank(row.Rank),
				})
			}
		}
		prefs = append(prefs, pref)
	}

	return solver.SolverData{
		Sections:         sections,
		StaffPreferences: prefs,
	}
}

// convertToDBAssignments turns a proposal into unlocked assignment rows, in section order
func convertToDBAssignments(sections []solver.Section, assignments solver.SolverAssignments, now time.Time) []db.Assignment {
	var rows []db.Assignment
	for _, section := range sections {
		for _, staffID := range assignments[section.ID] {
			rows = append(rows, db.Assignment{
				ID:        uuid.New().String(),
				SectionID: section.ID,
				StaffID:   staffID,
				Locked:    false,
				CreatedAt: now,
			})
		}
	}
	return rows
}

func sectionLabels(sections []db.Section) map[string]string {
	labels := make(map[string]string, len(sections))
	for _, s := range sections {
		labels[s.ID] = fmt.Sprintf("%s-%s", s.CourseCode, s.SectionNumber)
	}
	return labels
}

func staffNames(staff []db.Staff) map[string]string {
	names := make(map[string]string, len(staff))
	for _, s := range staff {
		names[s.ID] = fmt.Sprintf("%s %s (%s)", s.FirstName, s.LastName, s.Role)
	}
	return names
}
