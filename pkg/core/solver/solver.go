package solver

// Outcome is the result of one solver run
type Outcome struct {
	// Strategy is the name of the strategy used
	Strategy string `json:"strategy" yaml:"strategy"`

	// Assignments are the newly proposed (unlocked) staff per section
	Assignments SolverAssignments `json:"assignments" yaml:"assignments"`

	// Coverage reports hours per section, in input order
	Coverage []SectionCoverage `json:"coverage" yaml:"coverage"`

	// Success indicates whether every section reached its required hours
	Success bool `json:"success" yaml:"success"`
}

// Solve validates the input, computes legal candidates, removes locked staff from every
// pool and runs the greedy coverage engine with the strategy's scorer.
//
// Solve is a pure, single-pass computation: it never mutates data and never persists.
// Understaffed sections are reported through Outcome.Coverage, not as an error.
func Solve(data SolverData, strategy Strategy) (*Outcome, error) {
	if err := ValidateInput(data); err != nil {
		return nil, err
	}

	staffHours := make(map[string]int, len(data.StaffPreferences))
	for _, pref := range data.StaffPreferences {
		staffHours[pref.StaffID] = pref.StaffHours
	}

	// Staff locked to any section already hold their one assignment for the term
	locked := make(map[string]bool)
	for _, section := range data.Sections {
		for _, staffID := range section.LockedStaffIDs() {
			locked[staffID] = true
		}
	}

	candidates := LegalCandidates(data.Sections, data.StaffPreferences).ExcludeStaff(locked)

	assignments := Cover(CoverageInput{
		Sections:   data.Sections,
		Candidates: candidates,
		StaffHours: staffHours,
		Scorer:     strategy.Scorer(data),
	})

	coverage := BuildCoverage(data.Sections, staffHours, assignments)

	return &Outcome{
		Strategy:    strategy.Name(),
		Assignments: assignments,
		Coverage:    coverage,
		Success:     len(Understaffed(coverage)) == 0,
	}, nil
}
