package solver

// Rank is a staff member's self-declared preference for a section
type Rank string

// Rank values accepted in staff preferences
const (
	RankPrefer         Rank = "PREFER"
	RankStronglyPrefer Rank = "STRONGLY_PREFER"
)

// Value returns the numeric weight of the rank (STRONGLY_PREFER=2, PREFER=1, otherwise 0)
func (r Rank) Value() int {
	switch r {
	case RankStronglyPrefer:
		return 2
	case RankPrefer:
		return 1
	default:
		return 0
	}
}

// ExistingAssignment is a staff member already bound to a section before solving.
// Only locked assignments are honoured; unlocked ones are stale proposals.
type ExistingAssignment struct {
	StaffID string `json:"staffId" yaml:"staffId" validate:"required"`
	Locked  bool   `json:"locked" yaml:"locked"`
}

// Section is a course section that needs help-staff hours
type Section struct {
	ID string `json:"id" yaml:"id" validate:"required"`

	// RequiredHours is the target sum of assigned staff hour capacities
	RequiredHours int `json:"requiredHours" yaml:"requiredHours" validate:"min=0"`

	ExistingAssignments []ExistingAssignment `json:"existingAssignments" yaml:"existingAssignments" validate:"dive"`

	// ProfessorAvoidedStaffIDs are never legal for this section
	ProfessorAvoidedStaffIDs []string `json:"professorAvoidedStaffIds" yaml:"professorAvoidedStaffIds"`

	// ProfessorPreferredStaffIDs raise a candidate's score for this section
	ProfessorPreferredStaffIDs []string `json:"professorPreferredStaffIds" yaml:"professorPreferredStaffIds"`
}

// LockedStaffIDs returns the staff IDs locked to this section, in input order
func (s Section) LockedStaffIDs() []string {
	ids := make([]string, 0, len(s.ExistingAssignments))
	for _, existing := range s.ExistingAssignments {
		if existing.Locked {
			ids = append(ids, existing.StaffID)
		}
	}
	return ids
}

// SectionPreference is one ranked section in a staff member's preferences
type SectionPreference struct {
	SectionID string `json:"sectionId" yaml:"sectionId" validate:"required"`
	Rank      Rank   `json:"rank" yaml:"rank" validate:"oneof=PREFER STRONGLY_PREFER"`
}

// StaffPreference is one staff member's declarations for a term
type StaffPreference struct {
	StaffID string `json:"staffId" yaml:"staffId" validate:"required"`

	// StaffHours is the number of hours this staff member can contribute
	StaffHours int `json:"staffHours" yaml:"staffHours" validate:"min=0"`

	QualifiedSectionIDs []string            `json:"qualifiedSectionIds" yaml:"qualifiedSectionIds"`
	PreferredSections   []SectionPreference `json:"preferredSections" yaml:"preferredSections" validate:"dive"`
}

// SolverData is the complete, read-only input snapshot for one term
type SolverData struct {
	Sections         []Section         `json:"sections" yaml:"sections" validate:"dive"`
	StaffPreferences []StaffPreference `json:"staffPreferences" yaml:"staffPreferences" validate:"dive"`
}

// SolverAssignments maps a section ID to the staff IDs newly proposed for it,
// in the order they were chosen. Locked assignments are never included.
type SolverAssignments map[string][]string

// LegalCandidateSet maps a section ID to the staff IDs eligible for it
type LegalCandidateSet map[string][]string
