package solver

// SectionCoverage summarises how well one section is staffed after solving
type SectionCoverage struct {
	SectionID     string `json:"sectionId" yaml:"sectionId"`
	RequiredHours int    `json:"requiredHours" yaml:"requiredHours"`

	// LockedHours is the sum of hours from locked assignments
	LockedHours int `json:"lockedHours" yaml:"lockedHours"`

	// ProposedHours is the sum of hours from newly proposed staff
	ProposedHours int `json:"proposedHours" yaml:"proposedHours"`

	// Shortfall is how many required hours remain uncovered (0 when covered)
	Shortfall int `json:"shortfall" yaml:"shortfall"`
}

// TotalHours returns locked plus proposed hours
func (c SectionCoverage) TotalHours() int {
	return c.LockedHours + c.ProposedHours
}

// IsCovered returns true if the section reached its required hours
func (c SectionCoverage) IsCovered() bool {
	return c.Shortfall == 0
}

// BuildCoverage reports per-section hours for the given proposals, in section input order
func BuildCoverage(sections []Section, staffHours map[string]int, assignments SolverAssignments) []SectionCoverage {
	coverage := make([]SectionCoverage, 0, len(sections))

	for _, section := range sections {
		report := SectionCoverage{
			SectionID:     section.ID,
			RequiredHours: section.RequiredHours,
		}

		for _, staffID := range section.LockedStaffIDs() {
			report.LockedHours += staffHours[staffID]
		}
		for _, staffID := range assignments[section.ID] {
			report.ProposedHours += staffHours[staffID]
		}

		report.Shortfall = max(section.RequiredHours-report.TotalHours(), 0)

		coverage = append(coverage, report)
	}

	return coverage
}

// Understaffed returns the coverage entries with a shortfall
func Understaffed(coverage []SectionCoverage) []SectionCoverage {
	understaffed := make([]SectionCoverage, 0)
	for _, report := range coverage {
		if !report.IsCovered() {
			understaffed = append(understaffed, report)
		}
	}
	return understaffed
}
