package solver

// Default combined-score weights. Professor preference dominates staff preference
// but never overrides legality: avoided staff are filtered before scoring.
const (
	DefaultProfessorWeight = 3
	DefaultStaffWeight     = 1
)

// Weights configures the combined preference score
type Weights struct {
	// Professor multiplies the professor-preference indicator (0 or 1)
	Professor int

	// Staff multiplies the staff-submitted rank value (0, 1 or 2)
	Staff int
}

// DefaultWeights returns the standard weighting (professor 3, staff 1)
func DefaultWeights() Weights {
	return Weights{
		Professor: DefaultProfessorWeight,
		Staff:     DefaultStaffWeight,
	}
}

// Scorer rates how desirable a staff member is for a section.
// Higher scores are chosen first. Implementations must be pure.
type Scorer interface {
	Score(staffID, sectionID string) int
}

// ZeroScorer scores every pair as 0, leaving ordering to hours and staff ID
type ZeroScorer struct{}

func (ZeroScorer) Score(staffID, sectionID string) int {
	return 0
}

// PreferenceScorer combines professor preference and staff rank:
//
//	score = Professor × professorIndicator + Staff × rankValue
//
// Both preference sources are indexed once at construction so Score is two map lookups.
type PreferenceScorer struct {
	weights Weights

	// staffRanks is staffID -> sectionID -> rank value
	staffRanks map[string]map[string]int

	// professorPreferred is sectionID -> set of preferred staff IDs
	professorPreferred map[string]map[string]bool
}

// NewPreferenceScorer indexes the preferences in data for scoring with the given weights
func NewPreferenceScorer(data SolverData, weights Weights) *PreferenceScorer {
	scorer := &PreferenceScorer{
		weights:            weights,
		staffRanks:         make(map[string]map[string]int, len(data.StaffPreferences)),
		professorPreferred: make(map[string]map[string]bool, len(data.Sections)),
	}

	for _, pref := range data.StaffPreferences {
		ranks := make(map[string]int, len(pref.PreferredSections))
		for _, preferred := range pref.PreferredSections {
			// Keep the strongest rank if a section is listed twice
			if value := preferred.Rank.Value(); value > ranks[preferred.SectionID] {
				ranks[preferred.SectionID] = value
			}
		}
		scorer.staffRanks[pref.StaffID] = ranks
	}

	for _, section := range data.Sections {
		scorer.professorPreferred[section.ID] = toSet(section.ProfessorPreferredStaffIDs)
	}

	return scorer
}

// Score returns the combined preference score for the pair
func (s *PreferenceScorer) Score(staffID, sectionID string) int {
	professorIndicator := 0
	if s.professorPreferred[sectionID][staffID] {
		professorIndicator = 1
	}

	rankValue := s.staffRanks[staffID][sectionID]

	return s.weights.Professor*professorIndicator + s.weights.Staff*rankValue
}
