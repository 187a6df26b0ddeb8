package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank_Value(t *testing.T) {
	assert.Equal(t, 2, RankStronglyPrefer.Value())
	assert.Equal(t, 1, RankPrefer.Value())
	assert.Equal(t, 0, Rank("").Value())
	assert.Equal(t, 0, Rank("MAYBE").Value())
}

func scoringData() SolverData {
	return SolverData{
		Sections: []Section{
			{ID: "S1", RequiredHours: 10, ProfessorPreferredStaffIDs: []string{"alice", "carol"}},
			{ID: "S2", RequiredHours: 10},
		},
		StaffPreferences: []StaffPreference{
			{
				StaffID:           "alice",
				StaffHours:        10,
				PreferredSections: []SectionPreference{{SectionID: "S1", Rank: RankStronglyPrefer}},
			},
			{
				StaffID:           "bob",
				StaffHours:        10,
				PreferredSections: []SectionPreference{{SectionID: "S1", Rank: RankStronglyPrefer}},
			},
			{StaffID: "carol", StaffHours: 10},
			{
				StaffID:           "dave",
				StaffHours:        10,
				PreferredSections: []SectionPreference{{SectionID: "S1", Rank: RankPrefer}},
			},
		},
	}
}

func TestPreferenceScorer_DefaultWeights(t *testing.T) {
	scorer := NewPreferenceScorer(scoringData(), DefaultWeights())

	// Professor preferred (3×1) + strongly prefer (1×2)
	assert.Equal(t, 5, scorer.Score("alice", "S1"))
	// Strongly prefer only
	assert.Equal(t, 2, scorer.Score("bob", "S1"))
	// Professor preferred only
	assert.Equal(t, 3, scorer.Score("carol", "S1"))
	// Prefer only
	assert.Equal(t, 1, scorer.Score("dave", "S1"))

	// No preferences on either side
	assert.Equal(t, 0, scorer.Score("alice", "S2"))
	// Unknown staff and section
	assert.Equal(t, 0, scorer.Score("nobody", "S1"))
	assert.Equal(t, 0, scorer.Score("alice", "S404"))
}

func TestPreferenceScorer_ProfessorPreferenceDominates(t *testing.T) {
	scorer := NewPreferenceScorer(scoringData(), DefaultWeights())

	assert.Greater(t, scorer.Score("carol", "S1"), scorer.Score("bob", "S1"),
		"professor preference alone should outrank the strongest staff rank alone")
}

func TestPreferenceScorer_CustomWeights(t *testing.T) {
	scorer := NewPreferenceScorer(scoringData(), Weights{Professor: 1, Staff: 5})

	assert.Equal(t, 11, scorer.Score("alice", "S1"))
	assert.Equal(t, 10, scorer.Score("bob", "S1"))
	assert.Equal(t, 1, scorer.Score("carol", "S1"))
}

func TestPreferenceScorer_DuplicateRankKeepsStrongest(t *testing.T) {
	data := SolverData{
		Sections: []Section{{ID: "S1"}},
		StaffPreferences: []StaffPreference{
			{
				StaffID:    "alice",
				StaffHours: 10,
				PreferredSections: []SectionPreference{
					{SectionID: "S1", Rank: RankStronglyPrefer},
					{SectionID: "S1", Rank: RankPrefer},
				},
			},
		},
	}

	scorer := NewPreferenceScorer(data, DefaultWeights())

	assert.Equal(t, 2, scorer.Score("alice", "S1"))
}

func TestZeroScorer(t *testing.T) {
	assert.Equal(t, 0, ZeroScorer{}.Score("alice", "S1"))
}
