package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validData() SolverData {
	return SolverData{
		Sections: []Section{
			{
				ID:                  "S1",
				RequiredHours:       10,
				ExistingAssignments: []ExistingAssignment{{StaffID: "alice", Locked: true}},
			},
			{ID: "S2", RequiredHours: 0},
		},
		StaffPreferences: []StaffPreference{
			{
				StaffID:             "alice",
				StaffHours:          10,
				QualifiedSectionIDs: []string{"S1"},
				PreferredSections:   []SectionPreference{{SectionID: "S1", Rank: RankPrefer}},
			},
			{StaffID: "bob", StaffHours: 0},
		},
	}
}

func TestValidateInput_Valid(t *testing.T) {
	assert.NoError(t, ValidateInput(validData()))
}

func TestValidateInput_EmptyIsValid(t *testing.T) {
	assert.NoError(t, ValidateInput(SolverData{}))
}

func TestValidateInput_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(data *SolverData)
		contains string
	}{
		{
			name:     "negative required hours",
			mutate:   func(data *SolverData) { data.Sections[1].RequiredHours = -5 },
			contains: "RequiredHours must be at least 0",
		},
		{
			name:     "missing section id",
			mutate:   func(data *SolverData) { data.Sections[1].ID = "" },
			contains: "Sections[1].ID is required",
		},
		{
			name:     "duplicate section id",
			mutate:   func(data *SolverData) { data.Sections[1].ID = "S1" },
			contains: `duplicate section "S1"`,
		},
		{
			name:     "negative staff hours",
			mutate:   func(data *SolverData) { data.StaffPreferences[1].StaffHours = -1 },
			contains: "StaffHours must be at least 0",
		},
		{
			name:     "missing staff id",
			mutate:   func(data *SolverData) { data.StaffPreferences[1].StaffID = "" },
			contains: "StaffPreferences[1].StaffID is required",
		},
		{
			name:     "duplicate staff id",
			mutate:   func(data *SolverData) { data.StaffPreferences[1].StaffID = "alice" },
			contains: `duplicate staff preference for "alice"`,
		},
		{
			name: "unknown rank",
			mutate: func(data *SolverData) {
				data.StaffPreferences[0].PreferredSections[0].Rank = "LOVE"
			},
			contains: "must be one of [PREFER STRONGLY_PREFER]",
		},
		{
			name: "locked staff not found",
			mutate: func(data *SolverData) {
				data.Sections[1].ExistingAssignments = []ExistingAssignment{{StaffID: "ghost", Locked: true}}
			},
			contains: `staff "ghost" referenced by locked assignment in section "S2" but not found`,
		},
		{
			name: "staff locked twice",
			mutate: func(data *SolverData) {
				data.Sections[1].ExistingAssignments = []ExistingAssignment{{StaffID: "alice", Locked: true}}
			},
			contains: `staff "alice" is locked to both section "S1" and section "S2"`,
		},
		{
			name: "locked assignment without staff id",
			mutate: func(data *SolverData) {
				data.Sections[0].ExistingAssignments = []ExistingAssignment{{Locked: true}}
			},
			contains: "StaffID is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validData()
			tt.mutate(&data)

			err := ValidateInput(data)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateInput_UnlockedUnknownStaffAllowed(t *testing.T) {
	// Unlocked existing assignments are stale proposals and are not checked
	data := validData()
	data.Sections[1].ExistingAssignments = []ExistingAssignment{{StaffID: "ghost", Locked: false}}

	assert.NoError(t, ValidateInput(data))
}
