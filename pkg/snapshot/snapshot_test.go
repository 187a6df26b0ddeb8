package snapshot

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/coursestaff/assignment-solver/pkg/core/solver"
)

const yamlSnapshot = `
sections:
  - id: S
    requiredHours: 20
    existingAssignments:
      - staffId: L
        locked: true
    professorAvoidedStaffIds: [C]
    professorPreferredStaffIds: [A]
staffPreferences:
  - staffId: A
    staffHours: 10
    qualifiedSectionIds: [S]
  - staffId: B
    staffHours: 10
    qualifiedSectionIds: [S]
    preferredSections:
      - sectionId: S
        rank: STRONGLY_PREFER
  - staffId: L
    staffHours: 5
`

const jsonSnapshot = `{
  "sections": [
    {"id": "S", "requiredHours": 20, "existingAssignments": [{"staffId": "L", "locked": true}],
     "professorAvoidedStaffIds": ["C"], "professorPreferredStaffIds": ["A"]}
  ],
  "staffPreferences": [
    {"staffId": "A", "staffHours": 10, "qualifiedSectionIds": ["S"]},
    {"staffId": "B", "staffHours": 10, "qualifiedSectionIds": ["S"],
     "preferredSections": [{"sectionId": "S", "rank": "STRONGLY_PREFER"}]},
    {"staffId": "L", "staffHours": 5}
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func assertExpectedSnapshot(t *testing.T, data solver.SolverData) {
	t.Helper()

	require.Len(t, data.Sections, 1)
	section := data.Sections[0]
	assert.Equal(t, "S", section.ID)
	assert.Equal(t, 20, section.RequiredHours)
	assert.Equal(t, []solver.ExistingAssignment{{StaffID: "L", Locked: true}}, section.ExistingAssignments)
	assert.Equal(t, []string{"C"}, section.ProfessorAvoidedStaffIDs)
	assert.Equal(t, []string{"A"}, section.ProfessorPreferredStaffIDs)

	require.Len(t, data.StaffPreferences, 3)
	assert.Equal(t, "B", data.StaffPreferences[1].StaffID)
	assert.Equal(t, []solver.SectionPreference{{SectionID: "S", Rank: solver.RankStronglyPrefer}}, data.StaffPreferences[1].PreferredSections)
	assert.Equal(t, 5, data.StaffPreferences[2].StaffHours)
}

func TestLoad_YAML(t *testing.T) {
	data, err := Load(writeFile(t, "term.yaml", yamlSnapshot))
	require.NoError(t, err)
	assertExpectedSnapshot(t, data)
}

func TestLoad_YMLExtension(t *testing.T) {
	data, err := Load(writeFile(t, "term.YML", yamlSnapshot))
	require.NoError(t, err)
	assertExpectedSnapshot(t, data)
}

func TestLoad_JSON(t *testing.T) {
	data, err := Load(writeFile(t, "term.json", jsonSnapshot))
	require.NoError(t, err)
	assertExpectedSnapshot(t, data)
}

func TestLoad_UnknownExtension(t *testing.T) {
	_, err := Load(writeFile(t, "term.txt", jsonSnapshot))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot infer snapshot format")
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeFile(t, "term.json", `{"sections": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse snapshot file term.json")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read snapshot file")
}

func TestLoad_FeedsSolver(t *testing.T) {
	data, err := Load(writeFile(t, "term.yaml", yamlSnapshot))
	require.NoError(t, err)

	outcome, err := solver.Solve(data, solver.NewWeightedStrategy(solver.DefaultWeights()))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, outcome.Assignments["S"])
	assert.True(t, outcome.Success)
}

func testOutcome() *solver.Outcome {
	return &solver.Outcome{
		Strategy:    "weighted",
		Assignments: solver.SolverAssignments{"S2": {}, "S1": {"A", "B"}},
		Coverage: []solver.SectionCoverage{
			{SectionID: "S1", RequiredHours: 20, ProposedHours: 20},
			{SectionID: "S2", RequiredHours: 10, LockedHours: 5, Shortfall: 5},
		},
		Success: false,
	}
}

func TestWriteAssignments_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAssignments(&buf, testOutcome(), FormatJSON))

	var decoded solver.Outcome
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "weighted", decoded.Strategy)
	assert.Equal(t, []string{"A", "B"}, decoded.Assignments["S1"])
	assert.Equal(t, []string{}, decoded.Assignments["S2"])
	assert.Equal(t, 5, decoded.Coverage[1].Shortfall)
	assert.Contains(t, buf.String(), `"S2": []`)
}

func TestWriteAssignments_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAssignments(&buf, testOutcome(), FormatYAML))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "weighted", decoded["strategy"])
	assert.Equal(t, false, decoded["success"])
	assert.Contains(t, buf.String(), "lockedHours: 5")
}

func TestWriteAssignments_Deterministic(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, WriteAssignments(&first, testOutcome(), FormatJSON))
	require.NoError(t, WriteAssignments(&second, testOutcome(), FormatJSON))
	assert.Equal(t, first.String(), second.String())
}

func TestWriteAssignments_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteAssignments(&buf, testOutcome(), "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported output format "csv"`)
	assert.Empty(t, buf.String())
}
