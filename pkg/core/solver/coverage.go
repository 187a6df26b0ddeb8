package solver

import "sort"

// CoverageInput contains everything the greedy coverage engine reads
type CoverageInput struct {
	// Sections to staff, in input order (input position is the final section tie-break)
	Sections []Section

	// Candidates are the legal staff per section
	Candidates LegalCandidateSet

	// StaffHours is each staff member's hour capacity
	StaffHours map[string]int

	// Scorer orders candidates within a section (ZeroScorer for the baseline)
	Scorer Scorer
}

// coverageRun holds the mutable state of a single engine run.
// It is never shared between runs.
type coverageRun struct {
	input CoverageInput

	// assigned tracks staff holding a locked or proposed assignment
	assigned map[string]bool

	// accumulatedHours is the running hour total per section (locked + proposed)
	accumulatedHours map[string]int

	assignments SolverAssignments
}

// sectionOrder pairs a section with its sort keys
type sectionOrder struct {
	position int
	poolSize int
}

// Cover runs the greedy coverage heuristic and returns the newly proposed staff per section.
//
// Staff locked to any section are unavailable up front. Sections are processed most
// constrained first (smallest candidate pool), ties by input position. Within a section
// candidates are taken by score (desc), hour capacity (asc), staff ID (asc) until the
// section's accumulated hours reach RequiredHours. The last candidate may overshoot the
// target; no closer-fit subset is searched for. Sections that run out of candidates stay
// understaffed. Every section has an entry in the result, possibly empty.
func Cover(input CoverageInput) SolverAssignments {
	run := &coverageRun{
		input:            input,
		assigned:         make(map[string]bool),
		accumulatedHours: make(map[string]int, len(input.Sections)),
		assignments:      make(SolverAssignments, len(input.Sections)),
	}

	if run.input.Scorer == nil {
		run.input.Scorer = ZeroScorer{}
	}

	run.commitLocked()

	for _, position := range run.sectionProcessingOrder() {
		run.coverSection(input.Sections[position])
	}

	return run.assignments
}

// commitLocked marks locked staff as assigned and credits their hours to their section
func (r *coverageRun) commitLocked() {
	for _, section := range r.input.Sections {
		r.assignments[section.ID] = []string{}
		for _, staffID := range section.LockedStaffIDs() {
			r.assigned[staffID] = true
			r.accumulatedHours[section.ID] += r.input.StaffHours[staffID]
		}
	}
}

// sectionProcessingOrder returns section positions sorted by ascending pool size,
// then by input position
func (r *coverageRun) sectionProcessingOrder() []int {
	orders := make([]sectionOrder, len(r.input.Sections))
	for i, section := range r.input.Sections {
		orders[i] = sectionOrder{
			position: i,
			poolSize: r.poolSize(section.ID),
		}
	}

	sort.Slice(orders, func(i, j int) bool {
		if orders[i].poolSize != orders[j].poolSize {
			return orders[i].poolSize < orders[j].poolSize
		}
		return orders[i].position < orders[j].position
	})

	positions := make([]int, len(orders))
	for i, order := range orders {
		positions[i] = order.position
	}
	return positions
}

// poolSize counts legal candidates for a section that are not locked anywhere
func (r *coverageRun) poolSize(sectionID string) int {
	size := 0
	for _, staffID := range r.input.Candidates[sectionID] {
		if !r.assigned[staffID] {
			size++
		}
	}
	return size
}

// coverSection greedily proposes staff for one section
func (r *coverageRun) coverSection(section Section) {
	// Skip sections already satisfied by locked hours
	neededHours := section.RequiredHours - r.accumulatedHours[section.ID]
	if neededHours <= 0 {
		return
	}

	candidates := r.workingCandidates(section.ID)

	for _, staffID := range candidates {
		r.assignments[section.ID] = append(r.assignments[section.ID], staffID)
		r.assigned[staffID] = true
		r.accumulatedHours[section.ID] += r.input.StaffHours[staffID]

		if r.accumulatedHours[section.ID] >= section.RequiredHours {
			break
		}
	}
}

// workingCandidates returns the section's unassigned candidates in selection order
func (r *coverageRun) workingCandidates(sectionID string) []string {
	type scoredCandidate struct {
		staffID string
		score   int
		hours   int
	}

	scored := make([]scoredCandidate, 0, len(r.input.Candidates[sectionID]))
	for _, staffID := range r.input.Candidates[sectionID] {
		if r.assigned[staffID] {
			continue
		}
		scored = append(scored, scoredCandidate{
			staffID: staffID,
			score:   r.input.Scorer.Score(staffID, sectionID),
			hours:   r.input.StaffHours[staffID],
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		if scored[i].hours != scored[j].hours {
			return scored[i].hours < scored[j].hours
		}
		return scored[i].staffID < scored[j].staffID
	})

	ordered := make([]string, len(scored))
	for i, candidate := range scored {
		ordered[i] = candidate.staffID
	}
	return ordered
}
