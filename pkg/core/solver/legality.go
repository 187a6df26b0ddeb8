package solver

import "slices"

// LegalCandidates computes, for every section, the staff who are qualified for it
// and not on its professor's avoid-list.
//
// Staff with no declared qualifications, or with no hours to contribute, are never legal.
// Each candidate list is sorted by staff ID so the result does not depend on the order
// of the preference collection or of any qualification list. Every section gets an
// entry, even when its list is empty.
func LegalCandidates(sections []Section, prefs []StaffPreference) LegalCandidateSet {
	candidates := make(LegalCandidateSet, len(sections))

	// Index qualifications by section so each section is a single lookup
	qualifiedBySection := make(map[string]map[string]bool)
	for _, pref := range prefs {
		if pref.StaffHours <= 0 {
			continue
		}
		for _, sectionID := range pref.QualifiedSectionIDs {
			if qualifiedBySection[sectionID] == nil {
				qualifiedBySection[sectionID] = make(map[string]bool)
			}
			qualifiedBySection[sectionID][pref.StaffID] = true
		}
	}

	for _, section := range sections {
		avoided := toSet(section.ProfessorAvoidedStaffIDs)

		legal := make([]string, 0, len(qualifiedBySection[section.ID]))
		for staffID := range qualifiedBySection[section.ID] {
			if avoided[staffID] {
				continue
			}
			legal = append(legal, staffID)
		}
		slices.Sort(legal)

		candidates[section.ID] = legal
	}

	return candidates
}

// ExcludeStaff returns a copy of the candidate set with the given staff removed from every pool
func (lc LegalCandidateSet) ExcludeStaff(excluded map[string]bool) LegalCandidateSet {
	filtered := make(LegalCandidateSet, len(lc))
	for sectionID, staffIDs := range lc {
		kept := make([]string, 0, len(staffIDs))
		for _, staffID := range staffIDs {
			if !excluded[staffID] {
				kept = append(kept, staffID)
			}
		}
		filtered[sectionID] = kept
	}
	return filtered
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
