package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/coursestaff/assignment-solver/pkg/core/solver"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorDim    = "\033[2m"
)

// coverageColor picks green for covered sections, yellow when the gap is under half the
// requirement and red otherwise
func coverageColor(c solver.SectionCoverage, green, yellow, red string) string {
	if c.IsCovered() {
		return green
	}
	if c.Shortfall*2 < c.RequiredHours {
		return yellow
	}
	return red
}

// labelOr returns labels[id], or id when no label is known
func labelOr(labels map[string]string, id string) string {
	if label, ok := labels[id]; ok && label != "" {
		return label
	}
	return id
}

// printCoverageTable writes one row per section followed by the staff proposed for it
func printCoverageTable(
	w io.Writer,
	coverage []solver.SectionCoverage,
	assignments solver.SolverAssignments,
	sectionLabels map[string]string,
	staffNames map[string]string,
) {
	sectionColWidth := 12
	for _, c := range coverage {
		if l := len(labelOr(sectionLabels, c.SectionID)); l+2 > sectionColWidth {
			sectionColWidth = l + 2
		}
	}
	const numColWidth = 10

	fmt.Fprintf(w, "%-*s%*s%*s%*s%*s\n", sectionColWidth, "Section",
		numColWidth, "Required", numColWidth, "Locked", numColWidth, "Proposed", numColWidth, "Shortfall")
	fmt.Fprintln(w, strings.Repeat("-", sectionColWidth+4*numColWidth))

	for _, c := range coverage {
		color := coverageColor(c, colorGreen, colorYellow, colorRed)
		fmt.Fprintf(w, "%s%-*s%*d%*d%*d%*d%s\n", color,
			sectionColWidth, labelOr(sectionLabels, c.SectionID),
			numColWidth, c.RequiredHours,
			numColWidth, c.LockedHours,
			numColWidth, c.ProposedHours,
			numColWidth, c.Shortfall,
			colorReset)

		staff := assignments[c.SectionID]
		if len(staff) == 0 {
			fmt.Fprintf(w, "  %s(no new assignments)%s\n", colorDim, colorReset)
			continue
		}
		for _, staffID := range staff {
			fmt.Fprintf(w, "  + %s\n", labelOr(staffNames, staffID))
		}
	}
}

// printSummary writes the closing line for a solve
func printSummary(w io.Writer, coverage []solver.SectionCoverage, success bool) {
	fmt.Fprintln(w)
	if success {
		fmt.Fprintf(w, "%s✓ All %d sections covered%s\n", colorGreen, len(coverage), colorReset)
		return
	}
	understaffed := solver.Understaffed(coverage)
	fmt.Fprintf(w, "%s⚠️  %d of %d sections understaffed%s\n", colorYellow, len(understaffed), len(coverage), colorReset)
}
