// Package plan parses the task plan artifact for phase and status
// information. All functions operate on document text, not files, so they
// can be tested against literal fixtures. The plan is human-edited free
// text; parsing is deliberately permissive and never returns an error.
package plan

import (
	"fmt"
	"regexp"
	"strings"
)

// Sentinel values returned when plan data is unavailable.
const (
	// DefaultPhase is reported when no current-phase marker is found or the
	// line after the marker is empty.
	DefaultPhase = "Phase 1"

	// PhaseNotStarted is reported when the plan artifact does not exist.
	PhaseNotStarted = "Not started"

	// SummaryNoPlan is reported for the tally when the plan artifact does
	// not exist.
	SummaryNoPlan = "No task plan found"
)

// Status keywords tallied from the plan text. These are matched as literal
// substrings; richer per-test result values (Pass/Fail/Skipped) are not
// tallied.
const (
	statusComplete   = "complete"
	statusInProgress = "in_progress"
	statusPending    = "pending"
)

var (
	currentPhaseMarker = regexp.MustCompile(`(?i)^#{1,6}\s*Current Phase\b`)
	phaseHeading       = regexp.MustCompile(`(?mi)^#{1,6}\s*Phase\s+\d+`)
)

// Tally holds the phase status counts extracted from a plan document.
type Tally struct {
	Total      int `json:"total"`
	Complete   int `json:"complete"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
}

// Summary renders the tally as a single human-readable line.
func (t Tally) Summary() string {
	return fmt.Sprintf("%d phases: %d complete, %d in progress, %d pending",
		t.Total, t.Complete, t.InProgress, t.Pending)
}

// CurrentPhase returns the line immediately following the first
// "Current Phase" section marker. A missing marker, or an empty line after
// the marker, yields DefaultPhase.
func CurrentPhase(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if !currentPhaseMarker.MatchString(strings.TrimSpace(line)) {
			continue
		}
		if i+1 >= len(lines) {
			return DefaultPhase
		}
		next := strings.TrimSpace(lines[i+1])
		if next == "" {
			return DefaultPhase
		}
		return next
	}
	return DefaultPhase
}

// CountStatuses counts phase headings and status keyword occurrences in the
// plan text. Zero matches for a keyword is a zero count, not an error.
func CountStatuses(text string) Tally {
	return Tally{
		Total:      len(phaseHeading.FindAllString(text, -1)),
		Complete:   strings.Count(text, statusComplete),
		InProgress: strings.Count(text, statusInProgress),
		Pending:    strings.Count(text, statusPending),
	}
}
