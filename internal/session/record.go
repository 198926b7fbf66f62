package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/planops/cli/internal/gitinfo"
)

// timestampLayout is the format used for session timestamps in the
// progress log.
const timestampLayout = "2006-01-02 15:04"

// Record is one reconciliation snapshot inserted into the progress log when
// the workspace is already active. Records are never rewritten after
// insertion.
type Record struct {
	// Timestamp is when the invocation ran.
	Timestamp time.Time `json:"timestamp"`

	// Project is the display name passed on the command line.
	Project string `json:"project"`

	// Repo is the repository snapshot at invocation time.
	Repo gitinfo.State `json:"repo"`

	// CurrentPhase is the phase marked current in the plan, or a sentinel.
	CurrentPhase string `json:"current_phase"`

	// PlanSummary is the one-line status tally, or a sentinel.
	PlanSummary string `json:"plan_summary"`

	// PreviousEnd is the progress log's last-modified time before this
	// record was inserted. Best-effort marker for when the previous session
	// ended; empty when unknown.
	PreviousEnd string `json:"previous_end,omitempty"`
}

// Markdown renders the record as the block inserted below the progress log
// title. No trailing newline; the insertion point supplies spacing.
func (r Record) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Session: %s\n\n", r.Timestamp.Format(timestampLayout))
	fmt.Fprintf(&b, "- Project: %s\n", r.Project)
	fmt.Fprintf(&b, "- Branch: %s\n", r.Repo.Branch)
	fmt.Fprintf(&b, "- Last commit: %s\n", r.Repo.LastCommit)
	fmt.Fprintf(&b, "- Working tree: %s\n", r.workingTree())
	fmt.Fprintf(&b, "- Current phase: %s\n", r.CurrentPhase)
	fmt.Fprintf(&b, "- Plan: %s", r.PlanSummary)
	if r.PreviousEnd != "" {
		fmt.Fprintf(&b, "\n- Previous session: %s", r.PreviousEnd)
	}
	return b.String()
}

func (r Record) workingTree() string {
	if r.Repo.Clean {
		return "clean"
	}
	return fmt.Sprintf("dirty (%d changed)", len(r.Repo.Changed))
}
