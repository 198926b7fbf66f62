// Package session implements the session reconciliation core: on each
// invocation it decides whether the planning workspace is being initialized
// or resumed, and in the resume case merges a fresh repository and plan
// snapshot into the progress log without disturbing prior entries.
//
// The workspace has exactly two states. Uninitialized means one or more
// planning artifacts are missing; any invocation fills them from templates
// and writes no record. Active means all artifacts exist; any invocation
// inserts one Record and leaves the workspace Active. There is no teardown.
package session

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/planops/cli/internal/gitinfo"
	"github.com/planops/cli/internal/plan"
	"github.com/planops/cli/internal/workspace"
)

// State is the workspace state observed at the start of an invocation.
type State string

const (
	// StateUninitialized means at least one planning artifact was missing.
	StateUninitialized State = "uninitialized"

	// StateActive means all planning artifacts were present.
	StateActive State = "active"
)

// Inspector is the capability interface for version-control queries. All
// queries are read-only and resolve failures to sentinel values.
type Inspector interface {
	Snapshot(ctx context.Context) gitinfo.State
}

// Reconciler runs the new-vs-resume decision for one working directory.
// Artifact names and template bodies are injected at construction time so
// alternate artifact sets need no changes here.
type Reconciler struct {
	// Dir is the workspace directory.
	Dir string

	// Artifacts names the planning files.
	Artifacts workspace.Artifacts

	// Templates maps artifact filename to the verbatim content written when
	// that artifact is missing.
	Templates map[string][]byte

	// Inspector supplies the repository snapshot.
	Inspector Inspector

	// Now supplies timestamps; defaults to time.Now.
	Now func() time.Time
}

// New creates a Reconciler with the default clock.
func New(dir string, artifacts workspace.Artifacts, templates map[string][]byte, inspector Inspector) *Reconciler {
	return &Reconciler{
		Dir:       dir,
		Artifacts: artifacts,
		Templates: templates,
		Inspector: inspector,
		Now:       time.Now,
	}
}

// Result describes what one invocation did.
type Result struct {
	// State is the workspace state before the invocation acted.
	State State `json:"state"`

	// Created lists artifacts materialized this invocation (first run only).
	Created []string `json:"created,omitempty"`

	// Record is the block inserted into the progress log (resume only).
	Record *Record `json:"record,omitempty"`
}

// Reconcile performs one invocation. On an Uninitialized workspace it
// materializes every missing artifact and writes no record. On an Active
// workspace it gathers the repository and plan snapshots and inserts one
// Record below the progress log title. Inspection failures never abort the
// invocation; only a filesystem write failure does.
func (r *Reconciler) Reconcile(ctx context.Context, project string) (*Result, error) {
	st := workspace.Check(r.Dir, r.Artifacts)
	if !st.Complete() {
		created, err := workspace.Materialize(r.Dir, st.Missing, r.Templates)
		if err != nil {
			return nil, err
		}
		return &Result{State: StateUninitialized, Created: created}, nil
	}

	rec := r.buildRecord(ctx, project)
	if err := prependRecord(filepath.Join(r.Dir, r.Artifacts.Progress), rec.Markdown()); err != nil {
		return nil, err
	}
	return &Result{State: StateActive, Record: &rec}, nil
}

// buildRecord gathers the snapshot for an Active-state invocation.
func (r *Reconciler) buildRecord(ctx context.Context, project string) Record {
	phase, summary := r.PlanSnapshot()
	return Record{
		Timestamp:    r.now(),
		Project:      project,
		Repo:         r.Inspector.Snapshot(ctx),
		CurrentPhase: phase,
		PlanSummary:  summary,
		PreviousEnd:  r.previousEnd(),
	}
}

// PlanSnapshot reads the plan artifact and returns the current phase and
// tally summary, substituting sentinels when the artifact is missing.
// Neither query raises for an absent file.
func (r *Reconciler) PlanSnapshot() (phase, summary string) {
	data, err := os.ReadFile(filepath.Join(r.Dir, r.Artifacts.Plan))
	if err != nil {
		return plan.PhaseNotStarted, plan.SummaryNoPlan
	}
	text := string(data)
	return plan.CurrentPhase(text), plan.CountStatuses(text).Summary()
}

// previousEnd returns the progress log's last-modified time before this
// invocation rewrites it. Empty when unavailable.
func (r *Reconciler) previousEnd() string {
	info, err := os.Stat(filepath.Join(r.Dir, r.Artifacts.Progress))
	if err != nil {
		return ""
	}
	return info.ModTime().Format(timestampLayout)
}

func (r *Reconciler) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
