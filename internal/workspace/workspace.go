// Package workspace manages the three planning artifacts in a working
// directory: the task plan, the findings file, and the progress log. It
// answers "which artifacts exist" and creates missing ones from templates.
// It never overwrites an existing file.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default artifact filenames. Overridable through configuration; the rest of
// the code only sees an Artifacts value.
const (
	DefaultPlanFile     = "task_plan.md"
	DefaultFindingsFile = "findings.md"
	DefaultProgressFile = "progress.md"
)

// Artifacts names the three planning files, relative to the workspace
// directory.
type Artifacts struct {
	Plan     string
	Findings string
	Progress string
}

// DefaultArtifacts returns the conventional artifact names.
func DefaultArtifacts() Artifacts {
	return Artifacts{
		Plan:     DefaultPlanFile,
		Findings: DefaultFindingsFile,
		Progress: DefaultProgressFile,
	}
}

// Names returns the artifact filenames in stable order.
func (a Artifacts) Names() []string {
	return []string{a.Plan, a.Findings, a.Progress}
}

// Status reports which artifacts exist in a workspace directory.
type Status struct {
	// Present maps artifact filename to existence.
	Present map[string]bool

	// Missing lists absent artifacts in stable order.
	Missing []string
}

// Complete reports whether every artifact exists.
func (s Status) Complete() bool {
	return len(s.Missing) == 0
}

// Check reports, for each artifact, whether a regular file of that name
// exists directly in dir. No recursion, no content validation; an unreadable
// filesystem counts as "does not exist".
func Check(dir string, artifacts Artifacts) Status {
	st := Status{Present: make(map[string]bool)}
	for _, name := range artifacts.Names() {
		info, err := os.Stat(filepath.Join(dir, name))
		exists := err == nil && info.Mode().IsRegular()
		st.Present[name] = exists
		if !exists {
			st.Missing = append(st.Missing, name)
		}
	}
	return st
}

// Materialize writes the template for each missing artifact verbatim and
// returns the filenames written, in order. Existing files are never touched:
// the caller passes the missing list from a fresh Check. The first write
// failure aborts immediately and leaves the remaining artifacts uncreated.
func Materialize(dir string, missing []string, templates map[string][]byte) ([]string, error) {
	var created []string
	for _, name := range missing {
		tmpl, ok := templates[name]
		if !ok {
			return created, fmt.Errorf("no template for artifact %s", name)
		}
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			// Raced into existence since the check; leave it alone.
			continue
		}
		if err := os.WriteFile(path, tmpl, 0644); err != nil {
			return created, fmt.Errorf("create %s: %w", name, err)
		}
		created = append(created, name)
	}
	return created, nil
}
