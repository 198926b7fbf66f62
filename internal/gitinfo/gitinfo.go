// Package gitinfo provides read-only git queries for the session report.
// Every query resolves missing data to a sentinel value instead of failing:
// a directory without version control, a detached or broken HEAD, and an
// empty history are all ordinary states for this tool, not errors. No query
// mutates repository state.
package gitinfo

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Sentinel values used when repository data is unavailable.
const (
	// SentinelNotARepo is reported for branch and commit when the working
	// directory has no version-control metadata.
	SentinelNotARepo = "N/A"

	// SentinelUnknownBranch is reported when the branch query fails
	// (detached HEAD, corrupted metadata).
	SentinelUnknownBranch = "unknown"

	// SentinelNoCommits is reported when the repository has no commits.
	SentinelNoCommits = "No commits yet"
)

// DefaultTimeout bounds each git invocation.
const DefaultTimeout = 5 * time.Second

// DefaultDirtyPreview is how many changed paths the preview lists before
// truncating with a trailer.
const DefaultDirtyPreview = 5

// State is a snapshot of the repository at one invocation. It is recomputed
// every run and never persisted on its own.
type State struct {
	IsRepo     bool     `json:"is_repo"`
	Branch     string   `json:"branch"`
	LastCommit string   `json:"last_commit"`
	Clean      bool     `json:"clean"`
	Changed    []string `json:"changed,omitempty"`
}

// Inspector runs git queries against one working directory.
type Inspector struct {
	// Dir is the working directory to inspect.
	Dir string

	// GitCommand is the git executable to invoke (default "git").
	GitCommand string

	// Timeout bounds each git invocation (default DefaultTimeout).
	Timeout time.Duration
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithGitCommand overrides the git executable name.
func WithGitCommand(cmd string) Option {
	return func(in *Inspector) {
		if strings.TrimSpace(cmd) != "" {
			in.GitCommand = cmd
		}
	}
}

// WithTimeout overrides the per-query timeout.
func WithTimeout(d time.Duration) Option {
	return func(in *Inspector) {
		if d > 0 {
			in.Timeout = d
		}
	}
}

// New creates an Inspector for the given directory.
func New(dir string, opts ...Option) *Inspector {
	in := &Inspector{
		Dir:        dir,
		GitCommand: "git",
		Timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// IsRepo reports whether version-control metadata is present in Dir.
func (in *Inspector) IsRepo() bool {
	_, err := os.Stat(filepath.Join(in.Dir, ".git"))
	return err == nil
}

// Snapshot gathers branch, last commit, and working-tree state in one pass.
// Without a repository, every field short-circuits to its sentinel and the
// tree counts as clean.
func (in *Inspector) Snapshot(ctx context.Context) State {
	if !in.IsRepo() {
		return State{
			Branch:     SentinelNotARepo,
			LastCommit: SentinelNotARepo,
			Clean:      true,
		}
	}
	changed := in.ChangedPaths(ctx)
	return State{
		IsRepo:     true,
		Branch:     in.Branch(ctx),
		LastCommit: in.LastCommit(ctx),
		Clean:      len(changed) == 0,
		Changed:    changed,
	}
}

// Branch returns the current branch name, or SentinelUnknownBranch if the
// query fails.
func (in *Inspector) Branch(ctx context.Context) string {
	out, err := in.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return SentinelUnknownBranch
	}
	branch := strings.TrimSpace(out)
	if branch == "" {
		return SentinelUnknownBranch
	}
	return branch
}

// LastCommit returns "shorthash subject" for the most recent commit, or
// SentinelNoCommits when the history is empty.
func (in *Inspector) LastCommit(ctx context.Context) string {
	out, err := in.run(ctx, "log", "-1", "--pretty=format:%h %s")
	if err != nil {
		return SentinelNoCommits
	}
	commit := strings.TrimSpace(out)
	if commit == "" {
		return SentinelNoCommits
	}
	return commit
}

// ChangedPaths returns the paths reported by the porcelain status query.
// A failed query reads as a clean tree.
func (in *Inspector) ChangedPaths(ctx context.Context) []string {
	out, err := in.run(ctx, "status", "--porcelain")
	if err != nil {
		return nil
	}
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		// Porcelain lines are "XY path"; strip the two status columns.
		if len(line) > 3 {
			paths = append(paths, strings.TrimSpace(line[3:]))
		} else {
			paths = append(paths, strings.TrimSpace(line))
		}
	}
	return paths
}

// DirtyPreview formats up to max changed paths for display, appending
// "... and K more" when the list is truncated. The full list stays
// queryable via ChangedPaths; truncation is presentation only.
func DirtyPreview(paths []string, max int) []string {
	if max <= 0 {
		max = DefaultDirtyPreview
	}
	if len(paths) <= max {
		return append([]string(nil), paths...)
	}
	preview := append([]string(nil), paths[:max]...)
	return append(preview, fmt.Sprintf("... and %d more", len(paths)-max))
}

// run executes one git query with a bounded context and returns its stdout.
func (in *Inspector) run(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, in.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, in.GitCommand, args...)
	cmd.Dir = in.Dir
	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("git %s timed out after %s", args[0], in.Timeout)
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return string(out), nil
}
