package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Output != "table" {
		t.Errorf("Output = %q, want table", cfg.Output)
	}
	if cfg.Artifacts.Plan != "task_plan.md" {
		t.Errorf("Plan = %q", cfg.Artifacts.Plan)
	}
	if cfg.Artifacts.Findings != "findings.md" {
		t.Errorf("Findings = %q", cfg.Artifacts.Findings)
	}
	if cfg.Artifacts.Progress != "progress.md" {
		t.Errorf("Progress = %q", cfg.Artifacts.Progress)
	}
	if cfg.Git.Command != "git" {
		t.Errorf("Git.Command = %q", cfg.Git.Command)
	}
	if cfg.Git.DirtyPreview != 5 {
		t.Errorf("Git.DirtyPreview = %d", cfg.Git.DirtyPreview)
	}
}

func TestGitTimeout(t *testing.T) {
	cfg := Default()
	if got := cfg.GitTimeout(); got != 5*time.Second {
		t.Errorf("GitTimeout() = %s, want 5s", got)
	}

	cfg.Git.Timeout = "250ms"
	if got := cfg.GitTimeout(); got != 250*time.Millisecond {
		t.Errorf("GitTimeout() = %s, want 250ms", got)
	}

	cfg.Git.Timeout = "not-a-duration"
	if got := cfg.GitTimeout(); got != 5*time.Second {
		t.Errorf("bad value should fall back to 5s, got %s", got)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PLANOPS_OUTPUT", "json")
	t.Setenv("PLANOPS_VERBOSE", "1")
	t.Setenv("PLANOPS_PLAN_FILE", "PLAN.md")
	t.Setenv("PLANOPS_GIT_COMMAND", "/usr/local/bin/git")

	cfg := applyEnv(Default())
	if cfg.Output != "json" {
		t.Errorf("Output = %q, want json", cfg.Output)
	}
	if !cfg.Verbose {
		t.Error("expected Verbose true")
	}
	if cfg.Artifacts.Plan != "PLAN.md" {
		t.Errorf("Plan = %q, want PLAN.md", cfg.Artifacts.Plan)
	}
	if cfg.Git.Command != "/usr/local/bin/git" {
		t.Errorf("Git.Command = %q", cfg.Git.Command)
	}
}

func TestLoadProjectConfigViaEnvPath(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")
	content := "output: json\nartifacts:\n  progress: LOG.md\ngit:\n  dirty_preview: 10\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PLANOPS_CONFIG", path)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output != "json" {
		t.Errorf("Output = %q, want json", cfg.Output)
	}
	if cfg.Artifacts.Progress != "LOG.md" {
		t.Errorf("Progress = %q, want LOG.md", cfg.Artifacts.Progress)
	}
	// Unset values keep their defaults.
	if cfg.Artifacts.Plan != "task_plan.md" {
		t.Errorf("Plan = %q, want default", cfg.Artifacts.Plan)
	}
	if cfg.Git.DirtyPreview != 10 {
		t.Errorf("DirtyPreview = %d, want 10", cfg.Git.DirtyPreview)
	}
}

func TestLoadFlagOverridesWin(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.yaml")
	if err := os.WriteFile(path, []byte("output: json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PLANOPS_CONFIG", path)

	cfg, err := Load(&Config{Output: "table"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output != "table" {
		t.Errorf("Output = %q, flag override should win", cfg.Output)
	}
}

func TestMergeEmptySrcKeepsDst(t *testing.T) {
	dst := Default()
	merged := merge(dst, &Config{})
	if merged.Output != "table" || merged.Artifacts.Plan != "task_plan.md" {
		t.Errorf("empty src should not clobber dst: %+v", merged)
	}
}
