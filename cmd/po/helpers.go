package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/planops/cli/embedded"
	"github.com/planops/cli/internal/config"
	"github.com/planops/cli/internal/gitinfo"
	"github.com/planops/cli/internal/workspace"
)

// Shared display styles for table output.
var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// loadConfig loads configuration with the global flags applied as overrides.
func loadConfig() *config.Config {
	overrides := &config.Config{Verbose: GetVerbose()}
	cfg, err := config.Load(overrides)
	if err != nil || cfg == nil {
		return config.Default()
	}
	return cfg
}

// configArtifacts maps the configured filenames onto a workspace.Artifacts.
func configArtifacts(cfg *config.Config) workspace.Artifacts {
	return workspace.Artifacts{
		Plan:     cfg.Artifacts.Plan,
		Findings: cfg.Artifacts.Findings,
		Progress: cfg.Artifacts.Progress,
	}
}

// builtinTemplates returns the embedded template bodies keyed by the
// configured artifact filenames. Templates are opaque bytes; renaming an
// artifact reuses the canonical template for its role.
func builtinTemplates(artifacts workspace.Artifacts) map[string][]byte {
	return map[string][]byte{
		artifacts.Plan:     embedded.Template(workspace.DefaultPlanFile),
		artifacts.Findings: embedded.Template(workspace.DefaultFindingsFile),
		artifacts.Progress: embedded.Template(workspace.DefaultProgressFile),
	}
}

// newInspector builds the repository inspector for a directory from config.
func newInspector(cfg *config.Config, dir string) *gitinfo.Inspector {
	return gitinfo.New(dir,
		gitinfo.WithGitCommand(cfg.Git.Command),
		gitinfo.WithTimeout(cfg.GitTimeout()),
	)
}
