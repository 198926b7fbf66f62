// Package config provides configuration management for planops.
// Configuration is loaded from (highest to lowest priority):
// 1. Command-line flags
// 2. Environment variables (PLANOPS_*)
// 3. Project config (.planops/config.yaml in cwd)
// 4. Home config (~/.planops/config.yaml)
// 5. Defaults
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all planops configuration.
type Config struct {
	// Output controls the default output format (table, json).
	Output string `yaml:"output" json:"output"`

	// Verbose enables verbose output.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Artifacts names the planning files.
	Artifacts ArtifactsConfig `yaml:"artifacts" json:"artifacts"`

	// Git holds version-control query settings.
	Git GitConfig `yaml:"git" json:"git"`
}

// ArtifactsConfig holds configurable artifact filenames, so alternate
// artifact sets can be used without touching the reconciliation logic.
type ArtifactsConfig struct {
	// Plan is the task plan filename. Default: task_plan.md
	Plan string `yaml:"plan" json:"plan"`

	// Findings is the research notes filename. Default: findings.md
	Findings string `yaml:"findings" json:"findings"`

	// Progress is the session log filename. Default: progress.md
	Progress string `yaml:"progress" json:"progress"`
}

// GitConfig holds git query settings.
type GitConfig struct {
	// Command is the git executable to invoke. Default: git
	Command string `yaml:"command" json:"command"`

	// Timeout bounds each git query, as a Go duration string. Default: 5s
	Timeout string `yaml:"timeout" json:"timeout"`

	// DirtyPreview is how many changed paths to show before truncating.
	// Default: 5
	DirtyPreview int `yaml:"dirty_preview" json:"dirty_preview"`
}

// Default config values (used in resolution and validation).
const (
	defaultOutput       = "table"
	defaultGitCommand   = "git"
	defaultGitTimeout   = "5s"
	defaultDirtyPreview = 5
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Output:  defaultOutput,
		Verbose: false,
		Artifacts: ArtifactsConfig{
			Plan:     "task_plan.md",
			Findings: "findings.md",
			Progress: "progress.md",
		},
		Git: GitConfig{
			Command:      defaultGitCommand,
			Timeout:      defaultGitTimeout,
			DirtyPreview: defaultDirtyPreview,
		},
	}
}

// GitTimeout parses the configured timeout, falling back to the default on
// a bad value.
func (c *Config) GitTimeout() time.Duration {
	d, err := time.ParseDuration(c.Git.Timeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(defaultGitTimeout)
	}
	return d
}

// Load loads configuration with proper precedence.
// Priority: flags > env > project > home > defaults
func Load(flagOverrides *Config) (*Config, error) {
	cfg := Default()

	homeConfig, _ := loadFromPath(homeConfigPath())
	if homeConfig != nil {
		cfg = merge(cfg, homeConfig)
	}

	projectConfig, _ := loadFromPath(projectConfigPath())
	if projectConfig != nil {
		cfg = merge(cfg, projectConfig)
	}

	cfg = applyEnv(cfg)

	if flagOverrides != nil {
		cfg = merge(cfg, flagOverrides)
	}

	return cfg, nil
}

// homeConfigPath returns the home config path.
func homeConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".planops", "config.yaml")
}

// projectConfigPath returns the project config path.
func projectConfigPath() string {
	if override := strings.TrimSpace(os.Getenv("PLANOPS_CONFIG")); override != "" {
		return override
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, ".planops", "config.yaml")
}

// loadFromPath loads config from a YAML file.
func loadFromPath(path string) (*Config, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv applies environment variable overrides.
func applyEnv(cfg *Config) *Config {
	if v := os.Getenv("PLANOPS_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if os.Getenv("PLANOPS_VERBOSE") == "true" || os.Getenv("PLANOPS_VERBOSE") == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("PLANOPS_PLAN_FILE"); v != "" {
		cfg.Artifacts.Plan = v
	}
	if v := os.Getenv("PLANOPS_FINDINGS_FILE"); v != "" {
		cfg.Artifacts.Findings = v
	}
	if v := os.Getenv("PLANOPS_PROGRESS_FILE"); v != "" {
		cfg.Artifacts.Progress = v
	}
	if v := os.Getenv("PLANOPS_GIT_COMMAND"); v != "" {
		cfg.Git.Command = v
	}
	if v := os.Getenv("PLANOPS_GIT_TIMEOUT"); v != "" {
		cfg.Git.Timeout = v
	}
	return cfg
}

// mergeStr overwrites dst with src when src is non-empty.
func mergeStr(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// mergeInt overwrites dst with src when src is non-zero.
func mergeInt(dst *int, src int) {
	if src != 0 {
		*dst = src
	}
}

// merge merges src into dst, with src values taking precedence.
func merge(dst, src *Config) *Config {
	mergeStr(&dst.Output, src.Output)
	if src.Verbose {
		dst.Verbose = true
	}

	mergeStr(&dst.Artifacts.Plan, src.Artifacts.Plan)
	mergeStr(&dst.Artifacts.Findings, src.Artifacts.Findings)
	mergeStr(&dst.Artifacts.Progress, src.Artifacts.Progress)

	mergeStr(&dst.Git.Command, src.Git.Command)
	mergeStr(&dst.Git.Timeout, src.Git.Timeout)
	mergeInt(&dst.Git.DirtyPreview, src.Git.DirtyPreview)

	return dst
}
