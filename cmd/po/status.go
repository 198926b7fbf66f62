package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/planops/cli/internal/gitinfo"
	"github.com/planops/cli/internal/session"
	"github.com/planops/cli/internal/workspace"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show workspace and repository state",
	Long: `Display the current state of the planning workspace.

Shows:
  - Which planning files exist
  - Current plan phase and status tally
  - Repository branch, last commit, and working-tree state

Read-only: never creates files or writes to the progress log.

Examples:
  po status
  po status -o json`,
	RunE: runWorkspaceStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

type statusOutput struct {
	Initialized  bool            `json:"initialized"`
	Artifacts    map[string]bool `json:"artifacts"`
	Missing      []string        `json:"missing,omitempty"`
	CurrentPhase string          `json:"current_phase"`
	PlanSummary  string          `json:"plan_summary"`
	Repo         gitinfo.State   `json:"repo"`
}

func runWorkspaceStatus(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg := loadConfig()
	artifacts := configArtifacts(cfg)

	st := workspace.Check(cwd, artifacts)
	rec := session.New(cwd, artifacts, nil, nil)
	phase, summary := rec.PlanSnapshot()

	out := &statusOutput{
		Initialized:  st.Complete(),
		Artifacts:    st.Present,
		Missing:      st.Missing,
		CurrentPhase: phase,
		PlanSummary:  summary,
		Repo:         newInspector(cfg, cwd).Snapshot(cmd.Context()),
	}

	if GetOutput() == "json" {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal status: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printWorkspaceStatus(out, artifacts, cfg.Git.DirtyPreview)
	return nil
}

func printWorkspaceStatus(out *statusOutput, artifacts workspace.Artifacts, dirtyPreview int) {
	fmt.Println(headerStyle.Render("Planning Workspace"))
	fmt.Println()

	fmt.Println(sectionStyle.Render("Files"))
	for _, name := range artifacts.Names() {
		if out.Artifacts[name] {
			fmt.Printf("  %s %s\n", okStyle.Render("present"), name)
		} else {
			fmt.Printf("  %s %s\n", warnStyle.Render("missing"), name)
		}
	}

	fmt.Println()
	fmt.Println(sectionStyle.Render("Plan"))
	fmt.Printf("  Current phase: %s\n", out.CurrentPhase)
	fmt.Printf("  Status:        %s\n", out.PlanSummary)

	fmt.Println()
	fmt.Println(sectionStyle.Render("Repository"))
	fmt.Printf("  Branch:      %s\n", out.Repo.Branch)
	fmt.Printf("  Last commit: %s\n", out.Repo.LastCommit)
	if out.Repo.Clean {
		fmt.Printf("  Tree:        %s\n", okStyle.Render("clean"))
	} else {
		fmt.Printf("  Tree:        %s\n", warnStyle.Render(fmt.Sprintf("dirty (%d changed)", len(out.Repo.Changed))))
		for _, line := range gitinfo.DirtyPreview(out.Repo.Changed, dirtyPreview) {
			fmt.Printf("    %s\n", dimStyle.Render(line))
		}
	}

	if !out.Initialized {
		fmt.Println()
		fmt.Println("Run 'po start' to create the missing files.")
	}
}
