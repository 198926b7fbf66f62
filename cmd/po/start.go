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

var startCmd = &cobra.Command{
	Use:   "start [project]",
	Short: "Initialize or resume a planning session",
	Long: `Initialize or resume a planning session in the current directory.

First run (any planning file missing):
  Creates task_plan.md, findings.md, and progress.md from templates.
  Existing files are never overwritten. No session record is written.

Later runs (all three present):
  Records a session snapshot at the top of progress.md: branch, last
  commit, working-tree state, current plan phase, and the status tally.

The optional project argument is used only for display.

Examples:
  po start
  po start my-service
  po start --dry-run
  po start -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	project := "project"
	if len(args) > 0 && args[0] != "" {
		project = args[0]
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg := loadConfig()
	artifacts := configArtifacts(cfg)

	if GetDryRun() {
		return startDryRun(cwd, artifacts)
	}

	rec := session.New(cwd, artifacts, builtinTemplates(artifacts), newInspector(cfg, cwd))
	result, err := rec.Reconcile(cmd.Context(), project)
	if err != nil {
		return err
	}

	if GetOutput() == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if result.State == session.StateUninitialized {
		printFirstRun(project, result.Created)
		return nil
	}
	printResume(project, cfg.Git.DirtyPreview, result.Record)
	return nil
}

// startDryRun reports what reconciliation would do without touching files.
func startDryRun(cwd string, artifacts workspace.Artifacts) error {
	st := workspace.Check(cwd, artifacts)
	if st.Complete() {
		fmt.Println("[dry-run] Workspace active; would record a session snapshot in", artifacts.Progress)
		return nil
	}
	for _, name := range st.Missing {
		fmt.Printf("[dry-run] Would create %s\n", name)
	}
	fmt.Println("[dry-run] No session record would be written (first run)")
	return nil
}

// printFirstRun prints the created artifacts and first-run guidance.
func printFirstRun(project string, created []string) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("New planning session: %s", project)))
	fmt.Println()
	for _, name := range created {
		fmt.Printf("  %s %s\n", okStyle.Render("created"), name)
	}
	fmt.Println()
	fmt.Println(sectionStyle.Render("Next steps"))
	fmt.Println("  1. Write the goal and phases in task_plan.md")
	fmt.Println("  2. Capture research in findings.md as you go")
	fmt.Println("  3. Run 'po start' at the top of every session to log progress")
}

// printResume prints the resumed-session report.
func printResume(project string, dirtyPreview int, rec *session.Record) {
	fmt.Println(headerStyle.Render(fmt.Sprintf("Resuming session: %s", project)))
	fmt.Println()

	fmt.Println(sectionStyle.Render("Repository"))
	fmt.Printf("  Branch:      %s\n", rec.Repo.Branch)
	fmt.Printf("  Last commit: %s\n", rec.Repo.LastCommit)
	if rec.Repo.Clean {
		fmt.Printf("  Tree:        %s\n", okStyle.Render("clean"))
	} else {
		fmt.Printf("  Tree:        %s\n", warnStyle.Render(fmt.Sprintf("dirty (%d changed)", len(rec.Repo.Changed))))
		for _, line := range gitinfo.DirtyPreview(rec.Repo.Changed, dirtyPreview) {
			fmt.Printf("    %s\n", dimStyle.Render(line))
		}
	}

	fmt.Println()
	fmt.Println(sectionStyle.Render("Plan"))
	fmt.Printf("  Current phase: %s\n", rec.CurrentPhase)
	fmt.Printf("  Status:        %s\n", rec.PlanSummary)
	if rec.PreviousEnd != "" {
		fmt.Printf("  Previous session: %s\n", rec.PreviousEnd)
	}

	fmt.Println()
	fmt.Printf("Session recorded in progress log at %s\n", rec.Timestamp.Format("2006-01-02 15:04"))
}
