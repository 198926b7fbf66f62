package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/planops/cli/internal/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the parsed plan summary",
	Long: `Parse the task plan and print the current phase and status tally.

Read-only. A missing plan reports sentinel values rather than failing.

Examples:
  po plan
  po plan -o json`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)
}

type planOutput struct {
	Exists       bool       `json:"exists"`
	CurrentPhase string     `json:"current_phase"`
	Summary      string     `json:"summary"`
	Tally        plan.Tally `json:"tally"`
}

func runPlan(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg := loadConfig()
	out := buildPlanOutput(filepath.Join(cwd, cfg.Artifacts.Plan))

	if GetOutput() == "json" {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal plan: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(headerStyle.Render("Task Plan"))
	fmt.Printf("  Current phase: %s\n", out.CurrentPhase)
	fmt.Printf("  Status:        %s\n", out.Summary)
	return nil
}

// buildPlanOutput parses the plan file, substituting sentinels when absent.
func buildPlanOutput(path string) *planOutput {
	data, err := os.ReadFile(path)
	if err != nil {
		return &planOutput{
			CurrentPhase: plan.PhaseNotStarted,
			Summary:      plan.SummaryNoPlan,
		}
	}
	text := string(data)
	tally := plan.CountStatuses(text)
	return &planOutput{
		Exists:       true,
		CurrentPhase: plan.CurrentPhase(text),
		Summary:      tally.Summary(),
		Tally:        tally,
	}
}
