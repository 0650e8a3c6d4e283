package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fairedu/adapt/internal/job"
	"github.com/fairedu/adapt/internal/store"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect adaptation runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		runs, err := s.RunRepo().List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No runs found.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-11s  %-4s  %s\n",
			"Run", "Created", "Status", "Lang", "Title")
		fmt.Println(strings.Repeat("─", 100))
		for _, r := range runs {
			fmt.Printf("%-36s  %-19s  %-11s  %-4s  %s\n",
				r.RunID,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Status,
				r.Language,
				r.Title,
			)
		}
		return nil
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one run's adapted content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		run, err := s.RunRepo().Get(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("get run: %w", err)
		}
		if run == nil {
			return fmt.Errorf("run %s not found", args[0])
		}

		printRunSummary(run)

		st, err := job.StateFromMap(run.State)
		if err != nil {
			return fmt.Errorf("decode run state: %w", err)
		}

		sep := strings.Repeat("─", 60)
		for _, u := range st.ProcessedContent.MicroUnits {
			fmt.Println()
			fmt.Println(sep)
			fmt.Printf("Unit %d (%d min)", u.UnitNumber, u.EstimatedTimeMinutes)
			if u.LearningObjective != "" {
				fmt.Printf(": %s", u.LearningObjective)
			}
			fmt.Println()
			fmt.Println(sep)
			fmt.Println(u.Content)
			for _, q := range u.CheckQuestions {
				fmt.Println("  ?", q)
			}
		}

		if simplified := st.ProcessedContent.SimplifiedText; simplified != nil {
			fmt.Println()
			fmt.Println(sep)
			fmt.Println("Simplified text")
			fmt.Println(sep)
			if simplified.HasTiers() {
				fmt.Println("basic:       ", simplified.Basic)
				fmt.Println("intermediate:", simplified.Intermediate)
				fmt.Println("advanced:    ", simplified.Advanced)
			} else {
				fmt.Println(simplified.Content)
				for term, def := range simplified.Vocabulary {
					fmt.Printf("  %s: %s\n", term, def)
				}
			}
		}
		return nil
	},
}

func init() {
	runsListCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
}
