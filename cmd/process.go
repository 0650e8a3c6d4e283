package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairedu/adapt/internal/job"
	"github.com/fairedu/adapt/internal/llm"
	"github.com/fairedu/adapt/internal/store"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Run a document through the adaptation pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		materialPath, _ := cmd.Flags().GetString("material")
		questionnairePath, _ := cmd.Flags().GetString("questionnaire")
		title, _ := cmd.Flags().GetString("title")
		lang, _ := cmd.Flags().GetString("language")
		wait, _ := cmd.Flags().GetBool("wait")

		if lang != "auto" && lang != "en" && lang != "zh" {
			return fmt.Errorf("invalid language %q (want auto, en, or zh)", lang)
		}

		material, err := os.ReadFile(materialPath)
		if err != nil {
			return fmt.Errorf("read material: %w", err)
		}

		var questionnaire map[string]any
		if questionnairePath != "" {
			data, err := os.ReadFile(questionnairePath)
			if err != nil {
				return fmt.Errorf("read questionnaire: %w", err)
			}
			if err := json.Unmarshal(data, &questionnaire); err != nil {
				return fmt.Errorf("parse questionnaire: %w", err)
			}
		}

		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Every stage will use its deterministic fallback.")
			provider = llm.NewMockProvider()
		}

		mgr := job.NewManager(provider, st.RunRepo())
		sub := job.Submission{
			Title:         title,
			Content:       string(material),
			Language:      lang,
			Questionnaire: questionnaire,
		}

		if !wait {
			runID, err := mgr.Submit(ctx, sub)
			if err != nil {
				return fmt.Errorf("submit run: %w", err)
			}
			fmt.Println("Queued run", runID)
			fmt.Println("Check progress with: adapt runs show", runID)
			// The worker goroutine dies with the process, so stay
			// alive until the run reaches a terminal status.
			mgr.Wait()
			return nil
		}

		run, err := mgr.Process(ctx, sub)
		if err != nil {
			return fmt.Errorf("process run: %w", err)
		}
		printRunSummary(run)
		return nil
	},
}

func printRunSummary(run *store.PipelineRun) {
	fmt.Println("Run:     ", run.RunID)
	fmt.Println("Status:  ", run.Status)
	fmt.Println("Language:", run.Language)
	if run.ErrorMessage != "" {
		fmt.Println("Error:   ", run.ErrorMessage)
	}

	st, err := job.StateFromMap(run.State)
	if err != nil {
		return
	}
	fmt.Printf("Units:    %d micro, %d detailed\n",
		len(st.ProcessedContent.MicroUnits), len(st.ProcessedContent.DetailedUnits))
	if st.UserProfile.Analysis != nil {
		fmt.Printf("Profile:  %s (severity %d)\n",
			st.UserProfile.Analysis.DifficultyType, st.UserProfile.Analysis.SeverityLevel)
	}
}

func init() {
	processCmd.Flags().StringP("material", "m", "", "Path to the learning material text file")
	processCmd.Flags().StringP("questionnaire", "q", "", "Path to the questionnaire answers JSON file")
	processCmd.Flags().StringP("title", "t", "", "Material title")
	processCmd.Flags().StringP("language", "l", "auto", "Material language: auto, en, or zh")
	processCmd.Flags().BoolP("wait", "w", false, "Process synchronously and print the result summary")
	_ = processCmd.MarkFlagRequired("material")
}
