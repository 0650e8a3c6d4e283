package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairedu/adapt/internal/llm"
	"github.com/fairedu/adapt/internal/profile"
	"github.com/fairedu/adapt/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Classify a learner questionnaire without running the pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		questionnairePath, _ := cmd.Flags().GetString("questionnaire")
		lang, _ := cmd.Flags().GetString("language")

		data, err := os.ReadFile(questionnairePath)
		if err != nil {
			return fmt.Errorf("read questionnaire: %w", err)
		}
		var answers map[string]any
		if err := json.Unmarshal(data, &answers); err != nil {
			return fmt.Errorf("parse questionnaire: %w", err)
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
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		cfg := profile.DefaultConfig()
		cfg.Language = lang
		analyzer := profile.NewAnalyzer(provider, cfg)
		analysis, strategies, fromModel := analyzer.Analyze(ctx, answers)

		fmt.Println("Difficulty:", analysis.DifficultyType)
		fmt.Println("Severity:  ", analysis.SeverityLevel)
		if !fromModel {
			fmt.Println("Source:     default classification (model unavailable or unparseable)")
		}
		if len(strategies.Primary) > 0 {
			fmt.Println("\nPrimary strategies:")
			for _, s := range strategies.Primary {
				fmt.Println("  -", s)
			}
		}
		if len(strategies.Secondary) > 0 {
			fmt.Println("\nSecondary strategies:")
			for _, s := range strategies.Secondary {
				fmt.Println("  -", s)
			}
		}
		return nil
	},
}

func init() {
	profileCmd.Flags().StringP("questionnaire", "q", "", "Path to the questionnaire answers JSON file")
	profileCmd.Flags().StringP("language", "l", "en", "Output language: en or zh")
	_ = profileCmd.MarkFlagRequired("questionnaire")
}
