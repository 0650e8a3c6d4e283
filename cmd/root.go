package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fairedu/adapt/internal/store"

	// Load API keys and ADAPT_* settings from a local .env file.
	_ "github.com/joho/godotenv/autoload"
)

var rootCmd = &cobra.Command{
	Use:   "adapt",
	Short: "Learning-content adaptation for ADHD and dyslexia",
	Long:  "Adapt runs learning material through an LLM-backed pipeline that divides it into micro-units, simplifies its syntax, and expands each unit, shaped by the learner's profile.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ADAPT_DB env var)")

	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(highlightCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then ADAPT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
