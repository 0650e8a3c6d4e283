package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairedu/adapt/internal/highlight"
	"github.com/fairedu/adapt/internal/llm"
	"github.com/fairedu/adapt/internal/state"
	"github.com/fairedu/adapt/internal/store"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight",
	Short: "Highlight salient spans in a text file",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		diffFlag, _ := cmd.Flags().GetString("difficulty")
		render, _ := cmd.Flags().GetString("render")
		withCSS, _ := cmd.Flags().GetBool("css")
		rulesOnly, _ := cmd.Flags().GetBool("rules")

		diff, err := parseDifficulty(diffFlag)
		if err != nil {
			return err
		}

		var renderer highlight.Renderer
		switch render {
		case "html":
			renderer = highlight.HTMLRenderer{}
		case "term":
			renderer = highlight.TermRenderer{}
		default:
			return fmt.Errorf("invalid renderer %q (want html or term)", render)
		}

		content, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		ctx := cmd.Context()

		var detector highlight.Detector = highlight.RuleDetector{}
		if !rulesOnly {
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
				fmt.Fprintln(os.Stderr, "LLM provider not configured, using rule-based detection:", err)
			} else {
				detector = highlight.NewLLMDetector(provider, 2000, 0.3, "en")
			}
		}

		engine := highlight.NewEngine(detector, nil, renderer)
		out := engine.Highlight(ctx, string(content), diff)

		if withCSS && render == "html" {
			fmt.Printf("<style>\n%s</style>\n", highlight.CSS())
		}
		fmt.Println(out)
		return nil
	},
}

func parseDifficulty(s string) (state.DifficultyType, error) {
	switch s {
	case "adhd":
		return state.DifficultyADHD, nil
	case "dyslexia":
		return state.DifficultyDyslexia, nil
	case "combined":
		return state.DifficultyCombined, nil
	case "none":
		return state.DifficultyNone, nil
	}
	return "", fmt.Errorf("invalid difficulty %q (want adhd, dyslexia, combined, or none)", s)
}

func init() {
	highlightCmd.Flags().StringP("input", "i", "", "Path to the text file to highlight")
	highlightCmd.Flags().StringP("difficulty", "d", "adhd", "Difficulty type: adhd, dyslexia, combined, or none")
	highlightCmd.Flags().StringP("render", "r", "html", "Renderer: html or term")
	highlightCmd.Flags().Bool("css", false, "Prepend the stylesheet to HTML output")
	highlightCmd.Flags().Bool("rules", false, "Use rule-based detection only, no model call")
	_ = highlightCmd.MarkFlagRequired("input")
}
