package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/maplecheck/internal/advice"
	"github.com/abhisek/maplecheck/internal/app"
	"github.com/abhisek/maplecheck/internal/draws"
	"github.com/abhisek/maplecheck/internal/llm"
)

var rootCmd = &cobra.Command{
	Use:   "maplecheck",
	Short: "Express Entry eligibility checker for your terminal",
	Long: `MapleCheck — answer a short questionnaire, get your Comprehensive
Ranking System score, and see how it stacks up against recent
Express Entry invitation rounds.

An LLM API key (ANTHROPIC_API_KEY, OPENAI_API_KEY or GEMINI_API_KEY)
unlocks a personalized improvement plan on the results screen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := resolveDraws(cmd)
		if err != nil {
			return err
		}

		return app.Run(app.Options{
			AdviceService: buildAdviceService(cmd),
			History:       history,
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("draws", "", "Path to a YAML file with draw history (overrides the built-in set)")
	rootCmd.PersistentFlags().String("log-file", "", "Write LLM request logs to this file (overrides MAPLECHECK_LOG_FILE)")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(drawsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDraws returns the draw history from --draws (highest priority),
// then the MAPLECHECK_DRAWS env var, then the built-in seed set.
func resolveDraws(cmd *cobra.Command) ([]draws.Draw, error) {
	path, _ := cmd.Flags().GetString("draws")
	if path == "" {
		path = os.Getenv("MAPLECHECK_DRAWS")
	}
	if path == "" {
		return draws.Seed(), nil
	}
	history, err := draws.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load draw history: %w", err)
	}
	return history, nil
}

// buildAdviceService wires an advice service from environment configuration.
// Returns nil when no LLM is configured; the app runs fine without one.
func buildAdviceService(cmd *cobra.Command) *advice.Service {
	var cfg llm.Config
	if os.Getenv("MAPLECHECK_LLM_PROVIDER") != "" {
		cfg = llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "warning:", err)
			return nil
		}
	} else {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil
		}
		cfg = discovered
	}

	provider, err := llm.NewProvider(cmd.Context(), cfg, buildLLMLogger(cmd))
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: LLM provider:", err)
		return nil
	}

	return advice.NewService(provider, advice.DefaultConfig())
}

// buildLLMLogger opens the request log file if one is configured. Logging
// to stderr would corrupt the TUI, so no file means no logging.
func buildLLMLogger(cmd *cobra.Command) *log.Logger {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		path = os.Getenv("MAPLECHECK_LOG_FILE")
	}
	if path == "" {
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: open log file:", err)
		return nil
	}

	logger := log.New(f)
	logger.SetLevel(log.DebugLevel)
	return logger
}
