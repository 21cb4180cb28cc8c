package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/timvw/red-letter/internal/analyzer"
	"github.com/timvw/red-letter/internal/config"
	"github.com/timvw/red-letter/internal/pacer"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

var (
	// Global flags. Empty values defer to config file / env / defaults.
	flagProvider  string
	flagModel     string
	flagBaseURL   string
	flagAPIKey    string
	flagMaxTokens int64
	flagDir       string
	flagOutput    string
	flagPace      string
)

var rootCmd = &cobra.Command{
	Use:   "red-letter",
	Short: "Count the Savior's directly spoken words in scripture sections",
	Long: `red-letter analyzes a directory of scripture section files and asks an
LLM to count only the words spoken directly by the Savior in each section.

The judgment of which words are the Savior's is delegated entirely to the
model; Go code only builds the prompt, parses the two labeled fields out
of the reply, and accumulates a CSV report.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "", "LLM provider: openai, anthropic")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "LLM model name (default: gpt-4o-mini for openai, claude-haiku-4-5 for anthropic)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "override LLM API base URL")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "override LLM API key")
	rootCmd.PersistentFlags().Int64Var(&flagMaxTokens, "max-tokens", 0, "max completion tokens (default: 500)")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "directory containing the section files")
	rootCmd.PersistentFlags().StringVar(&flagOutput, "output", "", "path of the CSV report (default: output.csv)")
	rootCmd.PersistentFlags().StringVar(&flagPace, "pace", "", "pause between remote calls, e.g. 500ms; 0 disables")
}

// loadConfig loads the layered configuration and applies flag overrides.
// Flags beat env, which beats the config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagProvider != "" {
		cfg.Provider = flagProvider
		if flagModel == "" && os.Getenv("RED_LETTER_MODEL") == "" {
			cfg.Model = config.DefaultModel(cfg.Provider)
		}
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagAPIKey != "" {
		cfg.APIKey = flagAPIKey
	}
	if flagMaxTokens > 0 {
		cfg.MaxTokens = flagMaxTokens
	}
	if flagDir != "" {
		cfg.Dir = flagDir
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	if flagPace != "" {
		cfg.Pace = flagPace
		d, err := cfg.ParsePace()
		if err != nil {
			return nil, err
		}
		cfg.PaceDuration = d
	}
	// Flag-selected provider may need the matching env key fallback again.
	if cfg.APIKey == "" {
		switch cfg.Provider {
		case "openai":
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		case "anthropic":
			cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}
	return cfg, nil
}

// buildAnalyzer constructs the configured LLM analyzer. The client is
// created once and reused for every section in the run.
func buildAnalyzer(cfg *config.Config) (analyzer.Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case "anthropic":
		return analyzer.NewAnthropicAnalyzer(analyzer.AnthropicConfig{
			BaseURL:   cfg.BaseURL,
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
		}), nil
	default:
		return analyzer.NewOpenAIAnalyzer(analyzer.OpenAIConfig{
			BaseURL:   cfg.BaseURL,
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
		}), nil
	}
}

// buildPacer constructs the pacing policy: a token bucket when a
// sustained rate is configured, otherwise a fixed post-section pause.
func buildPacer(cfg *config.Config) pacer.Pacer {
	if cfg.Rate > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		return pacer.NewLimiter(cfg.Rate, burst)
	}
	if cfg.PaceDuration <= 0 {
		return pacer.Nop{}
	}
	return pacer.Fixed{Delay: cfg.PaceDuration}
}
