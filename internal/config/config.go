// Package config loads red-letter configuration from file and environment.
//
// Precedence (highest to lowest):
//  1. Environment variables (RED_LETTER_*)
//  2. Config file
//  3. Built-in defaults
//
// Config file search order:
//  1. .red-letter.yaml in current directory
//  2. ~/.config/red-letter/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all red-letter configuration.
type Config struct {
	// LLM settings
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	MaxTokens int64  `yaml:"max_tokens"`

	// Corpus and report locations
	Dir    string `yaml:"dir"`
	Output string `yaml:"output"`

	// Pacing between remote calls
	Pace  string  `yaml:"pace"`  // Go duration string, e.g. "500ms"; "0" disables
	Rate  float64 `yaml:"rate"`  // sustained requests/sec; > 0 switches to token-bucket pacing
	Burst int     `yaml:"burst"` // token-bucket burst size

	// OTEL
	OTELEndpoint string `yaml:"otel_endpoint"`
	OTELHeaders  string `yaml:"otel_headers"`

	// PaceDuration is the parsed pace (not from YAML, set after loading).
	PaceDuration time.Duration `yaml:"-"`

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		Provider:  "openai",
		MaxTokens: 500,
		Dir:       "Doctrine and Covenants",
		Output:    "output.csv",
		Pace:      "500ms",
		Burst:     1,
	}
}

// DefaultModel returns the default model for a provider.
func DefaultModel(provider string) string {
	switch provider {
	case "anthropic":
		return "claude-haiku-4-5"
	default:
		return "gpt-4o-mini"
	}
}

// Load reads configuration from file and environment variables.
// Environment variables always override file values.
func Load() (*Config, error) {
	cfg := Defaults()

	if path, data, err := findConfigFile(); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
		mergeFile(cfg, &fileCfg)
	}

	mergeEnv(cfg)

	var err error
	cfg.PaceDuration, err = parseDurationOrDisable(cfg.Pace, 500*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("invalid pace %q: %w", cfg.Pace, err)
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel(cfg.Provider)
	}

	return cfg, nil
}

// ParsePace parses the Pace field into a duration.
func (c *Config) ParsePace() (time.Duration, error) {
	return parseDurationOrDisable(c.Pace, 500*time.Millisecond)
}

// Validate checks startup-time requirements. A missing API key is a
// configuration error here, never a per-section failure later.
func (c *Config) Validate() error {
	switch c.Provider {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("unknown provider %q (supported: openai, anthropic)", c.Provider)
	}
	if c.APIKey == "" {
		return fmt.Errorf("no API key found. Set RED_LETTER_API_KEY, OPENAI_API_KEY, or ANTHROPIC_API_KEY")
	}
	return nil
}

// findConfigFile searches for a config file and returns its path and contents.
func findConfigFile() (string, []byte, error) {
	if data, err := os.ReadFile(".red-letter.yaml"); err == nil {
		return ".red-letter.yaml", data, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "red-letter", "config.yaml")
		if data, err := os.ReadFile(path); err == nil {
			return path, data, nil
		}
	}

	return "", nil, fmt.Errorf("no config file found")
}

// mergeFile applies non-zero file values onto cfg.
func mergeFile(cfg *Config, file *Config) {
	if file.Provider != "" {
		cfg.Provider = file.Provider
	}
	if file.Model != "" {
		cfg.Model = file.Model
	}
	if file.BaseURL != "" {
		cfg.BaseURL = file.BaseURL
	}
	if file.APIKey != "" {
		cfg.APIKey = file.APIKey
	}
	if file.MaxTokens > 0 {
		cfg.MaxTokens = file.MaxTokens
	}
	if file.Dir != "" {
		cfg.Dir = file.Dir
	}
	if file.Output != "" {
		cfg.Output = file.Output
	}
	if file.Pace != "" {
		cfg.Pace = file.Pace
	}
	if file.Rate > 0 {
		cfg.Rate = file.Rate
	}
	if file.Burst > 0 {
		cfg.Burst = file.Burst
	}
	if file.OTELEndpoint != "" {
		cfg.OTELEndpoint = file.OTELEndpoint
	}
	if file.OTELHeaders != "" {
		cfg.OTELHeaders = file.OTELHeaders
	}
}

// mergeEnv applies environment variables onto cfg. Env always wins.
func mergeEnv(cfg *Config) {
	if v := os.Getenv("RED_LETTER_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("RED_LETTER_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("RED_LETTER_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("RED_LETTER_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("RED_LETTER_DIR"); v != "" {
		cfg.Dir = v
	}
	if v := os.Getenv("RED_LETTER_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("RED_LETTER_PACE"); v != "" {
		cfg.Pace = v
	}
	if v := os.Getenv("RED_LETTER_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate > 0 {
			cfg.Rate = rate
		}
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}

	// API key fallbacks, matched to the provider in use
	if cfg.APIKey == "" && cfg.Provider == "openai" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.APIKey == "" && cfg.Provider == "anthropic" {
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
}

// parseDurationOrDisable parses a duration string. "0", "off", "disable"
// return 0. Empty string returns the fallback value.
func parseDurationOrDisable(s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	if s == "0" || s == "off" || s == "disable" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
