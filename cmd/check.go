package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/timvw/red-letter/internal/model"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Analyze a single section file",
	Long: `Analyze a single section file and print the structured result as JSON.

Useful for debugging the prompt and the reply parser against one section
without running the whole batch.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		a, err := buildAnalyzer(cfg)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		section := sectionFromFilename(path)

		start := time.Now()
		count, err := a.Count(cmd.Context(), section, string(data))
		if err != nil {
			return fmt.Errorf("analysis failed for %s: %w", path, err)
		}

		out := struct {
			Section    int              `json:"section"`
			Result     model.Result     `json:"result"`
			Usage      model.TokenUsage `json:"usage"`
			Model      string           `json:"model"`
			Provider   string           `json:"provider"`
			DurationMs int64            `json:"duration_ms"`
		}{
			Section:    section,
			Result:     model.FromCount(section, count),
			Usage:      count.Usage,
			Model:      a.Model(),
			Provider:   a.Provider(),
			DurationMs: time.Since(start).Milliseconds(),
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

// sectionFromFilename extracts the section number from a path like
// ".../dc017.md". Falls back to 0 when the name doesn't match; the
// analysis itself doesn't depend on the number being right.
func sectionFromFilename(path string) int {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	digits := strings.TrimLeftFunc(name, func(r rune) bool { return r < '0' || r > '9' })
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
