package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/timvw/red-letter/internal/corpus"
	rlotel "github.com/timvw/red-letter/internal/otel"
	"github.com/timvw/red-letter/internal/runner"
)

var (
	checkmark    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("✓")
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Analyze every section and write the CSV report",
	Long: `Analyze every section file in the corpus directory, one at a time.

Each section's text is sent to the configured LLM with a strict
output-format prompt; the reply's WORD_COUNT and CONFIDENCE lines are
parsed and accumulated. A failure on one section records an ERROR row
and never aborts the run. When all sections are done, the report is
written as CSV and a summary is printed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		a, err := buildAnalyzer(cfg)
		if err != nil {
			return err
		}

		rlotel.Version = Version
		tel, err := rlotel.Init(ctx, rlotel.Config{
			Endpoint: cfg.OTELEndpoint,
			Headers:  cfg.OTELHeaders,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: otel init failed: %v\n", err)
		} else {
			defer tel.Shutdown(context.WithoutCancel(ctx))
		}

		fmt.Println("Starting Doctrine and Covenants word count analysis...")

		sections, err := corpus.Scan(cfg.Dir)
		if err != nil {
			return fmt.Errorf("scanning corpus dir %s: %w", cfg.Dir, err)
		}
		fmt.Printf("Found %d sections to process\n\n", len(sections))

		r := &runner.Runner{
			Analyzer: a,
			Pacer:    buildPacer(cfg),
			Progress: os.Stdout,
		}
		if tel != nil {
			r.Metrics = tel.Metrics
		}

		rep := r.Run(ctx, sections)

		if err := rep.WriteCSV(cfg.Output); err != nil {
			return err
		}

		s := rep.Summary()
		fmt.Printf("\n%s %s\n", checkmark, summaryStyle.Render("Analysis complete! Results written to "+cfg.Output))
		fmt.Printf("  Processed %d sections\n", s.Total)
		fmt.Printf("  Successfully analyzed: %d/%d\n", s.Succeeded, s.Total)
		fmt.Printf("  Total words of the Savior: %s\n", groupDigits(s.TotalWords))
		return nil
	},
}

// groupDigits renders n with thousands separators (12345 -> "12,345").
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + groupDigits(-n)
	}
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}

func init() {
	rootCmd.AddCommand(runCmd)
}
