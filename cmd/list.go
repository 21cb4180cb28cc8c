package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/timvw/red-letter/internal/corpus"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the sections found in the corpus directory",
	Long: `List the section files discovered in the corpus directory, in the
order they would be processed. Useful to verify the enumeration before
spending tokens on a full run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		sections, err := corpus.Scan(cfg.Dir)
		if err != nil {
			return fmt.Errorf("scanning corpus dir %s: %w", cfg.Dir, err)
		}

		for _, s := range sections {
			fmt.Printf("%d\t%s\n", s.Number, s.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
