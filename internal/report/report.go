// Package report accumulates per-section results and serializes them as
// the final CSV report.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/timvw/red-letter/internal/model"
)

// Header is the fixed CSV header row.
var Header = []string{"section", "words", "confidence"}

// Report is the ordered sequence of results for one run. Results are
// appended in processing order and never mutated afterward.
type Report struct {
	results []model.Result
}

// New returns an empty report.
func New() *Report {
	return &Report{}
}

// Add appends one result. Call exactly once per processed section.
func (r *Report) Add(res model.Result) {
	r.results = append(r.results, res)
}

// Results returns the accumulated results in processing order.
func (r *Report) Results() []model.Result {
	return r.results
}

// Summary holds the run counters printed at the end of a run.
type Summary struct {
	// Total is the number of sections processed.
	Total int
	// Succeeded is the number of sections with a valid count.
	Succeeded int
	// TotalWords is the sum of all successfully parsed word counts.
	TotalWords int
}

// Summary computes the run counters over the accumulated results.
func (r *Report) Summary() Summary {
	s := Summary{Total: len(r.results)}
	for _, res := range r.results {
		if res.Failed {
			continue
		}
		s.Succeeded++
		s.TotalWords += res.Words
	}
	return s
}

// WriteCSV serializes the report to path: a header row followed by one
// row per result, in processing order. An existing file is silently
// replaced. The write is not atomic; it runs after all processing is
// complete, so a failure here aborts the run.
func (r *Report) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}
	for _, res := range r.results {
		row := []string{
			strconv.Itoa(res.Section),
			res.WordsField(),
			strconv.Itoa(res.Confidence),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing report row for section %d: %w", res.Section, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report file: %w", err)
	}
	return nil
}
