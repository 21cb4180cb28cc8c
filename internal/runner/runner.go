// Package runner drives the batch pipeline: read each section, ask the
// analyzer for a count, record the result, pace, repeat.
package runner

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/timvw/red-letter/internal/analyzer"
	"github.com/timvw/red-letter/internal/corpus"
	"github.com/timvw/red-letter/internal/model"
	rlotel "github.com/timvw/red-letter/internal/otel"
	"github.com/timvw/red-letter/internal/pacer"
	"github.com/timvw/red-letter/internal/report"
)

var tracer = otel.Tracer("red-letter/runner")

// Runner processes sections strictly sequentially. A failure on one
// section is recorded as an error-sentinel result and never aborts the
// run; the report ends up with exactly one row per section, in order.
type Runner struct {
	Analyzer analyzer.Analyzer
	Pacer    pacer.Pacer
	Metrics  *rlotel.Metrics // nil-safe
	Progress io.Writer       // per-section progress lines; nil silences them
}

// Run analyzes every section and returns the accumulated report.
func (r *Runner) Run(ctx context.Context, sections []corpus.Section) *report.Report {
	ctx, span := tracer.Start(ctx, "run",
		trace.WithAttributes(attribute.Int("sections.total", len(sections))))
	defer span.End()

	rep := report.New()
	for i, section := range sections {
		r.progressf("Processing Section %d (%d/%d)...\n", section.Number, i+1, len(sections))

		res := r.analyzeSection(ctx, section)
		rep.Add(res)

		if res.Failed {
			r.progressf("  → Failed to get count\n\n")
		} else {
			r.progressf("  → %d words (confidence: %d%%)\n\n", res.Words, res.Confidence)
		}

		if r.Pacer != nil {
			if err := r.Pacer.Wait(ctx); err != nil {
				// Context cancelled mid-run; no further sections will be
				// attempted, and their rows are simply absent.
				break
			}
		}
	}

	s := rep.Summary()
	span.SetAttributes(
		attribute.Int("sections.succeeded", s.Succeeded),
		attribute.Int("words.total", s.TotalWords),
	)
	return rep
}

// analyzeSection reads and analyzes one section. All failures collapse to
// an error-sentinel result: this is the only error recovery in the run.
func (r *Runner) analyzeSection(ctx context.Context, section corpus.Section) model.Result {
	ctx, span := tracer.Start(ctx, "analyze_section",
		trace.WithAttributes(attribute.Int("section.number", section.Number)))
	defer span.End()

	content, err := section.Read()
	if err != nil {
		r.progressf("Error reading section %d: %v\n", section.Number, err)
		r.Metrics.RecordSection(ctx, "error")
		return model.Result{Section: section.Number, Failed: true}
	}

	count, err := r.Analyzer.Count(ctx, section.Number, content)
	if err != nil {
		r.progressf("Error processing section %d: %v\n", section.Number, err)
		r.Metrics.RecordSection(ctx, "error")
		return model.Result{Section: section.Number, Failed: true}
	}

	r.Metrics.RecordTokens(ctx, r.Analyzer.Provider(), r.Analyzer.Model(),
		count.Usage.InputTokens, count.Usage.OutputTokens)

	res := model.FromCount(section.Number, count)
	if res.Failed {
		r.Metrics.RecordSection(ctx, "error")
	} else {
		r.Metrics.RecordSection(ctx, "ok")
		r.Metrics.RecordWords(ctx, int64(res.Words))
	}

	span.SetAttributes(
		attribute.Bool("section.failed", res.Failed),
		attribute.Int("section.words", res.Words),
	)
	return res
}

func (r *Runner) progressf(format string, args ...any) {
	if r.Progress == nil {
		return
	}
	fmt.Fprintf(r.Progress, format, args...)
}
