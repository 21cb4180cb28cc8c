package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "red-letter"

// Metrics holds all OTEL metric instruments for red-letter. All counters
// are cumulative (monotonic).
type Metrics struct {
	// LLM token counters (partitioned by provider + model via attributes)
	InputTokens  metric.Int64Counter
	OutputTokens metric.Int64Counter

	// Section counter (partitioned by outcome: ok, error)
	Sections metric.Int64Counter

	// WordsCounted accumulates the parsed word counts across sections.
	WordsCounted metric.Int64Counter
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered (safe to call unconditionally).
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.InputTokens, err = meter.Int64Counter("llm.tokens.input",
		metric.WithDescription("Total LLM input tokens consumed"),
		metric.WithUnit("{token}"))
	if err != nil {
		return nil, err
	}

	m.OutputTokens, err = meter.Int64Counter("llm.tokens.output",
		metric.WithDescription("Total LLM output tokens consumed"),
		metric.WithUnit("{token}"))
	if err != nil {
		return nil, err
	}

	m.Sections, err = meter.Int64Counter("sections.analyzed",
		metric.WithDescription("Total sections analyzed, partitioned by outcome (ok, error)"))
	if err != nil {
		return nil, err
	}

	m.WordsCounted, err = meter.Int64Counter("words.counted",
		metric.WithDescription("Total words attributed to the Savior across analyzed sections"),
		metric.WithUnit("{word}"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordTokens records LLM token usage on the metric counters.
func (m *Metrics) RecordTokens(ctx context.Context, provider, model string, input, output int64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("llm.provider", provider),
		attribute.String("llm.model", model),
	)
	m.InputTokens.Add(ctx, input, attrs)
	m.OutputTokens.Add(ctx, output, attrs)
}

// RecordSection records one analyzed section with the given outcome.
func (m *Metrics) RecordSection(ctx context.Context, outcome string) {
	if m == nil {
		return
	}
	m.Sections.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordWords adds a parsed word count to the running total.
func (m *Metrics) RecordWords(ctx context.Context, words int64) {
	if m == nil {
		return
	}
	m.WordsCounted.Add(ctx, words)
}
