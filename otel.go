package synthkg

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// engineMetrics holds the OpenTelemetry metric instruments for the engine.
// These are created once during construction and reused for every question.
type engineMetrics struct {
	// questionCounter increments for each question answered
	questionCounter metric.Int64Counter

	// resolutionFailures counts questions mentioning no known material
	resolutionFailures metric.Int64Counter

	// walkTruncations counts step-chain walks stopped by a cycle or bound
	walkTruncations metric.Int64Counter

	// stepHistogram records walked step counts per chosen variant
	stepHistogram metric.Int64Histogram

	// completionDuration records model completion duration in milliseconds
	completionDuration metric.Float64Histogram
}

// initEngineMetrics creates and initializes all OpenTelemetry metric
// instruments from the configured meter provider.
func initEngineMetrics(provider metric.MeterProvider) (*engineMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter("github.com/aitom-ai/synthkg")
	m := &engineMetrics{}
	var err error

	m.questionCounter, err = meter.Int64Counter(
		"synthkg.questions",
		metric.WithDescription("Number of questions answered"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create question counter: %w", err)
	}

	m.resolutionFailures, err = meter.Int64Counter(
		"synthkg.resolution_failures",
		metric.WithDescription("Questions mentioning no known material"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create resolution failure counter: %w", err)
	}

	m.walkTruncations, err = meter.Int64Counter(
		"synthkg.walk_truncations",
		metric.WithDescription("Step-chain walks stopped by a cycle or the step bound"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create walk truncation counter: %w", err)
	}

	m.stepHistogram, err = meter.Int64Histogram(
		"synthkg.steps",
		metric.WithDescription("Walked step count of the chosen variant"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create step histogram: %w", err)
	}

	m.completionDuration, err = meter.Float64Histogram(
		"synthkg.completion_duration",
		metric.WithDescription("Model completion duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create completion duration histogram: %w", err)
	}

	return m, nil
}

// recordQuestion records per-question metrics. Skips silently when metrics
// are not configured so the answer path never depends on observability.
func (m *engineMetrics) recordQuestion(ctx context.Context, resolved bool, cacheHit bool) {
	if m == nil {
		return
	}
	m.questionCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("resolved", resolved),
		attribute.Bool("cache_hit", cacheHit),
	))
	if !resolved {
		m.resolutionFailures.Add(ctx, 1)
	}
}

// recordTruncation counts one truncated walk for the given method label.
func (m *engineMetrics) recordTruncation(ctx context.Context, methodLabel string) {
	if m == nil {
		return
	}
	m.walkTruncations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", methodLabel),
	))
}

// recordChosenVariant records the step count of the variant presented.
func (m *engineMetrics) recordChosenVariant(ctx context.Context, steps int) {
	if m == nil {
		return
	}
	m.stepHistogram.Record(ctx, int64(steps))
}

// recordCompletion records one model call's duration and outcome.
func (m *engineMetrics) recordCompletion(ctx context.Context, ms float64, ok bool) {
	if m == nil {
		return
	}
	m.completionDuration.Record(ctx, ms, metric.WithAttributes(
		attribute.Bool("ok", ok),
	))
}
