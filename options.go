package synthkg

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/aitom-ai/synthkg/formula"
	"github.com/aitom-ai/synthkg/llm"
	"github.com/aitom-ai/synthkg/selector"
)

// AnswerCache is the subset of the cache API the engine needs. The redis
// implementation in the cache package satisfies it.
type AnswerCache interface {
	Get(ctx context.Context, question string, out any) (bool, error)
	Set(ctx context.Context, question string, payload any) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger for the engine.
// If not provided, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTracer sets an OpenTelemetry tracer for distributed tracing.
func WithTracer(tracer trace.Tracer) Option {
	return func(e *Engine) {
		e.tracer = tracer
	}
}

// WithMeterProvider sets an OpenTelemetry meter provider for engine
// metrics. Instrument creation failures are logged and metrics stay
// disabled; they never fail engine construction.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(e *Engine) {
		e.meterProvider = provider
	}
}

// WithCompleter sets the language model used for answer generation and, by
// default, variant selection. Without a completer the engine answers with
// deterministic procedure text.
func WithCompleter(completer llm.Completer) Option {
	return func(e *Engine) {
		e.completer = completer
	}
}

// WithSelector overrides the variant selector. The default is a rule-based
// selector, upgraded to a model-backed one when a completer is configured.
func WithSelector(sel selector.Selector) Option {
	return func(e *Engine) {
		e.selector = sel
	}
}

// WithCache sets the answer cache. Without one every question is computed
// fresh.
func WithCache(cache AnswerCache) Option {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithMaxSteps overrides the step-chain walk bound. Values <= 0 keep the
// default.
func WithMaxSteps(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxSteps = n
		}
	}
}

// WithFormulaOptions overrides formula extraction options.
func WithFormulaOptions(opts formula.Options) Option {
	return func(e *Engine) {
		e.formulaOpts = opts
	}
}
