package synthkg

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/aitom-ai/synthkg/formula"
	"github.com/aitom-ai/synthkg/graph"
	"github.com/aitom-ai/synthkg/llm"
	"github.com/aitom-ai/synthkg/selector"
	"github.com/aitom-ai/synthkg/synthesis"
)

const answerSystemPrompt = `You are an inorganic-materials synthesis assistant.
You are given the extracted synthesis procedure for a material. Answer the
user's question using only the procedure text. Describe the steps in order,
keep exact temperatures, durations, and substance names, and do not invent
details the procedure does not contain.`

// snapshot pairs a store with the derived resolver so both swap atomically
// on reload.
type snapshot struct {
	store    *graph.Store
	resolver *synthesis.Resolver
}

// Engine answers synthesis questions over a knowledge graph snapshot. An
// Engine is safe for concurrent use; Reload swaps the graph without
// interrupting in-flight questions.
type Engine struct {
	current atomic.Pointer[snapshot]

	logger        *slog.Logger
	tracer        trace.Tracer
	meterProvider metric.MeterProvider
	metrics       *engineMetrics

	completer llm.Completer
	selector  selector.Selector
	cache     AnswerCache

	maxSteps    int
	formulaOpts formula.Options
}

// NewEngine creates an Engine over the given store.
func NewEngine(store *graph.Store, opts ...Option) *Engine {
	e := &Engine{
		logger:   slog.Default(),
		maxSteps: synthesis.DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.selector == nil {
		if e.completer != nil {
			e.selector = selector.NewLLMSelector(e.completer)
		} else {
			e.selector = selector.NewRuleSelector()
		}
	}

	metrics, err := initEngineMetrics(e.meterProvider)
	if err != nil {
		e.logger.Warn("metric instruments unavailable", "error", err)
	}
	e.metrics = metrics

	e.current.Store(&snapshot{
		store:    store,
		resolver: synthesis.NewResolver(store),
	})
	return e
}

// Reload swaps in a new graph snapshot. Questions already in flight keep
// the snapshot they started with. Callers using an answer cache should
// flush it after reloading.
func (e *Engine) Reload(store *graph.Store) {
	e.current.Store(&snapshot{
		store:    store,
		resolver: synthesis.NewResolver(store),
	})
	e.logger.Info("graph snapshot reloaded", "stats", store.Stats())
}

// Stats reports entity and triple counts for the current snapshot.
func (e *Engine) Stats() graph.Stats {
	return e.current.Load().store.Stats()
}

// AnswerQuestion answers one natural-language question. Questions that
// mention no known material and materials with no recorded methods are
// normal outcomes carried in the Answer, not errors; the error return is
// reserved for invalid input.
func (e *Engine) AnswerQuestion(ctx context.Context, question string) (*Answer, error) {
	const op = "Engine.AnswerQuestion"

	question = strings.TrimSpace(question)
	if question == "" {
		return nil, NewValidationError(op, ErrEmptyQuestion)
	}

	if e.tracer != nil {
		var span trace.Span
		ctx, span = e.tracer.Start(ctx, "synthkg.answer_question")
		defer span.End()
	}

	if e.cache != nil {
		var cached Answer
		hit, err := e.cache.Get(ctx, question, &cached)
		if err != nil {
			e.logger.Warn("cache read failed", "error", err)
		}
		if hit {
			e.metrics.recordQuestion(ctx, cached.TargetMaterial != "", true)
			return &cached, nil
		}
	}

	snap := e.current.Load()

	material, ok := snap.resolver.Resolve(question)
	if !ok {
		e.metrics.recordQuestion(ctx, false, false)
		answer := e.unresolvedAnswer(snap)
		e.storeInCache(ctx, question, answer)
		return answer, nil
	}
	e.metrics.recordQuestion(ctx, true, false)
	e.setSpanMaterial(ctx, material.Label)

	walker := synthesis.NewWalker(snap.store, synthesis.WithMaxSteps(e.maxSteps))
	variants := synthesis.ListMethods(snap.store, material.ID, walker)
	if len(variants) == 0 {
		answer := &Answer{
			AnswerText:     fmt.Sprintf("No synthesis methods are recorded for %s.", material.Label),
			ContextBlocks:  []string{},
			Confidence:     ConfidenceNone,
			TargetMaterial: material.Label,
		}
		e.storeInCache(ctx, question, answer)
		return answer, nil
	}

	blocks := make([]string, 0, len(variants))
	for _, v := range variants {
		blocks = append(blocks, synthesis.FormatSequence(v.Steps, material.Label))
		if v.Truncated {
			e.metrics.recordTruncation(ctx, v.Label)
			e.logger.Warn("step walk truncated", "material", material.Label, "method", v.Label)
		}
	}

	summaries := synthesis.Summarize(variants)
	decision, err := e.selector.Decide(ctx, summaries)
	if err != nil {
		e.logger.Warn("variant selection fell back", "material", material.Label,
			"error", NewCompletionError(op, err))
	}
	if decision.VariantIndex < 1 || decision.VariantIndex > len(variants) {
		decision.VariantIndex = 1
	}
	chosen := variants[decision.VariantIndex-1]
	chosenBlock := blocks[decision.VariantIndex-1]
	e.metrics.recordChosenVariant(ctx, len(chosen.Steps))

	answerText := e.generateAnswer(ctx, question, material.Label, chosenBlock)

	answer := &Answer{
		AnswerText:              answerText,
		ContextBlocks:           blocks,
		Confidence:              ConfidenceHigh,
		TargetMaterial:          material.Label,
		ExtractedFormulas:       e.extractFormulas(chosenBlock, answerText),
		MethodCount:             len(variants),
		ChosenMethodIndex:       decision.VariantIndex,
		ChosenMethodLabel:       chosen.Label,
		SynthesisType:           decision.Route,
		SynthesisTypeConfidence: decision.Confidence,
		SynthesisTypeReason:     decision.Reason,
	}

	e.storeInCache(ctx, question, answer)
	return answer, nil
}

// unresolvedAnswer builds the payload for a question mentioning no known
// material.
func (e *Engine) unresolvedAnswer(snap *snapshot) *Answer {
	hints := snap.resolver.Hints(maxMaterialHints)
	text := "The question does not mention a material I have synthesis data for."
	if len(hints) > 0 {
		text += " Known materials include: " + strings.Join(hints, ", ") + "."
	}
	return &Answer{
		AnswerText:         text,
		ContextBlocks:      []string{},
		Confidence:         ConfidenceNone,
		AvailableMaterials: hints,
	}
}

// generateAnswer produces the answer prose. Without a completer the
// procedure text is the answer. When a completer is configured and fails,
// the failure description becomes the answer text; the procedure stays
// available to the caller in the context blocks.
func (e *Engine) generateAnswer(ctx context.Context, question, materialLabel, procedure string) string {
	if e.completer == nil {
		return procedure
	}

	start := time.Now()
	resp, err := e.completer.Complete(ctx,
		[]llm.Message{
			{Role: llm.RoleSystem, Content: answerSystemPrompt},
			{Role: llm.RoleUser, Content: fmt.Sprintf("Procedure:\n%s\nQuestion: %s", procedure, question)},
		},
		llm.WithTemperature(0.2),
	)
	ms := float64(time.Since(start).Milliseconds())

	if err != nil {
		e.metrics.recordCompletion(ctx, ms, false)
		e.logger.Warn("answer generation failed", "material", materialLabel,
			"error", NewCompletionError("Engine.generateAnswer", err))
		return err.Error()
	}
	if !resp.HasContent() {
		e.metrics.recordCompletion(ctx, ms, false)
		e.logger.Warn("answer generation returned no content", "material", materialLabel)
		return "answer generation returned no content"
	}
	e.metrics.recordCompletion(ctx, ms, true)
	return resp.Content
}

// extractFormulas pulls formulas from the chosen procedure and the answer
// prose.
func (e *Engine) extractFormulas(procedure, answerText string) []string {
	ext := formula.NewExtractor(e.formulaOpts)
	return ext.Extract(procedure + "\n" + answerText)
}

// storeInCache writes the answer through the cache, logging failures.
func (e *Engine) storeInCache(ctx context.Context, question string, answer *Answer) {
	if e.cache == nil {
		return
	}
	if err := e.cache.Set(ctx, question, answer); err != nil {
		e.logger.Warn("cache write failed", "error", err)
	}
}

// setSpanMaterial annotates the active span with the resolved material.
func (e *Engine) setSpanMaterial(ctx context.Context, label string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(attribute.String("material", label))
	}
}
