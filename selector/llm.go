package selector

import (
	"context"
	"fmt"
	"strings"

	"github.com/aitom-ai/synthkg/llm"
	"github.com/aitom-ai/synthkg/parser"
	"github.com/aitom-ai/synthkg/synthesis"
)

const selectionSystemPrompt = `You are an inorganic-materials synthesis expert.
You are shown a numbered list of synthesis method variants for one material.
Pick the variant a chemist would follow to reproduce the material, and classify
its synthesis route.

Respond with valid JSON only:
{"variant": <1-based index>, "route": "<solid_state|sol_gel|hydrothermal|solvothermal|coprecipitation|combustion|unknown>", "confidence": "<high|medium|low>", "reason": "<one sentence>"}`

// llmDecision mirrors the JSON shape the model is asked to produce.
type llmDecision struct {
	Variant    int    `json:"variant"`
	Route      string `json:"route"`
	Confidence string `json:"confidence"`
	Reason     string `json:"reason"`
}

// LLMSelector asks a language model to choose and classify. Every failure
// mode degrades to the fallback decision (variant 1, unknown route) instead
// of failing the caller; the returned error describes what went wrong so it
// can be logged.
type LLMSelector struct {
	completer llm.Completer
}

// NewLLMSelector creates a selector backed by the given completer.
func NewLLMSelector(completer llm.Completer) *LLMSelector {
	return &LLMSelector{completer: completer}
}

// Decide sends the variant overview to the model and parses its choice.
func (s *LLMSelector) Decide(ctx context.Context, summaries []synthesis.VariantSummary) (Decision, error) {
	fallback := Decision{
		VariantIndex: 1,
		Route:        RouteUnknown,
		Confidence:   ConfidenceNone,
		Reason:       "fallback: defaulted to first variant",
	}
	if len(summaries) == 0 {
		return fallback, nil
	}
	if len(summaries) == 1 {
		d, _ := NewRuleSelector().Decide(ctx, summaries)
		d.Reason = "single variant available"
		return d, nil
	}

	overview := synthesis.FormatOverview(summaries)
	resp, err := s.completer.Complete(ctx,
		[]llm.Message{
			{Role: llm.RoleSystem, Content: selectionSystemPrompt},
			{Role: llm.RoleUser, Content: overview},
		},
		llm.WithTemperature(0.0),
		llm.WithMaxTokens(256),
	)
	if err != nil {
		return fallback, fmt.Errorf("selection completion: %w", err)
	}

	raw, err := parser.ExtractJSONObject(resp.Content)
	if err != nil {
		return fallback, fmt.Errorf("selection response: %w", err)
	}
	parsed, err := parser.ParseJSON[llmDecision](([]byte)(raw))
	if err != nil {
		return fallback, fmt.Errorf("selection response: %w", err)
	}

	return s.sanitize(*parsed, len(summaries)), nil
}

// sanitize clamps the model's output onto the defined value space. An
// out-of-range index or unknown enum string never escapes to the caller.
func (s *LLMSelector) sanitize(d llmDecision, variants int) Decision {
	out := Decision{
		VariantIndex: d.Variant,
		Reason:       strings.TrimSpace(d.Reason),
	}
	if out.VariantIndex < 1 || out.VariantIndex > variants {
		out.VariantIndex = 1
	}

	route, err := ParseRoute(strings.ToLower(strings.TrimSpace(d.Route)))
	if err != nil {
		route = RouteUnknown
	}
	out.Route = route

	conf, err := ParseConfidence(strings.ToLower(strings.TrimSpace(d.Confidence)))
	if err != nil {
		conf = ConfidenceLow
	}
	out.Confidence = conf
	return out
}
