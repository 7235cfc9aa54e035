package selector

import (
	"context"
	"fmt"
	"strings"

	"github.com/aitom-ai/synthkg/synthesis"
)

// Selector decides which variant to present and how to classify it. Decide
// must always return a Decision whose VariantIndex points at a real entry
// of summaries; a non-nil error explains why the decision is a fallback
// rather than signaling an unusable result.
type Selector interface {
	Decide(ctx context.Context, summaries []synthesis.VariantSummary) (Decision, error)
}

// routeKeywords maps action-text fragments to route families. Order
// matters: the first matching route wins, so the more specific fragments
// come first.
var routeKeywords = []struct {
	fragment string
	route    Route
}{
	{"sol-gel", RouteSolGel},
	{"sol gel", RouteSolGel},
	{"gel", RouteSolGel},
	{"autoclave", RouteHydrothermal},
	{"hydrothermal", RouteHydrothermal},
	{"solvothermal", RouteSolvothermal},
	{"co-precipitat", RouteCoprecipitation},
	{"coprecipitat", RouteCoprecipitation},
	{"precipitat", RouteCoprecipitation},
	{"combust", RouteCombustion},
	{"ignit", RouteCombustion},
	{"calcin", RouteSolidState},
	{"sinter", RouteSolidState},
	{"grind", RouteSolidState},
	{"ball mill", RouteSolidState},
	{"solid state", RouteSolidState},
	{"solid-state", RouteSolidState},
}

// RuleSelector is the deterministic selector: it prefers the most detailed
// variant and classifies the route from action-text keywords. It never
// fails.
type RuleSelector struct{}

// NewRuleSelector creates a RuleSelector.
func NewRuleSelector() *RuleSelector {
	return &RuleSelector{}
}

// Decide picks the variant with the most steps, breaking ties toward the
// earlier variant, and classifies it by keyword.
func (s *RuleSelector) Decide(_ context.Context, summaries []synthesis.VariantSummary) (Decision, error) {
	if len(summaries) == 0 {
		return Decision{VariantIndex: 1, Route: RouteUnknown, Confidence: ConfidenceNone}, nil
	}

	best := 0
	for i, sum := range summaries {
		if sum.StepCount > summaries[best].StepCount {
			best = i
		}
	}

	chosen := summaries[best]
	route := classify(chosen)
	conf := ConfidenceMedium
	if route == RouteUnknown {
		conf = ConfidenceLow
	}
	return Decision{
		VariantIndex: best + 1,
		Route:        route,
		Confidence:   conf,
		Reason:       fmt.Sprintf("most detailed variant (%d steps)", chosen.StepCount),
	}, nil
}

// classify assigns a route family from label and preview text.
func classify(s synthesis.VariantSummary) Route {
	text := strings.ToLower(s.Label + " " + strings.Join(s.Preview, " "))
	for _, kw := range routeKeywords {
		if strings.Contains(text, kw.fragment) {
			return kw.route
		}
	}
	return RouteUnknown
}
