package selector

import "fmt"

// Route classifies a synthesis method into a known route family.
type Route string

const (
	// RouteSolidState is conventional solid-state reaction synthesis.
	RouteSolidState Route = "solid_state"

	// RouteSolGel is sol-gel synthesis.
	RouteSolGel Route = "sol_gel"

	// RouteHydrothermal is hydrothermal or autoclave synthesis.
	RouteHydrothermal Route = "hydrothermal"

	// RouteSolvothermal is solvothermal synthesis in a non-aqueous solvent.
	RouteSolvothermal Route = "solvothermal"

	// RouteCoprecipitation is co-precipitation synthesis.
	RouteCoprecipitation Route = "coprecipitation"

	// RouteCombustion is solution combustion synthesis.
	RouteCombustion Route = "combustion"

	// RouteUnknown is the fallback when no route family can be assigned.
	RouteUnknown Route = "unknown"
)

// AllRoutes returns every defined route, RouteUnknown last.
func AllRoutes() []Route {
	return []Route{
		RouteSolidState,
		RouteSolGel,
		RouteHydrothermal,
		RouteSolvothermal,
		RouteCoprecipitation,
		RouteCombustion,
		RouteUnknown,
	}
}

// IsValid returns true if the route is a defined value.
func (r Route) IsValid() bool {
	switch r {
	case RouteSolidState, RouteSolGel, RouteHydrothermal, RouteSolvothermal,
		RouteCoprecipitation, RouteCombustion, RouteUnknown:
		return true
	default:
		return false
	}
}

// String returns the string representation of the route.
func (r Route) String() string {
	return string(r)
}

// ParseRoute parses a string into a Route value.
// Returns an error if the string is not a defined route.
func ParseRoute(s string) (Route, error) {
	route := Route(s)
	if !route.IsValid() {
		return "", fmt.Errorf("invalid route: %s", s)
	}
	return route, nil
}

// Confidence grades how much trust a decision carries.
type Confidence string

const (
	// ConfidenceHigh means the decision came from a source that saw the
	// full variant evidence and committed to an answer.
	ConfidenceHigh Confidence = "high"

	// ConfidenceMedium means the decision rests on heuristics.
	ConfidenceMedium Confidence = "medium"

	// ConfidenceLow means the decision is a weakly supported guess.
	ConfidenceLow Confidence = "low"

	// ConfidenceNone means the decision is a pure fallback default.
	ConfidenceNone Confidence = "none"
)

// IsValid returns true if the confidence is a defined value.
func (c Confidence) IsValid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow, ConfidenceNone:
		return true
	default:
		return false
	}
}

// String returns the string representation of the confidence.
func (c Confidence) String() string {
	return string(c)
}

// ParseConfidence parses a string into a Confidence value.
// Returns an error if the string is not a defined confidence.
func ParseConfidence(s string) (Confidence, error) {
	conf := Confidence(s)
	if !conf.IsValid() {
		return "", fmt.Errorf("invalid confidence: %s", s)
	}
	return conf, nil
}

// Decision is the outcome of variant selection.
type Decision struct {
	// VariantIndex is the 1-based index of the chosen variant.
	VariantIndex int `json:"variant_index"`

	// Route is the assigned route family.
	Route Route `json:"route"`

	// Confidence grades the decision.
	Confidence Confidence `json:"confidence"`

	// Reason is a short human-readable justification.
	Reason string `json:"reason,omitempty"`
}
