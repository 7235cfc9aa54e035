package graph

import "fmt"

// Relation is a named directed relation between two entities.
type Relation string

// Fixed relation vocabulary. The store treats these names as opaque keys;
// schema enforcement is the graph-construction pipeline's job.
const (
	// RelHasSynthesisMethod links a Material to one of its Methods.
	RelHasSynthesisMethod Relation = "hasSynthesisMethod"

	// RelConsistOfStep links a Method to a starting Step. A method normally
	// has exactly one starting step, but upstream extraction may produce
	// zero or several.
	RelConsistOfStep Relation = "consistOfStep"

	// RelNextStep links a Step to its successor. Intended to form a
	// singly linked chain, though the data may branch or loop.
	RelNextStep Relation = "nextStep"

	// RelUsesPrecursor links a Step to a precursor substance.
	RelUsesPrecursor Relation = "usesPrecursor"

	// RelUsesSolvent links a Step to a solvent substance.
	RelUsesSolvent Relation = "usesSolvent"

	// RelUsesMedia links a Step to a mixing-media substance.
	RelUsesMedia Relation = "usesMedia"

	// RelUsesAdditive links a Step to an additive substance.
	RelUsesAdditive Relation = "usesAdditive"

	// RelPerformedUnder links a Step to its Condition.
	RelPerformedUnder Relation = "performedUnder"

	// RelProducesProduct links a Step to the product it yields.
	RelProducesProduct Relation = "producesProduct"
)

// String returns the relation name.
func (r Relation) String() string {
	return string(r)
}

// IsValid returns true if the relation is part of the fixed vocabulary.
func (r Relation) IsValid() bool {
	switch r {
	case RelHasSynthesisMethod, RelConsistOfStep, RelNextStep,
		RelUsesPrecursor, RelUsesSolvent, RelUsesMedia, RelUsesAdditive,
		RelPerformedUnder, RelProducesProduct:
		return true
	default:
		return false
	}
}

// ParseRelation parses a relation name into a Relation value.
func ParseRelation(s string) (Relation, error) {
	r := Relation(s)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown relation: %s", s)
	}
	return r, nil
}

// AllRelations returns the full relation vocabulary.
func AllRelations() []Relation {
	return []Relation{
		RelHasSynthesisMethod, RelConsistOfStep, RelNextStep,
		RelUsesPrecursor, RelUsesSolvent, RelUsesMedia, RelUsesAdditive,
		RelPerformedUnder, RelProducesProduct,
	}
}
