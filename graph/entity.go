package graph

import "errors"

// Kind identifies the entity class of a graph node.
type Kind string

const (
	// KindMaterial is an inorganic target material.
	KindMaterial Kind = "InorganicMaterial"

	// KindMethod is one documented synthesis route for a material.
	KindMethod Kind = "SynthesisMethod"

	// KindStep is one discrete action in a synthesis procedure.
	KindStep Kind = "SynthesisStep"

	// KindPrecursor is a starting substance consumed by a step.
	KindPrecursor Kind = "Precursor"

	// KindSolvent is a solvent substance used by a step.
	KindSolvent Kind = "Solvent"

	// KindMedia is a mixing-media substance used by a step.
	KindMedia Kind = "Media"

	// KindAdditive is an auxiliary additive substance used by a step.
	KindAdditive Kind = "Additive"

	// KindProduct is a substance produced by a step.
	KindProduct Kind = "Product"

	// KindCondition is a bundle of physical parameters attached to a step.
	KindCondition Kind = "Condition"
)

// Material is a named inorganic chemical substance that can be the target of
// a synthesis query. Label is the unique lookup key for resolution.
type Material struct {
	// ID is the unique entity identifier. Assigned by the Builder if empty.
	ID string `json:"id"`

	// Label is the display name and the unique resolution key.
	Label string `json:"label"`

	// Acronym is an optional short name from the source literature.
	Acronym string `json:"acronym,omitempty"`

	// Phase is an optional crystal phase annotation.
	Phase string `json:"phase,omitempty"`

	// OxygenDeficiency is an optional oxygen-deficiency annotation,
	// preserved as given by the extraction pipeline.
	OxygenDeficiency string `json:"oxygen_deficiency,omitempty"`
}

// NewMaterial creates a Material with the given display label.
func NewMaterial(label string) Material {
	return Material{Label: label}
}

// WithAcronym sets the acronym and returns the material for chaining.
func (m Material) WithAcronym(a string) Material {
	m.Acronym = a
	return m
}

// WithPhase sets the phase annotation and returns the material for chaining.
func (m Material) WithPhase(p string) Material {
	m.Phase = p
	return m
}

// WithOxygenDeficiency sets the oxygen-deficiency annotation and returns the
// material for chaining.
func (m Material) WithOxygenDeficiency(d string) Material {
	m.OxygenDeficiency = d
	return m
}

// Validate checks that the material has a label.
func (m Material) Validate() error {
	if m.Label == "" {
		return errors.New("material label is required")
	}
	return nil
}

// Method is one documented synthesis route for a Material.
type Method struct {
	// ID is the unique entity identifier. Assigned by the Builder if empty.
	ID string `json:"id"`

	// Label is the human-readable method name.
	Label string `json:"label"`

	// Reaction is an optional free-text reaction equation.
	Reaction string `json:"reaction,omitempty"`
}

// NewMethod creates a Method with the given identifier and label.
func NewMethod(id, label string) Method {
	return Method{ID: id, Label: label}
}

// WithReaction sets the reaction equation and returns the method for chaining.
func (m Method) WithReaction(r string) Method {
	m.Reaction = r
	return m
}

// Step is one discrete action in a synthesis procedure. A step carries one or
// more free-text action phrases; upstream extraction occasionally attaches
// several distinct phrases to a single step.
type Step struct {
	// ID is the unique entity identifier. Assigned by the Builder if empty.
	ID string `json:"id"`

	// Actions holds the raw action phrases in the order they were recorded.
	Actions []string `json:"actions"`
}

// NewStep creates a Step with the given identifier and action phrases.
func NewStep(id string, actions ...string) Step {
	return Step{ID: id, Actions: actions}
}

// Substance is a named chemical entity referenced by steps: a precursor,
// solvent, media, additive, or product. Identity is by normalized name; the
// Builder deduplicates substances so the same name always refers to the same
// entity across the whole graph.
type Substance struct {
	// ID is the unique entity identifier.
	ID string `json:"id"`

	// Kind is the substance class (precursor, solvent, media, additive,
	// product).
	Kind Kind `json:"kind"`

	// Name is the substance name as given by the source.
	Name string `json:"name"`
}

// Condition is a bundle of optional physical parameters attached to a Step.
// All values are opaque unit-bearing strings preserved exactly as given;
// source unit formatting is too heterogeneous to parse reliably.
type Condition struct {
	// ID is the unique entity identifier. Assigned by the Builder if empty.
	ID string `json:"id"`

	// Temperature is an optional temperature string (e.g., "80 °C").
	Temperature string `json:"temperature,omitempty"`

	// Time is an optional duration string (e.g., "2 h").
	Time string `json:"time,omitempty"`

	// Pressure is an optional pressure string.
	Pressure string `json:"pressure,omitempty"`

	// PH is an optional pH string.
	PH string `json:"ph,omitempty"`
}

// IsZero reports whether the condition carries no parameters.
func (c Condition) IsZero() bool {
	return c.Temperature == "" && c.Time == "" && c.Pressure == "" && c.PH == ""
}
