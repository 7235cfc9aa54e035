package synthesis

import (
	"fmt"

	"github.com/aitom-ai/synthkg/graph"
)

// MethodVariant is a Method paired with one specific starting step and the
// sequence walked from it. A method with several consistOfStep links yields
// one variant per starting step; the variants share the method identity but
// never share walk state.
type MethodVariant struct {
	// MethodID is the owning method's entity ID.
	MethodID string `json:"method_id"`

	// Label is the method label, suffixed with "#n" when the method has
	// more than one starting step.
	Label string `json:"label"`

	// Reaction is the method's free-text reaction equation, if any.
	Reaction string `json:"reaction,omitempty"`

	// StartStepID is the chosen starting step, empty for methods with no
	// recorded steps.
	StartStepID string `json:"start_step_id,omitempty"`

	// Steps is the walked, ordered step sequence.
	Steps []StepRecord `json:"steps"`

	// Truncated reports that the walk stopped at a cycle or the step
	// bound rather than a chain end.
	Truncated bool `json:"truncated,omitempty"`

	// Note carries a human-readable remark about degraded data, such as
	// a method with no recorded steps.
	Note string `json:"note,omitempty"`
}

// ListMethods discovers every synthesis method linked to the material and
// walks each method's step chains. Zero, one, or many methods are all valid
// data; a method with no starting step is recorded as an empty variant with
// a note rather than dropped. Variants are returned in the order methods and
// starting steps were encountered in the store.
func ListMethods(store *graph.Store, materialID string, walker *Walker) []MethodVariant {
	var variants []MethodVariant

	for _, methodID := range store.Related(materialID, graph.RelHasSynthesisMethod) {
		method, ok := store.Method(methodID)
		if !ok {
			method = graph.Method{ID: methodID, Label: methodID}
		}

		starts := store.Related(methodID, graph.RelConsistOfStep)
		if len(starts) == 0 {
			variants = append(variants, MethodVariant{
				MethodID: method.ID,
				Label:    method.Label,
				Reaction: method.Reaction,
				Note:     "method has no recorded steps",
			})
			continue
		}

		for i, startID := range starts {
			label := method.Label
			if len(starts) > 1 {
				label = fmt.Sprintf("%s #%d", method.Label, i+1)
			}
			steps, truncated := walker.Walk(startID)
			variants = append(variants, MethodVariant{
				MethodID:    method.ID,
				Label:       label,
				Reaction:    method.Reaction,
				StartStepID: startID,
				Steps:       steps,
				Truncated:   truncated,
			})
		}
	}
	return variants
}
