package synthkg

import "github.com/aitom-ai/synthkg/selector"

// Answer confidence values. The answer either rests on retrieved procedure
// data or it does not; there is no middle ground worth reporting.
const (
	// ConfidenceHigh means the material resolved to an exact graph entity
	// with recorded synthesis methods.
	ConfidenceHigh = "high"

	// ConfidenceNone means no known material matched the question, or the
	// matched material has no recorded methods.
	ConfidenceNone = "none"
)

// maxMaterialHints caps how many known material labels an unresolved answer
// carries.
const maxMaterialHints = 20

// Answer is the full payload returned for one question.
type Answer struct {
	// AnswerText is the final prose answer, model-written when a
	// completer is configured and producing, otherwise the deterministic
	// procedure text.
	AnswerText string `json:"answer"`

	// ContextBlocks holds the formatted procedure text for every method
	// variant, in variant order.
	ContextBlocks []string `json:"context"`

	// Confidence is ConfidenceHigh or ConfidenceNone.
	Confidence string `json:"confidence"`

	// TargetMaterial is the resolved material label, empty when
	// unresolved.
	TargetMaterial string `json:"target_material,omitempty"`

	// ExtractedFormulas lists chemical formulas found in the chosen
	// procedure and the answer text, sorted and deduplicated.
	ExtractedFormulas []string `json:"extracted_formulas,omitempty"`

	// MethodCount is how many method variants the material has.
	MethodCount int `json:"method_count"`

	// ChosenMethodIndex is the 1-based index of the presented variant,
	// zero when the material has no methods.
	ChosenMethodIndex int `json:"chosen_method_index,omitempty"`

	// ChosenMethodLabel is the presented variant's label.
	ChosenMethodLabel string `json:"chosen_method_label,omitempty"`

	// SynthesisType is the route classification of the chosen variant.
	SynthesisType selector.Route `json:"synthesis_type,omitempty"`

	// SynthesisTypeConfidence grades the route classification.
	SynthesisTypeConfidence selector.Confidence `json:"synthesis_type_confidence,omitempty"`

	// SynthesisTypeReason is the classifier's short justification.
	SynthesisTypeReason string `json:"synthesis_type_reason,omitempty"`

	// AvailableMaterials lists known material labels when resolution
	// fails, capped at maxMaterialHints, sorted.
	AvailableMaterials []string `json:"available_materials,omitempty"`
}
