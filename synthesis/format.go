package synthesis

import (
	"fmt"
	"strings"
)

// defaultPreviewActions is how many leading action phrases a variant summary
// carries.
const defaultPreviewActions = 3

// FormatSequence renders a walked step sequence as a deterministic
// human-readable block: a titled header, then one paragraph per step with
// fixed indentation markers for the attached precursor, solvent, and
// condition lines. Formatting the same sequence twice yields byte-identical
// text; the block is shown to end users and fed verbatim to the language
// model, so any nondeterminism would make answers non-reproducible.
func FormatSequence(steps []StepRecord, materialLabel string) string {
	var sb strings.Builder

	if materialLabel != "" {
		fmt.Fprintf(&sb, "=== %s synthesis procedure ===\n", materialLabel)
	} else {
		sb.WriteString("=== synthesis procedure ===\n")
	}

	for _, step := range steps {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "Step %d: %s\n", step.Position, step.Action)
		if step.Precursor != "" {
			fmt.Fprintf(&sb, "  - precursor: %s\n", step.Precursor)
		}
		if step.Solvent != "" {
			fmt.Fprintf(&sb, "  - solvent: %s\n", step.Solvent)
		}
		if step.Condition != nil {
			if step.Condition.Temperature != "" {
				fmt.Fprintf(&sb, "  - temperature: %s\n", step.Condition.Temperature)
			}
			if step.Condition.Duration != "" {
				fmt.Fprintf(&sb, "  - duration: %s\n", step.Condition.Duration)
			}
		}
	}
	return sb.String()
}

// VariantSummary is the compact per-variant payload a selection routine
// reasons over without needing the full text of every variant.
type VariantSummary struct {
	// Index is the 1-based variant index.
	Index int `json:"index"`

	// Label is the variant label.
	Label string `json:"label"`

	// StepCount is the number of walked steps.
	StepCount int `json:"step_count"`

	// HasPrecursor reports precursor data anywhere in the sequence.
	HasPrecursor bool `json:"has_precursor"`

	// HasSolvent reports solvent data anywhere in the sequence.
	HasSolvent bool `json:"has_solvent"`

	// HasCondition reports condition data anywhere in the sequence.
	HasCondition bool `json:"has_condition"`

	// Preview holds the first few action phrases.
	Preview []string `json:"preview,omitempty"`
}

// Summarize builds the compact multi-method overview for a variant list.
func Summarize(variants []MethodVariant) []VariantSummary {
	summaries := make([]VariantSummary, 0, len(variants))
	for i, v := range variants {
		s := VariantSummary{
			Index:     i + 1,
			Label:     v.Label,
			StepCount: len(v.Steps),
		}
		for _, step := range v.Steps {
			if step.Precursor != "" {
				s.HasPrecursor = true
			}
			if step.Solvent != "" {
				s.HasSolvent = true
			}
			if step.Condition != nil {
				s.HasCondition = true
			}
			if len(s.Preview) < defaultPreviewActions && step.Action != "" {
				s.Preview = append(s.Preview, step.Action)
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}

// FormatOverview renders variant summaries as a deterministic compact text
// block, one line per variant.
func FormatOverview(summaries []VariantSummary) string {
	var sb strings.Builder
	for _, s := range summaries {
		fmt.Fprintf(&sb, "%d. %s: %d steps (precursor=%t solvent=%t condition=%t)",
			s.Index, s.Label, s.StepCount, s.HasPrecursor, s.HasSolvent, s.HasCondition)
		if len(s.Preview) > 0 {
			fmt.Fprintf(&sb, " | %s", strings.Join(s.Preview, "; "))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
