package synthesis

import (
	"regexp"
	"strings"

	"github.com/aitom-ai/synthkg/graph"
)

// DefaultMaxSteps bounds a single step-chain walk. Chains longer than this
// are treated as malformed data and truncated.
const DefaultMaxSteps = 50

// maxActionPhrases caps how many distinct action phrases are joined into one
// step record, preventing unbounded text growth from noisy extraction.
const maxActionPhrases = 6

// stepPrefix matches redundant step-identifier tokens that upstream
// extraction prepends to action labels ("step_3. ", "step_step_12: ").
var stepPrefix = regexp.MustCompile(`^(?:step_)+\d+[.:]?\s*`)

// ConditionRecord is the compact rendering of a step's condition. Pressure
// and pH stay available on the graph.Condition entity for full-detail
// queries.
type ConditionRecord struct {
	// Temperature is the opaque temperature string, if recorded.
	Temperature string `json:"temperature,omitempty"`

	// Duration is the opaque time string, if recorded.
	Duration string `json:"duration,omitempty"`
}

// StepRecord is one walked step with its compact annotations.
type StepRecord struct {
	// Position is the 1-based position within the walked sequence.
	Position int `json:"position"`

	// StepID is the underlying step entity ID.
	StepID string `json:"step_id"`

	// Action is the normalized, deduplicated action text.
	Action string `json:"action"`

	// Precursor is the linked precursor's name, if any.
	Precursor string `json:"precursor,omitempty"`

	// Solvent is the linked solvent's name, if any.
	Solvent string `json:"solvent,omitempty"`

	// Condition is the compact condition record, if any.
	Condition *ConditionRecord `json:"condition,omitempty"`
}

// Walker produces ordered, cycle-safe, bounded step sequences from a
// starting step. A Walker only reads the store and is safe for concurrent
// use.
type Walker struct {
	store    *graph.Store
	maxSteps int
}

// WalkerOption configures a Walker.
type WalkerOption func(*Walker)

// WithMaxSteps overrides the walk bound. Values <= 0 keep the default.
func WithMaxSteps(n int) WalkerOption {
	return func(w *Walker) {
		if n > 0 {
			w.maxSteps = n
		}
	}
}

// NewWalker creates a Walker over the given store.
func NewWalker(store *graph.Store, opts ...WalkerOption) *Walker {
	w := &Walker{store: store, maxSteps: DefaultMaxSteps}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// MaxSteps returns the configured walk bound.
func (w *Walker) MaxSteps() int {
	return w.maxSteps
}

// Walk follows the nextStep chain from startID and returns the ordered step
// records. The walk visits each step at most once: a chain that re-enters a
// visited step is truncated silently at that point, and no walk produces
// more than MaxSteps records. The second return value reports whether the
// walk stopped early because of a cycle or the bound rather than a chain
// end.
func (w *Walker) Walk(startID string) ([]StepRecord, bool) {
	visited := make(map[string]bool)
	var records []StepRecord

	current := startID
	for current != "" {
		if visited[current] {
			return records, true
		}
		if len(records) >= w.maxSteps {
			return records, true
		}
		visited[current] = true

		if rec, ok := w.extract(current, len(records)+1); ok {
			records = append(records, rec)
		}

		next, ok := w.store.First(current, graph.RelNextStep)
		if !ok {
			break
		}
		current = next
	}
	return records, false
}

// extract builds the StepRecord for one step. Steps missing from the store
// are skipped rather than failing the walk.
func (w *Walker) extract(stepID string, position int) (StepRecord, bool) {
	step, ok := w.store.Step(stepID)
	if !ok {
		return StepRecord{}, false
	}

	rec := StepRecord{
		Position: position,
		StepID:   stepID,
		Action:   normalizeActions(step.Actions),
	}

	if id, ok := w.store.First(stepID, graph.RelUsesPrecursor); ok {
		if sub, ok := w.store.Substance(id); ok {
			rec.Precursor = sub.Name
		}
	}
	if id, ok := w.store.First(stepID, graph.RelUsesSolvent); ok {
		if sub, ok := w.store.Substance(id); ok {
			rec.Solvent = sub.Name
		}
	}
	if id, ok := w.store.First(stepID, graph.RelPerformedUnder); ok {
		if cond, ok := w.store.Condition(id); ok {
			if cond.Temperature != "" || cond.Time != "" {
				rec.Condition = &ConditionRecord{
					Temperature: cond.Temperature,
					Duration:    cond.Time,
				}
			}
		}
	}
	return rec, true
}

// normalizeActions strips redundant step-identifier prefixes, deduplicates
// the remaining phrases preserving case and first-seen order, and joins at
// most maxActionPhrases of them into one display string.
func normalizeActions(actions []string) string {
	seen := make(map[string]bool)
	var phrases []string

	for _, raw := range actions {
		phrase := strings.TrimSpace(stepPrefix.ReplaceAllString(strings.TrimSpace(raw), ""))
		if phrase == "" {
			continue
		}
		key := strings.ToLower(phrase)
		if seen[key] {
			continue
		}
		seen[key] = true
		phrases = append(phrases, phrase)
		if len(phrases) == maxActionPhrases {
			break
		}
	}
	return strings.Join(phrases, "; ")
}
