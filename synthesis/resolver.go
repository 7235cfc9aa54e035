package synthesis

import (
	"sort"
	"strings"

	"github.com/aitom-ai/synthkg/graph"
)

// Resolver maps a free-text mention to an exact material in the store by
// case-insensitive, whitespace-insensitive label matching.
type Resolver struct {
	store *graph.Store

	// byLength holds materials sorted by label length descending, so a
	// short label that is a substring of a longer one ("Fe" inside
	// "LiFePO4") can never win the match.
	byLength []graph.Material
}

// NewResolver creates a Resolver over the given store.
func NewResolver(store *graph.Store) *Resolver {
	materials := store.Materials()
	sort.SliceStable(materials, func(i, j int) bool {
		return len(materials[i].Label) > len(materials[j].Label)
	})
	return &Resolver{store: store, byLength: materials}
}

// Resolve finds the material mentioned in the question text. It returns
// false when no known label matches; callers must treat that as a normal
// "material not recognized" outcome, not an error, and surface Hints to the
// user.
func (r *Resolver) Resolve(question string) (graph.Material, bool) {
	questionLower := strings.ToLower(question)
	questionFlat := stripSpaces(questionLower)

	for _, mat := range r.byLength {
		label := strings.ToLower(mat.Label)
		if label == "" {
			continue
		}
		if strings.Contains(questionLower, label) {
			return mat, true
		}
		if strings.Contains(questionFlat, stripSpaces(label)) {
			return mat, true
		}
	}
	return graph.Material{}, false
}

// Hints returns the known material labels, sorted, for surfacing when
// resolution fails. limit caps the list; limit <= 0 returns all labels.
func (r *Resolver) Hints(limit int) []string {
	labels := r.store.MaterialLabels()
	if limit > 0 && len(labels) > limit {
		labels = labels[:limit]
	}
	return labels
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, s)
}
