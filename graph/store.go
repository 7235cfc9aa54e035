package graph

import (
	"fmt"
	"sort"
	"strings"
)

type adjacencyKey struct {
	from string
	rel  Relation
}

// Store is the read-only typed entity/relation graph. It is built once by a
// Builder (or a loader) and is safe for concurrent readers afterwards.
type Store struct {
	materials  map[string]Material
	methods    map[string]Method
	steps      map[string]Step
	substances map[string]Substance
	conditions map[string]Condition

	// adjacency maps (entityID, relation) to target entity IDs in the
	// order the relations were added.
	adjacency map[adjacencyKey][]string

	// materialOrder preserves insertion order for enumeration.
	materialOrder []string

	tripleCount int
}

// Stats summarizes the store contents, mirroring the load-time summary the
// upstream pipeline prints for a freshly parsed graph.
type Stats struct {
	Materials  int `json:"materials"`
	Methods    int `json:"methods"`
	Steps      int `json:"steps"`
	Substances int `json:"substances"`
	Conditions int `json:"conditions"`
	Triples    int `json:"triples"`
}

// Stats returns entity and relation counts for the store.
func (s *Store) Stats() Stats {
	return Stats{
		Materials:  len(s.materials),
		Methods:    len(s.methods),
		Steps:      len(s.steps),
		Substances: len(s.substances),
		Conditions: len(s.conditions),
		Triples:    s.tripleCount,
	}
}

// String returns a short human-readable summary of the store.
func (s *Store) String() string {
	st := s.Stats()
	return fmt.Sprintf("graph.Store(materials=%d methods=%d steps=%d substances=%d triples=%d)",
		st.Materials, st.Methods, st.Steps, st.Substances, st.Triples)
}

// Related returns the target entity IDs linked from the given entity by the
// given relation, in insertion order. The returned slice must not be
// modified.
func (s *Store) Related(fromID string, rel Relation) []string {
	return s.adjacency[adjacencyKey{from: fromID, rel: rel}]
}

// First returns the first target entity linked from the given entity by the
// given relation, if any.
func (s *Store) First(fromID string, rel Relation) (string, bool) {
	targets := s.adjacency[adjacencyKey{from: fromID, rel: rel}]
	if len(targets) == 0 {
		return "", false
	}
	return targets[0], true
}

// Material returns the material with the given ID.
func (s *Store) Material(id string) (Material, bool) {
	m, ok := s.materials[id]
	return m, ok
}

// Method returns the method with the given ID.
func (s *Store) Method(id string) (Method, bool) {
	m, ok := s.methods[id]
	return m, ok
}

// Step returns the step with the given ID.
func (s *Store) Step(id string) (Step, bool) {
	st, ok := s.steps[id]
	return st, ok
}

// Substance returns the substance with the given ID.
func (s *Store) Substance(id string) (Substance, bool) {
	sub, ok := s.substances[id]
	return sub, ok
}

// Condition returns the condition with the given ID.
func (s *Store) Condition(id string) (Condition, bool) {
	c, ok := s.conditions[id]
	return c, ok
}

// Materials returns all materials in insertion order.
func (s *Store) Materials() []Material {
	out := make([]Material, 0, len(s.materialOrder))
	for _, id := range s.materialOrder {
		out = append(out, s.materials[id])
	}
	return out
}

// MaterialLabels returns all material labels sorted lexicographically.
// This is the "available materials" listing surfaced to callers when a
// question cannot be resolved.
func (s *Store) MaterialLabels() []string {
	labels := make([]string, 0, len(s.materials))
	for _, id := range s.materialOrder {
		labels = append(labels, s.materials[id].Label)
	}
	sort.Strings(labels)
	return labels
}

// StepSubstanceUse pairs a step's action text with a substance name, for
// substance-oriented lookups.
type StepSubstanceUse struct {
	StepID    string `json:"step_id"`
	Action    string `json:"action"`
	Substance string `json:"substance"`
}

// FindStepsWithPrecursor returns every step that uses a precursor whose name
// contains the given fragment (case-insensitive).
func (s *Store) FindStepsWithPrecursor(fragment string) []StepSubstanceUse {
	return s.findStepsUsing(RelUsesPrecursor, fragment)
}

// FindStepsWithSolvent returns every step that uses a solvent whose name
// contains the given fragment (case-insensitive).
func (s *Store) FindStepsWithSolvent(fragment string) []StepSubstanceUse {
	return s.findStepsUsing(RelUsesSolvent, fragment)
}

func (s *Store) findStepsUsing(rel Relation, fragment string) []StepSubstanceUse {
	fragment = strings.ToLower(fragment)

	var uses []StepSubstanceUse
	stepIDs := make([]string, 0, len(s.steps))
	for id := range s.steps {
		stepIDs = append(stepIDs, id)
	}
	sort.Strings(stepIDs)

	for _, stepID := range stepIDs {
		for _, subID := range s.Related(stepID, rel) {
			sub, ok := s.substances[subID]
			if !ok {
				continue
			}
			if !strings.Contains(strings.ToLower(sub.Name), fragment) {
				continue
			}
			step := s.steps[stepID]
			action := ""
			if len(step.Actions) > 0 {
				action = step.Actions[0]
			}
			uses = append(uses, StepSubstanceUse{
				StepID:    stepID,
				Action:    action,
				Substance: sub.Name,
			})
		}
	}
	return uses
}
