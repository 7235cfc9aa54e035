package graph

import (
	"strings"

	"github.com/google/uuid"
)

type substanceKey struct {
	kind Kind
	name string
}

// Builder accumulates entities and relations during a single graph-build
// pass and produces an immutable Store. It owns the name-to-entity dedup
// table for substances; the retrieval engine itself never needs that table
// since it only reads a finished graph.
//
// Builder is not safe for concurrent use.
type Builder struct {
	store           *Store
	substanceByName map[substanceKey]string
	seenEdges       map[[3]string]bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		store: &Store{
			materials:  make(map[string]Material),
			methods:    make(map[string]Method),
			steps:      make(map[string]Step),
			substances: make(map[string]Substance),
			conditions: make(map[string]Condition),
			adjacency:  make(map[adjacencyKey][]string),
		},
		substanceByName: make(map[substanceKey]string),
		seenEdges:       make(map[[3]string]bool),
	}
}

// AddMaterial adds a material to the graph and returns it with its assigned
// ID. If the material has no ID, one is generated.
func (b *Builder) AddMaterial(m Material) Material {
	if m.ID == "" {
		m.ID = newEntityID(KindMaterial)
	}
	if _, dup := b.store.materials[m.ID]; !dup {
		b.store.materialOrder = append(b.store.materialOrder, m.ID)
	}
	b.store.materials[m.ID] = m
	return m
}

// AddMethod adds a synthesis method to the graph and returns it with its
// assigned ID.
func (b *Builder) AddMethod(m Method) Method {
	if m.ID == "" {
		m.ID = newEntityID(KindMethod)
	}
	b.store.methods[m.ID] = m
	return m
}

// AddStep adds a synthesis step to the graph. If a step with the same ID was
// already added, the new action phrases are appended to it; upstream
// extraction sometimes emits the same step several times with different
// labels.
func (b *Builder) AddStep(s Step) Step {
	if s.ID == "" {
		s.ID = newEntityID(KindStep)
	}
	if existing, ok := b.store.steps[s.ID]; ok {
		existing.Actions = append(existing.Actions, s.Actions...)
		b.store.steps[s.ID] = existing
		return existing
	}
	b.store.steps[s.ID] = s
	return s
}

// AddCondition adds a condition to the graph and returns it with its
// assigned ID.
func (b *Builder) AddCondition(c Condition) Condition {
	if c.ID == "" {
		c.ID = newEntityID(KindCondition)
	}
	b.store.conditions[c.ID] = c
	return c
}

// Substance returns the substance entity for the given kind and name,
// creating it on first use. Names are deduplicated case-insensitively after
// trimming, so "Water" and "water " resolve to the same entity.
func (b *Builder) Substance(kind Kind, name string) Substance {
	key := substanceKey{kind: kind, name: normalizeName(name)}
	if id, ok := b.substanceByName[key]; ok {
		return b.store.substances[id]
	}

	sub := Substance{
		ID:   newEntityID(kind),
		Kind: kind,
		Name: strings.TrimSpace(name),
	}
	b.store.substances[sub.ID] = sub
	b.substanceByName[key] = sub.ID
	return sub
}

// Relate adds a directed relation between two entities. Duplicate triples
// are ignored. Returns ErrInvalidRelation for relation names outside the
// fixed vocabulary.
func (b *Builder) Relate(fromID string, rel Relation, toID string) error {
	if !rel.IsValid() {
		return ErrInvalidRelation
	}

	edge := [3]string{fromID, string(rel), toID}
	if b.seenEdges[edge] {
		return nil
	}
	b.seenEdges[edge] = true

	key := adjacencyKey{from: fromID, rel: rel}
	b.store.adjacency[key] = append(b.store.adjacency[key], toID)
	b.store.tripleCount++
	return nil
}

// Build finalizes construction and returns the Store. The Builder must not
// be used after Build.
func (b *Builder) Build() *Store {
	s := b.store
	b.store = nil
	return s
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func newEntityID(kind Kind) string {
	return string(kind) + "_" + uuid.NewString()
}
