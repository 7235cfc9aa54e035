package synthesis

import (
	"strings"
	"testing"

	"github.com/aitom-ai/synthkg/graph"
)

// methodFixture builds a material with two methods: one two-step sol-gel
// method and one method with no recorded steps.
func methodFixture(t *testing.T) (*graph.Store, string) {
	t.Helper()
	b := graph.NewBuilder()
	b.AddMaterial(graph.Material{ID: "mat_1", Label: "NiO"})
	b.AddMethod(graph.Method{ID: "meth_1", Label: "sol-gel"})
	b.AddMethod(graph.Method{ID: "meth_2", Label: "hydrothermal"})
	b.AddStep(graph.Step{ID: "step_1", Actions: []string{"dissolve nickel nitrate"}})
	b.AddStep(graph.Step{ID: "step_2", Actions: []string{"calcine at 500 C"}})

	relations := []struct {
		from string
		rel  graph.Relation
		to   string
	}{
		{"mat_1", graph.RelHasSynthesisMethod, "meth_1"},
		{"mat_1", graph.RelHasSynthesisMethod, "meth_2"},
		{"meth_1", graph.RelConsistOfStep, "step_1"},
		{"step_1", graph.RelNextStep, "step_2"},
	}
	for _, r := range relations {
		if err := b.Relate(r.from, r.rel, r.to); err != nil {
			t.Fatal(err)
		}
	}
	return b.Build(), "mat_1"
}

func TestListMethods(t *testing.T) {
	store, matID := methodFixture(t)
	variants := ListMethods(store, matID, NewWalker(store))

	if len(variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(variants))
	}

	solGel := variants[0]
	if solGel.Label != "sol-gel" {
		t.Errorf("label = %q", solGel.Label)
	}
	if len(solGel.Steps) != 2 {
		t.Errorf("expected 2 steps, got %d", len(solGel.Steps))
	}
	if solGel.Note != "" {
		t.Errorf("unexpected note %q", solGel.Note)
	}

	empty := variants[1]
	if empty.Label != "hydrothermal" {
		t.Errorf("label = %q", empty.Label)
	}
	if len(empty.Steps) != 0 {
		t.Errorf("expected no steps, got %d", len(empty.Steps))
	}
	if empty.Note == "" {
		t.Error("expected a note on the empty method")
	}
}

func TestListMethods_MultipleStartSteps(t *testing.T) {
	b := graph.NewBuilder()
	b.AddMaterial(graph.Material{ID: "mat_1", Label: "MgO"})
	b.AddMethod(graph.Method{ID: "meth_1", Label: "precipitation"})
	b.AddStep(graph.Step{ID: "step_a", Actions: []string{"route a"}})
	b.AddStep(graph.Step{ID: "step_b", Actions: []string{"route b"}})
	b.AddStep(graph.Step{ID: "step_shared", Actions: []string{"dry and grind"}})

	relations := []struct {
		from string
		rel  graph.Relation
		to   string
	}{
		{"mat_1", graph.RelHasSynthesisMethod, "meth_1"},
		{"meth_1", graph.RelConsistOfStep, "step_a"},
		{"meth_1", graph.RelConsistOfStep, "step_b"},
		{"step_a", graph.RelNextStep, "step_shared"},
		{"step_b", graph.RelNextStep, "step_shared"},
	}
	for _, r := range relations {
		if err := b.Relate(r.from, r.rel, r.to); err != nil {
			t.Fatal(err)
		}
	}
	store := b.Build()

	variants := ListMethods(store, "mat_1", NewWalker(store))
	if len(variants) != 2 {
		t.Fatalf("expected one variant per start step, got %d", len(variants))
	}
	for i, v := range variants {
		if !strings.HasPrefix(v.Label, "precipitation #") {
			t.Errorf("variant %d label = %q", i, v.Label)
		}
		// Walk state is per variant: the shared step appears in both.
		if len(v.Steps) != 2 {
			t.Errorf("variant %d: expected 2 steps, got %d", i, len(v.Steps))
		}
	}
	if variants[0].StartStepID == variants[1].StartStepID {
		t.Error("variants share a start step")
	}
}

func TestListMethods_NoMethods(t *testing.T) {
	b := graph.NewBuilder()
	b.AddMaterial(graph.Material{ID: "mat_1", Label: "ZnO"})
	store := b.Build()

	if variants := ListMethods(store, "mat_1", NewWalker(store)); len(variants) != 0 {
		t.Errorf("expected no variants, got %d", len(variants))
	}
}
