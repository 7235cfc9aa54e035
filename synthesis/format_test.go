package synthesis

import (
	"strings"
	"testing"
)

func TestFormatSequence(t *testing.T) {
	steps := []StepRecord{
		{
			Position:  1,
			StepID:    "step_1",
			Action:    "dissolve nickel nitrate",
			Precursor: "Ni(NO3)2",
			Solvent:   "ethanol",
			Condition: &ConditionRecord{Temperature: "80 °C", Duration: "2 h"},
		},
		{
			Position: 2,
			StepID:   "step_2",
			Action:   "calcine",
		},
	}

	got := FormatSequence(steps, "NiO")
	want := "=== NiO synthesis procedure ===\n" +
		"\nStep 1: dissolve nickel nitrate\n" +
		"  - precursor: Ni(NO3)2\n" +
		"  - solvent: ethanol\n" +
		"  - temperature: 80 °C\n" +
		"  - duration: 2 h\n" +
		"\nStep 2: calcine\n"
	if got != want {
		t.Errorf("formatted block mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatSequence_Deterministic(t *testing.T) {
	steps := []StepRecord{
		{Position: 1, StepID: "step_1", Action: "mix", Precursor: "MgCl2"},
	}
	first := FormatSequence(steps, "MgO")
	second := FormatSequence(steps, "MgO")
	if first != second {
		t.Error("formatting the same sequence twice produced different text")
	}
}

func TestFormatSequence_NoMaterialLabel(t *testing.T) {
	got := FormatSequence(nil, "")
	if got != "=== synthesis procedure ===\n" {
		t.Errorf("unexpected header %q", got)
	}
}

func TestSummarize(t *testing.T) {
	variants := []MethodVariant{
		{
			Label: "sol-gel",
			Steps: []StepRecord{
				{Position: 1, Action: "dissolve", Solvent: "water"},
				{Position: 2, Action: "gel"},
				{Position: 3, Action: "dry"},
				{Position: 4, Action: "calcine"},
			},
		},
		{
			Label: "solid-state",
			Steps: []StepRecord{
				{Position: 1, Action: "grind", Precursor: "NiO", Condition: &ConditionRecord{Temperature: "900 °C"}},
			},
		},
	}

	summaries := Summarize(variants)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	s := summaries[0]
	if s.Index != 1 || s.Label != "sol-gel" || s.StepCount != 4 {
		t.Errorf("summary = %+v", s)
	}
	if s.HasPrecursor || !s.HasSolvent || s.HasCondition {
		t.Errorf("flags = %+v", s)
	}
	if len(s.Preview) != defaultPreviewActions {
		t.Errorf("expected preview capped at %d, got %v", defaultPreviewActions, s.Preview)
	}

	s = summaries[1]
	if !s.HasPrecursor || s.HasSolvent || !s.HasCondition {
		t.Errorf("flags = %+v", s)
	}
}

func TestFormatOverview(t *testing.T) {
	summaries := []VariantSummary{
		{Index: 1, Label: "sol-gel", StepCount: 4, HasSolvent: true, Preview: []string{"dissolve", "gel"}},
		{Index: 2, Label: "solid-state", StepCount: 1, HasPrecursor: true, HasCondition: true},
	}

	got := FormatOverview(summaries)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), got)
	}
	if lines[0] != "1. sol-gel: 4 steps (precursor=false solvent=true condition=false) | dissolve; gel" {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "2. solid-state: 1 steps (precursor=true solvent=false condition=true)" {
		t.Errorf("line 2 = %q", lines[1])
	}
}
