package formula

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "hydrate and hydroxides",
			text: "Dissolve CuSO4·5H2O and Cu(OH)2 in NaOH solution",
			want: []string{"Cu(OH)2", "CuSO4·5H2O", "NaOH"},
		},
		{
			name: "ascii hydrate dot normalized",
			text: "add CuSO4.5H2O slowly",
			want: []string{"CuSO4·5H2O"},
		},
		{
			name: "bare elements excluded",
			text: "Add Fe and Cu powder",
			want: nil,
		},
		{
			name: "element with count kept",
			text: "anneal under O2 flow",
			want: []string{"O2"},
		},
		{
			name: "trailing charge stripped",
			text: "the Ni2+ ion concentration",
			want: []string{"Ni2"},
		},
		{
			name: "duplicates collapse",
			text: "wash with H2O, then more H2O",
			want: []string{"H2O"},
		},
		{
			name: "ordinary prose",
			text: "stir the mixture overnight at room temperature",
			want: nil,
		},
		{
			name: "unknown letter runs rejected",
			text: "the XYZ123 sample code",
			want: nil,
		},
		{
			name: "unbalanced parens rejected",
			text: "see Cu(OH list above",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	ext := NewExtractor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ext.Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtract_KeepSingleElement(t *testing.T) {
	ext := NewExtractor(Options{KeepSingleElement: true})
	got := ext.Extract("Add Fe and Cu powder")
	want := []string{"Cu", "Fe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtract_MaxTokenLen(t *testing.T) {
	ext := NewExtractor(Options{MaxTokenLen: 4})
	if got := ext.Extract("CuSO4 H2O"); !reflect.DeepEqual(got, []string{"H2O"}) {
		t.Errorf("Extract = %v", got)
	}
}

func TestIsElement(t *testing.T) {
	if !IsElement("Og") {
		t.Error("expected Og to be an element")
	}
	if IsElement("Xx") || IsElement("fe") {
		t.Error("unexpected element match")
	}
}
