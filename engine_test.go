package synthkg

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/aitom-ai/synthkg/graph"
	"github.com/aitom-ai/synthkg/llm"
	"github.com/aitom-ai/synthkg/selector"
)

// fakeCompleter replays a canned response or error.
type fakeCompleter struct {
	content string
	err     error
	calls   int
}

func (f *fakeCompleter) Complete(_ context.Context, _ []llm.Message, _ ...llm.CompletionOption) (*llm.CompletionResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llm.CompletionResponse{Content: f.content, FinishReason: "stop"}, nil
}

// memoryCache is an in-process AnswerCache for exercising the cache path.
type memoryCache struct {
	entries map[string]Answer
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]Answer)}
}

func (m *memoryCache) Get(_ context.Context, question string, out any) (bool, error) {
	a, ok := m.entries[question]
	if !ok {
		return false, nil
	}
	*(out.(*Answer)) = a
	return true, nil
}

func (m *memoryCache) Set(_ context.Context, question string, payload any) error {
	m.sets++
	m.entries[question] = *(payload.(*Answer))
	return nil
}

// nioStore builds a small graph: NiO with a three-step sol-gel method
// (precursor on the first step, temperature on the second, product on the
// third), plus a second material with no methods.
func nioStore(t *testing.T) *graph.Store {
	t.Helper()
	b := graph.NewBuilder()
	b.AddMaterial(graph.Material{ID: "mat_nio", Label: "NiO"})
	b.AddMaterial(graph.Material{ID: "mat_mgo", Label: "MgO"})
	b.AddMethod(graph.Method{ID: "meth_sg", Label: "sol-gel"})
	b.AddStep(graph.Step{ID: "step_1", Actions: []string{"dissolve nickel nitrate in water"}})
	b.AddStep(graph.Step{ID: "step_2", Actions: []string{"precipitate the hydroxide"}})
	b.AddStep(graph.Step{ID: "step_3", Actions: []string{"calcine the precipitate"}})

	precursor := b.Substance(graph.KindPrecursor, "Ni(NO3)2").ID
	product := b.Substance(graph.KindProduct, "NiO").ID
	b.AddCondition(graph.Condition{ID: "cond_1", Temperature: "80 °C"})

	relations := []struct {
		from string
		rel  graph.Relation
		to   string
	}{
		{"mat_nio", graph.RelHasSynthesisMethod, "meth_sg"},
		{"meth_sg", graph.RelConsistOfStep, "step_1"},
		{"step_1", graph.RelNextStep, "step_2"},
		{"step_2", graph.RelNextStep, "step_3"},
		{"step_1", graph.RelUsesPrecursor, precursor},
		{"step_2", graph.RelPerformedUnder, "cond_1"},
		{"step_3", graph.RelProducesProduct, product},
	}
	for _, r := range relations {
		if err := b.Relate(r.from, r.rel, r.to); err != nil {
			t.Fatal(err)
		}
	}
	return b.Build()
}

func TestAnswerQuestion(t *testing.T) {
	fake := &fakeCompleter{content: "Dissolve Ni(NO3)2 in ethanol, dry, then calcine at 500 °C for 2 h."}
	engine := NewEngine(nioStore(t), WithCompleter(fake))

	answer, err := engine.AnswerQuestion(context.Background(), "how is NiO synthesized?")
	if err != nil {
		t.Fatal(err)
	}

	if answer.Confidence != ConfidenceHigh {
		t.Errorf("confidence = %q", answer.Confidence)
	}
	if answer.TargetMaterial != "NiO" {
		t.Errorf("target = %q", answer.TargetMaterial)
	}
	if answer.AnswerText != fake.content {
		t.Errorf("answer = %q", answer.AnswerText)
	}
	if answer.MethodCount != 1 || answer.ChosenMethodIndex != 1 {
		t.Errorf("method count = %d, chosen = %d", answer.MethodCount, answer.ChosenMethodIndex)
	}
	if answer.ChosenMethodLabel != "sol-gel" {
		t.Errorf("label = %q", answer.ChosenMethodLabel)
	}
	if answer.SynthesisType != selector.RouteSolGel {
		t.Errorf("route = %s", answer.SynthesisType)
	}
	if len(answer.ContextBlocks) != 1 {
		t.Fatalf("context blocks = %d", len(answer.ContextBlocks))
	}
	block := answer.ContextBlocks[0]
	if !strings.Contains(block, "=== NiO synthesis procedure ===") {
		t.Errorf("block header missing:\n%s", block)
	}
	// Steps render in chain order with annotations on the right steps.
	i1 := strings.Index(block, "Step 1: dissolve nickel nitrate in water\n  - precursor: Ni(NO3)2")
	i2 := strings.Index(block, "Step 2: precipitate the hydroxide\n  - temperature: 80 °C")
	i3 := strings.Index(block, "Step 3: calcine the precipitate")
	if i1 < 0 || i2 < i1 || i3 < i2 {
		t.Errorf("step ordering or annotations wrong:\n%s", block)
	}

	// Formulas come from both the procedure and the answer prose.
	want := map[string]bool{"NiO": false, "Ni(NO3)2": false}
	for _, f := range answer.ExtractedFormulas {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, found := range want {
		if !found {
			t.Errorf("formula %q missing from %v", f, answer.ExtractedFormulas)
		}
	}
}

func TestAnswerQuestion_KoreanText(t *testing.T) {
	engine := NewEngine(nioStore(t))

	answer, err := engine.AnswerQuestion(context.Background(), "NiO 합성법 알려줘")
	if err != nil {
		t.Fatal(err)
	}
	if answer.TargetMaterial != "NiO" {
		t.Errorf("target = %q", answer.TargetMaterial)
	}
}

func TestAnswerQuestion_NoCompleterUsesProcedureText(t *testing.T) {
	engine := NewEngine(nioStore(t))

	answer, err := engine.AnswerQuestion(context.Background(), "NiO synthesis")
	if err != nil {
		t.Fatal(err)
	}
	if answer.AnswerText != answer.ContextBlocks[0] {
		t.Errorf("expected procedure text as the answer:\n%s", answer.AnswerText)
	}
}

func TestAnswerQuestion_CompleterFailureSurfacesError(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("connection refused")}
	engine := NewEngine(nioStore(t), WithCompleter(fake))

	answer, err := engine.AnswerQuestion(context.Background(), "NiO synthesis")
	if err != nil {
		t.Fatal(err)
	}
	if answer.Confidence != ConfidenceHigh {
		t.Errorf("confidence = %q", answer.Confidence)
	}
	if !strings.Contains(answer.AnswerText, "connection refused") {
		t.Errorf("answer = %q", answer.AnswerText)
	}
	// The procedure is still delivered through the context blocks.
	if len(answer.ContextBlocks) != 1 || !strings.Contains(answer.ContextBlocks[0], "Step 1:") {
		t.Errorf("context blocks = %v", answer.ContextBlocks)
	}
}

func TestAnswerQuestion_UnknownMaterial(t *testing.T) {
	engine := NewEngine(nioStore(t))

	answer, err := engine.AnswerQuestion(context.Background(), "how do I make graphene?")
	if err != nil {
		t.Fatal(err)
	}
	if answer.Confidence != ConfidenceNone {
		t.Errorf("confidence = %q", answer.Confidence)
	}
	if answer.TargetMaterial != "" {
		t.Errorf("target = %q", answer.TargetMaterial)
	}
	if len(answer.AvailableMaterials) != 2 {
		t.Errorf("hints = %v", answer.AvailableMaterials)
	}
	if answer.AvailableMaterials[0] != "MgO" || answer.AvailableMaterials[1] != "NiO" {
		t.Errorf("hints not sorted: %v", answer.AvailableMaterials)
	}
}

func TestAnswerQuestion_MaterialWithoutMethods(t *testing.T) {
	engine := NewEngine(nioStore(t))

	answer, err := engine.AnswerQuestion(context.Background(), "tell me about MgO synthesis")
	if err != nil {
		t.Fatal(err)
	}
	// Recognized material, but nothing retrieved to back an answer.
	if answer.Confidence != ConfidenceNone {
		t.Errorf("confidence = %q", answer.Confidence)
	}
	if answer.TargetMaterial != "MgO" {
		t.Errorf("target = %q", answer.TargetMaterial)
	}
	if answer.MethodCount != 0 || answer.ChosenMethodIndex != 0 {
		t.Errorf("method count = %d, chosen = %d", answer.MethodCount, answer.ChosenMethodIndex)
	}
	if !strings.Contains(answer.AnswerText, "No synthesis methods are recorded for MgO") {
		t.Errorf("answer = %q", answer.AnswerText)
	}
}

func TestAnswerQuestion_TerminalPayloadShape(t *testing.T) {
	engine := NewEngine(nioStore(t))

	// Both terminal outcomes without procedure data carry an empty context
	// list, not a null one.
	for _, question := range []string{"how do I make graphene?", "MgO synthesis"} {
		answer, err := engine.AnswerQuestion(context.Background(), question)
		if err != nil {
			t.Fatal(err)
		}
		if answer.ContextBlocks == nil {
			t.Errorf("%q: context blocks are nil", question)
		}
		data, err := json.Marshal(answer)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), `"context":[]`) {
			t.Errorf("%q: payload = %s", question, data)
		}
	}
}

func TestAnswerQuestion_EmptyQuestion(t *testing.T) {
	engine := NewEngine(nioStore(t))

	_, err := engine.AnswerQuestion(context.Background(), "   ")
	if !errors.Is(err, ErrEmptyQuestion) {
		t.Errorf("err = %v", err)
	}
}

func TestAnswerQuestion_CacheRoundTrip(t *testing.T) {
	cache := newMemoryCache()
	fake := &fakeCompleter{content: "cached answer"}
	engine := NewEngine(nioStore(t), WithCompleter(fake), WithCache(cache))

	first, err := engine.AnswerQuestion(context.Background(), "NiO synthesis")
	if err != nil {
		t.Fatal(err)
	}
	second, err := engine.AnswerQuestion(context.Background(), "NiO synthesis")
	if err != nil {
		t.Fatal(err)
	}

	if fake.calls != 1 {
		t.Errorf("expected one model call, got %d", fake.calls)
	}
	if cache.sets != 1 {
		t.Errorf("expected one cache write, got %d", cache.sets)
	}
	if first.AnswerText != second.AnswerText {
		t.Error("cached answer differs")
	}
}

func TestReload(t *testing.T) {
	engine := NewEngine(nioStore(t))

	b := graph.NewBuilder()
	b.AddMaterial(graph.Material{ID: "mat_zno", Label: "ZnO"})
	engine.Reload(b.Build())

	answer, err := engine.AnswerQuestion(context.Background(), "NiO synthesis")
	if err != nil {
		t.Fatal(err)
	}
	if answer.Confidence != ConfidenceNone {
		t.Error("expected old material to be gone after reload")
	}
	if engine.Stats().Materials != 1 {
		t.Errorf("stats = %+v", engine.Stats())
	}
}

func TestNewEngine_WithMeterProvider(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	engine := NewEngine(nioStore(t), WithMeterProvider(provider))
	if _, err := engine.AnswerQuestion(context.Background(), "NiO synthesis"); err != nil {
		t.Fatal(err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatal(err)
	}
	if len(rm.ScopeMetrics) == 0 {
		t.Error("expected recorded metrics")
	}
}
