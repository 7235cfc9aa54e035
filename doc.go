// Package synthkg answers natural-language questions about inorganic
// material synthesis from an RDF knowledge graph of extracted synthesis
// procedures.
//
// The engine resolves the material mentioned in a question, enumerates the
// synthesis methods recorded for it, walks each method's step chain into an
// ordered procedure, and assembles an answer payload. A language model, when
// configured, chooses among method variants and writes the answer prose;
// every model-dependent stage has a deterministic fallback so the engine
// degrades to structured procedure text rather than failing.
//
//	store, err := rdfxml.LoadFile("synthesis.rdf")
//	if err != nil {
//	    return err
//	}
//	engine := synthkg.NewEngine(store,
//	    synthkg.WithCompleter(client),
//	    synthkg.WithLogger(logger),
//	)
//	answer, err := engine.AnswerQuestion(ctx, "how is NiO synthesized?")
//
// The packages compose bottom-up: graph holds the typed entity store and
// builder, graph/rdfxml loads RDF/XML into it, synthesis resolves materials
// and walks step chains, formula extracts chemical formulas from text,
// selector picks a method variant, and llm talks to the completion
// endpoint. This package ties them together behind Engine.
package synthkg
