// Package synthesis implements the retrieval core over a graph.Store: it
// resolves a free-text question to a target material, enumerates every
// synthesis method recorded for it, walks each method's step chain in order,
// and renders the result as deterministic text.
//
// # Pipeline
//
// A question flows through the package as:
//
//	resolver := synthesis.NewResolver(store)
//	mat, ok := resolver.Resolve("LiFePO4 synthesis route")
//	if !ok {
//	    // normal outcome: surface resolver.Hints() to the caller
//	}
//	variants := synthesis.ListMethods(store, mat.ID, synthesis.NewWalker(store))
//	text := synthesis.FormatSequence(variants[0].Steps, mat.Label)
//
// The walker guards against malformed upstream data: step chains containing
// cycles are truncated silently at the first revisited step, and no walk ever
// produces more than the configured maximum number of records. Both cases
// truncate the walk and report it through the truncated flag rather than
// returning an error; malformed extraction output is expected input.
//
// # Method variants
//
// A method normally has exactly one starting step, but the data may carry
// several consistOfStep links. Each starting step is treated as an
// independent MethodVariant: same method identity, distinct walked sequence.
// Whether multiple starts truly represent alternative procedures or an
// upstream data-entry error is an open question in the source data; the
// variant interpretation preserves all of them rather than merging or
// discarding.
//
// All formatting in this package is byte-stable: rendering the same sequence
// twice yields identical text, which keeps answers reproducible both for end
// users and as grounding context handed to a language model.
package synthesis
