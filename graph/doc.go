// Package graph provides the in-memory typed entity/relation store that backs
// the synthesis retrieval engine.
//
// The store holds labeled entities (materials, methods, steps, substances,
// conditions) connected by named directed relations from a fixed vocabulary.
// Relations are held in an adjacency index keyed by (entity ID, relation name),
// giving O(1) lookups for "list all targets" and "find single related target"
// queries instead of repeated pattern-matching scans.
//
// # Construction and immutability
//
// A Store is populated through a Builder during a single graph-build pass and
// is read-only afterwards. The retrieval engine never creates, mutates, or
// deletes entities; multiple readers may use a built Store concurrently
// without locking.
//
//	b := graph.NewBuilder()
//	mat := b.AddMaterial(graph.NewMaterial("NiO"))
//	method := b.AddMethod(graph.NewMethod("m1", "precipitation route"))
//	b.Relate(mat.ID, graph.RelHasSynthesisMethod, method.ID)
//	store := b.Build()
//
// Substances (precursors, solvents, media, additives, products) are
// deduplicated by normalized name: asking the Builder for the same substance
// name twice yields the same entity.
//
// # Loading serialized graphs
//
// The graph/rdfxml subpackage parses RDF/XML documents produced by the
// upstream graph-construction pipeline into a Store.
package graph
