// Package rdfxml loads serialized RDF/XML synthesis graphs into a
// graph.Store.
//
// The loader understands the fixed vocabulary produced by the upstream
// graph-construction pipeline: entity types (InorganicMaterial,
// SynthesisMethod, SynthesisStep, Precursor, Solvent, Media, Additive,
// Condition, Product), the relation names in graph.AllRelations, and the
// rdfs:label / data-property annotations carried by each entity. It does not
// validate documents against an ontology schema; unknown elements and
// properties are skipped.
//
// Loading is a blocking, one-shot operation performed at startup:
//
//	store, err := rdfxml.LoadFile("synthesis.rdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
package rdfxml
