package rdfxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aitom-ai/synthkg/graph"
	"github.com/aitom-ai/synthkg/parser"
)

// document mirrors the top-level rdf:RDF element. Node elements may be plain
// rdf:Description elements carrying an rdf:type property, or typed elements
// named after the entity class.
type document struct {
	XMLName xml.Name
	Nodes   []node `xml:",any"`
}

type node struct {
	XMLName    xml.Name
	About      string     `xml:"about,attr"`
	Properties []property `xml:",any"`
}

type property struct {
	XMLName  xml.Name
	Resource string `xml:"resource,attr"`
	Value    string `xml:",chardata"`
}

// Load parses an RDF/XML document from r and builds a graph.Store.
func Load(r io.Reader) (*graph.Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read rdf document: %w", err)
	}

	doc, err := parser.ParseXML[document](data)
	if err != nil {
		return nil, fmt.Errorf("parse rdf document: %w", err)
	}

	l := &loader{
		builder:    graph.NewBuilder(),
		substances: make(map[string]graph.Substance),
	}
	return l.build(*doc)
}

// LoadFile parses the RDF/XML document at the given path.
func LoadFile(path string) (*graph.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rdf document: %w", err)
	}
	defer f.Close()
	return Load(f)
}

type loader struct {
	builder *graph.Builder

	// substances maps the document's substance node IDs to the canonical
	// deduplicated entity, so relations can be rewritten to the canonical
	// ID in the second pass.
	substances map[string]graph.Substance
}

func (l *loader) build(doc document) (*graph.Store, error) {
	// First pass: entities.
	for _, n := range doc.Nodes {
		l.addEntity(n)
	}

	// Second pass: relations, once every target exists.
	for _, n := range doc.Nodes {
		fromID := l.canonicalID(fragment(n.About))
		for _, p := range n.Properties {
			rel, err := graph.ParseRelation(p.XMLName.Local)
			if err != nil || p.Resource == "" {
				continue
			}
			toID := l.canonicalID(fragment(p.Resource))
			if err := l.builder.Relate(fromID, rel, toID); err != nil {
				return nil, fmt.Errorf("relate %s -[%s]-> %s: %w", fromID, rel, toID, err)
			}
		}
	}

	return l.builder.Build(), nil
}

func (l *loader) addEntity(n node) {
	kind := nodeKind(n)
	id := fragment(n.About)
	if id == "" {
		return
	}

	switch kind {
	case graph.KindMaterial:
		m := graph.Material{ID: id, Label: textProperty(n, "label")}
		if m.Label == "" {
			m.Label = textProperty(n, "hasName")
		}
		m.Acronym = textProperty(n, "hasAcronym")
		m.Phase = textProperty(n, "hasPhase")
		m.OxygenDeficiency = textProperty(n, "isOxygenDeficiency")
		if m.Label != "" {
			l.builder.AddMaterial(m)
		}

	case graph.KindMethod:
		m := graph.Method{ID: id, Label: textProperty(n, "label")}
		if m.Label == "" {
			m.Label = id
		}
		m.Reaction = textProperty(n, "hasReaction")
		l.builder.AddMethod(m)

	case graph.KindStep:
		s := graph.Step{ID: id}
		for _, p := range n.Properties {
			if p.XMLName.Local != "label" && p.XMLName.Local != "hasAction" {
				continue
			}
			if v := strings.TrimSpace(p.Value); v != "" {
				s.Actions = append(s.Actions, v)
			}
		}
		l.builder.AddStep(s)

	case graph.KindCondition:
		c := graph.Condition{
			ID:          id,
			Temperature: textProperty(n, "hasTemperature"),
			Pressure:    textProperty(n, "hasPressure"),
			PH:          textProperty(n, "haspH"),
		}
		// Older documents write hasDuration where newer ones write hasTime.
		c.Time = textProperty(n, "hasTime")
		if c.Time == "" {
			c.Time = textProperty(n, "hasDuration")
		}
		l.builder.AddCondition(c)

	case graph.KindPrecursor, graph.KindSolvent, graph.KindMedia,
		graph.KindAdditive, graph.KindProduct:
		name := textProperty(n, "label")
		if name == "" {
			name = textProperty(n, "hasName")
		}
		if name == "" {
			return
		}
		l.substances[id] = l.builder.Substance(kind, name)
	}
}

// canonicalID rewrites substance node IDs to their deduplicated entity ID.
func (l *loader) canonicalID(id string) string {
	if sub, ok := l.substances[id]; ok {
		return sub.ID
	}
	return id
}

// nodeKind determines the entity class from the element name, falling back
// to the rdf:type property for rdf:Description nodes.
func nodeKind(n node) graph.Kind {
	if n.XMLName.Local != "Description" {
		return graph.Kind(n.XMLName.Local)
	}
	for _, p := range n.Properties {
		if p.XMLName.Local == "type" && p.Resource != "" {
			return graph.Kind(fragment(p.Resource))
		}
	}
	return ""
}

func textProperty(n node, local string) string {
	for _, p := range n.Properties {
		if p.XMLName.Local == local && p.Resource == "" {
			if v := strings.TrimSpace(p.Value); v != "" {
				return v
			}
		}
	}
	return ""
}

// fragment extracts the local identifier from a URI: the part after the last
// '#', or after the last '/' when no fragment marker is present.
func fragment(uri string) string {
	if i := strings.LastIndex(uri, "#"); i >= 0 {
		return uri[i+1:]
	}
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}
