// Package rdf provides a compact RDF model, an insertion-ordered graph, and
// the serializers used by the RDFa extractor.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// Terms are typed: IRI, BlankNode, Literal and TripleTerm all implement Term,
// and only IRI and BlankNode implement Resource, the type of a subject.
// Blank node checks are type switches, never string prefix tests.
//
// A Graph indexes triples subject → predicate → objects and keeps insertion
// order at every level, so writing the same graph twice yields the same bytes:
//
//	g := rdf.NewGraph()
//	g.Add(rdf.NewTriple(rdf.IRI{Value: "http://example.org/s"}, rdf.RDFType, rdf.IRI{Value: "http://example.org/T"}))
//	pruned := rdf.PruneBlankNodes(g)
//	err := rdf.WriteGraph(os.Stdout, pruned, rdf.FormatTurtle, rdf.EncodeOptions{})
//
// Prune removes every blank node: blank subjects with all their triples,
// blank objects of IRI subjects, and any predicate or subject left empty.
// Pruning is idempotent.
//
// Supported formats:
//   - N-Triples: read and write
//   - Turtle: write (prefix-abbreviated, grouped by subject)
//   - JSON-LD: read and write through github.com/piprate/json-gold
package rdf
