// Package rdfa extracts RDF from markup annotated with RDFa attributes.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// Author: Stephane Fellah (stephanef@geoknoesis.com)
// Geosemantic-AI expert with 30 years of experience
//
// Extraction runs in one synchronous pass per call:
//
//   - Walk builds an EnrichedNode tree that records each node's linear text
//     offsets and its kind (tag, text or other).
//   - Process walks and then threads Scope (subject, prefixes, vocabulary,
//     language, pending rel/rev) top-down, resolving CURIEs and terms and
//     recording each node's own triples.
//   - FindFirst and FindAll locate nodes by asserted rdf:type.
//   - ExtractGraph re-resolves one subtree on its own and returns an
//     rdf.Graph; Prune on the result drops every blank node.
//
// Markup comes in through the Node interface. FromHTML and ParseHTML adapt
// golang.org/x/net/html trees and FromSelection adapts goquery selections.
//
//	root, err := rdfa.ParseHTML(strings.NewReader(page))
//	doc, err := rdfa.ProcessHTML(root, rdfa.OptBaseIRI("http://example.org/"), rdfa.OptInitialContext())
//	meeting := doc.FindFirst("schema:Event")
//	g, err := doc.ExtractGraph(meeting)
//	pruned := rdf.PruneBlankNodes(g)
//
// Unresolvable values (for example a CURIE with an undeclared prefix) do not
// stop extraction: the statement is dropped and a Diagnostic is recorded on
// the Document and logged through the slog.Logger given with OptLogger. Only
// a malformed tree (nil handles, a childless node without TextContent, or
// nesting beyond MaxDepth) fails with a *StructuralError.
//
// Separate calls share no mutable state and may run concurrently. A
// Document and its tree belong to the call that built them.
package rdfa
