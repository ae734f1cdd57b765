package rdf

import "strconv"

// BlankNodeGenerator mints blank nodes with sequential identifiers. The zero
// value mints "b1", "b2", ... A generator belongs to one extraction and is
// not safe for concurrent use.
type BlankNodeGenerator struct {
	// Prefix is prepended to the counter. Empty means "b".
	Prefix  string
	counter int
	labels  map[string]BlankNode
}

// Next mints a fresh blank node.
func (g *BlankNodeGenerator) Next() BlankNode {
	g.counter++
	prefix := g.Prefix
	if prefix == "" {
		prefix = "b"
	}
	return BlankNode{ID: prefix + strconv.Itoa(g.counter)}
}

// Named returns the blank node minted for a document label such as "_:x",
// minting one on first use so the same label maps to the same node.
func (g *BlankNodeGenerator) Named(label string) BlankNode {
	if b, ok := g.labels[label]; ok {
		return b
	}
	if g.labels == nil {
		g.labels = make(map[string]BlankNode)
	}
	b := g.Next()
	g.labels[label] = b
	return b
}
