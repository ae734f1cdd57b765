package rdfa

import (
	"strings"

	"github.com/geoknoesis/rdfa-go/rdf"
)

// Kind classifies an enriched node.
type Kind uint8

const (
	// KindTag is a node with children.
	KindTag Kind = iota
	// KindText is a childless, non-comment node.
	KindText
	// KindOther is everything else (comments).
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindTag:
		return "tag"
	case KindText:
		return "text"
	default:
		return "other"
	}
}

// EnrichedNode wraps a markup node with its linear text-offset region and,
// after Process, the RDF context that was in effect at the node.
//
// A tree is built once per call and is read-only afterwards: all state is
// exposed through accessor methods. Children are owned top-down; the parent
// link is for upward queries only and is never followed by traversal code.
type EnrichedNode struct {
	node     Node
	start    int
	end      int
	kind     Kind
	text     string
	children []*EnrichedNode
	parent   *EnrichedNode

	prefixes map[string]string
	vocab    string
	lang     string
	subject  rdf.Resource
	types    []rdf.IRI
	triples  []rdf.Triple
	opens    bool
}

// Markup returns the wrapped markup handle.
func (n *EnrichedNode) Markup() Node { return n.node }

// Start returns the offset of the first code point covered by the node.
func (n *EnrichedNode) Start() int { return n.start }

// End returns the offset just past the node's text.
func (n *EnrichedNode) End() int { return n.end }

// Len returns End - Start.
func (n *EnrichedNode) Len() int { return n.end - n.start }

// Kind returns the node classification.
func (n *EnrichedNode) Kind() Kind { return n.kind }

// Children returns the enriched children in document order. The slice must
// not be modified.
func (n *EnrichedNode) Children() []*EnrichedNode { return n.children }

// Parent returns the enclosing node, or nil at the root.
func (n *EnrichedNode) Parent() *EnrichedNode { return n.parent }

// Within reports whether the node lies entirely inside [a, b].
func (n *EnrichedNode) Within(a, b int) bool {
	return n.start >= a && n.end <= b
}

// Contains reports whether offset falls inside the node's region.
func (n *EnrichedNode) Contains(offset int) bool {
	return offset >= n.start && offset < n.end
}

// TextContent concatenates the text of every text-bearing descendant.
func (n *EnrichedNode) TextContent() string {
	if n.kind == KindText {
		return n.text
	}
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *EnrichedNode) writeText(b *strings.Builder) {
	for _, c := range n.children {
		switch c.kind {
		case KindText:
			b.WriteString(c.text)
		case KindTag:
			c.writeText(b)
		}
	}
}

// Prefixes returns a copy of the prefix mappings in effect at the node,
// including the node's own declarations.
func (n *EnrichedNode) Prefixes() map[string]string {
	out := make(map[string]string, len(n.prefixes))
	for k, v := range n.prefixes {
		out[k] = v
	}
	return out
}

// Vocab returns the vocabulary IRI in effect at the node.
func (n *EnrichedNode) Vocab() string { return n.vocab }

// Lang returns the language in effect at the node.
func (n *EnrichedNode) Lang() string { return n.lang }

// Subject returns the subject the node's children inherit.
func (n *EnrichedNode) Subject() rdf.Resource { return n.subject }

// Types returns the node's own resolved typeof IRIs.
func (n *EnrichedNode) Types() []rdf.IRI { return n.types }

// Triples returns the triples emitted by the node itself, excluding its
// descendants.
func (n *EnrichedNode) Triples() []rdf.Triple { return n.triples }

// OpensContext reports whether the node introduced a new subject or typed
// resource.
func (n *EnrichedNode) OpensContext() bool { return n.opens }

// HasType reports whether typeIRI is among the node's own types.
func (n *EnrichedNode) HasType(typeIRI string) bool {
	for _, t := range n.types {
		if t.Value == typeIRI {
			return true
		}
	}
	return false
}

// Find returns the enriched node wrapping m, searching n's subtree in
// document order.
func (n *EnrichedNode) Find(m Node) *EnrichedNode {
	var found *EnrichedNode
	n.preorder(func(e *EnrichedNode) bool {
		if sameNode(e.node, m) {
			found = e
			return false
		}
		return true
	})
	return found
}

// preorder visits the subtree depth-first until fn returns false.
func (n *EnrichedNode) preorder(fn func(*EnrichedNode) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.preorder(fn) {
			return false
		}
	}
	return true
}
