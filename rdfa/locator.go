package rdfa

import "github.com/geoknoesis/rdfa-go/rdf"

// Contexts flattens the nodes that opened a new subject or typed resource,
// in document order.
func Contexts(root *EnrichedNode) []*EnrichedNode {
	var out []*EnrichedNode
	root.preorder(func(en *EnrichedNode) bool {
		if en.opens {
			out = append(out, en)
		}
		return true
	})
	return out
}

// FindFirst scans the scope-opening contexts in document order and returns
// the markup of the first one whose own triples assert rdf:type typeIRI.
// Depth plays no part: an early deep match wins over a later shallow one.
func FindFirst(root *EnrichedNode, typeIRI string) Node {
	if root == nil {
		return nil
	}
	for _, en := range Contexts(root) {
		for _, t := range en.triples {
			if t.P != rdf.RDFType {
				continue
			}
			if o, ok := t.O.(rdf.IRI); ok && o.Value == typeIRI {
				return en.node
			}
		}
	}
	return nil
}

// FindAll walks the tree in pre-order and returns every node whose own
// typeof set includes typeIRI. Matched nodes are descended into, so nested
// nodes of the same type are all returned.
func FindAll(root *EnrichedNode, typeIRI string) []Node {
	if root == nil {
		return nil
	}
	var out []Node
	var walk func(*EnrichedNode)
	walk = func(en *EnrichedNode) {
		if en.HasType(typeIRI) {
			out = append(out, en.node)
		}
		for _, c := range en.children {
			walk(c)
		}
	}
	walk(root)
	return out
}
