package rdfa

import (
	"strconv"
	"unicode/utf8"

	"github.com/geoknoesis/rdfa-go/rdf"
)

// Walk builds the enriched tree for root. Offsets count Unicode code points
// of text content: a text node spans its own length, a tag spans its
// children, and adjacent siblings share a boundary.
//
// Walk only fills the structural fields; use Process to also resolve RDF
// context.
func Walk(root Node, opts ...Option) (*EnrichedNode, error) {
	options := newOptions(opts)
	w := &walker{maxDepth: options.MaxDepth}
	return w.walk(root, nil, 0, 0, "/")
}

type walker struct {
	maxDepth int
}

func (w *walker) walk(n Node, parent *EnrichedNode, start, depth int, path string) (*EnrichedNode, error) {
	if n == nil {
		return nil, structuralf(path, start, "nil node")
	}
	if w.maxDepth > 0 && depth > w.maxDepth {
		return nil, &StructuralError{Path: path, Offset: start, Err: rdf.ErrDepthExceeded}
	}

	en := &EnrichedNode{node: n, start: start, end: start, parent: parent}
	children := n.Children()
	switch {
	case len(children) > 0:
		en.kind = KindTag
		en.children = make([]*EnrichedNode, 0, len(children))
		cursor := start
		for i, child := range children {
			childPath := path + strconv.Itoa(i)
			if path != "/" {
				childPath = path + "/" + strconv.Itoa(i)
			}
			c, err := w.walk(child, en, cursor, depth+1, childPath)
			if err != nil {
				return nil, err
			}
			en.children = append(en.children, c)
			cursor = c.end
		}
		en.end = cursor
	case !n.Comment():
		texter, ok := n.(Texter)
		if !ok {
			return nil, structuralf(path, start, "childless node %T has no text accessor", n)
		}
		en.kind = KindText
		en.text = texter.TextContent()
		en.end = start + utf8.RuneCountInString(en.text)
	default:
		en.kind = KindOther
	}
	return en, nil
}
