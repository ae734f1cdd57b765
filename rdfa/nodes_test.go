package rdfa

// testNode is a minimal in-memory markup node.
type testNode struct {
	attrs   []Attribute
	kids    []Node
	text    string
	comment bool
}

func (n *testNode) Children() []Node { return n.kids }
func (n *testNode) Comment() bool { return n.comment }
func (n *testNode) Attributes() []Attribute { return n.attrs }
func (n *testNode) TextContent() string { return n.text }

// bareNode has neither attributes nor text.
type bareNode struct{}

func (bareNode) Children() []Node { return nil }
func (bareNode) Comment() bool { return false }

func el(attrs []Attribute, kids ...Node) *testNode {
	return &testNode{attrs: attrs, kids: kids}
}

func txt(s string) *testNode {
	return &testNode{text: s}
}

func comment() *testNode {
	return &testNode{comment: true}
}

func at(kv ...string) []Attribute {
	out := make([]Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return out
}

const ex = "http://example.org/"
