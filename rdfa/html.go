package rdfa

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// htmlNode adapts *html.Node to Node, Attributed and Texter.
type htmlNode struct {
	n *html.Node
}

// FromHTML wraps a parsed HTML node. It returns nil for a nil node.
func FromHTML(n *html.Node) Node {
	if n == nil {
		return nil
	}
	return htmlNode{n: n}
}

// ParseHTML parses an HTML document and returns its root.
func ParseHTML(r io.Reader) (Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return FromHTML(doc), nil
}

// HTMLNode returns the *html.Node behind n, or nil when n was not built by
// FromHTML.
func HTMLNode(n Node) *html.Node {
	if h, ok := n.(htmlNode); ok {
		return h.n
	}
	return nil
}

func (h htmlNode) Children() []Node {
	var out []Node
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, htmlNode{n: c})
	}
	return out
}

func (h htmlNode) Comment() bool {
	return h.n.Type == html.CommentNode
}

func (h htmlNode) Attributes() []Attribute {
	if h.n.Type != html.ElementNode || len(h.n.Attr) == 0 {
		return nil
	}
	out := make([]Attribute, 0, len(h.n.Attr))
	for _, a := range h.n.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		out = append(out, Attribute{Key: key, Val: a.Val})
	}
	return out
}

func (h htmlNode) TextContent() string {
	switch h.n.Type {
	case html.TextNode:
		return h.n.Data
	case html.ElementNode, html.DocumentNode:
		var b strings.Builder
		collectText(h.n, &b)
		return b.String()
	default:
		return ""
	}
}

func collectText(n *html.Node, b *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode:
			collectText(c, b)
		}
	}
}

// innerHTML renders the children of an HTML-backed node, used for
// rdf:HTML and rdf:XMLLiteral property values.
func innerHTML(n Node) (string, bool) {
	h := HTMLNode(n)
	if h == nil {
		return "", false
	}
	var b strings.Builder
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", false
		}
	}
	return b.String(), true
}

// RenderHTML renders an HTML-backed node including its own tag.
func RenderHTML(n Node) (string, error) {
	h := HTMLNode(n)
	if h == nil {
		return "", fmt.Errorf("render: node is not backed by html.Node")
	}
	var b strings.Builder
	if err := html.Render(&b, h); err != nil {
		return "", err
	}
	return b.String(), nil
}

// DocumentBase returns the href of the first <base> element, or "".
func DocumentBase(root Node) string {
	h := HTMLNode(root)
	if h == nil {
		return ""
	}
	var found string
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Base {
			for _, a := range n.Attr {
				if a.Key == "href" {
					found = a.Val
					return true
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(h)
	return found
}

// FromSelection wraps every node of a goquery selection.
func FromSelection(sel *goquery.Selection) []Node {
	if sel == nil {
		return nil
	}
	out := make([]Node, 0, len(sel.Nodes))
	for _, n := range sel.Nodes {
		out = append(out, htmlNode{n: n})
	}
	return out
}

// Select runs a CSS selector below an HTML-backed root.
func Select(root Node, selector string) ([]Node, error) {
	h := HTMLNode(root)
	if h == nil {
		return nil, fmt.Errorf("select %q: root is not backed by html.Node", selector)
	}
	doc := goquery.NewDocumentFromNode(h)
	return FromSelection(doc.Find(selector)), nil
}
