package rdfa

import (
	"reflect"
	"strings"
)

// Node is the read-only view of a parsed markup node supplied by an external
// parser. Children must be returned in document order.
type Node interface {
	Children() []Node
	Comment() bool
}

// Attribute is a single markup attribute.
type Attribute struct {
	Key string
	Val string
}

// Attributed is implemented by nodes that carry attributes. Nodes that do not
// implement it are treated as having none.
type Attributed interface {
	Attributes() []Attribute
}

// Texter reports the text content of a node. It is required for every
// childless, non-comment node.
type Texter interface {
	TextContent() string
}

// attrs is a small lookup helper over an attribute list.
type attrs []Attribute

func attributesOf(n Node) attrs {
	if a, ok := n.(Attributed); ok {
		return a.Attributes()
	}
	return nil
}

func (a attrs) get(key string) (string, bool) {
	for _, attr := range a {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val, true
		}
	}
	return "", false
}

// first returns the value of the first present key.
func (a attrs) first(keys ...string) (string, string, bool) {
	for _, key := range keys {
		if v, ok := a.get(key); ok {
			return key, v, true
		}
	}
	return "", "", false
}

// sameNode compares two handles without panicking on non-comparable
// implementations.
func sameNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
