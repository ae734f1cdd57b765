package rdfa

import (
	"sort"
	"strings"

	"github.com/geoknoesis/rdfa-go/rdf"
)

// wrapperNode is a synthetic element standing in for the ancestors of an
// isolated subtree. It re-declares the inherited prefixes, vocabulary and
// language, and holds the subtree as its only child. The original tree is
// not touched.
type wrapperNode struct {
	attrs []Attribute
	child Node
}

func (w *wrapperNode) Children() []Node { return []Node{w.child} }
func (w *wrapperNode) Comment() bool { return false }
func (w *wrapperNode) Attributes() []Attribute { return w.attrs }
func (w *wrapperNode) TextContent() string { return "" }

func newWrapper(n Node, sc Scope) *wrapperNode {
	w := &wrapperNode{child: n}
	if len(sc.Prefixes) > 0 {
		keys := make([]string, 0, len(sc.Prefixes))
		for k := range sc.Prefixes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var b strings.Builder
		for _, k := range keys {
			ns := sc.Prefixes[k]
			if ns == "" || strings.ContainsAny(ns, " \t\n") {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(k + ": " + ns)
		}
		w.attrs = append(w.attrs, Attribute{Key: "prefix", Val: b.String()})
	}
	if sc.Vocab != "" {
		w.attrs = append(w.attrs, Attribute{Key: "vocab", Val: sc.Vocab})
	}
	if sc.Lang != "" {
		w.attrs = append(w.attrs, Attribute{Key: "lang", Val: sc.Lang})
	}
	return w
}

// ExtractGraph isolates the subtree at en and resolves it on its own: the
// prefixes, vocabulary and language en inherited become explicit
// declarations on a synthetic parent, and the subject defaults to the base
// IRI from opts. The result is a fresh graph with fresh blank nodes.
func ExtractGraph(en *EnrichedNode, opts ...Option) (*rdf.Graph, error) {
	sc := Scope{Prefixes: en.prefixes, Vocab: en.vocab, Lang: en.lang}
	return ExtractGraphWithScope(en.node, sc, opts...)
}

// ExtractGraphWithScope isolates n under the given scope. Only the
// declarations of sc are used; its subject and pending relation belong to
// the original tree and are not carried over.
func ExtractGraphWithScope(n Node, sc Scope, opts ...Option) (*rdf.Graph, error) {
	options := newOptions(opts)
	if options.MaxDepth > 0 {
		opts = append(opts[:len(opts):len(opts)], OptMaxDepth(options.MaxDepth+1))
	}
	doc, err := Process(newWrapper(n, sc), opts...)
	if err != nil {
		return nil, err
	}
	return doc.Graph(), nil
}

// ExtractPrunedGraph is ExtractGraph followed by blank node pruning: the
// shape that may be merged into a permanent store.
func ExtractPrunedGraph(en *EnrichedNode, opts ...Option) (*rdf.Graph, rdf.PruneReport, error) {
	g, err := ExtractGraph(en, opts...)
	if err != nil {
		return nil, rdf.PruneReport{}, err
	}
	pruned, report := g.Prune()
	return pruned, report, nil
}
