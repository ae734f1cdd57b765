package rdfa

import (
	"strings"

	"github.com/geoknoesis/rdfa-go/rdf"
)

// Document is the result of one extraction call: the enriched tree, the
// triples in document order, and the non-fatal diagnostics. Nothing in it
// is mutated after Process returns.
type Document struct {
	Root        *EnrichedNode
	Triples     []rdf.Triple
	Diagnostics []Diagnostic
	options     Options
}

// Process walks root and resolves its RDFa context starting from the
// document-level scope described by opts.
func Process(root Node, opts ...Option) (*Document, error) {
	options := newOptions(opts)
	w := &walker{maxDepth: options.MaxDepth}
	tree, err := w.walk(root, nil, 0, 0, "/")
	if err != nil {
		return nil, err
	}
	r := newResolver(options)
	_, triples := r.resolve(tree, InitialScope(options))
	return &Document{
		Root:        tree,
		Triples:     triples,
		Diagnostics: r.diags,
		options:     options,
	}, nil
}

// ProcessHTML is Process for an *html.Node tree. When no base IRI is set, the
// document's <base href> is used.
func ProcessHTML(root Node, opts ...Option) (*Document, error) {
	options := newOptions(opts)
	if options.BaseIRI == "" {
		if base := DocumentBase(root); base != "" {
			opts = append(opts[:len(opts):len(opts)], OptBaseIRI(base))
		}
	}
	return Process(root, opts...)
}

// BaseIRI returns the base IRI the document was resolved against.
func (d *Document) BaseIRI() string { return d.options.BaseIRI }

// Graph returns the document triples as a graph.
func (d *Document) Graph() *rdf.Graph {
	return rdf.NewGraphFromTriples(d.Triples)
}

// Lookup returns the enriched node wrapping n, or nil.
func (d *Document) Lookup(n Node) *EnrichedNode {
	return d.Root.Find(n)
}

// ExpandIRI expands a CURIE against the document-level prefixes; other
// values are returned unchanged. It lets callers name types as "schema:Event".
func (d *Document) ExpandIRI(value string) string {
	if rdf.IsAbsoluteIRI(value) {
		return value
	}
	prefix, local, ok := strings.Cut(value, ":")
	if !ok {
		return value
	}
	if ns, ok := d.options.Prefixes[strings.ToLower(prefix)]; ok {
		return ns + local
	}
	return value
}

// FindFirst returns the first node in document order asserting typeIRI, or
// nil. A miss is logged at debug level.
func (d *Document) FindFirst(typeIRI string) Node {
	typeIRI = d.ExpandIRI(typeIRI)
	n := FindFirst(d.Root, typeIRI)
	if n == nil {
		d.options.Logger.Debug("rdfa type not found",
			"code", string(DiagTypeNotFound),
			"type", typeIRI,
		)
	}
	return n
}

// FindAll returns every node whose own typeof includes typeIRI.
func (d *Document) FindAll(typeIRI string) []Node {
	return FindAll(d.Root, d.ExpandIRI(typeIRI))
}

// ExtractGraph isolates the subtree of n and returns its triples as a graph.
// The document's base IRI is used unless opts override it.
func (d *Document) ExtractGraph(n Node, opts ...Option) (*rdf.Graph, error) {
	en := d.Lookup(n)
	if en == nil {
		return nil, ErrUnknownNode
	}
	base := []Option{
		OptBaseIRI(d.options.BaseIRI),
		OptLogger(d.options.Logger),
		OptMaxDepth(d.options.MaxDepth),
		OptBlankNodePrefix(d.options.BlankNodePrefix),
	}
	if d.options.UniqueBlankNodes {
		base = append(base, OptUniqueBlankNodes())
	}
	return ExtractGraph(en, append(base, opts...)...)
}
