package rdf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	ld "github.com/piprate/json-gold/ld"
)

// JSONLDOptions configures JSON-LD processing.
type JSONLDOptions struct {
	// Context cancels JSON-LD work when done.
	Context context.Context
	// BaseIRI resolves relative IRIs.
	BaseIRI string
	// Prefixes becomes the @context used for compaction. Empty means the
	// expanded form is written.
	Prefixes map[string]string
	// Indent pretty-prints the output when non-empty.
	Indent string
	// MaxInputBytes limits the size of JSON-LD input when decoding. Zero means unlimited.
	MaxInputBytes int64
}

func newJSONGoldOptions(opts JSONLDOptions) *ld.JsonLdOptions {
	goldOpts := ld.NewJsonLdOptions(opts.BaseIRI)
	goldOpts.ProcessingMode = "json-ld-1.1"
	goldOpts.CompactArrays = true
	return goldOpts
}

func checkContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// writeJSONLD converts g to JSON-LD through json-gold's FromRDF over an
// N-Quads rendering, then compacts it against the prefix map.
func writeJSONLD(w io.Writer, g *Graph, opts JSONLDOptions) error {
	if err := checkContext(opts.Context); err != nil {
		return err
	}
	var nquads strings.Builder
	for _, t := range g.Triples() {
		nquads.WriteString(t.String())
		nquads.WriteByte('\n')
	}

	proc := ld.NewJsonLdProcessor()
	goldOpts := newJSONGoldOptions(opts)
	goldOpts.Format = "application/n-quads"
	expanded, err := proc.FromRDF(nquads.String(), goldOpts)
	if err != nil {
		return fmt.Errorf("jsonld: from rdf: %w", err)
	}

	var doc interface{} = expanded
	if len(opts.Prefixes) > 0 {
		ctxMap := make(map[string]interface{}, len(opts.Prefixes))
		for prefix, ns := range opts.Prefixes {
			ctxMap[prefix] = ns
		}
		compacted, err := proc.Compact(expanded, map[string]interface{}{"@context": ctxMap}, newJSONGoldOptions(opts))
		if err != nil {
			return fmt.Errorf("jsonld: compact: %w", err)
		}
		doc = compacted
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if opts.Indent != "" {
		enc.SetIndent("", opts.Indent)
	}
	return enc.Encode(doc)
}

// readJSONLD expands a JSON-LD document to N-Quads with json-gold and loads
// the default-graph triples into a Graph. Named graphs are flattened.
func readJSONLD(r io.Reader, opts JSONLDOptions) (*Graph, error) {
	if err := checkContext(opts.Context); err != nil {
		return nil, err
	}
	if opts.MaxInputBytes > 0 {
		r = io.LimitReader(r, opts.MaxInputBytes)
	}
	var input interface{}
	if err := json.NewDecoder(r).Decode(&input); err != nil {
		return nil, wrapParseError("jsonld", "", 0, err)
	}

	proc := ld.NewJsonLdProcessor()
	result, err := proc.ToRDF(input, newJSONGoldOptions(opts))
	if err != nil {
		return nil, wrapParseError("jsonld", "", 0, err)
	}
	dataset, ok := result.(*ld.RDFDataset)
	if !ok {
		return nil, fmt.Errorf("jsonld: unexpected ToRDF result %T", result)
	}
	serialized, err := (&ld.NQuadRDFSerializer{}).Serialize(dataset)
	if err != nil {
		return nil, fmt.Errorf("jsonld: serialize: %w", err)
	}
	nquads, ok := serialized.(string)
	if !ok {
		return nil, fmt.Errorf("jsonld: unexpected N-Quads result %T", serialized)
	}

	g := NewGraph()
	dec := newNQuadsTripleDecoder(bytes.NewBufferString(nquads))
	defer dec.Close()
	for {
		t, err := dec.Next()
		if err == io.EOF {
			return g, nil
		}
		if err != nil {
			return nil, err
		}
		if lit, ok := t.O.(Literal); ok && lit.Datatype == XSDString {
			lit.Datatype = IRI{}
			t.O = lit
		}
		g.Add(t)
	}
}
