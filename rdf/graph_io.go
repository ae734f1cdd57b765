package rdf

import (
	"fmt"
	"io"
)

// WriteGraph serializes g in the requested format. Subject, predicate and
// object insertion order is preserved for N-Triples and Turtle only: JSON-LD
// output takes json-gold's subject order, and ReadGraph turns explicit
// xsd:string literals from JSON-LD into plain literals.
func WriteGraph(w io.Writer, g *Graph, format Format, opts EncodeOptions) error {
	if err := checkContext(opts.Context); err != nil {
		return err
	}
	switch format {
	case FormatNTriples:
		enc := NewNTriplesEncoder(w)
		for _, t := range g.Triples() {
			if err := enc.Write(t); err != nil {
				return err
			}
		}
		return enc.Close()
	case FormatTurtle:
		return writeTurtle(w, g, TurtleEncodeOptions{
			Indent:   opts.Indent,
			Prefixes: opts.Prefixes,
			BaseIRI:  opts.BaseIRI,
		})
	case FormatJSONLD:
		return writeJSONLD(w, g, JSONLDOptions{
			Context:  opts.Context,
			BaseIRI:  opts.BaseIRI,
			Prefixes: opts.Prefixes,
			Indent:   opts.Indent,
		})
	default:
		return fmt.Errorf("write %q: %w", format, ErrUnsupportedFormat)
	}
}

// ReadGraph parses a graph. Turtle is write-only here.
func ReadGraph(r io.Reader, format Format, opts DecodeOptions) (*Graph, error) {
	switch format {
	case FormatNTriples:
		return readTriples(NewNTriplesDecoder(r), opts)
	case FormatJSONLD:
		g, err := readJSONLD(r, JSONLDOptions{
			Context:       opts.Context,
			BaseIRI:       opts.BaseIRI,
			MaxInputBytes: opts.MaxInputBytes,
		})
		if err != nil {
			return nil, err
		}
		if opts.MaxTriples > 0 && g.Len() > opts.MaxTriples {
			return nil, wrapParseError("jsonld", "", 0, ErrTripleLimitExceeded)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("read %q: %w", format, ErrUnsupportedFormat)
	}
}

func readTriples(dec TripleDecoder, opts DecodeOptions) (*Graph, error) {
	defer dec.Close()
	g := NewGraph()
	count := 0
	for {
		if err := checkContext(opts.Context); err != nil {
			return nil, err
		}
		t, err := dec.Next()
		if err == io.EOF {
			return g, nil
		}
		if err != nil {
			return nil, err
		}
		count++
		if opts.MaxTriples > 0 && count > opts.MaxTriples {
			return nil, wrapParseError("ntriples", t.String(), count, ErrTripleLimitExceeded)
		}
		g.Add(t)
	}
}
