package rdf

import "context"

// DecodeOptions configures ReadGraph. Zero values mean no limit.
type DecodeOptions struct {
	// Context cancels decoding between statements.
	Context context.Context
	// BaseIRI resolves relative IRIs in formats that allow them.
	BaseIRI string
	// MaxTriples bounds the number of statements read.
	MaxTriples int
	// MaxInputBytes bounds JSON-LD input size.
	MaxInputBytes int64
}

// EncodeOptions configures WriteGraph.
type EncodeOptions struct {
	// Context cancels encoding before it starts.
	Context context.Context
	// BaseIRI is emitted as @base in Turtle and used by JSON-LD.
	BaseIRI string
	// Prefixes abbreviates IRIs in Turtle and becomes the JSON-LD @context.
	Prefixes map[string]string
	// Indent controls Turtle continuation indent and JSON-LD pretty printing.
	Indent string
}
