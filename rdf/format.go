package rdf

import "strings"

// Format names a serialization handled by WriteGraph and ReadGraph.
type Format string

// Supported formats. Turtle is write-only.
const (
	FormatTurtle   Format = "turtle"
	FormatNTriples Format = "ntriples"
	FormatJSONLD   Format = "jsonld"
)

var formatNames = map[string]Format{
	"turtle":    FormatTurtle,
	"ttl":       FormatTurtle,
	"ntriples":  FormatNTriples,
	"n-triples": FormatNTriples,
	"nt":        FormatNTriples,
	"jsonld":    FormatJSONLD,
	"json-ld":   FormatJSONLD,
	"json":      FormatJSONLD,
}

// ParseFormat maps a user-supplied name or file extension to a Format.
func ParseFormat(value string) (Format, bool) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(value)), ".")
	f, ok := formatNames[name]
	return f, ok
}
