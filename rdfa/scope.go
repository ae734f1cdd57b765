package rdfa

import (
	"strings"

	"github.com/geoknoesis/rdfa-go/rdf"
)

// Scope is the RDF context inherited by a node's children. It is passed by
// value; a node that declares prefixes gets a fresh map rather than writing
// into its parent's.
type Scope struct {
	Subject  rdf.Resource
	Prefixes map[string]string
	Vocab    string
	Lang     string
	// Pending is a rel/rev relation waiting for the next level to supply
	// its object. It never reaches grandchildren.
	Pending *Relation
}

// Relation is an incomplete rel/rev statement.
type Relation struct {
	Subject rdf.Resource
	Forward []rdf.IRI
	Reverse []rdf.IRI
}

// complete returns the triples linking the relation's subject to object.
func (r *Relation) complete(object rdf.Resource) []rdf.Triple {
	out := make([]rdf.Triple, 0, len(r.Forward)+len(r.Reverse))
	for _, p := range r.Forward {
		out = append(out, rdf.Triple{S: r.Subject, P: p, O: object})
	}
	for _, p := range r.Reverse {
		out = append(out, rdf.Triple{S: object, P: p, O: r.Subject})
	}
	return out
}

// InitialScope builds the document-level scope from options: the base IRI is
// the subject.
func InitialScope(opts Options) Scope {
	sc := Scope{
		Prefixes: make(map[string]string, len(opts.Prefixes)),
		Vocab:    opts.Vocab,
		Lang:     opts.Lang,
	}
	for k, v := range opts.Prefixes {
		sc.Prefixes[strings.ToLower(k)] = v
	}
	if opts.BaseIRI != "" {
		sc.Subject = rdf.IRI{Value: opts.BaseIRI}
	}
	return sc
}

// parsePrefixAttr splits a prefix attribute into (name, IRI) pairs. Entries
// that are not "name: iri" come back in bad.
func parsePrefixAttr(value string) (pairs [][2]string, bad []string) {
	fields := strings.Fields(value)
	for i := 0; i < len(fields); i++ {
		name := fields[i]
		if !strings.HasSuffix(name, ":") || len(name) < 2 || i+1 >= len(fields) {
			bad = append(bad, name)
			continue
		}
		pairs = append(pairs, [2]string{strings.ToLower(strings.TrimSuffix(name, ":")), fields[i+1]})
		i++
	}
	return pairs, bad
}
