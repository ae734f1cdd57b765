package rdf

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

// TurtleEncodeOptions configures Turtle encoding.
type TurtleEncodeOptions struct {
	Indent   string
	Prefixes map[string]string
	BaseIRI  string
}

// writeTurtle writes g grouped by subject: predicates separated by ";" and
// objects of one predicate by ",". Only prefixes actually used are declared.
func writeTurtle(w io.Writer, g *Graph, opts TurtleEncodeOptions) error {
	indent := opts.Indent
	if indent == "" {
		indent = "    "
	}
	used := usedPrefixes(g, opts.Prefixes)

	bw := bufio.NewWriter(w)
	if opts.BaseIRI != "" {
		bw.WriteString("@base <" + opts.BaseIRI + "> .\n")
	}
	for _, prefix := range sortedPrefixKeys(used) {
		bw.WriteString("@prefix " + prefix + ": <" + used[prefix] + "> .\n")
	}
	if opts.BaseIRI != "" || len(used) > 0 {
		bw.WriteString("\n")
	}

	for _, s := range g.Subjects() {
		bw.WriteString(renderTermWithPrefixes(s, used))
		preds := g.Predicates(s)
		for i, p := range preds {
			if i == 0 {
				bw.WriteString(" ")
			} else {
				bw.WriteString(" ;\n" + indent)
			}
			if p == RDFType {
				bw.WriteString("a")
			} else {
				bw.WriteString(renderIRIWithPrefixes(p, used))
			}
			for j, o := range g.Objects(s, p) {
				if j > 0 {
					bw.WriteString(",")
				}
				bw.WriteString(" " + renderTermWithPrefixes(o, used))
			}
		}
		bw.WriteString(" .\n")
	}
	return bw.Flush()
}

func usedPrefixes(g *Graph, prefixes map[string]string) map[string]string {
	used := make(map[string]string)
	if len(prefixes) == 0 {
		return used
	}
	note := func(iri IRI) {
		if qname, ok := abbreviateQName(iri.Value, prefixes); ok {
			prefix := qname[:strings.IndexByte(qname, ':')]
			used[prefix] = prefixes[prefix]
		}
	}
	for _, t := range g.Triples() {
		if iri, ok := t.S.(IRI); ok {
			note(iri)
		}
		if t.P != RDFType {
			note(t.P)
		}
		switch o := t.O.(type) {
		case IRI:
			note(o)
		case Literal:
			if o.Datatype.Value != "" {
				note(o.Datatype)
			}
		}
	}
	return used
}

func sortedPrefixKeys(prefixes map[string]string) []string {
	keys := make([]string, 0, len(prefixes))
	for key := range prefixes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func renderIRIWithPrefixes(iri IRI, prefixes map[string]string) string {
	if qname, ok := abbreviateQName(iri.Value, prefixes); ok {
		return qname
	}
	return renderIRI(iri)
}

func renderTermWithPrefixes(term Term, prefixes map[string]string) string {
	switch value := term.(type) {
	case IRI:
		return renderIRIWithPrefixes(value, prefixes)
	case Literal:
		return renderLiteral(value, func(dt IRI) string { return renderIRIWithPrefixes(dt, prefixes) })
	default:
		return renderTerm(term)
	}
}

// abbreviateQName picks the longest namespace that prefixes iri and leaves a
// valid local name. Ties on namespace length go to the smaller prefix so the
// output does not depend on map iteration order.
func abbreviateQName(iri string, prefixes map[string]string) (string, bool) {
	bestNS, bestPrefix := "", ""
	found := false
	for prefix, ns := range prefixes {
		if prefix == "" || ns == "" || !strings.HasPrefix(iri, ns) {
			continue
		}
		if !isQNameLocal(iri[len(ns):]) {
			continue
		}
		if !found || len(ns) > len(bestNS) || (len(ns) == len(bestNS) && prefix < bestPrefix) {
			bestNS, bestPrefix, found = ns, prefix, true
		}
	}
	if !found {
		return "", false
	}
	return bestPrefix + ":" + iri[len(bestNS):], true
}
