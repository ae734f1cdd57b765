package rdf

import (
	"net/url"
	"strings"
)

// ResolveIRI resolves a relative IRI against a base IRI according to RFC 3986.
// An empty base leaves the reference untouched.
func ResolveIRI(base, ref string) string {
	if base == "" {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return joinPath(base, ref)
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return joinPath(base, ref)
	}
	if refURL.Scheme != "" {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

// joinPath is the fallback when either side does not parse as a URL.
func joinPath(base, ref string) string {
	if strings.HasSuffix(base, "/") {
		return base + ref
	}
	if i := strings.LastIndex(base, "/"); i >= 0 {
		return base[:i+1] + ref
	}
	return base + "/" + ref
}

// nonHierarchicalSchemes are schemes whose IRIs carry no "://" but are still
// absolute.
var nonHierarchicalSchemes = map[string]bool{
	"urn":    true,
	"mailto": true,
	"tel":    true,
	"tag":    true,
	"data":   true,
	"did":    true,
}

// IsAbsoluteIRI reports whether value is an absolute IRI: it has a "://"
// authority marker or starts with a well-known non-hierarchical scheme.
func IsAbsoluteIRI(value string) bool {
	if strings.Contains(value, "://") {
		return true
	}
	scheme, _, ok := strings.Cut(value, ":")
	if !ok {
		return false
	}
	return nonHierarchicalSchemes[strings.ToLower(scheme)]
}
