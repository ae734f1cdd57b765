package rdf

import "testing"

func TestResolveIRI(t *testing.T) {
	cases := []struct {
		base, ref, want string
	}{
		{"http://example.org/", "path", "http://example.org/path"},
		{"http://example.org/a/b", "c", "http://example.org/a/c"},
		{"http://example.org/a/b", "/c", "http://example.org/c"},
		{"http://example.org/a/b", "#frag", "http://example.org/a/b#frag"},
		{"http://example.org/", "http://other.org/path", "http://other.org/path"},
		{"http://example.org/", "urn:isbn:123", "urn:isbn:123"},
		{"", "relative", "relative"},
	}
	for _, c := range cases {
		if got := ResolveIRI(c.base, c.ref); got != c.want {
			t.Errorf("ResolveIRI(%q, %q) = %q, want %q", c.base, c.ref, got, c.want)
		}
	}
}

func TestIsAbsoluteIRI(t *testing.T) {
	cases := map[string]bool{
		"http://example.org/":   true,
		"https://x/y":           true,
		"urn:uuid:1234":         true,
		"mailto:someone@x.org":  true,
		"ex:title":              false,
		"title":                 false,
		"/relative/path":        false,
		"unk:foo":               false,
	}
	for value, want := range cases {
		if got := IsAbsoluteIRI(value); got != want {
			t.Errorf("IsAbsoluteIRI(%q) = %v, want %v", value, got, want)
		}
	}
}
