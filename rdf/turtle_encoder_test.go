package rdf

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteTurtleGroupsBySubject(t *testing.T) {
	g := NewGraphFromTriples([]Triple{
		NewTriple(exMeeting, RDFType, IRI{Value: SchemaNamespace + "Event"}),
		NewTriple(exMeeting, IRI{Value: SchemaNamespace + "name"}, Literal{Lexical: "Board"}),
		NewTriple(exMeeting, IRI{Value: SchemaNamespace + "name"}, Literal{Lexical: "Vorstand", Lang: "de"}),
		NewTriple(exMeeting, exLoc, BlankNode{ID: "b1"}),
	})
	var buf bytes.Buffer
	err := WriteGraph(&buf, g, FormatTurtle, EncodeOptions{Prefixes: InitialContext()})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	want := strings.Join([]string{
		"@prefix schema: <http://schema.org/> .",
		"",
		`<http://example.org/meeting> a schema:Event ;`,
		`    schema:name "Board", "Vorstand"@de ;`,
		`    <http://example.org/location> _:b1 .`,
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("unexpected turtle:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestAbbreviateQName(t *testing.T) {
	prefixes := map[string]string{
		"ex":  "http://example.org/",
		"exv": "http://example.org/vocab/",
		"a":   "http://same.org/",
		"b":   "http://same.org/",
	}
	cases := []struct {
		iri  string
		want string
		ok   bool
	}{
		{"http://example.org/title", "ex:title", true},
		{"http://example.org/vocab/name", "exv:name", true},
		{"http://same.org/x", "a:x", true},
		{"http://example.org/bad.", "", false},
		{"http://other.org/x", "", false},
	}
	for _, c := range cases {
		got, ok := abbreviateQName(c.iri, prefixes)
		if ok != c.ok || got != c.want {
			t.Errorf("abbreviateQName(%q) = %q, %v; want %q, %v", c.iri, got, ok, c.want, c.ok)
		}
	}
}
