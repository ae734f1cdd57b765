package rdf

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestNTriplesDecoder(t *testing.T) {
	input := strings.Join([]string{
		"# comment",
		"<http://example.org/s> <http://example.org/p> <http://example.org/o> .",
		"",
		`_:b1 <http://example.org/p> "café"@fr .`,
		`<http://example.org/s> <http://example.org/p> "1"^^<http://www.w3.org/2001/XMLSchema#integer> . # trailing`,
		`<http://example.org/s> <http://example.org/p> "line\nbreak \"quoted\"" .`,
	}, "\n")
	dec := NewNTriplesDecoder(strings.NewReader(input))
	defer dec.Close()

	var got []Triple
	for {
		tr, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, tr)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 triples, got %d", len(got))
	}
	if got[0].O != (IRI{Value: "http://example.org/o"}) {
		t.Fatalf("unexpected object: %v", got[0].O)
	}
	if got[1].S != (BlankNode{ID: "b1"}) || got[1].O != (Literal{Lexical: "café", Lang: "fr"}) {
		t.Fatalf("unexpected blank/lang triple: %v", got[1])
	}
	if lit := got[2].O.(Literal); lit.Datatype.Value != XSDNamespace+"integer" {
		t.Fatalf("unexpected datatype: %v", lit)
	}
	if lit := got[3].O.(Literal); lit.Lexical != "line\nbreak \"quoted\"" {
		t.Fatalf("unexpected escapes: %q", lit.Lexical)
	}
}

func TestNTriplesDecoderErrors(t *testing.T) {
	cases := []string{
		`"lit" <http://example.org/p> <http://example.org/o> .`,
		`<http://example.org/s> <http://example.org/p> <http://example.org/o>`,
		`<http://example.org/s> <http://example.org/p> "open .`,
		`<http://example.org/s> <http://example.org/p> <http://example.org/o> . extra`,
	}
	for _, input := range cases {
		dec := NewNTriplesDecoder(strings.NewReader(input))
		_, err := dec.Next()
		if err == nil {
			t.Fatalf("expected error for %q", input)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("expected ParseError for %q, got %T", input, err)
		}
		if perr.Line != 1 {
			t.Fatalf("expected line 1, got %d", perr.Line)
		}
		if Code(err) != ErrCodeParseError {
			t.Fatalf("unexpected code %s", Code(err))
		}
	}
}

func TestNTriplesEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewNTriplesEncoder(&buf)
	if err := enc.Write(NewTriple(exMeeting, exTitle, Literal{Lexical: "tab\there", Lang: "en"})); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := enc.Write(Triple{}); err == nil {
		t.Fatal("expected error for empty triple")
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	want := "<http://example.org/meeting> <http://example.org/title> \"tab\\there\"@en .\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestNQuadsDecoderDropsGraphName(t *testing.T) {
	input := "<http://example.org/s> <http://example.org/p> \"o\" <http://example.org/g> .\n"
	dec := newNQuadsTripleDecoder(strings.NewReader(input))
	tr, err := dec.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.O != (Literal{Lexical: "o"}) {
		t.Fatalf("unexpected object: %v", tr.O)
	}
}
