package rdf

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func sampleGraph() *Graph {
	return NewGraphFromTriples([]Triple{
		NewTriple(exMeeting, RDFType, IRI{Value: SchemaNamespace + "Event"}),
		NewTriple(exMeeting, exTitle, Literal{Lexical: "Board \"Q1\""}),
		NewTriple(exMeeting, exTitle, Literal{Lexical: "Vorstand", Lang: "de"}),
		NewTriple(exMeeting, IRI{Value: "http://example.org/seats"}, Literal{Lexical: "12", Datatype: IRI{Value: XSDNamespace + "integer"}}),
		NewTriple(exMeeting, exLoc, IRI{Value: "http://example.org/room/1"}),
	})
}

func TestNTriplesRoundTripKeepsOrder(t *testing.T) {
	g := sampleGraph()
	g.Add(NewTriple(BlankNode{ID: "b1"}, exName, Literal{Lexical: "Room"}))

	var buf bytes.Buffer
	if err := WriteGraph(&buf, g, FormatNTriples, EncodeOptions{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := ReadGraph(&buf, FormatNTriples, DecodeOptions{})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !g.Equal(back) {
		t.Fatalf("round trip changed graph:\n%v\n%v", g.Triples(), back.Triples())
	}
	want, got := g.Triples(), back.Triples()
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("triple %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestJSONLDRoundTrip(t *testing.T) {
	g := sampleGraph()
	for _, prefixes := range []map[string]string{nil, {"ex": "http://example.org/", "schema": SchemaNamespace}} {
		var buf bytes.Buffer
		if err := WriteGraph(&buf, g, FormatJSONLD, EncodeOptions{Prefixes: prefixes, Indent: "  "}); err != nil {
			t.Fatalf("write: %v", err)
		}
		back, err := ReadGraph(bytes.NewReader(buf.Bytes()), FormatJSONLD, DecodeOptions{})
		if err != nil {
			t.Fatalf("read: %v\n%s", err, buf.String())
		}
		if !g.Equal(back) {
			t.Fatalf("round trip changed graph:\n%v\n%v\n%s", g.Triples(), back.Triples(), buf.String())
		}
	}
}

func TestJSONLDReadsStringsAsPlainLiterals(t *testing.T) {
	g := NewGraphFromTriples([]Triple{
		NewTriple(exMeeting, exTitle, Literal{Lexical: "Board", Datatype: XSDString}),
	})
	var buf bytes.Buffer
	if err := WriteGraph(&buf, g, FormatJSONLD, EncodeOptions{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := ReadGraph(&buf, FormatJSONLD, DecodeOptions{})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := NewTriple(exMeeting, exTitle, Literal{Lexical: "Board"})
	if back.Len() != 1 || !back.Has(want) {
		t.Fatalf("expected plain literal, got %v", back.Triples())
	}
}

func TestReadGraphTripleLimit(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGraph(&buf, sampleGraph(), FormatNTriples, EncodeOptions{}); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := ReadGraph(&buf, FormatNTriples, DecodeOptions{MaxTriples: 2})
	if !errors.Is(err, ErrTripleLimitExceeded) {
		t.Fatalf("expected triple limit error, got %v", err)
	}
	if Code(err) != ErrCodeTripleLimitExceeded {
		t.Fatalf("unexpected code %s", Code(err))
	}
}

func TestUnsupportedFormats(t *testing.T) {
	if _, err := ReadGraph(strings.NewReader(""), FormatTurtle, DecodeOptions{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected unsupported format reading turtle, got %v", err)
	}
	var buf bytes.Buffer
	if err := WriteGraph(&buf, NewGraph(), Format("rdfxml"), EncodeOptions{}); Code(err) != ErrCodeUnsupportedFormat {
		t.Fatalf("expected unsupported format code, got %v", err)
	}
}

func TestWriteGraphHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := WriteGraph(&buf, sampleGraph(), FormatNTriples, EncodeOptions{Context: ctx})
	if Code(err) != ErrCodeContextCanceled {
		t.Fatalf("expected canceled, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
