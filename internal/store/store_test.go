package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/geoknoesis/rdfa-go/rdf"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

var (
	meeting = rdf.IRI{Value: "http://example.org/meeting"}
	title   = rdf.IRI{Value: "http://example.org/title"}
	room    = rdf.IRI{Value: "http://example.org/room"}
)

func TestMergeAndQuery(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	g := rdf.NewGraphFromTriples([]rdf.Triple{
		rdf.NewTriple(meeting, rdf.RDFType, rdf.IRI{Value: rdf.SchemaNamespace + "Event"}),
		rdf.NewTriple(meeting, title, rdf.Literal{Lexical: "Board", Lang: "en"}),
		rdf.NewTriple(meeting, title, rdf.Literal{Lexical: "2", Datatype: rdf.IRI{Value: rdf.XSDNamespace + "integer"}}),
		rdf.NewTriple(room, title, rdf.Literal{Lexical: "Room"}),
	})
	added, err := s.Merge(ctx, g)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if added != 4 {
		t.Fatalf("expected 4 added, got %d", added)
	}

	again, err := s.Merge(ctx, g)
	if err != nil {
		t.Fatalf("second merge: %v", err)
	}
	if again != 0 {
		t.Fatalf("expected duplicates ignored, got %d", again)
	}

	got, err := s.Triples(ctx, meeting)
	if err != nil {
		t.Fatalf("triples: %v", err)
	}
	want := g.Triples()[:3]
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("triple %d: got %v, want %v", i, got[i], want[i])
		}
	}

	all, err := s.Graph(ctx)
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	if !all.Equal(g) {
		t.Fatalf("stored graph differs: %v", all.Triples())
	}
}

func TestMergeRejectsBlankNodes(t *testing.T) {
	ctx := context.Background()
	s := openMemory(t)
	g := rdf.NewGraphFromTriples([]rdf.Triple{
		rdf.NewTriple(meeting, title, rdf.Literal{Lexical: "Board"}),
		rdf.NewTriple(meeting, room, rdf.BlankNode{ID: "b1"}),
	})
	_, err := s.Merge(ctx, g)
	if !errors.Is(err, rdf.ErrBlankNode) {
		t.Fatalf("expected blank node error, got %v", err)
	}
	if rdf.Code(err) != rdf.ErrCodeBlankNode {
		t.Fatalf("unexpected code %s", rdf.Code(err))
	}
	all, err := s.Graph(ctx)
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	if all.Len() != 0 {
		t.Fatalf("rejected graph was partly stored: %v", all.Triples())
	}

	added, err := s.Merge(ctx, rdf.PruneBlankNodes(g))
	if err != nil || added != 1 {
		t.Fatalf("pruned merge: added=%d err=%v", added, err)
	}
}

func TestMergeRejectsQuotedBlankNodes(t *testing.T) {
	s := openMemory(t)
	quoted := rdf.TripleTerm{S: rdf.BlankNode{ID: "x"}, P: title, O: rdf.Literal{Lexical: "Board"}}
	g := rdf.NewGraphFromTriples([]rdf.Triple{rdf.NewTriple(meeting, room, quoted)})
	if _, err := s.Merge(context.Background(), g); !errors.Is(err, rdf.ErrBlankNode) {
		t.Fatalf("expected blank node error, got %v", err)
	}
}

func TestStorePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "triples.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := s.Merge(ctx, rdf.NewGraphFromTriples([]rdf.Triple{rdf.NewTriple(meeting, title, rdf.Literal{Lexical: "Board"})})); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.Triples(ctx, meeting)
	if err != nil {
		t.Fatalf("triples: %v", err)
	}
	if len(got) != 1 || got[0].O != (rdf.Literal{Lexical: "Board"}) {
		t.Fatalf("unexpected triples after reopen: %v", got)
	}
}
