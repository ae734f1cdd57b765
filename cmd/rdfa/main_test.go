package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/geoknoesis/rdfa-go/internal/store"
	"github.com/geoknoesis/rdfa-go/rdf"
)

const page = `<html><head><base href="http://example.org/doc"></head><body>
<div about="#meeting" typeof="ex:Meeting">
<span property="ex:title">Board</span>
<div property="ex:location" typeof="ex:Place"><span property="ex:name">Room</span></div>
</div>
</body></html>`

func writePage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	argv := append([]string{"rdfa", "--quiet", "--prefix", "ex=http://example.org/"}, args...)
	if err := newApp(&out).Run(argv); err != nil {
		t.Fatalf("run %v: %v", args, err)
	}
	return out.String()
}

func TestExtractCommand(t *testing.T) {
	out := run(t, "--format", "nt", "extract", writePage(t))
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 statements, got %d:\n%s", len(lines), out)
	}
	want := `<http://example.org/doc#meeting> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://example.org/Meeting> .`
	if lines[0] != want {
		t.Fatalf("unexpected first line:\n%s\nwant:\n%s", lines[0], want)
	}
}

func TestFindCommand(t *testing.T) {
	out := run(t, "find", "--type", "ex:Place", writePage(t))
	if !strings.Contains(out, `<div property="ex:location" typeof="ex:Place">`) {
		t.Fatalf("unexpected find output: %q", out)
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Fatalf("expected one match, got %d", n)
	}
}

func TestGraphCommandStoresPrunedGraph(t *testing.T) {
	db := filepath.Join(t.TempDir(), "triples.db")
	out := run(t, "graph", "--select", "div[typeof]", "--store", db, writePage(t))
	if strings.Contains(out, "_:") {
		t.Fatalf("pruned output still has blank nodes:\n%s", out)
	}
	if !strings.Contains(out, `"Board"`) {
		t.Fatalf("expected the title in the output:\n%s", out)
	}

	st, err := store.Open(db)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	got, err := st.Triples(context.Background(), rdf.IRI{Value: "http://example.org/doc#meeting"})
	if err != nil {
		t.Fatalf("triples: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 stored triples, got %v", got)
	}
}

func TestGraphCommandRequiresOneTarget(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run([]string{"rdfa", "--quiet", "graph", writePage(t)})
	if err == nil {
		t.Fatal("expected an error without --type or --select")
	}
}
