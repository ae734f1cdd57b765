//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/geoknoesis/rdfa-go/rdf"
	"github.com/geoknoesis/rdfa-go/rdfa"
)

// Runs every *.html fixture below a directory and compares the extracted
// graph with the sibling *.nt file. With -update the *.nt files are
// rewritten from the current output instead.
func main() {
	args := os.Args[1:]
	update := false
	if len(args) > 0 && args[0] == "-update" {
		update = true
		args = args[1:]
	}
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-update] <fixtures-directory>\n", os.Args[0])
		os.Exit(1)
	}
	baseDir := args[0]

	var fixtures []string
	err := filepath.Walk(baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(strings.ToLower(path), ".html") {
			fixtures = append(fixtures, path)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", baseDir, err)
		os.Exit(1)
	}
	sort.Strings(fixtures)

	fmt.Println("RDFa Fixture Run")
	fmt.Println("=" + strings.Repeat("=", 50))

	pass, fail, skipped := 0, 0, 0
	for _, path := range fixtures {
		rel, _ := filepath.Rel(baseDir, path)
		got, err := extract(path, rel)
		if err != nil {
			fmt.Printf("  ❌ %s: %v\n", rel, err)
			fail++
			continue
		}
		expectedPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".nt"
		if update {
			if err := writeNTriples(expectedPath, got); err != nil {
				fmt.Printf("  ❌ %s: %v\n", rel, err)
				fail++
				continue
			}
			fmt.Printf("  ✓ %s: wrote %d triples\n", rel, got.Len())
			pass++
			continue
		}
		f, err := os.Open(expectedPath)
		if os.IsNotExist(err) {
			fmt.Printf("  ⚠️  %s: no expected output\n", rel)
			skipped++
			continue
		}
		if err != nil {
			fmt.Printf("  ❌ %s: %v\n", rel, err)
			fail++
			continue
		}
		want, err := rdf.ReadGraph(f, rdf.FormatNTriples, rdf.DecodeOptions{})
		f.Close()
		if err != nil {
			fmt.Printf("  ❌ %s: expected output: %v\n", rel, err)
			fail++
			continue
		}
		if !got.Equal(want) {
			fmt.Printf("  ❌ %s: got %d triples, want %d\n", rel, got.Len(), want.Len())
			fail++
			continue
		}
		pass++
	}

	fmt.Println("=" + strings.Repeat("=", 50))
	fmt.Printf("Pass: %d  Fail: %d  Skipped: %d\n", pass, fail, skipped)
	if fail > 0 {
		os.Exit(1)
	}
}

// extract processes one fixture. Its base IRI is derived from the relative
// path so that expected outputs do not depend on where the tree lives.
func extract(path, rel string) (*rdf.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := rdfa.ParseHTML(f)
	if err != nil {
		return nil, err
	}
	doc, err := rdfa.ProcessHTML(root,
		rdfa.OptInitialContext(),
		rdfa.OptBaseIRI("http://rdfa.test/"+filepath.ToSlash(rel)),
	)
	if err != nil {
		return nil, err
	}
	return doc.Graph(), nil
}

func writeNTriples(path string, g *rdf.Graph) error {
	var buf bytes.Buffer
	if err := rdf.WriteGraph(&buf, g, rdf.FormatNTriples, rdf.EncodeOptions{}); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
