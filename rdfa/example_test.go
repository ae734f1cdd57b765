package rdfa_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/geoknoesis/rdfa-go/rdf"
	"github.com/geoknoesis/rdfa-go/rdfa"
)

func ExampleProcessHTML() {
	src := `<div about="http://example.org/meeting" typeof="schema:Event">
<span property="schema:name">Board</span>
</div>`
	root, err := rdfa.ParseHTML(strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	doc, err := rdfa.ProcessHTML(root, rdfa.OptInitialContext())
	if err != nil {
		panic(err)
	}
	for _, t := range doc.Triples {
		fmt.Println(t)
	}
	// Output:
	// <http://example.org/meeting> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://schema.org/Event> .
	// <http://example.org/meeting> <http://schema.org/name> "Board" .
}

func ExampleExtractPrunedGraph() {
	src := `<div about="http://example.org/meeting" typeof="schema:Event">
<span property="schema:name">Board</span>
<div property="schema:location" typeof="schema:Place"><span property="schema:name">Room 4</span></div>
</div>`
	root, err := rdfa.ParseHTML(strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	doc, err := rdfa.ProcessHTML(root, rdfa.OptInitialContext())
	if err != nil {
		panic(err)
	}
	event := doc.Lookup(doc.FindFirst("schema:Event"))
	g, report, err := rdfa.ExtractPrunedGraph(event)
	if err != nil {
		panic(err)
	}
	fmt.Println("removed", report.RemovedSubjects, report.RemovedObjects)
	_ = rdf.WriteGraph(os.Stdout, g, rdf.FormatTurtle, rdf.EncodeOptions{Prefixes: rdf.InitialContext()})
	// Output:
	// removed 1 1
	// @prefix schema: <http://schema.org/> .
	//
	// <http://example.org/meeting> a schema:Event ;
	//     schema:name "Board" .
}
