package rdf

// Graph is an in-memory RDF graph indexed subject → predicate → objects.
// Subjects, predicates and objects keep their insertion order so that
// serialization is deterministic. A Graph is not safe for concurrent writes;
// each extraction builds and owns its own.
type Graph struct {
	order    []Resource
	subjects map[Resource]*subjectEntry
	size     int
}

type subjectEntry struct {
	predicates []IRI
	objects    map[IRI][]Term
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{subjects: make(map[Resource]*subjectEntry)}
}

// NewGraphFromTriples builds a graph holding triples in order.
func NewGraphFromTriples(triples []Triple) *Graph {
	g := NewGraph()
	g.AddAll(triples)
	return g
}

// Add inserts a triple. It reports false when the triple was already present
// or is incomplete.
func (g *Graph) Add(t Triple) bool {
	if t.S == nil || t.P.Value == "" || t.O == nil {
		return false
	}
	entry, ok := g.subjects[t.S]
	if !ok {
		entry = &subjectEntry{objects: make(map[IRI][]Term)}
		g.subjects[t.S] = entry
		g.order = append(g.order, t.S)
	}
	objs, seen := entry.objects[t.P]
	if !seen {
		entry.predicates = append(entry.predicates, t.P)
	}
	for _, o := range objs {
		if o == t.O {
			return false
		}
	}
	entry.objects[t.P] = append(objs, t.O)
	g.size++
	return true
}

// AddAll inserts every triple in order and returns how many were new.
func (g *Graph) AddAll(triples []Triple) int {
	added := 0
	for _, t := range triples {
		if g.Add(t) {
			added++
		}
	}
	return added
}

// Len returns the number of triples.
func (g *Graph) Len() int { return g.size }

// Subjects returns the subjects in insertion order.
func (g *Graph) Subjects() []Resource {
	out := make([]Resource, len(g.order))
	copy(out, g.order)
	return out
}

// Predicates returns the predicates of subject in insertion order.
func (g *Graph) Predicates(subject Resource) []IRI {
	entry, ok := g.subjects[subject]
	if !ok {
		return nil
	}
	out := make([]IRI, len(entry.predicates))
	copy(out, entry.predicates)
	return out
}

// Objects returns the objects of (subject, predicate) in insertion order.
func (g *Graph) Objects(subject Resource, predicate IRI) []Term {
	entry, ok := g.subjects[subject]
	if !ok {
		return nil
	}
	objs := entry.objects[predicate]
	out := make([]Term, len(objs))
	copy(out, objs)
	return out
}

// Has reports whether the triple is in the graph.
func (g *Graph) Has(t Triple) bool {
	entry, ok := g.subjects[t.S]
	if !ok {
		return false
	}
	for _, o := range entry.objects[t.P] {
		if o == t.O {
			return true
		}
	}
	return false
}

// Triples flattens the graph in subject, predicate, object insertion order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, 0, g.size)
	g.each(func(t Triple) { out = append(out, t) })
	return out
}

func (g *Graph) each(fn func(Triple)) {
	for _, s := range g.order {
		entry := g.subjects[s]
		for _, p := range entry.predicates {
			for _, o := range entry.objects[p] {
				fn(Triple{S: s, P: p, O: o})
			}
		}
	}
}

// Clone returns an independent copy of the graph.
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	g.each(func(t Triple) { c.Add(t) })
	return c
}

// Equal reports whether both graphs hold the same set of triples, ignoring
// insertion order. Blank nodes are compared by identifier.
func (g *Graph) Equal(other *Graph) bool {
	if g.Len() != other.Len() {
		return false
	}
	equal := true
	g.each(func(t Triple) {
		if equal && !other.Has(t) {
			equal = false
		}
	})
	return equal
}

// HasBlankNodes reports whether any subject or object is a blank node or a
// quoted triple holding one.
func (g *Graph) HasBlankNodes() bool {
	found := false
	g.each(func(t Triple) {
		if mentionsBlank(t.S) || mentionsBlank(t.O) {
			found = true
		}
	})
	return found
}

func mentionsBlank(term Term) bool {
	switch v := term.(type) {
	case BlankNode:
		return true
	case TripleTerm:
		return mentionsBlank(v.S) || mentionsBlank(v.O)
	}
	return false
}

// PruneReport summarizes a pruning pass.
type PruneReport struct {
	// RemovedSubjects counts blank-node subjects dropped with all their triples.
	RemovedSubjects int
	// RemovedObjects counts blank-node objects dropped from IRI subjects.
	RemovedObjects int
	// Unrecognized counts objects of unknown shape that were left in place.
	Unrecognized int
}

// Prune returns a copy of g with every blank node removed: blank subjects are
// dropped with their triples, blank objects are dropped from the remaining
// subjects, and predicates or subjects left empty disappear. Literals are
// never removed whatever their text. Objects whose type is not a known term
// are kept and counted in the report.
func (g *Graph) Prune() (*Graph, PruneReport) {
	var report PruneReport
	out := NewGraph()
	for _, s := range g.order {
		if _, blank := s.(BlankNode); blank {
			report.RemovedSubjects++
			continue
		}
		entry := g.subjects[s]
		for _, p := range entry.predicates {
			for _, o := range entry.objects[p] {
				switch o.(type) {
				case BlankNode:
					report.RemovedObjects++
					continue
				case IRI, Literal:
				default:
					report.Unrecognized++
				}
				out.Add(Triple{S: s, P: p, O: o})
			}
		}
	}
	return out, report
}

// PruneBlankNodes is Prune without the report.
func PruneBlankNodes(g *Graph) *Graph {
	pruned, _ := g.Prune()
	return pruned
}
