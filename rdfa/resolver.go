package rdfa

import (
	"log/slog"
	"strings"

	"github.com/geoknoesis/rdfa-go/rdf"
)

// resolver threads Scope through an enriched tree and records the triples
// each node asserts. One resolver serves one extraction call.
type resolver struct {
	base   string
	blanks *rdf.BlankNodeGenerator
	logger *slog.Logger
	diags  []Diagnostic
}

func newResolver(opts Options) *resolver {
	return &resolver{
		base:   opts.BaseIRI,
		blanks: opts.blankNodeGenerator(),
		logger: opts.Logger,
	}
}

func (r *resolver) diagnose(en *EnrichedNode, code DiagnosticCode, attr, value, msg string) {
	d := Diagnostic{Code: code, Message: msg, Attr: attr, Value: value, Offset: en.start}
	r.diags = append(r.diags, d)
	r.logger.Warn("rdfa diagnostic",
		"code", string(code),
		"attr", attr,
		"value", value,
		"offset", en.start,
		"message", msg,
	)
}

// nodeAttrs holds the RDFa attributes of one element.
type nodeAttrs struct {
	about, resource, typeOf, property, datatype, content, rel, rev string

	hasAbout, hasResource, hasTypeOf, hasProperty, hasDatatype, hasContent bool
	resourceAttr                                                          string
}

func readAttrs(a attrs) nodeAttrs {
	var na nodeAttrs
	na.about, na.hasAbout = a.get("about")
	na.resourceAttr, na.resource, na.hasResource = a.first("resource", "href", "src")
	na.typeOf, na.hasTypeOf = a.get("typeof")
	na.property, na.hasProperty = a.get("property")
	na.datatype, na.hasDatatype = a.get("datatype")
	na.content, na.hasContent = a.get("content")
	na.rel, _ = a.get("rel")
	na.rev, _ = a.get("rev")
	return na
}

// resolve computes the scope handed to en's children and returns en's own
// triples followed by each child's, in document order.
func (r *resolver) resolve(en *EnrichedNode, in Scope) (Scope, []rdf.Triple) {
	a := attributesOf(en.node)
	sc := r.enterScope(en, a, in)
	sc.Pending = nil

	en.prefixes = sc.Prefixes
	en.vocab = sc.Vocab
	en.lang = sc.Lang
	en.subject = sc.Subject

	var own []rdf.Triple
	if len(a) > 0 {
		sc, own = r.statements(en, a, in, sc)
		en.subject = sc.Subject
	}
	en.triples = own

	all := append([]rdf.Triple(nil), own...)
	for _, c := range en.children {
		_, sub := r.resolve(c, sc)
		all = append(all, sub...)
	}
	return sc, all
}

// enterScope applies the node's prefix, vocab and language declarations.
func (r *resolver) enterScope(en *EnrichedNode, a attrs, in Scope) Scope {
	sc := in
	var declared [][2]string
	for _, attr := range a {
		key := strings.ToLower(attr.Key)
		if name, ok := strings.CutPrefix(key, "xmlns:"); ok && name != "" {
			declared = append(declared, [2]string{name, attr.Val})
		}
	}
	if v, ok := a.get("prefix"); ok {
		pairs, bad := parsePrefixAttr(v)
		for _, b := range bad {
			r.diagnose(en, DiagInvalidPrefixDecl, "prefix", b, "expected \"name: iri\"")
		}
		declared = append(declared, pairs...)
	}
	if len(declared) > 0 {
		merged := make(map[string]string, len(in.Prefixes)+len(declared))
		for k, v := range in.Prefixes {
			merged[k] = v
		}
		for _, d := range declared {
			if d[0] == "_" {
				r.diagnose(en, DiagInvalidPrefixDecl, "prefix", d[0], "the blank node prefix cannot be redeclared")
				continue
			}
			merged[d[0]] = d[1]
		}
		sc.Prefixes = merged
	}
	if v, ok := a.get("vocab"); ok {
		if v = strings.TrimSpace(v); v == "" {
			sc.Vocab = ""
		} else {
			sc.Vocab = rdf.ResolveIRI(r.base, v)
		}
	}
	if v, ok := a.get("xml:lang"); ok {
		sc.Lang = v
	} else if v, ok := a.get("lang"); ok {
		sc.Lang = v
	}
	return sc
}

// statements applies the subject rules and emits the node's own triples.
// It returns the scope for the children.
func (r *resolver) statements(en *EnrichedNode, a attrs, in, sc Scope) (Scope, []rdf.Triple) {
	na := readAttrs(a)

	var about, res rdf.Resource
	if na.hasAbout {
		about = r.resource(en, sc, "about", na.about)
	}
	if na.hasResource {
		res = r.resource(en, sc, na.resourceAttr, na.resource)
	}
	rels := r.terms(en, sc, "rel", na.rel)
	revs := r.terms(en, sc, "rev", na.rev)
	hasRel := len(strings.Fields(na.rel))+len(strings.Fields(na.rev)) > 0

	subject := in.Subject
	opened := false
	switch {
	case about != nil:
		subject, opened = about, true
	case !na.hasProperty && !hasRel && res != nil:
		subject, opened = res, true
	case na.hasTypeOf && !na.hasProperty && !hasRel:
		subject, opened = r.blanks.Next(), true
	}

	var typed rdf.Resource
	if na.hasTypeOf {
		switch {
		case about != nil || (!na.hasProperty && !hasRel):
			typed = subject
		case res != nil:
			typed = res
		default:
			typed = r.blanks.Next()
		}
	}
	en.opens = opened || typed != nil

	// A pending relation takes the resource this node introduces: its new
	// subject, or the typed resource it mints without about.
	var own []rdf.Triple
	if in.Pending != nil && in.Pending.Subject != nil {
		switch {
		case opened:
			own = append(own, in.Pending.complete(subject)...)
		case typed != nil && about == nil:
			own = append(own, in.Pending.complete(typed)...)
		}
	}

	types := r.terms(en, sc, "typeof", na.typeOf)
	en.types = types
	for _, t := range types {
		if typed == nil {
			break
		}
		own = append(own, rdf.Triple{S: typed, P: rdf.RDFType, O: t})
	}

	child := sc
	child.Subject = subject
	if typed != nil && about == nil && (na.hasProperty || hasRel) {
		child.Subject = typed
	}

	if hasRel {
		var object rdf.Resource
		switch {
		case res != nil:
			object = res
		case typed != nil && about == nil:
			object = typed
		}
		if subject == nil {
			r.diagnose(en, DiagNoSubject, "rel", na.rel+na.rev, "no subject in scope")
		} else if object != nil {
			rel := Relation{Subject: subject, Forward: rels, Reverse: revs}
			own = append(own, rel.complete(object)...)
			child.Subject = object
		} else if len(rels)+len(revs) > 0 {
			child.Pending = &Relation{Subject: subject, Forward: rels, Reverse: revs}
		}
	}

	if na.hasProperty {
		own = append(own, r.propertyValues(en, sc, na, subject, res, typed, about != nil, hasRel)...)
	}
	return child, own
}

func (r *resolver) propertyValues(en *EnrichedNode, sc Scope, na nodeAttrs, subject, res, typed rdf.Resource, hasAbout, hasRel bool) []rdf.Triple {
	props := r.terms(en, sc, "property", na.property)
	if len(props) == 0 {
		return nil
	}
	if subject == nil {
		r.diagnose(en, DiagNoSubject, "property", na.property, "no subject in scope")
		return nil
	}

	var value rdf.Term
	switch {
	case na.hasContent:
		lit, ok := r.literal(en, sc, na, na.content)
		if !ok {
			return nil
		}
		value = lit
	case res != nil && !hasRel && !na.hasDatatype:
		value = res
	case typed != nil && !hasAbout && !hasRel:
		value = typed
	default:
		lit, ok := r.literal(en, sc, na, en.TextContent())
		if !ok {
			return nil
		}
		value = lit
	}

	out := make([]rdf.Triple, 0, len(props))
	for _, p := range props {
		out = append(out, rdf.Triple{S: subject, P: p, O: value})
	}
	return out
}

// literal builds a property literal. An unresolvable datatype drops it.
func (r *resolver) literal(en *EnrichedNode, sc Scope, na nodeAttrs, lexical string) (rdf.Literal, bool) {
	dt := strings.TrimSpace(na.datatype)
	if dt == "" {
		return rdf.Literal{Lexical: lexical, Lang: sc.Lang}, true
	}
	iri, ok := r.term(en, sc, "datatype", dt)
	if !ok {
		return rdf.Literal{}, false
	}
	if (iri == rdf.RDFHTML || iri == rdf.RDFXMLLiteral) && !na.hasContent {
		if markup, ok := innerHTML(en.node); ok {
			lexical = markup
		}
	}
	return rdf.Literal{Lexical: lexical, Datatype: iri}, true
}

// terms resolves a whitespace-separated list of TERMorCURIEorAbsIRI values,
// dropping the ones that do not resolve.
func (r *resolver) terms(en *EnrichedNode, sc Scope, attr, value string) []rdf.IRI {
	var out []rdf.IRI
	for _, v := range strings.Fields(value) {
		if iri, ok := r.term(en, sc, attr, v); ok {
			out = append(out, iri)
		}
	}
	return out
}

// term resolves one value: absolute IRI, then CURIE, then vocabulary term,
// then a reference relative to the base.
func (r *resolver) term(en *EnrichedNode, sc Scope, attr, value string) (rdf.IRI, bool) {
	if rdf.IsAbsoluteIRI(value) {
		return rdf.IRI{Value: value}, true
	}
	if prefix, local, ok := strings.Cut(value, ":"); ok {
		switch prefix {
		case "_":
			r.diagnose(en, DiagInvalidTerm, attr, value, "blank nodes cannot be used here")
			return rdf.IRI{}, false
		case "":
			return rdf.IRI{Value: rdf.XHTMLVocabulary + local}, true
		}
		if ns, ok := sc.Prefixes[strings.ToLower(prefix)]; ok {
			return rdf.IRI{Value: ns + local}, true
		}
		r.diagnose(en, DiagUnknownPrefix, attr, value, "unknown prefix "+prefix)
		return rdf.IRI{}, false
	}
	if sc.Vocab != "" {
		return rdf.IRI{Value: sc.Vocab + value}, true
	}
	return rdf.IRI{Value: rdf.ResolveIRI(r.base, value)}, true
}

// resource resolves an about/resource/href/src value. Safe CURIEs must
// resolve; plain values with an unknown prefix are taken as IRIs.
func (r *resolver) resource(en *EnrichedNode, sc Scope, attr, value string) rdf.Resource {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		inner := strings.TrimSpace(value[1 : len(value)-1])
		if inner == "" {
			return nil
		}
		if label, ok := strings.CutPrefix(inner, "_:"); ok {
			return r.blanks.Named(label)
		}
		iri, ok := r.curie(sc, inner)
		if !ok {
			r.diagnose(en, DiagUnknownPrefix, attr, value, "safe CURIE does not resolve")
			return nil
		}
		return iri
	}
	if label, ok := strings.CutPrefix(value, "_:"); ok {
		return r.blanks.Named(label)
	}
	if rdf.IsAbsoluteIRI(value) {
		return rdf.IRI{Value: value}
	}
	if iri, ok := r.curie(sc, value); ok {
		return iri
	}
	return rdf.IRI{Value: rdf.ResolveIRI(r.base, value)}
}

func (r *resolver) curie(sc Scope, value string) (rdf.IRI, bool) {
	prefix, local, ok := strings.Cut(value, ":")
	if !ok {
		return rdf.IRI{}, false
	}
	if prefix == "" {
		return rdf.IRI{Value: rdf.XHTMLVocabulary + local}, true
	}
	ns, ok := sc.Prefixes[strings.ToLower(prefix)]
	if !ok {
		return rdf.IRI{}, false
	}
	return rdf.IRI{Value: ns + local}, true
}
