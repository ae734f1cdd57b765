package rdf

// Namespace IRIs used by the extractor and serializers.
const (
	RDFNamespace     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace    = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNamespace     = "http://www.w3.org/2001/XMLSchema#"
	OWLNamespace     = "http://www.w3.org/2002/07/owl#"
	XHTMLVocabulary  = "http://www.w3.org/1999/xhtml/vocab#"
	SchemaNamespace  = "http://schema.org/"
	FOAFNamespace    = "http://xmlns.com/foaf/0.1/"
	DCNamespace      = "http://purl.org/dc/elements/1.1/"
	DCTermsNamespace = "http://purl.org/dc/terms/"
	SKOSNamespace    = "http://www.w3.org/2004/02/skos/core#"
	PROVNamespace    = "http://www.w3.org/ns/prov#"
)

var (
	// RDFType is rdf:type.
	RDFType = IRI{Value: RDFNamespace + "type"}
	// RDFXMLLiteral is rdf:XMLLiteral.
	RDFXMLLiteral = IRI{Value: RDFNamespace + "XMLLiteral"}
	// RDFHTML is rdf:HTML.
	RDFHTML = IRI{Value: RDFNamespace + "HTML"}
	// XSDString is xsd:string.
	XSDString = IRI{Value: XSDNamespace + "string"}
)

// InitialContext returns the RDFa 1.1 core prefix mappings. The map is a
// fresh copy on each call.
func InitialContext() map[string]string {
	return map[string]string{
		"rdf":     RDFNamespace,
		"rdfs":    RDFSNamespace,
		"xsd":     XSDNamespace,
		"owl":     OWLNamespace,
		"xhv":     XHTMLVocabulary,
		"schema":  SchemaNamespace,
		"foaf":    FOAFNamespace,
		"dc":      DCNamespace,
		"dcterms": DCTermsNamespace,
		"skos":    SKOSNamespace,
		"prov":    PROVNamespace,
	}
}
