// Package owl renders a biopax.Model as an OWL (RDF/XML) document in
// the fixed BioPAX Level 3 exchange grammar.
package owl

// Namespace URIs bound by the root element, and the ontology base
// address. These are part of the wire contract and must not change
// between releases of the same grammar version.
const (
	NamespaceRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceOWL = "http://www.w3.org/2002/07/owl#"
	NamespaceXSD = "http://www.w3.org/2001/XMLSchema#"
	NamespaceBP  = "http://www.biopax.org/release/biopax-level3.owl#"

	// OntologyBase is the canonical address of the BioPAX Level 3
	// ontology, referenced by both xml:base and the owl:imports
	// statement.
	OntologyBase = "http://www.biopax.org/release/biopax-level3.owl"
)

const xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>`
