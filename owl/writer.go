package owl

import (
	"fmt"
	"strings"

	"github.com/ersonp/biopax-core/biopax"
)

// Render serializes a model to RDF/XML. Entities are emitted in model
// order, one element per entity; populated properties follow the
// declared order of the entity's class. Reverse links are derived
// in-memory state and are never emitted. Rendering performs no I/O.
func Render(m *biopax.Model) (string, error) {
	var sb strings.Builder

	sb.WriteString(xmlDeclaration)
	sb.WriteString("\n")
	sb.WriteString(`<rdf:RDF xmlns:rdf="` + NamespaceRDF + `"`)
	sb.WriteString(` xmlns:bp="` + NamespaceBP + `"`)
	sb.WriteString(` xmlns:owl="` + NamespaceOWL + `"`)
	sb.WriteString(` xmlns:xsd="` + NamespaceXSD + `"`)
	sb.WriteString(` xml:base="` + NamespaceBP + `">`)
	sb.WriteString("\n")
	sb.WriteString(`<owl:Ontology rdf:about="">` + "\n")
	sb.WriteString(`  <owl:imports rdf:resource="` + OntologyBase + `"/>` + "\n")
	sb.WriteString(`</owl:Ontology>` + "\n")

	for _, e := range m.Entities() {
		sb.WriteString("\n")
		if err := writeEntity(&sb, e); err != nil {
			return "", err
		}
	}

	sb.WriteString("\n</rdf:RDF>\n")
	return sb.String(), nil
}

// writeEntity emits one entity element. The identity attribute is
// rdf:ID for bare uids and rdf:about for absolute URIs.
func writeEntity(sb *strings.Builder, e *biopax.Entity) error {
	if !biopax.Known(e.Class()) {
		return fmt.Errorf("rendering entity %q: %w",
			e.UID(), &biopax.SchemaError{Class: e.Class(), Reason: "unknown class"})
	}

	tag := "bp:" + string(e.Class())
	if e.IsURI() {
		fmt.Fprintf(sb, "<%s rdf:about=\"%s\">\n", tag, escapeAttr(e.UID()))
	} else {
		fmt.Fprintf(sb, "<%s rdf:ID=\"%s\">\n", tag, escapeAttr(e.UID()))
	}

	for _, prop := range biopax.Properties(e.Class()) {
		if !e.Has(prop.Name) {
			continue
		}
		switch prop.Kind {
		case biopax.KindLiteral, biopax.KindEnum:
			for _, text := range e.Scalars(prop.Name) {
				fmt.Fprintf(sb, "  <bp:%s rdf:datatype=\"%s\">%s</bp:%s>\n",
					prop.Name, datatypeURI(prop.Type), escapeText(text), prop.Name)
			}
		case biopax.KindReference:
			for _, uid := range e.Refs(prop.Name) {
				fmt.Fprintf(sb, "  <bp:%s rdf:resource=\"%s\"/>\n",
					prop.Name, escapeAttr(resourceTarget(uid)))
			}
		}
	}

	fmt.Fprintf(sb, "</%s>\n", tag)
	return nil
}

// resourceTarget encodes a reference target: bare uids become local
// fragment references, absolute URIs pass through unchanged.
func resourceTarget(uid string) string {
	if strings.Contains(uid, "://") {
		return uid
	}
	return "#" + uid
}

func datatypeURI(t biopax.DataType) string {
	return NamespaceXSD + string(t)
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
)

func escapeText(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }
