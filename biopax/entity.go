package biopax

import (
	"fmt"
	"strconv"
	"strings"
)

// Entity is one typed, identified node in the ontology graph. Its uid
// is either a bare token (serialized as a local fragment anchor) or an
// absolute URI (serialized as an rdf:about anchor). Properties are
// validated against the class schema on every write; literals are
// carried as strings and typed only at serialization time.
type Entity struct {
	uid   string
	class Class
	props map[string]*propertyValue
	links []Link
}

// propertyValue holds one populated property slot. Exactly one of the
// two slices is used, depending on the declared kind.
type propertyValue struct {
	scalars []string // literal or enum text, in order
	refs    []string // target uids, in order
}

// Link is a derived reverse link: Source references the entity holding
// the link through the named forward property. Links are computed by
// Model.MaterializeLinks and never serialized.
type Link struct {
	Source   string
	Property string
}

// NewEntity creates an empty entity of the given class. The uid must
// be non-empty; the class must be registered.
func NewEntity(class Class, uid string) (*Entity, error) {
	if !Known(class) {
		return nil, &SchemaError{Class: class, Reason: "unknown class"}
	}
	if uid == "" {
		return nil, &SchemaError{Class: class, Reason: "empty uid"}
	}
	return &Entity{
		uid:   uid,
		class: class,
		props: make(map[string]*propertyValue),
	}, nil
}

// UID returns the entity identifier.
func (e *Entity) UID() string { return e.uid }

// Class returns the entity class.
func (e *Entity) Class() Class { return e.class }

// IsURI reports whether the uid is an absolute URI rather than a bare
// token. This drives the rdf:ID vs rdf:about encoding on export.
func (e *Entity) IsURI() bool { return strings.Contains(e.uid, "://") }

// Set assigns a property value, replacing any previous value. The
// property must be declared for the entity's class and the value must
// match the declared kind and cardinality:
//
//   - literal/enum single: string, int or float64, checked against the
//     declared datatype (a string assigned to an int or float property
//     must parse as one; int is accepted where float is declared)
//   - literal/enum multi: []string, or a bare string (wrapped as a
//     one-element list), each entry checked the same way
//   - reference single: *Entity or a uid string
//   - reference multi: []*Entity or []string, or a bare *Entity/string
//     (wrapped as a one-element list)
//
// Assigning a slice to a single-valued property is a schema violation.
// Assigning nil or an empty slice clears the property.
func (e *Entity) Set(name string, value any) error {
	prop, ok := LookupProperty(e.class, name)
	if !ok {
		return &SchemaError{Class: e.class, Property: name, Reason: "property not declared for class"}
	}

	if value == nil {
		delete(e.props, name)
		return nil
	}

	var pv *propertyValue
	var err error
	switch prop.Kind {
	case KindLiteral, KindEnum:
		pv, err = e.scalarValue(prop, value)
	case KindReference:
		pv, err = e.referenceValue(prop, value)
	}
	if err != nil {
		return err
	}
	if pv == nil {
		delete(e.props, name)
		return nil
	}
	e.props[name] = pv
	return nil
}

func (e *Entity) scalarValue(prop Property, value any) (*propertyValue, error) {
	switch v := value.(type) {
	case string:
		if err := e.checkLiteral(prop, v); err != nil {
			return nil, err
		}
		return &propertyValue{scalars: []string{v}}, nil
	case int:
		if prop.Type == DataTypeString {
			return nil, &SchemaError{Class: e.class, Property: prop.Name,
				Reason: "int value assigned to string-typed property"}
		}
		return &propertyValue{scalars: []string{strconv.Itoa(v)}}, nil
	case float64:
		if prop.Type != DataTypeFloat {
			return nil, &SchemaError{Class: e.class, Property: prop.Name,
				Reason: fmt.Sprintf("float value assigned to %s-typed property", prop.Type)}
		}
		return &propertyValue{scalars: []string{strconv.FormatFloat(v, 'g', -1, 64)}}, nil
	case []string:
		if !prop.Many {
			return nil, &SchemaError{Class: e.class, Property: prop.Name,
				Reason: "list assigned to single-valued property"}
		}
		if len(v) == 0 {
			return nil, nil
		}
		out := make([]string, len(v))
		for i, s := range v {
			if err := e.checkLiteral(prop, s); err != nil {
				return nil, err
			}
			out[i] = s
		}
		return &propertyValue{scalars: out}, nil
	default:
		return nil, &SchemaError{Class: e.class, Property: prop.Name,
			Reason: fmt.Sprintf("unsupported literal value of type %T", value)}
	}
}

// checkLiteral verifies that literal text conforms to the declared
// datatype, so serialization never emits a type-invalid literal.
func (e *Entity) checkLiteral(prop Property, text string) error {
	switch prop.Type {
	case DataTypeInt:
		if _, err := strconv.Atoi(text); err != nil {
			return &SchemaError{Class: e.class, Property: prop.Name,
				Reason: fmt.Sprintf("%q is not a valid int literal", text)}
		}
	case DataTypeFloat:
		if _, err := strconv.ParseFloat(text, 64); err != nil {
			return &SchemaError{Class: e.class, Property: prop.Name,
				Reason: fmt.Sprintf("%q is not a valid float literal", text)}
		}
	}
	return nil
}

func (e *Entity) referenceValue(prop Property, value any) (*propertyValue, error) {
	switch v := value.(type) {
	case *Entity:
		return &propertyValue{refs: []string{v.uid}}, nil
	case string:
		return &propertyValue{refs: []string{v}}, nil
	case []*Entity:
		if !prop.Many {
			return nil, &SchemaError{Class: e.class, Property: prop.Name,
				Reason: "list assigned to single-valued property"}
		}
		if len(v) == 0 {
			return nil, nil
		}
		uids := make([]string, len(v))
		for i, target := range v {
			uids[i] = target.uid
		}
		return &propertyValue{refs: uids}, nil
	case []string:
		if !prop.Many {
			return nil, &SchemaError{Class: e.class, Property: prop.Name,
				Reason: "list assigned to single-valued property"}
		}
		if len(v) == 0 {
			return nil, nil
		}
		uids := make([]string, len(v))
		copy(uids, v)
		return &propertyValue{refs: uids}, nil
	default:
		return nil, &SchemaError{Class: e.class, Property: prop.Name,
			Reason: fmt.Sprintf("unsupported reference value of type %T", value)}
	}
}

// Has reports whether the property is populated.
func (e *Entity) Has(name string) bool {
	_, ok := e.props[name]
	return ok
}

// Scalar returns the value of a populated single-valued literal or
// enum property. For multi-valued properties it returns the first
// entry.
func (e *Entity) Scalar(name string) (string, bool) {
	pv, ok := e.props[name]
	if !ok || len(pv.scalars) == 0 {
		return "", false
	}
	return pv.scalars[0], true
}

// Scalars returns all literal or enum values of a property, in order.
func (e *Entity) Scalars(name string) []string {
	pv, ok := e.props[name]
	if !ok || len(pv.scalars) == 0 {
		return nil
	}
	out := make([]string, len(pv.scalars))
	copy(out, pv.scalars)
	return out
}

// Refs returns the target uids of a reference property, in order.
func (e *Entity) Refs(name string) []string {
	pv, ok := e.props[name]
	if !ok || len(pv.refs) == 0 {
		return nil
	}
	out := make([]string, len(pv.refs))
	copy(out, pv.refs)
	return out
}

// LinksFrom returns the reverse links attached by the last call to
// Model.MaterializeLinks: who references this entity, and through
// which forward property.
func (e *Entity) LinksFrom() []Link {
	out := make([]Link, len(e.links))
	copy(out, e.links)
	return out
}

// ReferencedBy returns the uids of entities that reference this one
// through the named forward property, per the last materialization.
func (e *Entity) ReferencedBy(property string) []string {
	var out []string
	for _, l := range e.links {
		if l.Property == property {
			out = append(out, l.Source)
		}
	}
	return out
}
