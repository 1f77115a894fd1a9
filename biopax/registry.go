package biopax

import (
	"fmt"
	"sort"
)

// Kind says how a property value is interpreted.
type Kind int

const (
	// KindLiteral is a scalar literal typed by the property's DataType.
	KindLiteral Kind = iota
	// KindEnum is a string drawn from a controlled vocabulary. The core
	// does not validate values against the vocabulary; it only records
	// that the property is enumerated. Enums serialize like strings.
	KindEnum
	// KindReference points to another entity by uid.
	KindReference
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindEnum:
		return "enum"
	case KindReference:
		return "reference"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DataType is the literal datatype of a scalar property.
type DataType string

const (
	DataTypeString DataType = "string"
	DataTypeInt    DataType = "int"
	DataTypeFloat  DataType = "float"
)

// Property declares one property of a class: its serialized (camelCase)
// name, how its value is interpreted and whether it holds an ordered
// list rather than a single value.
type Property struct {
	Name string
	Kind Kind
	Type DataType
	Many bool
}

func lit(name string, t DataType) Property {
	return Property{Name: name, Kind: KindLiteral, Type: t}
}

func lits(name string, t DataType) Property {
	return Property{Name: name, Kind: KindLiteral, Type: t, Many: true}
}

func enum(name string) Property {
	return Property{Name: name, Kind: KindEnum, Type: DataTypeString}
}

func ref(name string) Property {
	return Property{Name: name, Kind: KindReference}
}

func refs(name string) Property {
	return Property{Name: name, Kind: KindReference, Many: true}
}

// Shared property sets. Classes with overlapping shapes reference these
// slices instead of repeating declarations; the registry concatenates
// them in a fixed order so serialization order is deterministic.
var (
	propsBase = []Property{
		lits("comment", DataTypeString),
	}

	propsXref = []Property{
		refs("xref"),
	}

	propsNamed = []Property{
		lit("displayName", DataTypeString),
		lit("standardName", DataTypeString),
		lits("name", DataTypeString),
	}

	propsEntity = concat(propsBase, propsXref, propsNamed, []Property{
		lits("availability", DataTypeString),
		ref("dataSource"),
		refs("evidence"),
	})

	propsPhysicalEntity = concat(propsEntity, []Property{
		ref("cellularLocation"),
		refs("feature"),
		refs("notFeature"),
		refs("memberPhysicalEntity"),
	})

	propsSimplePhysicalEntity = concat(propsPhysicalEntity, []Property{
		ref("entityReference"),
	})

	propsEntityReference = concat(propsBase, propsXref, propsNamed, []Property{
		refs("entityFeature"),
		refs("memberEntityReference"),
	})

	propsSequenceEntityReference = concat(propsEntityReference, []Property{
		ref("organism"),
		lit("sequence", DataTypeString),
	})

	propsEntityFeature = concat(propsBase, []Property{
		refs("evidence"),
		ref("featureLocation"),
		ref("featureLocationType"),
		refs("memberFeature"),
	})

	propsControlledVocabulary = concat(propsBase, propsXref, []Property{
		lits("term", DataTypeString),
	})

	propsInteraction = concat(propsEntity, []Property{
		refs("participant"),
		refs("interactionType"),
	})

	propsConversion = concat(propsInteraction, []Property{
		refs("left"),
		refs("right"),
		refs("participantStoichiometry"),
		enum("conversionDirection"),
	})

	propsBiochemicalReaction = concat(propsConversion, []Property{
		lits("eCNumber", DataTypeString),
	})

	propsControl = concat(propsInteraction, []Property{
		refs("controller"),
		ref("controlled"),
		enum("controlType"),
	})

	propsXrefBase = concat(propsBase, []Property{
		lit("db", DataTypeString),
		lit("dbVersion", DataTypeString),
		lit("id", DataTypeString),
		lit("idVersion", DataTypeString),
	})
)

// registry maps every class to its declared properties, in serialization
// order. Populated once at init; never mutated afterwards.
var registry = map[Class][]Property{
	ClassPhysicalEntity: propsPhysicalEntity,
	ClassProtein:        propsSimplePhysicalEntity,
	ClassRna:            propsSimplePhysicalEntity,
	ClassDna:            propsSimplePhysicalEntity,
	ClassSmallMolecule:  propsSimplePhysicalEntity,
	ClassComplex: concat(propsPhysicalEntity, []Property{
		refs("component"),
		refs("componentStoichiometry"),
	}),
	ClassGene: concat(propsEntity, []Property{
		ref("organism"),
	}),
	ClassPathway: concat(propsEntity, []Property{
		refs("pathwayComponent"),
		refs("pathwayOrder"),
		ref("organism"),
	}),

	ClassProteinReference: propsSequenceEntityReference,
	ClassRnaReference:     propsSequenceEntityReference,
	ClassDnaReference:     propsSequenceEntityReference,
	ClassSmallMoleculeReference: concat(propsEntityReference, []Property{
		lit("chemicalFormula", DataTypeString),
		lit("molecularWeight", DataTypeFloat),
	}),

	ClassModificationFeature: concat(propsEntityFeature, []Property{
		ref("modificationType"),
	}),
	ClassFragmentFeature: propsEntityFeature,
	ClassSequenceSite: concat(propsBase, []Property{
		enum("positionStatus"),
		lit("sequencePosition", DataTypeInt),
	}),
	ClassSequenceInterval: concat(propsBase, []Property{
		ref("sequenceIntervalBegin"),
		ref("sequenceIntervalEnd"),
	}),

	ClassSequenceModificationVocabulary: propsControlledVocabulary,
	ClassCellularLocationVocabulary:     propsControlledVocabulary,
	ClassRelationshipTypeVocabulary:     propsControlledVocabulary,

	ClassBiochemicalReaction:              propsBiochemicalReaction,
	ClassDegradation:                      propsConversion,
	ClassTransport:                        propsConversion,
	ClassTransportWithBiochemicalReaction: propsBiochemicalReaction,
	ClassComplexAssembly:                  propsConversion,
	ClassTemplateReaction: concat(propsInteraction, []Property{
		ref("template"),
		refs("product"),
		enum("templateDirection"),
	}),
	ClassControl:    propsControl,
	ClassModulation: propsControl,
	ClassCatalysis: concat(propsControl, []Property{
		enum("catalysisDirection"),
		refs("cofactor"),
	}),
	ClassTemplateReactionRegulation: propsControl,

	ClassProvenance: concat(propsBase, propsXref, propsNamed),
	ClassBioSource: concat(propsBase, propsXref, propsNamed, []Property{
		ref("tissue"),
		ref("cellType"),
	}),
	ClassStoichiometry: concat(propsBase, []Property{
		ref("physicalEntity"),
		lit("stoichiometricCoefficient", DataTypeFloat),
	}),
	ClassEvidence: concat(propsBase, propsXref, []Property{
		refs("evidenceCode"),
	}),

	ClassUnificationXref: propsXrefBase,
	ClassRelationshipXref: concat(propsXrefBase, []Property{
		ref("relationshipType"),
	}),
	ClassPublicationXref: concat(propsXrefBase, []Property{
		lit("title", DataTypeString),
		lits("url", DataTypeString),
		lits("source", DataTypeString),
		lits("author", DataTypeString),
		lit("year", DataTypeInt),
	}),
}

func concat(sets ...[]Property) []Property {
	var out []Property
	for _, s := range sets {
		out = append(out, s...)
	}
	return out
}

// Properties returns the declared properties of a class in serialization
// order. The class set is fixed, so asking for an unknown class is a
// programming error and panics rather than returning an error.
func Properties(class Class) []Property {
	props, ok := registry[class]
	if !ok {
		panic(fmt.Sprintf("biopax: unknown class %q", class))
	}
	out := make([]Property, len(props))
	copy(out, props)
	return out
}

// LookupProperty returns the declaration of one property of a class, or
// false if the class does not declare it. Unknown classes panic, as in
// Properties.
func LookupProperty(class Class, name string) (Property, bool) {
	props, ok := registry[class]
	if !ok {
		panic(fmt.Sprintf("biopax: unknown class %q", class))
	}
	for _, p := range props {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Known reports whether class is part of the registry.
func Known(class Class) bool {
	_, ok := registry[class]
	return ok
}

// Classes returns all registered classes in lexical order.
func Classes() []Class {
	out := make([]Class, 0, len(registry))
	for c := range registry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
