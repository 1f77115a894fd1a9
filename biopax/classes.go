// Package biopax implements an in-memory object model for BioPAX
// Level 3 pathway data: a static class schema, validated entities,
// a uid-unique model container and derived reverse links.
package biopax

// Class identifies a BioPAX Level 3 class. The set of classes is
// closed; it is fixed by the ontology being modeled.
type Class string

// Physical entities and their pools.
const (
	ClassPhysicalEntity Class = "PhysicalEntity"
	ClassProtein        Class = "Protein"
	ClassRna            Class = "Rna"
	ClassDna            Class = "Dna"
	ClassSmallMolecule  Class = "SmallMolecule"
	ClassComplex        Class = "Complex"
	ClassGene           Class = "Gene"
	ClassPathway        Class = "Pathway"
)

// Entity references (sequence- and chemical-level identity).
const (
	ClassProteinReference       Class = "ProteinReference"
	ClassRnaReference           Class = "RnaReference"
	ClassDnaReference           Class = "DnaReference"
	ClassSmallMoleculeReference Class = "SmallMoleculeReference"
)

// Features and sequence locations.
const (
	ClassModificationFeature Class = "ModificationFeature"
	ClassFragmentFeature     Class = "FragmentFeature"
	ClassSequenceSite        Class = "SequenceSite"
	ClassSequenceInterval    Class = "SequenceInterval"
)

// Controlled vocabularies.
const (
	ClassSequenceModificationVocabulary Class = "SequenceModificationVocabulary"
	ClassCellularLocationVocabulary     Class = "CellularLocationVocabulary"
	ClassRelationshipTypeVocabulary     Class = "RelationshipTypeVocabulary"
)

// Interactions.
const (
	ClassBiochemicalReaction              Class = "BiochemicalReaction"
	ClassDegradation                      Class = "Degradation"
	ClassTransport                        Class = "Transport"
	ClassTransportWithBiochemicalReaction Class = "TransportWithBiochemicalReaction"
	ClassComplexAssembly                  Class = "ComplexAssembly"
	ClassTemplateReaction                 Class = "TemplateReaction"
	ClassControl                          Class = "Control"
	ClassCatalysis                        Class = "Catalysis"
	ClassModulation                       Class = "Modulation"
	ClassTemplateReactionRegulation       Class = "TemplateReactionRegulation"
)

// Utility classes.
const (
	ClassProvenance       Class = "Provenance"
	ClassBioSource        Class = "BioSource"
	ClassStoichiometry    Class = "Stoichiometry"
	ClassEvidence         Class = "Evidence"
	ClassUnificationXref  Class = "UnificationXref"
	ClassRelationshipXref Class = "RelationshipXref"
	ClassPublicationXref  Class = "PublicationXref"
)

// Values for the positionStatus property of SequenceSite.
const (
	PositionStatusEqual       = "EQUAL"
	PositionStatusLessThan    = "LESS-THAN"
	PositionStatusGreaterThan = "GREATER-THAN"
)

// Values for the templateDirection property of TemplateReaction.
const (
	TemplateDirectionForward = "FORWARD"
	TemplateDirectionReverse = "REVERSE"
)

// Values for the conversionDirection property of conversions.
const (
	ConversionDirectionLeftToRight = "LEFT-TO-RIGHT"
	ConversionDirectionRightToLeft = "RIGHT-TO-LEFT"
	ConversionDirectionReversible  = "REVERSIBLE"
)

// Values for the controlType property of Control and its subclasses.
const (
	ControlTypeActivation = "ACTIVATION"
	ControlTypeInhibition = "INHIBITION"
)

// Values for the catalysisDirection property of Catalysis.
const (
	CatalysisDirectionLeftToRight = "LEFT-TO-RIGHT"
	CatalysisDirectionRightToLeft = "RIGHT-TO-LEFT"
)
