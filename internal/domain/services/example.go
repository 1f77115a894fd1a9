package services

import (
	"fmt"

	"github.com/ersonp/biopax-core/biopax"
)

// BuildExample constructs the Erk1 phosphorylation model used by the
// demo command and the integration suite: a protein pool, its
// phosphorylated form carrying a modification feature, the reaction
// converting one into the other, the kinase catalyzing it, and the
// degradation of the product.
func BuildExample() (*biopax.Model, error) {
	prov, err := build(biopax.ClassProvenance, "prov", props{
		"displayName": "biopax-core example",
	})
	if err != nil {
		return nil, err
	}

	// Entity reference identified by an absolute URI; it serializes as
	// an rdf:about anchor rather than a local fragment.
	pr, err := build(biopax.ClassProteinReference, "http://identifiers.org/uniprot/P27361", props{
		"displayName": "MAPK3",
	})
	if err != nil {
		return nil, err
	}

	p1, err := build(biopax.ClassProtein, "p1", props{
		"displayName":     "Erk1",
		"entityReference": pr,
		"dataSource":      prov,
	})
	if err != nil {
		return nil, err
	}

	mvx, err := build(biopax.ClassUnificationXref, "mvx", props{
		"db": "MOD",
		"id": "MOD:00696",
	})
	if err != nil {
		return nil, err
	}

	mv, err := build(biopax.ClassSequenceModificationVocabulary, "mv", props{
		"term": []string{"phosphorylated residue"},
		"xref": mvx,
	})
	if err != nil {
		return nil, err
	}

	site, err := build(biopax.ClassSequenceSite, "site", props{
		"positionStatus":   biopax.PositionStatusEqual,
		"sequencePosition": 185,
	})
	if err != nil {
		return nil, err
	}

	mf, err := build(biopax.ClassModificationFeature, "mf", props{
		"modificationType": mv,
		"featureLocation":  site,
	})
	if err != nil {
		return nil, err
	}

	p2, err := build(biopax.ClassProtein, "p2", props{
		"displayName":     "Erk1-P",
		"entityReference": pr,
		"feature":         []*biopax.Entity{mf},
		"dataSource":      prov,
	})
	if err != nil {
		return nil, err
	}

	br, err := build(biopax.ClassBiochemicalReaction, "br", props{
		"displayName":         "Erk1 phosphorylation",
		"left":                []*biopax.Entity{p1},
		"right":               []*biopax.Entity{p2},
		"conversionDirection": biopax.ConversionDirectionLeftToRight,
		"dataSource":          prov,
	})
	if err != nil {
		return nil, err
	}

	mek, err := build(biopax.ClassProtein, "mek", props{
		"displayName": "Mek1",
		"dataSource":  prov,
	})
	if err != nil {
		return nil, err
	}

	cat, err := build(biopax.ClassCatalysis, "cat", props{
		"controller":  []*biopax.Entity{mek},
		"controlled":  br,
		"controlType": biopax.ControlTypeActivation,
	})
	if err != nil {
		return nil, err
	}

	// The empty right list stays unset and is omitted on export.
	deg, err := build(biopax.ClassDegradation, "deg", props{
		"left":       []*biopax.Entity{p2},
		"right":      []*biopax.Entity{},
		"dataSource": prov,
	})
	if err != nil {
		return nil, err
	}

	model, err := biopax.NewModel(prov, pr, p1, mvx, mv, site, mf, p2, br, mek, cat, deg)
	if err != nil {
		return nil, fmt.Errorf("assembling example model: %w", err)
	}
	model.MaterializeLinks()
	return model, nil
}

type props map[string]any

func build(class biopax.Class, uid string, values props) (*biopax.Entity, error) {
	e, err := biopax.NewEntity(class, uid)
	if err != nil {
		return nil, fmt.Errorf("creating %s %q: %w", class, uid, err)
	}
	for name, value := range values {
		if err := e.Set(name, value); err != nil {
			return nil, fmt.Errorf("populating %s %q: %w", class, uid, err)
		}
	}
	return e, nil
}
