package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/biopax-core/internal/domain/services"
	"github.com/ersonp/biopax-core/internal/infrastructure/archive/sqlite"
	"github.com/ersonp/biopax-core/internal/infrastructure/config"
	"github.com/ersonp/biopax-core/owl"
)

// exampleDocument is the exact rendering of the demo model. It pins the
// whole wire grammar at once: envelope, anchors, datatypes, reference
// targets, declared property order and blank-line separation.
const exampleDocument = `<?xml version="1.0" encoding="utf-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:bp="http://www.biopax.org/release/biopax-level3.owl#" xmlns:owl="http://www.w3.org/2002/07/owl#" xmlns:xsd="http://www.w3.org/2001/XMLSchema#" xml:base="http://www.biopax.org/release/biopax-level3.owl#">
<owl:Ontology rdf:about="">
  <owl:imports rdf:resource="http://www.biopax.org/release/biopax-level3.owl"/>
</owl:Ontology>

<bp:Provenance rdf:ID="prov">
  <bp:displayName rdf:datatype="http://www.w3.org/2001/XMLSchema#string">biopax-core example</bp:displayName>
</bp:Provenance>

<bp:ProteinReference rdf:about="http://identifiers.org/uniprot/P27361">
  <bp:displayName rdf:datatype="http://www.w3.org/2001/XMLSchema#string">MAPK3</bp:displayName>
</bp:ProteinReference>

<bp:Protein rdf:ID="p1">
  <bp:displayName rdf:datatype="http://www.w3.org/2001/XMLSchema#string">Erk1</bp:displayName>
  <bp:dataSource rdf:resource="#prov"/>
  <bp:entityReference rdf:resource="http://identifiers.org/uniprot/P27361"/>
</bp:Protein>

<bp:UnificationXref rdf:ID="mvx">
  <bp:db rdf:datatype="http://www.w3.org/2001/XMLSchema#string">MOD</bp:db>
  <bp:id rdf:datatype="http://www.w3.org/2001/XMLSchema#string">MOD:00696</bp:id>
</bp:UnificationXref>

<bp:SequenceModificationVocabulary rdf:ID="mv">
  <bp:xref rdf:resource="#mvx"/>
  <bp:term rdf:datatype="http://www.w3.org/2001/XMLSchema#string">phosphorylated residue</bp:term>
</bp:SequenceModificationVocabulary>

<bp:SequenceSite rdf:ID="site">
  <bp:positionStatus rdf:datatype="http://www.w3.org/2001/XMLSchema#string">EQUAL</bp:positionStatus>
  <bp:sequencePosition rdf:datatype="http://www.w3.org/2001/XMLSchema#int">185</bp:sequencePosition>
</bp:SequenceSite>

<bp:ModificationFeature rdf:ID="mf">
  <bp:featureLocation rdf:resource="#site"/>
  <bp:modificationType rdf:resource="#mv"/>
</bp:ModificationFeature>

<bp:Protein rdf:ID="p2">
  <bp:displayName rdf:datatype="http://www.w3.org/2001/XMLSchema#string">Erk1-P</bp:displayName>
  <bp:dataSource rdf:resource="#prov"/>
  <bp:feature rdf:resource="#mf"/>
  <bp:entityReference rdf:resource="http://identifiers.org/uniprot/P27361"/>
</bp:Protein>

<bp:BiochemicalReaction rdf:ID="br">
  <bp:displayName rdf:datatype="http://www.w3.org/2001/XMLSchema#string">Erk1 phosphorylation</bp:displayName>
  <bp:dataSource rdf:resource="#prov"/>
  <bp:left rdf:resource="#p1"/>
  <bp:right rdf:resource="#p2"/>
  <bp:conversionDirection rdf:datatype="http://www.w3.org/2001/XMLSchema#string">LEFT-TO-RIGHT</bp:conversionDirection>
</bp:BiochemicalReaction>

<bp:Protein rdf:ID="mek">
  <bp:displayName rdf:datatype="http://www.w3.org/2001/XMLSchema#string">Mek1</bp:displayName>
  <bp:dataSource rdf:resource="#prov"/>
</bp:Protein>

<bp:Catalysis rdf:ID="cat">
  <bp:controller rdf:resource="#mek"/>
  <bp:controlled rdf:resource="#br"/>
  <bp:controlType rdf:datatype="http://www.w3.org/2001/XMLSchema#string">ACTIVATION</bp:controlType>
</bp:Catalysis>

<bp:Degradation rdf:ID="deg">
  <bp:dataSource rdf:resource="#prov"/>
  <bp:left rdf:resource="#p2"/>
</bp:Degradation>

</rdf:RDF>
`

func TestPipeline_RenderExample(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	model, err := services.BuildExample()
	require.NoError(t, err)

	doc, err := owl.Render(model)
	require.NoError(t, err)

	assert.Equal(t, exampleDocument, doc)

	// Rendering again after another materialization pass must not drift.
	model.MaterializeLinks()
	again, err := owl.Render(model)
	require.NoError(t, err)
	assert.Equal(t, doc, again)
}

func TestPipeline_ArchiveRoundtrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "archive.db")

	repo, err := sqlite.NewRepository(config.ArchiveConfig{Path: dbPath})
	require.NoError(t, err)
	defer repo.Close()
	require.NoError(t, repo.EnsureSchema(ctx))

	_, err = os.Stat(dbPath)
	require.NoError(t, err, "database file should exist")

	service := services.NewArchiveService(repo)

	model, err := services.BuildExample()
	require.NoError(t, err)

	record, err := service.Save(ctx, "erk-demo", model)
	require.NoError(t, err)
	assert.Equal(t, 12, record.EntityCount)

	t.Run("stored document matches the rendering", func(t *testing.T) {
		found, err := service.Get(ctx, "erk-demo")
		require.NoError(t, err)
		assert.Equal(t, exampleDocument, found.Document)
	})

	t.Run("entity index preserves model order", func(t *testing.T) {
		rows, err := service.Entities(ctx, "erk-demo")
		require.NoError(t, err)
		require.Len(t, rows, 12)
		assert.Equal(t, "prov", rows[0].UID)
		assert.Equal(t, "Provenance", rows[0].Class)
		assert.Equal(t, "deg", rows[11].UID)
	})

	t.Run("lookup by entity uid", func(t *testing.T) {
		records, err := service.FindByEntity(ctx, "http://identifiers.org/uniprot/P27361")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, record.ID, records[0].ID)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		_, err := service.Save(ctx, "erk-demo", model)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "already archived"))
	})

	t.Run("delete removes the model", func(t *testing.T) {
		require.NoError(t, service.Delete(ctx, "erk-demo"))
		records, err := service.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
