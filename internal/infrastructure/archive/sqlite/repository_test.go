package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/biopax-core/internal/domain/entities"
	"github.com/ersonp/biopax-core/internal/infrastructure/config"
)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(config.ArchiveConfig{Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	err = repo.EnsureSchema(context.Background())
	require.NoError(t, err)

	return repo
}

func testRecord(id, name string, createdAt time.Time) *entities.ModelRecord {
	return &entities.ModelRecord{
		ID:          id,
		Name:        name,
		Document:    "<rdf:RDF/>",
		EntityCount: 2,
		CreatedAt:   createdAt,
	}
}

func testRows(modelID string) []entities.EntityRow {
	return []entities.EntityRow{
		{ModelID: modelID, Position: 0, UID: "p1", Class: "Protein"},
		{ModelID: modelID, Position: 1, UID: "br", Class: "BiochemicalReaction"},
	}
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(config.ArchiveConfig{Path: ":memory:"})
		require.NoError(t, err)
		defer repo.Close()
		assert.NotNil(t, repo)
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository(config.ArchiveConfig{Path: ""})
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema(t *testing.T) {
	repo := setupTestRepo(t)

	// Verify tables exist
	tables := []string{"models", "model_entities"}
	for _, table := range tables {
		var count int
		err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s should exist", table)
	}
}

func TestRepository_EnsureSchema_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)

	// Should not error when called again
	err := repo.EnsureSchema(context.Background())
	require.NoError(t, err)
}

func TestRepository_SaveModel(t *testing.T) {
	ctx := context.Background()

	t.Run("roundtrip", func(t *testing.T) {
		repo := setupTestRepo(t)
		record := testRecord("m1", "erk", time.Now().UTC().Truncate(time.Second))

		err := repo.SaveModel(ctx, record, testRows("m1"))
		require.NoError(t, err)

		found, err := repo.FindModelByName(ctx, "erk")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "m1", found.ID)
		assert.Equal(t, "<rdf:RDF/>", found.Document)
		assert.Equal(t, 2, found.EntityCount)
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		repo := setupTestRepo(t)
		require.NoError(t, repo.SaveModel(ctx, testRecord("m1", "erk", time.Now()), nil))

		err := repo.SaveModel(ctx, testRecord("m2", "erk", time.Now()), nil)
		require.Error(t, err)
	})

	t.Run("entity rows land in position order", func(t *testing.T) {
		repo := setupTestRepo(t)
		require.NoError(t, repo.SaveModel(ctx, testRecord("m1", "erk", time.Now()), testRows("m1")))

		rows, err := repo.ListEntities(ctx, "m1")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "p1", rows[0].UID)
		assert.Equal(t, "br", rows[1].UID)
		assert.Equal(t, "BiochemicalReaction", rows[1].Class)
	})
}

func TestRepository_FindModelByName_NotFound(t *testing.T) {
	repo := setupTestRepo(t)

	found, err := repo.FindModelByName(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_ListModels(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	older := time.Now().Add(-time.Hour)
	require.NoError(t, repo.SaveModel(ctx, testRecord("m2", "second", time.Now()), nil))
	require.NoError(t, repo.SaveModel(ctx, testRecord("m1", "first", older), nil))

	records, err := repo.ListModels(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "first", records[0].Name)
	assert.Equal(t, "second", records[1].Name)
	// Listing skips the document payload
	assert.Empty(t, records[0].Document)
}

func TestRepository_DeleteModel(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)
	require.NoError(t, repo.SaveModel(ctx, testRecord("m1", "erk", time.Now()), testRows("m1")))

	err := repo.DeleteModel(ctx, "m1")
	require.NoError(t, err)

	found, err := repo.FindModelByName(ctx, "erk")
	require.NoError(t, err)
	assert.Nil(t, found)

	// Entity index rows cascade
	rows, err := repo.ListEntities(ctx, "m1")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRepository_FindModelsByEntity(t *testing.T) {
	ctx := context.Background()
	repo := setupTestRepo(t)

	require.NoError(t, repo.SaveModel(ctx, testRecord("m1", "erk", time.Now().Add(-time.Hour)), testRows("m1")))
	require.NoError(t, repo.SaveModel(ctx, testRecord("m2", "other", time.Now()), []entities.EntityRow{
		{ModelID: "m2", Position: 0, UID: "p1", Class: "Protein"},
	}))

	t.Run("shared entity matches both models", func(t *testing.T) {
		records, err := repo.FindModelsByEntity(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "erk", records[0].Name)
		assert.Equal(t, "other", records[1].Name)
	})

	t.Run("entity in one model", func(t *testing.T) {
		records, err := repo.FindModelsByEntity(ctx, "br")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "m1", records[0].ID)
	})

	t.Run("unknown entity", func(t *testing.T) {
		records, err := repo.FindModelsByEntity(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
