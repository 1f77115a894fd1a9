// Package sqlite provides a SQLite implementation of the Archive interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/biopax-core/internal/domain/entities"
	"github.com/ersonp/biopax-core/internal/infrastructure/config"
)

// Repository implements ports.Archive using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.ArchiveConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("archive path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Archived models (one row per rendered OWL document)
	CREATE TABLE IF NOT EXISTS models (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		document TEXT NOT NULL,
		entity_count INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_models_name ON models(name);

	-- Per-entity index of archived models
	CREATE TABLE IF NOT EXISTS model_entities (
		model_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		uid TEXT NOT NULL,
		class TEXT NOT NULL,
		PRIMARY KEY (model_id, position),
		FOREIGN KEY (model_id) REFERENCES models(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_model_entities_uid ON model_entities(uid);
	`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveModel stores a rendered model and its entity index in one
// transaction.
func (r *Repository) SaveModel(ctx context.Context, record *entities.ModelRecord, rows []entities.EntityRow) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO models (id, name, document, entity_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`,
		record.ID,
		record.Name,
		record.Document,
		record.EntityCount,
		record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving model: %w", err)
	}

	for _, row := range rows {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO model_entities (model_id, position, uid, class)
			VALUES (?, ?, ?, ?)
		`,
			row.ModelID,
			row.Position,
			row.UID,
			row.Class,
		)
		if err != nil {
			return fmt.Errorf("saving entity row %q: %w", row.UID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// FindModelByName returns the archived model with the given name, or
// nil if none exists.
func (r *Repository) FindModelByName(ctx context.Context, name string) (*entities.ModelRecord, error) {
	query := `
		SELECT id, name, document, entity_count, created_at
		FROM models
		WHERE name = ?
	`
	row := r.db.QueryRowContext(ctx, query, name)

	var record entities.ModelRecord
	err := row.Scan(
		&record.ID,
		&record.Name,
		&record.Document,
		&record.EntityCount,
		&record.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning model: %w", err)
	}
	return &record, nil
}

// ListModels returns archived models ordered by creation time. The
// documents themselves are not loaded.
func (r *Repository) ListModels(ctx context.Context) ([]entities.ModelRecord, error) {
	query := `
		SELECT id, name, entity_count, created_at
		FROM models
		ORDER BY created_at ASC, name ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying models: %w", err)
	}
	defer rows.Close()

	var result []entities.ModelRecord
	for rows.Next() {
		var record entities.ModelRecord
		if err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.EntityCount,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning model: %w", err)
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

// DeleteModel removes an archived model; its index rows cascade.
func (r *Repository) DeleteModel(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM models WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting model: %w", err)
	}
	return nil
}

// FindModelsByEntity returns models whose entity index contains the uid.
func (r *Repository) FindModelsByEntity(ctx context.Context, uid string) ([]entities.ModelRecord, error) {
	query := `
		SELECT m.id, m.name, m.document, m.entity_count, m.created_at
		FROM models m
		JOIN model_entities e ON e.model_id = m.id
		WHERE e.uid = ?
		GROUP BY m.id
		ORDER BY m.created_at ASC, m.name ASC
	`
	rows, err := r.db.QueryContext(ctx, query, uid)
	if err != nil {
		return nil, fmt.Errorf("querying models by entity: %w", err)
	}
	defer rows.Close()

	var result []entities.ModelRecord
	for rows.Next() {
		var record entities.ModelRecord
		if err := rows.Scan(
			&record.ID,
			&record.Name,
			&record.Document,
			&record.EntityCount,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning model: %w", err)
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

// ListEntities returns the entity index of one model in position order.
func (r *Repository) ListEntities(ctx context.Context, modelID string) ([]entities.EntityRow, error) {
	query := `
		SELECT model_id, position, uid, class
		FROM model_entities
		WHERE model_id = ?
		ORDER BY position ASC
	`
	rows, err := r.db.QueryContext(ctx, query, modelID)
	if err != nil {
		return nil, fmt.Errorf("querying model entities: %w", err)
	}
	defer rows.Close()

	var result []entities.EntityRow
	for rows.Next() {
		var row entities.EntityRow
		if err := rows.Scan(
			&row.ModelID,
			&row.Position,
			&row.UID,
			&row.Class,
		); err != nil {
			return nil, fmt.Errorf("scanning entity row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
