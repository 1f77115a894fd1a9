// Package ports defines the interfaces between the domain layer and
// infrastructure adapters.
package ports

import (
	"context"

	"github.com/ersonp/biopax-core/internal/domain/entities"
)

// Archive defines the interface for the model archive: an embedded
// store of rendered OWL documents with a per-entity index.
type Archive interface {
	// EnsureSchema creates the store schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the store.
	Close() error

	// SaveModel stores a rendered model under a unique name, together
	// with its entity index rows.
	SaveModel(ctx context.Context, record *entities.ModelRecord, rows []entities.EntityRow) error

	// FindModelByName returns the archived model with the given name,
	// or nil if none exists.
	FindModelByName(ctx context.Context, name string) (*entities.ModelRecord, error)

	// ListModels returns archived models ordered by creation time,
	// without their documents.
	ListModels(ctx context.Context) ([]entities.ModelRecord, error)

	// DeleteModel removes an archived model and its index rows.
	DeleteModel(ctx context.Context, id string) error

	// FindModelsByEntity returns models whose index contains the uid.
	FindModelsByEntity(ctx context.Context, uid string) ([]entities.ModelRecord, error)

	// ListEntities returns the entity index of one model in position
	// order.
	ListEntities(ctx context.Context, modelID string) ([]entities.EntityRow, error)
}
