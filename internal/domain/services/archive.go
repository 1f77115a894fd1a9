// Package services contains the domain services that orchestrate the
// core model library and the infrastructure adapters.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/biopax-core/biopax"
	"github.com/ersonp/biopax-core/internal/domain/entities"
	"github.com/ersonp/biopax-core/internal/domain/ports"
	"github.com/ersonp/biopax-core/owl"
)

// ArchiveService stores rendered models and answers questions about
// the archive.
type ArchiveService struct {
	archive ports.Archive
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(archive ports.Archive) *ArchiveService {
	return &ArchiveService{archive: archive}
}

// Save renders a model and stores the document under the given name.
// The name must be non-empty and not already in use.
func (s *ArchiveService) Save(ctx context.Context, name string, model *biopax.Model) (*entities.ModelRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("model name is required")
	}

	existing, err := s.archive.FindModelByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("checking for existing model: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("model %q already archived (id: %s)", name, existing.ID)
	}

	document, err := owl.Render(model)
	if err != nil {
		return nil, fmt.Errorf("rendering model: %w", err)
	}

	record := &entities.ModelRecord{
		ID:          uuid.New().String(),
		Name:        name,
		Document:    document,
		EntityCount: model.Len(),
		CreatedAt:   time.Now(),
	}

	rows := make([]entities.EntityRow, 0, model.Len())
	for i, e := range model.Entities() {
		rows = append(rows, entities.EntityRow{
			ModelID:  record.ID,
			Position: i,
			UID:      e.UID(),
			Class:    string(e.Class()),
		})
	}

	if err := s.archive.SaveModel(ctx, record, rows); err != nil {
		return nil, fmt.Errorf("saving model: %w", err)
	}

	return record, nil
}

// Get returns an archived model by name.
func (s *ArchiveService) Get(ctx context.Context, name string) (*entities.ModelRecord, error) {
	record, err := s.archive.FindModelByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("finding model: %w", err)
	}
	if record == nil {
		return nil, fmt.Errorf("model not found: %s", name)
	}
	return record, nil
}

// List returns all archived models ordered by creation time.
func (s *ArchiveService) List(ctx context.Context) ([]entities.ModelRecord, error) {
	records, err := s.archive.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing models: %w", err)
	}
	return records, nil
}

// Delete removes an archived model by name.
func (s *ArchiveService) Delete(ctx context.Context, name string) error {
	record, err := s.Get(ctx, name)
	if err != nil {
		return err
	}
	if err := s.archive.DeleteModel(ctx, record.ID); err != nil {
		return fmt.Errorf("deleting model: %w", err)
	}
	return nil
}

// FindByEntity returns archived models containing the given uid.
func (s *ArchiveService) FindByEntity(ctx context.Context, uid string) ([]entities.ModelRecord, error) {
	if strings.TrimSpace(uid) == "" {
		return nil, fmt.Errorf("entity uid is required")
	}
	records, err := s.archive.FindModelsByEntity(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("finding models by entity: %w", err)
	}
	return records, nil
}

// Entities returns the entity index of an archived model.
func (s *ArchiveService) Entities(ctx context.Context, name string) ([]entities.EntityRow, error) {
	record, err := s.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	rows, err := s.archive.ListEntities(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("listing model entities: %w", err)
	}
	return rows, nil
}
