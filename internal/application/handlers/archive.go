// Package handlers contains application-layer handlers that sit
// between the CLI and the domain services.
package handlers

import (
	"context"

	"github.com/ersonp/biopax-core/biopax"
	"github.com/ersonp/biopax-core/internal/domain/entities"
	"github.com/ersonp/biopax-core/internal/domain/services"
)

// ArchiveHandler handles model archive operations.
type ArchiveHandler struct {
	service *services.ArchiveService
}

// NewArchiveHandler creates a new ArchiveHandler.
func NewArchiveHandler(service *services.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{
		service: service,
	}
}

// HandleSave renders a model and archives it under the given name.
func (h *ArchiveHandler) HandleSave(ctx context.Context, name string, model *biopax.Model) (*entities.ModelRecord, error) {
	return h.service.Save(ctx, name, model)
}

// HandleShow returns one archived model including its document.
func (h *ArchiveHandler) HandleShow(ctx context.Context, name string) (*entities.ModelRecord, error) {
	return h.service.Get(ctx, name)
}

// ArchiveListResult contains the result of listing archived models.
type ArchiveListResult struct {
	Models []entities.ModelRecord `json:"models"`
	Total  int                    `json:"total"`
}

// HandleList returns all archived models.
func (h *ArchiveHandler) HandleList(ctx context.Context) (*ArchiveListResult, error) {
	records, err := h.service.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ArchiveListResult{
		Models: records,
		Total:  len(records),
	}, nil
}

// HandleDelete removes an archived model by name.
func (h *ArchiveHandler) HandleDelete(ctx context.Context, name string) error {
	return h.service.Delete(ctx, name)
}

// HandleFind returns archived models containing the given entity uid.
func (h *ArchiveHandler) HandleFind(ctx context.Context, uid string) (*ArchiveListResult, error) {
	records, err := h.service.FindByEntity(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &ArchiveListResult{
		Models: records,
		Total:  len(records),
	}, nil
}

// HandleEntities returns the entity index of an archived model.
func (h *ArchiveHandler) HandleEntities(ctx context.Context, name string) ([]entities.EntityRow, error) {
	return h.service.Entities(ctx, name)
}
