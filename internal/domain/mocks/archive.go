// Package mocks provides hand-written mocks for the port interfaces.
package mocks

import (
	"context"
	"sort"

	"github.com/ersonp/biopax-core/internal/domain/entities"
)

// Archive is a mock implementation of ports.Archive.
type Archive struct {
	Models map[string]*entities.ModelRecord
	Rows   map[string][]entities.EntityRow
	Err    error
}

// NewArchive creates a new mock Archive.
func NewArchive() *Archive {
	return &Archive{
		Models: make(map[string]*entities.ModelRecord),
		Rows:   make(map[string][]entities.EntityRow),
	}
}

// EnsureSchema creates the store schema if it doesn't exist.
func (m *Archive) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes the store.
func (m *Archive) Close() error {
	return nil
}

// SaveModel stores a rendered model.
func (m *Archive) SaveModel(_ context.Context, record *entities.ModelRecord, rows []entities.EntityRow) error {
	if m.Err != nil {
		return m.Err
	}
	m.Models[record.ID] = record
	m.Rows[record.ID] = rows
	return nil
}

// FindModelByName returns the archived model with the given name.
func (m *Archive) FindModelByName(_ context.Context, name string) (*entities.ModelRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, rec := range m.Models {
		if rec.Name == name {
			return rec, nil
		}
	}
	return nil, nil
}

// ListModels returns archived models ordered by creation time.
func (m *Archive) ListModels(_ context.Context) ([]entities.ModelRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.ModelRecord, 0, len(m.Models))
	for _, rec := range m.Models {
		result = append(result, *rec)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// DeleteModel removes an archived model.
func (m *Archive) DeleteModel(_ context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Models, id)
	delete(m.Rows, id)
	return nil
}

// FindModelsByEntity returns models whose index contains the uid.
func (m *Archive) FindModelsByEntity(_ context.Context, uid string) ([]entities.ModelRecord, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []entities.ModelRecord
	for id, rows := range m.Rows {
		for _, row := range rows {
			if row.UID == uid {
				result = append(result, *m.Models[id])
				break
			}
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// ListEntities returns the entity index of one model.
func (m *Archive) ListEntities(_ context.Context, modelID string) ([]entities.EntityRow, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	rows := m.Rows[modelID]
	out := make([]entities.EntityRow, len(rows))
	copy(out, rows)
	return out, nil
}
