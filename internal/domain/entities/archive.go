// Package entities contains core domain data structures.
package entities

import "time"

// ModelRecord is one archived model: its rendered OWL document plus
// bookkeeping. The document is the unit of storage; the in-memory
// graph is not persisted.
type ModelRecord struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Document    string    `json:"document"`
	EntityCount int       `json:"entity_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// EntityRow is the per-entity index of an archived model, used to find
// archived models that contain a given uid.
type EntityRow struct {
	ModelID  string `json:"model_id"`
	Position int    `json:"position"`
	UID      string `json:"uid"`
	Class    string `json:"class"`
}
