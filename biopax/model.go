package biopax

// Model is an ordered, uid-unique collection of entities forming one
// exportable unit. It holds entities by reference and never copies or
// renames them; outgoing references to uids outside the model are
// permitted but not resolvable.
//
// A Model is not safe for concurrent mutation. Callers that share one
// across goroutines need a single-writer discipline.
type Model struct {
	entities []*Entity
	byUID    map[string]*Entity
}

// NewModel builds a model from an ordered sequence of entities. A
// duplicate uid in the sequence is an identity violation; no partial
// model is returned.
func NewModel(entities ...*Entity) (*Model, error) {
	m := &Model{byUID: make(map[string]*Entity, len(entities))}
	for _, e := range entities {
		if _, exists := m.byUID[e.uid]; exists {
			return nil, &DuplicateUIDError{UID: e.uid}
		}
		m.byUID[e.uid] = e
		m.entities = append(m.entities, e)
	}
	return m, nil
}

// Add appends an entity, rejecting uid collisions.
func (m *Model) Add(e *Entity) error {
	if _, exists := m.byUID[e.uid]; exists {
		return &DuplicateUIDError{UID: e.uid}
	}
	m.byUID[e.uid] = e
	m.entities = append(m.entities, e)
	return nil
}

// Entities returns the entities in insertion order.
func (m *Model) Entities() []*Entity {
	out := make([]*Entity, len(m.entities))
	copy(out, m.entities)
	return out
}

// Get looks an entity up by uid.
func (m *Model) Get(uid string) (*Entity, bool) {
	e, ok := m.byUID[uid]
	return e, ok
}

// Len returns the number of entities.
func (m *Model) Len() int { return len(m.entities) }

// MaterializeLinks recomputes reverse links for the whole model: for
// every entity E and every populated reference property P of E with
// target T in the model, T gains a Link{Source: E.uid, Property: P}.
// Previous reverse-link state is discarded first, so the pass is
// idempotent. References to uids absent from the model are skipped;
// they are not an error.
func (m *Model) MaterializeLinks() {
	for _, e := range m.entities {
		e.links = nil
	}
	for _, e := range m.entities {
		for _, prop := range Properties(e.class) {
			if prop.Kind != KindReference {
				continue
			}
			for _, uid := range e.Refs(prop.Name) {
				target, ok := m.byUID[uid]
				if !ok {
					continue
				}
				target.links = append(target.links, Link{Source: e.uid, Property: prop.Name})
			}
		}
	}
}
