package gamedata

import (
	"errors"
	"fmt"
)

// ObjectRegistry holds loaded object definitions keyed by ID.
type ObjectRegistry struct {
	objects map[string]*ObjectDef
	all     []ObjectDef
}

// NewObjectRegistry creates a registry from loaded object definitions.
func NewObjectRegistry(objects []ObjectDef) *ObjectRegistry {
	registry := &ObjectRegistry{
		objects: make(map[string]*ObjectDef),
		all:     objects,
	}
	for i := range objects {
		registry.objects[objects[i].ID] = &objects[i]
	}
	return registry
}

// LoadObjectRegistry loads and creates a registry from the embedded objects.json.
// The player and NPC definitions must be present.
func LoadObjectRegistry() (*ObjectRegistry, error) {
	objects, err := LoadObjects()
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return nil, errors.New("no objects loaded from objects.json")
	}

	registry := NewObjectRegistry(objects)
	for _, id := range []string{PlayerID, NPCID} {
		if registry.GetByID(id) == nil {
			return nil, fmt.Errorf("objects.json is missing %q", id)
		}
	}
	return registry, nil
}

// GetByID returns the object definition with the given ID, or nil if not found.
func (r *ObjectRegistry) GetByID(id string) *ObjectDef {
	return r.objects[id]
}

// All returns all object definitions.
func (r *ObjectRegistry) All() []ObjectDef {
	return r.all
}

// Count returns the number of object definitions in the registry.
func (r *ObjectRegistry) Count() int {
	return len(r.all)
}
