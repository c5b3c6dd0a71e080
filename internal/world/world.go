package world

import (
	"sync"

	"github.com/udisondev/driftblade/internal/model"
)

// World is the registry of every object currently in the game world.
type World struct {
	mu      sync.RWMutex
	objects map[uint32]*model.WorldObject
}

// New creates an empty world.
func New() *World {
	return &World{objects: make(map[uint32]*model.WorldObject)}
}

// Add registers an object.
func (w *World) Add(obj *model.WorldObject) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.objects[obj.ObjectID()] = obj
}

// Remove unregisters an object by id.
func (w *World) Remove(objectID uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.objects, objectID)
}

// Get returns the object with the given id.
func (w *World) Get(objectID uint32) (*model.WorldObject, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	obj, ok := w.objects[objectID]
	return obj, ok
}

// Count returns the number of registered objects.
func (w *World) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.objects)
}
