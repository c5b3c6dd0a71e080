package model

import "sync"

// WorldObject is the base for everything placed in the world: players,
// destructibles, spawned projectiles/walls/platforms.
type WorldObject struct {
	objectID uint32
	name     string
	location Location

	mu sync.RWMutex
}

// NewWorldObject creates an object at loc.
func NewWorldObject(objectID uint32, name string, loc Location) *WorldObject {
	return &WorldObject{
		objectID: objectID,
		name:     name,
		location: loc,
	}
}

// ObjectID returns the unique object id (immutable after creation).
func (w *WorldObject) ObjectID() uint32 {
	return w.objectID
}

// Name returns the object name.
func (w *WorldObject) Name() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.name
}

// Location returns a copy of the object coordinates (value type).
func (w *WorldObject) Location() Location {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.location
}

// SetLocation moves the object.
func (w *WorldObject) SetLocation(loc Location) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.location = loc
}

// Facing returns the facing sign (convenience for hot paths).
func (w *WorldObject) Facing() int8 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.location.Facing
}

// SetFacing updates only the facing sign.
func (w *WorldObject) SetFacing(facing int8) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.location = w.location.WithFacing(facing)
}
