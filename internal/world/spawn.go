package world

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/udisondev/driftblade/internal/data"
	"github.com/udisondev/driftblade/internal/model"
)

// Spawner instantiates world objects from prefab handles. Fire-and-forget:
// the caller receives an instance id and never tracks the object again.
type Spawner interface {
	Spawn(handle string, loc model.Location) (uint32, error)
}

// spawnedObject tracks one live spawned instance and its remaining TTL.
type spawnedObject struct {
	objectID    uint32
	handle      string
	remainingMs int32 // <= 0 means no expiry
}

// SpawnRegistry implements Spawner over the world object table and owns
// the lifetime of everything it spawns: instances with a prefab TTL
// expire on Tick without any involvement from the ability that
// requested them.
type SpawnRegistry struct {
	mu      sync.Mutex
	world   *World
	ids     *ObjectIDGenerator
	prefabs map[string]data.PrefabDef
	active  []*spawnedObject
}

// NewSpawnRegistry creates a registry over the given world and prefab set.
func NewSpawnRegistry(w *World, ids *ObjectIDGenerator, prefabs map[string]data.PrefabDef) *SpawnRegistry {
	return &SpawnRegistry{
		world:   w,
		ids:     ids,
		prefabs: prefabs,
	}
}

// Spawn instantiates the prefab at loc and returns the instance id.
// Unknown handles fail; catalog validation makes that unreachable from
// loaded abilities.
func (r *SpawnRegistry) Spawn(handle string, loc model.Location) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefab, ok := r.prefabs[handle]
	if !ok {
		return 0, fmt.Errorf("unknown prefab handle %q", handle)
	}

	id := r.ids.NextSpawnID()
	r.world.Add(model.NewWorldObject(id, prefab.Name, loc))
	r.active = append(r.active, &spawnedObject{
		objectID:    id,
		handle:      handle,
		remainingMs: prefab.TTLMs,
	})

	slog.Debug("spawned object",
		"handle", handle,
		"objectID", id,
		"x", loc.X,
		"y", loc.Y,
		"ttlMs", prefab.TTLMs)
	return id, nil
}

// Tick advances spawned-object lifetimes and removes expired instances
// from the world.
func (r *SpawnRegistry) Tick(deltaMs int32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, so := range r.active {
		if so.remainingMs > 0 {
			so.remainingMs -= deltaMs
			if so.remainingMs <= 0 {
				r.world.Remove(so.objectID)
				slog.Debug("spawned object expired", "handle", so.handle, "objectID", so.objectID)
				continue
			}
		}
		r.active[n] = so
		n++
	}
	r.active = r.active[:n]
}

// ActiveCount returns the number of live spawned instances.
func (r *SpawnRegistry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}
