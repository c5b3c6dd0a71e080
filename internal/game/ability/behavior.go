package ability

import (
	"log/slog"

	"github.com/udisondev/driftblade/internal/model"
)

// Behavior performs a slot's world action. Behaviors are selected by
// name from data, never by subclassing: the registry is the closed set
// of things an authored slot may do.
type Behavior func(rt *Runtime, ow *Owner, sl *Slot) error

// behaviorRegistry maps behavior name → implementation.
var behaviorRegistry = map[string]Behavior{
	"projectile_spawn": projectileSpawn,
	"mirrored_spawn":   mirroredSpawn,
	"platform_spawn":   platformSpawn,
}

// LookupBehavior returns the registered behavior for name.
func LookupBehavior(name string) (Behavior, bool) {
	b, ok := behaviorRegistry[name]
	return b, ok
}

// projectileSpawn spawns the slot's prefab in front of the owner: the
// horizontal offset is applied in the facing direction.
func projectileSpawn(rt *Runtime, ow *Owner, sl *Slot) error {
	loc := ow.Location()
	x := loc.X + float64(loc.Facing)*sl.OffsetX
	id, err := rt.spawner.Spawn(sl.SpawnHandle, model.NewLocation(x, loc.Y+sl.OffsetY, loc.Facing))
	if err != nil {
		return err
	}
	slog.Debug("projectile spawned", "owner", ow.ObjectID(), "instance", id)
	return nil
}

// mirroredSpawn spawns the slot's prefab with the horizontal offset
// mirrored against the owner's facing: magnitude preserved, sign
// flipped. Facing right with offset 3 spawns at ownerX-3; facing left
// spawns at ownerX+3.
func mirroredSpawn(rt *Runtime, ow *Owner, sl *Slot) error {
	loc := ow.Location()
	x := loc.X - float64(loc.Facing)*sl.OffsetX
	id, err := rt.spawner.Spawn(sl.SpawnHandle, model.NewLocation(x, loc.Y+sl.OffsetY, loc.Facing))
	if err != nil {
		return err
	}
	slog.Debug("mirrored spawn", "owner", ow.ObjectID(), "instance", id)
	return nil
}

// platformSpawn spawns the slot's prefab at a fixed relative offset,
// independent of facing. The spawned platform owns its own lifetime.
func platformSpawn(rt *Runtime, ow *Owner, sl *Slot) error {
	loc := ow.Location()
	id, err := rt.spawner.Spawn(sl.SpawnHandle, model.NewLocation(loc.X+sl.OffsetX, loc.Y+sl.OffsetY, loc.Facing))
	if err != nil {
		return err
	}
	slog.Debug("platform spawned", "owner", ow.ObjectID(), "instance", id)
	return nil
}
