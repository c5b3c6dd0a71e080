package model

import (
	"sync"
	"sync/atomic"

	"github.com/udisondev/driftblade/internal/data"
)

// Character is the base for living (and breakable) entities: adds HP and
// the death lifecycle to WorldObject.
type Character struct {
	*WorldObject // embedded

	kind data.EntityKind

	currentHP int32
	maxHP     int32

	deathOnce sync.Once // protects death handling from double execution

	// Collision/physics participation. Cleared exactly once on death.
	collisionEnabled atomic.Bool
	physicsEnabled   atomic.Bool
}

// NewCharacter creates a character with full HP.
func NewCharacter(objectID uint32, name string, loc Location, kind data.EntityKind, maxHP int32) *Character {
	c := &Character{
		WorldObject: NewWorldObject(objectID, name, loc),
		kind:        kind,
		currentHP:   maxHP,
		maxHP:       maxHP,
	}
	c.collisionEnabled.Store(true)
	c.physicsEnabled.Store(true)
	return c
}

// Kind returns the entity kind used for identity-based event dispatch.
func (c *Character) Kind() data.EntityKind {
	return c.kind
}

// CurrentHP returns current HP.
func (c *Character) CurrentHP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentHP
}

// MaxHP returns maximum HP.
func (c *Character) MaxHP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxHP
}

// SetMaxHP updates max HP, clamping current HP to the new maximum.
// Called when a maxHP stat modifier changes the effective value.
func (c *Character) SetMaxHP(maxHP int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxHP = maxHP
	if c.currentHP > maxHP {
		c.currentHP = maxHP
	}
}

// ReduceCurrentHP reduces HP by damage (minimum 0).
func (c *Character) ReduceCurrentHP(damage int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentHP = max(c.currentHP-damage, 0)
}

// RestoreCurrentHP heals HP by amount, capped at max.
func (c *Character) RestoreCurrentHP(amount int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentHP = min(c.currentHP+amount, c.maxHP)
}

// IsDead reports whether HP reached zero.
func (c *Character) IsDead() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentHP <= 0
}

// DoDie runs the death transition. Returns true if this call performed
// it (first caller wins); subsequent calls return false. Collision and
// physics are disabled as part of the transition.
func (c *Character) DoDie() bool {
	executed := false
	c.deathOnce.Do(func() {
		c.mu.Lock()
		if c.currentHP > 0 {
			c.currentHP = 0
		}
		c.mu.Unlock()

		c.collisionEnabled.Store(false)
		c.physicsEnabled.Store(false)
		executed = true
	})
	return executed
}

// CollisionEnabled reports whether the entity still collides.
func (c *Character) CollisionEnabled() bool { return c.collisionEnabled.Load() }

// PhysicsEnabled reports whether the entity is still simulated.
func (c *Character) PhysicsEnabled() bool { return c.physicsEnabled.Load() }
