package ability

import (
	"fmt"

	"github.com/udisondev/driftblade/internal/game/stats"
	"github.com/udisondev/driftblade/internal/model"
)

// AttackManager is the combat capability exposed through the owner
// adapter. Implemented by combat.Manager.
type AttackManager interface {
	TakeDamage(attackerID uint32, target *model.Character, amount int32)
}

// Owner adapts one activating entity for ability and effect code: it
// exposes the entity's position/facing and its capability components.
// Created when an ability set is equipped, destroyed with the entity.
// Holds references only, no state of its own.
type Owner struct {
	rt     *Runtime
	char   *model.Character
	stats  *stats.Holder
	attack AttackManager
}

// OwnerOption attaches a capability component to an owner.
type OwnerOption func(*Owner)

// WithStats attaches a stat holder.
func WithStats(h *stats.Holder) OwnerOption {
	return func(ow *Owner) { ow.stats = h }
}

// WithAttack attaches an attack manager.
func WithAttack(am AttackManager) OwnerOption {
	return func(ow *Owner) { ow.attack = am }
}

// NewOwner creates an owner adapter for char within this runtime.
func (rt *Runtime) NewOwner(char *model.Character, opts ...OwnerOption) *Owner {
	ow := &Owner{rt: rt, char: char}
	for _, opt := range opts {
		opt(ow)
	}
	return ow
}

// NewPlayerOwner creates an owner for a player, wiring the player's stat
// holder automatically.
func (rt *Runtime) NewPlayerOwner(p *model.Player, opts ...OwnerOption) *Owner {
	ow := rt.NewOwner(p.Character, WithStats(p.StatHolder()))
	for _, opt := range opts {
		opt(ow)
	}
	return ow
}

// ObjectID returns the owning entity's object id.
func (ow *Owner) ObjectID() uint32 {
	return ow.char.ObjectID()
}

// Location returns the entity's current position and facing.
func (ow *Owner) Location() model.Location {
	return ow.char.Location()
}

// Facing returns the entity's facing sign.
func (ow *Owner) Facing() int8 {
	return ow.char.Facing()
}

// Character returns the underlying character.
func (ow *Owner) Character() *model.Character {
	return ow.char
}

// Stats returns the entity's stat holder capability.
func (ow *Owner) Stats() (*stats.Holder, error) {
	if ow.stats == nil {
		return nil, fmt.Errorf("%w: stat holder (entity %d)", ErrMissingCapability, ow.ObjectID())
	}
	return ow.stats, nil
}

// Attack returns the entity's attack manager capability.
func (ow *Owner) Attack() (AttackManager, error) {
	if ow.attack == nil {
		return nil, fmt.Errorf("%w: attack manager (entity %d)", ErrMissingCapability, ow.ObjectID())
	}
	return ow.attack, nil
}
