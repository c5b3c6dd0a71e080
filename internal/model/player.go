package model

import (
	"github.com/udisondev/driftblade/internal/data"
	"github.com/udisondev/driftblade/internal/game/stats"
)

// Player is a controllable entity: a Character plus its stat holder.
// The holder is created with the player and owns the player's full stat
// set for its lifetime.
type Player struct {
	*Character

	statHolder *stats.Holder
}

// DefaultPlayerStats is the closed stat set every player is created with.
func DefaultPlayerStats() map[stats.StatID]float64 {
	return map[stats.StatID]float64{
		stats.StatMaxHP:       100,
		stats.StatMoveSpeed:   6,
		stats.StatAttackPower: 10,
		stats.StatDefense:     2,
		stats.StatJumpPower:   12,
	}
}

// NewPlayer creates a player with the default stat set. Max HP is taken
// from the maxHP base value.
func NewPlayer(objectID uint32, name string, loc Location) *Player {
	return NewPlayerWithStats(objectID, name, loc, DefaultPlayerStats())
}

// NewPlayerWithStats creates a player with an explicit stat set.
func NewPlayerWithStats(objectID uint32, name string, loc Location, base map[stats.StatID]float64) *Player {
	holder := stats.NewHolder(base)
	maxHP := int32(100)
	if v, err := holder.EffectiveValue(stats.StatMaxHP); err == nil {
		maxHP = int32(v)
	}
	return &Player{
		Character:  NewCharacter(objectID, name, loc, data.KindPlayer, maxHP),
		statHolder: holder,
	}
}

// StatHolder returns the player's stat registry.
func (p *Player) StatHolder() *stats.Holder {
	return p.statHolder
}

// SyncMaxHP re-reads the effective maxHP stat into the character.
// Called by the tick driver after modifier changes.
func (p *Player) SyncMaxHP() {
	if v, err := p.statHolder.EffectiveValue(stats.StatMaxHP); err == nil {
		p.SetMaxHP(int32(v))
	}
}
