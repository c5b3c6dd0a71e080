package combat

import (
	"github.com/udisondev/driftblade/internal/game/stats"
	"github.com/udisondev/driftblade/internal/model"
)

// AttackDamage computes the damage of a basic attack from the attacker's
// effective stats: base + attackPower. Reads EffectiveValue only; it
// never touches the modifier set.
func AttackDamage(attacker *model.Player, base int32) int32 {
	power, err := attacker.StatHolder().EffectiveValue(stats.StatAttackPower)
	if err != nil {
		return base
	}
	damage := base + int32(power)
	if damage < 1 {
		damage = 1
	}
	return damage
}

// MitigatedDamage reduces incoming damage by the defender's effective
// defense stat, never below 1.
func MitigatedDamage(defender *model.Player, incoming int32) int32 {
	defense, err := defender.StatHolder().EffectiveValue(stats.StatDefense)
	if err != nil {
		return incoming
	}
	damage := incoming - int32(defense)
	if damage < 1 {
		damage = 1
	}
	return damage
}
