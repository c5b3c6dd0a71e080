package ability

import (
	"log/slog"
	"strconv"
)

// DamageOverTimeEffect deals periodic damage to the owner every tick.
// Damage goes through the owner's attack manager so death handling
// stays in one place.
// Params: "power" (float64 per tick), "canKill" (bool, default false).
// If canKill is false, damage cannot reduce HP below 1.
type DamageOverTimeEffect struct {
	power   float64
	canKill bool
}

func NewDamageOverTimeEffect(params map[string]string) Effect {
	power, _ := strconv.ParseFloat(params["power"], 64)
	canKill, _ := strconv.ParseBool(params["canKill"])
	return &DamageOverTimeEffect{power: power, canKill: canKill}
}

func (e *DamageOverTimeEffect) Name() string     { return "DamageOverTime" }
func (e *DamageOverTimeEffect) Kind() EffectKind { return EffectContinuous }

func (e *DamageOverTimeEffect) Apply(ow *Owner, st *State) error {
	am, err := ow.Attack()
	if err != nil {
		return err
	}

	target := ow.Character()
	if target.IsDead() {
		return nil
	}

	damage := int32(e.power)
	if damage <= 0 {
		return nil
	}

	// Kill protection: without canKill, never reduce below 1 HP.
	if !e.canKill {
		currentHP := target.CurrentHP()
		if damage >= currentHP {
			damage = currentHP - 1
			if damage <= 0 {
				return nil
			}
		}
	}

	am.TakeDamage(ow.ObjectID(), target, damage)

	slog.Debug("dot tick",
		"power", e.power,
		"damage", damage,
		"owner", ow.ObjectID())
	return nil
}

func (e *DamageOverTimeEffect) Disable(ow *Owner, st *State) error {
	slog.Debug("dot ended", "owner", ow.ObjectID())
	return nil
}
