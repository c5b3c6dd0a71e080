package ability

import (
	"log/slog"
	"strconv"
)

// HealEffect restores HP once, capped at max HP. Dead owners are not
// healed.
// Params: "power" (float64).
type HealEffect struct {
	power float64
}

func NewHealEffect(params map[string]string) Effect {
	power, _ := strconv.ParseFloat(params["power"], 64)
	return &HealEffect{power: power}
}

func (e *HealEffect) Name() string     { return "Heal" }
func (e *HealEffect) Kind() EffectKind { return EffectImmediate }

func (e *HealEffect) Apply(ow *Owner, st *State) error {
	char := ow.Character()
	if char.IsDead() {
		return nil
	}

	amount := int32(e.power)
	if amount <= 0 {
		return nil
	}

	char.RestoreCurrentHP(amount)
	slog.Debug("heal applied", "power", e.power, "owner", ow.ObjectID())
	return nil
}

func (e *HealEffect) Disable(ow *Owner, st *State) error {
	return nil
}
