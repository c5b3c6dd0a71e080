package ability

import (
	"log/slog"
	"strconv"
)

// RegenEffect restores HP every tick until disabled.
// Params: "power" (float64 per tick).
type RegenEffect struct {
	power float64
}

func NewRegenEffect(params map[string]string) Effect {
	power, _ := strconv.ParseFloat(params["power"], 64)
	return &RegenEffect{power: power}
}

func (e *RegenEffect) Name() string     { return "Regen" }
func (e *RegenEffect) Kind() EffectKind { return EffectContinuous }

func (e *RegenEffect) Apply(ow *Owner, st *State) error {
	char := ow.Character()
	if char.IsDead() {
		return nil
	}

	amount := int32(e.power)
	if amount <= 0 {
		return nil
	}

	char.RestoreCurrentHP(amount)
	slog.Debug("regen tick", "power", e.power, "owner", ow.ObjectID())
	return nil
}

func (e *RegenEffect) Disable(ow *Owner, st *State) error {
	slog.Debug("regen ended", "owner", ow.ObjectID())
	return nil
}
