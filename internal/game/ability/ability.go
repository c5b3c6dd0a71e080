package ability

import (
	"github.com/udisondev/driftblade/internal/data"
)

// SlotID is one of the four activation channels.
type SlotID int8

const (
	SlotOffense SlotID = iota
	SlotDefense
	SlotUtility
	SlotPassive
)

func (s SlotID) String() string {
	return data.SlotName(int(s))
}

// Slot is the compiled, immutable configuration of one activation slot.
type Slot struct {
	ID           SlotID
	BehaviorName string
	Behavior     Behavior // nil for effect-only slots
	Effect       Effect   // nil for behavior-only slots

	// EffectKey identifies the effect in the runtime's active table:
	// "<abilityID>/<slot>". Per-(owner, effect) state is keyed on it.
	EffectKey string

	DurationMs  int32
	CooldownMs  int32
	SpawnHandle string
	OffsetX     float64
	OffsetY     float64
	Sound       data.SoundID
	Trigger     string
}

// Ability is the compiled form of one authored ability set: shared,
// immutable configuration exposing the four activation entry points.
// The same instance may be active for many owners concurrently, so it
// must never hold per-owner state — cooldowns and active effects live
// in the Runtime.
type Ability struct {
	ID   string
	Name string

	slots [4]*Slot
}

// Slot returns the compiled slot for id, or nil if the ability does not
// define it.
func (a *Ability) Slot(id SlotID) *Slot {
	return a.slots[id]
}

// ActivateOffense triggers the offense slot for ow.
func (a *Ability) ActivateOffense(ow *Owner) error {
	return ow.rt.activate(ow, a, SlotOffense)
}

// ActivateDefense triggers the defense slot for ow.
func (a *Ability) ActivateDefense(ow *Owner) error {
	return ow.rt.activate(ow, a, SlotDefense)
}

// ActivateUtility triggers the utility slot for ow.
func (a *Ability) ActivateUtility(ow *Owner) error {
	return ow.rt.activate(ow, a, SlotUtility)
}

// ActivatePassive triggers the passive slot. Invoked exactly once, at
// equip time — never per tick. Prefer Runtime.Equip, which guards
// against duplicate application.
func (a *Ability) ActivatePassive(ow *Owner) error {
	return ow.rt.activate(ow, a, SlotPassive)
}

// Compile turns an authored ability definition into its runtime form,
// resolving behavior names, effect factories and sound names. All
// resolution failures are ConfigurationError: they surface at load,
// before any activation.
func Compile(def *data.AbilityDef, sounds *data.SoundTable) (*Ability, error) {
	a := &Ability{ID: def.ID, Name: def.Name}

	for i, sd := range def.Slots() {
		if sd == nil {
			continue
		}
		slotName := data.SlotName(i)

		sl := &Slot{
			ID:          SlotID(i),
			CooldownMs:  sd.CooldownMs,
			SpawnHandle: sd.SpawnHandle,
			OffsetX:     sd.OffsetX,
			OffsetY:     sd.OffsetY,
			Trigger:     sd.Trigger,
		}

		if sd.Behavior != "" {
			b, ok := LookupBehavior(sd.Behavior)
			if !ok {
				return nil, &data.ConfigurationError{
					Ability: def.ID, Slot: slotName,
					Msg: "unknown behavior " + sd.Behavior,
				}
			}
			sl.BehaviorName = sd.Behavior
			sl.Behavior = b
		}

		if sd.Effect != nil {
			eff, err := CreateEffect(sd.Effect.Name, sd.Effect.Params)
			if err != nil {
				return nil, err
			}
			sl.Effect = eff
			sl.EffectKey = def.ID + "/" + slotName
			sl.DurationMs = sd.Effect.DurationMs
		}

		if sd.Sound != "" {
			id, ok := sounds.Resolve(sd.Sound)
			if !ok {
				return nil, &data.ConfigurationError{
					Ability: def.ID, Slot: slotName,
					Msg: "unknown sound " + sd.Sound,
				}
			}
			sl.Sound = id
		}

		a.slots[i] = sl
	}

	return a, nil
}

// CompileCatalog compiles every ability in the catalog.
func CompileCatalog(c *data.Catalog) (map[string]*Ability, error) {
	abilities := make(map[string]*Ability, len(c.Abilities))
	for _, def := range c.Abilities {
		a, err := Compile(def, c.SoundTable())
		if err != nil {
			return nil, err
		}
		abilities[a.ID] = a
	}
	return abilities, nil
}
