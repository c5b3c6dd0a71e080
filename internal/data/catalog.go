package data

// Catalog is the root of the designer-authored content document.
// Everything in it is immutable after LoadCatalog returns: templates are
// shared by every entity that equips them and must never carry per-owner
// state.
type Catalog struct {
	Abilities []*AbilityDef `yaml:"abilities" json:"abilities"`
	Prefabs   []PrefabDef   `yaml:"prefabs" json:"prefabs"`
	Sounds    []SoundDef    `yaml:"sounds" json:"sounds"`

	prefabIndex map[string]PrefabDef
	soundTable  *SoundTable
}

// AbilityDef defines one ability set: four activation slots, any of which
// may be omitted. One instance is shared across all owners.
type AbilityDef struct {
	ID      string   `yaml:"id" json:"id"`
	Name    string   `yaml:"name" json:"name"`
	Offense *SlotDef `yaml:"offense,omitempty" json:"offense,omitempty"`
	Defense *SlotDef `yaml:"defense,omitempty" json:"defense,omitempty"`
	Utility *SlotDef `yaml:"utility,omitempty" json:"utility,omitempty"`
	Passive *SlotDef `yaml:"passive,omitempty" json:"passive,omitempty"`
}

// SlotDef configures one activation slot. A slot needs a behavior, an
// effect, or both; a slot with neither is rejected at load.
type SlotDef struct {
	// Behavior names a registered slot behavior ("projectile_spawn",
	// "mirrored_spawn", "platform_spawn"). Empty means effect-only.
	Behavior string `yaml:"behavior,omitempty" json:"behavior,omitempty"`

	// SpawnHandle references a prefab by handle. Required by spawn
	// behaviors, validated against Prefabs at load.
	SpawnHandle string  `yaml:"spawn_handle,omitempty" json:"spawn_handle,omitempty"`
	OffsetX     float64 `yaml:"offset_x,omitempty" json:"offset_x,omitempty"`
	OffsetY     float64 `yaml:"offset_y,omitempty" json:"offset_y,omitempty"`

	CooldownMs int32 `yaml:"cooldown_ms,omitempty" json:"cooldown_ms,omitempty"`

	// Sound and Trigger are fire-and-forget notifications emitted on
	// activation. Sound is resolved to a SoundID at load.
	Sound   string `yaml:"sound,omitempty" json:"sound,omitempty"`
	Trigger string `yaml:"trigger,omitempty" json:"trigger,omitempty"`

	Effect *EffectDef `yaml:"effect,omitempty" json:"effect,omitempty"`
}

// EffectDef names a registered effect factory plus its parameters.
// DurationMs == 0 means the effect stays active until explicitly disabled.
type EffectDef struct {
	Name       string            `yaml:"name" json:"name"`
	DurationMs int32             `yaml:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	Params     map[string]string `yaml:"params,omitempty" json:"params,omitempty"`
}

// PrefabDef describes a spawnable world object template. TTLMs > 0 makes
// the spawned instance expire on its own; the spawning ability never
// tracks it.
type PrefabDef struct {
	Handle string `yaml:"handle" json:"handle"`
	Name   string `yaml:"name" json:"name"`
	TTLMs  int32  `yaml:"ttl_ms,omitempty" json:"ttl_ms,omitempty"`
}

// SoundDef binds an authored sound name to a built-in sound event.
type SoundDef struct {
	Name  string `yaml:"name" json:"name"`
	Event string `yaml:"event" json:"event"`
}

// Prefab returns the prefab definition for handle.
func (c *Catalog) Prefab(handle string) (PrefabDef, bool) {
	p, ok := c.prefabIndex[handle]
	return p, ok
}

// Prefabs returns the prefab index (handle → definition).
func (c *Catalog) PrefabIndex() map[string]PrefabDef {
	return c.prefabIndex
}

// SoundTable returns the resolved sound lookup table.
func (c *Catalog) SoundTable() *SoundTable {
	return c.soundTable
}

// Ability returns the ability definition with the given id, or nil.
func (c *Catalog) Ability(id string) *AbilityDef {
	for _, a := range c.Abilities {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Slots returns the four slot definitions in activation order
// (offense, defense, utility, passive). Entries may be nil.
func (a *AbilityDef) Slots() [4]*SlotDef {
	return [4]*SlotDef{a.Offense, a.Defense, a.Utility, a.Passive}
}

// SlotName returns the canonical name for a slot index in Slots order.
func SlotName(i int) string {
	switch i {
	case 0:
		return "offense"
	case 1:
		return "defense"
	case 2:
		return "utility"
	case 3:
		return "passive"
	}
	return "unknown"
}
