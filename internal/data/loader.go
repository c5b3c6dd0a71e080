package data

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// spawnBehaviors lists behavior names that require a spawn handle.
// Behavior existence itself is validated by the ability compiler; the
// loader only checks structural requirements it can see.
var spawnBehaviors = map[string]bool{
	"projectile_spawn": true,
	"mirrored_spawn":   true,
	"platform_spawn":   true,
}

// LoadCatalog reads and validates a catalog document from path.
// An empty path loads the embedded default catalog.
// All validation failures are ConfigurationError: they happen here,
// before any ability can be activated.
func LoadCatalog(path string) (*Catalog, error) {
	raw := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog %s: %w", path, err)
		}
		raw = b
	}
	return ParseCatalog(raw)
}

// ParseCatalog parses and validates a catalog document.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := c.build(); err != nil {
		return nil, err
	}

	slog.Info("loaded catalog",
		"abilities", len(c.Abilities),
		"prefabs", len(c.Prefabs),
		"sounds", len(c.Sounds))
	return &c, nil
}

// build indexes prefabs, resolves sounds and validates every ability.
func (c *Catalog) build() error {
	c.prefabIndex = make(map[string]PrefabDef, len(c.Prefabs))
	for _, p := range c.Prefabs {
		if p.Handle == "" {
			return &ConfigurationError{Msg: "prefab with empty handle"}
		}
		if _, dup := c.prefabIndex[p.Handle]; dup {
			return &ConfigurationError{Msg: "duplicate prefab handle " + p.Handle}
		}
		c.prefabIndex[p.Handle] = p
	}

	table, err := newSoundTable(c.Sounds)
	if err != nil {
		return err
	}
	c.soundTable = table

	seen := make(map[string]bool, len(c.Abilities))
	for _, a := range c.Abilities {
		if a.ID == "" {
			return &ConfigurationError{Msg: "ability with empty id"}
		}
		if seen[a.ID] {
			return &ConfigurationError{Ability: a.ID, Msg: "duplicate ability id"}
		}
		seen[a.ID] = true

		for i, sl := range a.Slots() {
			if sl == nil {
				continue
			}
			if err := c.validateSlot(a.ID, SlotName(i), sl); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Catalog) validateSlot(ability, slot string, sl *SlotDef) error {
	if sl.Behavior == "" && sl.Effect == nil {
		return &ConfigurationError{Ability: ability, Slot: slot, Msg: "needs a behavior or an effect"}
	}
	if spawnBehaviors[sl.Behavior] {
		if sl.SpawnHandle == "" {
			return &ConfigurationError{Ability: ability, Slot: slot, Msg: "spawn behavior without spawn_handle"}
		}
		if _, ok := c.prefabIndex[sl.SpawnHandle]; !ok {
			return &ConfigurationError{Ability: ability, Slot: slot, Msg: "unknown spawn_handle " + sl.SpawnHandle}
		}
	}
	if sl.Sound != "" {
		if _, ok := c.soundTable.Resolve(sl.Sound); !ok {
			return &ConfigurationError{Ability: ability, Slot: slot, Msg: "unknown sound " + sl.Sound}
		}
	}
	if sl.Effect != nil {
		if sl.Effect.Name == "" {
			return &ConfigurationError{Ability: ability, Slot: slot, Msg: "effect without name"}
		}
		if sl.Effect.DurationMs < 0 {
			return &ConfigurationError{Ability: ability, Slot: slot, Msg: "negative effect duration"}
		}
	}
	if sl.CooldownMs < 0 {
		return &ConfigurationError{Ability: ability, Slot: slot, Msg: "negative cooldown"}
	}
	return nil
}
