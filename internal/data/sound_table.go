package data

// SoundID is an enumerated audio event. Authored content references
// sounds by name; names are resolved to SoundIDs once, at catalog load,
// so a typo fails the load instead of silently playing nothing.
type SoundID int16

const (
	SoundNone SoundID = iota
	SoundPlayerDeath
	SoundObjectBreak
	SoundFireball
	SoundWallRise
	SoundPlatformForm
)

// EntityKind selects which death sound an entity dispatches.
type EntityKind int8

const (
	KindPlayer EntityKind = iota
	KindDestructible
)

// soundEvents maps the built-in event names usable from SoundDef.Event.
var soundEvents = map[string]SoundID{
	"player_death":  SoundPlayerDeath,
	"object_break":  SoundObjectBreak,
	"fireball":      SoundFireball,
	"wall_rise":     SoundWallRise,
	"platform_form": SoundPlatformForm,
}

// SoundTable resolves authored sound names and entity kinds to SoundIDs.
// Built once during LoadCatalog, read-only afterwards.
type SoundTable struct {
	byName map[string]SoundID
}

func newSoundTable(defs []SoundDef) (*SoundTable, error) {
	t := &SoundTable{byName: make(map[string]SoundID, len(defs))}
	for _, d := range defs {
		id, ok := soundEvents[d.Event]
		if !ok {
			return nil, &ConfigurationError{Msg: "sound " + d.Name + ": unknown event " + d.Event}
		}
		if _, dup := t.byName[d.Name]; dup {
			return nil, &ConfigurationError{Msg: "duplicate sound name " + d.Name}
		}
		t.byName[d.Name] = id
	}
	return t, nil
}

// Resolve returns the SoundID for an authored name.
// Returns SoundNone, false for unknown names.
func (t *SoundTable) Resolve(name string) (SoundID, bool) {
	id, ok := t.byName[name]
	return id, ok
}

// DeathSound returns the death event for an entity kind.
func (t *SoundTable) DeathSound(kind EntityKind) SoundID {
	if kind == KindPlayer {
		return SoundPlayerDeath
	}
	return SoundObjectBreak
}
