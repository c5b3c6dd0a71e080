package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_EmbeddedDefault(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)

	assert.NotEmpty(t, c.Abilities)
	assert.NotNil(t, c.Ability("emberblade"))
	assert.Nil(t, c.Ability("nonexistent"))

	_, ok := c.Prefab("fireball")
	assert.True(t, ok)
	_, ok = c.Prefab("bogus")
	assert.False(t, ok)

	id, ok := c.SoundTable().Resolve("cast_fireball")
	require.True(t, ok)
	assert.Equal(t, SoundFireball, id)
}

func TestParseCatalog_Validation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name: "slot with neither behavior nor effect",
			doc: `
abilities:
  - id: broken
    offense:
      cooldown_ms: 100
`,
			wantErr: "needs a behavior or an effect",
		},
		{
			name: "spawn behavior without handle",
			doc: `
abilities:
  - id: broken
    offense:
      behavior: projectile_spawn
`,
			wantErr: "without spawn_handle",
		},
		{
			name: "unknown spawn handle",
			doc: `
abilities:
  - id: broken
    offense:
      behavior: projectile_spawn
      spawn_handle: ghost
`,
			wantErr: "unknown spawn_handle",
		},
		{
			name: "unknown sound name",
			doc: `
abilities:
  - id: broken
    offense:
      sound: whoosh
      effect:
        name: Heal
`,
			wantErr: "unknown sound",
		},
		{
			name: "unknown sound event",
			doc: `
sounds:
  - name: boom
    event: explosion_xxl
`,
			wantErr: "unknown event",
		},
		{
			name: "duplicate ability id",
			doc: `
abilities:
  - id: twin
    passive:
      effect:
        name: StatBoost
  - id: twin
    passive:
      effect:
        name: StatBoost
`,
			wantErr: "duplicate ability id",
		},
		{
			name: "duplicate prefab handle",
			doc: `
prefabs:
  - handle: rock
    name: Rock
  - handle: rock
    name: Rock
`,
			wantErr: "duplicate prefab handle",
		},
		{
			name: "effect without name",
			doc: `
abilities:
  - id: broken
    passive:
      effect:
        duration_ms: 100
`,
			wantErr: "effect without name",
		},
		{
			name: "negative cooldown",
			doc: `
abilities:
  - id: broken
    offense:
      cooldown_ms: -5
      effect:
        name: Heal
`,
			wantErr: "negative cooldown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.doc))
			require.Error(t, err)

			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr, "validation failures are ConfigurationError")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSoundTable_DeathSound(t *testing.T) {
	table, err := newSoundTable(nil)
	require.NoError(t, err)

	assert.Equal(t, SoundPlayerDeath, table.DeathSound(KindPlayer))
	assert.Equal(t, SoundObjectBreak, table.DeathSound(KindDestructible))
}
