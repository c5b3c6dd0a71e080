package ability

import (
	"errors"
	"testing"

	"github.com/udisondev/driftblade/internal/data"
	"github.com/udisondev/driftblade/internal/game/combat"
	"github.com/udisondev/driftblade/internal/model"
	"github.com/udisondev/driftblade/internal/world"
)

// buildWorld assembles the real collaborators around the embedded
// catalog: world registry, spawner, combat manager and runtime.
func buildWorld(t *testing.T) (*Runtime, map[string]*Ability, *world.World, *combat.Manager, *fakeAudio) {
	t.Helper()

	catalog := data.MustDefaultCatalog()
	abilities, err := CompileCatalog(catalog)
	if err != nil {
		t.Fatalf("compiling catalog: %v", err)
	}

	w := world.New()
	ids := world.NewObjectIDGenerator()
	spawner := world.NewSpawnRegistry(w, ids, catalog.PrefabIndex())
	audio := &fakeAudio{}
	fight := combat.NewManager(audio, catalog.SoundTable())
	rt := NewRuntime(spawner, audio, &fakeAnim{})

	return rt, abilities, w, fight, audio
}

func TestEmberblade_EquipAndActivate(t *testing.T) {
	rt, abilities, w, fight, audio := buildWorld(t)

	player := model.NewPlayer(1, "Drifter", model.NewLocation(10, 0, model.FaceRight))
	ow := rt.NewPlayerOwner(player, WithAttack(fight))

	set := abilities["emberblade"]
	if set == nil {
		t.Fatal("emberblade not in catalog")
	}

	// Equip applies the passive: +25 maxHP.
	if err := rt.Equip(ow, set); err != nil {
		t.Fatalf("equip: %v", err)
	}
	player.SyncMaxHP()
	if player.MaxHP() != 125 {
		t.Fatalf("expected 125 maxHP after passive, got %d", player.MaxHP())
	}

	// Offense spawns a fireball in front of the owner and plays a sound.
	if err := set.ActivateOffense(ow); err != nil {
		t.Fatalf("offense: %v", err)
	}
	if w.Count() != 1 {
		t.Fatalf("expected 1 spawned object, got %d", w.Count())
	}
	if len(audio.played) != 1 || audio.played[0] != data.SoundFireball {
		t.Fatalf("expected fireball sound, got %v", audio.played)
	}

	// Cooldown gates an immediate second shot.
	if err := set.ActivateOffense(ow); !errors.Is(err, ErrOnCooldown) {
		t.Fatalf("expected ErrOnCooldown, got %v", err)
	}
}

func TestEmberblade_DefenseMirrorsOffset(t *testing.T) {
	rt, abilities, w, _, _ := buildWorld(t)

	player := model.NewPlayer(1, "Drifter", model.NewLocation(10, 0, model.FaceRight))
	ow := rt.NewPlayerOwner(player)
	set := abilities["emberblade"]

	// Facing right with configured offset 3: wall rises at ownerX-3.
	if err := set.ActivateDefense(ow); err != nil {
		t.Fatalf("defense: %v", err)
	}
	if got := spawnedX(t, w); got != 7 {
		t.Fatalf("facing right: wall at X=%v, want 7", got)
	}

	// Facing left: ownerX+3.
	rt2, abilities2, w2, _, _ := buildWorld(t)
	player2 := model.NewPlayer(1, "Drifter", model.NewLocation(10, 0, model.FaceLeft))
	ow2 := rt2.NewPlayerOwner(player2)
	if err := abilities2["emberblade"].ActivateDefense(ow2); err != nil {
		t.Fatalf("defense: %v", err)
	}
	if got := spawnedX(t, w2); got != 13 {
		t.Fatalf("facing left: wall at X=%v, want 13", got)
	}
}

// spawnedX returns the X coordinate of the single spawned object.
func spawnedX(t *testing.T, w *world.World) float64 {
	t.Helper()
	if w.Count() != 1 {
		t.Fatalf("expected exactly 1 spawned object, got %d", w.Count())
	}
	obj, ok := w.Get(0x20000001)
	if !ok {
		t.Fatal("spawned object not found at first spawn id")
	}
	return obj.Location().X
}

func TestCinderheart_DotRunsItsCourse(t *testing.T) {
	rt, abilities, _, fight, _ := buildWorld(t)

	player := model.NewPlayer(1, "Burner", model.NewLocation(0, 0, model.FaceRight))
	ow := rt.NewPlayerOwner(player, WithAttack(fight))
	set := abilities["cinderheart"]
	if set == nil {
		t.Fatal("cinderheart not in catalog")
	}

	if err := rt.Equip(ow, set); err != nil {
		t.Fatalf("equip: %v", err)
	}

	// Offense applies a 3000ms dot at 5 damage per tick.
	if err := set.ActivateOffense(ow); err != nil {
		t.Fatalf("offense: %v", err)
	}
	hpAfterApply := player.CurrentHP()
	if hpAfterApply != 95 {
		t.Fatalf("expected 95 HP after initial tick, got %d", hpAfterApply)
	}

	for i := 0; i < 6; i++ {
		rt.Tick(500)
	}
	if rt.IsActive(1, set.Slot(SlotOffense)) {
		t.Fatal("dot should have expired after its duration")
	}
	if hp := player.CurrentHP(); hp >= hpAfterApply {
		t.Fatalf("dot never ticked: %d HP", hp)
	}

	// Utility regen heals back up while active.
	hurt := player.CurrentHP()
	if err := set.ActivateUtility(ow); err != nil {
		t.Fatalf("utility: %v", err)
	}
	rt.Tick(500)
	if hp := player.CurrentHP(); hp <= hurt {
		t.Fatalf("regen not healing: %d HP", hp)
	}
}

func TestCompile_UnknownNamesAreConfigurationErrors(t *testing.T) {
	catalog := data.MustDefaultCatalog()

	def := &data.AbilityDef{
		ID: "broken",
		Offense: &data.SlotDef{
			Effect: &data.EffectDef{Name: "Transmute"},
		},
	}
	_, err := Compile(def, catalog.SoundTable())
	var cfgErr *data.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError for unknown effect, got %v", err)
	}

	def = &data.AbilityDef{
		ID: "broken",
		Offense: &data.SlotDef{
			Behavior: "teleport",
		},
	}
	_, err = Compile(def, catalog.SoundTable())
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError for unknown behavior, got %v", err)
	}
}

func TestCompileCatalog_EmbeddedContentIsValid(t *testing.T) {
	abilities, err := CompileCatalog(data.MustDefaultCatalog())
	if err != nil {
		t.Fatalf("embedded catalog must compile: %v", err)
	}
	if len(abilities) == 0 {
		t.Fatal("no abilities compiled")
	}

	set := abilities["emberblade"]
	for _, id := range []SlotID{SlotOffense, SlotDefense, SlotUtility, SlotPassive} {
		if set.Slot(id) == nil {
			t.Errorf("emberblade missing %s slot", id)
		}
	}
}
