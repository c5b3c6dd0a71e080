package combat

import (
	"testing"

	"github.com/udisondev/driftblade/internal/data"
	"github.com/udisondev/driftblade/internal/game/stats"
	"github.com/udisondev/driftblade/internal/model"
)

// recordingAudio captures every dispatched sound event.
type recordingAudio struct {
	played []data.SoundID
}

func (a *recordingAudio) PlaySFX(id data.SoundID) {
	a.played = append(a.played, id)
}

func newTestManager() (*Manager, *recordingAudio) {
	audio := &recordingAudio{}
	c := data.MustDefaultCatalog()
	return NewManager(audio, c.SoundTable()), audio
}

func newVictim(kind data.EntityKind) *model.Character {
	return model.NewCharacter(2, "Victim", model.NewLocation(0, 0, model.FaceRight), kind, 100)
}

func TestTakeDamage_NonLethal(t *testing.T) {
	m, audio := newTestManager()
	victim := newVictim(data.KindPlayer)

	m.TakeDamage(1, victim, 30)

	if victim.CurrentHP() != 70 {
		t.Fatalf("expected 70 HP, got %d", victim.CurrentHP())
	}
	if victim.IsDead() {
		t.Error("30 damage on 100 HP must not kill")
	}
	if !victim.CollisionEnabled() || !victim.PhysicsEnabled() {
		t.Error("collision/physics must stay enabled while alive")
	}
	if len(audio.played) != 0 {
		t.Errorf("no sound expected, got %v", audio.played)
	}
}

func TestTakeDamage_LethalKillsExactlyOnce(t *testing.T) {
	m, audio := newTestManager()
	victim := newVictim(data.KindPlayer)

	m.TakeDamage(1, victim, 150)

	if !victim.IsDead() {
		t.Fatal("150 damage on 100 HP must kill")
	}
	if victim.CollisionEnabled() {
		t.Error("death must disable collision")
	}
	if victim.PhysicsEnabled() {
		t.Error("death must disable physics")
	}
	if len(audio.played) != 1 || audio.played[0] != data.SoundPlayerDeath {
		t.Fatalf("expected one player death sound, got %v", audio.played)
	}

	// Hitting a corpse again never re-triggers death.
	m.TakeDamage(1, victim, 50)
	if len(audio.played) != 1 {
		t.Fatalf("death sound dispatched twice: %v", audio.played)
	}
}

func TestTakeDamage_DestructibleSound(t *testing.T) {
	m, audio := newTestManager()
	crate := newVictim(data.KindDestructible)

	m.TakeDamage(1, crate, 999)

	if len(audio.played) != 1 || audio.played[0] != data.SoundObjectBreak {
		t.Fatalf("expected object break sound, got %v", audio.played)
	}
}

func TestTakeDamage_IgnoresNonPositiveAmounts(t *testing.T) {
	m, _ := newTestManager()
	victim := newVictim(data.KindPlayer)

	m.TakeDamage(1, victim, 0)
	m.TakeDamage(1, victim, -10)

	if victim.CurrentHP() != 100 {
		t.Errorf("expected full HP, got %d", victim.CurrentHP())
	}
}

func TestAttackDamage_ReadsEffectiveStats(t *testing.T) {
	p := model.NewPlayer(1, "Attacker", model.NewLocation(0, 0, model.FaceRight))

	// Default attackPower base is 10.
	if got := AttackDamage(p, 5); got != 15 {
		t.Fatalf("expected 15, got %d", got)
	}

	s, err := p.StatHolder().Stat(stats.StatAttackPower)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	s.AddModifier(&stats.Modifier{Stat: stats.StatAttackPower, Op: stats.OpMul, Value: 2})

	if got := AttackDamage(p, 5); got != 25 {
		t.Fatalf("expected 25 after ×2 modifier, got %d", got)
	}
}

func TestMitigatedDamage_FloorsAtOne(t *testing.T) {
	p := model.NewPlayer(1, "Defender", model.NewLocation(0, 0, model.FaceRight))

	// Default defense base is 2.
	if got := MitigatedDamage(p, 10); got != 8 {
		t.Fatalf("expected 8, got %d", got)
	}
	if got := MitigatedDamage(p, 1); got != 1 {
		t.Fatalf("damage floors at 1, got %d", got)
	}
}
