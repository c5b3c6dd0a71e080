package combat

import (
	"log/slog"

	"github.com/udisondev/driftblade/internal/data"
	"github.com/udisondev/driftblade/internal/model"
	"github.com/udisondev/driftblade/internal/world"
)

// Manager coordinates damage application and death. The audio sink and
// sound table are injected so the model layer never depends on them.
type Manager struct {
	audio  world.AudioSink
	sounds *data.SoundTable
}

// NewManager creates a combat manager.
func NewManager(audio world.AudioSink, sounds *data.SoundTable) *Manager {
	return &Manager{audio: audio, sounds: sounds}
}

// TakeDamage reduces target HP by amount. When HP reaches zero the death
// transition runs exactly once: collision and physics are disabled and
// one death sound, chosen by entity kind through the sound table, is
// dispatched.
func (m *Manager) TakeDamage(attackerID uint32, target *model.Character, amount int32) {
	if target == nil || amount <= 0 {
		return
	}

	target.ReduceCurrentHP(amount)

	slog.Debug("damage taken",
		"attacker", attackerID,
		"target", target.ObjectID(),
		"amount", amount,
		"hp", target.CurrentHP())

	if target.CurrentHP() > 0 {
		return
	}
	if !target.DoDie() {
		return // death already handled
	}

	m.audio.PlaySFX(m.sounds.DeathSound(target.Kind()))
	slog.Info("entity died",
		"target", target.ObjectID(),
		"killer", attackerID,
		"kind", int8(target.Kind()))
}
