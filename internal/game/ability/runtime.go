package ability

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/udisondev/driftblade/internal/data"
	"github.com/udisondev/driftblade/internal/world"
)

// cooldownKey identifies one (owner, ability, slot) cooldown timer.
type cooldownKey struct {
	owner   uint32
	ability string
	slot    SlotID
}

// equipKey identifies one (owner, ability) equip record.
type equipKey struct {
	owner   uint32
	ability string
}

// activeRecord is one live (owner, effect) pair.
type activeRecord struct {
	ownerID uint32
	key     string // Slot.EffectKey
	ow      *Owner
	eff     Effect
	st      *State
}

// Runtime holds every piece of per-owner ability state that must stay
// off the shared templates: cooldown timers, the active-effect table and
// the equipped-set table. One Runtime serves the whole simulation.
//
// The simulation is tick-stepped: a single driver goroutine calls Tick
// and performs all activations, so a slot's activation always completes
// before the same slot can fire again. The mutex protects reads from
// outside the driver.
type Runtime struct {
	spawner world.Spawner
	audio   world.AudioSink
	anim    world.AnimationSink

	mu        sync.Mutex
	nowMs     int64
	cooldowns map[cooldownKey]int64
	active    []*activeRecord
	equipped  map[equipKey]struct{}
}

// NewRuntime creates a runtime over the given world collaborators.
func NewRuntime(spawner world.Spawner, audio world.AudioSink, anim world.AnimationSink) *Runtime {
	return &Runtime{
		spawner:   spawner,
		audio:     audio,
		anim:      anim,
		cooldowns: make(map[cooldownKey]int64),
		equipped:  make(map[equipKey]struct{}),
	}
}

// Equip marks the ability as equipped for ow and applies its passive
// slot exactly once. Re-equipping an already equipped ability is a
// no-op: the passive is never applied twice.
func (rt *Runtime) Equip(ow *Owner, a *Ability) error {
	k := equipKey{ow.ObjectID(), a.ID}

	rt.mu.Lock()
	if _, ok := rt.equipped[k]; ok {
		rt.mu.Unlock()
		slog.Debug("ability already equipped", "ability", a.ID, "owner", ow.ObjectID())
		return nil
	}
	rt.equipped[k] = struct{}{}
	rt.mu.Unlock()

	if err := a.ActivatePassive(ow); err != nil {
		rt.mu.Lock()
		delete(rt.equipped, k)
		rt.mu.Unlock()
		return fmt.Errorf("equip %s: %w", a.ID, err)
	}

	slog.Info("ability equipped", "ability", a.ID, "owner", ow.ObjectID())
	return nil
}

// Unequip disables every active effect the ability holds on ow, clears
// its cooldowns and drops the equip record.
func (rt *Runtime) Unequip(ow *Owner, a *Ability) {
	for _, sl := range a.slots {
		if sl != nil {
			rt.Disable(ow, sl)
		}
	}

	rt.mu.Lock()
	for _, sl := range a.slots {
		if sl != nil {
			delete(rt.cooldowns, cooldownKey{ow.ObjectID(), a.ID, sl.ID})
		}
	}
	delete(rt.equipped, equipKey{ow.ObjectID(), a.ID})
	rt.mu.Unlock()

	slog.Info("ability unequipped", "ability", a.ID, "owner", ow.ObjectID())
}

// activate validates the slot's cooldown, runs its behavior, applies its
// effect and emits its audio/animation signals. An undefined slot is a
// no-op. The slot goes Idle → Activating → Idle within this call.
func (rt *Runtime) activate(ow *Owner, a *Ability, slot SlotID) error {
	sl := a.slots[slot]
	if sl == nil {
		return nil
	}

	ck := cooldownKey{ow.ObjectID(), a.ID, slot}
	rt.mu.Lock()
	if expiry, ok := rt.cooldowns[ck]; ok && rt.nowMs < expiry {
		rt.mu.Unlock()
		return fmt.Errorf("%w: %s/%s", ErrOnCooldown, a.ID, slot)
	}
	rt.mu.Unlock()

	if sl.Behavior != nil {
		if err := sl.Behavior(rt, ow, sl); err != nil {
			return fmt.Errorf("%s/%s behavior: %w", a.ID, slot, err)
		}
	}
	if sl.Effect != nil {
		if err := rt.applyEffect(ow, sl); err != nil {
			return fmt.Errorf("%s/%s effect: %w", a.ID, slot, err)
		}
	}

	if sl.Sound != data.SoundNone {
		rt.audio.PlaySFX(sl.Sound)
	}
	if sl.Trigger != "" {
		rt.anim.SetTrigger(sl.Trigger)
	}

	if sl.CooldownMs > 0 {
		rt.mu.Lock()
		rt.cooldowns[ck] = rt.nowMs + int64(sl.CooldownMs)
		rt.mu.Unlock()
	}
	return nil
}

// applyEffect applies the slot's effect for ow. Immediate effects run
// without a record; continuous and constant effects register a
// per-(owner, effect) record. Re-applying an already active pair only
// refreshes its timer, it never doubles the effect.
func (rt *Runtime) applyEffect(ow *Owner, sl *Slot) error {
	eff := sl.Effect
	if eff.Kind() == EffectImmediate {
		return eff.Apply(ow, &State{})
	}

	rt.mu.Lock()
	if rec := rt.findActive(ow.ObjectID(), sl.EffectKey); rec != nil {
		if sl.DurationMs > 0 {
			rec.st.RemainingMs = sl.DurationMs
		}
		rt.mu.Unlock()
		return nil
	}
	rt.mu.Unlock()

	st := &State{RemainingMs: sl.DurationMs}
	if err := eff.Apply(ow, st); err != nil {
		return err
	}

	rt.mu.Lock()
	rt.active = append(rt.active, &activeRecord{
		ownerID: ow.ObjectID(),
		key:     sl.EffectKey,
		ow:      ow,
		eff:     eff,
		st:      st,
	})
	rt.mu.Unlock()
	return nil
}

// Disable deactivates the slot's effect for ow, reversing whatever the
// effect registered. Idempotent: disabling an inactive (owner, effect)
// pair is a successful no-op, never an error.
func (rt *Runtime) Disable(ow *Owner, sl *Slot) error {
	if sl == nil || sl.Effect == nil {
		return nil
	}

	rt.mu.Lock()
	rec := rt.findActive(ow.ObjectID(), sl.EffectKey)
	if rec == nil {
		rt.mu.Unlock()
		return nil
	}
	rt.removeActive(rec)
	rt.mu.Unlock()

	return rec.eff.Disable(rec.ow, rec.st)
}

// Tick advances the simulation clock by deltaMs: every continuous
// effect is applied exactly once, then timed effects count down and
// expired ones are disabled. Called once per simulation tick by the
// single driver goroutine; duplicate invocation within a tick is the
// driver's bug to prevent.
func (rt *Runtime) Tick(deltaMs int32) {
	rt.mu.Lock()
	rt.nowMs += int64(deltaMs)
	records := make([]*activeRecord, len(rt.active))
	copy(records, rt.active)
	rt.mu.Unlock()

	for _, rec := range records {
		if rec.eff.Kind() != EffectContinuous {
			continue
		}
		if err := rec.eff.Apply(rec.ow, rec.st); err != nil {
			slog.Error("continuous effect apply",
				"effect", rec.eff.Name(),
				"owner", rec.ownerID,
				"err", err)
		}
	}

	var expired []*activeRecord
	rt.mu.Lock()
	n := 0
	for _, rec := range rt.active {
		if rec.st.RemainingMs > 0 {
			rec.st.RemainingMs -= deltaMs
			if rec.st.RemainingMs <= 0 {
				expired = append(expired, rec)
				continue
			}
		}
		rt.active[n] = rec
		n++
	}
	rt.active = rt.active[:n]
	rt.mu.Unlock()

	for _, rec := range expired {
		if err := rec.eff.Disable(rec.ow, rec.st); err != nil {
			slog.Error("effect expiry disable",
				"effect", rec.eff.Name(),
				"owner", rec.ownerID,
				"err", err)
		}
	}
}

// NowMs returns the runtime's simulation clock.
func (rt *Runtime) NowMs() int64 {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.nowMs
}

// IsActive reports whether the slot's effect is active for ownerID.
func (rt *Runtime) IsActive(ownerID uint32, sl *Slot) bool {
	if sl == nil || sl.Effect == nil {
		return false
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.findActive(ownerID, sl.EffectKey) != nil
}

// ActiveCount returns the number of active (owner, effect) pairs for
// ownerID.
func (rt *Runtime) ActiveCount(ownerID uint32) int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	count := 0
	for _, rec := range rt.active {
		if rec.ownerID == ownerID {
			count++
		}
	}
	return count
}

// findActive returns the record for (ownerID, key). Caller holds mu.
func (rt *Runtime) findActive(ownerID uint32, key string) *activeRecord {
	for _, rec := range rt.active {
		if rec.ownerID == ownerID && rec.key == key {
			return rec
		}
	}
	return nil
}

// removeActive drops rec from the active table. Caller holds mu.
func (rt *Runtime) removeActive(rec *activeRecord) {
	for i, r := range rt.active {
		if r == rec {
			rt.active = append(rt.active[:i], rt.active[i+1:]...)
			return
		}
	}
}
