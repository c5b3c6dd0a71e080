package ability

import "github.com/udisondev/driftblade/internal/game/stats"

// EffectKind is the temporal contract of an effect.
type EffectKind int8

const (
	// EffectImmediate performs its work once in Apply; no persistent
	// record is created.
	EffectImmediate EffectKind = iota

	// EffectContinuous is re-applied every simulation tick by the
	// runtime until disabled: Apply is the per-tick recurring mutation.
	EffectContinuous

	// EffectConstant performs its work once in Apply and stays logically
	// active until Disable reverses it.
	EffectConstant
)

func (k EffectKind) String() string {
	switch k {
	case EffectImmediate:
		return "immediate"
	case EffectContinuous:
		return "continuous"
	case EffectConstant:
		return "constant"
	}
	return "unknown"
}

// State is the per-(owner, effect) runtime record. It lives in the
// Runtime's active table, never on the effect itself: effect instances
// are shared immutable configuration, active for many owners at once.
type State struct {
	// RemainingMs counts down to automatic disable; <= 0 means the
	// effect stays until explicitly disabled.
	RemainingMs int32

	// Mods holds the stat modifiers this pair has registered, so Disable
	// can remove exactly them by identity.
	Mods []*stats.Modifier
}

// Effect is a polymorphic effect definition. Implementations hold only
// configuration; all per-owner state goes through the State record.
//
// Disable is idempotent at the runtime level: the runtime drops the
// (owner, effect) record on the first call and treats later calls as
// successful no-ops.
type Effect interface {
	Name() string
	Kind() EffectKind
	Apply(ow *Owner, st *State) error
	Disable(ow *Owner, st *State) error
}
