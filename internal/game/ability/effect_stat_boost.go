package ability

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/udisondev/driftblade/internal/game/stats"
)

// StatBoostEffect is a constant stat adjustment: it registers one stat
// modifier in Apply and removes it in Disable.
// Params: "stat" (e.g. "maxHP"), "type" ("ADD"/"MUL"), "value" (float64).
type StatBoostEffect struct {
	stat  stats.StatID
	op    stats.ModifierOp
	value float64
}

func NewStatBoostEffect(params map[string]string) Effect {
	value, _ := strconv.ParseFloat(params["value"], 64)
	op := stats.OpAdd
	if strings.EqualFold(params["type"], "MUL") {
		op = stats.OpMul
	}
	return &StatBoostEffect{stat: stats.StatID(params["stat"]), op: op, value: value}
}

func (e *StatBoostEffect) Name() string     { return "StatBoost" }
func (e *StatBoostEffect) Kind() EffectKind { return EffectConstant }

func (e *StatBoostEffect) Apply(ow *Owner, st *State) error {
	holder, err := ow.Stats()
	if err != nil {
		return err
	}
	s, err := holder.Stat(e.stat)
	if err != nil {
		return err
	}

	m := &stats.Modifier{Stat: e.stat, Op: e.op, Value: e.value, Source: e.Name()}
	s.AddModifier(m)
	st.Mods = append(st.Mods, m)

	slog.Debug("stat boost applied",
		"stat", e.stat,
		"value", e.value,
		"owner", ow.ObjectID())
	return nil
}

func (e *StatBoostEffect) Disable(ow *Owner, st *State) error {
	holder, err := ow.Stats()
	if err != nil {
		return err
	}
	s, err := holder.Stat(e.stat)
	if err != nil {
		return err
	}

	for _, m := range st.Mods {
		s.RemoveModifier(m)
	}
	st.Mods = nil

	slog.Debug("stat boost removed", "stat", e.stat, "owner", ow.ObjectID())
	return nil
}
