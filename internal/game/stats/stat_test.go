package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveValue_AddThenMul(t *testing.T) {
	s := &Stat{id: StatAttackPower, base: 10}

	s.AddModifier(&Modifier{Stat: StatAttackPower, Op: OpAdd, Value: 5})
	s.AddModifier(&Modifier{Stat: StatAttackPower, Op: OpMul, Value: 2})

	// (10 + 5) × 2: additive modifiers are summed with the base first,
	// multiplicative modifiers apply to that sum.
	assert.InDelta(t, 30.0, s.EffectiveValue(), 1e-9)
}

func TestEffectiveValue_OrderIndependence(t *testing.T) {
	mods := []*Modifier{
		{Op: OpAdd, Value: 5},
		{Op: OpAdd, Value: -2},
		{Op: OpMul, Value: 1.5},
		{Op: OpAdd, Value: 7},
		{Op: OpMul, Value: 0.8},
	}

	// Insert the same set in several permutations; the effective value
	// must not depend on insertion order.
	permutations := [][]int{
		{0, 1, 2, 3, 4},
		{4, 3, 2, 1, 0},
		{2, 4, 0, 1, 3},
		{3, 0, 4, 2, 1},
	}

	var want float64
	for i, perm := range permutations {
		s := &Stat{id: StatMoveSpeed, base: 10}
		for _, idx := range perm {
			s.AddModifier(mods[idx])
		}
		got := s.EffectiveValue()
		if i == 0 {
			want = got
			continue
		}
		assert.InDelta(t, want, got, 1e-9, "permutation %v", perm)
	}
}

func TestAddRemoveModifier_RoundTrip(t *testing.T) {
	s := &Stat{id: StatDefense, base: 4}
	before := s.EffectiveValue()

	m := &Modifier{Stat: StatDefense, Op: OpMul, Value: 1.25}
	s.AddModifier(m)
	assert.NotEqual(t, before, s.EffectiveValue())

	require.True(t, s.RemoveModifier(m))
	assert.Equal(t, before, s.EffectiveValue(), "remove must restore the exact prior value")
	assert.False(t, s.RemoveModifier(m), "second remove finds nothing")
}

func TestRemoveModifier_ByIdentity(t *testing.T) {
	s := &Stat{id: StatMaxHP, base: 100}

	// Two modifiers with identical fields coexist and are removed
	// independently.
	m1 := &Modifier{Stat: StatMaxHP, Op: OpAdd, Value: 25}
	m2 := &Modifier{Stat: StatMaxHP, Op: OpAdd, Value: 25}
	s.AddModifier(m1)
	s.AddModifier(m2)
	assert.InDelta(t, 150.0, s.EffectiveValue(), 1e-9)

	require.True(t, s.RemoveModifier(m1))
	assert.InDelta(t, 125.0, s.EffectiveValue(), 1e-9)
	assert.Equal(t, 1, s.ModifierCount())

	require.True(t, s.RemoveModifier(m2))
	assert.InDelta(t, 100.0, s.EffectiveValue(), 1e-9)
}

func TestHolder_ClosedStatSet(t *testing.T) {
	h := NewHolder(map[StatID]float64{
		StatMaxHP:     100,
		StatMoveSpeed: 6,
	})

	s, err := h.Stat(StatMaxHP)
	require.NoError(t, err)
	assert.Equal(t, StatMaxHP, s.ID())
	assert.True(t, h.Has(StatMoveSpeed))

	_, err = h.Stat(StatJumpPower)
	require.ErrorIs(t, err, ErrStatNotFound)

	_, err = h.EffectiveValue("bogus")
	require.ErrorIs(t, err, ErrStatNotFound)
}

func TestHolder_EffectiveValue(t *testing.T) {
	h := NewHolder(map[StatID]float64{StatJumpPower: 12})

	s, err := h.Stat(StatJumpPower)
	require.NoError(t, err)
	s.AddModifier(&Modifier{Stat: StatJumpPower, Op: OpAdd, Value: 3})

	v, err := h.EffectiveValue(StatJumpPower)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, v, 1e-9)
}
