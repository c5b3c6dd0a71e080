package stats

import "sync"

// StatID identifies one named numeric stat.
type StatID string

const (
	StatMaxHP       StatID = "maxHP"
	StatMoveSpeed   StatID = "moveSpeed"
	StatAttackPower StatID = "attackPower"
	StatDefense     StatID = "defense"
	StatJumpPower   StatID = "jumpPower"
)

// Stat is a named numeric value plus its currently active modifiers.
//
// Resolution order is fixed: all additive modifiers are summed with the
// base value first, then every multiplicative modifier is applied to
// that sum. Insertion order never changes the result for modifiers of
// the same op.
//
// Only the simulation-tick driver adds/removes modifiers; other code
// paths read EffectiveValue. The RWMutex keeps snapshot reads safe.
type Stat struct {
	mu   sync.RWMutex
	id   StatID
	base float64
	mods []*Modifier
}

// ID returns the stat identifier.
func (s *Stat) ID() StatID { return s.id }

// Base returns the base value the stat was registered with.
func (s *Stat) Base() float64 { return s.base }

// AddModifier appends m to the active set.
func (s *Stat) AddModifier(m *Modifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mods = append(s.mods, m)
}

// RemoveModifier removes m by identity. Returns false if m is not active.
func (s *Stat) RemoveModifier(m *Modifier) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.mods {
		if existing == m {
			s.mods = append(s.mods[:i], s.mods[i+1:]...)
			return true
		}
	}
	return false
}

// EffectiveValue computes (base + Σ additive) × Π multiplicative.
// Pure function of the base value and the active set.
func (s *Stat) EffectiveValue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := s.base
	for _, m := range s.mods {
		if m.Op == OpAdd {
			sum += m.Value
		}
	}
	for _, m := range s.mods {
		if m.Op == OpMul {
			sum *= m.Value
		}
	}
	return sum
}

// ModifierCount returns the number of active modifiers.
func (s *Stat) ModifierCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mods)
}
