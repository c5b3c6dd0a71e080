package stats

import (
	"errors"
	"fmt"
)

// ErrStatNotFound is returned when a stat id was not registered at
// holder construction. The stat set is closed per entity type, not
// dynamically extensible.
var ErrStatNotFound = errors.New("stat not found")

// Holder owns the full set of stats for one entity. Created at entity
// initialization with the entity's fixed set of stat ids, destroyed
// with the entity. The only place modifiers are added or removed.
type Holder struct {
	stats map[StatID]*Stat
}

// NewHolder creates a holder with the given base values. The id set is
// fixed from this point on.
func NewHolder(base map[StatID]float64) *Holder {
	h := &Holder{stats: make(map[StatID]*Stat, len(base))}
	for id, v := range base {
		h.stats[id] = &Stat{id: id, base: v}
	}
	return h
}

// Stat returns the pre-registered stat for id.
func (h *Holder) Stat(id StatID) (*Stat, error) {
	s, ok := h.stats[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStatNotFound, id)
	}
	return s, nil
}

// EffectiveValue is shorthand for Stat(id).EffectiveValue().
func (h *Holder) EffectiveValue(id StatID) (float64, error) {
	s, err := h.Stat(id)
	if err != nil {
		return 0, err
	}
	return s.EffectiveValue(), nil
}

// Has reports whether id is registered.
func (h *Holder) Has(id StatID) bool {
	_, ok := h.stats[id]
	return ok
}
