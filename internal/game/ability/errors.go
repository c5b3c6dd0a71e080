package ability

import "errors"

var (
	// ErrMissingCapability is returned when an owner lacks a component an
	// ability or effect requires (e.g. no stat holder). Fails fast, never
	// a silent no-op.
	ErrMissingCapability = errors.New("owner missing capability")

	// ErrOnCooldown is returned when a slot is reactivated before its
	// cooldown elapsed.
	ErrOnCooldown = errors.New("slot on cooldown")
)
