package data

import "fmt"

// ConfigurationError reports an invalid ability/effect/prefab definition.
// Raised during LoadCatalog or ability compilation, always before any
// activation runs, so runtime activation failures are limited to
// owner-state problems.
type ConfigurationError struct {
	Ability string // ability id, empty for catalog-level problems
	Slot    string // slot name, empty when not slot-specific
	Msg     string
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Ability != "" && e.Slot != "":
		return fmt.Sprintf("ability %q slot %q: %s", e.Ability, e.Slot, e.Msg)
	case e.Ability != "":
		return fmt.Sprintf("ability %q: %s", e.Ability, e.Msg)
	default:
		return fmt.Sprintf("catalog: %s", e.Msg)
	}
}
