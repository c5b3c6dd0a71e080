package ability

import "github.com/udisondev/driftblade/internal/data"

// effectRegistry maps effect name → factory function.
// Populated by init() functions in individual effect files.
var effectRegistry = map[string]func(params map[string]string) Effect{}

// RegisterEffect registers an effect factory by name.
// Called from init() in each effect implementation file.
func RegisterEffect(name string, factory func(params map[string]string) Effect) {
	effectRegistry[name] = factory
}

// CreateEffect creates an effect by name using the registered factory.
// Unknown names are a configuration problem, surfaced before activation.
func CreateEffect(name string, params map[string]string) (Effect, error) {
	factory, ok := effectRegistry[name]
	if !ok {
		return nil, &data.ConfigurationError{Msg: "unknown effect type: " + name}
	}
	return factory(params), nil
}

func init() {
	RegisterEffect("Heal", NewHealEffect)
	RegisterEffect("Regen", NewRegenEffect)
	RegisterEffect("DamageOverTime", NewDamageOverTimeEffect)
	RegisterEffect("StatBoost", NewStatBoostEffect)
}
