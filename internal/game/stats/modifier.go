package stats

// ModifierOp defines how a modifier combines with a stat.
type ModifierOp int8

const (
	OpAdd ModifierOp = iota // additive bonus (e.g. +25 maxHP)
	OpMul                   // multiplicative bonus (e.g. ×1.1 moveSpeed)
)

// Modifier is a single adjustment to one stat, produced by an effect.
// Immutable once created. Removal is by pointer identity, so two
// modifiers with identical fields coexist and are removed independently.
type Modifier struct {
	Stat   StatID
	Op     ModifierOp
	Value  float64
	Source string // name of the effect that produced it, for logs
}
