package axiom

import (
	"soulcaster/internal/effect"
	"soulcaster/internal/grid"
	"soulcaster/internal/soul"
	"soulcaster/internal/targeting"
)

// FunctionKind tags the effect an axiom applies to each target.
type FunctionKind uint8

const (
	FuncEmpty FunctionKind = iota
	FuncDash
	FuncTeleport
	FuncLinearDash
	FuncDiscardSoul
	FuncApplyEffect
	FuncCollide
	FuncMessageLog
	FuncStealSouls
	FuncCharm
	// Declared for species tables; these resolve to nothing yet.
	FuncHeal
	FuncSummon
	FuncTransform
	FuncSwap
	FuncPossess
	FuncMeltdown
	FuncGrapple
)

// Function is a tagged effect-application. Only the fields that belong to
// Kind are meaningful.
type Function struct {
	Kind FunctionKind

	Delta    grid.Point // Dash
	Dest     grid.Point // Teleport
	Distance int        // LinearDash

	Token soul.TokenID // DiscardSoul
	Slot  int          // DiscardSoul

	Effect effect.Kind // ApplyEffect, Charm
	Stacks int         // ApplyEffect, Charm

	Message string // MessageLog
}

func Empty() Function                { return Function{Kind: FuncEmpty} }
func Dash(dx, dy int) Function       { return Function{Kind: FuncDash, Delta: grid.Point{X: dx, Y: dy}} }
func Teleport(x, y int) Function     { return Function{Kind: FuncTeleport, Dest: grid.Point{X: x, Y: y}} }
func LinearDash(dist int) Function   { return Function{Kind: FuncLinearDash, Distance: dist} }
func Collide() Function              { return Function{Kind: FuncCollide} }
func MessageLog(msg string) Function { return Function{Kind: FuncMessageLog, Message: msg} }
func StealSouls() Function           { return Function{Kind: FuncStealSouls} }

// DiscardSoul discards token from the caster's held slot and draws anew.
func DiscardSoul(token soul.TokenID, slot int) Function {
	return Function{Kind: FuncDiscardSoul, Token: token, Slot: slot}
}

// ApplyEffect stacks n of kind onto the target.
func ApplyEffect(kind effect.Kind, n int) Function {
	return Function{Kind: FuncApplyEffect, Effect: kind, Stacks: n}
}

// Charm converts the target to the caster's faction until its n Charm
// stacks decay, one per turn; then it returns to its own faction.
func Charm(n int) Function {
	return Function{Kind: FuncCharm, Effect: effect.KindCharm, Stacks: n}
}

var functionNames = map[FunctionKind]string{
	FuncEmpty:       "empty",
	FuncDash:        "dash",
	FuncTeleport:    "teleport",
	FuncLinearDash:  "linear-dash",
	FuncDiscardSoul: "discard-soul",
	FuncApplyEffect: "apply-effect",
	FuncCollide:     "collide",
	FuncMessageLog:  "message-log",
	FuncStealSouls:  "steal-souls",
	FuncCharm:       "charm",
	FuncHeal:        "heal",
	FuncSummon:      "summon",
	FuncTransform:   "transform",
	FuncSwap:        "swap",
	FuncPossess:     "possess",
	FuncMeltdown:    "meltdown",
	FuncGrapple:     "grapple",
}

func (k FunctionKind) String() string {
	if n, ok := functionNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseFunctionKind maps a config name back to its FunctionKind.
func ParseFunctionKind(name string) (FunctionKind, bool) {
	for k, n := range functionNames {
		if n == name {
			return k, true
		}
	}
	return FuncEmpty, false
}

// Axiom is a castable (Form, Function) pair bound to a soul category.
type Axiom struct {
	Form     targeting.Form
	Function Function
}

// Table holds one axiom per axiom slot, indexed by soul.AxiomIndex.
type Table [4]Axiom

// For returns the axiom a token of category c casts.
func (t *Table) For(c soul.Category) Axiom { return t[soul.AxiomIndex(c)] }
