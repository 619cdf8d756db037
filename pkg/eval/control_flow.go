package eval

import (
	"github.com/feel-lang/feel/internal/types"
	"github.com/feel-lang/feel/internal/value"
)

// evalIf implements the `if ... then ... else ...` expression. A
// non-Boolean condition doesn't propagate as an Error — it's treated as
// false, with a warning, so a single malformed guard doesn't abort an
// entire decision (spec.md §7).
func (e *Evaluator) evalIf(n *types.IfExpr, ctx *value.Context) value.Value {
	cond := e.Eval(n.Cond, ctx)
	if value.IsError(cond) {
		return cond
	}

	b, ok := cond.(value.Boolean)
	if !ok {
		e.warn("if", "condition did not evaluate to a boolean")
		return e.Eval(n.Else, ctx)
	}
	if bool(b) {
		return e.Eval(n.Then, ctx)
	}
	return e.Eval(n.Else, ctx)
}

// evalIn evaluates Probe, binds it as the Context's implicit input
// variable, then evaluates Test (typically a unary test) against that
// binding — this is how `x in [1..10]` desugars (spec.md §4.1, "in").
func (e *Evaluator) evalIn(n *types.InExpr, ctx *value.Context) value.Value {
	probe := e.Eval(n.Probe, ctx)
	if value.IsError(probe) {
		return probe
	}
	return e.Eval(n.Test, ctx.WithInput(probe))
}

// evalInstanceOf reports whether Target's runtime variant matches
// TypeName, using the canonical names from spec.md §4.4.
func (e *Evaluator) evalInstanceOf(n *types.InstanceOfExpr, ctx *value.Context) value.Value {
	v := e.Eval(n.Target, ctx)
	if value.IsError(v) {
		return v
	}
	return value.Boolean(value.TypeName(v) == n.TypeName)
}
