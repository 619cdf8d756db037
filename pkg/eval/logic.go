package eval

import (
	"fmt"

	"github.com/feel-lang/feel/internal/types"
	"github.com/feel-lang/feel/internal/value"
)

// evalAtLeastOne implements FEEL's three-valued "or": true if any operand
// is true, false if every operand is false, Null otherwise (spec.md §4.1,
// §9). Evaluation stops at the first true only: a non-boolean operand
// does not stop it, since a later true outweighs an earlier Error or Null.
func (e *Evaluator) evalAtLeastOne(n *types.AtLeastOneExpr, ctx *value.Context) value.Value {
	sawFalse := false
	sawOther := false
	for _, operand := range n.Operands {
		v := e.Eval(operand, ctx)
		switch b := v.(type) {
		case value.Boolean:
			if bool(b) {
				return value.Boolean(true)
			}
			sawFalse = true
		default:
			sawOther = true
		}
	}
	if !sawOther && sawFalse {
		return value.Boolean(false)
	}
	return value.Null{}
}

// evalAll implements FEEL's three-valued "and": false if any operand is
// false, true if every operand is true, Null otherwise.
func (e *Evaluator) evalAll(n *types.AllExpr, ctx *value.Context) value.Value {
	sawTrue := false
	sawOther := false
	for _, operand := range n.Operands {
		v := e.Eval(operand, ctx)
		switch b := v.(type) {
		case value.Boolean:
			if !bool(b) {
				return value.Boolean(false)
			}
			sawTrue = true
		default:
			sawOther = true
		}
	}
	if !sawOther && sawTrue {
		return value.Boolean(true)
	}
	return value.Null{}
}

// evalNot negates a Boolean; any other operand (including Null) yields
// Null with a warning, matching arithmetic's and `if`'s treatment of a
// non-boolean operand (spec.md §7).
func (e *Evaluator) evalNot(n *types.NotExpr, ctx *value.Context) value.Value {
	v := e.Eval(n.Operand, ctx)
	if value.IsError(v) {
		return v
	}
	if b, ok := v.(value.Boolean); ok {
		return value.Boolean(!bool(b))
	}
	e.warn("not", fmt.Sprintf("operand did not evaluate to a boolean (got %s)", value.TypeName(v)))
	return value.Null{}
}
