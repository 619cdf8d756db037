package eval

import (
	"fmt"

	"github.com/feel-lang/feel/internal/types"
	"github.com/feel-lang/feel/internal/value"
)

// evalUnaryTest compares the Context's implicit input variable against
// Operand using Op (spec.md §4.2). A comparison against an unordered or
// mismatched pair of types is an Error, except for equality, which is
// always well-defined.
func (e *Evaluator) evalUnaryTest(n *types.UnaryTestExpr, ctx *value.Context) value.Value {
	input := ctx.Input()
	operand := e.Eval(n.Operand, ctx)
	if value.IsError(operand) {
		return operand
	}

	if n.Op == types.UTEq {
		return value.Boolean(input.Equals(operand))
	}

	ord, err := compareOrdered(input, operand)
	if err != nil {
		return value.NewError(err.Error())
	}
	switch n.Op {
	case types.UTLess:
		return value.Boolean(ord < 0)
	case types.UTLessEq:
		return value.Boolean(ord <= 0)
	case types.UTGreater:
		return value.Boolean(ord > 0)
	case types.UTGreaterEq:
		return value.Boolean(ord >= 0)
	default:
		return value.NewError(fmt.Sprintf("unsupported unary test operator: %v", n.Op))
	}
}

// evalIntervalTest checks that the implicit input falls within [Start,
// End], honoring each bound's open/closed kind independently (spec.md
// §4.2, interval unary tests).
func (e *Evaluator) evalIntervalTest(n *types.IntervalTestExpr, ctx *value.Context) value.Value {
	input := ctx.Input()

	start := e.Eval(n.Start, ctx)
	if value.IsError(start) {
		return start
	}
	end := e.Eval(n.End, ctx)
	if value.IsError(end) {
		return end
	}

	lo, err := compareOrdered(input, start)
	if err != nil {
		return value.NewError(err.Error())
	}
	hi, err := compareOrdered(input, end)
	if err != nil {
		return value.NewError(err.Error())
	}

	lowerOK := lo > 0
	if n.StartBound == types.BoundClosed {
		lowerOK = lo >= 0
	}
	upperOK := hi < 0
	if n.EndBound == types.BoundClosed {
		upperOK = hi <= 0
	}
	return value.Boolean(lowerOK && upperOK)
}
