package eval

import (
	"fmt"

	"github.com/feel-lang/feel/internal/types"
	"github.com/feel-lang/feel/internal/value"
)

// evalCompare implements spec.md §4.1's comparison table. Unlike
// arithmetic, a type mismatch here is a hard Error: comparisons are
// almost always written directly as unary tests, where a silently-wrong
// Boolean would misfire a decision rule.
func (e *Evaluator) evalCompare(n *types.CompareExpr, ctx *value.Context) value.Value {
	left := e.Eval(n.Left, ctx)
	if value.IsError(left) {
		return left
	}
	right := e.Eval(n.Right, ctx)
	if value.IsError(right) {
		return right
	}

	if n.Op == types.CmpEq || n.Op == types.CmpNeq {
		_, leftNull := left.(value.Null)
		_, rightNull := right.(value.Null)
		if left.Kind() != right.Kind() && !leftNull && !rightNull {
			return value.NewError(fmt.Sprintf("cannot compare %s and %s", value.TypeName(left), value.TypeName(right)))
		}
	}

	switch n.Op {
	case types.CmpEq:
		return value.Boolean(left.Equals(right))
	case types.CmpNeq:
		return value.Boolean(!left.Equals(right))
	}

	ord, err := compareOrdered(left, right)
	if err != nil {
		return value.NewError(err.Error())
	}

	switch n.Op {
	case types.CmpLess:
		return value.Boolean(ord < 0)
	case types.CmpLessEq:
		return value.Boolean(ord <= 0)
	case types.CmpGreater:
		return value.Boolean(ord > 0)
	case types.CmpGreaterEq:
		return value.Boolean(ord >= 0)
	default:
		return value.NewError(fmt.Sprintf("unsupported comparison operator: %v", n.Op))
	}
}

// compareOrdered returns left<=>right for the ordered types named in
// spec.md §4.2 ("inequality-eligible"). Mixed or unordered types fail.
func compareOrdered(left, right value.Value) (int, error) {
	if !value.IsOrdered(left) || !value.IsOrdered(right) {
		return 0, fmt.Errorf("cannot compare %s and %s", value.TypeName(left), value.TypeName(right))
	}

	// Same TypeName doesn't imply the same Go type: LocalTime/Time both
	// report "time", LocalDateTime/DateTime both report "date time". Cmp
	// requires matching concrete variants, not just matching type names.
	switch l := left.(type) {
	case value.Number:
		if r, ok := right.(value.Number); ok {
			return l.Cmp(r), nil
		}
	case value.Date:
		if r, ok := right.(value.Date); ok {
			return l.Cmp(r), nil
		}
	case value.LocalTime:
		if r, ok := right.(value.LocalTime); ok {
			return l.Cmp(r), nil
		}
	case value.Time:
		if r, ok := right.(value.Time); ok {
			return l.Cmp(r), nil
		}
	case value.LocalDateTime:
		if r, ok := right.(value.LocalDateTime); ok {
			return l.Cmp(r), nil
		}
	case value.DateTime:
		if r, ok := right.(value.DateTime); ok {
			return l.Cmp(r), nil
		}
	case value.YearMonthDuration:
		if r, ok := right.(value.YearMonthDuration); ok {
			return l.Cmp(r), nil
		}
	case value.DayTimeDuration:
		if r, ok := right.(value.DayTimeDuration); ok {
			return l.Cmp(r), nil
		}
	}
	return 0, fmt.Errorf("cannot compare %s and %s", value.TypeName(left), value.TypeName(right))
}
