package eval

import (
	"fmt"

	"github.com/feel-lang/feel/internal/types"
	"github.com/feel-lang/feel/internal/value"
)

// evalArith dispatches binary arithmetic on the left operand's variant,
// then validates the right, per the table in spec.md §4.3. Any
// combination not enumerated there yields Null with a warning — this is
// the `withValOrNull` policy that keeps a single ill-typed cell from
// failing an entire decision table (spec.md §7).
func (e *Evaluator) evalArith(n *types.ArithExpr, ctx *value.Context) value.Value {
	left := e.Eval(n.Left, ctx)
	if value.IsError(left) {
		return left
	}
	right := e.Eval(n.Right, ctx)
	if value.IsError(right) {
		return right
	}

	result, ok := e.arith(n.Op, left, right)
	if !ok {
		e.warn("arithmetic", fmt.Sprintf("cannot apply %s to %s and %s", n.Op, value.TypeName(left), value.TypeName(right)))
		return value.Null{}
	}
	return result
}

func (e *Evaluator) evalNegate(n *types.NegateExpr, ctx *value.Context) value.Value {
	operand := e.Eval(n.Operand, ctx)
	if value.IsError(operand) {
		return operand
	}
	switch v := operand.(type) {
	case value.Number:
		return value.NewNumber(v.Dec.Neg())
	case value.YearMonthDuration:
		return v.Negate()
	case value.DayTimeDuration:
		return v.Negate()
	default:
		e.warn("arithmetic", fmt.Sprintf("cannot negate %s", value.TypeName(operand)))
		return value.Null{}
	}
}

// arith returns (result, true) on a matched rule, or (nil, false) when the
// combination isn't in the table (caller suppresses to Null+warning) —
// except division by zero, which is always a hard Error (spec.md §4.3).
func (e *Evaluator) arith(op types.ArithOp, left, right value.Value) (value.Value, bool) {
	switch l := left.(type) {
	case value.Number:
		return arithNumber(op, l, right)
	case value.String:
		if op == types.ArithAdd {
			if r, ok := right.(value.String); ok {
				return l + r, true
			}
		}
		return nil, false
	case value.LocalTime:
		return arithLocalTime(op, l, right)
	case value.Time:
		return arithTime(op, l, right)
	case value.LocalDateTime:
		return arithLocalDateTime(op, l, right)
	case value.DateTime:
		return arithDateTime(op, l, right)
	case value.YearMonthDuration:
		return arithYearMonthDuration(op, l, right)
	case value.DayTimeDuration:
		return arithDayTimeDuration(op, l, right)
	default:
		return nil, false
	}
}

func arithNumber(op types.ArithOp, l value.Number, right value.Value) (value.Value, bool) {
	switch op {
	case types.ArithMul:
		switch r := right.(type) {
		case value.Number:
			return value.NewNumber(l.Dec.Mul(r.Dec)), true
		case value.YearMonthDuration:
			return r.MulNumber(l.Dec.IntPart()), true
		case value.DayTimeDuration:
			f, _ := l.Dec.Float64()
			return r.MulNumber(f), true
		}
		return nil, false
	}

	r, ok := right.(value.Number)
	if !ok {
		return nil, false
	}
	switch op {
	case types.ArithAdd:
		return value.NewNumber(l.Dec.Add(r.Dec)), true
	case types.ArithSub:
		return value.NewNumber(l.Dec.Sub(r.Dec)), true
	case types.ArithDiv:
		if r.Dec.IsZero() {
			return value.NewError("division by zero"), true
		}
		return value.NewNumber(l.Dec.DivRound(r.Dec, 34)), true
	case types.ArithPow:
		exp := value.NumberFromInt(r.Dec.IntPart())
		return value.NewNumber(l.Dec.Pow(exp.Dec)), true
	default:
		return nil, false
	}
}

func arithLocalTime(op types.ArithOp, l value.LocalTime, right value.Value) (value.Value, bool) {
	if op == types.ArithSub {
		if r, ok := right.(value.LocalTime); ok {
			return l.Sub(r), true
		}
	}
	dur, ok := right.(value.DayTimeDuration)
	if !ok {
		return nil, false
	}
	switch op {
	case types.ArithAdd:
		return l.AddDuration(dur), true
	case types.ArithSub:
		return l.AddDuration(dur.Negate()), true
	default:
		return nil, false
	}
}

func arithTime(op types.ArithOp, l value.Time, right value.Value) (value.Value, bool) {
	if op == types.ArithSub {
		if r, ok := right.(value.Time); ok {
			return l.Sub(r), true
		}
	}
	dur, ok := right.(value.DayTimeDuration)
	if !ok {
		return nil, false
	}
	switch op {
	case types.ArithAdd:
		return l.AddDuration(dur), true
	case types.ArithSub:
		return l.AddDuration(dur.Negate()), true
	default:
		return nil, false
	}
}

func arithLocalDateTime(op types.ArithOp, l value.LocalDateTime, right value.Value) (value.Value, bool) {
	if op == types.ArithSub {
		if r, ok := right.(value.LocalDateTime); ok {
			return l.Sub(r), true
		}
	}
	switch r := right.(type) {
	case value.YearMonthDuration:
		switch op {
		case types.ArithAdd:
			return l.AddYearMonth(r), true
		case types.ArithSub:
			return l.AddYearMonth(r.Negate()), true
		}
	case value.DayTimeDuration:
		switch op {
		case types.ArithAdd:
			return l.AddDayTime(r), true
		case types.ArithSub:
			return l.AddDayTime(r.Negate()), true
		}
	}
	return nil, false
}

func arithDateTime(op types.ArithOp, l value.DateTime, right value.Value) (value.Value, bool) {
	if op == types.ArithSub {
		if r, ok := right.(value.DateTime); ok {
			return l.Sub(r), true
		}
	}
	switch r := right.(type) {
	case value.YearMonthDuration:
		switch op {
		case types.ArithAdd:
			return l.AddYearMonth(r), true
		case types.ArithSub:
			return l.AddYearMonth(r.Negate()), true
		}
	case value.DayTimeDuration:
		switch op {
		case types.ArithAdd:
			return l.AddDayTime(r), true
		case types.ArithSub:
			return l.AddDayTime(r.Negate()), true
		}
	}
	return nil, false
}

func arithYearMonthDuration(op types.ArithOp, l value.YearMonthDuration, right value.Value) (value.Value, bool) {
	switch r := right.(type) {
	case value.YearMonthDuration:
		switch op {
		case types.ArithAdd:
			return l.Add(r), true
		case types.ArithSub:
			return l.Sub(r), true
		}
	case value.LocalDateTime:
		if op == types.ArithAdd {
			return r.AddYearMonth(l), true
		}
	case value.DateTime:
		if op == types.ArithAdd {
			return r.AddYearMonth(l), true
		}
	case value.Number:
		switch op {
		case types.ArithMul:
			return l.MulNumber(r.Dec.IntPart()), true
		case types.ArithDiv:
			if r.Dec.IsZero() {
				return value.NewError("division by zero"), true
			}
			f, _ := r.Dec.Float64()
			return l.DivNumber(f), true
		}
	}
	return nil, false
}

func arithDayTimeDuration(op types.ArithOp, l value.DayTimeDuration, right value.Value) (value.Value, bool) {
	switch r := right.(type) {
	case value.DayTimeDuration:
		switch op {
		case types.ArithAdd:
			return l.Add(r), true
		case types.ArithSub:
			return l.Sub(r), true
		}
	case value.Time:
		if op == types.ArithAdd {
			return r.AddDuration(l), true
		}
	case value.LocalTime:
		if op == types.ArithAdd {
			return r.AddDuration(l), true
		}
	case value.LocalDateTime:
		if op == types.ArithAdd {
			return r.AddDayTime(l), true
		}
	case value.DateTime:
		if op == types.ArithAdd {
			return r.AddDayTime(l), true
		}
	case value.Number:
		switch op {
		case types.ArithMul:
			f, _ := r.Dec.Float64()
			return l.MulNumber(f), true
		case types.ArithDiv:
			if r.Dec.IsZero() {
				return value.NewError("division by zero"), true
			}
			f, _ := r.Dec.Float64()
			return l.DivNumber(f), true
		}
	}
	return nil, false
}
