package eval

import (
	"testing"

	"github.com/feel-lang/feel/internal/types"
	"github.com/feel-lang/feel/internal/value"
	"github.com/feel-lang/feel/pkg/warn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(s string) *types.NumberLit { return &types.NumberLit{Value: s} }

func TestEvalArithmetic(t *testing.T) {
	e := New()
	result := e.Eval(&types.ArithExpr{Op: types.ArithAdd, Left: num("1"), Right: num("2")}, value.NewContext())
	n, ok := result.(value.Number)
	require.True(t, ok)
	assert.Equal(t, "3", n.String())
}

func TestEvalDivisionByZeroIsHardError(t *testing.T) {
	e := New()
	result := e.Eval(&types.ArithExpr{Op: types.ArithDiv, Left: num("1"), Right: num("0")}, value.NewContext())
	assert.True(t, value.IsError(result))
}

func TestEvalArithmeticMismatchIsNullWithWarning(t *testing.T) {
	var captured []warn.Record
	e := New(WithWarnSink(&recordingSink{&captured}))

	result := e.Eval(&types.ArithExpr{
		Op:    types.ArithAdd,
		Left:  num("1"),
		Right: &types.StringLit{Value: "x"},
	}, value.NewContext())

	assert.Equal(t, value.Null{}, result)
	require.Len(t, captured, 1)
	assert.Equal(t, "arithmetic", captured[0].Type)
}

func TestEvalIfWithNonBooleanConditionFallsToElse(t *testing.T) {
	e := New()
	result := e.Eval(&types.IfExpr{
		Cond: num("1"),
		Then: &types.StringLit{Value: "a"},
		Else: &types.StringLit{Value: "b"},
	}, value.NewContext())

	assert.Equal(t, value.String("b"), result)
}

func TestEvalContextLiteralOrdering(t *testing.T) {
	e := New()
	ctxLit := &types.ContextLit{Entries: []types.ContextEntry{
		{Key: "a", Value: num("1")},
		{Key: "b", Value: &types.ArithExpr{Op: types.ArithAdd, Left: &types.RefExpr{Names: []string{"a"}}, Right: num("2")}},
	}}
	result := e.Eval(ctxLit, value.NewContext())

	ctx, ok := result.(*value.Context)
	require.True(t, ok)
	b, ok := ctx.LookupVariable("b")
	require.True(t, ok)
	assert.Equal(t, value.NumberFromInt(3), b)
}

func TestEvalForComprehension(t *testing.T) {
	e := New()
	forExpr := &types.ForExpr{
		Iterators: []types.Iterator{{
			Name: "x",
			List: &types.ListLit{Items: []types.Expr{num("1"), num("2"), num("3")}},
		}},
		Result: &types.ArithExpr{Op: types.ArithMul, Left: &types.RefExpr{Names: []string{"x"}}, Right: num("2")},
	}
	result := e.Eval(forExpr, value.NewContext())

	list, ok := result.(*value.List)
	require.True(t, ok)
	require.Equal(t, 3, list.Len())
	v, _ := list.Get(2)
	assert.Equal(t, value.NumberFromInt(6), v)
}

func TestEvalQualifiedFunctionCall(t *testing.T) {
	e := New()
	fnDef := &types.ContextLit{Entries: []types.ContextEntry{{
		Key: "f",
		Value: &types.FunctionDefExpr{
			Params: []types.ParamDecl{{Name: "x"}},
			Body:   &types.ArithExpr{Op: types.ArithAdd, Left: &types.RefExpr{Names: []string{"x"}}, Right: num("1")},
		},
	}}}
	call := &types.QualifiedCallExpr{
		Target: &types.PathExpr{Target: fnDef, Name: "f"},
		Args:   []types.Argument{{Value: num("4")}},
	}

	result := e.Eval(call, value.NewContext())
	assert.Equal(t, value.NumberFromInt(5), result)
}

func TestEvalVariadicFunctionPacksArgs(t *testing.T) {
	e := New()
	fnDef := &types.FunctionDefExpr{
		Params: []types.ParamDecl{{Name: "rest", Variadic: true}},
		Body:   &types.RefExpr{Names: []string{"rest"}},
	}
	fnVal := e.Eval(fnDef, value.NewContext())
	fn, ok := fnVal.(*value.Function)
	require.True(t, ok)

	result := fn.Call([]value.Value{value.NumberFromInt(1), value.NumberFromInt(2)})
	list, ok := result.(*value.List)
	require.True(t, ok)
	assert.Equal(t, 2, list.Len())
}

func TestEvalUnaryTestComparison(t *testing.T) {
	e := New()
	ctx := value.NewContext().WithInput(value.NumberFromInt(5))
	result := e.Eval(&types.UnaryTestExpr{Op: types.UTGreater, Operand: num("3")}, ctx)
	assert.Equal(t, value.Boolean(true), result)
}

func TestEvalIntervalTest(t *testing.T) {
	e := New()
	ctx := value.NewContext().WithInput(value.NumberFromInt(5))
	interval := &types.IntervalTestExpr{
		Start:      num("1"),
		End:        num("10"),
		StartBound: types.BoundClosed,
		EndBound:   types.BoundClosed,
	}
	assert.Equal(t, value.Boolean(true), e.Eval(interval, ctx))
}

func TestEvalSomeAndEvery(t *testing.T) {
	e := New()
	list := &types.ListLit{Items: []types.Expr{num("1"), num("2"), num("3")}}

	some := &types.SomeExpr{
		Iterators: []types.Iterator{{Name: "x", List: list}},
		Pred:      &types.CompareExpr{Op: types.CmpGreater, Left: &types.RefExpr{Names: []string{"x"}}, Right: num("2")},
	}
	assert.Equal(t, value.Boolean(true), e.Eval(some, value.NewContext()))

	every := &types.EveryExpr{
		Iterators: []types.Iterator{{Name: "x", List: list}},
		Pred:      &types.CompareExpr{Op: types.CmpGreater, Left: &types.RefExpr{Names: []string{"x"}}, Right: num("0")},
	}
	assert.Equal(t, value.Boolean(true), e.Eval(every, value.NewContext()))
}

// recordingSink captures warnings for assertions instead of discarding them.
type recordingSink struct{ records *[]warn.Record }

func (r *recordingSink) Warn(rec warn.Record) {
	*r.records = append(*r.records, rec)
}
