// Command feel is a manual smoke-test harness over the public eval.Eval
// entry point. It is not part of the core contract: FEEL has no lexer or
// parser in this module (out of scope per spec.md §1), so there is no
// expression text to read — instead it runs a handful of ASTs built
// directly from the worked examples, the way a unit test would, and
// prints what Eval returns for each.
package main

import (
	"flag"
	"fmt"

	"github.com/feel-lang/feel/internal/types"
	"github.com/feel-lang/feel/pkg/builtins"
	"github.com/feel-lang/feel/pkg/eval"
	"github.com/feel-lang/feel/pkg/warn"
	"github.com/sirupsen/logrus"
)

func main() {
	verbose := flag.Bool("v", false, "log suppressed-failure warnings")
	flag.Parse()

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	var sink warn.Sink = warn.Discard
	if *verbose {
		sink = warn.NewLogrusSink(logger)
	}

	e := eval.New(eval.WithWarnSink(sink))
	root := builtins.Root()

	for _, scenario := range scenarios() {
		result := e.Eval(scenario.expr, root)
		fmt.Printf("%-40s => %s\n", scenario.name, result.String())
	}
}

type scenario struct {
	name string
	expr types.Expr
}

// scenarios reproduces the worked examples from spec.md §8 as literal
// ASTs, since there is no parser in this module to build them from text.
func scenarios() []scenario {
	// round up(.5*(1030.8/48.2)/5, 0) + 1030.8/48.2
	roundArg := &types.ArithExpr{
		Op: types.ArithDiv,
		Left: &types.ArithExpr{
			Op: types.ArithMul,
			Left: &types.NumberLit{Value: "0.5"},
			Right: &types.ArithExpr{
				Op:    types.ArithDiv,
				Left:  &types.NumberLit{Value: "1030.8"},
				Right: &types.NumberLit{Value: "48.2"},
			},
		},
		Right: &types.NumberLit{Value: "5"},
	}
	worked := &types.ArithExpr{
		Op: types.ArithAdd,
		Left: &types.PositionalCallExpr{
			Name: "round up",
			Args: []types.Argument{
				{Value: roundArg},
				{Value: &types.NumberLit{Value: "0"}},
			},
		},
		Right: &types.ArithExpr{
			Op:    types.ArithDiv,
			Left:  &types.NumberLit{Value: "1030.8"},
			Right: &types.NumberLit{Value: "48.2"},
		},
	}

	// if 1 then "a" else "b"  ->  "b" (non-boolean condition)
	ifExpr := &types.IfExpr{
		Cond: &types.NumberLit{Value: "1"},
		Then: &types.StringLit{Value: "a"},
		Else: &types.StringLit{Value: "b"},
	}

	// {a: 1, b: a + 2}.b  ->  3
	ctxExpr := &types.PathExpr{
		Target: &types.ContextLit{
			Entries: []types.ContextEntry{
				{Key: "a", Value: &types.NumberLit{Value: "1"}},
				{Key: "b", Value: &types.ArithExpr{
					Op:    types.ArithAdd,
					Left:  &types.RefExpr{Names: []string{"a"}},
					Right: &types.NumberLit{Value: "2"},
				}},
			},
		},
		Name: "b",
	}

	// for x in [1,2,3] return x * @"P1Y"  ->  [P1Y, P2Y, P3Y]
	forExpr := &types.ForExpr{
		Iterators: []types.Iterator{{
			Name: "x",
			List: &types.ListLit{Items: []types.Expr{
				&types.NumberLit{Value: "1"},
				&types.NumberLit{Value: "2"},
				&types.NumberLit{Value: "3"},
			}},
		}},
		Result: &types.ArithExpr{
			Op:    types.ArithMul,
			Left:  &types.RefExpr{Names: []string{"x"}},
			Right: &types.TemporalLit{Kind: types.KindYearMonthDuration, Text: "P1Y"},
		},
	}

	// 1/0 -> Error
	divByZero := &types.ArithExpr{
		Op:    types.ArithDiv,
		Left:  &types.NumberLit{Value: "1"},
		Right: &types.NumberLit{Value: "0"},
	}

	// {f: function(x) x+1}.f(4) -> 5
	qualified := &types.QualifiedCallExpr{
		Target: &types.PathExpr{
			Target: &types.ContextLit{
				Entries: []types.ContextEntry{{
					Key: "f",
					Value: &types.FunctionDefExpr{
						Params: []types.ParamDecl{{Name: "x"}},
						Body: &types.ArithExpr{
							Op:    types.ArithAdd,
							Left:  &types.RefExpr{Names: []string{"x"}},
							Right: &types.NumberLit{Value: "1"},
						},
					},
				}},
			},
			Name: "f",
		},
		Args: []types.Argument{{Value: &types.NumberLit{Value: "4"}}},
	}

	return []scenario{
		{"round up(.5*(1030.8/48.2)/5,0)+...", worked},
		{`if 1 then "a" else "b"`, ifExpr},
		{"{a:1,b:a+2}.b", ctxExpr},
		{"for x in [1,2,3] return x*P1Y", forExpr},
		{"1/0", divByZero},
		{"{f:function(x) x+1}.f(4)", qualified},
	}
}
