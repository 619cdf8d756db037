package eval

import (
	"fmt"

	"github.com/feel-lang/feel/internal/types"
	"github.com/feel-lang/feel/internal/value"
	"github.com/feel-lang/feel/pkg/hostfunc"
	"github.com/feel-lang/feel/pkg/warn"
)

// Evaluator walks a FEEL expression tree against a Context, producing a
// Value (spec.md §4.1). It carries no mutable state of its own — Context
// is threaded explicitly through every recursive call.
type Evaluator struct {
	sink   warn.Sink
	bridge *hostfunc.Bridge
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithWarnSink overrides the default discard sink (spec.md §6, "Warning
// sink").
func WithWarnSink(sink warn.Sink) Option {
	return func(e *Evaluator) { e.sink = sink }
}

// WithHostBridge installs the host-function bridge used for
// HostBinding-backed function definitions (spec.md §4.5).
func WithHostBridge(b *hostfunc.Bridge) Option {
	return func(e *Evaluator) { e.bridge = b }
}

// New builds an Evaluator. With no options, warnings are discarded and
// host-function invocation always fails with a descriptive Error.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{sink: warn.Discard}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eval is the core's single external operation (spec.md §6):
// evaluate(exp, ctx) → Value.
func (e *Evaluator) Eval(exp types.Expr, ctx *value.Context) value.Value {
	if exp == nil {
		return value.NewError("cannot evaluate nil expression")
	}

	switch node := exp.(type) {
	// Literals.
	case *types.NumberLit:
		return e.evalNumberLit(node)
	case *types.BoolLit:
		return value.Boolean(node.Value)
	case *types.StringLit:
		return value.String(node.Value)
	case *types.NullLit:
		return value.Null{}
	case *types.TemporalLit:
		return e.evalTemporalLit(node)
	case *types.ListLit:
		return e.evalListLit(node, ctx)
	case *types.ContextLit:
		return e.evalContextLit(node, ctx)

	// Unary tests.
	case *types.UnaryTestExpr:
		return e.evalUnaryTest(node, ctx)
	case *types.IntervalTestExpr:
		return e.evalIntervalTest(node, ctx)

	// Arithmetic.
	case *types.ArithExpr:
		return e.evalArith(node, ctx)
	case *types.NegateExpr:
		return e.evalNegate(node, ctx)

	// Comparison.
	case *types.CompareExpr:
		return e.evalCompare(node, ctx)

	// Combinators.
	case *types.AtLeastOneExpr:
		return e.evalAtLeastOne(node, ctx)
	case *types.AllExpr:
		return e.evalAll(node, ctx)
	case *types.NotExpr:
		return e.evalNot(node, ctx)

	// Control flow.
	case *types.IfExpr:
		return e.evalIf(node, ctx)
	case *types.InExpr:
		return e.evalIn(node, ctx)
	case *types.InstanceOfExpr:
		return e.evalInstanceOf(node, ctx)

	// Naming.
	case *types.RefExpr:
		return e.evalRef(node, ctx)
	case *types.PathExpr:
		return e.evalPath(node, ctx)

	// Iteration.
	case *types.SomeExpr:
		return e.evalSome(node, ctx)
	case *types.EveryExpr:
		return e.evalEvery(node, ctx)
	case *types.ForExpr:
		return e.evalFor(node, ctx)
	case *types.FilterExpr:
		return e.evalFilter(node, ctx)

	// Functions.
	case *types.FunctionDefExpr:
		return e.evalFunctionDef(node, ctx)
	case *types.PositionalCallExpr:
		return e.evalPositionalCall(node, ctx)
	case *types.QualifiedCallExpr:
		return e.evalQualifiedCall(node, ctx)

	default:
		return value.NewError(fmt.Sprintf("unsupported expression node: %T", exp))
	}
}

func (e *Evaluator) warn(kind, message string) {
	e.sink.Warn(warn.Record{Type: kind, Message: message})
}

func (e *Evaluator) evalNumberLit(n *types.NumberLit) value.Value {
	num, err := value.NumberFromString(n.Value)
	if err != nil {
		return value.NewError(fmt.Sprintf("invalid number literal %q: %v", n.Value, err))
	}
	return num
}

func (e *Evaluator) evalTemporalLit(n *types.TemporalLit) value.Value {
	switch n.Kind {
	case types.KindDate:
		d, err := value.ParseDate(n.Text)
		if err != nil {
			return value.NewError(err.Error())
		}
		return d
	case types.KindLocalTime, types.KindTime:
		v, err := value.ParseTimeOfDay(n.Text)
		if err != nil {
			return value.NewError(err.Error())
		}
		return v
	case types.KindLocalDateTime, types.KindDateTime:
		v, err := value.ParseDateTime(n.Text)
		if err != nil {
			return value.NewError(err.Error())
		}
		return v
	case types.KindYearMonthDuration:
		d, err := value.ParseYearMonthDuration(n.Text)
		if err != nil {
			return value.NewError(err.Error())
		}
		return d
	case types.KindDayTimeDuration:
		d, err := value.ParseDayTimeDuration(n.Text)
		if err != nil {
			return value.NewError(err.Error())
		}
		return d
	default:
		return value.NewError("unknown temporal literal kind")
	}
}

func (e *Evaluator) evalListLit(n *types.ListLit, ctx *value.Context) value.Value {
	items := make([]value.Value, len(n.Items))
	for i, item := range n.Items {
		// Item errors are preserved in place: some/every/filter need to
		// inspect elements individually (spec.md §4.1, "List literal").
		items[i] = e.Eval(item, ctx)
	}
	return value.NewList(items...)
}

func (e *Evaluator) evalContextLit(n *types.ContextLit, ctx *value.Context) value.Value {
	// Folds entries left-to-right over an empty Context composed with the
	// ambient Context for lookup; later entries see earlier ones
	// (spec.md §4.1, "Context literal").
	built := value.NewContext()
	lookup := ctx.Compose(built)

	for _, entry := range n.Entries {
		v := e.Eval(entry.Value, lookup)
		if fn, ok := v.(*value.Function); ok {
			if fn.Name == "" {
				fn.Name = entry.Key
			}
			built = built.WithFunction(entry.Key, fn)
		} else {
			built = built.WithVariable(entry.Key, v)
		}
		lookup = ctx.Compose(built)
	}
	return built
}
