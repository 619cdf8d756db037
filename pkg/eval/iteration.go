package eval

import (
	"github.com/feel-lang/feel/internal/types"
	"github.com/feel-lang/feel/internal/value"
)

// enumerate expands Iterators into every Context binding of their
// Cartesian product, nesting left-to-right: the first Iterator varies
// slowest and its bound variable is visible to every Iterator after it
// (spec.md §4.1, "for"/"some"/"every" share this enumeration). A source
// that isn't a List is treated as a one-element list, matching FEEL's
// singleton-coercion rule.
func (e *Evaluator) enumerate(iterators []types.Iterator, ctx *value.Context) ([]*value.Context, value.Value) {
	if len(iterators) == 0 {
		return []*value.Context{ctx}, nil
	}

	it := iterators[0]
	listVal := e.Eval(it.List, ctx)
	if value.IsError(listVal) {
		return nil, listVal
	}

	var items []value.Value
	if list, ok := listVal.(*value.List); ok {
		items = list.Items()
	} else {
		items = []value.Value{listVal}
	}

	var out []*value.Context
	for _, item := range items {
		bound := ctx.WithVariable(it.Name, item)
		rest, errVal := e.enumerate(iterators[1:], bound)
		if errVal != nil {
			return nil, errVal
		}
		out = append(out, rest...)
	}
	return out, nil
}

// evalSome is the existential quantifier: true if Pred holds for at
// least one binding, false if it holds for none, Null if indeterminate
// (spec.md §4.1, "some").
func (e *Evaluator) evalSome(n *types.SomeExpr, ctx *value.Context) value.Value {
	bindings, errVal := e.enumerate(n.Iterators, ctx)
	if errVal != nil {
		return errVal
	}

	sawFalse, sawOther := false, false
	for _, bound := range bindings {
		v := e.Eval(n.Pred, bound)
		if b, ok := v.(value.Boolean); ok {
			if bool(b) {
				return value.Boolean(true)
			}
			sawFalse = true
			continue
		}
		sawOther = true
	}
	if !sawOther && sawFalse {
		return value.Boolean(false)
	}
	if len(bindings) == 0 {
		return value.Boolean(false)
	}
	return value.Null{}
}

// evalEvery is the universal quantifier: true if Pred holds for every
// binding, false if it fails for at least one, Null if indeterminate.
func (e *Evaluator) evalEvery(n *types.EveryExpr, ctx *value.Context) value.Value {
	bindings, errVal := e.enumerate(n.Iterators, ctx)
	if errVal != nil {
		return errVal
	}

	sawTrue, sawOther := false, false
	for _, bound := range bindings {
		v := e.Eval(n.Pred, bound)
		if b, ok := v.(value.Boolean); ok {
			if !bool(b) {
				return value.Boolean(false)
			}
			sawTrue = true
			continue
		}
		sawOther = true
	}
	if len(bindings) == 0 {
		return value.Boolean(true)
	}
	if !sawOther && sawTrue {
		return value.Boolean(true)
	}
	return value.Null{}
}

// evalFor builds a List by evaluating Result once per binding, in
// enumeration order. Per-binding errors are kept in place rather than
// aborting the whole comprehension (spec.md §4.1, "for").
func (e *Evaluator) evalFor(n *types.ForExpr, ctx *value.Context) value.Value {
	bindings, errVal := e.enumerate(n.Iterators, ctx)
	if errVal != nil {
		return errVal
	}

	items := make([]value.Value, len(bindings))
	for i, bound := range bindings {
		items[i] = e.Eval(n.Result, bound)
	}
	return value.NewList(items...)
}

// evalFilter keeps the elements of List for which Pred, evaluated with
// the element bound under the name `item` (and, when the element is
// itself a Context, with that Context's entries overlaid so its fields
// resolve unqualified), is true. A non-boolean Pred result drops the
// element, with a warning, mirroring `if`'s treatment of a non-boolean
// condition (spec.md §4.1, "filter").
func (e *Evaluator) evalFilter(n *types.FilterExpr, ctx *value.Context) value.Value {
	listVal := e.Eval(n.List, ctx)
	if value.IsError(listVal) {
		return listVal
	}
	list, ok := listVal.(*value.List)
	if !ok {
		e.warn("filter", "source did not evaluate to a list")
		return value.Null{}
	}

	var kept []value.Value
	for _, item := range list.Items() {
		predVal := e.Eval(n.Pred, filterItemContext(ctx, item))
		b, ok := predVal.(value.Boolean)
		if !ok {
			e.warn("filter", "predicate did not evaluate to a boolean")
			continue
		}
		if bool(b) {
			kept = append(kept, item)
		}
	}
	return value.NewList(kept...)
}

// filterItemContext binds item under the name `item` for Pred. When item
// is itself a Context (e.g. filtering a list of records with
// `persons[age > 18]`), its entries are overlaid too so fields resolve
// unqualified, per internal/types.FilterExpr's doc.
func filterItemContext(ctx *value.Context, item value.Value) *value.Context {
	bound := ctx.WithVariable("item", item)
	if record, ok := item.(*value.Context); ok {
		bound = bound.Compose(record)
	}
	return bound
}
