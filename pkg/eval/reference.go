package eval

import (
	"fmt"

	"github.com/feel-lang/feel/internal/types"
	"github.com/feel-lang/feel/internal/value"
)

// evalRef resolves a (possibly multi-word) name against the Context,
// then walks any further Names as nested field access (spec.md §4.1,
// "Name" / "Path expression"). A first segment that fails to resolve
// to a variable is looked up as a function name: if it has exactly one
// overload, that Function value is the result; otherwise it is an Error.
func (e *Evaluator) evalRef(n *types.RefExpr, ctx *value.Context) value.Value {
	if len(n.Names) == 0 {
		return value.NewError("empty name reference")
	}

	head := n.Names[0]
	v, ok := ctx.LookupVariable(head)
	if !ok {
		if fns := ctx.LookupFunctions(head); len(fns) == 1 {
			v = fns[0]
		} else {
			return value.NewError(fmt.Sprintf("name %q is not defined", head))
		}
	}

	for _, name := range n.Names[1:] {
		v = accessField(v, name)
		if value.IsError(v) {
			return v
		}
	}
	return v
}

// evalPath implements `target.name` navigation.
func (e *Evaluator) evalPath(n *types.PathExpr, ctx *value.Context) value.Value {
	target := e.Eval(n.Target, ctx)
	if value.IsError(target) {
		return target
	}
	return accessField(target, n.Name)
}

// accessField looks up name on v: on a Context it's a variable lookup;
// on a List it maps the access over every element (spec.md §4.1, "path
// expressions distribute over lists"); anything else is an Error.
func accessField(v value.Value, name string) value.Value {
	switch t := v.(type) {
	case *value.Context:
		if field, ok := t.LookupVariable(name); ok {
			return field
		}
		if fns := t.LookupFunctions(name); len(fns) == 1 {
			return fns[0]
		}
		return value.NewError(fmt.Sprintf("context has no entry %q", name))
	case *value.List:
		items := t.Items()
		mapped := make([]value.Value, len(items))
		for i, item := range items {
			mapped[i] = accessField(item, name)
		}
		return value.NewList(mapped...)
	default:
		return value.NewError(fmt.Sprintf("cannot access %q on %s", name, value.TypeName(v)))
	}
}
