package eval

import (
	"fmt"

	"github.com/feel-lang/feel/internal/types"
	"github.com/feel-lang/feel/internal/value"
)

// evalFunctionDef builds a closure: Params and Body are captured
// together with the defining Context, so free variables resolve at
// definition site (spec.md §4.5, "Function literal"). A HostBinding
// turns the body into a call through the injected Bridge instead.
func (e *Evaluator) evalFunctionDef(n *types.FunctionDefExpr, ctx *value.Context) value.Value {
	names := make([]string, len(n.Params))
	variadic := false
	for i, p := range n.Params {
		names[i] = p.Name
		if p.Variadic {
			variadic = true
		}
	}

	fn := &value.Function{
		Params:               names,
		Variadic:             variadic,
		RequireInputVariable: n.RequireInputVariable,
	}

	if n.HostBinding != nil {
		binding := n.HostBinding
		fn.Call = func(args []value.Value) value.Value {
			if e.bridge == nil {
				return value.NewError(fmt.Sprintf("no host bridge configured to invoke %s.%s", binding.ClassName, binding.MethodName))
			}
			result, err := e.bridge.Invoke(binding.ClassName, binding.MethodName, binding.ArgTypes, args)
			if err != nil {
				return value.NewError(err.Error())
			}
			return result
		}
		return fn
	}

	body := n.Body
	fn.Call = func(args []value.Value) value.Value {
		return e.Eval(body, bindParams(ctx, names, variadic, args))
	}
	return fn
}

// bindParams layers args onto the closure Context according to Params,
// packing trailing args into a List when the last parameter is variadic.
// Passing a single List argument for a single variadic parameter uses
// that List directly rather than wrapping it again (spec.md §4.5,
// "variadic parameters").
func bindParams(closure *value.Context, names []string, variadic bool, args []value.Value) *value.Context {
	bound := closure
	if !variadic {
		for i, name := range names {
			var v value.Value = value.Null{}
			if i < len(args) {
				v = args[i]
			}
			bound = bound.WithVariable(name, v)
		}
		return bound
	}

	fixed := len(names) - 1
	for i := 0; i < fixed; i++ {
		var v value.Value = value.Null{}
		if i < len(args) {
			v = args[i]
		}
		bound = bound.WithVariable(names[i], v)
	}

	if fixed == 0 && len(args) == 1 {
		if list, ok := args[fixed].(*value.List); ok {
			bound = bound.WithVariable(names[fixed], list)
			return bound
		}
	}

	var rest []value.Value
	if len(args) > fixed {
		rest = args[fixed:]
	}
	bound = bound.WithVariable(names[fixed], value.NewList(rest...))
	return bound
}

// evalPositionalCall resolves Name against the Context's overload list
// and invokes the best match (spec.md §4.5, "Function invocation").
func (e *Evaluator) evalPositionalCall(n *types.PositionalCallExpr, ctx *value.Context) value.Value {
	candidates := ctx.LookupFunctions(n.Name)
	if len(candidates) == 0 {
		return value.NewError(fmt.Sprintf("no function found with name '%s' and %d parameters", n.Name, len(n.Args)))
	}
	return e.invoke(candidates, n.Args, ctx)
}

// evalQualifiedCall invokes a function produced by evaluating Target
// directly — no name lookup, since Target already names a value
// (spec.md §4.5, qualified invocation, e.g. `ctx.f(x)`).
func (e *Evaluator) evalQualifiedCall(n *types.QualifiedCallExpr, ctx *value.Context) value.Value {
	target := e.Eval(n.Target, ctx)
	if value.IsError(target) {
		return target
	}
	fn, ok := target.(*value.Function)
	if !ok {
		return value.NewError(fmt.Sprintf("cannot invoke %s as a function", value.TypeName(target)))
	}
	return e.invoke([]*value.Function{fn}, n.Args, ctx)
}

// invoke evaluates arguments once, picks the overload matching either
// the given names (exact subset of the overload's parameter set) or the
// given positional arity, then calls it. Missing named parameters
// default to Null rather than failing the call (spec.md §4.5).
func (e *Evaluator) invoke(candidates []*value.Function, args []types.Argument, ctx *value.Context) value.Value {
	named := false
	for _, a := range args {
		if a.Name != "" {
			named = true
			break
		}
	}

	values := make([]value.Value, len(args))
	for i, a := range args {
		values[i] = e.Eval(a.Value, ctx)
		if value.IsError(values[i]) {
			return values[i]
		}
	}

	if named {
		return e.invokeNamed(candidates, args, values)
	}
	return e.invokePositional(candidates, values, ctx)
}

func (e *Evaluator) invokeNamed(candidates []*value.Function, args []types.Argument, values []value.Value) value.Value {
	byName := make(map[string]value.Value, len(args))
	for i, a := range args {
		byName[a.Name] = values[i]
	}

	for _, fn := range candidates {
		paramSet := fn.ParamSet()
		matches := true
		for name := range byName {
			if _, ok := paramSet[name]; !ok {
				matches = false
				break
			}
		}
		if !matches {
			continue
		}
		ordered := make([]value.Value, len(fn.Params))
		for i, p := range fn.Params {
			if v, ok := byName[p]; ok {
				ordered[i] = v
			} else {
				ordered[i] = value.Null{}
			}
		}
		return fn.Call(ordered)
	}
	name := ""
	if len(candidates) > 0 {
		name = candidates[0].Name
	}
	return value.NewError(fmt.Sprintf("no function found with name '%s' and %d parameters", name, len(byName)))
}

func (e *Evaluator) invokePositional(candidates []*value.Function, values []value.Value, ctx *value.Context) value.Value {
	if fn := selectByArity(candidates, len(values)); fn != nil {
		return fn.Call(values)
	}

	// A function that reads the implicit input variable can be called
	// with one fewer argument than its parameter count; the current
	// input is prepended automatically (spec.md §4.5, "implicit input
	// variable").
	for _, fn := range candidates {
		if !fn.RequireInputVariable {
			continue
		}
		if fn.Arity() != len(values)+1 && !(fn.Variadic && fn.Arity() <= len(values)+1) {
			continue
		}
		withInput := append([]value.Value{ctx.Input()}, values...)
		return fn.Call(withInput)
	}

	name := ""
	if len(candidates) > 0 {
		name = candidates[0].Name
	}
	return value.NewError(fmt.Sprintf("no function found with name '%s' and %d parameters", name, len(values)))
}

func selectByArity(candidates []*value.Function, n int) *value.Function {
	for _, fn := range candidates {
		if !fn.Variadic && fn.Arity() == n {
			return fn
		}
	}
	for _, fn := range candidates {
		if fn.Variadic && n >= fn.Arity()-1 {
			return fn
		}
	}
	return nil
}
