// Package builtins registers the DMN built-in functions referenced by
// spec.md §4.3/§4.4/§8 as ordinary Function values in a root Context, per
// §4.5/§6's "built-ins are regular Function entries in the root Context's
// function map" rule. Nothing here is part of the evaluator itself — a
// caller wanting them wires Root() into the Context passed to eval.Eval.
package builtins

import "github.com/feel-lang/feel/internal/value"

// Root returns a fresh Context with every built-in function registered
// under its DMN name.
func Root() *value.Context {
	ctx := value.NewContext()
	for _, fn := range numericFunctions() {
		ctx = ctx.WithFunction(fn.Name, fn)
	}
	for _, fn := range stringFunctions() {
		ctx = ctx.WithFunction(fn.Name, fn)
	}
	for _, fn := range listFunctions() {
		ctx = ctx.WithFunction(fn.Name, fn)
	}
	return ctx
}

// flatten normalizes a built-in's variadic arguments: a caller may pass a
// single List (`sum([1,2,3])`) or a flat argument list (`sum(1,2,3)`);
// both arrive here as the raw args slice since built-ins bypass the
// closure parameter binder (spec.md §4.5, variadic single-list
// passthrough applies to built-ins too).
func flatten(args []value.Value) []value.Value {
	if len(args) == 1 {
		if list, ok := args[0].(*value.List); ok {
			return list.Items()
		}
	}
	return args
}
