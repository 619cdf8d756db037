// Package eval implements the FEEL evaluator: the recursive dispatcher
// from AST node kind to Value, threading the Context implicitly (spec.md
// §4.1). Evaluation is total — Eval never panics and never returns a Go
// error; every failure surfaces as a Value::Error or Value::Null per the
// two-tier policy in spec.md §7.
//
// The evaluator is pure and single-threaded over immutable inputs (spec.md
// §5): the only impure edge is host-function invocation, reached through
// the injected pkg/hostfunc.Bridge, and the warning side channel, reached
// through the injected pkg/warn.Sink. Both are safe to share across
// concurrent Eval calls provided each call gets its own Context.
package eval
