package value

import (
	"sort"
	"strings"
)

// DefaultInputVariableName is the implicit-input key used by unary tests
// when a Context doesn't override it via an `inputVariableName` binding
// (spec.md §3.2).
const DefaultInputVariableName = "cellInput"

// layer is one frame of bindings. Contexts are an immutable stack of
// layers rather than a single mutable map: composing `A + B` prepends B's
// layers ahead of A's, so lookups see B's bindings first without copying
// either side (spec.md §9, "avoid deep copying per lookup").
type layer struct {
	vars  map[string]Value
	funcs map[string][]*Function
}

// Context is both the FEEL lexical environment (spec.md §3.2) and the
// Context Value variant (spec.md §3.1) — a context literal evaluates to
// exactly this type. Context values are immutable: every mutating-looking
// operation returns a new Context sharing the old one's layers.
type Context struct {
	layers []layer
}

// NewContext returns an empty Context.
func NewContext() *Context { return &Context{} }

func (c *Context) Kind() Kind { return KindContext }

// Equals compares Contexts structurally by their flattened variable
// bindings; function overload sets are not part of FEEL equality.
func (c *Context) Equals(v Value) bool {
	other, ok := v.(*Context)
	if !ok {
		return false
	}
	a, b := c.Variables(), other.Variables()
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || IsError(av) || IsError(bv) || !av.Equals(bv) {
			return false
		}
	}
	return true
}

func (c *Context) String() string {
	names := c.variableNames()
	parts := make([]string, len(names))
	for i, n := range names {
		v, _ := c.LookupVariable(n)
		parts[i] = n + ": " + v.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// WithVariable returns a new Context with name bound to v, shadowing any
// existing binding of that name.
func (c *Context) WithVariable(name string, v Value) *Context {
	return &Context{layers: append([]layer{{vars: map[string]Value{name: v}}}, c.layers...)}
}

// WithFunction returns a new Context with fn appended to name's overload
// set. The existing overload set (if any) is carried into the new top
// layer so repeated WithFunction calls for the same name accumulate
// overloads instead of shadowing them (spec.md §4.5, "functions support
// overloading by arity and by parameter-name set").
func (c *Context) WithFunction(name string, fn *Function) *Context {
	overloads := append(append([]*Function{}, c.LookupFunctions(name)...), fn)
	return &Context{layers: append([]layer{{funcs: map[string][]*Function{name: overloads}}}, c.layers...)}
}

// Compose implements the spec's "A + B" right-biased overlay: other's
// bindings are consulted before the receiver's.
func (c *Context) Compose(other *Context) *Context {
	if other == nil {
		return c
	}
	merged := make([]layer, 0, len(c.layers)+len(other.layers))
	merged = append(merged, other.layers...)
	merged = append(merged, c.layers...)
	return &Context{layers: merged}
}

// LookupVariable resolves name against the nearest layer that binds it.
func (c *Context) LookupVariable(name string) (Value, bool) {
	for _, l := range c.layers {
		if l.vars == nil {
			continue
		}
		if v, ok := l.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// LookupFunctions returns the overload set for name from the nearest layer
// that declares any overloads for it.
func (c *Context) LookupFunctions(name string) []*Function {
	for _, l := range c.layers {
		if l.funcs == nil {
			continue
		}
		if fs, ok := l.funcs[name]; ok {
			return fs
		}
	}
	return nil
}

// Variables flattens the Context into a single name→Value map, nearest
// layer winning. Used for Equals and String.
func (c *Context) Variables() map[string]Value {
	out := make(map[string]Value)
	for i := len(c.layers) - 1; i >= 0; i-- {
		for k, v := range c.layers[i].vars {
			out[k] = v
		}
	}
	return out
}

func (c *Context) variableNames() []string {
	vars := c.Variables()
	names := make([]string, 0, len(vars))
	for n := range vars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// InputVariableName returns the configured implicit-input key: the value
// bound to `inputVariableName` if present and a String, otherwise the
// default (spec.md §3.2, §9 "Implicit input").
func (c *Context) InputVariableName() string {
	if v, ok := c.LookupVariable("inputVariableName"); ok {
		if s, ok := v.(String); ok {
			return string(s)
		}
	}
	return DefaultInputVariableName
}

// Input returns the implicit input value currently bound, or Null if
// unbound.
func (c *Context) Input() Value {
	if v, ok := c.LookupVariable(c.InputVariableName()); ok {
		return v
	}
	return Null{}
}

// WithInput binds the implicit input under the configured key.
func (c *Context) WithInput(v Value) *Context {
	return c.WithVariable(c.InputVariableName(), v)
}
