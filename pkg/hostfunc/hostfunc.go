// Package hostfunc gives the abstract host-function bridge described in
// spec.md §4.5 a concrete Go shape. The core evaluator is otherwise pure;
// this is its one injected impure seam (spec.md §9, "isolate it behind a
// small injected interface").
package hostfunc

import (
	"fmt"

	"github.com/feel-lang/feel/internal/value"
)

// ClassNotFoundError is returned by Bridge.Invoke when the ClassResolver
// fails to resolve the requested name.
type ClassNotFoundError struct{ ClassName string }

func (e *ClassNotFoundError) Error() string {
	return fmt.Sprintf("fail to load class %s", e.ClassName)
}

// MethodNotFoundError is returned by Bridge.Invoke when the MethodResolver
// fails to resolve the requested name and argument-type signature.
type MethodNotFoundError struct {
	ClassName  string
	MethodName string
}

func (e *MethodNotFoundError) Error() string {
	return fmt.Sprintf("fail to invoke %s.%s", e.ClassName, e.MethodName)
}

// ClassResolver resolves a host class/type by name.
type ClassResolver interface {
	ResolveClass(name string) (any, error)
}

// MethodResolver resolves a method on a resolved host class by name and
// declared FEEL argument-type names.
type MethodResolver interface {
	ResolveMethod(class any, methodName string, argTypes []string) (Method, error)
}

// Method is an invocable, already-resolved host method. It receives
// host-native argument representations (already unpacked by a
// ValueMapper) and returns a host-native result or an error.
type Method func(args []any) (any, error)

// ValueMapper converts between FEEL values and host-native
// representations. Concrete platform bindings (reflection over a JVM,
// .NET, or Go struct registry) are outside this spec — only this pair of
// operations is contracted (spec.md §6).
type ValueMapper interface {
	ToVal(native any) value.Value
	UnpackVal(v value.Value) any
}

// Bridge wires a ClassResolver, MethodResolver and ValueMapper into the
// five-step invocation spec.md §4.5 describes.
type Bridge struct {
	Classes ClassResolver
	Methods MethodResolver
	Mapper  ValueMapper
}

// Invoke performs the host-function call. Any failure is returned as a
// human-readable error to be wrapped in a FEEL Error value by the caller;
// Invoke itself never panics.
func (b *Bridge) Invoke(className, methodName string, argTypes []string, args []value.Value) (value.Value, error) {
	class, err := b.Classes.ResolveClass(className)
	if err != nil {
		return nil, &ClassNotFoundError{ClassName: className}
	}

	method, err := b.Methods.ResolveMethod(class, methodName, argTypes)
	if err != nil {
		return nil, &MethodNotFoundError{ClassName: className, MethodName: methodName}
	}

	native := make([]any, len(args))
	for i, a := range args {
		native[i] = b.Mapper.UnpackVal(a)
	}

	result, err := method(native)
	if err != nil {
		return nil, fmt.Errorf("fail to invoke %s.%s: %w", className, methodName, err)
	}

	return b.Mapper.ToVal(result), nil
}
