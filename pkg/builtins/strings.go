package builtins

import (
	"github.com/feel-lang/feel/internal/value"
)

func stringFunctions() []*value.Function {
	return []*value.Function{
		{
			Name:   "string length",
			Params: []string{"string"},
			Call: func(args []value.Value) value.Value {
				s, ok := args[0].(value.String)
				if !ok {
					return value.NewError("string length: argument must be a string")
				}
				return value.NumberFromInt(int64(len([]rune(string(s)))))
			},
		},
		{
			Name:   "substring",
			Params: []string{"string", "start position"},
			Call: func(args []value.Value) value.Value {
				return substringCall(args, nil)
			},
		},
		{
			Name:   "substring",
			Params: []string{"string", "start position", "length"},
			Call: func(args []value.Value) value.Value {
				n, ok := args[2].(value.Number)
				if !ok {
					return value.NewError("substring: length must be a number")
				}
				length := int(n.Dec.IntPart())
				return substringCall(args[:2], &length)
			},
		},
	}
}

// substringCall implements FEEL's 1-based, negative-from-end substring
// indexing (spec.md §8 built-in catalogue).
func substringCall(args []value.Value, length *int) value.Value {
	s, ok := args[0].(value.String)
	if !ok {
		return value.NewError("substring: first argument must be a string")
	}
	startNum, ok := args[1].(value.Number)
	if !ok {
		return value.NewError("substring: start position must be a number")
	}
	runes := []rune(string(s))
	start := int(startNum.Dec.IntPart())
	if start < 0 {
		start = len(runes) + start + 1
	}
	if start < 1 {
		start = 1
	}
	begin := start - 1
	if begin > len(runes) {
		return value.String("")
	}

	end := len(runes)
	if length != nil {
		end = begin + *length
		if end > len(runes) {
			end = len(runes)
		}
	}
	if end < begin {
		return value.String("")
	}
	return value.String(string(runes[begin:end]))
}
