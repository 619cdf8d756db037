package builtins

import "github.com/feel-lang/feel/internal/value"

func listFunctions() []*value.Function {
	return []*value.Function{
		{
			Name:   "list contains",
			Params: []string{"list", "element"},
			Call: func(args []value.Value) value.Value {
				list, ok := args[0].(*value.List)
				if !ok {
					return value.NewError("list contains: first argument must be a list")
				}
				for _, item := range list.Items() {
					if !value.IsError(item) && item.Equals(args[1]) {
						return value.Boolean(true)
					}
				}
				return value.Boolean(false)
			},
		},
		{
			Name:     "append",
			Params:   []string{"list", "items"},
			Variadic: true,
			Call: func(args []value.Value) value.Value {
				if len(args) == 0 {
					return value.NewError("append: expects at least a list argument")
				}
				list, ok := args[0].(*value.List)
				if !ok {
					return value.NewError("append: first argument must be a list")
				}
				combined := append([]value.Value(nil), list.Items()...)
				combined = append(combined, args[1:]...)
				return value.NewList(combined...)
			},
		},
	}
}
