package builtins

import (
	"github.com/feel-lang/feel/internal/value"
)

func numericFunctions() []*value.Function {
	return []*value.Function{
		roundFn("round up", func(n value.Number, scale int32) value.Number {
			return value.NewNumber(n.Dec.RoundUp(scale))
		}),
		roundFn("round down", func(n value.Number, scale int32) value.Number {
			return value.NewNumber(n.Dec.RoundDown(scale))
		}),
		roundFn("round half up", func(n value.Number, scale int32) value.Number {
			return value.NewNumber(n.Dec.Round(scale))
		}),
		{Name: "sum", Params: []string{"numbers"}, Variadic: true, Call: sumCall},
		{Name: "mean", Params: []string{"numbers"}, Variadic: true, Call: meanCall},
		{Name: "max", Params: []string{"numbers"}, Variadic: true, Call: maxCall},
		{Name: "min", Params: []string{"numbers"}, Variadic: true, Call: minCall},
	}
}

// roundFn builds one of the three DMN rounding built-ins: `name(n, scale)`
// rounds n to scale decimal places using round. A non-Number/Number
// argument pair yields an Error rather than Null, since these are called
// directly (not from arithmetic's soft-failure path).
func roundFn(name string, round func(n value.Number, scale int32) value.Number) *value.Function {
	return &value.Function{
		Name:   name,
		Params: []string{"n", "scale"},
		Call: func(args []value.Value) value.Value {
			if len(args) != 2 {
				return value.NewError(name + ": expects exactly 2 arguments")
			}
			n, ok := args[0].(value.Number)
			if !ok {
				return value.NewError(name + ": first argument must be a number")
			}
			scaleNum, ok := args[1].(value.Number)
			if !ok {
				return value.NewError(name + ": second argument must be a number")
			}
			return round(n, int32(scaleNum.Dec.IntPart()))
		},
	}
}

func asNumbers(items []value.Value) ([]value.Number, value.Value) {
	nums := make([]value.Number, len(items))
	for i, it := range items {
		n, ok := it.(value.Number)
		if !ok {
			return nil, value.NewError("expected a list of numbers")
		}
		nums[i] = n
	}
	return nums, nil
}

func sumCall(args []value.Value) value.Value {
	nums, errVal := asNumbers(flatten(args))
	if errVal != nil {
		return errVal
	}
	total := value.NumberFromInt(0)
	for _, n := range nums {
		total = value.NewNumber(total.Dec.Add(n.Dec))
	}
	return total
}

func meanCall(args []value.Value) value.Value {
	nums, errVal := asNumbers(flatten(args))
	if errVal != nil {
		return errVal
	}
	if len(nums) == 0 {
		return value.Null{}
	}
	total := value.NumberFromInt(0)
	for _, n := range nums {
		total = value.NewNumber(total.Dec.Add(n.Dec))
	}
	return value.NewNumber(total.Dec.DivRound(value.NumberFromInt(int64(len(nums))).Dec, 34))
}

func maxCall(args []value.Value) value.Value {
	nums, errVal := asNumbers(flatten(args))
	if errVal != nil {
		return errVal
	}
	if len(nums) == 0 {
		return value.Null{}
	}
	best := nums[0]
	for _, n := range nums[1:] {
		if n.Cmp(best) > 0 {
			best = n
		}
	}
	return best
}

func minCall(args []value.Value) value.Value {
	nums, errVal := asNumbers(flatten(args))
	if errVal != nil {
		return errVal
	}
	if len(nums) == 0 {
		return value.Null{}
	}
	best := nums[0]
	for _, n := range nums[1:] {
		if n.Cmp(best) < 0 {
			best = n
		}
	}
	return best
}
