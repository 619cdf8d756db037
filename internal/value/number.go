package value

import "github.com/shopspring/decimal"

// Number is a FEEL number: an arbitrary-precision decimal (spec.md §9 open
// question resolves to arbitrary precision, matching DMN's recommended
// DECIMAL128 semantics as closely as a Go decimal library allows).
type Number struct {
	Dec decimal.Decimal
}

// NewNumber wraps a decimal.Decimal as a Number value.
func NewNumber(d decimal.Decimal) Number { return Number{Dec: d} }

// NumberFromInt builds a Number from an int64, used pervasively by
// built-ins and list/duration arithmetic that produce whole numbers.
func NumberFromInt(i int64) Number { return Number{Dec: decimal.NewFromInt(i)} }

// NumberFromString parses a decimal literal; used for NumberLit evaluation.
func NumberFromString(s string) (Number, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{}, err
	}
	return Number{Dec: d}, nil
}

func (n Number) Kind() Kind       { return KindNumber }
func (n Number) String() string   { return n.Dec.String() }
func (n Number) Equals(v Value) bool {
	other, ok := v.(Number)
	return ok && n.Dec.Equal(other.Dec)
}

// Cmp returns -1, 0 or 1 comparing n to other, matching decimal.Decimal.Cmp.
func (n Number) Cmp(other Number) int { return n.Dec.Cmp(other.Dec) }
