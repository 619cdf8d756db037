package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberEquality(t *testing.T) {
	a, err := NumberFromString("1.50")
	require.NoError(t, err)
	b, err := NumberFromString("1.5")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.Equal(t, 0, a.Cmp(b))
}

func TestErrorNeverEquals(t *testing.T) {
	e1 := NewError("boom")
	e2 := NewError("boom")

	assert.False(t, e1.Equals(e2))
	assert.False(t, e1.Equals(e1))
	assert.True(t, IsError(e1))
}

func TestListEqualityWithErrorElements(t *testing.T) {
	a := NewList(NumberFromInt(1), NewError("x"))
	b := NewList(NumberFromInt(1), NewError("x"))

	assert.False(t, a.Equals(b))
}

func TestContextComposeRightBiased(t *testing.T) {
	base := NewContext().WithVariable("x", NumberFromInt(1))
	overlay := NewContext().WithVariable("x", NumberFromInt(2))

	composed := base.Compose(overlay)
	v, ok := composed.LookupVariable("x")
	require.True(t, ok)
	assert.Equal(t, NumberFromInt(2), v)
}

func TestContextWithFunctionAccumulatesOverloads(t *testing.T) {
	f1 := &Function{Name: "f", Params: []string{"a"}}
	f2 := &Function{Name: "f", Params: []string{"a", "b"}}

	ctx := NewContext().WithFunction("f", f1)
	ctx = ctx.WithFunction("f", f2)

	fns := ctx.LookupFunctions("f")
	require.Len(t, fns, 2)
}

func TestContextInputDefaultsToCellInput(t *testing.T) {
	ctx := NewContext()
	assert.Equal(t, Null{}, ctx.Input())

	bound := ctx.WithInput(NumberFromInt(42))
	assert.Equal(t, NumberFromInt(42), bound.Input())
}

func TestContextInputVariableNameOverride(t *testing.T) {
	ctx := NewContext().WithVariable("inputVariableName", String("temperature"))
	ctx = ctx.WithVariable("temperature", NumberFromInt(100))

	assert.Equal(t, NumberFromInt(100), ctx.Input())
}

func TestTypeNameMergesZonedVariants(t *testing.T) {
	assert.Equal(t, "time", TypeName(NewLocalTime(1, 0, 0, 0)))
	assert.Equal(t, "time", TypeName(NewTime(1, 0, 0, 0, 3600)))
	assert.Equal(t, "date time", TypeName(NewLocalDateTime(2024, 1, 1, 0, 0, 0, 0)))
	assert.Equal(t, "date time", TypeName(NewDateTime(2024, 1, 1, 0, 0, 0, 0, 3600)))
}

func TestDurationParsingRoundTrip(t *testing.T) {
	ym, err := ParseYearMonthDuration("P1Y2M")
	require.NoError(t, err)
	assert.Equal(t, 14, ym.Months)

	dt, err := ParseDayTimeDuration("P1DT2H")
	require.NoError(t, err)
	assert.Equal(t, "P1DT2H", dt.String())
}
