package builtins

import (
	"testing"

	"github.com/feel-lang/feel/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callFirst(t *testing.T, root *value.Context, name string, args ...value.Value) value.Value {
	t.Helper()
	fns := root.LookupFunctions(name)
	require.NotEmpty(t, fns, "built-in %q not registered", name)
	return fns[0].Call(args)
}

func n(i int64) value.Number { return value.NumberFromInt(i) }

func TestRoundUpDownHalfUp(t *testing.T) {
	root := Root()
	half, err := value.NumberFromString("2.5")
	require.NoError(t, err)

	up := callFirst(t, root, "round up", half, n(0))
	down := callFirst(t, root, "round down", half, n(0))
	halfUp := callFirst(t, root, "round half up", half, n(0))

	assert.Equal(t, "3", up.(value.Number).String())
	assert.Equal(t, "2", down.(value.Number).String())
	assert.Equal(t, "3", halfUp.(value.Number).String())
}

func TestSumAcceptsListOrVarargs(t *testing.T) {
	root := Root()
	list := value.NewList(n(1), n(2), n(3))

	viaList := callFirst(t, root, "sum", list)
	viaArgs := callFirst(t, root, "sum", n(1), n(2), n(3))

	assert.Equal(t, "6", viaList.(value.Number).String())
	assert.Equal(t, "6", viaArgs.(value.Number).String())
}

func TestMeanMaxMin(t *testing.T) {
	root := Root()
	list := value.NewList(n(4), n(1), n(7))

	assert.Equal(t, "4", callFirst(t, root, "mean", list).(value.Number).String())
	assert.Equal(t, "7", callFirst(t, root, "max", list).(value.Number).String())
	assert.Equal(t, "1", callFirst(t, root, "min", list).(value.Number).String())
}

func TestStringLength(t *testing.T) {
	root := Root()
	result := callFirst(t, root, "string length", value.String("hello"))
	assert.Equal(t, "5", result.(value.Number).String())
}

func TestSubstringNegativeStart(t *testing.T) {
	root := Root()
	fns := root.LookupFunctions("substring")
	require.Len(t, fns, 2)

	twoArg := fns[0]
	result := twoArg.Call([]value.Value{value.String("testing"), n(-3)})
	assert.Equal(t, value.String("ing"), result)
}

func TestSubstringWithLength(t *testing.T) {
	root := Root()
	fns := root.LookupFunctions("substring")
	require.Len(t, fns, 2)

	threeArg := fns[1]
	result := threeArg.Call([]value.Value{value.String("testing"), n(1), n(4)})
	assert.Equal(t, value.String("test"), result)
}

func TestListContains(t *testing.T) {
	root := Root()
	list := value.NewList(n(1), n(2), n(3))

	assert.Equal(t, value.Boolean(true), callFirst(t, root, "list contains", list, n(2)))
	assert.Equal(t, value.Boolean(false), callFirst(t, root, "list contains", list, n(9)))
}

func TestAppend(t *testing.T) {
	root := Root()
	list := value.NewList(n(1), n(2))

	result := callFirst(t, root, "append", list, n(3), n(4))
	appended, ok := result.(*value.List)
	require.True(t, ok)
	assert.Equal(t, 4, appended.Len())
}
