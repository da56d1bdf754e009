package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFunction(t *testing.T) {
	for _, name := range []string{"sqrt", "log2", "ln"} {
		fn := FindFunction(name)
		require.NotNil(t, fn, "missing builtin %s", name)
		assert.Equal(t, name, fn.Name)
	}
	assert.Nil(t, FindFunction("tan"))
	assert.Nil(t, FindFunction(""))
	assert.Nil(t, FindFunction("SQRT"))
}

func TestBuiltins(t *testing.T) {
	cases := []struct {
		fn   string
		arg  Number
		want float64
	}{
		{"sqrt", Int(9), 3},
		{"sqrt", Float(2.25), 1.5},
		{"log2", Int(1024), 10},
		{"log2", Float(0.5), -1},
		{"ln", Float(math.E), 1},
		{"ln", Int(1), 0},
	}
	for _, c := range cases {
		fn := FindFunction(c.fn)
		require.NotNil(t, fn)
		got, err := fn.Call([]Number{c.arg})
		require.NoError(t, err)
		assert.False(t, got.IsInt(), "%s result must be float", c.fn)
		assert.True(t, got.ApproxEqual(Float(c.want)), "%s(%v) = %v, want %v", c.fn, c.arg, got, c.want)
	}
}

func TestBuiltinArity(t *testing.T) {
	fn := FindFunction("sqrt")
	require.NotNil(t, fn)
	_, err := fn.Call(nil)
	var eerr *EvalError
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, "sqrt expects 1 argument, got 0", eerr.Msg)
	_, err = fn.Call([]Number{Int(1), Int(2), Int(3)})
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, "sqrt expects 1 argument, got 3", eerr.Msg)
}
