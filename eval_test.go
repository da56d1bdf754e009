package arith_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arithmech/arith"
)

// reduce parses and simplifies src, requiring a fully reduced Number.
func reduce(t *testing.T, src string, tab *arith.SymbolTable) arith.Number {
	t.Helper()
	r, err := arith.SimplifyString(src, tab)
	require.NoError(t, err, "simplifying %q", src)
	require.True(t, r.IsNumber(), "%q left a residual tree: %v", src, r)
	return r.Number()
}

func TestSimplifyValues(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want arith.Number
	}{
		{"add", "1+1", arith.Int(2)},
		{"chain", "10+10-20", arith.Int(0)},
		{"chain-neg", "10+10-25", arith.Int(-5)},
		{"unary", "-25+10", arith.Int(-15)},
		{"unary-group", "-(25+10)", arith.Int(-35)},
		{"unary-group-inner", "-(-25+10)", arith.Int(15)},
		{"double-unary", "--25+10", arith.Int(35)},
		{"mul-before-add", "1-2*1+1", arith.Int(0)},
		{"neg-group-mul", "1-(-2)*1+1", arith.Int(4)},
		{"group", "1-(1+1)", arith.Int(-1)},
		{"group-first", "(1-1)+1", arith.Int(1)},
		{"implicit-neg", "2(-2)", arith.Int(-4)},
		{"implicit-both-neg", "-2(-2)", arith.Int(4)},
		{"implicit-parens", "(2)(2)", arith.Int(4)},
		{"implicit-after-group", "(2)2", arith.Int(4)},
		{"float-mul", "2.5*2", arith.Float(5)},
		{"float-pow", "1.5^5", arith.Float(7.59375)},
		{"pow-one", "1^5", arith.Int(1)},
		{"pow", "2^3", arith.Int(8)},
		{"pow-right-assoc", "2^3^2", arith.Int(512)},
		{"pow-neg-exp", "2^(-2)", arith.Float(0.25)},
		{"pow-neg-exp-big", "2^(-8)", arith.Float(1.0 / 256.0)},
		{"div-promotes", "1/2/2", arith.Float(0.25)},
		{"div-promotes-grouped", "(1/2)/2", arith.Float(0.25)},
		{"div-ints", "100/5/5", arith.Float(4)},
		{"sqrt", "sqrt(4)", arith.Float(2)},
		{"sqrt-zero", "sqrt(0)", arith.Float(0)},
		{"log2", "log2(8)", arith.Float(3)},
		{"ln", "ln(1)", arith.Float(0)},
		{"call-in-expr", "2sqrt(4)", arith.Float(4)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := reduce(t, c.src, nil)
			assert.Equal(t, c.want.IsInt(), got.IsInt(), "wrong tag for %q: got %v", c.src, got)
			assert.True(t, got.ApproxEqual(c.want), "%q: want %v, got %v", c.src, c.want, got)
		})
	}
}

func TestSimplifyResidual(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"free-symbol", "1+x", "(1 + x)"},
		{"symbol-only", "x", "x"},
		{"no-identities", "0*x", "(0 * x)"},
		{"folds-constants", "(1+1)*x", "(2 * x)"},
		{"residual-call", "sqrt(x)", "sqrt(x)"},
		{"mixed-call-args", "sqrt(1+1, x)", "sqrt(2, x)"},
		{"call-in-residual", "sqrt(4)x", "(2 * x)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := arith.SimplifyString(c.src, nil)
			require.NoError(t, err)
			require.False(t, r.IsNumber(), "%q reduced to %v", c.src, r)
			assert.Equal(t, c.want, r.Node().String())
		})
	}
}

func TestSimplifySubstitution(t *testing.T) {
	tab := &arith.SymbolTable{}
	tab.Insert("x", arith.Constant(arith.Int(5)))
	got := reduce(t, "1+x", tab)
	assert.True(t, got.Equal(arith.Int(6)))

	// Rebinding replaces the old value.
	tab.Insert("x", arith.Constant(arith.Int(7)))
	got = reduce(t, "1+x", tab)
	assert.True(t, got.Equal(arith.Int(8)))
}

func TestSimplifyChainedBindings(t *testing.T) {
	tab := &arith.SymbolTable{}
	tab.Insert("x", arith.Symbol("y"))
	tab.Insert("y", arith.Constant(arith.Int(2)))
	got := reduce(t, "x+1", tab)
	assert.True(t, got.Equal(arith.Int(3)))

	// A binding can be a whole expression tree, not just a literal.
	bound, err := arith.Parse(arith.Lex("y^2"))
	require.NoError(t, err)
	tab.Insert("z", bound)
	got = reduce(t, "z+z", tab)
	assert.True(t, got.Equal(arith.Int(8)))
}

func TestSimplifyErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
	}{
		{"arity-zero", "sqrt()", "sqrt expects 1 argument, got 0"},
		{"arity-two", "sqrt(4, 9)", "sqrt expects 1 argument, got 2"},
		{"arity-log2", "log2()", "log2 expects 1 argument, got 0"},
		{"arity-ln", "ln(1, 2)", "ln expects 1 argument, got 2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := arith.SimplifyString(c.src, nil)
			var eerr *arith.EvalError
			require.ErrorAs(t, err, &eerr)
			assert.Equal(t, c.msg, eerr.Msg)
		})
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	tab := &arith.SymbolTable{}
	tab.Insert("x", arith.Constant(arith.Int(3)))
	n, err := arith.Parse(arith.Lex("2x^2 + sqrt(x+1)"))
	require.NoError(t, err)
	first, err := arith.Simplify(n, tab)
	require.NoError(t, err)
	second, err := arith.Simplify(n, tab)
	require.NoError(t, err)
	require.True(t, first.IsNumber())
	require.True(t, second.IsNumber())
	assert.True(t, first.Number().Equal(second.Number()))
	assert.True(t, first.Number().ApproxEqual(arith.Float(20)))
}

func TestSymbolTableCopies(t *testing.T) {
	tab := &arith.SymbolTable{}
	tab.Insert("x", arith.Constant(arith.Int(1)))
	// Lookup hands out an independent copy each time.
	a := tab.Lookup("x")
	b := tab.Lookup("x")
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.NotSame(t, a, b)
	assert.Nil(t, tab.Lookup("y"))
	assert.Equal(t, 1, tab.Len())
}

func TestRoundTrip(t *testing.T) {
	// Formatting a parsed tree and reparsing it reproduces the tree. Trees
	// with folded unary minus are excluded: "-x" parses to "(-1 * x)",
	// whose -1 folds again on reparse.
	cases := []string{
		"1+2*3",
		"2^3^2",
		"1/2/2",
		"2(3)",
		"x y",
		"2x^2",
		"sqrt(x+1)",
		"sqrt(4, x)",
		"1.5^5 - log2(8)",
	}
	for _, src := range cases {
		n, err := arith.Parse(arith.Lex(src))
		require.NoError(t, err, "parsing %q", src)
		m, err := arith.Parse(arith.Lex(n.String()))
		require.NoError(t, err, "reparsing %q as %q", src, n.String())
		assert.Equal(t, n.String(), m.String(), "round trip of %q", src)
	}
}
