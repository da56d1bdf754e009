package arith

import (
	"math"
	"strconv"
)

// Func is a built-in function. Call receives already-evaluated arguments and
// returns a Number or an *EvalError.
type Func struct {
	// Name is the identifier the parser and simplifier look up.
	Name string
	// Call evaluates the function on the full argument list.
	Call func(args []Number) (Number, error)
}

// builtins is the fixed function table. Lookups scan it by name.
var builtins = []Func{
	{"sqrt", monadic("sqrt", math.Sqrt)},
	{"log2", monadic("log2", math.Log2)},
	{"ln", monadic("ln", math.Log)},
}

// FindFunction returns the registered function with the given name, or nil.
func FindFunction(name string) *Func {
	for i := range builtins {
		if builtins[i].Name == name {
			return &builtins[i]
		}
	}
	return nil
}

// monadic wraps a float64 function into a Func implementation taking exactly
// one argument. The argument is promoted to float and the result is always
// float-tagged.
func monadic(name string, f func(float64) float64) func(args []Number) (Number, error) {
	return func(args []Number) (Number, error) {
		if len(args) != 1 {
			return Number{}, &EvalError{Msg: name + " expects 1 argument, got " + strconv.Itoa(len(args))}
		}
		return Float(f(args[0].AsFloat())), nil
	}
}
