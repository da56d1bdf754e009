// Package arith implements a small arithmetic expression language: a lexer,
// a recursive-descent parser, and a simplifier.
//
// Numbers are either 64-bit integers or float64s. Integer arithmetic stays in
// the integer domain for + - * and for ^ with a nonnegative integer exponent;
// division and everything else promotes to float. "2^3" is the integer 8,
// "1/2" is the float 0.5.
//
// Adjacent terms multiply, so "2x", "2(3)" and "(2)(2)" all mean what they
// look like. sqrt, log2 and ln are available as functions.
//
// Simplification is partial: expressions over literals reduce to a Number,
// while free symbols leave a residual tree behind. Bind symbols in a
// SymbolTable to substitute them.
package arith
