package arith

import (
	"math"
	"strconv"
)

// Number is a numeric value tagged as either a 64-bit integer or a float64.
// Arithmetic between two integers stays integer for Add, Sub and Mul; Div
// always promotes to float, and Pow promotes unless both operands are
// integers and the exponent is nonnegative. Values are copied freely.
type Number struct {
	i     int64
	f     float64
	isInt bool
}

// Int returns an integer-tagged Number.
func Int(v int64) Number { return Number{i: v, isInt: true} }

// Float returns a float-tagged Number.
func Float(v float64) Number { return Number{f: v} }

// IsInt reports whether n is integer-tagged.
func (n Number) IsInt() bool { return n.isInt }

// AsInt returns the integer value. It is meaningful only when IsInt is true.
func (n Number) AsInt() int64 { return n.i }

// AsFloat returns the value promoted to float64.
func (n Number) AsFloat() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// numberFromToken parses a number literal token. The token's decimal flag
// decides whether the result is integer- or float-tagged.
func numberFromToken(t Token) (Number, bool) {
	if t.HasDecimal {
		v, err := strconv.ParseFloat(t.Text, 64)
		if err != nil {
			return Number{}, false
		}
		return Float(v), true
	}
	v, err := strconv.ParseInt(t.Text, 10, 64)
	if err != nil {
		return Number{}, false
	}
	return Int(v), true
}

// Add returns n+m, integer-tagged when both operands are integers.
func (n Number) Add(m Number) Number {
	if n.isInt && m.isInt {
		return Int(n.i + m.i)
	}
	return Float(n.AsFloat() + m.AsFloat())
}

// Sub returns n-m, integer-tagged when both operands are integers.
func (n Number) Sub(m Number) Number {
	if n.isInt && m.isInt {
		return Int(n.i - m.i)
	}
	return Float(n.AsFloat() - m.AsFloat())
}

// Mul returns n*m, integer-tagged when both operands are integers.
func (n Number) Mul(m Number) Number {
	if n.isInt && m.isInt {
		return Int(n.i * m.i)
	}
	return Float(n.AsFloat() * m.AsFloat())
}

// Div returns n/m, always float-tagged. Division by zero follows float64
// semantics and produces an infinity or NaN.
func (n Number) Div(m Number) Number {
	return Float(n.AsFloat() / m.AsFloat())
}

// Pow returns n^m. When both operands are integers and m is nonnegative, the
// result is integer-tagged, computed by exponentiation by squaring. A
// negative integer exponent gives 1/pow(n, -m) as a float. Any float operand
// promotes the whole operation.
func (n Number) Pow(m Number) Number {
	if n.isInt && m.isInt {
		if m.i < 0 {
			return Float(1 / float64(ipow(n.i, -m.i)))
		}
		return Int(ipow(n.i, m.i))
	}
	return Float(math.Pow(n.AsFloat(), m.AsFloat()))
}

// ipow raises base to a nonnegative exponent by squaring. Overflow is not
// detected, matching ordinary int64 multiplication.
func ipow(base, exp int64) int64 {
	var result int64 = 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// Equal reports whether n and m have the same tag and the same value. An
// integer is never Equal to a float, even of equal magnitude.
func (n Number) Equal(m Number) bool {
	if n.isInt != m.isInt {
		return false
	}
	if n.isInt {
		return n.i == m.i
	}
	return n.f == m.f
}

// epsilon is the tolerance used by ApproxEqual for float comparisons.
const epsilon = 1e-12

// ApproxEqual reports whether n and m are equal, comparing integers exactly
// and anything else as floats within epsilon.
func (n Number) ApproxEqual(m Number) bool {
	if n.isInt && m.isInt {
		return n.i == m.i
	}
	return math.Abs(n.AsFloat()-m.AsFloat()) < epsilon
}

func (n Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}
