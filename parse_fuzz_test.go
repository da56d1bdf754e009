//go:build go1.18
// +build go1.18

package arith_test

import (
	"testing"

	"github.com/arithmech/arith"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("1+2*3")
	f.Add("2(-2)^3")
	f.Add("sqrt(4, x)")
	f.Fuzz(func(t *testing.T, s string) {
		arith.Parse(arith.Lex(s))
	})
}
