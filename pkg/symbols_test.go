package symdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbols(t *testing.T) {
	x := NamedVar("x")
	y := NamedVar("y")

	cases := []struct {
		expr   SymExp
		expect []string
	}{
		{
			Const(1),
			[]string{},
		},
		{
			x.SymExp,
			[]string{"x"},
		},
		{
			x.Times(x.SymExp).Plus(x.SymExp),
			[]string{"x"},
		},
		{
			y.Minus(x.SymExp).ToThe(Sym("z")),
			[]string{"x", "y", "z"},
		},
		{
			ExpOf(LogOf(Sym("b").Negate())).DividedBy(Sym("a")),
			[]string{"a", "b"},
		},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, Symbols(c.expr))
	}
}
