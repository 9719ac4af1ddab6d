package test

import (
	"math/rand"

	symdiff "go.symdiff.dev/pkg"
)

// GetRandomExpr builds a random well-formed expression over vars with at
// most the given operator depth. Leaves are small integer constants or one
// of the supplied variables; powers keep constant exponents so the trees
// stay numerically tame.
func GetRandomExpr(r *rand.Rand, vars []symdiff.Var, depth int) symdiff.SymExp {
	if depth <= 0 || r.Intn(4) == 0 {
		if len(vars) > 0 && r.Intn(2) == 0 {
			return vars[r.Intn(len(vars))].SymExp
		}
		return symdiff.Const(float64(r.Intn(10)))
	}

	l := GetRandomExpr(r, vars, depth-1)
	switch r.Intn(8) {
	case 0:
		return l.Negate()
	case 1:
		return l.Plus(GetRandomExpr(r, vars, depth-1))
	case 2:
		return l.Minus(GetRandomExpr(r, vars, depth-1))
	case 3:
		return l.Times(GetRandomExpr(r, vars, depth-1))
	case 4:
		return l.DividedBy(GetRandomExpr(r, vars, depth-1))
	case 5:
		return l.ToThe(symdiff.Const(float64(r.Intn(4))))
	case 6:
		return symdiff.ExpOf(l)
	default:
		return symdiff.LogOf(l)
	}
}
