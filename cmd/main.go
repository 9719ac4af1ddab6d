package main

import (
	"fmt"

	symdiff "go.symdiff.dev/pkg"
)

func main() {
	x := symdiff.NamedVar("x")
	y := symdiff.NamedVar("y")

	// f(x, y) = x^2 + 2xy + exp(y)
	f := x.Times(x.SymExp).
		Plus(symdiff.Const(2).Times(x.SymExp).Times(y.SymExp)).
		Plus(symdiff.ExpOf(y.SymExp))

	fmt.Println("f =", f)

	at, err := f.EvalAll([]symdiff.Var{x, y}, []float64{3, 0})
	if err != nil {
		printError(err)
		return
	}

	v, err := at.Simplify().Value()
	if err != nil {
		printError(err)
		return
	}
	fmt.Println("f(3, 0) =", v)

	for i, d := range f.Gradient([]symdiff.Var{x, y}) {
		fmt.Printf("df/d%s = %s\n", []string{"x", "y"}[i], d.Simplify())
	}

	mod, err := symdiff.NewCodegen().Emit("f", f, []symdiff.Var{x, y})
	if err != nil {
		printError(err)
		return
	}
	fmt.Println(mod)
}

func printError(err error) {
	switch e := err.(type) {
	case *symdiff.NotConstantError:
		fmt.Println("Not a constant:", e.Expr)
	case *symdiff.ArityError:
		fmt.Println("Arity mismatch:", e.Vars, "variables for", e.Values, "values")
	case *symdiff.UndefinedSymbolError:
		fmt.Println("Undefined symbol:", e.Name)
	default:
		fmt.Println(err)
	}
}
