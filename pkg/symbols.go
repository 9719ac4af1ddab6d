package symdiff

import "sort"

// Symbols returns the sorted, de-duplicated names of every symbol leaf in
// the expression. An expression with no symbols yields an empty slice.
func Symbols(e SymExp) []string {
	set := make(map[string]struct{})
	collectSymbols(e.root, set)

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func collectSymbols(n Node, set map[string]struct{}) {
	switch t := n.(type) {
	case *Symbol:
		set[t.Name] = struct{}{}
	case *Neg:
		collectSymbols(t.Op, set)
	case *Add:
		collectSymbols(t.L, set)
		collectSymbols(t.R, set)
	case *Sub:
		collectSymbols(t.L, set)
		collectSymbols(t.R, set)
	case *Mul:
		collectSymbols(t.L, set)
		collectSymbols(t.R, set)
	case *Div:
		collectSymbols(t.L, set)
		collectSymbols(t.R, set)
	case *Pow:
		collectSymbols(t.L, set)
		collectSymbols(t.R, set)
	case *Exp:
		collectSymbols(t.Op, set)
	case *Log:
		collectSymbols(t.Op, set)
	}
}
