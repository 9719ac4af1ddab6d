package symdiff

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// SymExp is a value-style handle around one owned expression tree. Every
// combinator deep-clones its operands, so two handles never share nodes and
// rebuilding through one can never be observed through the other. The zero
// SymExp is not usable; build one with Const, Sym or a Var constructor.
type SymExp struct {
	root Node
}

func wrap(n Node) SymExp {
	return SymExp{root: n}
}

// Const builds a constant-leaf expression.
func Const(v float64) SymExp {
	return wrap(&Value{Val: v})
}

// Sym builds a symbol-leaf expression with the given name. Names are
// compared by exact string equality; nothing stops two call sites from
// using the same name.
func Sym(name string) SymExp {
	return wrap(&Symbol{Name: name})
}

// Copy returns a deep clone backed by a fully independent tree.
func (e SymExp) Copy() SymExp {
	return wrap(e.root.Clone())
}

// Eval substitutes v's symbol with value everywhere in the expression.
// Unrelated symbols are left in place and nothing is folded; a Var that is
// not symbol-backed substitutes nothing.
func (e SymExp) Eval(v Var, value float64) SymExp {
	s, ok := v.root.(*Symbol)
	if !ok {
		return e.Copy()
	}
	return wrap(e.root.Eval(s, value))
}

// EvalAll applies Eval once per variable, left to right. The two slices
// must have equal length; otherwise an *ArityError is returned.
func (e SymExp) EvalAll(vars []Var, values []float64) (SymExp, error) {
	if len(vars) != len(values) {
		return SymExp{}, &ArityError{Vars: len(vars), Values: len(values)}
	}

	out := e
	for i, v := range vars {
		out = out.Eval(v, values[i])
	}

	return out, nil
}

// Derive returns the unsimplified derivative with respect to v. Callers
// wanting a reduced result chain Simplify explicitly. Deriving with respect
// to a non-symbol Var yields the zero constant.
func (e SymExp) Derive(v Var) SymExp {
	s, ok := v.root.(*Symbol)
	if !ok {
		return Const(0)
	}
	return wrap(e.root.Derive(s))
}

// Gradient returns one unsimplified partial derivative per variable, in the
// order given. Each entry comes from an independent Derive call; no
// structure is shared across the returned set.
func (e SymExp) Gradient(vars []Var) []SymExp {
	grad := make([]SymExp, len(vars))
	for i, v := range vars {
		grad[i] = e.Derive(v)
	}

	return grad
}

// Simplify returns a locally rewritten copy; see Node.Simplify for the
// rules and their single-pass limitation.
func (e SymExp) Simplify() SymExp {
	return wrap(e.root.Simplify())
}

func (e SymExp) String() string {
	return e.root.String()
}

// HasValue reports whether the expression is structurally a single constant
// leaf. An expression that is merely algebraically constant, like x - x,
// reports false until Simplify has reduced it.
func (e SymExp) HasValue() bool {
	_, ok := e.root.(*Value)
	return ok
}

// Value returns the scalar of a constant-leaf expression, or a
// *NotConstantError when the root is any other variant.
func (e SymExp) Value() (float64, error) {
	v, ok := e.root.(*Value)
	if !ok {
		return 0, &NotConstantError{Expr: e.String()}
	}
	return v.Val, nil
}

func (e SymExp) Negate() SymExp {
	return wrap(&Neg{Op: e.root.Clone()})
}

func (e SymExp) Plus(o SymExp) SymExp {
	return wrap(&Add{L: e.root.Clone(), R: o.root.Clone()})
}

func (e SymExp) Minus(o SymExp) SymExp {
	return wrap(&Sub{L: e.root.Clone(), R: o.root.Clone()})
}

func (e SymExp) Times(o SymExp) SymExp {
	return wrap(&Mul{L: e.root.Clone(), R: o.root.Clone()})
}

func (e SymExp) DividedBy(o SymExp) SymExp {
	return wrap(&Div{L: e.root.Clone(), R: o.root.Clone()})
}

func (e SymExp) ToThe(o SymExp) SymExp {
	return wrap(&Pow{L: e.root.Clone(), R: o.root.Clone()})
}

// PowOf is the free-function form of ToThe.
func PowOf(base, exponent SymExp) SymExp {
	return base.ToThe(exponent)
}

func ExpOf(e SymExp) SymExp {
	return wrap(&Exp{Op: e.root.Clone()})
}

func LogOf(e SymExp) SymExp {
	return wrap(&Log{Op: e.root.Clone()})
}

// Var is a SymExp that denotes a single leaf, usable as a substitution or
// differentiation key.
type Var struct {
	SymExp
}

// varCounter backs auto-generated names. It is the only process-wide state
// in the package and only ever increments.
var varCounter uint64

// NewVar returns a variable with a fresh auto-generated name ($0, $1, ...).
// Auto-generated names never collide with each other, but nothing prevents
// a user-supplied name from colliding with one.
func NewVar() Var {
	n := atomic.AddUint64(&varCounter, 1) - 1
	return Var{SymExp{root: &Symbol{Name: "$" + strconv.FormatUint(n, 10)}}}
}

// NamedVar returns a variable with exactly the given name.
func NamedVar(name string) Var {
	return Var{SymExp{root: &Symbol{Name: name}}}
}

// ConstVar wraps a constant as a Var for literal call sites. It is not a
// differentiation target: it substitutes nothing under Eval and derives
// to zero.
func ConstVar(v float64) Var {
	return Var{SymExp{root: &Value{Val: v}}}
}

// NotConstantError reports a Value call on an expression whose root is not
// a constant leaf.
type NotConstantError struct {
	Expr string
}

func (e *NotConstantError) Error() string {
	return fmt.Sprintf("not a constant: %s", e.Expr)
}

// ArityError reports an EvalAll call with mismatched slice lengths.
type ArityError struct {
	Vars   int
	Values int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("arity mismatch: %d variables, %d values", e.Vars, e.Values)
}

// UndefinedSymbolError reports a free symbol that codegen has no parameter
// for.
type UndefinedSymbolError struct {
	Name string
}

func (e *UndefinedSymbolError) Error() string {
	return "undefined symbol: " + e.Name
}
