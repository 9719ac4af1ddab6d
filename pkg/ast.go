package symdiff

import "strconv"

// Node is a single vertex of an expression tree. Implementations are
// immutable once built: every operation returns a freshly allocated tree
// and leaves the receiver untouched. A node owns its children exclusively,
// so the structure is always a finite, acyclic tree.
type Node interface {
	Clone() Node
	Eval(s *Symbol, value float64) Node
	Derive(s *Symbol) Node
	Simplify() Node
	String() string
}

type Value struct {
	Val float64
}

type Symbol struct {
	Name string
}

type Neg struct {
	Op Node
}

type Add struct {
	L, R Node
}

type Sub struct {
	L, R Node
}

type Mul struct {
	L, R Node
}

type Div struct {
	L, R Node
}

type Pow struct {
	L, R Node
}

type Exp struct {
	Op Node
}

type Log struct {
	Op Node
}

func (v *Value) Clone() Node {
	return &Value{Val: v.Val}
}

func (s *Symbol) Clone() Node {
	return &Symbol{Name: s.Name}
}

func (n *Neg) Clone() Node {
	return &Neg{Op: n.Op.Clone()}
}

func (a *Add) Clone() Node {
	return &Add{L: a.L.Clone(), R: a.R.Clone()}
}

func (s *Sub) Clone() Node {
	return &Sub{L: s.L.Clone(), R: s.R.Clone()}
}

func (m *Mul) Clone() Node {
	return &Mul{L: m.L.Clone(), R: m.R.Clone()}
}

func (d *Div) Clone() Node {
	return &Div{L: d.L.Clone(), R: d.R.Clone()}
}

func (p *Pow) Clone() Node {
	return &Pow{L: p.L.Clone(), R: p.R.Clone()}
}

func (e *Exp) Clone() Node {
	return &Exp{Op: e.Op.Clone()}
}

func (l *Log) Clone() Node {
	return &Log{Op: l.Op.Clone()}
}

func (v *Value) String() string {
	return strconv.FormatFloat(v.Val, 'g', -1, 64)
}

func (s *Symbol) String() string {
	return s.Name
}

func (n *Neg) String() string {
	return "-(" + n.Op.String() + ")"
}

func (a *Add) String() string {
	return "(" + a.L.String() + " + " + a.R.String() + ")"
}

func (s *Sub) String() string {
	return "(" + s.L.String() + " - " + s.R.String() + ")"
}

func (m *Mul) String() string {
	return "(" + m.L.String() + " * " + m.R.String() + ")"
}

func (d *Div) String() string {
	return "(" + d.L.String() + " / " + d.R.String() + ")"
}

func (p *Pow) String() string {
	return "pow(" + p.L.String() + ", " + p.R.String() + ")"
}

func (e *Exp) String() string {
	return "exp(" + e.Op.String() + ")"
}

func (l *Log) String() string {
	return "log(" + l.Op.String() + ")"
}
