package symdiff

import "math"

// Simplify rewrites a tree bottom-up in a single pass: children are
// simplified first, then a fixed set of local rules is tried at the parent.
// It is not a fixed point; a shape that only becomes reducible after the
// parent has been rebuilt stays as it is. Constant folding uses ordinary
// float math, so degenerate inputs (division by zero, negative bases)
// fold to Inf or NaN rather than failing.

func (v *Value) Simplify() Node {
	return v.Clone()
}

func (s *Symbol) Simplify() Node {
	return s.Clone()
}

func (n *Neg) Simplify() Node {
	op := n.Op.Simplify()
	switch t := op.(type) {
	case *Neg:
		return t.Op
	case *Value:
		return &Value{Val: -t.Val}
	}
	return &Neg{Op: op}
}

func (a *Add) Simplify() Node {
	l, r := a.L.Simplify(), a.R.Simplify()
	lv, lok := l.(*Value)
	rv, rok := r.(*Value)
	switch {
	case lok && rok:
		return &Value{Val: lv.Val + rv.Val}
	case lok && lv.Val == 0:
		return r
	case rok && rv.Val == 0:
		return l
	}
	return &Add{L: l, R: r}
}

func (n *Sub) Simplify() Node {
	l, r := n.L.Simplify(), n.R.Simplify()
	lv, lok := l.(*Value)
	rv, rok := r.(*Value)
	switch {
	case lok && rok:
		return &Value{Val: lv.Val - rv.Val}
	case rok && rv.Val == 0:
		return l
	case lok && lv.Val == 0:
		return &Neg{Op: r}
	case l.String() == r.String():
		return &Value{}
	}
	return &Sub{L: l, R: r}
}

func (m *Mul) Simplify() Node {
	l, r := m.L.Simplify(), m.R.Simplify()
	lv, lok := l.(*Value)
	rv, rok := r.(*Value)
	switch {
	case lok && rok:
		return &Value{Val: lv.Val * rv.Val}
	case lok && lv.Val == 0:
		return &Value{}
	case rok && rv.Val == 0:
		return &Value{}
	case lok && lv.Val == 1:
		return r
	case rok && rv.Val == 1:
		return l
	}
	return &Mul{L: l, R: r}
}

func (d *Div) Simplify() Node {
	l, r := d.L.Simplify(), d.R.Simplify()
	lv, lok := l.(*Value)
	rv, rok := r.(*Value)
	switch {
	case lok && rok:
		return &Value{Val: lv.Val / rv.Val}
	case rok && rv.Val == 1:
		return l
	case lok && lv.Val == 0:
		return &Value{}
	}
	return &Div{L: l, R: r}
}

func (p *Pow) Simplify() Node {
	l, r := p.L.Simplify(), p.R.Simplify()
	lv, lok := l.(*Value)
	rv, rok := r.(*Value)
	switch {
	case lok && rok:
		return &Value{Val: math.Pow(lv.Val, rv.Val)}
	case rok && rv.Val == 0:
		return &Value{Val: 1}
	case rok && rv.Val == 1:
		return l
	case lok && lv.Val == 0:
		return &Value{}
	case lok && lv.Val == 1:
		return &Value{Val: 1}
	}
	return &Pow{L: l, R: r}
}

func (e *Exp) Simplify() Node {
	op := e.Op.Simplify()
	switch t := op.(type) {
	case *Log:
		return t.Op
	case *Value:
		return &Value{Val: math.Exp(t.Val)}
	}
	return &Exp{Op: op}
}

func (l *Log) Simplify() Node {
	op := l.Op.Simplify()
	switch t := op.(type) {
	case *Exp:
		return t.Op
	case *Value:
		return &Value{Val: math.Log(t.Val)}
	}
	return &Log{Op: op}
}
