package symdiff

// Eval substitutes every Symbol leaf named like s with a Value leaf holding
// value. No folding happens here beyond the leaf replacement itself; callers
// wanting a collapsed result run Simplify afterwards.

func (v *Value) Eval(*Symbol, float64) Node {
	return v.Clone()
}

func (s *Symbol) Eval(t *Symbol, value float64) Node {
	if s.Name == t.Name {
		return &Value{Val: value}
	}
	return s.Clone()
}

func (n *Neg) Eval(s *Symbol, value float64) Node {
	return &Neg{Op: n.Op.Eval(s, value)}
}

func (a *Add) Eval(s *Symbol, value float64) Node {
	return &Add{L: a.L.Eval(s, value), R: a.R.Eval(s, value)}
}

func (n *Sub) Eval(s *Symbol, value float64) Node {
	return &Sub{L: n.L.Eval(s, value), R: n.R.Eval(s, value)}
}

func (m *Mul) Eval(s *Symbol, value float64) Node {
	return &Mul{L: m.L.Eval(s, value), R: m.R.Eval(s, value)}
}

func (d *Div) Eval(s *Symbol, value float64) Node {
	return &Div{L: d.L.Eval(s, value), R: d.R.Eval(s, value)}
}

func (p *Pow) Eval(s *Symbol, value float64) Node {
	return &Pow{L: p.L.Eval(s, value), R: p.R.Eval(s, value)}
}

func (e *Exp) Eval(s *Symbol, value float64) Node {
	return &Exp{Op: e.Op.Eval(s, value)}
}

func (l *Log) Eval(s *Symbol, value float64) Node {
	return &Log{Op: l.Op.Eval(s, value)}
}
