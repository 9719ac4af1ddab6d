package symdiff

// Derive returns the derivative of the receiver with respect to s. The
// result is a fresh, unsimplified tree: the calculus rules are applied
// verbatim, so it usually carries redundant structure like additions of
// zero or multiplications by one.

func (v *Value) Derive(*Symbol) Node {
	return &Value{}
}

func (s *Symbol) Derive(t *Symbol) Node {
	if s.Name == t.Name {
		return &Value{Val: 1}
	}
	return &Value{}
}

func (n *Neg) Derive(s *Symbol) Node {
	return &Neg{Op: n.Op.Derive(s)}
}

func (a *Add) Derive(s *Symbol) Node {
	return &Add{L: a.L.Derive(s), R: a.R.Derive(s)}
}

func (n *Sub) Derive(s *Symbol) Node {
	return &Sub{L: n.L.Derive(s), R: n.R.Derive(s)}
}

// product rule: (l*r)' = l'*r + l*r'
func (m *Mul) Derive(s *Symbol) Node {
	return &Add{
		L: &Mul{L: m.L.Derive(s), R: m.R.Clone()},
		R: &Mul{L: m.L.Clone(), R: m.R.Derive(s)},
	}
}

// quotient rule: (l/r)' = (l'*r - l*r') / r^2
func (d *Div) Derive(s *Symbol) Node {
	return &Div{
		L: &Sub{
			L: &Mul{L: d.L.Derive(s), R: d.R.Clone()},
			R: &Mul{L: d.L.Clone(), R: d.R.Derive(s)},
		},
		R: &Mul{L: d.R.Clone(), R: d.R.Clone()},
	}
}

// With a constant exponent c the plain power rule c*l^(c-1)*l' applies.
// Otherwise the generalized rule (l^r)*(r'*log(l) + r*l'/l) is used, which
// treats the base as symbolically positive; no domain guard is made for
// bases that could evaluate negative.
func (p *Pow) Derive(s *Symbol) Node {
	if c, ok := p.R.(*Value); ok {
		return &Mul{
			L: &Mul{
				L: &Value{Val: c.Val},
				R: &Pow{L: p.L.Clone(), R: &Value{Val: c.Val - 1}},
			},
			R: p.L.Derive(s),
		}
	}
	return &Mul{
		L: p.Clone(),
		R: &Add{
			L: &Mul{L: p.R.Derive(s), R: &Log{Op: p.L.Clone()}},
			R: &Mul{L: p.R.Clone(), R: &Div{L: p.L.Derive(s), R: p.L.Clone()}},
		},
	}
}

func (e *Exp) Derive(s *Symbol) Node {
	return &Mul{L: e.Clone(), R: e.Op.Derive(s)}
}

func (l *Log) Derive(s *Symbol) Node {
	return &Div{L: l.Op.Derive(s), R: l.Op.Clone()}
}
