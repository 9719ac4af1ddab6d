package symdiff

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// ValueLookup maps symbol names to the LLVM values bound to them, typically
// the double parameters of the function being emitted.
type ValueLookup struct {
	vals map[string]value.Value
}

func NewValueLookup() *ValueLookup {
	return &ValueLookup{
		vals: make(map[string]value.Value),
	}
}

func (l *ValueLookup) Get(id string) (value.Value, bool) {
	val, ok := l.vals[id]
	return val, ok
}

func (l *ValueLookup) Set(id string, val value.Value) {
	l.vals[id] = val
}

// Codegen lowers expression trees to LLVM IR, producing for each expression
// a function of type double(double, ...) that computes it numerically. This
// sidesteps the tree walker when an expression must be evaluated many
// times.
type Codegen struct{}

func NewCodegen() *Codegen {
	return &Codegen{}
}

// Emit builds a module holding one function with the given name, taking one
// double parameter per symbol-backed Var in params (in order) and returning
// the expression's value. A free symbol of e not covered by params yields an
// *UndefinedSymbolError.
func (c *Codegen) Emit(name string, e SymExp, params []Var) (*ir.Module, error) {
	b := newIRBuilder()

	var irParams []*ir.Param
	for _, p := range params {
		s, ok := p.root.(*Symbol)
		if !ok {
			continue
		}
		irParams = append(irParams, ir.NewParam(s.Name, types.Double))
	}

	f := b.mod.NewFunc(name, types.Double, irParams...)
	for _, p := range irParams {
		b.values.Set(p.Name(), p)
	}

	b.block = f.NewBlock("")

	ret, ins, err := b.load(e.root)
	if err != nil {
		return nil, err
	}

	b.block.Insts = append(b.block.Insts, ins...)
	b.block.NewRet(ret)

	return b.mod, nil
}

type irBuilder struct {
	mod        *ir.Module
	block      *ir.Block
	values     *ValueLookup
	intrinsics map[string]*ir.Func
}

func newIRBuilder() *irBuilder {
	b := &irBuilder{
		mod:        ir.NewModule(),
		values:     NewValueLookup(),
		intrinsics: make(map[string]*ir.Func),
	}

	declareBuiltins(b)
	return b
}

func (b *irBuilder) load(n Node) (value.Value, []ir.Instruction, error) {
	switch e := n.(type) {
	case *Value:
		return constant.NewFloat(types.Double, e.Val), nil, nil
	case *Symbol:
		v, ok := b.values.Get(e.Name)
		if !ok {
			return nil, nil, &UndefinedSymbolError{Name: e.Name}
		}
		return v, nil, nil
	case *Neg:
		v, ins, err := b.load(e.Op)
		if err != nil {
			return nil, nil, err
		}

		op := ir.NewFNeg(v)
		return op, append(ins, op), nil
	case *Add:
		return b.binary(e.L, e.R, func(l, r value.Value) instValue { return ir.NewFAdd(l, r) })
	case *Sub:
		return b.binary(e.L, e.R, func(l, r value.Value) instValue { return ir.NewFSub(l, r) })
	case *Mul:
		return b.binary(e.L, e.R, func(l, r value.Value) instValue { return ir.NewFMul(l, r) })
	case *Div:
		return b.binary(e.L, e.R, func(l, r value.Value) instValue { return ir.NewFDiv(l, r) })
	case *Pow:
		return b.binary(e.L, e.R, func(l, r value.Value) instValue {
			return ir.NewCall(b.intrinsics[intrinsicPow], l, r)
		})
	case *Exp:
		return b.intrinsicCall(intrinsicExp, e.Op)
	case *Log:
		return b.intrinsicCall(intrinsicLog, e.Op)
	default:
		return nil, nil, &UndefinedSymbolError{Name: n.String()}
	}
}

// instValue is what the ir constructors return: an instruction that is also
// usable as an operand.
type instValue interface {
	ir.Instruction
	value.Value
}

func (b *irBuilder) binary(l, r Node, build func(l, r value.Value) instValue) (value.Value, []ir.Instruction, error) {
	lv, li, err := b.load(l)
	if err != nil {
		return nil, nil, err
	}

	rv, ri, err := b.load(r)
	if err != nil {
		return nil, nil, err
	}

	ins := append(li, ri...)
	op := build(lv, rv)

	return op, append(ins, op), nil
}

func (b *irBuilder) intrinsicCall(name string, operand Node) (value.Value, []ir.Instruction, error) {
	v, ins, err := b.load(operand)
	if err != nil {
		return nil, nil, err
	}

	call := ir.NewCall(b.intrinsics[name], v)
	return call, append(ins, call), nil
}
