package symdiff

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
)

// The transcendental operators lower to LLVM math intrinsics instead of
// open-coded sequences; the backend picks the right libm call or hardware
// instruction.
const (
	intrinsicExp = "llvm.exp.f64"
	intrinsicLog = "llvm.log.f64"
	intrinsicPow = "llvm.pow.f64"
)

func declareBuiltins(b *irBuilder) {
	declareIntrinsic(b, intrinsicExp, 1)
	declareIntrinsic(b, intrinsicLog, 1)
	declareIntrinsic(b, intrinsicPow, 2)
}

func declareIntrinsic(b *irBuilder, name string, arity int) {
	params := make([]*ir.Param, arity)
	for i := range params {
		params[i] = ir.NewParam("", types.Double)
	}

	f := b.mod.NewFunc(name, types.Double, params...)
	b.intrinsics[name] = f
}
