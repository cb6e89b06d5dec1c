// instruction.go emits one assembly sequence per koopa.Value. Every
// operand is loaded from its stack slot (or materialised as an
// immediate) into T0/T1 immediately before use and every result is
// stored back to its own slot immediately after being computed: no
// value is ever assumed to still be sitting in a register from an
// earlier instruction, which is what makes per-instruction slot
// assignment in plan.go sufficient without a register allocator.
package riscv

import (
	"fmt"

	"koopacc/src/backend"
	"koopacc/src/backend/xtoa"
	"koopacc/src/ir/koopa"
	"koopacc/src/util"
)

// GenInst emits the assembly for a single instruction. Any kind outside
// the enumerated instruction set indicates a lowering bug, not bad user
// input, and aborts.
func GenInst(v koopa.Value, p *backend.Plan, wr *util.Writer) {
	switch n := v.(type) {
	case *koopa.Alloc:
		// The slot plan.go assigned is the variable's storage; nothing
		// to emit for the allocation itself.
	case *koopa.Load:
		loadStack(wr, T0, p.Offset[n.Src])
		storeStack(wr, T0, p.Offset[v])
	case *koopa.Store:
		genStore(n, p, wr)
	case *koopa.Binary:
		genBinary(n, p, wr)
	case *koopa.Branch:
		GenBranch(n, p, wr)
	case *koopa.Jump:
		GenJump(n, wr)
	case *koopa.Return:
		GenReturn(n, p, wr)
	default:
		panic(fmt.Sprintf("riscv: instruction kind %s cannot appear in a block's instruction stream", v.Kind()))
	}
}

// genStore writes the stored value through T0 into the destination's
// slot. Storing a literal 0 skips the scratch register entirely and
// stores the hardwired zero register instead.
func genStore(n *koopa.Store, p *backend.Plan, wr *util.Writer) {
	if imm, ok := n.Val.(*koopa.Integer); ok && imm.Val == 0 {
		storeStack(wr, Zero, p.Offset[n.Dest])
		return
	}
	loadOperand(n.Val, T0, p, wr)
	storeStack(wr, T0, p.Offset[n.Dest])
}

// loadOperand materialises op's value into reg: an immediate for
// *koopa.Integer, a stack load for *koopa.Ref.
func loadOperand(op koopa.Operand, reg string, p *backend.Plan, wr *util.Writer) {
	switch o := op.(type) {
	case *koopa.Integer:
		wr.Ins2("li", reg, xtoa.ItoA(int(o.Val)))
	case *koopa.Ref:
		loadStack(wr, reg, p.Offset[o.Target])
	}
}

// binaryMnemonic maps the Koopa binary ops that a single RISC-V
// instruction computes directly; the rest are special-cased sequences
// in genBinary.
var binaryMnemonic = map[string]string{
	"add": "add",
	"sub": "sub",
	"mul": "mul",
	"div": "div",
	"mod": "rem",
	"lt":  "slt",
	"gt":  "sgt",
}

// genBinary loads the left operand into T0 and the right into T1,
// computes the result into T1, and stores T1 to the instruction's slot.
func genBinary(n *koopa.Binary, p *backend.Plan, wr *util.Writer) {
	loadOperand(n.L, T0, p, wr)
	loadOperand(n.R, T1, p, wr)

	switch n.Op {
	case "le":
		// a <= b  ==  !(a > b)
		wr.Ins3("sgt", T1, T0, T1)
		wr.Ins2("seqz", T1, T1)
	case "ge":
		// a >= b  ==  !(a < b)
		wr.Ins3("slt", T1, T0, T1)
		wr.Ins2("seqz", T1, T1)
	case "eq":
		wr.Ins3("sub", T1, T0, T1)
		wr.Ins2("seqz", T1, T1)
	case "ne":
		wr.Ins3("sub", T1, T0, T1)
		wr.Ins2("snez", T1, T1)
	case "and", "or":
		// The IR's and/or are logical over arbitrary integers, so both
		// operands are normalised to 0/1 before the bitwise op.
		wr.Ins2("snez", T0, T0)
		wr.Ins2("snez", T1, T1)
		wr.Ins3(n.Op, T1, T0, T1)
	default:
		mnemonic, ok := binaryMnemonic[n.Op]
		if !ok {
			panic(fmt.Sprintf("riscv: unknown binary op %q", n.Op))
		}
		wr.Ins3(mnemonic, T1, T0, T1)
	}

	storeStack(wr, T1, p.Offset[n])
}
