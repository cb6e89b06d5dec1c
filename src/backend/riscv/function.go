// function.go generates a function's prologue and epilogue: growing and
// shrinking the stack frame Plan sized. The single function this target
// compiles is parameterless and call-free, and its values live in stack
// slots rather than allocated registers, so the frame holds value slots
// only -- no return address or callee-saved register ever needs
// spilling.
package riscv

import (
	"koopacc/src/backend"
	"koopacc/src/backend/xtoa"
	"koopacc/src/ir/koopa"
	"koopacc/src/util"
)

// GenFunction emits a complete function definition: label, prologue,
// then every basic block's label and instructions (a return terminator
// emits its own epilogue before "ret", see branch.go's GenReturn).
// p must have been built by backend.PlanFunction for f.
func GenFunction(f *koopa.Function, p *backend.Plan, wr *util.Writer) {
	wr.Directive("globl %s", f.Name)
	wr.Label(f.Name)
	genPrologue(p, wr)

	for _, b := range f.Blocks {
		wr.Label(blockLabel(b))
		for _, inst := range b.Insts {
			GenInst(inst, p, wr)
		}
	}
}

// blockLabel renders a koopa block name as an assembler label by
// stripping the "%" sigil: "%then1" becomes "then1". With a single
// function per program, the bare names can never collide across
// functions.
func blockLabel(b *koopa.BasicBlock) string {
	return b.Name[1:]
}

// genPrologue grows the stack by the planned frame size. This target
// never calls another function (the IR has no "call" instruction and
// main is the only function), so there is no return address to spill --
// the frame holds value slots only, exactly as Plan sized it. A
// zero-sized frame emits no prologue at all. T0 is free to carry a
// large frame size here: nothing is live in any scratch register at a
// function boundary.
func genPrologue(p *backend.Plan, wr *util.Writer) {
	switch {
	case p.FrameSize == 0:
	case -p.FrameSize >= MinImm:
		wr.Ins2imm("addi", Sp, Sp, -p.FrameSize)
	default:
		wr.Ins2("li", T0, xtoa.ItoA(p.FrameSize))
		wr.Ins3("sub", Sp, Sp, T0)
	}
}

// genEpilogue shrinks the stack back down before a "ret". A frame of
// exactly 2048 bytes grows with a single addi but must shrink through
// the li/add form, since +2048 falls just outside addi's immediate
// range.
func genEpilogue(p *backend.Plan, wr *util.Writer) {
	switch {
	case p.FrameSize == 0:
	case p.FrameSize <= MaxImm:
		wr.Ins2imm("addi", Sp, Sp, p.FrameSize)
	default:
		wr.Ins2("li", T0, xtoa.ItoA(p.FrameSize))
		wr.Ins3("add", Sp, Sp, T0)
	}
}
