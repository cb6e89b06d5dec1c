// branch.go emits the three terminator instructions every basic block
// ends with: conditional branch, unconditional jump, and return.
package riscv

import (
	"koopacc/src/backend"
	"koopacc/src/ir/koopa"
	"koopacc/src/util"
)

// GenBranch loads the condition into T0 and branches to True on
// non-zero, False otherwise. A literal condition collapses to a single
// unconditional jump to whichever branch it statically takes, since the
// other arm can never run.
func GenBranch(n *koopa.Branch, p *backend.Plan, wr *util.Writer) {
	if imm, ok := n.Cond.(*koopa.Integer); ok {
		if imm.Val != 0 {
			wr.Ins1("j", blockLabel(n.True))
		} else {
			wr.Ins1("j", blockLabel(n.False))
		}
		return
	}
	loadOperand(n.Cond, T0, p, wr)
	wr.Ins2("bnez", T0, blockLabel(n.True))
	wr.Ins1("j", blockLabel(n.False))
}

// GenJump emits an unconditional jump to the target block.
func GenJump(n *koopa.Jump, wr *util.Writer) {
	wr.Ins1("j", blockLabel(n.Target))
}

// GenReturn loads the return value into a0 (nothing is loaded for the
// unreachable "ret undef" form), restores the stack pointer, and
// returns.
func GenReturn(n *koopa.Return, p *backend.Plan, wr *util.Writer) {
	if n.Val != nil {
		loadOperand(n.Val, A0, p, wr)
	}
	genEpilogue(p, wr)
	wr.WriteString("  ret\n")
}
