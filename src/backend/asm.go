// asm.go is GenerateAssembler, the backend's single entry point: plan
// every function's stack frame, then emit its RISC-V assembly through
// the Writer/listener plumbing the driver set up.
package backend

import (
	"koopacc/src/backend/riscv"
	"koopacc/src/ir/koopa"
	"koopacc/src/util"
)

// GenerateAssembler lowers prog to RISC-V assembly text and writes it
// through the Writer/listener pipeline util.ListenWrite set up. Callers
// must have called util.ListenWrite before invoking this and util.Close
// after.
func GenerateAssembler(prog *koopa.Program) {
	wr := util.NewWriter()
	defer wr.Close()

	wr.Directive("text")
	for _, f := range prog.Funcs {
		p := PlanFunction(f)
		riscv.GenFunction(f, p, &wr)
	}
	wr.Flush()
}
