// RISC-V has a downward growing stack that is always 16-byte aligned.
//
// This file holds the register aliases and immediate-range constants the
// emitter shares. There is no register file or allocator to maintain:
// every value lives on the stack (see ../plan.go), so apart from sp, a0
// (the return value) and x0 (the zero register), only the two scratch
// registers t0/t1 and the address-materialisation register t2 are ever
// touched.
package riscv

import (
	"koopacc/src/backend/xtoa"
	"koopacc/src/util"
)

// Aliases for the registers this backend actually touches.
const (
	Zero = "x0"
	Sp   = "sp"
	A0   = "a0"

	// T0 and T1 are the primary data scratch registers: an instruction's
	// left operand is loaded into T0, its right into T1, the result is
	// computed into T1, and T1 is stored back to the result's stack slot.
	T0 = "t0"
	T1 = "t1"

	// T2 is reserved exclusively for materialising an out-of-range stack
	// offset into an address. Reusing T0 for this would clobber the data
	// T0 is already holding whenever a large-offset load or store follows
	// immediately after another use of T0; keeping T2 separate means the
	// two concerns can never alias.
	T2 = "t2"
)

// 12-bit signed immediate range for addi/lw/sw offsets.
const (
	MaxImm = 2047
	MinImm = -2048
)

// loadStack emits a load of the stack slot at offset(sp) into reg,
// materialising the address through T2 when offset falls outside the
// 12-bit range a bare lw can encode.
func loadStack(wr *util.Writer, reg string, offset int) {
	if offset >= MinImm && offset <= MaxImm {
		wr.LoadStore("lw", reg, offset, Sp)
		return
	}
	materializeAddr(wr, offset)
	wr.LoadStoreIndirect("lw", reg, T2)
}

// storeStack emits a store of reg into the stack slot at offset(sp),
// with the same large-offset handling as loadStack.
func storeStack(wr *util.Writer, reg string, offset int) {
	if offset >= MinImm && offset <= MaxImm {
		wr.LoadStore("sw", reg, offset, Sp)
		return
	}
	materializeAddr(wr, offset)
	wr.LoadStoreIndirect("sw", reg, T2)
}

// materializeAddr computes sp+offset into T2. Callers must not have
// live data in T2 across this call; T0/T1 are never touched, so a
// pending data load/store through them survives a large-offset access.
func materializeAddr(wr *util.Writer, offset int) {
	wr.Ins2("li", T2, xtoa.ItoA(offset))
	wr.Ins3("add", T2, Sp, T2)
}
