package koopa

// BasicBlock is a straight-line sequence of instructions ending in
// exactly one terminator (Branch, Jump or Return). A function's entry
// block is always laid out first in Function.Blocks, which the stack
// planner and the backend both rely on.
type BasicBlock struct {
	Name  string
	Insts []Value
}

// Terminator returns the block's last instruction, or nil if the block
// is empty (which never happens for a well-formed graph: every block
// produced by ir.Lower ends in br/jump/ret).
func (b *BasicBlock) Terminator() Value {
	if len(b.Insts) == 0 {
		return nil
	}
	return b.Insts[len(b.Insts)-1]
}
