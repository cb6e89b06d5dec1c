// lower.go drives AST-to-IR lowering: it owns the per-function lowering
// context (the current symbol table, the growing textual IR buffer, the
// next-temporary-value counter and the label counter) and walks a
// frontend.CompUnit into the textual, Koopa-flavoured IR the ir/koopa
// package's parser later reads back into an in-memory graph. Every
// lowering helper below takes *ctx by pointer and appends to ctx.out
// directly, mirroring the Writer-threaded style backend/asm.go uses for
// assembly emission (see ../util/io.go).

package ir

import (
	"fmt"
	"strings"

	"koopacc/src/frontend"
	"koopacc/src/util"
	"koopacc/src/util/diag"
)

// ctx is the mutable state threaded through one function's lowering.
// Nothing here is global: a fresh ctx is built per function, matching
// the design note that every lowering counter is owned by an explicit
// context record rather than module state.
type ctx struct {
	sym      *SymTab
	out      strings.Builder
	valCnt   int
	lbl      util.Counter
	returned bool
	diags    []*diag.Error
}

// value is the result of lowering an expression: either a compile-time
// constant, or the name of the IR value (register or memory slot) that
// holds it at this point in the instruction stream.
type value struct {
	isConst bool
	imm     int32
	reg     string
}

func constValue(v int32) value { return value{isConst: true, imm: v} }
func regValue(r string) value  { return value{reg: r} }

// operand renders v as it would appear as an instruction operand: a
// decimal literal for a constant, the value name otherwise.
func (v value) operand() string {
	if v.isConst {
		return fmt.Sprintf("%d", v.imm)
	}
	return v.reg
}

// newReg allocates and returns the next temporary value name, %0, %1, ...
func (c *ctx) newReg() string {
	r := fmt.Sprintf("%%%d", c.valCnt)
	c.valCnt++
	return r
}

// emit appends a formatted instruction line, indented to match Koopa's
// textual IR convention of two leading spaces for every instruction
// inside a basic block.
func (c *ctx) emit(format string, args ...interface{}) {
	c.out.WriteString("  ")
	c.out.WriteString(fmt.Sprintf(format, args...))
	c.out.WriteString("\n")
}

// emitLabel appends a basic block label line with no leading indent.
func (c *ctx) emitLabel(name string) {
	c.out.WriteString(name)
	c.out.WriteString(":\n")
}

// error records a diagnostic without aborting lowering, matching the
// recoverable-vs-fatal policy spec'd for each diag.Kind.
func (c *ctx) error(e *diag.Error) {
	c.diags = append(c.diags, e)
}

// Lower lowers a whole source file to textual IR. Only a single function,
// the recognised `int main()` entry point, is accepted; any other
// function definition is reported as diag.UnsupportedFunction and
// lowering stops before emitting anything.
func Lower(cu *frontend.CompUnit) (string, []*diag.Error) {
	f := cu.Func
	if f.Name != "main" || f.RetKind != frontend.KindInt {
		return "", []*diag.Error{diag.NewError(diag.UnsupportedFunction, f.Line, 0,
			"function %q is not supported; only a single int main() is", f.Name)}
	}

	c := &ctx{sym: NewSymTab()}
	c.sym.Push()
	defer c.sym.Pop()

	c.out.WriteString(fmt.Sprintf("fun @%s(): i32 {\n", f.Name))
	c.emitLabel("%entry")
	c.lowerBlock(f.Body)
	if !c.returned {
		// Control can fall off the end of main without every path having
		// executed a return (e.g. an if with no covering else); per the
		// unreachable-fallthrough design, a trailing "ret undef" closes
		// the current (last) block's terminator requirement without
		// claiming any particular return value.
		c.emit("ret undef")
	}
	c.out.WriteString("}\n")

	return c.out.String(), c.diags
}
