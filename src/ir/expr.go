// expr.go lowers frontend.Exp trees to IR values. Two conventions here
// are deliberate, not incidental, and both affect the exact temporary
// numbering a test asserts against: binary operators evaluate their
// right operand before their left (lowerBinary calls lowerExp(n.R)
// before lowerExp(n.L)), and "&&"/"||" are never short-circuited -- both
// operands are always lowered, normalised to 0/1 with "ne ..., 0", and
// combined with a bitwise and/or. This non-short-circuit evaluation is a
// pinned choice that departs from C's usual short-circuit semantics.
//
// Every unary and binary operator application emits its instruction
// unconditionally, even when every operand is already a compile-time Int
// (e.g. "-1" lowers to an emitted "sub 0, 1", never folded away): the
// only values that skip emission are a bare integer literal and a
// reference to a name bound as ConstVal. Constant folding proper only
// ever runs over a ConstDef initializer, in constfold.go.

package ir

import (
	"koopacc/src/frontend"
	"koopacc/src/util/diag"
)

// lowerExp lowers an expression to a value: a bare literal or a
// ConstVal-bound name resolves to an Int with nothing emitted; every
// other shape emits at least one instruction.
func (c *ctx) lowerExp(e frontend.Exp) value {
	switch n := e.(type) {
	case *frontend.IntLit:
		return constValue(n.Val)

	case *frontend.LValExp:
		return c.lowerLVal(n)

	case *frontend.UnaryExp:
		return c.lowerUnary(n)

	case *frontend.BinaryExp:
		if n.Op == "&&" || n.Op == "||" {
			return c.lowerLogical(n)
		}
		return c.lowerBinary(n)

	default:
		c.error(diag.NewError(diag.ParseFailure, 0, 0, "unsupported expression node %T", e))
		return constValue(0)
	}
}

// lowerLVal resolves a name to its current binding: a constant value
// substitutes directly, a variable emits a load from its alloc slot.
func (c *ctx) lowerLVal(n *frontend.LValExp) value {
	v, ok := c.sym.Lookup(n.Name)
	if !ok {
		c.error(diag.NewError(diag.UnboundName, n.Line, 0, "identifier %q is not declared", n.Name))
		return constValue(0)
	}
	switch b := v.(type) {
	case ConstVal:
		return constValue(b.Val)
	case VarName:
		dst := c.newReg()
		c.emit("%s = load %s", dst, b.IRName)
		return regValue(dst)
	default:
		return constValue(0)
	}
}

func (c *ctx) lowerUnary(n *frontend.UnaryExp) value {
	x := c.lowerExp(n.X)
	switch n.Op {
	case "+":
		return x
	case "-":
		dst := c.newReg()
		c.emit("%s = sub 0, %s", dst, x.operand())
		return regValue(dst)
	case "!":
		dst := c.newReg()
		c.emit("%s = eq %s, 0", dst, x.operand())
		return regValue(dst)
	default:
		c.error(diag.NewError(diag.ParseFailure, n.Line, 0, "unknown unary operator %q", n.Op))
		return constValue(0)
	}
}

// koopaOp maps a surface comparison/arithmetic operator to its Koopa IR
// instruction mnemonic.
var koopaOp = map[string]string{
	"+":  "add",
	"-":  "sub",
	"*":  "mul",
	"/":  "div",
	"%":  "mod",
	"<":  "lt",
	">":  "gt",
	"<=": "le",
	">=": "ge",
	"==": "eq",
	"!=": "ne",
}

// lowerBinary lowers every binary operator except "&&"/"||". The
// instruction is emitted unconditionally; only its printed operands
// (l.operand()/r.operand()) collapse to a literal when an operand is a
// compile-time Int, per expr.go's top-of-file note.
func (c *ctx) lowerBinary(n *frontend.BinaryExp) value {
	r := c.lowerExp(n.R)
	l := c.lowerExp(n.L)

	mnemonic, ok := koopaOp[n.Op]
	if !ok {
		c.error(diag.NewError(diag.ParseFailure, n.Line, 0, "unknown binary operator %q", n.Op))
		return constValue(0)
	}
	dst := c.newReg()
	c.emit("%s = %s %s, %s", dst, mnemonic, l.operand(), r.operand())
	return regValue(dst)
}

// lowerLogical lowers "&&"/"||" without short-circuiting: both operands
// are always evaluated (right before left, per the package-wide
// convention), then normalised to 0/1 -- left first, right second -- and
// combined with a bitwise and/or.
func (c *ctx) lowerLogical(n *frontend.BinaryExp) value {
	r := c.lowerExp(n.R)
	l := c.lowerExp(n.L)

	lb := c.newReg()
	c.emit("%s = ne %s, 0", lb, l.operand())
	rb := c.newReg()
	c.emit("%s = ne %s, 0", rb, r.operand())

	dst := c.newReg()
	if n.Op == "&&" {
		c.emit("%s = and %s, %s", dst, lb, rb)
	} else {
		c.emit("%s = or %s, %s", dst, lb, rb)
	}
	return regValue(dst)
}
