// stmt.go lowers frontend.Stmt and frontend.Block nodes. Once a
// ReturnStmt has been lowered, ctx.returned is set and lowerBlock stops
// walking the remaining items in that block: they are unreachable, and
// emitting instructions for them after the block's terminator would
// produce IR with more than one terminator in a single basic block.
package ir

import (
	"koopacc/src/frontend"
	"koopacc/src/util"
	"koopacc/src/util/diag"
)

// lowerBlock lowers every item of a block in order, opening and closing
// its own scope frame around them.
func (c *ctx) lowerBlock(b *frontend.Block) {
	c.sym.Push()
	defer c.sym.Pop()

	for _, item := range b.Items {
		if c.returned {
			break
		}
		c.lowerBlockItem(item)
	}
}

func (c *ctx) lowerBlockItem(item frontend.BlockItem) {
	switch n := item.(type) {
	case *frontend.Decl:
		c.lowerDecl(n)
	case frontend.Stmt:
		c.lowerStmt(n)
	}
}

func (c *ctx) lowerDecl(d *frontend.Decl) {
	for _, def := range d.Defs {
		if d.Const {
			val, err := FoldConst(def.Init, c.sym)
			if err != nil {
				c.error(err)
			}
			c.sym.DeclareConst(def.Name, val)
			continue
		}

		// Reserve the IR name before lowering the initializer, but only
		// bind it afterwards: the initializer must still see whatever
		// name was previously bound to def.Name (e.g. an outer variable
		// of the same source name), not this not-yet-declared one.
		irName := c.sym.ReserveVarName(def.Name)
		c.emit("%s = alloc i32", irName)
		var v value
		if def.Init != nil {
			v = c.lowerExp(def.Init)
		}
		c.sym.BindVarName(def.Name, irName)
		if def.Init != nil {
			c.emit("store %s, %s", v.operand(), irName)
		}
	}
}

func (c *ctx) lowerStmt(s frontend.Stmt) {
	switch n := s.(type) {
	case *frontend.AssignStmt:
		c.lowerAssign(n)
	case *frontend.ReturnStmt:
		c.lowerReturn(n)
	case *frontend.BlockStmt:
		c.lowerBlock(n.Block)
	case *frontend.ExpStmt:
		c.lowerExp(n.Exp)
	case *frontend.EmptyStmt:
		// Nothing to lower.
	case *frontend.IfStmt:
		c.lowerIf(n)
	}
}

func (c *ctx) lowerAssign(n *frontend.AssignStmt) {
	v, ok := c.sym.Lookup(n.Name)
	if !ok {
		c.error(unboundAssign(n))
		return
	}
	vn, ok := v.(VarName)
	if !ok {
		c.error(assignToConst(n))
		return
	}
	val := c.lowerExp(n.Exp)
	c.emit("store %s, %s", val.operand(), vn.IRName)
}

// lowerReturn lowers a return statement. Every ReturnStmt the parser
// accepts carries a value expression; there is no bare "return;" form
// to lower, matching the IR grammar's only two return shapes,
// "ret <val>" and the synthesized fallthrough "ret undef".
func (c *ctx) lowerReturn(n *frontend.ReturnStmt) {
	v := c.lowerExp(n.Exp)
	c.emit("ret %s", v.operand())
	c.returned = true
}

// lowerIf lowers a conditional. Else is nil for an if with no else arm.
// Each if-statement gets its own then/else/end label triple from the
// context's label counter, so nested ifs never collide.
func (c *ctx) lowerIf(n *frontend.IfStmt) {
	cond := c.lowerExp(n.Cond)

	then := c.lbl.Next(util.LabelThen)
	end := c.lbl.Next(util.LabelEnd)

	if n.Else == nil {
		c.emit("br %s, %s, %s", cond.operand(), then, end)
		c.emitLabel(then)
		c.returned = false
		c.lowerStmt(n.Then)
		if !c.returned {
			c.emit("jump %s", end)
		}
		c.emitLabel(end)
		c.returned = false
		return
	}

	els := c.lbl.Next(util.LabelElse)
	c.emit("br %s, %s, %s", cond.operand(), then, els)

	c.emitLabel(then)
	c.returned = false
	c.lowerStmt(n.Then)
	if !c.returned {
		c.emit("jump %s", end)
	}

	c.emitLabel(els)
	c.returned = false
	c.lowerStmt(n.Else)
	if !c.returned {
		c.emit("jump %s", end)
	}

	c.emitLabel(end)
	// Restored to the pre-if value rather than thenReturned&&elseReturned:
	// lowerBlock only ever reaches an IfStmt while c.returned is already
	// false, so the conservative restore is always false here too. This
	// keeps statements following an if/else where both arms return from
	// being silently dropped as unreachable.
	c.returned = false
}

func unboundAssign(n *frontend.AssignStmt) *diag.Error {
	return diag.NewError(diag.UnboundName, n.Line, 0, "identifier %q is not declared", n.Name)
}

func assignToConst(n *frontend.AssignStmt) *diag.Error {
	return diag.NewError(diag.AssignToConst, n.Line, 0, "cannot assign to constant %q", n.Name)
}
