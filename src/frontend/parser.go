// parser.go drives participle over the grammar package's struct-tag
// grammar and folds the resulting parse tree into the canonical AST of
// ast.go. The fold step does two jobs: flattening each binary-operator
// stratum's seed-plus-tail shape into left-nested BinaryExp nodes (in
// the order the tail was scanned, which is left-to-right, giving
// standard left-associativity), and collapsing the grammar's
// OpenStmt/ClosedStmt/NonIfStmt split into a single IfStmt shape now that
// dangling-else has already been resolved by participle's ordered choice.

package frontend

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"koopacc/src/frontend/grammar"
)

// The grammar's OpenStmt/ClosedStmt split cannot be disambiguated by a
// fixed token window: a closed if/else and a bare if agree on every token
// up to an arbitrarily distant "else". MaxLookahead lets participle try a
// whole alternative and back out, which is what the ordered-choice
// dangling-else encoding in the grammar package relies on.
var parser = participle.MustBuild[grammar.CompUnit](
	participle.Lexer(NewDefinition()),
	participle.UseLookahead(participle.MaxLookahead),
)

// Parse lexes and parses src, returning the folded AST of a complete
// source file.
func Parse(src string) (*CompUnit, error) {
	cu, err := parser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("parse failure: %w", err)
	}
	return foldCompUnit(cu), nil
}

func foldCompUnit(cu *grammar.CompUnit) *CompUnit {
	return &CompUnit{Func: foldFuncDef(cu.Func)}
}

func foldFuncDef(f *grammar.FuncDef) *FuncDef {
	kind := KindInt
	if f.RetType == "void" {
		kind = KindVoid
	}
	return &FuncDef{Name: f.Name, RetKind: kind, Body: foldBlock(f.Body), Line: f.Pos.Line}
}

func foldBlock(b *grammar.Block) *Block {
	blk := &Block{Items: make([]BlockItem, 0, len(b.Items))}
	for _, it := range b.Items {
		blk.Items = append(blk.Items, foldBlockItem(it))
	}
	return blk
}

func foldBlockItem(it *grammar.BlockItem) BlockItem {
	if it.Decl != nil {
		return foldDecl(it.Decl)
	}
	return foldStmt(it.Stmt)
}

func foldDecl(d *grammar.Decl) *Decl {
	if d.Const != nil {
		defs := make([]Def, 0, len(d.Const.Defs))
		for _, cd := range d.Const.Defs {
			defs = append(defs, Def{Name: cd.Name, Init: foldExp(cd.Exp), Line: cd.Pos.Line})
		}
		return &Decl{Const: true, Defs: defs}
	}
	defs := make([]Def, 0, len(d.Var.Defs))
	for _, vd := range d.Var.Defs {
		var init Exp
		if vd.Exp != nil {
			init = foldExp(vd.Exp)
		}
		defs = append(defs, Def{Name: vd.Name, Init: init, Line: vd.Pos.Line})
	}
	return &Decl{Const: false, Defs: defs}
}

func foldStmt(s *grammar.Stmt) Stmt {
	if s.Open != nil {
		return foldOpenStmt(s.Open)
	}
	return foldClosedStmt(s.Closed)
}

func foldOpenStmt(s *grammar.OpenStmt) Stmt {
	if s.Bare != nil {
		return &IfStmt{Cond: foldExp(s.Bare.Cond), Then: foldStmt(s.Bare.Then), Line: s.Bare.Pos.Line}
	}
	return &IfStmt{
		Cond: foldExp(s.Else.Cond),
		Then: foldClosedStmt(s.Else.Then),
		Else: foldOpenStmt(s.Else.Else),
		Line: s.Else.Pos.Line,
	}
}

func foldClosedStmt(s *grammar.ClosedStmt) Stmt {
	if s.NonIf != nil {
		return foldNonIfStmt(s.NonIf)
	}
	return &IfStmt{
		Cond: foldExp(s.Else.Cond),
		Then: foldClosedStmt(s.Else.Then),
		Else: foldClosedStmt(s.Else.Else),
		Line: s.Else.Pos.Line,
	}
}

func foldNonIfStmt(s *grammar.NonIfStmt) Stmt {
	switch {
	case s.Assign != nil:
		return &AssignStmt{Name: s.Assign.Name, Exp: foldExp(s.Assign.Exp), Line: s.Assign.Pos.Line}
	case s.Return != nil:
		return &ReturnStmt{Exp: foldExp(s.Return.Exp), Line: s.Return.Pos.Line}
	case s.Block != nil:
		return &BlockStmt{Block: foldBlock(s.Block)}
	case s.Exp != nil:
		return &ExpStmt{Exp: foldExp(s.Exp), Line: s.Pos.Line}
	default:
		return &EmptyStmt{}
	}
}

func foldExp(e *grammar.Exp) Exp {
	return foldLOr(e.LOr)
}

func foldLOr(e *grammar.LOrExp) Exp {
	acc := foldLAnd(e.Head)
	for _, t := range e.Tail {
		acc = &BinaryExp{Op: "||", L: acc, R: foldLAnd(t.Rhs), Line: t.Pos.Line}
	}
	return acc
}

func foldLAnd(e *grammar.LAndExp) Exp {
	acc := foldEq(e.Head)
	for _, t := range e.Tail {
		acc = &BinaryExp{Op: "&&", L: acc, R: foldEq(t.Rhs), Line: t.Pos.Line}
	}
	return acc
}

func foldEq(e *grammar.EqExp) Exp {
	acc := foldRel(e.Head)
	for _, t := range e.Tail {
		acc = &BinaryExp{Op: t.Op, L: acc, R: foldRel(t.Rhs), Line: t.Pos.Line}
	}
	return acc
}

func foldRel(e *grammar.RelExp) Exp {
	acc := foldAdd(e.Head)
	for _, t := range e.Tail {
		acc = &BinaryExp{Op: t.Op, L: acc, R: foldAdd(t.Rhs), Line: t.Pos.Line}
	}
	return acc
}

func foldAdd(e *grammar.AddExp) Exp {
	acc := foldMul(e.Head)
	for _, t := range e.Tail {
		acc = &BinaryExp{Op: t.Op, L: acc, R: foldMul(t.Rhs), Line: t.Pos.Line}
	}
	return acc
}

func foldMul(e *grammar.MulExp) Exp {
	acc := foldUnary(e.Head)
	for _, t := range e.Tail {
		acc = &BinaryExp{Op: t.Op, L: acc, R: foldUnary(t.Rhs), Line: t.Pos.Line}
	}
	return acc
}

func foldUnary(e *grammar.UnaryExp) Exp {
	if e.Primary != nil {
		return foldPrimary(e.Primary)
	}
	return &UnaryExp{Op: e.Op, X: foldUnary(e.Operand), Line: e.Pos.Line}
}

func foldPrimary(e *grammar.PrimaryExp) Exp {
	switch {
	case e.Paren != nil:
		return foldExp(e.Paren)
	case e.Num != nil:
		return &IntLit{Val: int32(*e.Num), Line: e.Pos.Line}
	default:
		return &LValExp{Name: e.LVal, Line: e.Pos.Line}
	}
}
