// grammar.go declares the participle struct-tag grammar for the language's
// concrete syntax tree: a tree of exported structs with `parser:"..."`
// tags, built with participle.Build[*CompUnit]. The tree shape mirrors
// the stratified grammar directly, with one exception: participle cannot express left
// recursion, so every binary-operator stratum (LOrExp, LAndExp, EqExp,
// RelExp, AddExp, MulExp) is parsed here as a seed operand plus a flat,
// repeated (operator, operand) tail. frontend/parser.go's fold step turns
// that flat tail into the left-nested binary tree the rest of the
// compiler expects.
//
// The untagged Pos fields are filled in by participle with each node's
// starting source position; the fold step copies their line numbers onto
// the AST so diagnostics can point at the offending source line.
package grammar

import "github.com/alecthomas/participle/v2/lexer"

// CompUnit is the root of every source file: exactly one function
// definition, matching the single recognised `int main() { ... }` entry
// point.
type CompUnit struct {
	Func *FuncDef `@@`
}

// FuncDef is a function definition. Both "int" and "void" return kinds
// parse, with any identifier as the name and zero parameters, so a
// function other than "int main()" still parses as a FuncDef and the
// compiler can reject it with a proper diagnostic instead of a parse
// failure. Any other return type, or a non-empty parameter list, is a
// parse failure.
type FuncDef struct {
	Pos     lexer.Position
	RetType string `@("int"|"void")`
	Name    string `@Ident "(" ")"`
	Body    *Block `@@`
}

// Block is a brace-delimited sequence of declarations and statements.
type Block struct {
	Items []*BlockItem `"{" @@* "}"`
}

// BlockItem is either a declaration or a statement.
type BlockItem struct {
	Decl *Decl `  @@`
	Stmt *Stmt `| @@`
}

// Decl is a constant or variable declaration.
type Decl struct {
	Const *ConstDecl `  @@`
	Var   *VarDecl   `| @@`
}

// ConstDecl declares one or more named compile-time constants.
type ConstDecl struct {
	Defs []*ConstDef `"const" "int" @@ ("," @@)* ";"`
}

// ConstDef binds a name to a constant-valued initializer expression.
type ConstDef struct {
	Pos  lexer.Position
	Name string `@Ident "="`
	Exp  *Exp   `@@`
}

// VarDecl declares one or more mutable local variables.
type VarDecl struct {
	Defs []*VarDef `"int" @@ ("," @@)* ";"`
}

// VarDef binds a name, with an optional initializer expression.
type VarDef struct {
	Pos  lexer.Position
	Name string `@Ident`
	Exp  *Exp   `("=" @@)?`
}

// Stmt is any statement, parsed using the dangling-else-correct
// OpenStmt/ClosedStmt/NonIfStmt stratification. Alternative order
// matters under participle's ordered choice: ClosedStmt must be tried
// first, so that a statement with a trailing "else" is consumed whole.
// Were OpenStmt tried first, its bare-if production would match
// "if (c) s" and commit, stranding the "else" that follows -- the
// repetition in Block never backtracks into an already-matched item.
// With Closed first, a dangling "else" always attaches to the nearest
// "if": the closed attempt over the inner if consumes it, and only when
// no "else" remains does the whole statement fall through to OpenStmt.
type Stmt struct {
	Closed *ClosedStmt `  @@`
	Open   *OpenStmt   `| @@`
}

// OpenStmt is an "if" whose rightmost arm is not closed by a matching
// "else": either an "if/else" pair whose else-arm is itself open, or a
// bare "if (Exp) Stmt". The else-carrying production is tried first for
// the same commit-ordering reason as in Stmt. Splitting the two shapes
// into separate structs (rather than packing both into OpenStmt's own
// field sequence) keeps each field list a single grammar production.
type OpenStmt struct {
	Else *IfElseOpen `  @@`
	Bare *IfBareOpen `| @@`
}

// IfBareOpen is "if" "(" Exp ")" Stmt with no "else".
type IfBareOpen struct {
	Pos  lexer.Position
	Cond *Exp  `"if" "(" @@ ")"`
	Then *Stmt `@@`
}

// IfElseOpen is "if" "(" Exp ")" ClosedStmt "else" OpenStmt: the
// else-arm is itself open, which is what makes the whole statement open.
type IfElseOpen struct {
	Pos  lexer.Position
	Cond *Exp        `"if" "(" @@ ")"`
	Then *ClosedStmt `@@ "else"`
	Else *OpenStmt   `@@`
}

// ClosedStmt is either a non-if statement, or a fully-bracketed
// "if/else" whose every arm is itself closed.
type ClosedStmt struct {
	NonIf *NonIfStmt    `  @@`
	Else  *IfElseClosed `| @@`
}

// IfElseClosed is "if" "(" Exp ")" ClosedStmt "else" ClosedStmt.
type IfElseClosed struct {
	Pos  lexer.Position
	Cond *Exp        `"if" "(" @@ ")"`
	Then *ClosedStmt `@@ "else"`
	Else *ClosedStmt `@@`
}

// NonIfStmt is every statement form that does not start with "if":
// assignment, bare expression, empty statement, return, and nested block.
type NonIfStmt struct {
	Pos    lexer.Position
	Assign *AssignStmt `  @@`
	Return *ReturnStmt `| @@`
	Block  *Block      `| @@`
	Exp    *Exp        `| @@ ";"`
	Empty  bool        `| @";"`
}

// AssignStmt stores the value of an expression into a previously declared
// variable.
type AssignStmt struct {
	Pos  lexer.Position
	Name string `@Ident "="`
	Exp  *Exp   `@@ ";"`
}

// ReturnStmt returns from the enclosing function. The grammar admits no
// bare "return;" form: every return carries a value expression.
type ReturnStmt struct {
	Pos lexer.Position
	Exp *Exp `"return" @@ ";"`
}

// Exp is the root of the expression grammar; it is exactly a LOrExp.
type Exp struct {
	LOr *LOrExp `@@`
}

// LOrExp is a non-short-circuit logical-or chain: seed LAndExp, then zero
// or more "||" LAndExp tails.
type LOrExp struct {
	Head *LAndExp   `@@`
	Tail []*LOrTail `@@*`
}

// LOrTail is one "||" operand of an LOrExp's flat tail.
type LOrTail struct {
	Pos lexer.Position
	Op  string   `@"||"`
	Rhs *LAndExp `@@`
}

// LAndExp is a non-short-circuit logical-and chain.
type LAndExp struct {
	Head *EqExp      `@@`
	Tail []*LAndTail `@@*`
}

// LAndTail is one "&&" operand of an LAndExp's flat tail.
type LAndTail struct {
	Pos lexer.Position
	Op  string `@"&&"`
	Rhs *EqExp `@@`
}

// EqExp is an equality-comparison chain.
type EqExp struct {
	Head *RelExp   `@@`
	Tail []*EqTail `@@*`
}

// EqTail is one "==" or "!=" operand of an EqExp's flat tail.
type EqTail struct {
	Pos lexer.Position
	Op  string  `@("=="|"!=")`
	Rhs *RelExp `@@`
}

// RelExp is a relational-comparison chain.
type RelExp struct {
	Head *AddExp    `@@`
	Tail []*RelTail `@@*`
}

// RelTail is one "<", ">", "<=" or ">=" operand of a RelExp's flat tail.
type RelTail struct {
	Pos lexer.Position
	Op  string  `@("<"|">"|"<="|">=")`
	Rhs *AddExp `@@`
}

// AddExp is an additive chain.
type AddExp struct {
	Head *MulExp    `@@`
	Tail []*AddTail `@@*`
}

// AddTail is one "+" or "-" operand of an AddExp's flat tail.
type AddTail struct {
	Pos lexer.Position
	Op  string  `@("+"|"-")`
	Rhs *MulExp `@@`
}

// MulExp is a multiplicative chain.
type MulExp struct {
	Head *UnaryExp  `@@`
	Tail []*MulTail `@@*`
}

// MulTail is one "*", "/" or "%" operand of a MulExp's flat tail.
type MulTail struct {
	Pos lexer.Position
	Op  string    `@("*"|"/"|"%")`
	Rhs *UnaryExp `@@`
}

// UnaryExp is either a bare primary expression or a unary "+", "-" or "!"
// applied to another UnaryExp.
type UnaryExp struct {
	Pos     lexer.Position
	Op      string      `(  @("+"|"-"|"!")`
	Operand *UnaryExp   `   @@ )`
	Primary *PrimaryExp `| @@`
}

// PrimaryExp is a parenthesised expression, a variable/constant reference,
// or an integer literal.
type PrimaryExp struct {
	Pos   lexer.Position
	Paren *Exp   `  "(" @@ ")"`
	LVal  string `| @Ident`
	Num   *int64 `| @IntConst`
}
