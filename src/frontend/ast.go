// ast.go defines the canonical abstract syntax tree that the rest of the
// compiler consumes. It deliberately does not mirror grammar.CompUnit
// one-for-one: every binary-operator stratum in the grammar package is a
// seed-plus-flat-tail shape forced on it by participle's inability to
// parse left recursion, while this tree holds the left-nested binary
// expression shape ir.Lower (see ../ir) actually walks.

package frontend

// CompUnit is a whole source file: exactly one function definition.
type CompUnit struct {
	Func *FuncDef
}

// RetKind is a function's declared return kind.
type RetKind int

const (
	KindInt RetKind = iota
	KindVoid
)

// FuncDef is a function definition with its name, declared return kind,
// and body. Only a single "int main()" is ever accepted past lowering,
// but both return kinds are represented here so a "void"-returning
// definition is rejected through the normal diagnostic path rather than
// failing to parse at all.
type FuncDef struct {
	Name    string
	RetKind RetKind
	Body    *Block
	Line    int
}

// Block is a brace-delimited sequence of block items, each introducing at
// most one new lexical scope frame (see ir.SymTab).
type Block struct {
	Items []BlockItem
}

// BlockItem is either a Decl or a Stmt.
type BlockItem interface {
	blockItem()
}

// Decl is a constant or variable declaration carrying one or more Defs.
type Decl struct {
	Const bool
	Defs  []Def
}

func (*Decl) blockItem() {}

// Def binds a single name. Init is nil for a VarDef with no initializer;
// it is never nil for a ConstDef, since the grammar requires one.
type Def struct {
	Name string
	Init Exp
	Line int
}

// Stmt is any executable statement.
type Stmt interface {
	BlockItem
	stmt()
}

// AssignStmt stores Exp's value into the variable named Name.
type AssignStmt struct {
	Name string
	Exp  Exp
	Line int
}

func (*AssignStmt) blockItem() {}
func (*AssignStmt) stmt()      {}

// ReturnStmt returns from the enclosing function with Exp's value; the
// grammar admits no bare "return;" form.
type ReturnStmt struct {
	Exp  Exp
	Line int
}

func (*ReturnStmt) blockItem() {}
func (*ReturnStmt) stmt()      {}

// BlockStmt is a nested block used as a statement, introducing its own
// scope frame.
type BlockStmt struct {
	Block *Block
}

func (*BlockStmt) blockItem() {}
func (*BlockStmt) stmt()      {}

// ExpStmt evaluates Exp and discards the result.
type ExpStmt struct {
	Exp  Exp
	Line int
}

func (*ExpStmt) blockItem() {}
func (*ExpStmt) stmt()      {}

// EmptyStmt is a bare ";".
type EmptyStmt struct{}

func (*EmptyStmt) blockItem() {}
func (*EmptyStmt) stmt()      {}

// IfStmt is a conditional. Else is nil when the statement has no "else"
// arm. Dangling-else resolution has already happened in parser.go's fold
// step by the time an IfStmt exists: whichever grammar alternative
// matched (OpenStmt/ClosedStmt) is erased here, because by this point
// there is nothing left to disambiguate.
type IfStmt struct {
	Cond Exp
	Then Stmt
	Else Stmt
	Line int
}

func (*IfStmt) blockItem() {}
func (*IfStmt) stmt()      {}

// Exp is any expression node.
type Exp interface {
	exp()
}

// BinaryExp is a left-nested binary operation. Op is one of:
// "||" "&&" "==" "!=" "<" ">" "<=" ">=" "+" "-" "*" "/" "%".
type BinaryExp struct {
	Op   string
	L, R Exp
	Line int
}

func (*BinaryExp) exp() {}

// UnaryExp is a unary operation. Op is one of "+" "-" "!".
type UnaryExp struct {
	Op   string
	X    Exp
	Line int
}

func (*UnaryExp) exp() {}

// IntLit is an integer literal.
type IntLit struct {
	Val  int32
	Line int
}

func (*IntLit) exp() {}

// LValExp is a reference to a previously declared name.
type LValExp struct {
	Name string
	Line int
}

func (*LValExp) exp() {}
