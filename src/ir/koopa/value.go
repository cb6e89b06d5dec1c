package koopa

import "fmt"

// Value is any node that can appear in a basic block's instruction
// stream, or be referenced as an operand. Every instruction kind
// implements it, so callers that only care about graph shape (the stack
// planner, the backend emitter) never need to type-switch before asking
// for a value's identity.
type Value interface {
	// Name is the value's printed name: "%3" for a temporary, "@a_1" for
	// an allocated variable. Unit-typed instructions (Store, Branch, Jump,
	// Return) have no result and return "". An Integer is not a Value; it
	// only appears as an Operand.
	Name() string
	// Kind identifies the concrete instruction shape.
	Kind() Kind
	// IsUnit reports whether this instruction produces no value. The
	// stack planner (see ../../backend/plan.go) skips every unit-typed
	// instruction: stack slots are assigned only to instructions that
	// produce a value another instruction can load.
	IsUnit() bool
	// String renders the instruction in the same textual form ir.Lower
	// would have produced it in, used by print.go for round-tripping.
	String() string
}

// Operand is anything a non-control instruction can take as an operand:
// either an immediate Integer or a reference to a prior Value.
type Operand interface {
	operandString() string
}

// Integer is an immediate constant operand. It is never itself a member
// of a BasicBlock's instruction list; it only appears as an Operand.
type Integer struct {
	Val int32
}

func (i *Integer) operandString() string { return fmt.Sprintf("%d", i.Val) }

// Ref is an operand that refers to the result of a previous, named
// instruction (an Alloc, Load or Binary).
type Ref struct {
	Target Value
}

func (r *Ref) operandString() string { return r.Target.Name() }

// operandString renders any Operand for instruction printing.
func operandString(o Operand) string {
	if o == nil {
		return ""
	}
	return o.operandString()
}

// Alloc reserves a 4-byte i32 slot, named by its IR name (e.g. "@a_1").
type Alloc struct {
	ValName string
}

func (v *Alloc) Name() string { return v.ValName }
func (v *Alloc) Kind() Kind   { return KindAlloc }
func (v *Alloc) IsUnit() bool { return false }
func (v *Alloc) String() string {
	return fmt.Sprintf("%s = alloc i32", v.ValName)
}

// Load reads the current value out of an Alloc slot.
type Load struct {
	ValName string
	Src     Value
}

func (v *Load) Name() string { return v.ValName }
func (v *Load) Kind() Kind   { return KindLoad }
func (v *Load) IsUnit() bool { return false }
func (v *Load) String() string {
	return fmt.Sprintf("%s = load %s", v.ValName, v.Src.Name())
}

// Store writes Val into Dest's Alloc slot. Unit-typed: it produces no
// value of its own.
type Store struct {
	Val  Operand
	Dest Value
}

func (v *Store) Name() string { return "" }
func (v *Store) Kind() Kind   { return KindStore }
func (v *Store) IsUnit() bool { return true }
func (v *Store) String() string {
	return fmt.Sprintf("store %s, %s", operandString(v.Val), v.Dest.Name())
}

// Binary computes Op(L, R) where Op is one of the Koopa arithmetic,
// relational or bitwise mnemonics ("add" "sub" "mul" "div" "mod" "lt"
// "gt" "le" "ge" "eq" "ne" "and" "or").
type Binary struct {
	ValName string
	Op      string
	L, R    Operand
}

func (v *Binary) Name() string { return v.ValName }
func (v *Binary) Kind() Kind   { return KindBinary }
func (v *Binary) IsUnit() bool { return false }
func (v *Binary) String() string {
	return fmt.Sprintf("%s = %s %s, %s", v.ValName, v.Op, operandString(v.L), operandString(v.R))
}

// Branch jumps to True if Cond is non-zero, False otherwise. Unit-typed,
// and always the last instruction of its BasicBlock.
type Branch struct {
	Cond        Operand
	True, False *BasicBlock
}

func (v *Branch) Name() string { return "" }
func (v *Branch) Kind() Kind   { return KindBranch }
func (v *Branch) IsUnit() bool { return true }
func (v *Branch) String() string {
	return fmt.Sprintf("br %s, %s, %s", operandString(v.Cond), v.True.Name, v.False.Name)
}

// Jump unconditionally transfers control to Target. Unit-typed, and
// always the last instruction of its BasicBlock.
type Jump struct {
	Target *BasicBlock
}

func (v *Jump) Name() string { return "" }
func (v *Jump) Kind() Kind   { return KindJump }
func (v *Jump) IsUnit() bool { return true }
func (v *Jump) String() string {
	return fmt.Sprintf("jump %s", v.Target.Name)
}

// Return exits the enclosing function. Unit-typed, and always the last
// instruction of its BasicBlock. The grammar admits exactly two shapes,
// both carrying a value: "ret <val>" (Val set, Undef false) and the
// unreachable-fallthrough form "ret undef" (Undef true) the lowerer
// appends when control could fall off a function's end without every
// path having returned. There is no bare, valueless "ret".
type Return struct {
	Val   Operand // unused when Undef is true
	Undef bool
}

func (v *Return) Name() string { return "" }
func (v *Return) Kind() Kind   { return KindReturn }
func (v *Return) IsUnit() bool { return true }
func (v *Return) String() string {
	if v.Undef {
		return "ret undef"
	}
	return fmt.Sprintf("ret %s", operandString(v.Val))
}
