// symtab.go implements the scope-stack symbol table that AST-to-IR
// lowering consults for every name reference. It is grounded on the
// scope-stack-of-frames idiom visible in validate.go's GetEntry: a
// util.Stack holding one frame per lexically enclosing scope, searched
// innermost-first. Unlike validate.go's *Symbol (a single data type tag),
// a binding here is one of two kinds: a ConstVal folded at declaration
// time, or a VarName carrying the shadow-disambiguated IR name the
// variable was allocated under.

package ir

import "koopacc/src/util"

// SymVal is the value bound to a name in some scope frame.
type SymVal interface {
	symVal()
}

// ConstVal is a name bound to a constant-folded value. References to it
// are replaced by the value itself; no memory is ever allocated for it.
type ConstVal struct {
	Val int32
}

func (ConstVal) symVal() {}

// VarName is a name bound to a mutable local variable. IRName is the
// shadow-disambiguated identifier (e.g. "@a_1") the variable's alloc was
// emitted under; every reference and assignment to this binding uses
// IRName, not the surface name.
type VarName struct {
	IRName string
}

func (VarName) symVal() {}

// frame is one scope's bindings.
type frame struct {
	vars map[string]SymVal
}

// SymTab is a stack of scope frames plus the process-wide, per-surface-name
// shadow counters used to keep shadowed variables' IR names distinct.
// Shadow counters are monotonic across the whole compile unit, not reset
// per scope: re-entering a scope that previously declared "a" still
// advances past every "a" declared anywhere earlier, matching the
// convention exercised by the shadowing scenarios this compiler is
// tested against.
type SymTab struct {
	scopes  util.Stack
	shadows map[string]int
}

// NewSymTab returns an empty symbol table with no open scopes.
func NewSymTab() *SymTab {
	return &SymTab{shadows: make(map[string]int)}
}

// Push opens a new, innermost scope frame.
func (st *SymTab) Push() {
	st.scopes.Push(&frame{vars: make(map[string]SymVal)})
}

// Pop closes the innermost scope frame.
func (st *SymTab) Pop() {
	st.scopes.Pop()
}

// DeclareConst binds name to a constant value in the innermost scope.
func (st *SymTab) DeclareConst(name string, val int32) {
	st.top().vars[name] = ConstVal{Val: val}
}

// ReserveVarName allocates a fresh shadow-disambiguated IR name for name
// without yet binding it in any scope. Splitting reservation from binding
// lets a VarDef's initializer be lowered against the old binding of name
// (if any) before the new variable shadows it: "int a=5; {int a=a+1;...}"
// must resolve the inner initializer's "a" to the outer variable. The
// shadow index is 1-based and monotonic per name: even a name's first,
// never-shadowed declaration gets the "_1" suffix.
func (st *SymTab) ReserveVarName(name string) string {
	st.shadows[name]++
	return util.ShadowName(name, st.shadows[name])
}

// BindVarName binds name to irName (previously returned by ReserveVarName)
// in the innermost scope.
func (st *SymTab) BindVarName(name, irName string) {
	st.top().vars[name] = VarName{IRName: irName}
}

// Lookup searches scope frames innermost-first and returns the binding
// for name, or false if name is unbound in every enclosing scope.
func (st *SymTab) Lookup(name string) (SymVal, bool) {
	var found SymVal
	var ok bool
	st.scopes.Each(func(e interface{}) bool {
		f := e.(*frame)
		if v, exists := f.vars[name]; exists {
			found, ok = v, true
			return false
		}
		return true
	})
	return found, ok
}

// top returns the innermost scope frame. Callers must only invoke it
// between a matching Push/Pop pair.
func (st *SymTab) top() *frame {
	return st.scopes.Peek().(*frame)
}
