package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReturnZero(t *testing.T) {
	cu, err := Parse(`int main() { return 0; }`)
	require.NoError(t, err)
	require.NotNil(t, cu.Func)
	assert.Equal(t, "main", cu.Func.Name)
	require.Len(t, cu.Func.Body.Items, 1)

	ret, ok := cu.Func.Body.Items[0].(*ReturnStmt)
	require.True(t, ok)
	lit, ok := ret.Exp.(*IntLit)
	require.True(t, ok)
	assert.EqualValues(t, 0, lit.Val)
}

func TestParseUnaryMinus(t *testing.T) {
	cu, err := Parse(`int main() { return -1; }`)
	require.NoError(t, err)
	ret := cu.Func.Body.Items[0].(*ReturnStmt)
	u, ok := ret.Exp.(*UnaryExp)
	require.True(t, ok)
	assert.Equal(t, "-", u.Op)
}

func TestParseDanglingElseBindsToNearestIf(t *testing.T) {
	// "else" must attach to the inner "if (b)", not the outer "if (a)".
	cu, err := Parse(`int main() {
		int a, b;
		if (a)
			if (b)
				a = 1;
			else
				a = 2;
		return a;
	}`)
	require.NoError(t, err)

	var outerIf *IfStmt
	for _, item := range cu.Func.Body.Items {
		if s, ok := item.(*IfStmt); ok {
			outerIf = s
		}
	}
	require.NotNil(t, outerIf)
	assert.Nil(t, outerIf.Else, "outer if must not have absorbed the else")

	innerIf, ok := outerIf.Then.(*IfStmt)
	require.True(t, ok)
	assert.NotNil(t, innerIf.Else, "inner if must have the else arm")
}

func TestParseExpressionPrecedence(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3), not (1 + 2) * 3.
	cu, err := Parse(`int main() { return 1 + 2 * 3; }`)
	require.NoError(t, err)
	ret := cu.Func.Body.Items[0].(*ReturnStmt)
	top, ok := ret.Exp.(*BinaryExp)
	require.True(t, ok)
	assert.Equal(t, "+", top.Op)

	_, lIsLit := top.L.(*IntLit)
	assert.True(t, lIsLit)

	r, ok := top.R.(*BinaryExp)
	require.True(t, ok)
	assert.Equal(t, "*", r.Op)
}

func TestParseLeftAssociativity(t *testing.T) {
	// 1 - 2 - 3 must parse as (1 - 2) - 3.
	cu, err := Parse(`int main() { return 1 - 2 - 3; }`)
	require.NoError(t, err)
	ret := cu.Func.Body.Items[0].(*ReturnStmt)
	top, ok := ret.Exp.(*BinaryExp)
	require.True(t, ok)
	assert.Equal(t, "-", top.Op)

	l, ok := top.L.(*BinaryExp)
	require.True(t, ok)
	assert.Equal(t, "-", l.Op)

	_, rIsLit := top.R.(*IntLit)
	assert.True(t, rIsLit)
}

func TestParseConstAndVarDecls(t *testing.T) {
	cu, err := Parse(`int main() {
		const int a = 1, b = 2;
		int c = a + b;
		return c;
	}`)
	require.NoError(t, err)
	require.Len(t, cu.Func.Body.Items, 3)

	constDecl, ok := cu.Func.Body.Items[0].(*Decl)
	require.True(t, ok)
	assert.True(t, constDecl.Const)
	assert.Len(t, constDecl.Defs, 2)

	varDecl, ok := cu.Func.Body.Items[1].(*Decl)
	require.True(t, ok)
	assert.False(t, varDecl.Const)
}

func TestParseRejectsSyntaxError(t *testing.T) {
	_, err := Parse(`int main() { return }`)
	assert.Error(t, err)
}

func TestParseVoidFuncDefRetKind(t *testing.T) {
	// "void" parses to a FuncDef so the compiler can reject it with a
	// diagnostic later (see ir.Lower), not fail outright at parse time.
	cu, err := Parse(`void main() { return 0; }`)
	require.NoError(t, err)
	assert.Equal(t, KindVoid, cu.Func.RetKind)
}

func TestParseIntFuncDefRetKind(t *testing.T) {
	cu, err := Parse(`int main() { return 0; }`)
	require.NoError(t, err)
	assert.Equal(t, KindInt, cu.Func.RetKind)
}

func TestParseRejectsBareReturn(t *testing.T) {
	// The grammar has no valueless "return;" form: every return carries
	// an expression.
	_, err := Parse(`int main() { return; }`)
	assert.Error(t, err)
}
