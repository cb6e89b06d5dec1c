package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymTabLookupIsInnermostFirst(t *testing.T) {
	st := NewSymTab()
	st.Push()
	st.DeclareConst("a", 1)
	st.Push()
	st.DeclareConst("a", 2)

	v, ok := st.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, ConstVal{Val: 2}, v)

	st.Pop()
	v, ok = st.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, ConstVal{Val: 1}, v)

	st.Pop()
	_, ok = st.Lookup("a")
	assert.False(t, ok)
}

func TestSymTabShadowCountersAreMonotonic(t *testing.T) {
	// Every declaration of a name gets a numbered "_k" suffix, 1-based --
	// even the first, never-shadowed one.
	st := NewSymTab()
	st.Push()
	first := st.ReserveVarName("a")
	st.BindVarName("a", first)
	assert.Equal(t, "@a_1", first)

	st.Push()
	second := st.ReserveVarName("a")
	st.BindVarName("a", second)
	assert.Equal(t, "@a_2", second)

	st.Pop()
	third := st.ReserveVarName("a")
	st.BindVarName("a", third)
	assert.Equal(t, "@a_3", third, "shadow counters never reset across scopes")
}

func TestSymTabReserveDoesNotBindUntilExplicit(t *testing.T) {
	st := NewSymTab()
	st.Push()
	st.DeclareConst("a", 5)

	inner := st.ReserveVarName("a")
	// Lookup must still resolve to the outer const binding until
	// BindVarName is called explicitly.
	v, ok := st.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, ConstVal{Val: 5}, v)

	st.BindVarName("a", inner)
	v, ok = st.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, VarName{IRName: inner}, v)
}
