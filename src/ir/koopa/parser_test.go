package koopa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleIR = `fun @main(): i32 {
%entry:
  @a = alloc i32
  store 1, @a
  %0 = load @a
  %1 = add %0, 2
  ret %1
}
`

func TestParseBuildsFunctionGraph(t *testing.T) {
	prog, err := Parse(sampleIR)
	require.NoError(t, err)
	require.Len(t, prog.Funcs, 1)

	f := prog.Func("main")
	require.NotNil(t, f)
	assert.Equal(t, "i32", f.RetType)
	require.Len(t, f.Blocks, 1)
	assert.Equal(t, f.Entry(), f.Blocks[0])

	insts := f.AllInsts()
	require.Len(t, insts, 5)
	assert.Equal(t, KindAlloc, insts[0].Kind())
	assert.Equal(t, KindStore, insts[1].Kind())
	assert.Equal(t, KindLoad, insts[2].Kind())
	assert.Equal(t, KindBinary, insts[3].Kind())
	assert.Equal(t, KindReturn, insts[4].Kind())
}

func TestParseResolvesOperandReferences(t *testing.T) {
	prog, err := Parse(sampleIR)
	require.NoError(t, err)
	f := prog.Func("main")

	load := f.Blocks[0].Insts[2].(*Load)
	alloc := f.Blocks[0].Insts[0].(*Alloc)
	assert.Same(t, alloc, load.Src)

	add := f.Blocks[0].Insts[3].(*Binary)
	ref, ok := add.L.(*Ref)
	require.True(t, ok)
	assert.Same(t, load, ref.Target)
	lit, ok := add.R.(*Integer)
	require.True(t, ok)
	assert.EqualValues(t, 2, lit.Val)
}

func TestParseRoundTripsByteIdentical(t *testing.T) {
	prog, err := Parse(sampleIR)
	require.NoError(t, err)
	assert.Equal(t, sampleIR, prog.String())

	// Parsing the printed form again must reproduce the same text, since
	// print.go is meant to be a faithful inverse of Parse.
	prog2, err := Parse(prog.String())
	require.NoError(t, err)
	assert.Equal(t, prog.String(), prog2.String())
}

func TestParseBranchResolvesBlockTargets(t *testing.T) {
	const ir = `fun @main(): i32 {
%entry:
  br 1, %then1, %end1
%then1:
  jump %end1
%end1:
  ret 0
}
`
	prog, err := Parse(ir)
	require.NoError(t, err)
	f := prog.Func("main")
	require.Len(t, f.Blocks, 3)

	br := f.Blocks[0].Insts[0].(*Branch)
	assert.Equal(t, f.Blocks[1], br.True)
	assert.Equal(t, f.Blocks[2], br.False)

	jmp := f.Blocks[1].Insts[0].(*Jump)
	assert.Equal(t, f.Blocks[2], jmp.Target)
}

func TestParseUndefReturn(t *testing.T) {
	const ir = `fun @main(): i32 {
%entry:
  ret undef
}
`
	prog, err := Parse(ir)
	require.NoError(t, err)
	ret := prog.Func("main").Blocks[0].Insts[0].(*Return)
	assert.True(t, ret.Undef)
	assert.Nil(t, ret.Val)
	assert.Equal(t, "ret undef", ret.String())
}

func TestParseRejectsMalformedHeader(t *testing.T) {
	_, err := Parse("fun main(): i32 {\n}\n")
	assert.Error(t, err)
}
