package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []item {
	t.Helper()
	l := newLex(src)
	go l.run()
	var items []item
	for it := range l.items {
		items = append(items, it)
	}
	return items
}

func TestLexKeywordsAndIdents(t *testing.T) {
	items := scanAll(t, "const int x = if else return")
	require.True(t, len(items) >= 7)
	assert.Equal(t, KwConst, items[0].typ)
	assert.Equal(t, KwInt, items[1].typ)
	assert.Equal(t, IDENT, items[2].typ)
	assert.Equal(t, "x", items[2].val)
	assert.Equal(t, Assign, items[3].typ)
	assert.Equal(t, KwIf, items[4].typ)
	assert.Equal(t, KwElse, items[5].typ)
	assert.Equal(t, KwReturn, items[6].typ)
}

func TestLexVoidKeyword(t *testing.T) {
	items := scanAll(t, "void main")
	require.True(t, len(items) >= 2)
	assert.Equal(t, KwVoid, items[0].typ)
	assert.Equal(t, IDENT, items[1].typ)
}

func TestLexTwoCharOperators(t *testing.T) {
	items := scanAll(t, "&& || == != <= >=")
	var kinds []itemType
	for _, it := range items {
		if it.typ == itemEOF {
			continue
		}
		kinds = append(kinds, it.typ)
	}
	assert.Equal(t, []itemType{And, Or, Eq, Neq, Le, Ge}, kinds)
}

func TestLexSkipsComments(t *testing.T) {
	items := scanAll(t, "1 // a line comment\n/* a block\ncomment */ 2")
	var nums []string
	for _, it := range items {
		if it.typ == INTCONST {
			nums = append(nums, it.val)
		}
	}
	assert.Equal(t, []string{"1", "2"}, nums)
}

func TestLexReportsLineNumbers(t *testing.T) {
	items := scanAll(t, "1\n2\n3")
	var lines []int
	for _, it := range items {
		if it.typ == INTCONST {
			lines = append(lines, it.line)
		}
	}
	assert.Equal(t, []int{1, 2, 3}, lines)
}
