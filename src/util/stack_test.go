package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackPushPopOrder(t *testing.T) {
	var s Stack
	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, 3, s.Peek())
	assert.Equal(t, 3, s.Pop())
	assert.Equal(t, 2, s.Pop())
	assert.Equal(t, 1, s.Pop())
	assert.Nil(t, s.Pop())
}

func TestStackEachWalksInnermostFirst(t *testing.T) {
	var s Stack
	s.Push("outer")
	s.Push("inner")

	var seen []string
	s.Each(func(e interface{}) bool {
		seen = append(seen, e.(string))
		return true
	})
	assert.Equal(t, []string{"inner", "outer"}, seen)
}

func TestStackEachStopsEarly(t *testing.T) {
	var s Stack
	s.Push(1)
	s.Push(2)
	s.Push(3)

	var seen []int
	s.Each(func(e interface{}) bool {
		seen = append(seen, e.(int))
		return e.(int) != 2
	})
	assert.Equal(t, []int{3, 2}, seen)
}

func TestCounterNextIsSequentialPerLabel(t *testing.T) {
	// Each label kind counts independently, 1-based: the first if
	// statement gets %then1/%else1/%end1.
	var c Counter
	assert.Equal(t, "%then1", c.Next(LabelThen))
	assert.Equal(t, "%then2", c.Next(LabelThen))
	assert.Equal(t, "%else1", c.Next(LabelElse))
	assert.Equal(t, "%end1", c.Next(LabelEnd))
}

func TestShadowNameAlwaysCarriesShadowIndex(t *testing.T) {
	// Even the first, never-shadowed declaration of a name gets a numbered
	// suffix -- there is no bare, unsuffixed form.
	assert.Equal(t, "@a_1", ShadowName("a", 1))
	assert.Equal(t, "@a_2", ShadowName("a", 2))
}
