package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseInPlace(t *testing.T) {
	s := []string{"A", "B", "C", "D"}
	ReverseInPlace(s)
	assert.Equal(t, []string{"D", "C", "B", "A"}, s)

	odd := []int{1, 2, 3}
	ReverseInPlace(odd)
	assert.Equal(t, []int{3, 2, 1}, odd)

	var empty []int
	ReverseInPlace(empty)
	assert.Empty(t, empty)
}

func TestContainsAndSet(t *testing.T) {
	names := []string{"Roadrunner", "Lights Out"}
	assert.True(t, Contains(names, "Lights Out"))
	assert.False(t, Contains(names, "Lower Bowl"))

	set := Set(names)
	assert.Len(t, set, 2)
	_, ok := set["Roadrunner"]
	assert.True(t, ok)
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, Compare([]int{1, 2, 3}, []int{1, 2, 3}))
	assert.Equal(t, 1, Compare([]int{1, 2, 3}, []int{1, 5, 3}))
	assert.Equal(t, -1, Compare([]int{1, 2}, []int{1, 2, 3}))
	assert.Equal(t, 0, Compare[int](nil, []int{}))
}
