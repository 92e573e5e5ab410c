package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	s := []string{"a", "b", "c"}

	pass, _ := Contains("b").Test(s)
	assert.True(t, pass)

	pass, desc := Contains("d").Test(s)
	assert.False(t, pass)
	assert.Contains(t, desc, "contains d")

	pass, _ = Contains("b").Test(42)
	assert.False(t, pass)
}

func TestLength(t *testing.T) {
	pass, _ := Length(3).Test([]int{1, 2, 3})
	assert.True(t, pass)

	pass, _ = Length(2).Test([]int{1, 2, 3})
	assert.False(t, pass)

	pass, _ = Length(3).Test("abc")
	assert.True(t, pass)
}
