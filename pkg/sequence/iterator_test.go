package sequence

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterStopsEarly(t *testing.T) {
	visited := 0
	it := From([]int{1, 2, 3, 4, 5, 6}).Filter(func(v int) bool {
		visited++
		return v%2 == 0
	})

	v, ok := it.Find(func(v int) bool { return v == 4 })
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	assert.Equal(t, 4, visited)
}

func TestSortIsStable(t *testing.T) {
	type item struct {
		key  int
		name string
	}
	in := []item{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}}
	out := From(in).Sort(func(a, b item) int { return cmp.Compare(a.key, b.key) }).Collect()
	assert.Equal(t, []item{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}, out)
}

func TestMapCountAny(t *testing.T) {
	it := Map(From([]int{1, 2, 3}), func(v int) string { return string(rune('a' + v)) })
	assert.Equal(t, []string{"b", "c", "d"}, it.Collect())
	assert.Equal(t, 3, it.Count())
	assert.True(t, it.Any(func(s string) bool { return s == "c" }))
	assert.False(t, it.Any(func(s string) bool { return s == "z" }))
}
