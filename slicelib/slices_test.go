package slicelib

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoin(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{4, 5}

	joined := Join(a, b)
	assert.Equal(t, len(a)+len(b), len(joined))
	assert.Equal(t, a, joined[:len(a)])
	assert.Equal(t, b, joined[len(a):])

	// inputs stay untouched
	assert.Equal(t, []int{1, 2, 3}, a)
	assert.Equal(t, []int{4, 5}, b)

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, Join(a, nil))
		assert.Equal(t, []int{4, 5}, Join(nil, b))
		assert.Empty(t, Join[[]int](nil, nil))
	})
}

func TestJoinAll(t *testing.T) {
	a := []string{"a", "b"}
	b := []string{"c"}

	assert.NotNil(t, JoinAll[[]string](nil))
	assert.Empty(t, JoinAll[[]string](nil))
	assert.Equal(t, a, JoinAll([][]string{a}))
	assert.Equal(t, Join(a, b), JoinAll([][]string{a, b}))
	assert.Equal(t, []string{"a", "b", "c", "a", "b"}, JoinAll([][]string{a, b, nil, a}))
}

func TestMap(t *testing.T) {
	in := []int{3, 1, 2}
	out := Map(in, strconv.Itoa)

	assert.Equal(t, len(in), len(out))
	for i := range in {
		assert.Equal(t, strconv.Itoa(in[i]), out[i])
	}

	assert.Empty(t, Map(nil, strconv.Itoa))
}

func TestMapToAny(t *testing.T) {
	out := MapToAny([]int{1, 2})
	assert.Equal(t, []any{1, 2}, out)
}

func TestFilter(t *testing.T) {
	in := []int{0, 1, 0, 2, 3}

	even := Filter(in, func(it int) bool { return it%2 == 0 })
	assert.Equal(t, []int{0, 0, 2}, even)

	assert.Equal(t, []int{1, 2, 3}, FilterNotDefault(in))

	indexed := FilterIndexed(in, func(index int, it int) bool { return index >= 3 })
	assert.Equal(t, []int{2, 3}, indexed)

	withNil := []any{1, nil, "x"}
	assert.Equal(t, []any{1, "x"}, FilterNotNil(withNil))
}

func TestUniq(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, Uniq([]int{3, 1, 2, 1, 3}))

	type pair struct{ k, v int }
	in := []pair{{1, 10}, {2, 20}, {1, 30}}

	first := UniqBy(in, func(it pair) int { return it.k })
	assert.Equal(t, []pair{{1, 10}, {2, 20}}, first)

	last := UniqByLast(in, func(it pair) int { return it.k })
	assert.Equal(t, []pair{{2, 20}, {1, 30}}, last)
}
