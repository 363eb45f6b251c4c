package maplib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	add := func(v1, v2 int) int { return v1 + v2 }

	t.Run("matching keysets", func(t *testing.T) {
		out, err := Combine(map[int]int{1: 2, 2: 3}, map[int]int{1: 5, 2: 9}, add)
		assert.Nil(t, err)
		assert.Equal(t, map[int]int{1: 7, 2: 12}, out)
	})

	t.Run("size mismatch", func(t *testing.T) {
		out, err := Combine(map[int]int{1: 2, 2: 3}, map[int]int{1: 5}, add)
		assert.ErrorIs(t, err, ErrSizeMismatch)
		assert.Nil(t, out)
	})

	t.Run("keyset mismatch", func(t *testing.T) {
		out, err := Combine(map[int]int{1: 2, 2: 3}, map[int]int{1: 5, 3: 9}, add)
		assert.ErrorIs(t, err, ErrKeySetMismatch)
		assert.Nil(t, out)
	})

	t.Run("different value types", func(t *testing.T) {
		out, err := Combine(map[string]int{"a": 1}, map[string]string{"a": "x"},
			func(n int, s string) bool { return n > 0 && s != "" })
		assert.Nil(t, err)
		assert.Equal(t, map[string]bool{"a": true}, out)
	})

	t.Run("empty", func(t *testing.T) {
		out, err := Combine(map[int]int{}, map[int]int(nil), add)
		assert.Nil(t, err)
		assert.Empty(t, out)
	})
}
