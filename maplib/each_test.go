package maplib

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForEachKey(t *testing.T) {
	in := map[string]int{"a": 1, "b": 2}

	var keys []string
	ForEachKey(in, func(k *string) {
		keys = append(keys, *k)
		*k = "mutated"
	})
	sort.Strings(keys)
	assert.Equal(t, []string{"a", "b"}, keys)

	// mutating the copy never reaches the map
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, in)
}

func TestForEachPair(t *testing.T) {
	in := map[string]int{"a": 1, "b": 2}

	ForEachPair(in, func(k *string, v *int) {
		*v *= 10
	})
	assert.Equal(t, map[string]int{"a": 10, "b": 20}, in)

	t.Run("key mutation is isolated", func(t *testing.T) {
		ForEachPair(in, func(k *string, v *int) {
			*k = "z"
			*v++
		})
		assert.Equal(t, map[string]int{"a": 11, "b": 21}, in)
	})
}
