package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderedMap(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		om := New[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)

		val, exists := om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 2, val)

		om.Set("two", 22)
		val, _ = om.Get("two")
		assert.Equal(t, 22, val)

		val, exists = om.Get("three")
		assert.False(t, exists)
		assert.Equal(t, 0, val)
	})

	t.Run("overwrite keeps position", func(t *testing.T) {
		om := New[string, int]()
		om.Set("a", 1)
		om.Set("b", 2)
		om.Set("a", 3)
		assert.Equal(t, []int{3, 2}, om.Values())
	})

	t.Run("delete", func(t *testing.T) {
		om := New[string, int]()
		om.Set("one", 1)
		om.Set("two", 2)
		om.Delete("one")
		om.Delete("missing")

		assert.False(t, om.Has("one"))
		assert.Equal(t, 1, om.Len())
		assert.Equal(t, []int{2}, om.Values())
	})

	t.Run("iteration order", func(t *testing.T) {
		om := New[string, int]()
		for i, k := range []string{"c", "a", "b"} {
			om.Set(k, i)
		}

		var forward, backward []string
		for k := range om.All() {
			forward = append(forward, k)
		}
		for k := range om.Backward() {
			backward = append(backward, k)
		}
		assert.Equal(t, []string{"c", "a", "b"}, forward)
		assert.Equal(t, []string{"b", "a", "c"}, backward)
	})

	t.Run("early break", func(t *testing.T) {
		om := New[int, int]()
		for i := 0; i < 5; i++ {
			om.Set(i, i)
		}
		seen := 0
		for range om.All() {
			seen++
			if seen == 2 {
				break
			}
		}
		assert.Equal(t, 2, seen)
	})

	t.Run("nil map", func(t *testing.T) {
		var om *OrderedMap[string, int]
		assert.Equal(t, 0, om.Len())
		for range om.All() {
			t.Fatal("nil map yielded a value")
		}
	})
}
