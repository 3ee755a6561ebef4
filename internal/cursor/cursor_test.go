package cursor

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"unsafe"
)

func TestCursor_Next(t *testing.T) {
	t.Run("produces elements in forward order until exhausted", func(t *testing.T) {
		// Prepare
		items := []int{1, 2, 3}
		c := New[int](unsafe.Pointer(&items[0]), len(items))

		// Execute and Check
		for want := 1; want <= 3; want++ {
			item, ok := c.Next()
			assert.True(t, ok, "element produced")
			assert.Equal(t, want, item, "forward order")
		}

		_, ok := c.Next()
		assert.False(t, ok, "exhausted after producing all elements")
	})

	t.Run("moves the element out of its slot", func(t *testing.T) {
		// Prepare
		items := []string{"a", "b"}
		c := New[string](unsafe.Pointer(&items[0]), len(items))

		// Execute
		item, ok := c.Next()

		// Check
		assert.True(t, ok, "element produced")
		assert.Equal(t, "a", item, "element read")
		assert.Equal(t, "", items[0], "slot reset so storage keeps no reference")
		assert.Equal(t, "b", items[1], "unread slot untouched")
	})
}

func TestCursor_NextBack(t *testing.T) {
	t.Run("produces elements in backward order until exhausted", func(t *testing.T) {
		// Prepare
		items := []int{1, 2, 3}
		c := New[int](unsafe.Pointer(&items[0]), len(items))

		// Execute and Check
		for want := 3; want >= 1; want-- {
			item, ok := c.NextBack()
			assert.True(t, ok, "element produced")
			assert.Equal(t, want, item, "backward order")
		}

		_, ok := c.NextBack()
		assert.False(t, ok, "exhausted after producing all elements")
	})

	t.Run("meets the forward boundary without overlap", func(t *testing.T) {
		// Prepare
		items := []int{1, 2, 3}
		c := New[int](unsafe.Pointer(&items[0]), len(items))

		// Execute
		front, _ := c.Next()
		back, _ := c.NextBack()
		middle, ok := c.Next()

		// Check
		assert.Equal(t, 1, front, "front element")
		assert.Equal(t, 3, back, "back element")
		assert.Equal(t, 2, middle, "middle element produced exactly once")
		assert.True(t, ok, "middle element still available")

		_, ok = c.NextBack()
		assert.False(t, ok, "boundaries met")
	})
}

func TestCursor_Remaining(t *testing.T) {
	t.Run("counts down as elements are produced from either end", func(t *testing.T) {
		// Prepare
		items := []int{1, 2, 3, 4}
		c := New[int](unsafe.Pointer(&items[0]), len(items))

		// Execute and Check
		assert.Equal(t, 4, c.Remaining(), "all elements remaining")

		_, _ = c.Next()
		assert.Equal(t, 3, c.Remaining(), "one produced from the front")

		_, _ = c.NextBack()
		assert.Equal(t, 2, c.Remaining(), "one produced from the back")
	})
}

func TestCursor_ZeroSized(t *testing.T) {
	t.Run("advances by pure counting for zero-sized element types", func(t *testing.T) {
		// Prepare
		c := New[struct{}](nil, 3)

		// Execute and Check
		assert.Equal(t, 3, c.Remaining(), "logical count rather than pointer distance")

		produced := 0
		for {
			_, ok := c.Next()
			if !ok {
				break
			}
			produced++
		}

		assert.Equal(t, 3, produced, "each logical element produced exactly once")
		assert.Equal(t, 0, c.Remaining(), "exhausted")
	})
}
