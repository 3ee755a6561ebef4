package vector

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestVector_IntoIter(t *testing.T) {
	t.Run("yields pushed elements exactly once in order", func(t *testing.T) {
		// Prepare
		v := New[int]()
		for _, item := range []int{1, 2, 3, 4, 5} {
			v.Push(item)
		}

		// Execute
		it := v.IntoIter()
		defer it.Close()

		// Check
		var got []int
		for {
			item, ok := it.Next()
			if !ok {
				break
			}
			got = append(got, item)
		}

		assert.Equal(t, []int{1, 2, 3, 4, 5}, got, "forward order preserved")
	})

	t.Run("yields elements backwards symmetrically", func(t *testing.T) {
		// Prepare
		v := New[int]()
		for _, item := range []int{1, 2, 3} {
			v.Push(item)
		}

		it := v.IntoIter()
		defer it.Close()

		// Execute and Check
		item, ok := it.NextBack()
		assert.True(t, ok, "element available")
		assert.Equal(t, 3, item, "back element first")

		item, _ = it.Next()
		assert.Equal(t, 1, item, "front unaffected by backward reads")

		item, _ = it.NextBack()
		assert.Equal(t, 2, item, "boundaries move inward")

		_, ok = it.Next()
		assert.False(t, ok, "each element yielded exactly once")
	})

	t.Run("renders the source vector inert", func(t *testing.T) {
		// Prepare
		v := New[int]()
		v.Push(1)
		v.Push(2)

		// Execute
		it := v.IntoIter()
		defer it.Close()

		// Check
		assert.Equal(t, 0, v.Len(), "ownership of all elements moved into the iterator")
		assert.Equal(t, 0, v.Cap(), "buffer ownership moved into the iterator")

		v.Push(9)
		assert.Equal(t, 1, v.Len(), "source behaves as a freshly created vector")

		item, _ := it.Next()
		assert.Equal(t, 1, item, "iterator unaffected by the source's new life")
	})

	t.Run("reports remaining elements", func(t *testing.T) {
		// Prepare
		v := New[int]()
		for _, item := range []int{1, 2, 3, 4} {
			v.Push(item)
		}

		it := v.IntoIter()
		defer it.Close()

		// Execute and Check
		assert.Equal(t, 4, it.Remaining(), "all elements remaining")
		_, _ = it.Next()
		_, _ = it.NextBack()
		assert.Equal(t, 2, it.Remaining(), "remaining updated from both ends")
	})

	t.Run("close before exhaustion releases unyielded elements once", func(t *testing.T) {
		// Prepare
		v := New[*int]()
		one, two := 1, 2
		v.Push(&one)
		v.Push(&two)

		it := v.IntoIter()
		_, _ = it.Next()

		// Execute
		it.Close()

		// Check
		assert.Equal(t, 0, it.Remaining(), "nothing left unyielded")

		// A second close is harmless
		it.Close()
	})
}

func TestVector_Drain(t *testing.T) {
	t.Run("resets length immediately while yielding old elements", func(t *testing.T) {
		// Prepare
		v := New[int]()
		for _, item := range []int{1, 2, 3} {
			v.Push(item)
		}
		capBefore := v.Cap()

		// Execute
		d := v.Drain()
		defer d.Close()

		// Check
		assert.Equal(t, 0, v.Len(), "vector appears empty during the drain")
		assert.Equal(t, capBefore, v.Cap(), "buffer stays with the vector")

		var got []int
		for {
			item, ok := d.Next()
			if !ok {
				break
			}
			got = append(got, item)
		}

		assert.Equal(t, []int{1, 2, 3}, got, "previously live elements yielded in order")
	})

	t.Run("push after drain behaves like pushing into a fresh vector", func(t *testing.T) {
		// Prepare
		v := New[int]()
		for _, item := range []int{1, 2, 3} {
			v.Push(item)
		}

		d := v.Drain()
		d.Close()

		// Execute
		v.Push(9)

		// Check
		assert.Equal(t, 1, v.Len(), "single element after push")
		assert.Equal(t, 9, v.At(0), "element stored at the first slot")
	})

	t.Run("close before exhaustion releases undrained elements once", func(t *testing.T) {
		// Prepare
		v := New[string]()
		v.Push("a")
		v.Push("b")
		v.Push("c")

		d := v.Drain()
		_, _ = d.Next()

		// Execute
		d.Close()

		// Check
		assert.Equal(t, 0, d.Remaining(), "nothing left undrained")

		// The vector's spare slots keep no references to drained elements
		v.Push("x")
		assert.Equal(t, "x", v.At(0), "vector usable after early close")
	})

	t.Run("yields backwards symmetrically", func(t *testing.T) {
		// Prepare
		v := New[int]()
		for _, item := range []int{1, 2, 3} {
			v.Push(item)
		}

		d := v.Drain()
		defer d.Close()

		// Execute
		item, ok := d.NextBack()

		// Check
		assert.True(t, ok, "element available")
		assert.Equal(t, 3, item, "back element first")
	})
}
