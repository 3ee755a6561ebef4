package cursor

import (
	"unsafe"
)

// Cursor - A forward/backward element cursor over a contiguous range of initialized
// elements. It holds the base address of the range together with a head and tail index
// denoting the unread boundaries; the two indices meeting signals exhaustion.
//
// Reading through the cursor moves the element out: the slot is reset to the zero value
// of T so the backing storage keeps no reference to what was read, and each element is
// produced exactly once between Next and NextBack.
//
// The cursor owns nothing, its validity is entirely borrowed from whatever constructed
// it. For zero-sized element types the indices act as pure counters against a nil base,
// since no addressable memory exists to traverse.
type Cursor[T any] struct {
	base unsafe.Pointer
	head int
	tail int
}

// New - Returns a cursor over length initialized elements starting at base.
func New[T any](base unsafe.Pointer, length int) Cursor[T] {
	return Cursor[T]{base: base, tail: length}
}

// Next - Moves the element at the forward boundary out of the range and advances.
//
// It returns:
//   - item is the element read, or the zero value when the range is exhausted
//   - ok is false when the range is exhausted
func (C *Cursor[T]) Next() (item T, ok bool) {
	if C.head == C.tail {
		return
	}

	item = C.take(C.head)
	C.head++
	ok = true

	return
}

// NextBack - Retreats the backward boundary and moves the element there out of the range.
//
// It returns:
//   - item is the element read, or the zero value when the range is exhausted
//   - ok is false when the range is exhausted
func (C *Cursor[T]) NextBack() (item T, ok bool) {
	if C.head == C.tail {
		return
	}

	C.tail--
	item = C.take(C.tail)
	ok = true

	return
}

// Remaining - Returns the number of elements not yet produced. The count is index
// arithmetic, never pointer distance.
func (C *Cursor[T]) Remaining() int {
	return C.tail - C.head
}

// take - Reads slot i and resets it to the zero value of T.
func (C *Cursor[T]) take(i int) (item T) {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		return
	}

	p := (*T)(unsafe.Add(C.base, uintptr(i)*unsafe.Sizeof(zero)))
	item = *p
	*p = zero

	return
}
