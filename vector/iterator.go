package vector

import (
	"github.com/gostonefire/rawcontainers/internal/cursor"
	"github.com/gostonefire/rawcontainers/internal/rawbuf"
)

// IntoIter - A consuming iterator over a vector. It owns the backing buffer of the
// vector it was created from and produces each element exactly once, from either end.
type IntoIter[T any] struct {
	buf rawbuf.RawBuf[T]
	cur cursor.Cursor[T]
}

// IntoIter - Transfers ownership of the backing buffer into a consuming iterator.
// The vector is rendered inert, it appears empty and subsequent use of it behaves as a
// freshly created vector. Use Close preferably in a "defer" directly after this call,
// it guarantees that elements never yielded are still released exactly once.
func (V *Vector[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{
		buf: V.buf,
		cur: cursor.New[T](V.buf.Ptr(), V.length),
	}

	V.buf = rawbuf.New[T]()
	V.length = 0

	return it
}

// Next - Produces the next element from the front.
//
// It returns:
//   - item is the next element, or the zero value when the iterator is exhausted
//   - ok is false when the iterator is exhausted
func (I *IntoIter[T]) Next() (item T, ok bool) {
	return I.cur.Next()
}

// NextBack - Produces the next element from the back.
//
// It returns:
//   - item is the next element, or the zero value when the iterator is exhausted
//   - ok is false when the iterator is exhausted
func (I *IntoIter[T]) NextBack() (item T, ok bool) {
	return I.cur.NextBack()
}

// Remaining - Returns the number of elements not yet produced.
func (I *IntoIter[T]) Remaining() int {
	return I.cur.Remaining()
}

// Close - Releases all elements not yet produced and drops the owned buffer. Safe to
// call after exhaustion and safe to call more than once.
func (I *IntoIter[T]) Close() {
	for {
		if _, ok := I.cur.Next(); !ok {
			break
		}
	}

	I.buf.Release()
}

// Drain - A draining iterator over a vector. It borrows the vector's buffer rather than
// owning it, and produces the elements that were live when it was created.
type Drain[T any] struct {
	cur cursor.Cursor[T]
}

// Drain - Resets the vector's length to zero and returns an iterator over the elements
// that were live at that point. The vector appears empty to any observer even while the
// drained elements are still being produced, and keeps its capacity. Use Close
// preferably in a "defer" directly after this call, it guarantees that elements never
// yielded are still released exactly once. No other operation on the vector may
// interleave with an active drain.
func (V *Vector[T]) Drain() *Drain[T] {
	d := &Drain[T]{cur: cursor.New[T](V.buf.Ptr(), V.length)}
	V.length = 0

	return d
}

// Next - Produces the next drained element from the front.
//
// It returns:
//   - item is the next element, or the zero value when the iterator is exhausted
//   - ok is false when the iterator is exhausted
func (D *Drain[T]) Next() (item T, ok bool) {
	return D.cur.Next()
}

// NextBack - Produces the next drained element from the back.
//
// It returns:
//   - item is the next element, or the zero value when the iterator is exhausted
//   - ok is false when the iterator is exhausted
func (D *Drain[T]) NextBack() (item T, ok bool) {
	return D.cur.NextBack()
}

// Remaining - Returns the number of elements not yet produced.
func (D *Drain[T]) Remaining() int {
	return D.cur.Remaining()
}

// Close - Releases all elements not yet produced. Safe to call after exhaustion and
// safe to call more than once.
func (D *Drain[T]) Close() {
	for {
		if _, ok := D.cur.Next(); !ok {
			break
		}
	}
}
