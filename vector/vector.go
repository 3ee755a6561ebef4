package vector

import (
	"fmt"
	"github.com/gostonefire/rawcontainers/internal/rawbuf"
	"go.uber.org/zap"
	"strings"
)

// Vector - A growable contiguous array of elements of type T built on a single owning
// raw buffer. The first Len() slots of the buffer hold initialized elements, slots
// beyond that up to Cap() are uninitialized spare room.
//
// The zero value is a valid empty vector. Vector is not safe for concurrent mutation,
// any such safety has to be added by an external wrapper.
type Vector[T any] struct {
	buf    rawbuf.RawBuf[T]
	length int
	logger *zap.Logger
}

// Option - Functional option for configuring a new Vector.
type Option[T any] func(v *Vector[T])

// WithLogger - Routes growth trace events through the given logger. Without it the
// vector produces no trace output.
func WithLogger[T any](logger *zap.Logger) Option[T] {
	return func(v *Vector[T]) {
		v.logger = logger
	}
}

// New - Returns a pointer to a new empty Vector. No allocation is performed until the
// first element is pushed.
func New[T any](options ...Option[T]) *Vector[T] {
	v := &Vector[T]{buf: rawbuf.New[T]()}
	for _, option := range options {
		option(v)
	}

	return v
}

// FromSlice - Returns a pointer to a new Vector that takes ownership of the allocation
// backing items. The existing pointer, capacity and length are transferred directly and
// no elements are copied. The caller must not keep using the slice afterwards.
func FromSlice[T any](items []T) *Vector[T] {
	return &Vector[T]{buf: rawbuf.FromSlice(items), length: len(items)}
}

// Len - Returns the number of initialized elements in the vector.
func (V *Vector[T]) Len() int {
	return V.length
}

// Cap - Returns the number of elements the current allocation can hold. The capacity
// never decreases across any sequence of operations.
func (V *Vector[T]) Cap() int {
	return V.buf.Cap()
}

// Push - Appends item to the end of the vector, growing the buffer first if it is full.
// Amortized constant time.
func (V *Vector[T]) Push(item T) {
	if V.length == V.buf.Cap() {
		V.grow()
	}

	V.buf.Write(V.length, item)
	V.length++
}

// Pop - Removes and returns the last element.
//
// It returns:
//   - item is the removed element, or the zero value if the vector is empty
//   - ok is false if the vector is empty
func (V *Vector[T]) Pop() (item T, ok bool) {
	if V.length == 0 {
		return
	}

	// Decrement before read, so the slot is never both live and removed at once
	V.length--
	item = V.buf.Read(V.length)

	var zero T
	V.buf.Write(V.length, zero)
	ok = true

	return
}

// Insert - Inserts item at the given index, shifting all elements at and after it one
// slot to the right. Valid indices are 0 through Len() inclusive, anything else is a
// fatal bounds violation. Runs in time proportional to the number of shifted elements.
func (V *Vector[T]) Insert(index int, item T) {
	if index < 0 || index > V.length {
		panic(fmt.Sprintf("vector: insert index %d out of bounds for length %d", index, V.length))
	}

	if V.length == V.buf.Cap() {
		V.grow()
	}

	s := V.buf.Slice(V.length + 1)
	copy(s[index+1:], s[index:V.length])
	V.buf.Write(index, item)
	V.length++
}

// Remove - Removes and returns the element at the given index, shifting all elements
// after it one slot to the left. Valid indices are 0 through Len()-1, anything else is
// a fatal bounds violation. Runs in time proportional to the number of shifted elements.
func (V *Vector[T]) Remove(index int) (item T) {
	if index < 0 || index >= V.length {
		panic(fmt.Sprintf("vector: remove index %d out of bounds for length %d", index, V.length))
	}

	item = V.buf.Read(index)

	s := V.buf.Slice(V.length)
	copy(s[index:], s[index+1:])
	V.length--

	var zero T
	V.buf.Write(V.length, zero)

	return
}

// At - Returns the element at the given index. Valid indices are 0 through Len()-1,
// anything else is a fatal bounds violation.
func (V *Vector[T]) At(index int) T {
	if index < 0 || index >= V.length {
		panic(fmt.Sprintf("vector: index %d out of bounds for length %d", index, V.length))
	}

	return V.buf.Read(index)
}

// Slice - Returns a view over the live elements of the vector. The view aliases the
// vector's storage directly and is invalidated by any operation that grows the buffer.
// For zero-sized element types the view is detached, such elements carry no storage.
func (V *Vector[T]) Slice() []T {
	return V.buf.Slice(V.length)
}

// ToSlice - Converts the vector into an ordinary slice by transferring the backing
// allocation, capacity and length directly, no elements are copied. The vector is
// rendered inert and must not be used afterwards.
func (V *Vector[T]) ToSlice() (items []T) {
	items = V.buf.Slice(V.length)
	V.buf.Release()
	V.length = 0

	return
}

// Equal - Returns true if a and b have the same length and hold equal elements in the
// same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.length != b.length {
		return false
	}

	as, bs := a.Slice(), b.Slice()
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}

	return true
}

// String - Formats the live elements for debugging purposes. The format is not a
// stable contract.
func (V *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for i := 0; i < V.length; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		_, _ = fmt.Fprintf(&sb, "%v", V.buf.Read(i))
	}
	sb.WriteString(" ]")

	return sb.String()
}

// grow - Grows the backing buffer, tracing the event if a logger was supplied.
// Any previously fetched view or address into the buffer is invalid after this.
func (V *Vector[T]) grow() {
	newCap := V.buf.Grow()
	if V.logger != nil {
		V.logger.Debug("grew vector buffer",
			zap.Int("length", V.length),
			zap.Int("capacity", newCap),
		)
	}
}
