package rawbuf

import (
	"math"
	"unsafe"
)

// InfiniteCap - Sentinel capacity for zero-sized element types. Such elements occupy no memory,
// so no real allocation is ever performed and the buffer reports room for any number of them.
const InfiniteCap = math.MaxInt

// RawBuf - Owns exactly one heap allocation holding room for Cap() elements of type T.
// The zero value is a valid unallocated buffer. All pointer arithmetic over the allocation
// is confined to this type, higher level containers only ever deal in indices.
//
// The address returned by Ptr, and any slice returned by Slice, is only valid until the
// next call to Grow.
type RawBuf[T any] struct {
	ptr unsafe.Pointer
	cap int
}

// New - Returns a new RawBuf with zero capacity and no allocation performed.
// For zero-sized element types the capacity starts out at InfiniteCap.
func New[T any]() RawBuf[T] {
	if sizeOf[T]() == 0 {
		return RawBuf[T]{cap: InfiniteCap}
	}
	return RawBuf[T]{}
}

// FromSlice - Returns a RawBuf that takes ownership of the allocation backing items.
// The pointer and capacity are transferred directly, no elements are copied. The caller
// must not keep using the slice afterwards.
func FromSlice[T any](items []T) RawBuf[T] {
	if sizeOf[T]() == 0 || cap(items) == 0 {
		return New[T]()
	}
	return RawBuf[T]{ptr: unsafe.Pointer(unsafe.SliceData(items)), cap: cap(items)}
}

// Grow - Grows the buffer geometrically: a zero capacity buffer allocates room for exactly
// one element, otherwise a fresh allocation of twice the current capacity is made and all
// existing elements are copied over. The old allocation is dropped.
//
// Allocation failure is not a recoverable condition, the runtime aborts the process.
//
// It returns:
//   - newCap is the capacity after growing
func (B *RawBuf[T]) Grow() (newCap int) {
	if sizeOf[T]() == 0 {
		B.cap = InfiniteCap
		newCap = B.cap
		return
	}

	if B.cap == 0 {
		newCap = 1
	} else {
		newCap = B.cap * 2
	}

	items := make([]T, newCap)
	if B.cap > 0 {
		copy(items, unsafe.Slice((*T)(B.ptr), B.cap))
	}

	B.ptr = unsafe.Pointer(unsafe.SliceData(items))
	B.cap = newCap

	return
}

// Release - Detaches the allocation so the runtime can reclaim it, leaving the buffer in
// its unallocated state. Releasing an unallocated buffer is a no-op, and releasing twice
// is harmless.
func (B *RawBuf[T]) Release() {
	B.ptr = nil
	if sizeOf[T]() == 0 {
		B.cap = InfiniteCap
	} else {
		B.cap = 0
	}
}

// Cap - Returns the number of elements the current allocation can hold.
func (B *RawBuf[T]) Cap() int {
	return B.cap
}

// Ptr - Returns the address of the first element slot, or nil if nothing is allocated.
func (B *RawBuf[T]) Ptr() unsafe.Pointer {
	return B.ptr
}

// Read - Returns the element stored in slot i. The slot must be within capacity and hold
// an initialized element, which is the caller's responsibility to ensure.
func (B *RawBuf[T]) Read(i int) (item T) {
	if sizeOf[T]() == 0 {
		return
	}
	item = *(*T)(unsafe.Add(B.ptr, uintptr(i)*sizeOf[T]()))
	return
}

// Write - Stores item in slot i. The slot must be within capacity, which is the caller's
// responsibility to ensure.
func (B *RawBuf[T]) Write(i int, item T) {
	if sizeOf[T]() == 0 {
		return
	}
	*(*T)(unsafe.Add(B.ptr, uintptr(i)*sizeOf[T]())) = item
}

// Slice - Returns a view over the first n slots of the allocation. The view aliases the
// allocation directly and is invalidated by the next Grow.
func (B *RawBuf[T]) Slice(n int) []T {
	if sizeOf[T]() == 0 {
		return make([]T, n)
	}
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(B.ptr), B.cap)[:n]
}

// sizeOf - Returns the size in bytes of the element type.
func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
