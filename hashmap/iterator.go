package hashmap

// Iter - Is used to iterate over the stored pairs one by one. Buckets are visited in
// storage order and pairs within a bucket in insertion order, subject to reordering by
// any prior Remove in that bucket. Relative order across buckets depends on hash
// distribution and is not stable across resizes, and whether order within a bucket
// survives a non-resizing Remove is unspecified.
//
// No mutation of the map may interleave with an active iterator over it.
type Iter[K comparable, V any] struct {
	m         *Map[K, V]
	bucketIdx int
	pairIdx   int
}

// Iter - Returns a pointer to a new Iter positioned before the first stored pair.
func (M *Map[K, V]) Iter() *Iter[K, V] {
	return &Iter[K, V]{m: M}
}

// Next - Returns the next stored pair.
//
// It returns:
//   - key and value are the next stored pair, or zero values when the iterator is exhausted
//   - ok is false when the iterator is exhausted
func (I *Iter[K, V]) Next() (key K, value V, ok bool) {
	for I.bucketIdx < I.m.buckets.Len() {
		b := I.m.buckets.Slice()[I.bucketIdx]
		if I.pairIdx < b.pairs.Len() {
			p := b.pairs.At(I.pairIdx)
			I.pairIdx++
			key, value, ok = p.key, p.value, true
			return
		}

		I.bucketIdx++
		I.pairIdx = 0
	}

	return
}

// Keys - Is used to iterate over the stored keys one by one, in the same order as Iter.
type Keys[K comparable, V any] struct {
	inner Iter[K, V]
}

// Keys - Returns a pointer to a new Keys iterator positioned before the first stored key.
func (M *Map[K, V]) Keys() *Keys[K, V] {
	return &Keys[K, V]{inner: Iter[K, V]{m: M}}
}

// Next - Returns the next stored key.
//
// It returns:
//   - key is the next stored key, or the zero value when the iterator is exhausted
//   - ok is false when the iterator is exhausted
func (I *Keys[K, V]) Next() (key K, ok bool) {
	key, _, ok = I.inner.Next()
	return
}

// Values - Is used to iterate over the stored values one by one, in the same order as Iter.
type Values[K comparable, V any] struct {
	inner Iter[K, V]
}

// Values - Returns a pointer to a new Values iterator positioned before the first stored
// value.
func (M *Map[K, V]) Values() *Values[K, V] {
	return &Values[K, V]{inner: Iter[K, V]{m: M}}
}

// Next - Returns the next stored value.
//
// It returns:
//   - value is the next stored value, or the zero value when the iterator is exhausted
//   - ok is false when the iterator is exhausted
func (I *Values[K, V]) Next() (value V, ok bool) {
	_, value, ok = I.inner.Next()
	return
}
