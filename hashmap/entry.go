package hashmap

// Entry - A transient view into the map for a single key, produced by Entry. The view is
// either occupied, referring to an existing pair, or vacant, holding the key and its
// target bucket. Rather than aliasing bucket memory up front it records stable indices
// and re-derives references only at the point of mutation.
//
// The view is only valid until the next mutation of the map it was produced from.
type Entry[K comparable, V any] struct {
	m         *Map[K, V]
	key       K
	bucketIdx int
	pairIdx   int
}

// Entry - Returns an entry view for the given key, occupied if a pair with an equal key
// already exists in its target bucket and vacant otherwise. Since the view may be used
// to insert, the same pre-insert resize check as Insert is performed first.
func (M *Map[K, V]) Entry(key K) Entry[K, V] {
	M.ensureCapacity()

	bucketIdx := M.bucketFor(key)
	pairs := M.buckets.Slice()[bucketIdx].pairs.Slice()
	for i := range pairs {
		if pairs[i].key == key {
			return Entry[K, V]{m: M, key: key, bucketIdx: bucketIdx, pairIdx: i}
		}
	}

	return Entry[K, V]{m: M, key: key, bucketIdx: bucketIdx, pairIdx: -1}
}

// Occupied - Returns true if the view refers to an existing pair.
func (E Entry[K, V]) Occupied() bool {
	return E.pairIdx >= 0
}

// Key - Returns the key the view was produced for.
func (E Entry[K, V]) Key() K {
	return E.key
}

// OrInsert - Returns a pointer to the stored value, inserting the given value first if
// the view is vacant. For an occupied view the supplied value is ignored and the
// existing value is left unchanged. The pointer aliases the bucket's storage and is only
// valid until the next mutation of the map.
func (E Entry[K, V]) OrInsert(value V) *V {
	if E.pairIdx >= 0 {
		return E.existing()
	}

	return E.insert(value)
}

// OrInsertWith - Same as OrInsert, but the value is taken from the producer, which is
// invoked exactly once and only if the view is vacant.
func (E Entry[K, V]) OrInsertWith(produce func() V) *V {
	if E.pairIdx >= 0 {
		return E.existing()
	}

	return E.insert(produce())
}

// existing - Re-derives a reference to the value of the pair the view refers to.
func (E Entry[K, V]) existing() *V {
	b := &E.m.buckets.Slice()[E.bucketIdx]
	return &b.pairs.Slice()[E.pairIdx].value
}

// insert - Appends a new pair to the target bucket and re-derives a reference to its
// freshly stored value.
func (E Entry[K, V]) insert(value V) *V {
	b := &E.m.buckets.Slice()[E.bucketIdx]
	b.pairs.Push(pair[K, V]{key: E.key, value: value})
	E.m.items++

	return &b.pairs.Slice()[b.pairs.Len()-1].value
}
