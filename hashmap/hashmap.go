package hashmap

import (
	"fmt"
	"github.com/gostonefire/rawcontainers/hashfunc"
	"github.com/gostonefire/rawcontainers/vector"
	"go.uber.org/zap"
	"strings"
)

// defaultInitialSize - Bucket count used for the first allocation when no initial size
// was configured.
const defaultInitialSize = 1

// pair - One key/value pair stored in a bucket.
type pair[K comparable, V any] struct {
	key   K
	value V
}

// bucket - An insertion ordered sequence of pairs whose keys all hash to the same slot
// of the bucket array. Keys are unique within a bucket.
type bucket[K comparable, V any] struct {
	pairs vector.Vector[pair[K, V]]
}

// Map - A separate chaining hash map from keys of type K to values of type V. The bucket
// array and every bucket are both growable vectors, and the map owns that storage
// exclusively.
//
// The map resizes before an insert whenever it is empty or the load factor exceeds 3/4,
// doubling the bucket count and redistributing every stored pair.
//
// Map is not safe for concurrent mutation, any such safety has to be added by an
// external wrapper.
type Map[K comparable, V any] struct {
	buckets     vector.Vector[bucket[K, V]]
	items       int
	initialSize int
	hash        hashfunc.HashAlgorithm[K]
	logger      *zap.Logger
}

// Option - Functional option for configuring a new Map.
type Option[K comparable, V any] func(m *Map[K, V])

// WithInitialSize - Sets the bucket count used when the empty map allocates its first
// bucket array. Values below 1 are ignored and the default of 1 is used.
func WithInitialSize[K comparable, V any](size int) Option[K, V] {
	return func(m *Map[K, V]) {
		if size > 0 {
			m.initialSize = size
		}
	}
}

// WithHashAlgorithm - Replaces the default hash algorithm with a custom one suited for
// the map's particular distribution of keys.
func WithHashAlgorithm[K comparable, V any](hashAlgorithm hashfunc.HashAlgorithm[K]) Option[K, V] {
	return func(m *Map[K, V]) {
		if hashAlgorithm != nil {
			m.hash = hashAlgorithm
		}
	}
}

// WithLogger - Routes resize trace events through the given logger. Without it the map
// produces no trace output.
func WithLogger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return func(m *Map[K, V]) {
		m.logger = logger
	}
}

// New - Returns a pointer to a new empty Map. No bucket storage is allocated until the
// first insert.
func New[K comparable, V any](options ...Option[K, V]) *Map[K, V] {
	m := &Map[K, V]{hash: hashfunc.Seeded[K]()}
	for _, option := range options {
		option(m)
	}

	return m
}

// Len - Returns the total number of pairs stored across all buckets.
func (M *Map[K, V]) Len() int {
	return M.items
}

// IsEmpty - Returns true if the map holds no pairs.
func (M *Map[K, V]) IsEmpty() bool {
	return M.items == 0
}

// Insert - Stores value under key. If a pair with an equal key already exists its value
// is replaced, which leaves the item count unchanged.
//
// It returns:
//   - previous is the value that was replaced, or the zero value if the key was absent
//   - replaced is true if an existing pair had its value replaced
func (M *Map[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	// Resize check strictly before locating the target bucket, on pre-insert counts
	M.ensureCapacity()

	b := &M.buckets.Slice()[M.bucketFor(key)]
	pairs := b.pairs.Slice()
	for i := range pairs {
		if pairs[i].key == key {
			previous = pairs[i].value
			pairs[i].value = value
			replaced = true
			return
		}
	}

	b.pairs.Push(pair[K, V]{key: key, value: value})
	M.items++

	return
}

// Get - Looks up the value stored under key.
//
// It returns:
//   - value is the stored value, or the zero value if the key is absent
//   - ok is false if the key is absent
func (M *Map[K, V]) Get(key K) (value V, ok bool) {
	if M.buckets.Len() == 0 {
		return
	}

	pairs := M.buckets.Slice()[M.bucketFor(key)].pairs.Slice()
	for i := range pairs {
		if pairs[i].key == key {
			value = pairs[i].value
			ok = true
			return
		}
	}

	return
}

// GetRef - Looks up the value stored under key and returns a pointer to it for in place
// mutation, or nil if the key is absent. The pointer aliases the bucket's storage and is
// only valid until the next mutation of the map.
func (M *Map[K, V]) GetRef(key K) *V {
	if M.buckets.Len() == 0 {
		return nil
	}

	pairs := M.buckets.Slice()[M.bucketFor(key)].pairs.Slice()
	for i := range pairs {
		if pairs[i].key == key {
			return &pairs[i].value
		}
	}

	return nil
}

// ContainsKey - Returns true if a pair with the given key is stored in the map.
func (M *Map[K, V]) ContainsKey(key K) bool {
	_, ok := M.Get(key)
	return ok
}

// MustGet - Returns the value stored under key, or fails fatally if the key is absent.
// Use Get when absence is an expected outcome.
func (M *Map[K, V]) MustGet(key K) V {
	value, ok := M.Get(key)
	if !ok {
		panic(fmt.Sprintf("hashmap: no entry found for key %v", key))
	}

	return value
}

// Remove - Removes the pair stored under key. The removal is unordered: the last pair of
// the bucket is swapped into the vacated position, so relative order of the remaining
// pairs in that bucket is not preserved.
//
// It returns:
//   - value is the removed value, or the zero value if the key was absent
//   - ok is false if the key was absent
func (M *Map[K, V]) Remove(key K) (value V, ok bool) {
	if M.buckets.Len() == 0 {
		return
	}

	b := &M.buckets.Slice()[M.bucketFor(key)]
	pairs := b.pairs.Slice()
	for i := range pairs {
		if pairs[i].key == key {
			value = pairs[i].value
			pairs[i] = pairs[len(pairs)-1]
			_, _ = b.pairs.Pop()
			M.items--
			ok = true
			return
		}
	}

	return
}

// Clear - Removes all pairs and reallocates the bucket array back to its starting
// capacity, forcing subsequent inserts to rebuild from scratch.
func (M *Map[K, V]) Clear() {
	M.items = 0
	M.buckets = *vector.New[bucket[K, V]]()
	M.resize()
}

// GetBytes - Looks up a string keyed map through a borrowed byte slice view of the key,
// without building a string key. This requires the map's hash algorithm to be byte
// consistent (implement hashfunc.ByteHasher), such as hashfunc.FNV1a or hashfunc.XX;
// with any other algorithm the lookup falls back to converting the view into a key.
//
// It returns:
//   - value is the stored value, or the zero value if the key is absent
//   - ok is false if the key is absent
func GetBytes[K ~string, V any](m *Map[K, V], key []byte) (value V, ok bool) {
	byteHasher, supported := m.hash.(hashfunc.ByteHasher)
	if !supported {
		return m.Get(K(key))
	}

	if m.buckets.Len() == 0 {
		return
	}

	idx := int(byteHasher.SumBytes64(key) % uint64(m.buckets.Len()))
	pairs := m.buckets.Slice()[idx].pairs.Slice()
	for i := range pairs {
		if string(pairs[i].key) == string(key) {
			value = pairs[i].value
			ok = true
			return
		}
	}

	return
}

// String - Formats the bucket contents for debugging purposes. The format is not a
// stable contract.
func (M *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("Map {\n")
	buckets := M.buckets.Slice()
	for i := range buckets {
		pairs := buckets[i].pairs.Slice()
		for j := range pairs {
			_, _ = fmt.Fprintf(&sb, "    #%d [ (%v, %v) ],\n", i, pairs[j].key, pairs[j].value)
		}
	}
	_, _ = fmt.Fprintf(&sb, "    items: %d\n}", M.items)

	return sb.String()
}

// bucketFor - Returns the index of the bucket that holds, or would hold, the given key.
// Only valid while the bucket array is non-empty.
func (M *Map[K, V]) bucketFor(key K) int {
	return int(M.hash.Sum64(key) % uint64(M.buckets.Len()))
}

// ensureCapacity - Performs the pre-insert resize check: resizes if the bucket array is
// empty or the item count exceeds 3/4 of the bucket count.
func (M *Map[K, V]) ensureCapacity() {
	if M.buckets.Len() == 0 || M.items > 3*M.buckets.Len()/4 {
		M.resize()
	}
}

// resize - Allocates a fresh bucket array, sized to the configured initial size when the
// map is currently empty of buckets and to twice the current bucket count otherwise, and
// redistributes every stored pair into it by recomputing its bucket against the new
// size. The old bucket array is discarded afterwards.
func (M *Map[K, V]) resize() {
	target := 2 * M.buckets.Len()
	if M.buckets.Len() == 0 {
		if M.initialSize > 0 {
			target = M.initialSize
		} else {
			target = defaultInitialSize
		}
	}

	fresh := vector.New[bucket[K, V]]()
	for i := 0; i < target; i++ {
		fresh.Push(bucket[K, V]{})
	}

	old := M.buckets
	M.buckets = *fresh

	// The fresh bucket array never grows during redistribution, only the pair
	// vectors inside it do, so the view stays valid throughout.
	slots := M.buckets.Slice()
	oldSlots := old.Slice()
	for i := range oldSlots {
		d := oldSlots[i].pairs.Drain()
		for {
			p, ok := d.Next()
			if !ok {
				break
			}
			idx := int(M.hash.Sum64(p.key) % uint64(target))
			slots[idx].pairs.Push(p)
		}
		d.Close()
	}

	if M.logger != nil {
		M.logger.Debug("resized hash map",
			zap.Int("buckets", target),
			zap.Int("items", M.items),
		)
	}
}
