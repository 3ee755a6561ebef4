package hashfunc

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/maphash"
)

// HashAlgorithm - Interface that permits an implementation using the hash map to supply a
// custom hash algorithm suited for its particular distribution of keys.
//
// Any implementation must be fast, non-cryptographic and deterministic: equal key values
// must produce identical hash values for the lifetime of the process.
type HashAlgorithm[K any] interface {
	// Sum64 - Returns a 64 bit hash over the key.
	Sum64(key K) uint64
}

// ByteHasher - Implemented by hash algorithms whose Sum64 over a key is consistent with
// hashing the key's byte representation directly. Such algorithms allow looking up a
// string keyed map entry through a borrowed byte slice view of the key, since both
// representations produce identical hash values for equivalent values.
type ByteHasher interface {
	// SumBytes64 - Returns a 64 bit hash over the raw bytes of a key.
	SumBytes64(key []byte) uint64
}

// Seeded - Returns the default hash algorithm for an arbitrary comparable key type. It
// uses the runtime's memory hash under a process-wide random seed, so hash values are
// deterministic within a process but not across processes.
func Seeded[K comparable]() HashAlgorithm[K] {
	return &seeded[K]{hasher: maphash.NewHasher[K]()}
}

type seeded[K comparable] struct {
	hasher maphash.Hasher[K]
}

func (S *seeded[K]) Sum64(key K) uint64 {
	return S.hasher.Hash(key)
}

// FNV-1a parameters for 64 bit hashes
const (
	fnvOffsetBasis uint64 = 14695981039346656037
	fnvPrime       uint64 = 1099511628211
)

// FNV1a - Returns an FNV-1a hash algorithm for string keys. FNV-1a hashes the key byte
// by byte, so it also implements ByteHasher and supports borrowed byte slice lookups.
func FNV1a[K ~string]() HashAlgorithm[K] {
	return fnv1a[K]{}
}

type fnv1a[K ~string] struct{}

func (F fnv1a[K]) Sum64(key K) uint64 {
	h := fnvOffsetBasis
	s := string(key)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}

	return h
}

func (F fnv1a[K]) SumBytes64(key []byte) uint64 {
	h := fnvOffsetBasis
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= fnvPrime
	}

	return h
}

// XX - Returns an xxHash based hash algorithm for string keys. Considerably faster than
// FNV-1a on long keys. It also implements ByteHasher and supports borrowed byte slice
// lookups.
func XX[K ~string]() HashAlgorithm[K] {
	return xx[K]{}
}

type xx[K ~string] struct{}

func (X xx[K]) Sum64(key K) uint64 {
	return xxhash.Sum64String(string(key))
}

func (X xx[K]) SumBytes64(key []byte) uint64 {
	return xxhash.Sum64(key)
}
