package hashfunc

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestFNV1a(t *testing.T) {
	t.Run("matches the published FNV-1a test vectors", func(t *testing.T) {
		// Prepare
		h := FNV1a[string]()

		// Execute and Check
		assert.Equal(t, uint64(0xcbf29ce484222325), h.Sum64(""), "offset basis for the empty key")
		assert.Equal(t, uint64(0xaf63dc4c8601ec8c), h.Sum64("a"), "known vector for a single byte")
	})

	t.Run("is consistent between key and byte representation", func(t *testing.T) {
		// Prepare
		h := FNV1a[string]()
		bh := h.(ByteHasher)

		// Execute and Check
		assert.Equal(t, h.Sum64("poneyland"), bh.SumBytes64([]byte("poneyland")), "same value for equivalent representations")
	})

	t.Run("supports named string types", func(t *testing.T) {
		// Prepare
		type name string
		h := FNV1a[name]()
		s := FNV1a[string]()

		// Execute and Check
		assert.Equal(t, s.Sum64("abc"), h.Sum64(name("abc")), "hash depends only on the bytes")
	})
}

func TestXX(t *testing.T) {
	t.Run("is consistent between key and byte representation", func(t *testing.T) {
		// Prepare
		h := XX[string]()
		bh := h.(ByteHasher)

		// Execute and Check
		assert.Equal(t, h.Sum64("poneyland"), bh.SumBytes64([]byte("poneyland")), "same value for equivalent representations")
	})

	t.Run("is deterministic for equal keys", func(t *testing.T) {
		// Prepare
		h := XX[string]()

		// Execute and Check
		assert.Equal(t, h.Sum64("abc"), h.Sum64("abc"), "equal keys hash equal")
		assert.NotEqual(t, h.Sum64("abc"), h.Sum64("abd"), "different keys spread out")
	})
}

func TestSeeded(t *testing.T) {
	t.Run("is deterministic for equal keys within an instance", func(t *testing.T) {
		// Prepare
		h := Seeded[int]()

		// Execute and Check
		assert.Equal(t, h.Sum64(42), h.Sum64(42), "equal keys hash equal")
	})

	t.Run("handles arbitrary comparable key types", func(t *testing.T) {
		// Prepare
		type point struct{ x, y int }
		h := Seeded[point]()

		// Execute and Check
		assert.Equal(t, h.Sum64(point{1, 2}), h.Sum64(point{1, 2}), "equal struct keys hash equal")
	})
}
