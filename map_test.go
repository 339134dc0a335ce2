package regular

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testKey struct {
	part1 int
	part2 string
}

func (k testKey) Hash() uint64 {
	return uint64(k.part1 + len(k.part2))
}

func (k testKey) Equals(other Hashable) bool {
	o, ok := other.(testKey)
	return ok && k.part1 == o.part1 && k.part2 == o.part2
}

type otherKey int

func (k otherKey) Hash() uint64 {
	return uint64(k)
}

func (k otherKey) Equals(other Hashable) bool {
	o, ok := other.(otherKey)
	return ok && k == o
}

func TestHashMapBasic(t *testing.T) {
	t.Run("InsertAndGet", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := testKey{1, "a"}
		hm.Set(key, "value1")

		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, "value1", val)

		_, exists = hm.Get(testKey{2, "b"})
		assert.False(t, exists)
	})

	t.Run("UpdateValue", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := testKey{1, "a"}
		hm.Set(key, "value1")
		hm.Set(key, "value2")

		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, "value2", val)
		assert.Equal(t, 1, hm.Size())
	})

	t.Run("DeleteKey", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := testKey{1, "a"}
		hm.Set(key, "value1")

		hm.Delete(key)
		assert.Equal(t, 0, hm.Size())
		_, exists := hm.Get(key)
		assert.False(t, exists)

		// Deleting an absent key is a no-op.
		hm.Delete(testKey{2, "b"})
	})
}

func TestHashMapCollision(t *testing.T) {
	hm := NewHashMap[string](WithCapacity(4))

	// testKey hashes part1 + len(part2), so these three collide.
	k1 := testKey{1, "ab"}
	k2 := testKey{2, "a"}
	k3 := testKey{3, ""}
	hm.Set(k1, "v1")
	hm.Set(k2, "v2")
	hm.Set(k3, "v3")

	assert.Equal(t, 3, hm.Size())
	for key, want := range map[testKey]string{k1: "v1", k2: "v2", k3: "v3"} {
		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, want, val)
	}
}

func TestHashMapResize(t *testing.T) {
	hm := NewHashMap[int](WithCapacity(1), WithLoadFactory(0.5))

	for i := 0; i < 100; i++ {
		hm.Set(otherKey(i), i*i)
	}
	assert.Equal(t, 100, hm.Size())

	for i := 0; i < 100; i++ {
		val, exists := hm.Get(otherKey(i))
		assert.True(t, exists, fmt.Sprintf("key %d missing after resize", i))
		assert.Equal(t, i*i, val)
	}
}

func TestHashMapIterator(t *testing.T) {
	hm := NewHashMap[int]()
	for i := 0; i < 10; i++ {
		hm.Set(otherKey(i), i)
	}

	seen := make(map[int]bool)
	for key, val := range hm.Iterator() {
		k, ok := key.(otherKey)
		assert.True(t, ok)
		assert.Equal(t, int(k), val)
		seen[val] = true
	}
	assert.Len(t, seen, 10)
}

func TestHashMapTypeMismatch(t *testing.T) {
	hm := NewHashMap[string]()
	hm.Set(testKey{1, ""}, "v")

	// otherKey(1) hashes like testKey{1, ""} but is a different type.
	_, exists := hm.Get(otherKey(1))
	assert.False(t, exists)
}
