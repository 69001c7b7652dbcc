package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageStats(t *testing.T) {
	registry := NewComponentRegistry()
	RegisterComponent[int](registry)
	RegisterComponent[string](registry)
	RegisterComponent[float64](registry)

	storage := NewStorage(registry)

	stats := storage.CollectStats()
	assert.Zero(t, stats.ArchetypeCount)
	assert.Zero(t, stats.TotalEntityCount)
	assert.Zero(t, stats.SingletonCount)

	storage.Spawn(42, "hello")
	storage.Spawn(100, "world")
	gone := storage.Spawn(200.0, "test")
	storage.Spawn(300.0, "kept")
	storage.Delete(gone)

	NewSingleton(storage, 3.14)
	NewSingleton(storage, "singleton")

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.ArchetypeCount)
	assert.Equal(t, 3, stats.TotalEntityCount)
	assert.Equal(t, 2, stats.SingletonCount)
	assert.Equal(t, []string{"float64", "string"}, stats.SingletonTypes)

	counts := map[int]bool{}
	for _, arch := range stats.ArchetypeBreakdown {
		counts[arch.EntityCount] = true
		assert.Len(t, arch.ComponentTypes, 2)
	}
	assert.Equal(t, map[int]bool{1: true, 2: true}, counts)
}

func TestBlockColumnFreeList(t *testing.T) {
	col := &blockColumn[int]{}

	for i := range blockSize + 1 {
		assert.Equal(t, i, col.Append(i))
	}
	assert.Equal(t, blockSize+1, col.Len())

	col.Delete(3)
	col.Delete(3)
	assert.False(t, col.Has(3))
	assert.Nil(t, col.Get(3))
	assert.Equal(t, blockSize, col.Len())

	assert.Equal(t, 3, col.Append(new(int)))
	assert.Equal(t, -1, col.Append("wrong type"))
	assert.False(t, col.Has(-1))
	assert.False(t, col.Has(10_000))

	n := 0
	for range col.Iter() {
		n++
	}
	assert.Equal(t, blockSize+1, n)
}
