package ecs

import (
	"iter"
	"reflect"
)

// column is a type-erased component column owned by an archetype.
type column interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}

// ComponentRegistry maps component types to column factories.
// Each Storage has its own registry, so independent worlds never share types.
type ComponentRegistry struct {
	factories map[reflect.Type]func() column
}

// NewComponentRegistry creates an empty component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() column),
	}
}

// RegisterComponent registers T with the registry. Registering twice is a no-op.
// Every component type must be registered before an entity carrying it is spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	if _, ok := r.factories[t]; ok {
		return
	}
	r.factories[t] = func() column {
		return &blockColumn[T]{}
	}
}

// IsRegistered reports whether T has been registered.
func IsRegistered[T any](r *ComponentRegistry) bool {
	_, ok := r.factories[reflect.TypeFor[T]()]
	return ok
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() column {
	return r.factories[t]
}

const blockSize = 64

type block[T any] struct {
	items  [blockSize]T
	filled [blockSize]bool
}

// blockColumn stores components in fixed-size heap blocks so pointers handed
// out by Get stay valid while the column grows.
type blockColumn[T any] struct {
	blocks    []*block[T]
	freeSlots []int
	nextIndex int
	live      int
}

func (c *blockColumn[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return -1
	}

	var index int
	if n := len(c.freeSlots); n > 0 {
		index = c.freeSlots[n-1]
		c.freeSlots = c.freeSlots[:n-1]
	} else {
		index = c.nextIndex
		c.nextIndex++
		if index/blockSize >= len(c.blocks) {
			c.blocks = append(c.blocks, &block[T]{})
		}
	}

	b := c.blocks[index/blockSize]
	b.items[index%blockSize] = value
	b.filled[index%blockSize] = true
	c.live++
	return index
}

func (c *blockColumn[T]) slot(index int) (*block[T], int, bool) {
	if index < 0 || index >= c.nextIndex {
		return nil, 0, false
	}
	b := c.blocks[index/blockSize]
	return b, index % blockSize, b.filled[index%blockSize]
}

// Get returns a *T for the slot, or nil when the slot is empty.
func (c *blockColumn[T]) Get(index int) any {
	b, i, ok := c.slot(index)
	if !ok {
		return nil
	}
	return &b.items[i]
}

func (c *blockColumn[T]) Delete(index int) {
	b, i, ok := c.slot(index)
	if !ok {
		return
	}
	var zero T
	b.items[i] = zero
	b.filled[i] = false
	c.freeSlots = append(c.freeSlots, index)
	c.live--
}

func (c *blockColumn[T]) Has(index int) bool {
	_, _, ok := c.slot(index)
	return ok
}

func (c *blockColumn[T]) Len() int {
	return c.live
}

func (c *blockColumn[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < c.nextIndex; i++ {
			if c.blocks[i/blockSize].filled[i%blockSize] {
				if !yield(i) {
					return
				}
			}
		}
	}
}
