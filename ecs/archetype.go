package ecs

import (
	"iter"
	"reflect"
	"slices"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity sharing one exact set of component types.
// All columns advance in lockstep, so a slot index is the entity index.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []column
}

// NewArchetype creates an archetype for the given sorted component types.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]column, len(types)),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.columns[idx] = factory()
	}

	return a
}

// Spawn appends one component per column and returns the shared slot index.
// components must match the archetype's types one to one.
func (a *Archetype) Spawn(components []any) uint32 {
	index := -1
	for _, comp := range components {
		col := a.columnIndex(componentType(comp))
		if col == -1 {
			panic("component type " + componentType(comp).String() + " does not belong to archetype")
		}
		pos := a.columns[col].Append(comp)
		if index != -1 && pos != index {
			panic("archetype columns out of step")
		}
		index = pos
	}
	return uint32(index)
}

func (a *Archetype) columnIndex(t reflect.Type) int {
	for i, typ := range a.types {
		if typ == t {
			return i
		}
	}
	return -1
}

// GetComponent returns a pointer to the entity's component of compType, or nil.
func (a *Archetype) GetComponent(entityIndex uint32, compType reflect.Type) any {
	idx := a.columnIndex(compType)
	if idx == -1 {
		return nil
	}
	return a.columns[idx].Get(int(entityIndex))
}

// Contains reports whether the slot currently holds a live entity.
func (a *Archetype) Contains(entityIndex uint32) bool {
	if len(a.columns) == 0 {
		return false
	}
	return a.columns[0].Has(int(entityIndex))
}

// Delete frees the entity's slot in every column. Indices of other entities stay stable.
func (a *Archetype) Delete(entityIndex uint32) {
	for _, col := range a.columns {
		col.Delete(int(entityIndex))
	}
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's unique identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Len()
}

// Iter returns an iterator over all live EntityIds in this archetype
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for index := range a.columns[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}
