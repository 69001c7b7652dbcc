package ecs

import "reflect"

// Commands buffers structural changes requested by systems. The Scheduler
// flushes the buffer at the end of every stage, so queries never observe a
// half-applied change while a system is iterating.
type Commands struct {
	spawns  []spawnCommand
	deletes []EntityId
	edits   []editCommand
	defers  []func()
}

// NewCommands returns an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	components []any
	then       func(EntityId)
}

type editCommand struct {
	entity    EntityId
	component any          // set for adds
	compType  reflect.Type // set for removes
}

// Defer queues fn to run after every other command of the flush.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// SpawnThen queues a spawn and calls then with the new entity's id once it exists.
func (c *Commands) SpawnThen(then func(EntityId), components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components, then: then})
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues a component addition operation.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.edits = append(c.edits, editCommand{entity: entity, component: component})
}

// RemoveComponent queues a component removal operation.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.edits = append(c.edits, editCommand{entity: entity, compType: compType})
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.edits) + len(c.defers)
}

// Flush applies all queued commands to storage in order deletes, edits,
// spawns, defers, then resets the buffer. Edits against an entity that moved
// archetype earlier in the same flush follow it to its new id.
func (c *Commands) Flush(storage *Storage) {
	deleted := make(map[EntityId]bool, len(c.deletes))
	for _, id := range c.deletes {
		storage.Delete(id)
		deleted[id] = true
	}

	moved := make(map[EntityId]EntityId)
	for _, cmd := range c.edits {
		if deleted[cmd.entity] {
			continue
		}
		id := cmd.entity
		if to, ok := moved[id]; ok {
			id = to
		}

		var newId EntityId
		if cmd.component != nil {
			newId = storage.AddComponent(id, cmd.component)
		} else {
			newId = storage.RemoveComponent(id, cmd.compType)
		}
		if newId == 0 {
			deleted[cmd.entity] = true
			continue
		}
		moved[cmd.entity] = newId
	}

	for _, cmd := range c.spawns {
		id := storage.Spawn(cmd.components...)
		if cmd.then != nil {
			cmd.then(id)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.edits = c.edits[:0]
	c.defers = c.defers[:0]
}
