package ecs_test

import (
	"testing"

	"github.com/plus3/flycam/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewGet(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	full := storage.Spawn(Position{X: 1}, Velocity{DX: 2}, Name{Value: "a"})
	partial := storage.Spawn(Position{X: 3})

	view := ecs.NewView[struct {
		*Position
		*Velocity
	}](storage)

	item := view.Get(full)
	require.NotNil(t, item)
	assert.Equal(t, float32(1), item.Position.X)
	assert.Equal(t, float32(2), item.Velocity.DX)

	assert.Nil(t, view.Get(partial))

	item.Position.X = 10
	assert.Equal(t, float32(10), ecs.ReadComponent[Position](storage, full).X, "view fields point into storage")
}

func TestViewOptionalAndEntityId(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	withName := storage.Spawn(Position{X: 1}, Name{Value: "named"})
	withoutName := storage.Spawn(Position{X: 2})

	view := ecs.NewView[struct {
		Id       ecs.EntityId
		Position *Position
		Name     *Name `ecs:"optional"`
	}](storage)

	seen := map[ecs.EntityId]string{}
	for id, item := range view.Iter() {
		assert.Equal(t, id, item.Id)
		if item.Name != nil {
			seen[id] = item.Name.Value
		} else {
			seen[id] = ""
		}
	}

	assert.Equal(t, map[ecs.EntityId]string{withName: "named", withoutName: ""}, seen)
}

func TestViewRejectsBadShapes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[int](storage) })
	assert.Panics(t, func() { ecs.NewView[struct{ Position Position }](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct {
			Position *Position `ecs:"sometimes"`
		}](storage)
	})
}

func TestViewSpawn(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	view := ecs.NewView[struct {
		Position *Position
		Name     *Name `ecs:"optional"`
	}](storage)

	id := view.Spawn(struct {
		Position *Position
		Name     *Name `ecs:"optional"`
	}{Position: &Position{Z: 4}})

	assert.Equal(t, float32(4), ecs.ReadComponent[Position](storage, id).Z)
	assert.Nil(t, ecs.ReadComponent[Name](storage, id))
}

func TestQueryRequiresExecute(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct{ *Position }](storage)

	assert.Panics(t, func() { query.Iter() })
	assert.Panics(t, func() { query.Values() })
}

func TestQuerySeesNewArchetypes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	query := ecs.NewQuery[struct{ *Position }](storage)

	storage.Spawn(Position{X: 1})
	query.Execute()
	assert.Equal(t, 1, query.Len())

	storage.Spawn(Position{X: 2}, Marker{})
	storage.Spawn(Velocity{})
	query.Execute()
	assert.Equal(t, 2, query.Len())

	var sum float32
	for item := range query.Values() {
		sum += item.Position.X
	}
	assert.Equal(t, float32(3), sum)
}
