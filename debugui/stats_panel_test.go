package debugui

import (
	"reflect"
	"testing"

	"github.com/plus3/flycam/flycam"
	"github.com/stretchr/testify/assert"
)

func TestFrameHistoryAverage(t *testing.T) {
	h := NewFrameHistory(4)
	assert.Equal(t, float32(0), h.Average())

	h.Add(0.010)
	h.Add(0.020)
	assert.InDelta(t, 15, h.Average(), 1e-4)

	for range 4 {
		h.Add(0.005)
	}
	assert.InDelta(t, 5, h.Average(), 1e-4, "old samples are overwritten")
}

func TestReflectionCacheSkipsUnexported(t *testing.T) {
	rc := NewReflectionCache()
	fields := rc.GetFields(reflect.TypeFor[flycam.FlyCam]())

	var names []string
	for _, f := range fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Yaw", "Pitch", "Roll", "Velocity"}, names)
	assert.Nil(t, rc.GetFields(reflect.TypeFor[int]()))
}
