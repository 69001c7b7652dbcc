package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/flycam/flycam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBenchAppKeepsPitchBounded(t *testing.T) {
	app := newBenchApp(zap.NewNop(), 50, 7)
	for range 1200 {
		app.Update(1.0 / 60)
	}

	report := &Report{Cameras: 50}
	report.Collect(app)

	assert.Equal(t, 50, report.Storage.TotalEntityCount)
	assert.LessOrEqual(t, report.MaxAbsPitch, float64(flycam.MaxPitch)+1e-6)
	assert.Greater(t, report.MeanDistance, 0.0)
	assert.NotEmpty(t, report.Systems)
}

func TestReportGenerate(t *testing.T) {
	app := newBenchApp(zap.NewNop(), 3, 1)
	app.Update(0.016)

	report := &Report{
		Duration:   time.Second,
		Cameras:    3,
		UpdateTime: Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}},
	}
	report.UpdateTime.Finalize()
	report.Collect(app)

	assert.Equal(t, time.Millisecond, report.UpdateTime.Min)
	assert.Equal(t, 3*time.Millisecond, report.UpdateTime.Max)
	assert.Equal(t, 2*time.Millisecond, report.UpdateTime.Avg)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()
	assert.Contains(t, out, "# Fly Camera Benchmark Report")
	assert.Contains(t, out, "| MoveSystem | Update |")
	assert.Contains(t, out, "**Cameras:** 3")
}
