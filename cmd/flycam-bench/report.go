package main

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/flycam"
	"github.com/plus3/flycam/scene"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Cameras  int
	Seed     uint64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Systems        []ecs.SystemStats
	Storage        *ecs.StorageStats
	MaxAbsPitch    float64
	FinalSpeed     float32
	MeanDistance   float64
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Collect reads the scheduler, storage and camera state out of app.
func (r *Report) Collect(app *ecs.App) {
	r.Systems = app.Scheduler().GetStats().Systems
	storageStats := app.Storage().CollectStats()
	r.Storage = &storageStats
	if settings := ecs.LookupSingleton[flycam.MovementSettings](app.Storage()); settings != nil {
		r.FinalSpeed = settings.Speed
	}

	q := ecs.NewQuery[struct {
		Transform *scene.Transform
		Cam       *flycam.FlyCam
	}](app.Storage())
	q.Execute()

	var total float64
	for _, c := range q.Iter() {
		r.MaxAbsPitch = max(r.MaxAbsPitch, math.Abs(float64(c.Cam.Pitch)))
		total += float64(c.Transform.Translation.Len())
	}
	if n := q.Len(); n > 0 {
		r.MeanDistance = total / float64(n)
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Fly Camera Benchmark Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Cameras:** {{.Cameras}}
- **Seed:** {{.Seed}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
| System | Stage | Runs | Avg | Max |
|---|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.Stage}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Controller State
- **Max |pitch|:** {{printf "%.4f" .MaxAbsPitch}} rad
- **Final speed:** {{printf "%.2f" .FinalSpeed}}
- **Mean distance from origin:** {{printf "%.2f" .MeanDistance}}
{{- with .Storage}}
- **Entities:** {{.TotalEntityCount}} in {{.ArchetypeCount}} archetypes
{{- end}}

## Memory Usage (MiB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end)
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end)
- Num GC:         {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
