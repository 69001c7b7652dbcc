package ecs

import (
	"context"
	"reflect"
	"strings"
	"time"
)

// Stage groups systems that run together. Commands are flushed between stages.
type Stage int

const (
	First Stage = iota
	PreUpdate
	Update
	PostUpdate
	Last

	stageCount
)

var stageNames = [...]string{"First", "PreUpdate", "Update", "PostUpdate", "Last"}

func (s Stage) String() string {
	if s < 0 || s >= stageCount {
		return "Stage(?)"
	}
	return stageNames[s]
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Stage          string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemEntry struct {
	system  System
	queries []interface{ Execute() }

	name           string
	stage          string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs startup systems once, then every stage in order each frame.
type Scheduler struct {
	storage *Storage
	startup []*systemEntry
	stages  [stageCount][]*systemEntry
	started bool
	frames  int64
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{storage: storage}
}

// Register adds a system to the Update stage.
func (s *Scheduler) Register(system System) {
	s.RegisterIn(Update, system)
}

// RegisterIn adds a system to stage. Systems in a stage run in registration order.
func (s *Scheduler) RegisterIn(stage Stage, system System) {
	if stage < 0 || stage >= stageCount {
		panic("unknown stage " + stage.String())
	}
	s.stages[stage] = append(s.stages[stage], s.newEntry(system, stage.String()))
}

// RegisterStartup adds a system that runs once, before the first frame.
// Startup systems registered after the first frame run at the start of the next one.
func (s *Scheduler) RegisterStartup(system System) {
	s.startup = append(s.startup, s.newEntry(system, "Startup"))
	s.started = false
}

func (s *Scheduler) newEntry(system System, stage string) *systemEntry {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	return &systemEntry{
		system:      system,
		queries:     s.initializeFields(system),
		name:        systemType.Name(),
		stage:       stage,
		minDuration: time.Duration(1<<63 - 1),
	}
}

// initializeFields binds exported Query and Singleton fields to the storage
// and returns the queries so they can be refreshed before each run.
func (s *Scheduler) initializeFields(system System) []interface{ Execute() } {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() == reflect.Ptr {
		systemValue = systemValue.Elem()
	}

	if systemValue.Kind() != reflect.Struct {
		return nil
	}

	var queries []interface{ Execute() }
	systemType := systemValue.Type()

	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		fieldType := systemType.Field(i)

		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		typeName := field.Type().Name()
		isQuery := strings.HasPrefix(typeName, "Query[")
		if !isQuery && !strings.HasPrefix(typeName, "Singleton[") {
			continue
		}

		initMethod := field.Addr().MethodByName("Init")
		if !initMethod.IsValid() {
			panic("Init method not found on field: " + fieldType.Name)
		}
		initMethod.Call([]reflect.Value{reflect.ValueOf(s.storage)})

		if isQuery {
			if q, ok := field.Addr().Interface().(interface{ Execute() }); ok {
				queries = append(queries, q)
			}
		}
	}

	return queries
}

func (s *Scheduler) run(entry *systemEntry, frame *UpdateFrame) {
	start := time.Now()
	for _, q := range entry.queries {
		q.Execute()
	}
	entry.system.Execute(frame)
	duration := time.Since(start)

	entry.executionCount++
	entry.lastDuration = duration
	entry.totalDuration += duration
	entry.minDuration = min(entry.minDuration, duration)
	entry.maxDuration = max(entry.maxDuration, duration)
}

// Once runs pending startup systems, then every stage once with the given
// delta time. Commands are flushed after startup and after each stage.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.storage)

	if !s.started {
		frame.DeltaTime = 0
		for _, entry := range s.startup {
			if entry.executionCount == 0 {
				s.run(entry, frame)
			}
		}
		frame.Commands.Flush(s.storage)
		frame.DeltaTime = dt
		s.started = true
	}

	for stage := Stage(0); stage < stageCount; stage++ {
		frame.Stage = stage
		for _, entry := range s.stages[stage] {
			s.run(entry, frame)
		}
		frame.Commands.Flush(s.storage)
	}

	s.frames++
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// Frames returns how many frames Once has completed.
func (s *Scheduler) Frames() int64 {
	return s.frames
}

// GetStats returns statistics about system execution, startup systems first.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{Frames: s.frames}

	entries := append([]*systemEntry(nil), s.startup...)
	for _, stage := range s.stages {
		entries = append(entries, stage...)
	}

	for _, entry := range entries {
		var avgDuration time.Duration
		minDuration := entry.minDuration
		if entry.executionCount > 0 {
			avgDuration = entry.totalDuration / time.Duration(entry.executionCount)
		} else {
			minDuration = 0
		}

		stats.Systems = append(stats.Systems, SystemStats{
			Name:           entry.name,
			Stage:          entry.stage,
			ExecutionCount: entry.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    entry.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   entry.lastDuration,
			TotalDuration:  entry.totalDuration,
		})
		stats.TotalExecutions += entry.executionCount
	}

	stats.SystemCount = len(stats.Systems)
	return stats
}
