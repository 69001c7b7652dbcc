package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/plus3/flycam/ecs"
	"github.com/plus3/flycam/flycam"
	"github.com/plus3/flycam/logging"
	"go.uber.org/zap"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the benchmark should run for.")
	cameraCount := flag.Int("cameras", 1000, "The number of fly cameras to drive.")
	seed := flag.Uint64("seed", 1, "Seed for the scripted input.")
	fixedStep := flag.Duration("step", 0, "Use a fixed frame delta instead of wall time.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	logLevel := flag.String("log-level", "info", "Log level.")
	flag.Parse()

	logger, err := logging.New(*logLevel, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	logger.Info("starting fly camera benchmark",
		zap.Int("cameras", *cameraCount),
		zap.Duration("duration", *duration))

	app := newBenchApp(logger, *cameraCount, *seed)

	report := &Report{
		Duration:       *duration,
		Cameras:        *cameraCount,
		Seed:           *seed,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()
	run(ctx, app, *fixedStep, report)

	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Collect(app)
	logger.Info("benchmark finished", zap.Int64("updates", report.TotalUpdates))

	fmt.Println("\n\n--- Fly Camera Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")
}

// newBenchApp builds a headless app with the controller, scripted input and
// count cameras scattered around the origin.
func newBenchApp(logger *zap.Logger, count int, seed uint64) *ecs.App {
	app := ecs.NewApp(ecs.WithLogger(logger))
	app.AddPlugins(flycam.NoCameraPlayerPlugin{})
	app.AddSystems(ecs.PreUpdate, NewScriptSystem(seed))
	app.AddStartupSystems(&SpawnCameras{Count: count, Seed: seed})
	return app
}

func run(ctx context.Context, app *ecs.App, fixedStep time.Duration, report *Report) {
	startTime := time.Now()
	lastFrameTime := startTime

	for {
		select {
		case <-ctx.Done():
			report.TotalTime = time.Since(startTime)
			report.UpdateTime.Finalize()
			return
		default:
			dt := time.Since(lastFrameTime)
			lastFrameTime = time.Now()
			if fixedStep > 0 {
				dt = fixedStep
			}

			updateStart := time.Now()
			app.Update(dt.Seconds())
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
			report.TotalUpdates++
		}
	}
}
