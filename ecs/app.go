package ecs

import (
	"reflect"

	"go.uber.org/zap"
)

// Plugin bundles components, resources and systems behind one registration call.
type Plugin interface {
	Build(app *App)
}

// App ties a registry, a storage and a scheduler together and is the surface
// plugins register against.
type App struct {
	registry  *ComponentRegistry
	storage   *Storage
	scheduler *Scheduler
	plugins   map[reflect.Type]bool
	logger    *zap.Logger
}

// AppOption configures an App.
type AppOption func(*App)

// WithLogger sets the logger used for registration diagnostics.
func WithLogger(logger *zap.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates an App with a fresh registry, storage and scheduler.
func NewApp(opts ...AppOption) *App {
	registry := NewComponentRegistry()
	storage := NewStorage(registry)
	a := &App{
		registry:  registry,
		storage:   storage,
		scheduler: NewScheduler(storage),
		plugins:   make(map[reflect.Type]bool),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) Registry() *ComponentRegistry { return a.registry }
func (a *App) Storage() *Storage            { return a.storage }
func (a *App) Scheduler() *Scheduler        { return a.scheduler }
func (a *App) Logger() *zap.Logger          { return a.logger }

// AddPlugins builds each plugin once. A plugin whose type was already added is skipped.
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		t := reflect.TypeOf(p)
		if a.plugins[t] {
			a.logger.Debug("plugin already added", zap.Stringer("plugin", t))
			continue
		}
		a.plugins[t] = true
		p.Build(a)
		a.logger.Debug("plugin added", zap.Stringer("plugin", t))
	}
	return a
}

// HasPlugin reports whether a plugin of p's type has been added.
func (a *App) HasPlugin(p Plugin) bool {
	return a.plugins[reflect.TypeOf(p)]
}

// AddSystems registers systems in stage, in order.
func (a *App) AddSystems(stage Stage, systems ...System) *App {
	for _, s := range systems {
		a.scheduler.RegisterIn(stage, s)
	}
	return a
}

// AddStartupSystems registers systems that run once before the first frame.
func (a *App) AddStartupSystems(systems ...System) *App {
	for _, s := range systems {
		a.scheduler.RegisterStartup(s)
	}
	return a
}

// Update runs one frame.
func (a *App) Update(dt float64) {
	a.scheduler.Once(dt)
}

// InitResource makes sure a T resource exists, seeding it from initial when
// it does not, and returns an accessor for it.
func InitResource[T any](a *App, initial ...T) *Singleton[T] {
	return NewSingleton(a.storage, initial...)
}

// InsertResource stores value as the T resource, replacing any existing one.
func InsertResource[T any](a *App, value T) *Singleton[T] {
	a.storage.AddSingleton(value)
	return NewSingleton[T](a.storage)
}

// AddEvent registers an Events[T] resource and rotates it at the start of every frame.
// Adding the same event type twice is a no-op.
func AddEvent[T any](a *App) *Events[T] {
	if existing := LookupSingleton[Events[T]](a.storage); existing != nil {
		return existing
	}
	events := NewSingleton[Events[T]](a.storage).Get()
	a.scheduler.RegisterIn(First, &eventUpdateSystem[T]{events: events})
	return events
}

// LookupSingleton returns the stored T resource, or nil without creating it.
func LookupSingleton[T any](storage *Storage) *T {
	var out *T
	if storage.ReadSingleton(&out) {
		return out
	}
	return nil
}
