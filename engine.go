package taos

import (
	"github.com/npillmayer/taos/config"
	"github.com/npillmayer/taos/dom"
	"github.com/npillmayer/taos/dom/style"
	"github.com/npillmayer/taos/lifecycle"
	"github.com/npillmayer/taos/preset"
)

// Engine reveals the elements of a host document.
type Engine struct {
	host        dom.Host
	global      config.Global
	presets     *preset.Registry
	manager     *lifecycle.Manager
	animations  []config.Overrides // carrying animations, in option order
	initialized bool
}

// Option configures an engine at construction time.
type Option func(*Engine)

// WithConfig applies configuration overrides to the defaults. Options are
// applied in order, so later overrides win. Animations of o are added to
// the engine's registry, as with AddAnimationMap.
func WithConfig(o config.Overrides) Option {
	return func(e *Engine) {
		e.global = e.global.Merge(o)
		if len(o.Animations) > 0 {
			e.animations = append(e.animations, o)
		}
	}
}

// WithRegistry sets the preset registry. The default is a registry seeded
// with the built-in presets.
func WithRegistry(reg *preset.Registry) Option {
	return func(e *Engine) {
		if reg != nil {
			e.presets = reg
		}
	}
}

// New creates an engine for a host. The configuration is frozen after
// New returns. Nothing is discovered or styled before Init is called.
func New(host dom.Host, opts ...Option) *Engine {
	e := &Engine{
		host:   host,
		global: config.Defaults(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.presets == nil {
		e.presets = preset.New()
	}
	for _, o := range e.animations {
		for _, name := range o.AnimationNames() {
			a := o.Animations[name]
			e.AddAnimationMap(name, a.Initial, a.Target)
		}
	}
	if err := e.global.Validate(); err != nil {
		tracer().Errorf("%v", err)
	}
	e.manager = lifecycle.New(e.global, e.presets, host)
	tracer().Debugf("new engine, config = %v", e.global)
	return e
}

// Init starts the engine: it creates a visibility service at the configured
// threshold, discovers all elements matching the selector and subscribes
// to tree mutations, if the host supports them. Without mutation support,
// elements added later will not be discovered.
//
// Calling Init more than once has no effect.
func (e *Engine) Init() *Engine {
	if e.initialized {
		tracer().Debugf("engine already initialized")
		return e
	}
	e.initialized = true
	vs := e.host.NewVisibilityService(e.global.Threshold, e.manager.OnVisibilityChange)
	e.manager.Attach(vs)
	n := e.manager.DiscoverNewElements()
	tracer().Infof("initialized, tracking %d element(s)", n)
	if ms, ok := dom.MutationSource(e.host); ok {
		ms.ObserveSubtree(func() {
			e.manager.DiscoverNewElements()
		})
	} else {
		tracer().Infof("host does not report mutations, elements added later will not be revealed")
	}
	return e
}

// OnReady defers Init until ready is closed (or receives a value). The
// returned channel is closed after Init has run.
//
// Init runs on a separate goroutine. Clients must not drive the host
// before the returned channel is closed.
func (e *Engine) OnReady(ready <-chan struct{}) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ready
		e.Init()
	}()
	return done
}

// AddAnimation registers a preset with the engine's registry, overwriting
// presets of the same name. Elements styled before the call are not
// affected. Invalid presets are traced and ignored.
func (e *Engine) AddAnimation(name string, initial, target style.Declarations) *Engine {
	if err := e.presets.Register(name, initial, target); err != nil {
		tracer().Errorf("cannot add animation: %v", err)
	}
	return e
}

// AddAnimationMap is like AddAnimation, for styles in map form. Properties
// are applied in alphabetical order.
func (e *Engine) AddAnimationMap(name string, initial, target map[string]string) *Engine {
	return e.AddAnimation(name, style.FromMap(initial), style.FromMap(target))
}

// Config returns the engine's global configuration.
func (e *Engine) Config() config.Global {
	return e.global
}

// Presets returns the engine's preset registry.
func (e *Engine) Presets() *preset.Registry {
	return e.presets
}

// Manager returns the lifecycle manager, for inspection.
func (e *Engine) Manager() *lifecycle.Manager {
	return e.manager
}

// Tracked returns the number of tracked elements.
func (e *Engine) Tracked() int {
	return e.manager.Len()
}

// Initialized is a predicate: has Init been called?
func (e *Engine) Initialized() bool {
	return e.initialized
}
