package preset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/npillmayer/taos/dom/style"
	"github.com/npillmayer/taos/maybe"
)

// ErrEmptyPreset is returned if a preset is registered without initial or
// without target styles.
var ErrEmptyPreset = errors.New("preset needs initial and target styles")

// ErrUnnamedPreset is returned if a preset is registered with an empty name.
var ErrUnnamedPreset = errors.New("preset needs a name")

// Preset is a named reveal animation.
type Preset struct {
	Name    string
	Initial style.Declarations // applied before reveal
	Target  style.Declarations // applied on reveal
}

func (p Preset) String() string {
	return fmt.Sprintf("%s { %s } => { %s }", p.Name, p.Initial, p.Target)
}

// Registry maps animation names to presets.
//
// A registry is not safe for concurrent use. The engine mutates it from
// its single event-processing thread only.
type Registry struct {
	presets map[string]Preset
}

// New creates a registry seeded with the built-in presets.
func New() *Registry {
	reg := Empty()
	for _, p := range builtins {
		reg.presets[p.Name] = Preset{
			Name:    p.Name,
			Initial: p.Initial.Clone(),
			Target:  p.Target.Clone(),
		}
	}
	return reg
}

// Empty creates a registry without any presets.
func Empty() *Registry {
	return &Registry{presets: make(map[string]Preset)}
}

// Register inserts a preset under name, overwriting an existing one.
// Built-in presets may be overwritten as well; last write wins.
// Elements styled before the call keep the styles they have been given.
//
// The declarations are copied, clients may re-use them after the call.
func (reg *Registry) Register(name string, initial, target style.Declarations) error {
	if name == "" {
		return ErrUnnamedPreset
	}
	if initial.Len() == 0 || target.Len() == 0 {
		return fmt.Errorf("preset %q: %w", name, ErrEmptyPreset)
	}
	if _, exists := reg.presets[name]; exists {
		tracer().P("preset", name).Debugf("overwriting preset")
	}
	reg.presets[name] = Preset{
		Name:    name,
		Initial: initial.Clone(),
		Target:  target.Clone(),
	}
	return nil
}

// Lookup finds a preset by name. Callers should treat Nothing as a silent
// no-op, as animation names come from page markup and may contain typos.
func (reg *Registry) Lookup(name string) maybe.Maybe[Preset] {
	p, ok := reg.presets[name]
	return maybe.FromOK(p, ok)
}

// Len returns the number of registered presets.
func (reg *Registry) Len() int {
	return len(reg.presets)
}

// Names returns the names of all registered presets, sorted.
func (reg *Registry) Names() []string {
	names := make([]string, 0, len(reg.presets))
	for name := range reg.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
