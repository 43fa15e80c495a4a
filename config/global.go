package config

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/npillmayer/schuko"
	"gopkg.in/yaml.v3"
)

// Default values for the global configuration.
const (
	DefaultSelector  = "[data-taos]"
	DefaultOnce      = true
	DefaultThreshold = 0.2
	DefaultDelay     = 0
	DefaultDuration  = 1000
	DefaultEasing    = "cubic-bezier(0.25,0.1,0.25,1.0)"
)

// ErrInvalidConfig is wrapped by errors returned from Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Global is the engine-wide configuration. It is immutable after
// construction.
type Global struct {
	Selector  string  // CSS selector for animated elements
	Once      bool    // animate only once, or on every visibility crossing
	Threshold float64 // visible fraction of an element to trigger, 0…1
	Delay     int     // ms
	Duration  int     // ms
	Easing    string  // timing function, passed through verbatim
}

// Defaults returns the built-in default configuration.
func Defaults() Global {
	return Global{
		Selector:  DefaultSelector,
		Once:      DefaultOnce,
		Threshold: DefaultThreshold,
		Delay:     DefaultDelay,
		Duration:  DefaultDuration,
		Easing:    DefaultEasing,
	}
}

// Overrides holds user-supplied configuration values. Nil fields are
// not set and will not override anything.
//
// Animations are custom presets to register with the engine. They do not
// take part in Merge.
type Overrides struct {
	Selector   *string              `yaml:"selector"`
	Once       *bool                `yaml:"once"`
	Threshold  *float64             `yaml:"threshold"`
	Delay      *int                 `yaml:"delay"`
	Duration   *int                 `yaml:"duration"`
	Easing     *string              `yaml:"easing"`
	Animations map[string]Animation `yaml:"animations"`
}

// Animation is a preset in map form, property to value, for the initial
// and the target side. Maps carry no order, so properties are applied in
// alphabetical order.
type Animation struct {
	Initial map[string]string `yaml:"initial"`
	Target  map[string]string `yaml:"target"`
}

// AnimationNames returns the names of o's animations, sorted.
func (o Overrides) AnimationNames() []string {
	names := make([]string, 0, len(o.Animations))
	for name := range o.Animations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a copy of g with all overrides applied which are set in o.
func (g Global) Merge(o Overrides) Global {
	if o.Selector != nil {
		g.Selector = *o.Selector
	}
	if o.Once != nil {
		g.Once = *o.Once
	}
	if o.Threshold != nil {
		g.Threshold = *o.Threshold
	}
	if o.Delay != nil {
		g.Delay = *o.Delay
	}
	if o.Duration != nil {
		g.Duration = *o.Duration
	}
	if o.Easing != nil {
		g.Easing = *o.Easing
	}
	return g
}

// Validate checks the configuration for values the engine cannot
// sensibly work with. The engine itself does not reject such a
// configuration, it just traces the problem.
func (g Global) Validate() error {
	switch {
	case g.Selector == "":
		return fmt.Errorf("%w: empty selector", ErrInvalidConfig)
	case g.Threshold < 0 || g.Threshold > 1:
		return fmt.Errorf("%w: threshold %g not in [0,1]", ErrInvalidConfig, g.Threshold)
	case g.Delay < 0:
		return fmt.Errorf("%w: negative delay %d", ErrInvalidConfig, g.Delay)
	case g.Duration < 0:
		return fmt.Errorf("%w: negative duration %d", ErrInvalidConfig, g.Duration)
	}
	return nil
}

func (g Global) String() string {
	return fmt.Sprintf("{selector=%q once=%v threshold=%g delay=%d duration=%d easing=%q}",
		g.Selector, g.Once, g.Threshold, g.Delay, g.Duration, g.Easing)
}

// --- Sources of overrides --------------------------------------------------

// Load reads overrides from YAML:
//
//    selector: ".reveal"
//    once: false
//    threshold: 0.5
//    animations:
//      pop:
//        initial: { opacity: "0", transform: "scale(0.5)" }
//        target:  { opacity: "1", transform: "scale(1)" }
//
// Unknown keys are rejected. An empty document yields no overrides.
func Load(r io.Reader) (Overrides, error) {
	var o Overrides
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return Overrides{}, fmt.Errorf("config: %w", err)
	}
	return o, nil
}

// Configuration keys, relative to a prefix given to FromConfiguration.
const (
	KeySelector  = "selector"
	KeyOnce      = "once"
	KeyThreshold = "threshold"
	KeyDelay     = "delay"
	KeyDuration  = "duration"
	KeyEasing    = "easing"
)

// FromConfiguration reads overrides from an application configuration.
// Keys are looked up as "<prefix>.<key>", e.g. "taos.threshold"; only keys
// which are set in conf will override defaults. A threshold value which
// cannot be parsed as a number is traced and ignored.
func FromConfiguration(conf schuko.Configuration, prefix string) Overrides {
	key := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	var o Overrides
	if k := key(KeySelector); conf.IsSet(k) {
		s := conf.GetString(k)
		o.Selector = &s
	}
	if k := key(KeyOnce); conf.IsSet(k) {
		b := conf.GetBool(k)
		o.Once = &b
	}
	if k := key(KeyThreshold); conf.IsSet(k) {
		if f, err := strconv.ParseFloat(conf.GetString(k), 64); err == nil {
			o.Threshold = &f
		} else {
			tracer().P("key", k).Infof("ignoring threshold: %v", err)
		}
	}
	if k := key(KeyDelay); conf.IsSet(k) {
		n := conf.GetInt(k)
		o.Delay = &n
	}
	if k := key(KeyDuration); conf.IsSet(k) {
		n := conf.GetInt(k)
		o.Duration = &n
	}
	if k := key(KeyEasing); conf.IsSet(k) {
		s := conf.GetString(k)
		o.Easing = &s
	}
	return o
}
