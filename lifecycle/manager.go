package lifecycle

import (
	"fmt"

	"github.com/npillmayer/taos/config"
	"github.com/npillmayer/taos/dom"
	"github.com/npillmayer/taos/dom/style"
	"github.com/npillmayer/taos/maybe"
	"github.com/npillmayer/taos/preset"
)

// State is the reveal state of a tracked element.
type State uint8

// Tracked elements start out Unrevealed.
const (
	Unrevealed State = iota
	Revealed
)

func (s State) String() string {
	switch s {
	case Unrevealed:
		return "unrevealed"
	case Revealed:
		return "revealed"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Tracked is the record the manager keeps per discovered element.
type Tracked struct {
	Element dom.Element
	Config  config.Element // frozen at discovery
	State   State
}

func (t Tracked) String() string {
	return fmt.Sprintf("%v %s %v", t.Element, t.State, t.Config)
}

type entry struct {
	Tracked
	observed bool // registered with the visibility service
}

// Manager owns the set of tracked elements.
type Manager struct {
	global  config.Global
	presets *preset.Registry
	doc     dom.Document
	vs      dom.VisibilityService
	tracked map[dom.Element]*entry
	order   []dom.Element // in order of discovery
}

// New creates a lifecycle manager. Presets are looked up in reg whenever
// styles are written, so presets registered later will apply to elements
// discovered or crossing later.
//
// Elements will not be observed before a visibility service is attached,
// see Attach.
func New(g config.Global, reg *preset.Registry, doc dom.Document) *Manager {
	if reg == nil {
		reg = preset.New()
	}
	return &Manager{
		global:  g,
		presets: reg,
		doc:     doc,
		tracked: make(map[dom.Element]*entry),
	}
}

// Attach sets the visibility service. The service's notifications are
// expected to be routed to OnVisibilityChange.
func (m *Manager) Attach(vs dom.VisibilityService) {
	m.vs = vs
}

// Global returns the global configuration the manager resolves elements
// against.
func (m *Manager) Global() config.Global {
	return m.global
}

// Discover starts tracking an element. Discovering an element which is
// already tracked is a no-op. Returns true if the element is newly tracked.
func (m *Manager) Discover(el dom.Element) bool {
	if el == nil {
		return false
	}
	if _, exists := m.tracked[el]; exists {
		return false
	}
	cfg := config.Resolve(m.global, el)
	if cfg.Delay.IsNaN() || cfg.Duration.IsNaN() {
		tracer().P("element", el).Infof("timing attribute is not a number, transition will be invalid")
	}
	if !m.applyPreset(el, cfg.Animation, initialStyles) {
		tracer().P("element", el).Infof("no preset for animation %q", cfg.Animation)
	}
	el.SetStyle("transition", cfg.Transition())
	e := &entry{Tracked: Tracked{Element: el, Config: cfg, State: Unrevealed}}
	if m.vs != nil {
		m.vs.Observe(el)
		e.observed = true
	} else {
		tracer().P("element", el).Errorf("no visibility service attached, element will not be revealed")
	}
	m.tracked[el] = e
	m.order = append(m.order, el)
	tracer().P("element", el).Debugf("discovered, config = %v", cfg)
	return true
}

// DiscoverNewElements queries the document for all elements matching the
// global selector and discovers each of them. It is safe to call this
// arbitrarily often. Returns the number of newly tracked elements.
func (m *Manager) DiscoverNewElements() int {
	if m.doc == nil {
		return 0
	}
	elements, err := m.doc.QueryAll(m.global.Selector)
	if err != nil {
		tracer().Errorf("cannot query elements: %v", err)
		return 0
	}
	n := 0
	for _, el := range elements {
		if m.Discover(el) {
			n++
		}
	}
	if n > 0 {
		tracer().Debugf("discovered %d new element(s), tracking %d", n, len(m.order))
	}
	return n
}

// OnVisibilityChange processes a batch of visibility crossings, in the
// order delivered. Crossings for untracked elements are ignored.
func (m *Manager) OnVisibilityChange(batch []dom.Crossing) {
	for _, c := range batch {
		e, ok := m.tracked[c.Element]
		if !ok {
			tracer().Debugf("ignoring crossing of untracked element %v", c.Element)
			continue
		}
		if c.IsIntersecting {
			m.reveal(e)
		} else {
			m.unreveal(e)
		}
	}
}

func (m *Manager) reveal(e *entry) {
	m.applyPreset(e.Element, e.Config.Animation, targetStyles)
	e.State = Revealed
	if e.Config.Once && e.observed {
		if m.vs != nil {
			m.vs.Unobserve(e.Element)
		}
		e.observed = false
	}
	tracer().P("element", e.Element).Debugf("revealed")
}

func (m *Manager) unreveal(e *entry) {
	if e.Config.Once {
		return
	}
	m.applyPreset(e.Element, e.Config.Animation, initialStyles)
	e.State = Unrevealed
	tracer().P("element", e.Element).Debugf("unrevealed")
}

func initialStyles(p preset.Preset) style.Declarations { return p.Initial }
func targetStyles(p preset.Preset) style.Declarations  { return p.Target }

// applyPreset writes one side of a preset onto an element, in declaration
// order. Returns false if there is no preset for the animation name.
func (m *Manager) applyPreset(el dom.Element, name string, side func(preset.Preset) style.Declarations) bool {
	var d style.Declarations
	switch match := maybe.Map(side, m.presets.Lookup(name)).Match(); match {
	case match.Just(&d):
		for _, kv := range d {
			el.SetStyle(kv.Key, kv.Value.String())
		}
		return true
	case match.Nothing():
	}
	return false
}

// --- Queries ---------------------------------------------------------------

// Len returns the number of tracked elements.
func (m *Manager) Len() int {
	return len(m.order)
}

// Lookup returns the record of a tracked element.
func (m *Manager) Lookup(el dom.Element) (Tracked, bool) {
	if e, ok := m.tracked[el]; ok {
		return e.Tracked, true
	}
	return Tracked{}, false
}

// Observed is a predicate: is the element currently registered with the
// visibility service?
func (m *Manager) Observed(el dom.Element) bool {
	if e, ok := m.tracked[el]; ok {
		return e.observed
	}
	return false
}

// Each calls f for every tracked element, in order of discovery.
func (m *Manager) Each(f func(Tracked)) {
	for _, el := range m.order {
		f(m.tracked[el].Tracked)
	}
}
