package lifecycle

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/taos/config"
	"github.com/npillmayer/taos/dom"
	"github.com/npillmayer/taos/dom/htmldom"
	"github.com/npillmayer/taos/dom/style"
	"github.com/npillmayer/taos/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingService records calls without ever reporting crossings.
type countingService struct {
	observed   map[dom.Element]int
	unobserved map[dom.Element]int
}

func newCountingService() *countingService {
	return &countingService{
		observed:   make(map[dom.Element]int),
		unobserved: make(map[dom.Element]int),
	}
}

func (cs *countingService) Observe(el dom.Element)   { cs.observed[el]++ }
func (cs *countingService) Unobserve(el dom.Element) { cs.unobserved[el]++ }

const page = `<html><body>
<div id="plain" data-taos></div>
<div id="slide" data-taos="slide-up"></div>
<div id="typo" data-taos="slid-up"></div>
<div id="custom" data-taos="custom" data-taos-once="false"></div>
<div id="nan" data-taos data-taos-delay="soon"></div>
<div id="other"></div>
</body></html>`

func setup(t *testing.T, g config.Global, reg *preset.Registry) (*Manager, *countingService, *htmldom.Document) {
	doc, err := htmldom.ParseString(page)
	require.NoError(t, err)
	cs := newCountingService()
	m := New(g, reg, doc)
	m.Attach(cs)
	return m, cs, doc
}

func TestDiscoveryIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "taos.lifecycle")
	defer teardown()
	//
	m, cs, doc := setup(t, config.Defaults(), nil)
	if n := m.DiscoverNewElements(); n != 5 {
		t.Errorf("expected 5 newly discovered elements, have %d", n)
	}
	for i := 0; i < 3; i++ {
		if n := m.DiscoverNewElements(); n != 0 {
			t.Errorf("expected re-discovery to find nothing new, found %d", n)
		}
	}
	assert.Equal(t, 5, m.Len())
	assert.Equal(t, 5, len(cs.observed))
	for el, n := range cs.observed {
		if n != 1 {
			t.Errorf("expected one registration for %v, have %d", el, n)
		}
	}
	assert.False(t, m.Discover(doc.MustQuery("#slide")))
	_, tracked := m.Lookup(doc.MustQuery("#other"))
	assert.False(t, tracked)
}

func TestDiscoveryOrder(t *testing.T) {
	m, _, _ := setup(t, config.Defaults(), nil)
	m.DiscoverNewElements()
	var ids []string
	m.Each(func(tr Tracked) {
		id, _ := tr.Element.Attribute("id")
		ids = append(ids, id)
	})
	assert.Equal(t, []string{"plain", "slide", "typo", "custom", "nan"}, ids)
}

func TestSlideUpScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "taos.lifecycle")
	defer teardown()
	//
	m, _, doc := setup(t, config.Defaults(), nil)
	el := doc.MustQuery("#slide")
	require.True(t, m.Discover(el))
	assert.Equal(t, "0", el.Style("opacity"))
	assert.Equal(t, "translateY(20px)", el.Style("transform"))
	assert.Equal(t, "all 1000ms cubic-bezier(0.25,0.1,0.25,1.0) 0ms", el.Style("transition"))
	tr, ok := m.Lookup(el)
	require.True(t, ok)
	assert.Equal(t, Unrevealed, tr.State)
	//
	m.OnVisibilityChange([]dom.Crossing{{Element: el, IsIntersecting: true}})
	assert.Equal(t, "1", el.Style("opacity"))
	assert.Equal(t, "translateY(0)", el.Style("transform"))
	tr, _ = m.Lookup(el)
	assert.Equal(t, Revealed, tr.State)
}

func TestOnceSemantics(t *testing.T) {
	m, cs, doc := setup(t, config.Defaults(), nil)
	el := doc.MustQuery("#slide")
	m.Discover(el)
	m.OnVisibilityChange([]dom.Crossing{{Element: el, IsIntersecting: true}})
	if cs.unobserved[el] != 1 {
		t.Errorf("expected element to be unobserved once after reveal, is %d", cs.unobserved[el])
	}
	assert.False(t, m.Observed(el))
	m.OnVisibilityChange([]dom.Crossing{{Element: el, IsIntersecting: false}})
	assert.Equal(t, "1", el.Style("opacity"), "once-only element must not revert")
	assert.Equal(t, "translateY(0)", el.Style("transform"))
	tr, _ := m.Lookup(el)
	assert.Equal(t, Revealed, tr.State)
	assert.Equal(t, 1, m.Len(), "entry stays in tracked set")
}

func TestRepeatSemantics(t *testing.T) {
	g := config.Defaults()
	g.Once = false
	m, cs, doc := setup(t, g, nil)
	el := doc.MustQuery("#slide")
	m.Discover(el)
	for i := 0; i < 4; i++ {
		m.OnVisibilityChange([]dom.Crossing{{Element: el, IsIntersecting: true}})
		if el.Style("opacity") != "1" || el.Style("transform") != "translateY(0)" {
			t.Fatalf("round %d: expected target styles, have %s", i, el.Styles())
		}
		m.OnVisibilityChange([]dom.Crossing{{Element: el, IsIntersecting: false}})
		if el.Style("opacity") != "0" || el.Style("transform") != "translateY(20px)" {
			t.Fatalf("round %d: expected initial styles, have %s", i, el.Styles())
		}
	}
	assert.Equal(t, 0, cs.unobserved[el])
	assert.True(t, m.Observed(el))
}

func TestOnceAttributeOverridesGlobal(t *testing.T) {
	m, cs, doc := setup(t, config.Defaults(), preset.New())
	require.NoError(t, m.presets.Register("custom",
		style.Decl("opacity", "0"),
		style.Decl("opacity", "1")))
	el := doc.MustQuery("#custom")
	m.Discover(el)
	m.OnVisibilityChange([]dom.Crossing{{Element: el, IsIntersecting: true}})
	m.OnVisibilityChange([]dom.Crossing{{Element: el, IsIntersecting: false}})
	assert.Equal(t, "0", el.Style("opacity"))
	assert.Equal(t, 0, cs.unobserved[el])
}

func TestUnknownPresetLeavesElementUnstyled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "taos.lifecycle")
	defer teardown()
	//
	m, cs, doc := setup(t, config.Defaults(), nil)
	el := doc.MustQuery("#typo")
	require.True(t, m.Discover(el))
	keys := el.Styles().Keys()
	assert.Equal(t, []string{"transition"}, keys)
	assert.Equal(t, 1, cs.observed[el])
	m.OnVisibilityChange([]dom.Crossing{{Element: el, IsIntersecting: true}})
	assert.Equal(t, []string{"transition"}, el.Styles().Keys())
	tr, _ := m.Lookup(el)
	assert.Equal(t, Revealed, tr.State)
}

func TestCustomAnimation(t *testing.T) {
	reg := preset.New()
	m, _, doc := setup(t, config.Defaults(), reg)
	err := reg.Register("custom",
		style.Decl("opacity", "0"),
		style.Decl("opacity", "1"))
	require.NoError(t, err)
	el := doc.MustQuery("#custom")
	m.Discover(el)
	assert.Equal(t, "0", el.Style("opacity"))
	m.OnVisibilityChange([]dom.Crossing{{Element: el, IsIntersecting: true}})
	assert.Equal(t, "1", el.Style("opacity"))
}

func TestPresetsAreLookedUpOnCrossing(t *testing.T) {
	reg := preset.New()
	m, _, doc := setup(t, config.Defaults(), reg)
	el := doc.MustQuery("#typo")
	m.Discover(el)
	err := reg.Register("slid-up",
		style.Decl("color", "blue"),
		style.Decl("color", "red"))
	require.NoError(t, err)
	m.OnVisibilityChange([]dom.Crossing{{Element: el, IsIntersecting: true}})
	assert.Equal(t, "red", el.Style("color"))
}

func TestNaNTimingPropagates(t *testing.T) {
	m, _, doc := setup(t, config.Defaults(), nil)
	el := doc.MustQuery("#nan")
	m.Discover(el)
	assert.Equal(t, "all 1000ms cubic-bezier(0.25,0.1,0.25,1.0) NaNms", el.Style("transition"))
	tr, _ := m.Lookup(el)
	assert.True(t, tr.Config.Delay.IsNaN())
}

func TestUntrackedCrossingsAreIgnored(t *testing.T) {
	m, _, doc := setup(t, config.Defaults(), nil)
	other := doc.MustQuery("#other")
	slide := doc.MustQuery("#slide")
	m.Discover(slide)
	m.OnVisibilityChange([]dom.Crossing{
		{Element: other, IsIntersecting: true},
		{Element: slide, IsIntersecting: true},
	})
	assert.Equal(t, 0, other.Styles().Len())
	assert.Equal(t, "1", slide.Style("opacity"))
	assert.Equal(t, 1, m.Len())
}

func TestBatchOrderForSingleElement(t *testing.T) {
	g := config.Defaults()
	g.Once = false
	m, _, doc := setup(t, g, nil)
	el := doc.MustQuery("#slide")
	m.Discover(el)
	m.OnVisibilityChange([]dom.Crossing{
		{Element: el, IsIntersecting: true},
		{Element: el, IsIntersecting: false},
	})
	tr, _ := m.Lookup(el)
	assert.Equal(t, Unrevealed, tr.State)
	assert.Equal(t, "0", el.Style("opacity"))
}

func TestWithHeadlessVisibility(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "taos.lifecycle")
	defer teardown()
	//
	doc, err := htmldom.ParseString(page)
	require.NoError(t, err)
	_, err = doc.AutoLayout("[data-taos]", 400, 400)
	require.NoError(t, err)
	m := New(config.Defaults(), nil, doc)
	vs := doc.NewVisibilityService(m.Global().Threshold, m.OnVisibilityChange)
	m.Attach(vs)
	m.DiscoverNewElements()
	doc.Flush()
	plain, slide := doc.MustQuery("#plain"), doc.MustQuery("#slide")
	assert.Equal(t, "1", plain.Style("opacity"), "first element is in view")
	assert.Equal(t, "0", slide.Style("opacity"), "second element is below the fold")
	assert.False(t, m.Observed(plain))
	doc.ScrollTo(800)
	doc.Flush()
	assert.Equal(t, "1", slide.Style("opacity"))
	doc.ScrollTo(0)
	doc.Flush()
	assert.Equal(t, "1", slide.Style("opacity"), "once-only element stays revealed")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unrevealed", Unrevealed.String())
	assert.Equal(t, "revealed", Revealed.String())
	assert.Equal(t, "State(7)", State(7).String())
}

func TestConfigIsFrozenAtDiscovery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "taos.lifecycle")
	defer teardown()
	//
	g := config.Defaults()
	g.Once = false
	m, _, doc := setup(t, g, nil)
	el := doc.MustQuery("#slide")
	require.True(t, m.Discover(el))
	before, _ := m.Lookup(el)
	el.SetAttribute(config.AttrAnimation, "zoom-in")
	el.SetAttribute(config.AttrDelay, "500")
	el.SetAttribute(config.AttrOnce, "true")
	assert.Equal(t, 4, m.DiscoverNewElements(), "changed element must not be discovered again")
	after, _ := m.Lookup(el)
	assert.Equal(t, before.Config, after.Config)
	assert.Equal(t, "slide-up", after.Config.Animation)
	delay, _ := after.Config.Delay.Int()
	assert.Equal(t, 0, delay)
	//
	m.OnVisibilityChange([]dom.Crossing{{Element: el, IsIntersecting: true}})
	assert.Equal(t, "translateY(0)", el.Style("transform"), "expected slide-up target styles")
	assert.True(t, m.Observed(el), "expected once=false from discovery time")
	m.OnVisibilityChange([]dom.Crossing{{Element: el, IsIntersecting: false}})
	assert.Equal(t, "translateY(20px)", el.Style("transform"), "expected slide-up initial styles")
}
