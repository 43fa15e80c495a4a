package htmldom

import (
	"github.com/npillmayer/taos/dom"
)

// visibilityState is what a visibility service last reported for an
// element.
type visibilityState uint8

const (
	unreported visibilityState = iota // observed, but nothing reported yet
	inside
	outside
)

// visibilityService computes intersection ratios of observed elements with
// the document's viewport. It implements dom.VisibilityService.
//
// Observing an element will cause an initial report of its state with the
// next delivery, no matter if it is inside or outside of the viewport.
// After that, only changes of state are reported. Elements removed from the
// document stay observed, but are not reported until they are attached
// again.
type visibilityService struct {
	doc       *Document
	threshold float64
	callback  func([]dom.Crossing)
	observed  []*Element // in order of observation
	state     map[*Element]visibilityState
}

// NewVisibilityService creates a visibility service for the document's
// viewport.
//
// Interface dom.VisibilityFactory
func (doc *Document) NewVisibilityService(threshold float64, callback func([]dom.Crossing)) dom.VisibilityService {
	vs := &visibilityService{
		doc:       doc,
		threshold: threshold,
		callback:  callback,
		state:     make(map[*Element]visibilityState),
	}
	doc.services = append(doc.services, vs)
	tracer().Debugf("new visibility service with threshold %g", threshold)
	return vs
}

// Observe starts tracking an element. Observing an element twice has no
// effect. Elements of other hosts are ignored.
func (vs *visibilityService) Observe(e dom.Element) {
	el, ok := e.(*Element)
	if !ok || el == nil || el.doc != vs.doc {
		tracer().Infof("visibility service cannot observe foreign element %v", e)
		return
	}
	if _, exists := vs.state[el]; exists {
		return
	}
	vs.observed = append(vs.observed, el)
	vs.state[el] = unreported
}

// Unobserve stops tracking an element. Pending reports for the element
// are dropped.
func (vs *visibilityService) Unobserve(e dom.Element) {
	el, ok := e.(*Element)
	if !ok {
		return
	}
	if _, exists := vs.state[el]; !exists {
		return
	}
	delete(vs.state, el)
	for i, o := range vs.observed {
		if o == el {
			vs.observed = append(vs.observed[:i], vs.observed[i+1:]...)
			break
		}
	}
}

// Len returns the number of observed elements.
func (vs *visibilityService) Len() int {
	return len(vs.observed)
}

// isIntersecting decides if an element counts as visible. Elements without
// a layout box are never visible.
func (vs *visibilityService) isIntersecting(el *Element) bool {
	if !el.hasBox || !el.Attached() {
		return false
	}
	ratio := el.box.IntersectionRatio(vs.doc.viewport)
	return ratio > 0 && ratio >= vs.threshold
}

// deliver computes pending crossings and hands them to the callback as one
// batch. Returns true if a batch has been delivered.
func (vs *visibilityService) deliver() bool {
	var batch []dom.Crossing
	for _, el := range vs.observed {
		if !el.Attached() {
			continue // keeps its last state; removed nodes are not reported
		}
		now := outside
		if vs.isIntersecting(el) {
			now = inside
		}
		if vs.state[el] == now {
			continue
		}
		vs.state[el] = now
		batch = append(batch, dom.Crossing{Element: el, IsIntersecting: now == inside})
	}
	if len(batch) == 0 {
		return false
	}
	tracer().Debugf("delivering %d visibility crossing(s)", len(batch))
	if vs.callback != nil {
		vs.callback(batch)
	}
	return true
}

var _ dom.VisibilityService = &visibilityService{}

// --- Viewport --------------------------------------------------------------

// Viewport returns the current viewport in page coordinates.
func (doc *Document) Viewport() Rect {
	return doc.viewport
}

// SetViewport sets the viewport. Crossings are reported with the next
// Flush.
func (doc *Document) SetViewport(r Rect) {
	doc.viewport = r
}

// ScrollTo moves the top edge of the viewport to y.
func (doc *Document) ScrollTo(y float64) {
	doc.viewport.Y = y
}

// ScrollBy moves the viewport vertically by dy.
func (doc *Document) ScrollBy(dy float64) {
	doc.viewport.Y += dy
}

// AutoLayout assigns layout boxes to all elements matching selector. Boxes
// span the width of the viewport and are stacked vertically in document
// order, each of the given height, separated by gap. It returns the page
// height, i.e. the bottom edge of the last box.
func (doc *Document) AutoLayout(selector string, height, gap float64) (float64, error) {
	elements, err := doc.QueryAll(selector)
	if err != nil {
		return 0, err
	}
	y := 0.0
	for i, e := range elements {
		if i > 0 {
			y += gap
		}
		e.(*Element).SetBox(R(0, y, doc.viewport.Width, height))
		y += height
	}
	return y, nil
}
