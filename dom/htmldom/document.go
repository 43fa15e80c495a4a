package htmldom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/taos/dom"
	"golang.org/x/net/html"
)

// ErrInvalidSelector is returned by QueryAll for selectors which cannot be
// compiled.
var ErrInvalidSelector = errors.New("invalid CSS selector")

// ErrNotAttached is returned for mutations relative to an element which is
// not part of the document tree.
var ErrNotAttached = errors.New("element not attached to document")

// maxFlushRounds limits the number of rounds of the event loop in Flush.
// Callbacks which trigger each other forever will be cut off.
const maxFlushRounds = 64

// DefaultViewport is the viewport of a new document.
var DefaultViewport = R(0, 0, 1024, 768)

// Document is a headless host document. It implements dom.Host and
// dom.MutationService.
type Document struct {
	root      *html.Node
	elements  map[*html.Node]*Element     // wrappers, one per node
	selectors map[string]cascadia.Selector // compiled selectors
	viewport  Rect
	services  []*visibilityService
	observers []func() // mutation subscribers
	mutated   bool     // mutations pending notification
}

// Parse reads an HTML document and wraps it into a Document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("htmldom: %w", err)
	}
	return NewDocument(root), nil
}

// ParseString is a convenience variant of Parse.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// NewDocument wraps an HTML parse tree. The document takes ownership of
// the tree.
func NewDocument(root *html.Node) *Document {
	return &Document{
		root:      root,
		elements:  make(map[*html.Node]*Element),
		selectors: make(map[string]cascadia.Selector),
		viewport:  DefaultViewport,
	}
}

// Root returns the root node of the HTML parse tree.
func (doc *Document) Root() *html.Node {
	return doc.root
}

// Element returns the element for an HTML element node. Every node is
// wrapped at most once, so handles are stable. Returns nil for nodes
// which are not element nodes.
func (doc *Document) Element(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	if el, ok := doc.elements[n]; ok {
		return el
	}
	el := newElement(doc, n)
	doc.elements[n] = el
	return el
}

// QueryAll returns all elements matching a CSS selector, in document order.
//
// Interface dom.Document
func (doc *Document) QueryAll(selector string) ([]dom.Element, error) {
	sel, err := doc.compile(selector)
	if err != nil {
		return nil, err
	}
	nodes := sel.MatchAll(doc.root)
	elements := make([]dom.Element, 0, len(nodes))
	for _, n := range nodes {
		if el := doc.Element(n); el != nil {
			elements = append(elements, el)
		}
	}
	return elements, nil
}

// Query returns the first element matching a CSS selector, or nil.
func (doc *Document) Query(selector string) (*Element, error) {
	sel, err := doc.compile(selector)
	if err != nil {
		return nil, err
	}
	return doc.Element(sel.MatchFirst(doc.root)), nil
}

// MustQuery is like Query, but panics on invalid selectors or if nothing
// matches. It is intended for tests.
func (doc *Document) MustQuery(selector string) *Element {
	el, err := doc.Query(selector)
	if err != nil {
		panic(err)
	}
	if el == nil {
		panic(fmt.Sprintf("htmldom: no element matches %q", selector))
	}
	return el
}

func (doc *Document) compile(selector string) (cascadia.Selector, error) {
	if sel, ok := doc.selectors[selector]; ok {
		return sel, nil
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSelector, selector, err)
	}
	doc.selectors[selector] = sel
	return sel, nil
}

// Render writes the document as HTML, including all inline styles set so
// far.
func (doc *Document) Render(w io.Writer) error {
	return html.Render(w, doc.root)
}

// attached is a predicate: is n part of the document tree?
func (doc *Document) attached(n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == doc.root {
			return true
		}
	}
	return false
}

// --- Mutations -------------------------------------------------------------

// ObserveSubtree subscribes to mutations anywhere in the document.
// Subscribers are called once per batch of mutations, from within Flush.
//
// Interface dom.MutationService
func (doc *Document) ObserveSubtree(callback func()) {
	if callback == nil {
		return
	}
	doc.observers = append(doc.observers, callback)
}

// AppendHTML parses an HTML fragment in the context of parent and appends
// the resulting nodes as children of parent.
func (doc *Document) AppendHTML(parent *Element, fragment string) error {
	if parent == nil || !doc.attached(parent.node) {
		return ErrNotAttached
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), parent.node)
	if err != nil {
		return fmt.Errorf("htmldom: %w", err)
	}
	for _, n := range nodes {
		parent.node.AppendChild(n)
	}
	doc.touch()
	return nil
}

// AppendChild appends a detached node as the last child of parent.
func (doc *Document) AppendChild(parent *Element, n *html.Node) error {
	if parent == nil || !doc.attached(parent.node) {
		return ErrNotAttached
	}
	parent.node.AppendChild(n)
	doc.touch()
	return nil
}

// Remove detaches an element from the document. Its handle stays valid,
// but it will no longer be matched by queries and it is never visible.
func (doc *Document) Remove(el *Element) error {
	if el == nil || el.node.Parent == nil || !doc.attached(el.node) {
		return ErrNotAttached
	}
	el.node.Parent.RemoveChild(el.node)
	doc.touch()
	return nil
}

func (doc *Document) touch() {
	doc.mutated = true
}

// --- Event loop ------------------------------------------------------------

// Flush delivers pending notifications: first a mutation notification to
// all subscribers (if the tree has changed), then a batch of visibility
// crossings per visibility service. This is repeated until no more
// notifications are pending, as callbacks may cause further work.
// Flush returns the number of batches delivered.
func (doc *Document) Flush() int {
	batches := 0
	for round := 0; round < maxFlushRounds; round++ {
		delivered := false
		if doc.mutated {
			doc.mutated = false
			tracer().Debugf("delivering mutation notification to %d subscriber(s)", len(doc.observers))
			for _, cb := range doc.observers {
				cb()
			}
			if len(doc.observers) > 0 {
				batches++
				delivered = true
			}
		}
		for _, vs := range doc.services {
			if vs.deliver() {
				batches++
				delivered = true
			}
		}
		if !delivered && !doc.mutated {
			return batches
		}
	}
	tracer().Errorf("event loop did not settle after %d rounds", maxFlushRounds)
	return batches
}

var _ dom.Host = &Document{}
var _ dom.MutationService = &Document{}
