package htmldom

import (
	"strings"

	"github.com/npillmayer/taos/dom"
	"github.com/npillmayer/taos/dom/style"
	"golang.org/x/net/html"
)

// Element is a styled element node. It implements dom.Element.
type Element struct {
	doc    *Document
	node   *html.Node         // the underlying HTML node
	styles style.Declarations // inline styles, mirrored to attribute "style"
	box    Rect               // layout box, in page coordinates
	hasBox bool
}

func newElement(doc *Document, n *html.Node) *Element {
	el := &Element{doc: doc, node: n}
	if s, ok := attr(n, "style"); ok {
		styles, err := style.ParseDeclarations(s)
		if err != nil {
			tracer().P("element", el).Infof("ignoring unparsable inline style: %v", err)
		}
		el.styles = styles
	}
	return el
}

// HTMLNode returns the HTML node corresponding to this element.
func (el *Element) HTMLNode() *html.Node {
	return el.node
}

// Tag returns the element's tag name, e.g. "div".
func (el *Element) Tag() string {
	return el.node.Data
}

// Attribute returns the value of an attribute, if present.
//
// Interface dom.Element
func (el *Element) Attribute(name string) (string, bool) {
	return attr(el.node, name)
}

// SetAttribute sets an attribute value. Changing attribute "style" replaces
// all inline styles.
func (el *Element) SetAttribute(name, value string) {
	if name == "style" {
		styles, err := style.ParseDeclarations(value)
		if err != nil {
			tracer().P("element", el).Infof("ignoring unparsable inline style: %v", err)
			return
		}
		el.styles = styles
	}
	setAttr(el.node, name, value)
}

// SetStyle sets an inline style property.
//
// Interface dom.Element
func (el *Element) SetStyle(property, value string) {
	el.styles = el.styles.Set(property, style.Property(value))
	setAttr(el.node, "style", el.styles.String())
}

// Style returns the value of an inline style property, or the empty string.
func (el *Element) Style(property string) string {
	p, _ := el.styles.Get(property)
	return p.String()
}

// Styles returns a copy of the element's inline styles.
func (el *Element) Styles() style.Declarations {
	return el.styles.Clone()
}

// SetBox assigns a layout box to the element.
func (el *Element) SetBox(r Rect) {
	el.box = r
	el.hasBox = true
}

// Box returns the element's layout box, if one has been assigned.
func (el *Element) Box() (Rect, bool) {
	return el.box, el.hasBox
}

// Attached is a predicate: is the element part of its document?
func (el *Element) Attached() bool {
	return el.doc.attached(el.node)
}

// String returns a short description of the element, e.g.
//
//    <div data-taos="slide-up">
//
func (el *Element) String() string {
	if el == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString("<" + el.node.Data)
	for _, a := range el.node.Attr {
		if a.Key == "style" {
			continue
		}
		b.WriteString(" " + a.Key)
		if a.Val != "" {
			b.WriteString(`="` + a.Val + `"`)
		}
	}
	b.WriteString(">")
	return b.String()
}

var _ dom.Element = &Element{}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, value string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}
