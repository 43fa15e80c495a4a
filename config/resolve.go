package config

import (
	"fmt"

	"github.com/npillmayer/taos/css"
)

// Attribute names of the per-element markup protocol.
const (
	AttrAnimation = "data-taos"
	AttrDelay     = "data-taos-delay"
	AttrDuration  = "data-taos-duration"
	AttrEasing    = "data-taos-easing"
	AttrOnce      = "data-taos-once"
)

// DefaultAnimation is the animation of elements which do not name one.
const DefaultAnimation = "fade"

// Attributes gives read access to the attributes of an element.
type Attributes interface {
	Attribute(name string) (string, bool)
}

// Element is the effective configuration of a single element.
type Element struct {
	Animation string
	Delay     css.MillisT
	Duration  css.MillisT
	Easing    string
	Once      bool
}

// Transition returns the CSS transition shorthand for the element's timing.
func (e Element) Transition() string {
	return css.Transition(e.Duration, e.Easing, e.Delay)
}

func (e Element) String() string {
	return fmt.Sprintf("{animation=%s delay=%s duration=%s easing=%s once=%v}",
		e.Animation, e.Delay, e.Duration, e.Easing, e.Once)
}

// Resolve computes the effective configuration of an element from the
// global configuration and the element's attributes. Every field resolves
// independently:
//
// - animation, easing: the attribute value, or the default.
//
// - delay, duration: the attribute value coerced to an integer, or the
// global value. A value which cannot be coerced yields NaN, it does not
// fall back to the global value.
//
// - once: if the attribute is present, true unless its value is exactly
// "false"; else the global value.
//
// Empty attribute values count as absent, except for the once-flag, where
// presence alone matters ("data-taos-once" without a value means true).
//
// Resolve is a pure function.
func Resolve(g Global, attrs Attributes) Element {
	e := Element{
		Animation: DefaultAnimation,
		Delay:     css.JustMillis(g.Delay),
		Duration:  css.JustMillis(g.Duration),
		Easing:    g.Easing,
		Once:      g.Once,
	}
	if v, ok := nonEmpty(attrs, AttrAnimation); ok {
		e.Animation = v
	}
	if v, ok := nonEmpty(attrs, AttrDelay); ok {
		e.Delay = css.ParseMillis(v)
	}
	if v, ok := nonEmpty(attrs, AttrDuration); ok {
		e.Duration = css.ParseMillis(v)
	}
	if v, ok := nonEmpty(attrs, AttrEasing); ok {
		e.Easing = v
	}
	if v, ok := attrs.Attribute(AttrOnce); ok {
		e.Once = v != "false"
	}
	return e
}

func nonEmpty(attrs Attributes, name string) (string, bool) {
	v, ok := attrs.Attribute(name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// AttributeMap is a simple implementation of Attributes.
type AttributeMap map[string]string

// Attribute is part of interface Attributes.
func (m AttributeMap) Attribute(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

var _ Attributes = AttributeMap{}
