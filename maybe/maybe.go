/*
Package maybe implements an option type.

A Maybe either holds a value (Just) or nothing (Nothing). Lookups which
may legitimately fail, without this being an error condition, return a
Maybe, and clients decide how to treat the absent case: provide a
default, skip an action, or chain another lookup.

    p := registry.Lookup("slide-up")
    var preset Preset
    switch m := p.Match(); m {
    case m.Just(&preset):
        apply(preset)
    case m.Nothing():
        // silently skip
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an option type for values of type T.
type Maybe[T any] interface {
	Match() Matcher[T]      // pattern match on Just/Nothing
	WithDefault(T) T        // the value, or a default for Nothing
	Map(func(T) T) Maybe[T] // apply a function to a value, if present
	Get() (T, bool)         // comma-ok access to the value
	IsJust() bool           // does this option hold a value?
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing creates an empty option.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// FromOK creates an option from Go's comma-ok idiom, e.g. for a map lookup:
//
//    v, ok := m[key]
//    return FromOK(v, ok)
//
func FromOK[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

// Match returns a matcher bound to a pointer, as values of type T need not
// be comparable.
func (m maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

// Map applies f to the value of x, if present. The result type may differ
// from the input type, which is not possible for method Map.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used to pattern-match an option in a switch statement.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
