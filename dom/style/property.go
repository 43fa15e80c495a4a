package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'taos.style'
func tracer() tracing.Trace {
	return tracing.Select("taos.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     transform: translateY(20px)
//
// a property value of "translateY(20px)" is set. Values are handed to the
// rendering engine verbatim, therefore they are never case-folded or
// normalized in any way.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property. Important is set for
// properties carrying an "!important" marker in the source.
type KeyValue struct {
	Key       string
	Value     Property
	Important bool
}

func (kv KeyValue) String() string {
	if kv.Important {
		return kv.Key + ": " + kv.Value.String() + " !important"
	}
	return kv.Key + ": " + kv.Value.String()
}

// --- Declarations ----------------------------------------------------------

// Declarations is an ordered list of style properties, as found in an
// inline style attribute or in the body of a CSS rule. Every key occurs at
// most once. Order of insertion is preserved, as style writes are applied
// to elements in this order.
//
// The zero value is an empty list, ready to use.
type Declarations []KeyValue

// Decl is a shortcut to create declarations from alternating keys and values:
//
//    Decl("opacity", "0", "transform", "scale(0.95)")
//
// A dangling key without a value is ignored.
func Decl(kv ...string) Declarations {
	d := make(Declarations, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		d = d.Set(kv[i], Property(kv[i+1]))
	}
	return d
}

// Len returns the number of properties.
func (d Declarations) Len() int {
	return len(d)
}

// Get a property's value.
func (d Declarations) Get(key string) (Property, bool) {
	for _, kv := range d {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return NullStyle, false
}

// Set a property's value. Overwrites an existing value in place, if present,
// otherwise appends the property. Returns the (possibly re-allocated) list.
// An "!important" marker of an overwritten property is cleared, as with
// CSSStyleDeclaration.setProperty without a priority.
func (d Declarations) Set(key string, p Property) Declarations {
	return d.SetKeyValue(KeyValue{Key: key, Value: p})
}

// SetKeyValue is like Set, but carries the "!important" marker of kv.
func (d Declarations) SetKeyValue(kv KeyValue) Declarations {
	kv.Key = strings.TrimSpace(kv.Key)
	for i := range d {
		if d[i].Key == kv.Key {
			d[i] = kv
			return d
		}
	}
	return append(d, kv)
}

// Remove deletes a property, if present.
func (d Declarations) Remove(key string) Declarations {
	for i := range d {
		if d[i].Key == key {
			return append(d[:i:i], d[i+1:]...)
		}
	}
	return d
}

// Keys returns the property keys in order.
func (d Declarations) Keys() []string {
	keys := make([]string, len(d))
	for i, kv := range d {
		keys[i] = kv.Key
	}
	return keys
}

// Clone returns a copy which does not share memory with d.
func (d Declarations) Clone() Declarations {
	if d == nil {
		return nil
	}
	c := make(Declarations, len(d))
	copy(c, d)
	return c
}

// Merge sets all properties of other, overwriting existing values.
func (d Declarations) Merge(other Declarations) Declarations {
	for _, kv := range other {
		d = d.SetKeyValue(kv)
	}
	return d
}

// String renders the declarations in inline-style form, e.g.
//
//    opacity: 0; transform: translateY(20px); color: red !important;
//
func (d Declarations) String() string {
	var b strings.Builder
	for i, kv := range d {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s;", kv)
	}
	return b.String()
}

// FromMap creates declarations from a map, with keys sorted alphabetically.
// Go maps do not preserve insertion order, so clients who care about the
// order of style writes should use Decl or Set instead.
func FromMap(m map[string]string) Declarations {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	d := make(Declarations, 0, len(m))
	for _, k := range keys {
		d = d.Set(k, Property(m[k]))
	}
	return d
}

// --- CSS Property Groups ----------------------------------------------
//
// For debugging output we sort properties into organisatorial groups.

// Symbolic names for string literals, denoting property groups.
const (
	PGEffects   = "Effects"
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGText      = "Text"
	PGX         = "X"
)

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("transition") => "Effects"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	if groupname, found := groupNameFromPropertyKey[key]; found {
		return groupname
	}
	switch {
	case strings.HasPrefix(key, "transition"), strings.HasPrefix(key, "transform"):
		return PGEffects
	case strings.HasPrefix(key, "margin"):
		return PGMargins
	case strings.HasPrefix(key, "padding"):
		return PGPadding
	case strings.HasPrefix(key, "border"):
		return PGBorder
	}
	return PGX
}

var groupNameFromPropertyKey = map[string]string{
	"opacity":          PGEffects, // Effects
	"transform":        PGEffects,
	"transition":       PGEffects,
	"perspective":      PGEffects,
	"filter":           PGEffects,
	"will-change":      PGEffects,
	"width":            PGDimension, // Dimension
	"height":           PGDimension,
	"min-width":        PGDimension,
	"min-height":       PGDimension,
	"max-width":        PGDimension,
	"max-height":       PGDimension,
	"display":          PGDisplay, // Display
	"float":            PGDisplay,
	"visibility":       PGDisplay,
	"position":         PGDisplay,
	"color":            PGColor,
	"background-color": PGColor,
	"direction":        PGText,
	"white-space":      PGText,
	"letter-spacing":   PGText,
}

// PropertyGroup is a collection of properties sharing a common topic.
type PropertyGroup struct {
	name  string
	props Declarations
}

// Name returns the name of the property group.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Properties returns all properties of a group, in declaration order.
func (pg *PropertyGroup) Properties() []KeyValue {
	return pg.props
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for _, kv := range pg.props {
		s += fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value)
	}
	return s
}

// Groups splits declarations into property groups. Groups are returned
// in order of their first appearance in d.
func (d Declarations) Groups() []*PropertyGroup {
	var groups []*PropertyGroup
	index := make(map[string]*PropertyGroup)
	for _, kv := range d {
		name := GroupNameFromPropertyKey(kv.Key)
		pg, ok := index[name]
		if !ok {
			pg = &PropertyGroup{name: name}
			index[name] = pg
			groups = append(groups, pg)
		}
		pg.props = append(pg.props, kv)
	}
	return groups
}
