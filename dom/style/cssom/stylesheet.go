package cssom

import "github.com/npillmayer/taos/dom/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Presets may be authored as CSS; clients of the preset loader do not
// depend on a concrete CSS parser, but rather on this interface
// (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string                 // the prelude / selectors of the rule
	Properties() []string             // property keys, e.g. "opacity"
	Value(string) style.Property      // property value for key, e.g. "0"
	IsImportant(string) bool          // is property key marked as important?
	Styles() style.Declarations       // all properties in source order
}
