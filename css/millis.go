package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// MillisT is an option type for CSS time values in milliseconds.
//
// Timing values are read from markup attributes and may be garbage. We do
// not reject or repair them, but carry them along as NaN ("not a number"),
// which renders as "NaN" in a transition shorthand and is therefore
// ignored by the rendering engine.
/*
type MillisT
	= JustMillis int
	| NaN
*/
type MillisT struct {
	ms    int
	valid bool
}

// JustMillis creates a time value of n milliseconds.
func JustMillis(n int) MillisT {
	return MillisT{ms: n, valid: true}
}

// NaN creates an invalid time value.
func NaN() MillisT {
	return MillisT{}
}

// IsNaN is a predicate for invalid time values.
func (t MillisT) IsNaN() bool {
	return !t.valid
}

// Int returns the time value in milliseconds and an indicator wether the
// value is valid.
func (t MillisT) Int() (int, bool) {
	return t.ms, t.valid
}

func (t MillisT) String() string {
	if !t.valid {
		return "NaN"
	}
	return strconv.Itoa(t.ms)
}

// ParseMillis coerces a string to an integer number of milliseconds,
// following the lenient rules of legacy browser scripting: leading
// whitespace and an optional sign are accepted, then as many decimal digits
// as possible are consumed and the rest of the string is ignored.
//
//    "150"    => 150
//    "150ms"  => 150
//    "1.9"    => 1
//    " -20 "  => -20
//    "fast"   => NaN
//
// Leading whitespace includes Unicode spaces like NBSP and the byte order
// mark. Digit runs too large for an int saturate to ±math.MaxInt, where
// scripting would produce a very large float.
func ParseMillis(s string) MillisT {
	s = strings.TrimLeftFunc(s, isScriptSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return NaN()
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil { // only digits, so it is an overflow
		n = math.MaxInt
	}
	if neg {
		n = -n
	}
	return JustMillis(n)
}

// isScriptSpace reports white space and line terminators as trimmed by
// scripting's number parsing.
func isScriptSpace(r rune) bool {
	return r == '\uFEFF' || (r != '\u0085' && unicode.IsSpace(r))
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for time values, to be used in a switch statement:
//
//    var ms int
//    switch m := t.Match(); m {
//    case m.Just(&ms):
//        …
//    case m.NaN():
//        …
//    }
//
func (t MillisT) Match() *Matcher {
	return &Matcher{millis: t}
}

// Matcher matches the cases of a MillisT.
type Matcher struct {
	millis MillisT
}

// Just matches valid time values and extracts the value into n (if non-nil).
func (m *Matcher) Just(n *int) *Matcher {
	if m.millis.valid {
		if n != nil {
			*n = m.millis.ms
		}
		return m
	}
	return nil
}

// NaN matches invalid time values.
func (m *Matcher) NaN() *Matcher {
	if !m.millis.valid {
		return m
	}
	return nil
}

// --- Transitions -----------------------------------------------------------

// Transition creates a CSS transition shorthand for all properties:
//
//    Transition(JustMillis(1000), "ease", JustMillis(0))  =>  "all 1000ms ease 0ms"
//
// The easing function is passed through verbatim.
func Transition(duration MillisT, easing string, delay MillisT) string {
	return fmt.Sprintf("all %sms %s %sms", duration, easing, delay)
}
