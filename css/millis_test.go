package css_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/npillmayer/taos/css"
)

func TestMillisBasic(t *testing.T) {
	ten := css.JustMillis(10)
	var ms int
	switch m := ten.Match(); m {
	case m.Just(&ms):
		t.Logf("ms = %d", ms)
	default:
		t.Errorf("expected Just(10) to be a valid time value, isn't: %#v", ten)
	}
	if ms != 10 {
		t.Errorf("expected ms to be 10, is %d", ms)
	}
	nan := css.NaN()
	switch m := nan.Match(); m {
	case m.Just(nil):
		t.Errorf("expected NaN not to match Just, did: %#v", nan)
	case m.NaN():
		t.Logf("time value is NaN")
	}
	if nan.String() != "NaN" {
		t.Errorf("expected NaN to print as 'NaN', is %q", nan.String())
	}
}

func TestParseMillis(t *testing.T) {
	for _, c := range []struct {
		in  string
		out string
	}{
		{"150", "150"},
		{"150ms", "150"},
		{"1.9", "1"},
		{"  -20 ", "-20"},
		{"+7", "7"},
		{"0", "0"},
		{"fast", "NaN"},
		{"", "NaN"},
		{"-", "NaN"},
		{"ms150", "NaN"},
		{"\u00a0150", "150"},
		{"\u2003\uFEFF\n42", "42"},
		{"\u0085 1", "NaN"},
		{"99999999999999999999999", strconv.Itoa(math.MaxInt)},
		{"-99999999999999999999999ms", strconv.Itoa(-math.MaxInt)},
	} {
		if got := css.ParseMillis(c.in).String(); got != c.out {
			t.Errorf("expected ParseMillis(%q) to be %s, is %s", c.in, c.out, got)
		}
	}
}

func TestTransition(t *testing.T) {
	tr := css.Transition(css.JustMillis(1000), "cubic-bezier(0.25,0.1,0.25,1.0)", css.JustMillis(0))
	if tr != "all 1000ms cubic-bezier(0.25,0.1,0.25,1.0) 0ms" {
		t.Errorf("unexpected transition shorthand %q", tr)
	}
	tr = css.Transition(css.NaN(), "ease", css.JustMillis(200))
	if tr != "all NaNms ease 200ms" {
		t.Errorf("unexpected transition shorthand %q", tr)
	}
}
