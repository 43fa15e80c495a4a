package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/taos/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeNonComparable(t *testing.T) {
	x := Just([]string{"opacity", "transform"})
	var keys []string
	switch m := x.Match(); m {
	case m.Just(&keys):
	case m.Nothing():
		t.Error("expected Just(slice) to match Just, didn't")
	}
	if len(keys) != 2 {
		t.Errorf("expected 2 keys, have %d", len(keys))
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if xx := Just(7).WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, is %d", xx)
	}
	if yy := Nothing[int]().WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
}

func TestMaybeFromOK(t *testing.T) {
	m := map[string]int{"a": 1}
	v, ok := m["a"]
	if !FromOK(v, ok).IsJust() {
		t.Error("expected lookup of existing key to be Just")
	}
	v, ok = m["b"]
	if FromOK(v, ok).IsJust() {
		t.Error("expected lookup of missing key to be Nothing")
	}
}

func TestMaybeMap(t *testing.T) {
	xx := Just(7).Map(func(n int) int {
		return n * 2
	})
	if v, _ := xx.Get(); v != 14 {
		t.Errorf("expected Just(7).Map(…) to return 14, is %d", v)
	}
	s := Map(strconv.Itoa, Just(10))
	if v, ok := s.Get(); !ok || v != "10" {
		t.Errorf("expected Map(Itoa, Just 10) to return \"10\", is %q", v)
	}
	if Map(strconv.Itoa, Nothing[int]()).IsJust() {
		t.Error("expected Map(…, Nothing) to be Nothing")
	}
}
