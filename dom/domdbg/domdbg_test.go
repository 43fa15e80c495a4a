package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/taos/config"
	"github.com/npillmayer/taos/dom"
	"github.com/npillmayer/taos/dom/htmldom"
	"github.com/npillmayer/taos/lifecycle"
)

func tracked(t *testing.T) (*lifecycle.Manager, *htmldom.Document) {
	doc, err := htmldom.ParseString(`<body>
	<div id="a" data-taos="fade"></div>
	<div id="b" data-taos="slide-up"></div>
	</body>`)
	if err != nil {
		t.Fatal(err)
	}
	m := lifecycle.New(config.Defaults(), nil, doc)
	m.Attach(doc.NewVisibilityService(0.2, m.OnVisibilityChange))
	m.DiscoverNewElements()
	m.OnVisibilityChange([]dom.Crossing{{Element: doc.MustQuery("#a"), IsIntersecting: true}})
	return m, doc
}

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "taos.dom")
	defer teardown()
	//
	m, _ := tracked(t)
	s := Dump(m)
	t.Logf("\n%s", s)
	for _, expected := range []string{
		"tracked elements (2)",
		`[revealed]  <div id="a" data-taos="fade">`,
		`[unrevealed]  <div id="b" data-taos="slide-up">`,
		"Effects",
		"transform: translateY(20px)",
		"not observed",
	} {
		if !strings.Contains(s, expected) {
			t.Errorf("expected dump to contain %q", expected)
		}
	}
	if strings.Count(s, "not observed") != 1 {
		t.Errorf("expected exactly one element to be unobserved")
	}
}

func TestToGraphViz(t *testing.T) {
	m, _ := tracked(t)
	var buf bytes.Buffer
	if err := ToGraphViz(m, &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected a digraph, is\n%s", dot)
	}
	if !strings.Contains(dot, "el00001 -> el00002") {
		t.Errorf("expected elements to be chained in discovery order")
	}
	if !strings.Contains(dot, "el00002pg0") {
		t.Errorf("expected style group of second element")
	}
}
