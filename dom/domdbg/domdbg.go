/*
Package domdbg implements helpers to debug the elements tracked by a
lifecycle manager.

Dump renders tracked elements as a text tree, ToGraphViz as a GraphViz
diagram. Both include the inline styles of an element, sorted into
property groups, if the host's elements expose them (see interface
Styled).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/taos/dom/style"
	"github.com/npillmayer/taos/lifecycle"
	"github.com/xlab/treeprint"
)

// Styled is implemented by elements which expose their inline styles.
type Styled interface {
	Styles() style.Declarations
}

// Dump returns a text tree of all tracked elements, in order of discovery:
//
//    tracked elements (1)
//    └── [revealed] <div data-taos="fade">
//        ├── config: {animation=fade delay=0 duration=1000 …}
//        └── Effects
//            ├── opacity: 1
//            └── transition: all 1000ms … 0ms
//
func Dump(m *lifecycle.Manager) string {
	root := treeprint.NewWithRoot(fmt.Sprintf("tracked elements (%d)", m.Len()))
	m.Each(func(t lifecycle.Tracked) {
		branch := root.AddMetaBranch(t.State.String(), fmt.Sprint(t.Element))
		branch.AddNode("config: " + t.Config.String())
		if !m.Observed(t.Element) {
			branch.AddNode("not observed")
		}
		for _, pg := range groups(t) {
			g := branch.AddBranch(pg.Name())
			for _, kv := range pg.Properties() {
				g.AddNode(kv.String())
			}
		}
	})
	return root.String()
}

func groups(t lifecycle.Tracked) []*style.PropertyGroup {
	if s, ok := t.Element.(Styled); ok {
		return s.Styles().Groups()
	}
	return nil
}

// --- GraphViz --------------------------------------------------------------

type graphParams struct {
	Fontname string
	Title    string
}

type node struct {
	Name    string
	T       lifecycle.Tracked
	Groups  []*style.PropertyGroup
	Pending bool // still observed
}

// ToGraphViz outputs a diagram of the tracked elements in GraphViz (DOT)
// format. Elements are chained in order of discovery, each with its
// style property groups attached.
func ToGraphViz(m *lifecycle.Manager, w io.Writer) error {
	head := template.Must(template.New("head").Parse(graphHeadTmpl))
	elem := template.Must(template.New("element").Funcs(template.FuncMap{
		"label": label,
	}).Parse(elementTmpl))
	if err := head.Execute(w, graphParams{
		Fontname: "Helvetica",
		Title:    fmt.Sprintf("%d tracked elements", m.Len()),
	}); err != nil {
		return err
	}
	var err error
	var prev string
	i := 0
	m.Each(func(t lifecycle.Tracked) {
		if err != nil {
			return
		}
		i++
		n := node{
			Name:    fmt.Sprintf("el%05d", i),
			T:       t,
			Groups:  groups(t),
			Pending: m.Observed(t.Element),
		}
		if err = elem.Execute(w, n); err != nil {
			return
		}
		if prev != "" {
			_, err = fmt.Fprintf(w, "%s -> %s [style=dotted] ;\n", prev, n.Name)
		}
		prev = n.Name
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

// Dotty is a helper for testing. It will create a GraphViz image of the
// tracked elements of m and write it to a file in the current folder,
// choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(m *lifecycle.Manager, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "taos.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(m, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

func label(v interface{}) string {
	s := fmt.Sprint(v)
	if len(s) > 40 {
		s = s[:40] + "..."
	}
	s = strings.Replace(s, `"`, `\"`, -1)
	return `"` + s + `"`
}

// --- Templates -------------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="{{ .Title }}" splines=true overlap=false rankdir = "LR"];
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const elementTmpl = `{{ .Name }}	[ label={{ label .T.Element }} shape=ellipse style=filled {{ if .Pending }}fillcolor=lightblue3{{ else }}fillcolor=grey80{{ end }} xlabel="{{ .T.State }}" ] ;
{{ range $i, $pg := .Groups }}{{ $.Name }}pg{{ $i }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ $pg.Name }}</font></td></tr>
      {{ range $pg.Properties }}<tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
{{ $.Name }} -> {{ $.Name }}pg{{ $i }} [ dir=none weight=1 ] ;
{{ end }}`
