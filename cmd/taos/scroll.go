package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/npillmayer/taos/dom"
	"github.com/npillmayer/taos/dom/domdbg"
	"github.com/npillmayer/taos/lifecycle"
	"github.com/spf13/cobra"
)

func scrollCmd() *cobra.Command {
	var (
		opts pageOptions
		step float64
		back bool
		dump bool
		dot  string
	)

	cmd := &cobra.Command{
		Use:   "scroll <page.html>",
		Short: "Simulate scrolling through a page",
		Long: `Scroll through an HTML page and report reveal state changes.

The viewport starts at the top of the page and moves down in steps until
the last animated element has been in view. With --back, it scrolls up
again afterwards. Every change of an element's state is printed together
with the scroll position.

Examples:
  taos scroll index.html
  taos scroll --step 50 --back --dump index.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if step <= 0 {
				return fmt.Errorf("step must be positive, is %g", step)
			}
			return runScroll(args[0], os.Stdout, &opts, step, back, dump, dot)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().Float64Var(&step, "step", 100, "Scroll step in px")
	cmd.Flags().BoolVar(&back, "back", false, "Scroll back to the top afterwards")
	cmd.Flags().BoolVar(&dump, "dump", false, "Print the tracked elements when done")
	cmd.Flags().StringVar(&dot, "dot", "", "Write a GraphViz diagram of the tracked elements to this file")

	return cmd
}

func runScroll(path string, w io.Writer, opts *pageOptions, step float64, back, dump bool, dot string) error {
	p, err := loadPage(path, opts)
	if err != nil {
		return err
	}
	m := p.engine.Init().Manager()
	states := snapshot(m)
	report := func() {
		p.doc.Flush()
		states = reportChanges(w, m, states, p.doc.Viewport().Y)
	}
	report()
	bottom := math.Max(p.height-p.doc.Viewport().Height, 0)
	for _, y := range scrollSteps(0, bottom, step) {
		p.doc.ScrollTo(y)
		report()
	}
	if back {
		for _, y := range scrollSteps(p.doc.Viewport().Y, 0, step) {
			p.doc.ScrollTo(y)
			report()
		}
	}
	info("%d animated element(s), page height %gpx", m.Len(), p.height)
	if dump {
		fmt.Fprint(w, domdbg.Dump(m))
	}
	if dot != "" {
		f, err := os.Create(dot)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := domdbg.ToGraphViz(m, f); err != nil {
			return err
		}
		success("wrote %s", dot)
	}
	return nil
}

// scrollSteps returns the scroll positions from one position to another,
// excluding the start. The last step is shortened to end exactly at to.
func scrollSteps(from, to, step float64) []float64 {
	var ys []float64
	switch {
	case to > from:
		for y := from + step; y < to; y += step {
			ys = append(ys, y)
		}
	case to < from:
		for y := from - step; y > to; y -= step {
			ys = append(ys, y)
		}
	default:
		return nil
	}
	return append(ys, to)
}

func snapshot(m *lifecycle.Manager) map[dom.Element]lifecycle.State {
	states := make(map[dom.Element]lifecycle.State, m.Len())
	m.Each(func(t lifecycle.Tracked) {
		states[t.Element] = t.State
	})
	return states
}

// reportChanges prints all elements whose state differs from the previous
// snapshot and returns the current snapshot.
func reportChanges(w io.Writer, m *lifecycle.Manager, prev map[dom.Element]lifecycle.State, y float64) map[dom.Element]lifecycle.State {
	current := snapshot(m)
	m.Each(func(t lifecycle.Tracked) {
		before, known := prev[t.Element]
		if known && before == t.State {
			return
		}
		fmt.Fprintf(w, "y=%6.0f  %-10s  %v\n", y, t.State, t.Element)
	})
	return current
}
