package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/taos/result"
	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	var (
		opts   pageOptions
		output string
	)

	cmd := &cobra.Command{
		Use:   "render <page.html>...",
		Short: "Render pages with initial reveal styles",
		Long: `Render HTML pages as they look right after loading.

Animated elements get the inline styles of their preset. Elements in the
first viewport are revealed, all others carry their initial styles.

With a single page, output goes to stdout or to the file given by
--output. With more than one page, --output names a directory and every
page is written to <name>.taos.html in that directory.

Examples:
  taos render index.html
  taos render --config taos.yaml --presets presets.css -o out index.html about.html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args, output, &opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, or directory for more than one page")

	return cmd
}

func runRender(paths []string, output string, opts *pageOptions) error {
	if len(paths) == 1 {
		w := io.Writer(os.Stdout)
		if output != "" {
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		_, err := renderPage(paths[0], w, opts)
		return err
	}
	if output == "" {
		return fmt.Errorf("rendering %d pages needs an output directory", len(paths))
	}
	if err := os.MkdirAll(output, 0o755); err != nil {
		return err
	}
	results := make([]result.Result[string], 0, len(paths))
	for _, path := range paths {
		results = append(results, renderToDir(path, output, opts))
	}
	written, errs := result.Collect(results)
	for _, w := range written {
		success("wrote %s", w)
	}
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %v\n", err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d pages failed", len(errs), len(paths))
	}
	return nil
}

func renderToDir(path, dir string, opts *pageOptions) result.Result[string] {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".taos.html"
	out := filepath.Join(dir, name)
	f, err := os.Create(out)
	return result.AndThen(func(f *os.File) result.Result[string] {
		defer f.Close()
		n, err := renderPage(path, f, opts)
		if err != nil {
			return result.Err[string](err)
		}
		return result.Ok(fmt.Sprintf("%s (%d animated elements)", out, n))
	}, result.From(f, err))
}

// renderPage initializes an engine for a page, delivers all pending
// notifications and writes the styled page to w. It returns the number of
// tracked elements.
func renderPage(path string, w io.Writer, opts *pageOptions) (int, error) {
	p, err := loadPage(path, opts)
	if err != nil {
		return 0, err
	}
	p.engine.Init()
	p.doc.Flush()
	if err := p.doc.Render(w); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	return p.engine.Tracked(), nil
}
