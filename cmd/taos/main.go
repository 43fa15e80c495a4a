// Command taos applies scroll-reveal animations to HTML pages, headless.
//
// It is a driver for package taos on top of the headless host in package
// dom/htmldom: pages are parsed, marked elements are laid out as a simple
// vertical stack of boxes and the viewport is scrolled over them.
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var traceLevel string

	rootCmd := &cobra.Command{
		Use:   "taos",
		Short: "Reveal elements of HTML pages on scroll",
		Long: `taos styles elements of HTML pages for reveal animations.

Elements are marked with data-taos attributes:

  <div data-taos="slide-up" data-taos-duration="600">…</div>

taos writes the initial styles of the named animation preset to each
marked element and the target styles as soon as the element scrolls
into view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupTracing(traceLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error",
		"Trace level (Error, Info, Debug)")

	rootCmd.AddCommand(
		renderCmd(),
		scrollCmd(),
		presetsCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// setupTracing routes all tracers to a Go standard logger on stderr.
func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("taos").SetTraceLevel(tracing.TraceLevelFromString(level))
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "  %s\n", fmt.Sprintf(format, args...))
}
