package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/taos/preset"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

func presetsCmd() *cobra.Command {
	var opts pageOptions

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List animation presets",
		Long: `List all animation presets with their initial and target styles.

Presets from a CSS file given with --presets are included. Such a file
defines presets as pairs of rules:

  pop:initial { opacity: 0; transform: scale(0.5); }
  pop:target  { opacity: 1; transform: scale(1); }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := opts.registry()
			if err != nil {
				return err
			}
			return listPresets(os.Stdout, reg)
		},
	}

	cmd.Flags().StringVarP(&opts.presetsFile, "presets", "p", "", "CSS file with additional presets")

	return cmd
}

func listPresets(w io.Writer, reg *preset.Registry) error {
	tree := treeprint.NewWithRoot(fmt.Sprintf("presets (%d)", reg.Len()))
	for _, name := range reg.Names() {
		p, ok := reg.Lookup(name).Get()
		if !ok {
			continue
		}
		branch := tree.AddBranch(p.Name)
		branch.AddMetaNode("initial", p.Initial.String())
		branch.AddMetaNode("target", p.Target.String())
	}
	_, err := io.WriteString(w, tree.String())
	return err
}
