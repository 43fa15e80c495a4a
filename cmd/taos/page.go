package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/taos"
	"github.com/npillmayer/taos/config"
	"github.com/npillmayer/taos/dom/htmldom"
	"github.com/npillmayer/taos/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/taos/preset"
	"github.com/spf13/cobra"
)

// PresetsAttr marks <style> elements of a page which define presets.
const PresetsAttr = "data-taos-presets"

// pageOptions are shared by all commands which load pages.
type pageOptions struct {
	configFile  string  // YAML configuration
	presetsFile string  // CSS preset definitions
	viewport    float64 // viewport height
	height      float64 // height of layout boxes
	gap         float64 // vertical gap between layout boxes
}

func (opts *pageOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "YAML configuration file")
	cmd.Flags().StringVarP(&opts.presetsFile, "presets", "p", "", "CSS file with additional presets")
	cmd.Flags().Float64Var(&opts.viewport, "viewport", htmldom.DefaultViewport.Height, "Viewport height in px")
	cmd.Flags().Float64Var(&opts.height, "height", 300, "Layout height of animated elements in px")
	cmd.Flags().Float64Var(&opts.gap, "gap", 200, "Vertical gap between animated elements in px")
}

func (opts *pageOptions) overrides() (config.Overrides, error) {
	if opts.configFile == "" {
		return config.Overrides{}, nil
	}
	f, err := os.Open(opts.configFile)
	if err != nil {
		return config.Overrides{}, err
	}
	defer f.Close()
	return config.Load(f)
}

func (opts *pageOptions) registry() (*preset.Registry, error) {
	reg := preset.New()
	if opts.presetsFile == "" {
		return reg, nil
	}
	f, err := os.Open(opts.presetsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	n, err := preset.LoadStylesheet(f, reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.presetsFile, err)
	}
	info("loaded %d preset(s) from %s", n, opts.presetsFile)
	return reg, nil
}

// page is a loaded, laid out page with an engine, not yet initialized.
type page struct {
	path   string
	doc    *htmldom.Document
	engine *taos.Engine
	height float64 // page height
}

// loadPage parses an HTML file, registers presets defined in the page and
// lays out all animated elements.
func loadPage(path string, opts *pageOptions) (*page, error) {
	o, err := opts.overrides()
	if err != nil {
		return nil, err
	}
	reg, err := opts.registry()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := htmldom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for _, sheet := range douceuradapter.ExtractStyleElements(doc.Root(), PresetsAttr) {
		if _, err := preset.RegisterStyleSheet(sheet, reg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	vp := doc.Viewport()
	vp.Height = opts.viewport
	doc.SetViewport(vp)
	engine := taos.New(doc, taos.WithConfig(o), taos.WithRegistry(reg))
	h, err := doc.AutoLayout(engine.Config().Selector, opts.height, opts.gap)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &page{path: path, doc: doc, engine: engine, height: h}, nil
}
