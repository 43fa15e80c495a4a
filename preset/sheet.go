package preset

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/taos/dom/style"
	"github.com/npillmayer/taos/dom/style/cssom"
	"github.com/npillmayer/taos/dom/style/cssom/douceuradapter"
)

// ErrIncompletePreset is returned by the stylesheet loader if a preset
// defines only one of its two halves.
var ErrIncompletePreset = errors.New("preset stylesheet defines only one of initial/target")

// Pseudo-class suffixes for preset rules in stylesheets.
const (
	InitialSuffix = ":initial"
	TargetSuffix  = ":target"
)

// LoadStylesheet reads presets from CSS and registers them. Every preset
// is defined by two rules, one for each endpoint of the animation:
//
//    pop:initial { opacity: 0; transform: scale(0.5); }
//    pop:target  { opacity: 1; transform: scale(1); }
//
// Rules with other selectors are ignored. If a preset is defined by more
// than one rule, declarations are merged in source order.
// LoadStylesheet returns the number of presets registered.
func LoadStylesheet(r io.Reader, reg *Registry) (int, error) {
	sheet, err := douceuradapter.Parse(r)
	if err != nil {
		return 0, err
	}
	return RegisterStyleSheet(sheet, reg)
}

// RegisterStyleSheet registers all presets defined by the rules of a
// stylesheet. See LoadStylesheet for the format of preset rules.
func RegisterStyleSheet(sheet cssom.StyleSheet, reg *Registry) (int, error) {
	type halves struct {
		initial, target style.Declarations
	}
	var order []string
	found := make(map[string]*halves)
	for _, rule := range sheet.Rules() {
		for _, sel := range strings.Split(rule.Selector(), ",") {
			sel = strings.TrimSpace(sel)
			var name string
			var initial bool
			switch {
			case strings.HasSuffix(sel, InitialSuffix):
				name, initial = strings.TrimSuffix(sel, InitialSuffix), true
			case strings.HasSuffix(sel, TargetSuffix):
				name = strings.TrimSuffix(sel, TargetSuffix)
			default:
				tracer().Debugf("preset sheet: ignoring rule %q", sel)
				continue
			}
			h, ok := found[name]
			if !ok {
				h = &halves{}
				found[name] = h
				order = append(order, name)
			}
			if initial {
				h.initial = h.initial.Merge(rule.Styles())
			} else {
				h.target = h.target.Merge(rule.Styles())
			}
		}
	}
	n := 0
	for _, name := range order {
		h := found[name]
		if h.initial.Len() == 0 || h.target.Len() == 0 {
			return n, fmt.Errorf("preset %q: %w", name, ErrIncompletePreset)
		}
		if err := reg.Register(name, h.initial, h.target); err != nil {
			return n, err
		}
		tracer().P("preset", name).Infof("registered preset from stylesheet")
		n++
	}
	return n, nil
}
