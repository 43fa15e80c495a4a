/*
Package taos reveals elements of an HTML document with CSS transitions as
they scroll into view.

Page authors mark elements with attributes:

    <div data-taos="slide-up" data-taos-duration="600" data-taos-once="false">

and an Engine styles them with the initial styles of the named animation
preset. As soon as a marked element becomes visible, the preset's target
styles are applied and the rendering engine animates between both.

The engine does not render, lay out or scroll anything itself. These are
capabilities of a host (see package dom): the host finds elements by
selector, writes inline styles and reports visibility crossings and tree
mutations. Package dom/htmldom provides a headless host on top of an HTML
parse tree.

    doc, _ := htmldom.Parse(r)
    engine := taos.New(doc, taos.WithConfig(overrides)).
        AddAnimation("pop", style.Decl("opacity", "0"), style.Decl("opacity", "1")).
        Init()
    doc.Flush()

Engines are explicit instances; there is no package-level default engine.
Hosts with a document-ready signal may use OnReady to defer
initialization.

An engine is not safe for concurrent use. All of its work is driven by
callbacks from the host's single event loop.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package taos

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'taos.engine'.
func tracer() tracing.Trace {
	return tracing.Select("taos.engine")
}
