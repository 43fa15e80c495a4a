/*
Package preset implements a registry of reveal animations.

A preset is a named pair of style declarations: the initial styles are
applied to an element before it is revealed, the target styles when it
scrolls into view. The transition between both is left to the rendering
engine (see package css for the transition shorthand).

The registry is seeded with a table of built-in presets, which clients
may extend or overwrite at runtime. Style values are a bit-exact contract
with the rendering engine and are never normalized.

Presets may also be authored as CSS, see LoadStylesheet.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package preset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'taos.preset'.
func tracer() tracing.Trace {
	return tracing.Select("taos.preset")
}
