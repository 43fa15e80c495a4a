/*
Package lifecycle tracks elements through their reveal animations.

Every element matching the configured selector is discovered exactly once.
At discovery its effective configuration is resolved from the global
configuration and its attributes, the initial styles of its preset are
written and the element is handed to a visibility service. From then on,
its state is driven solely by visibility crossings:

    Unrevealed ──(enters viewport)──▶ Revealed
        ▲                                │
        └───(leaves viewport, !once)─────┘

Elements with once-policy stop being observed after their first reveal;
they stay in the tracked set, but are inert.

Elements naming an unknown animation are tracked and observed as well, but
never styled (apart from their transition timing). Animation names come
from page markup, and typos must not break a page.

A Manager is not safe for concurrent use. The host delivers notifications
as batches from a single event loop, and every batch is processed to
completion before the next one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lifecycle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'taos.lifecycle'.
func tracer() tracing.Trace {
	return tracing.Select("taos.lifecycle")
}
