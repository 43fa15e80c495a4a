/*
Package htmldom is a headless host for the reveal engine, operating on
HTML parse trees.

Overview

This is an implementation of the host interfaces of package dom on top of
golang.org/x/net/html. Elements are queried with CSS selectors (using
cascadia), inline styles are kept in the "style" attribute of the
underlying HTML node, so that a styled document may be rendered back to
HTML.

There is no layout engine. Clients assign boxes to elements (or let
AutoLayout stack them), move a viewport over the page and call Flush to
have notifications delivered. Flush is the event loop of this host: it
hands out pending mutation notifications first, then visibility
notifications, until no more work is pending. Nothing happens
asynchronously; all callbacks are called from within Flush.

A Document is not safe for concurrent use.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmldom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'taos.dom'.
func tracer() tracing.Trace {
	return tracing.Select("taos.dom")
}
