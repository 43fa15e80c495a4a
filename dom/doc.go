/*
Package dom defines the interface between the reveal engine and its host
environment.

Overview

The engine does not own a document. It queries elements by selector,
reads their attributes and writes style properties, and it depends on
two notification services of the host:

- a visibility service, which reports when the visible fraction of an
observed element crosses a threshold (entering or leaving the viewport),

- and, optionally, a mutation service, which reports that nodes have been
inserted somewhere in the document.

Both services deliver notifications in batches. Each batch is processed
to completion before the next one is handled; there is no concurrency
between batches.

A headless implementation operating on HTML parse trees may be found in
sub-package htmldom.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom
