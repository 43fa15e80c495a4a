/*
Package config holds the engine-wide configuration and resolves the
effective configuration of single elements.

Global configuration is constructed once, by merging user overrides onto
built-in defaults (shallow merge, user keys win). Overrides may be given
programmatically, read from YAML, or taken from any schuko.Configuration.

Per-element configuration is authored in page markup:

    <div data-taos="slide-up" data-taos-delay="200" data-taos-once="false">

and resolved against the global configuration by Resolve, a pure function.
Resolved configurations are frozen when an element is registered; later
attribute changes are not re-read.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'taos.config'.
func tracer() tracing.Trace {
	return tracing.Select("taos.config")
}
