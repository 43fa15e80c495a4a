/*
Package cssom provides an abstraction for CSS stylesheets.

Overview

Reveal animations are defined as pairs of style declarations, an initial
one and a target one. Besides the built-in presets, clients may author
presets as CSS, either in a separate file or in a <style> element of the
page. This package de-couples the preset loader from a concrete CSS
parser by introducing interfaces StyleSheet and Rule. A concrete
implementation may be found in sub-package douceuradapter.

We do not evaluate the cascade. Rules are just containers for
declarations, their selectors are interpreted by the client.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom
