/*
Package ui implements abstract widget descriptors.

Application code describes a user interface as a tree of descriptors: buttons,
labels, frames, forms, entries, images, text views and so on. Descriptors are
independent of any display technology. Rendering a descriptor yields a tree
of abstract nodes (package node), which a conversion engine (package convert)
rewrites into a concrete vocabulary such as HTML.

Construction

Every descriptor is built from a bag of named parameters:

   b, err := ui.NewButton(ui.Params{
       "label": "OK",
       "style": []string{"primary"},
       "onclick": ui.Handler(func(args ...any) any { … }),
   })

Each kind of descriptor enumerates the parameters it recognizes, together with
their defaults. Parameters not recognized by a kind are rejected with
ErrUnknownParameter, parameters of the wrong shape with ErrType.

Rendering

Render is a pure function of a descriptor's current state: rendering twice
without changes in between results in structurally equal trees. Every render
pass recomputes the whole tree.

Descriptors may be created by kind name with a Registry. The default registry
knows all kinds of this package; clients register additional kinds explicitly.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ui

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'uitree.ui'
func tracer() tracing.Trace {
	return tracing.Select("uitree.ui")
}
