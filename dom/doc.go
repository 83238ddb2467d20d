/*
Package dom bridges concrete node trees to HTML DOMs.

Package node serializes trees verbatim, without escaping, which is what the
conversion engine is specified to produce. Clients who need well-formed HTML
build an html.Node tree from a converted node tree and let
golang.org/x/net/html render it, which will escape text and attribute values:

    n, _ := convert.Convert(abstract)
    dom.Render(os.Stdout, n)

The reverse direction reads HTML fragments into node trees (FromHTML), and
QueryAll selects nodes of a tree with CSS selectors (using cascadia).

W3CNode wraps an html.Node with the W3C-style interface of package w3cdom,
including the computed styles of inline style declarations. It is used for
debugging output (package domdbg).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'uitree.dom'
func tracer() tracing.Trace {
	return tracing.Select("uitree.dom")
}
