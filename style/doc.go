/*
Package style handles inline CSS declarations of widgets.

Widgets may carry a `css` parameter holding inline style declarations,
as known from HTML's style attribute:

   color: red; margin: 3px 6px !important

This package parses such declarations (using the douceur CSS parser),
normalizes them and sorts them into property groups.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'uitree.style'
func tracer() tracing.Trace {
	return tracing.Select("uitree.style")
}
