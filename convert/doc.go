/*
Package convert rewrites abstract node trees into a concrete vocabulary.

Widget descriptors (package ui) render into trees of abstract nodes with tags
like "container", "button" or "line-entry". An Engine walks such a tree and
produces a new tree in a concrete vocabulary, HTML by default:

   <form act="/x" method="POST"><label form="true">User</label></form>
   ⇒ <form action="/x" method="POST"><label>User</label></form>

The walk is recursive and depth-first. A context value travels down the
recursion; the only context-sensitive state is whether a node lives inside a
form, which changes the tags chosen for labels and frames. Each source tag is
handled by a Rule, resolving the target tag and extra attributes. After a rule
has been applied, three universal attribute rules map provenance attributes:

   style → class    (style classes of the descriptor)
   name  → id       (identifier of the descriptor)
   css   → style    (inline style declarations)

Each of these applies only if the source value is non-blank.

The tag names of the target are configured with a Vocabulary, which may be
loaded from YAML. Source tags without a rule are a hard fault
(ErrUnsupportedTag), unless the engine has been created with WithPassthrough.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package convert

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'uitree.convert'
func tracer() tracing.Trace {
	return tracing.Select("uitree.convert")
}
