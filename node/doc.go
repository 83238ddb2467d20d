/*
Package node implements the universal intermediate representation of UI trees.

A Node is an immutable tree value: a tag name, an ordered list of attributes and
an ordered list of children, each of which is either a text leaf or another Node.
Widget descriptors render into trees of abstract nodes, and conversion engines
produce new trees of concrete nodes from them. Nodes never change after
construction, therefore trees may be read from multiple goroutines without
further synchronization.

Serialization

Three textual forms are supported:

   ToXML()          // <tag k="v">children</tag>, or <tag k="v"/> without children
   String()         // like ToXML, but children collapse to a literal <...>
   TreeString(ind)  // one line per node, children indented

ToXML performs no escaping of attribute values or text. Clients putting
untrusted text into a tree have to escape it beforehand (or render through
package dom, which produces escaped HTML).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package node

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'uitree.node'
func tracer() tracing.Trace {
	return tracing.Select("uitree.node")
}
