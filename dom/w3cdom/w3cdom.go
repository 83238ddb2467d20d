/*
Package w3cdom defines interface types for W3C-style views of a DOM.

Converted node trees are handed to tools which expect the familiar W3C
navigation (first child, next sibling, named attributes). Package dom
implements these interfaces on top of golang.org/x/net/html.

See also https://www.w3schools.com/XML/dom_intro.asp

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package w3cdom

import (
	"github.com/npillmayer/uitree/style"
	"golang.org/x/net/html"
)

// Node represents a W3C-type Node.
type Node interface {
	NodeType() html.NodeType        // ElementNode or TextNode
	NodeName() string               // tag for elements, "#text" for text
	NodeValue() string              // text for text nodes, "" otherwise
	HasAttributes() bool            //
	ParentNode() Node               // nil for the root
	HasChildNodes() bool            //
	ChildNodes() NodeList           // all children, including text
	FirstChild() Node               // nil if there are no children
	NextSibling() Node              // nil if last
	Attributes() NamedNodeMap       //
	ComputedStyles() ComputedStyles // styles of the inline "style" attribute
	TextContent() string            // text of the node and all descendents
}

// NodeList represents a W3C-type NodeList.
type NodeList interface {
	Length() int
	Item(int) Node
}

// Attr represents a W3C-type Attr.
type Attr interface {
	Key() string
	Value() string
}

// NamedNodeMap represents a W3C-type NamedNodeMap.
type NamedNodeMap interface {
	Length() int
	Item(int) Attr
	GetNamedItem(string) Attr
}

// ComputedStyles represents the CSS styles of a node.
type ComputedStyles interface {
	GetPropertyValue(string) style.Property
	Styles() *style.PropertyMap
}
