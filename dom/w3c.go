package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/uitree/dom/w3cdom"
	"github.com/npillmayer/uitree/node"
	"github.com/npillmayer/uitree/style"
	"golang.org/x/net/html"
)

// W3CNode is the W3C-style view of an HTML node.
type W3CNode struct {
	h *html.Node
}

var _ w3cdom.Node = &W3CNode{}

// NewW3C builds the HTML DOM for a node tree and returns a W3C view of its root.
func NewW3C(n *node.Node) (*W3CNode, error) {
	h, err := Build(n)
	if err != nil {
		return nil, err
	}
	return ToW3C(h), nil
}

// ToW3C wraps an HTML node. It returns nil for nil.
func ToW3C(h *html.Node) *W3CNode {
	if h == nil {
		return nil
	}
	return &W3CNode{h: h}
}

// HTMLNode returns the underlying HTML node.
func (w *W3CNode) HTMLNode() *html.Node {
	return w.h
}

// NodeType is part of interface w3cdom.Node.
func (w *W3CNode) NodeType() html.NodeType {
	return w.h.Type
}

// NodeName is part of interface w3cdom.Node.
func (w *W3CNode) NodeName() string {
	switch w.h.Type {
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	}
	return w.h.Data
}

// NodeValue is part of interface w3cdom.Node.
func (w *W3CNode) NodeValue() string {
	if w.h.Type == html.TextNode || w.h.Type == html.CommentNode {
		return w.h.Data
	}
	return ""
}

// HasAttributes is part of interface w3cdom.Node.
func (w *W3CNode) HasAttributes() bool {
	return len(w.h.Attr) > 0
}

// ParentNode is part of interface w3cdom.Node.
func (w *W3CNode) ParentNode() w3cdom.Node {
	if w.h.Parent == nil {
		return nil
	}
	return ToW3C(w.h.Parent)
}

// HasChildNodes is part of interface w3cdom.Node.
func (w *W3CNode) HasChildNodes() bool {
	return w.h.FirstChild != nil
}

// ChildNodes is part of interface w3cdom.Node.
func (w *W3CNode) ChildNodes() w3cdom.NodeList {
	var list nodeList
	for c := w.h.FirstChild; c != nil; c = c.NextSibling {
		list = append(list, ToW3C(c))
	}
	return list
}

// FirstChild is part of interface w3cdom.Node.
func (w *W3CNode) FirstChild() w3cdom.Node {
	if w.h.FirstChild == nil {
		return nil
	}
	return ToW3C(w.h.FirstChild)
}

// NextSibling is part of interface w3cdom.Node.
func (w *W3CNode) NextSibling() w3cdom.Node {
	if w.h.NextSibling == nil {
		return nil
	}
	return ToW3C(w.h.NextSibling)
}

// Attributes is part of interface w3cdom.Node.
func (w *W3CNode) Attributes() w3cdom.NamedNodeMap {
	return attrMap(w.h.Attr)
}

// ComputedStyles is part of interface w3cdom.Node. Styles are taken from
// the inline "style" attribute; malformed declarations result in empty styles.
func (w *W3CNode) ComputedStyles() w3cdom.ComputedStyles {
	pmap := style.NewPropertyMap()
	for _, a := range w.h.Attr {
		if a.Key != "style" {
			continue
		}
		decls, err := style.ParseInline(a.Val)
		if err != nil {
			tracer().Infof("ignoring styles of <%s>: %v", w.h.Data, err)
			break
		}
		if pmap, err = decls.PropertyMap(); err != nil {
			tracer().Infof("ignoring styles of <%s>: %v", w.h.Data, err)
			pmap = style.NewPropertyMap()
		}
		break
	}
	return computedStyles{pmap}
}

// TextContent is part of interface w3cdom.Node.
func (w *W3CNode) TextContent() string {
	var sb strings.Builder
	for _, t := range TextNodes(w.h) {
		sb.WriteString(t.Data)
	}
	return sb.String()
}

// --- Helper types ----------------------------------------------------------

type nodeList []*W3CNode

func (l nodeList) Length() int {
	return len(l)
}

func (l nodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(l) {
		return nil
	}
	return l[i]
}

type attr struct {
	a html.Attribute
}

func (a attr) Key() string   { return a.a.Key }
func (a attr) Value() string { return a.a.Val }

type attrMap []html.Attribute

func (m attrMap) Length() int {
	return len(m)
}

func (m attrMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(m) {
		return nil
	}
	return attr{m[i]}
}

func (m attrMap) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range m {
		if a.Key == key {
			return attr{a}
		}
	}
	return nil
}

type computedStyles struct {
	pmap *style.PropertyMap
}

func (cs computedStyles) GetPropertyValue(key string) style.Property {
	p, _ := cs.pmap.Property(key)
	return p
}

func (cs computedStyles) Styles() *style.PropertyMap {
	return cs.pmap
}
