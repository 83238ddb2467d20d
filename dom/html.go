package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/uitree/node"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrFragment is flagged for HTML fragments which cannot be represented as
// node trees.
var ErrFragment = errors.New("unrepresentable HTML fragment")

// Build creates an HTML DOM for a node tree. Attribute values are stringified
// the same way as for serialization.
func Build(n *node.Node) (*html.Node, error) {
	h, _, err := build(n, nil)
	return h, err
}

// build creates the DOM and, if index is non-nil, records the node each
// element has been created from.
func build(n *node.Node, index map[*html.Node]*node.Node) (*html.Node, map[*html.Node]*node.Node, error) {
	if n == nil || n.IsNull() {
		return nil, nil, fmt.Errorf("%w: cannot build DOM for null node", node.ErrValidation)
	}
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag(),
		DataAtom: atom.Lookup([]byte(n.Tag())),
	}
	for _, a := range n.Attrs() {
		h.Attr = append(h.Attr, html.Attribute{Key: a.Key, Val: node.FormatValue(a.Value)})
	}
	if index != nil {
		index[h] = n
	}
	for _, ch := range n.Children() {
		switch c := ch.(type) {
		case node.Text:
			h.AppendChild(&html.Node{Type: html.TextNode, Data: string(c)})
		case *node.Node:
			hc, _, err := build(c, index)
			if err != nil {
				return nil, nil, err
			}
			h.AppendChild(hc)
		}
	}
	return h, index, nil
}

// Render writes a node tree as HTML. Text and attribute values are escaped.
// Void elements (like <hr>) must not have children.
func Render(w io.Writer, n *node.Node) error {
	h, err := Build(n)
	if err != nil {
		return err
	}
	return html.Render(w, h)
}

// RenderString renders a node tree as HTML into a string.
func RenderString(n *node.Node) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FromHTML parses an HTML fragment in the context of a <body> element and
// returns the top-level elements as node trees. Comments are dropped, as is
// white space between top-level elements. Any other top-level text is an
// error.
func FromHTML(fragment string) ([]*node.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	hs, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return nil, err
	}
	var nodes []*node.Node
	for _, h := range hs {
		switch h.Type {
		case html.ElementNode:
			n, err := fromHTML(h)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
		case html.TextNode:
			if strings.TrimSpace(h.Data) != "" {
				return nil, fmt.Errorf("%w: top-level text %q", ErrFragment, h.Data)
			}
		}
	}
	tracer().Debugf("parsed HTML fragment into %d node trees", len(nodes))
	return nodes, nil
}

func fromHTML(h *html.Node) (*node.Node, error) {
	var attrs node.Attrs
	for _, a := range h.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + a.Key
		}
		attrs = attrs.Set(key, a.Val)
	}
	var children node.Children
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			children = append(children, node.Text(c.Data))
		case html.ElementNode:
			n, err := fromHTML(c)
			if err != nil {
				return nil, err
			}
			children = append(children, n)
		}
	}
	n, err := node.New(h.Data, attrs, children...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFragment, err.Error())
	}
	return n, nil
}

// QueryAll returns all nodes of the tree under n which match a CSS selector,
// in document order. n itself is a candidate as well.
func QueryAll(n *node.Node, selector string) ([]*node.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, err
	}
	h, index, err := build(n, make(map[*html.Node]*node.Node))
	if err != nil {
		return nil, err
	}
	matches := sel.MatchAll(h)
	result := make([]*node.Node, 0, len(matches))
	for _, m := range matches {
		result = append(result, index[m])
	}
	return result, nil
}
