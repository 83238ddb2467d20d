/*
Package page renders converted node trees as complete HTML5 pages.

Node trees are bridged to gomponents: every element becomes a gomponents
element, every text a (escaped) gomponents text. Attribute values are
stringified as for serialization, with two exceptions: boolean attributes are
rendered in HTML fashion (present if true, omitted if false), and null values
are omitted.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package page

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uitree/node"
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

// tracer will return a tracer. We are tracing to 'uitree.page'
func tracer() tracing.Trace {
	return tracing.Select("uitree.page")
}

// Component creates a gomponents node for a node tree.
func Component(n *node.Node) g.Node {
	if n == nil || n.IsNull() {
		return g.Group(nil)
	}
	var nodes []g.Node
	for _, a := range n.Attrs() {
		switch v := a.Value.(type) {
		case nil:
		case bool:
			if v {
				nodes = append(nodes, g.Attr(a.Key))
			}
		default:
			nodes = append(nodes, g.Attr(a.Key, node.FormatValue(v)))
		}
	}
	for _, ch := range n.Children() {
		switch x := ch.(type) {
		case node.Text:
			nodes = append(nodes, g.Text(string(x)))
		case *node.Node:
			nodes = append(nodes, Component(x))
		}
	}
	return g.El(n.Tag(), nodes...)
}

// Document creates an HTML5 page with body as the content of the page body,
// linking the given stylesheets.
func Document(title string, body *node.Node, stylesheets ...string) g.Node {
	var head []g.Node
	for _, css := range stylesheets {
		head = append(head, h.Link(h.Rel("stylesheet"), h.Href(css)))
	}
	tracer().Debugf("creating page %q with %d stylesheets", title, len(stylesheets))
	return c.HTML5(c.HTML5Props{
		Title:    title,
		Language: "en",
		Head:     head,
		Body:     []g.Node{Component(body)},
	})
}

// Render writes an HTML5 page for body.
func Render(w io.Writer, title string, body *node.Node, stylesheets ...string) error {
	return Document(title, body, stylesheets...).Render(w)
}
