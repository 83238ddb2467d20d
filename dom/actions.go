package dom

import (
	"golang.org/x/net/html"
)

// Predicate matches HTML nodes while walking a DOM.
type Predicate func(*html.Node) bool

// NodeIsText is a predicate to match text-nodes of a DOM.
var NodeIsText Predicate = func(n *html.Node) bool {
	return n.Type == html.TextNode
}

// NodeIsElement returns a predicate matching elements with a given tag.
func NodeIsElement(tag string) Predicate {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

// Walk collects the nodes of the DOM under n which match pred, depth-first in
// document order.
func Walk(n *html.Node, pred Predicate) []*html.Node {
	var matches []*html.Node
	var walk func(*html.Node)
	walk = func(h *html.Node) {
		if pred(h) {
			matches = append(matches, h)
		}
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	if n != nil {
		walk(n)
	}
	return matches
}

// TextNodes returns all text nodes under n, in document order.
func TextNodes(n *html.Node) []*html.Node {
	return Walk(n, NodeIsText)
}
