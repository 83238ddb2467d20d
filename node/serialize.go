package node

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	tp "github.com/xlab/treeprint"
)

// ToXML serializes a tree in XML-like notation. Nodes without children are
// written in self-closing form. No escaping is performed.
func (n *Node) ToXML() string {
	var sb strings.Builder
	n.writeXML(&sb)
	return sb.String()
}

func (n *Node) writeXML(sb *strings.Builder) {
	n.openTag(sb)
	if len(n.children) == 0 {
		sb.WriteString("/>")
		return
	}
	sb.WriteByte('>')
	for _, ch := range n.children {
		switch c := ch.(type) {
		case Text:
			sb.WriteString(string(c))
		case *Node:
			c.writeXML(sb)
		}
	}
	sb.WriteString("</")
	sb.WriteString(n.tag)
	sb.WriteByte('>')
}

func (n *Node) openTag(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(n.tag)
	if len(n.attrs) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(n.attrs.String())
	}
}

// String is a short debug representation of a node. Children are not expanded
// but represented by a literal "<...>".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var sb strings.Builder
	n.openTag(&sb)
	if len(n.children) == 0 {
		sb.WriteString("/>")
		return sb.String()
	}
	sb.WriteString("><...></")
	sb.WriteString(n.tag)
	sb.WriteByte('>')
	return sb.String()
}

// TreeString serializes a tree with one line per node. Each line holds the tag
// and its attributes in parentheses; nodes with children add a colon, followed
// by the children on separate lines, prefixed by indent. The indent doubles with
// each level of nesting. Text children are quoted.
func (n *Node) TreeString(indent string) string {
	var sb strings.Builder
	n.writeTree(&sb, indent)
	return sb.String()
}

func (n *Node) writeTree(sb *strings.Builder, indent string) {
	sb.WriteString(n.tag)
	sb.WriteString(" (")
	sb.WriteString(n.attrs.String())
	sb.WriteByte(')')
	if len(n.children) == 0 {
		return
	}
	sb.WriteByte(':')
	for _, ch := range n.children {
		sb.WriteByte('\n')
		sb.WriteString(indent)
		switch c := ch.(type) {
		case Text:
			sb.WriteByte('"')
			sb.WriteString(string(c))
			sb.WriteByte('"')
		case *Node:
			c.writeTree(sb, indent+indent)
		}
	}
}

// --- Pretty printing -------------------------------------------------------

// Print returns a tree drawing of n, intended for humans.
func Print(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	t := tp.New()
	t.SetValue(label(n))
	printChildren(t, n)
	return t.String()
}

func printChildren(t tp.Tree, n *Node) {
	for _, ch := range n.children {
		switch c := ch.(type) {
		case Text:
			t.AddNode(`"` + string(c) + `"`)
		case *Node:
			if len(c.children) == 0 {
				t.AddNode(label(c))
				continue
			}
			printChildren(t.AddBranch(label(c)), c)
		}
	}
}

func label(n *Node) string {
	if len(n.attrs) == 0 {
		return n.tag
	}
	return n.tag + " " + n.attrs.String()
}
