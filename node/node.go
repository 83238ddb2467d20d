package node

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// ErrValidation is flagged if a node is constructed from fields of the wrong kind.
var ErrValidation = errors.New("node validation failed")

// ErrRequiredField is flagged if a mandatory node field is missing.
var ErrRequiredField = errors.New("required node field missing")

// NullTag is the tag of nodes signaling "not renderable".
const NullTag = "#null"

// Child is an element of a node's children list: either Text or *Node.
type Child interface {
	isChild()
}

// Text is a text leaf of a tree.
type Text string

func (Text) isChild() {}

// Children is an ordered list of children.
type Children []Child

// Node is an immutable tree value.
//
// Nodes are created with New and never change afterwards. Accessors return
// copies of the attribute and children lists.
type Node struct {
	tag      string
	attrs    Attrs
	children Children
}

func (*Node) isChild() {}

// New creates a node from a tag, a list of attributes and children.
// Attributes and children are copied.
//
// Construction fails with ErrValidation if tag is not a valid markup name,
// if attribute keys are empty or duplicate, if an attribute value is not a
// scalar, or if a child is nil or a node appears more than once anywhere in
// the new tree.
func New(tag string, attrs Attrs, children ...Child) (*Node, error) {
	if !IsValidTag(tag) {
		return nil, fmt.Errorf("%w: invalid tag name %q", ErrValidation, tag)
	}
	if err := attrs.validate(); err != nil {
		return nil, fmt.Errorf("<%s>: %w", tag, err)
	}
	var seen map[*Node]bool
	for i, ch := range children {
		switch c := ch.(type) {
		case Text:
		case *Node:
			if c == nil {
				return nil, fmt.Errorf("%w: <%s> has nil child at position %d", ErrValidation, tag, i)
			}
			if seen == nil {
				seen = make(map[*Node]bool, len(children))
			}
			if dup := c.mark(seen); dup != nil {
				return nil, fmt.Errorf("%w: <%s> child <%s> owned twice", ErrValidation, tag, dup.tag)
			}
		default:
			return nil, fmt.Errorf("%w: <%s> has child of type %T at position %d",
				ErrValidation, tag, ch, i)
		}
	}
	n := &Node{tag: tag, attrs: attrs.Clone()}
	if len(children) > 0 {
		n.children = make(Children, len(children))
		copy(n.children, children)
	}
	return n, nil
}

// mark adds n and its descendants to seen and returns the first node found
// already present.
func (n *Node) mark(seen map[*Node]bool) *Node {
	if seen[n] {
		return n
	}
	seen[n] = true
	for _, ch := range n.children {
		if c, ok := ch.(*Node); ok {
			if dup := c.mark(seen); dup != nil {
				return dup
			}
		}
	}
	return nil
}

// Must is a helper wrapping a call to New. It panics on error.
func Must(n *Node, err error) *Node {
	if err != nil {
		panic(err)
	}
	return n
}

// Null returns a node signaling "not renderable": tag "#null", neither
// attributes nor children. Every call returns a fresh node.
func Null() *Node {
	return &Node{tag: NullTag}
}

// IsNull is a predicate for nodes created by Null.
func (n *Node) IsNull() bool {
	return n != nil && n.tag == NullTag
}

// Tag returns the tag name of a node.
func (n *Node) Tag() string {
	return n.tag
}

// Attrs returns a copy of the node's attributes.
func (n *Node) Attrs() Attrs {
	return n.attrs.Clone()
}

// Attr returns the value of attribute key.
func (n *Node) Attr(key string) (any, bool) {
	return n.attrs.Get(key)
}

// Children returns a copy of the node's children.
func (n *Node) Children() Children {
	if len(n.children) == 0 {
		return nil
	}
	c := make(Children, len(n.children))
	copy(c, n.children)
	return c
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns child #i or nil, if i is out of range.
func (n *Node) Child(i int) Child {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Equal checks two trees for structural equality.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.tag != b.tag || len(a.attrs) != len(b.attrs) || len(a.children) != len(b.children) {
		return false
	}
	for i := range a.attrs {
		if a.attrs[i] != b.attrs[i] {
			return false
		}
	}
	for i := range a.children {
		switch ca := a.children[i].(type) {
		case Text:
			if cb, ok := b.children[i].(Text); !ok || ca != cb {
				return false
			}
		case *Node:
			cb, ok := b.children[i].(*Node)
			if !ok || !Equal(ca, cb) {
				return false
			}
		}
	}
	return true
}

// IsValidTag checks if s is a syntactically valid markup name:
// a letter, '_' or ':', followed by letters, digits, '_', ':', '.' or '-'.
func IsValidTag(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == ':':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
