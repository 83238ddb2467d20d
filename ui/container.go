package ui

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/uitree/node"
)

// Composite is implemented by descriptors owning child descriptors.
type Composite interface {
	Element
	Items() []Element
	Add(elems ...Element) error
	RenderedItems() ([]*node.Node, error)
}

// Container is a descriptor owning an ordered list of child descriptors.
// A descriptor may be owned by one container only.
type Container struct {
	Base
	items []Element
}

var _ Composite = &Container{}

// NewContainer creates a generic container with items as its children.
func NewContainer(p Params, items ...Element) (*Container, error) {
	c := &Container{}
	c.Configure(p)
	if err := c.Finish(); err != nil {
		return nil, fmt.Errorf("container: %w", err)
	}
	if err := c.Add(items...); err != nil {
		return nil, err
	}
	return c, nil
}

// Items returns the child descriptors in order.
func (c *Container) Items() []Element {
	r := make([]Element, len(c.items))
	copy(r, c.items)
	return r
}

// Add appends elements, preserving order. The container becomes the sole owner
// of the elements. Add fails with ErrOwnership, without adding anything, if an
// element is already owned by a container, or if adding it would create a
// cycle.
func (c *Container) Add(elems ...Element) error {
	self := c.core()
	for i, e := range elems {
		if e == nil {
			return fmt.Errorf("%w: element #%d is nil", ErrType, i)
		}
		eb := e.core()
		if eb.owner != nil {
			return fmt.Errorf("%w: element %q", ErrOwnership, eb.name)
		}
		for o := self; o != nil; o = o.owner {
			if o == eb {
				return fmt.Errorf("%w: element %q would contain itself", ErrOwnership, eb.name)
			}
		}
		for _, prev := range elems[:i] {
			if prev.core() == eb {
				return fmt.Errorf("%w: element %q added twice", ErrOwnership, eb.name)
			}
		}
	}
	for _, e := range elems {
		e.core().owner = self
		c.items = append(c.items, e)
	}
	return nil
}

// RenderedItems renders all child descriptors, in order.
func (c *Container) RenderedItems() ([]*node.Node, error) {
	r := make([]*node.Node, 0, len(c.items))
	for _, e := range c.items {
		n, err := e.Render()
		if err != nil {
			return nil, err
		}
		r = append(r, n)
	}
	return r, nil
}

// Render renders a generic container with tag "container".
func (c *Container) Render() (*node.Node, error) {
	return c.renderAs("container", c.ExtendAttributes(nil))
}

// renderAs creates a node with the rendered items as children, preceded by lead.
func (c *Container) renderAs(tag string, attrs node.Attrs, lead ...node.Child) (*node.Node, error) {
	items, err := c.RenderedItems()
	if err != nil {
		return nil, err
	}
	children := make(node.Children, 0, len(lead)+len(items))
	children = append(children, lead...)
	for _, n := range items {
		children = append(children, n)
	}
	return node.New(tag, attrs, children...)
}

// --- Layout containers -----------------------------------------------------

// Row is a container laying out its items horizontally.
type Row struct {
	Container
}

// NewRow creates a row with items as its children.
func NewRow(p Params, items ...Element) (*Row, error) {
	r := &Row{}
	if err := r.init("row", p, items); err != nil {
		return nil, err
	}
	return r, nil
}

// Render renders a row with tag "row".
func (r *Row) Render() (*node.Node, error) {
	return r.renderAs("row", r.ExtendAttributes(nil))
}

// Column is a container laying out its items vertically.
type Column struct {
	Container
}

// NewColumn creates a column with items as its children.
func NewColumn(p Params, items ...Element) (*Column, error) {
	col := &Column{}
	if err := col.init("column", p, items); err != nil {
		return nil, err
	}
	return col, nil
}

// Render renders a column with tag "column".
func (col *Column) Render() (*node.Node, error) {
	return col.renderAs("column", col.ExtendAttributes(nil))
}

// Block is a container without layout semantics of its own.
type Block struct {
	Container
}

// NewBlock creates a block with items as its children.
func NewBlock(p Params, items ...Element) (*Block, error) {
	blk := &Block{}
	if err := blk.init("block", p, items); err != nil {
		return nil, err
	}
	return blk, nil
}

// Render renders a block with tag "block".
func (blk *Block) Render() (*node.Node, error) {
	return blk.renderAs("block", blk.ExtendAttributes(nil))
}

func (c *Container) init(kind string, p Params, items []Element) error {
	c.Configure(p)
	if err := c.Finish(); err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	return c.Add(items...)
}
