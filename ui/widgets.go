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

// --- Button ----------------------------------------------------------------

// Button is a clickable descriptor. Buttons of type "link" behave like
// hyperlinks.
//
// Parameters:
//
//    label     text of the button, default ""
//    type      "button" (default), "submit", "reset" or "link"
//    href      target for link-type buttons, default "#"
//    onclick   Handler for EventClick
type Button struct {
	Container
	label string
	typ   string
	href  string
}

// NewButton creates a button with items as additional content.
func NewButton(p Params, items ...Element) (*Button, error) {
	b := &Button{}
	b.Configure(p)
	b.label = Param(&b.Base, "label", "")
	b.typ = Param(&b.Base, "type", "button")
	b.href = Param(&b.Base, "href", "#")
	b.SupportEvent(EventClick, "onclick")
	if err := b.Finish(); err != nil {
		return nil, fmt.Errorf("button: %w", err)
	}
	if err := addItems(b, items); err != nil {
		return nil, err
	}
	return b, nil
}

// Label returns the text of the button.
func (b *Button) Label() string { return b.label }

// SetLabel sets the text of the button.
func (b *Button) SetLabel(l string) { b.label = l }

// Type returns the button type.
func (b *Button) Type() string { return b.typ }

// ExtendAttributes adds "type" and "href".
func (b *Button) ExtendAttributes(base node.Attrs) node.Attrs {
	return b.Container.ExtendAttributes(base).Set("type", b.typ).Set("href", b.href)
}

// Render renders a node with tag "button". The label precedes the items.
func (b *Button) Render() (*node.Node, error) {
	return b.renderAs("button", b.ExtendAttributes(nil), textLead(b.label)...)
}

// addItems adds items to c, passing through the error, if any.
func addItems(c Composite, items []Element) error {
	if len(items) == 0 {
		return nil
	}
	return c.Add(items...)
}

func textLead(s string) []node.Child {
	if s == "" {
		return nil
	}
	return []node.Child{node.Text(s)}
}

// --- Label -----------------------------------------------------------------

// Label is a descriptor for text labels. Labels may be associated with form
// controls.
//
// Parameters:
//
//    label   text of the label, default ""
//    form    true for labels of form controls, default false
type Label struct {
	Container
	label string
	form  bool
}

// NewLabel creates a label with items as additional content.
func NewLabel(p Params, items ...Element) (*Label, error) {
	l := &Label{}
	l.init(p)
	if err := l.Finish(); err != nil {
		return nil, fmt.Errorf("label: %w", err)
	}
	if err := addItems(l, items); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Label) init(p Params) {
	l.Configure(p)
	l.form = Param(&l.Base, "form", false)
	l.label = Param(&l.Base, "label", "")
}

// Text returns the text of the label.
func (l *Label) Text() string { return l.label }

// SetText sets the text of the label.
func (l *Label) SetText(s string) { l.label = s }

// ExtendAttributes adds "form".
func (l *Label) ExtendAttributes(base node.Attrs) node.Attrs {
	return l.Container.ExtendAttributes(base).Set("form", l.form)
}

// Render renders a node with tag "label". The text precedes the items.
func (l *Label) Render() (*node.Node, error) {
	return l.renderAs("label", l.ExtendAttributes(nil), textLead(l.label)...)
}

// --- Link ------------------------------------------------------------------

// Link is a label referencing a resource.
//
// Parameters: those of Label, plus
//
//    href   target of the link, default "#"
type Link struct {
	Label
	href string
}

// NewLink creates a link with items as additional content.
func NewLink(p Params, items ...Element) (*Link, error) {
	l := &Link{}
	l.Label.init(p)
	l.href = Param(&l.Base, "href", "#")
	if err := l.Finish(); err != nil {
		return nil, fmt.Errorf("link: %w", err)
	}
	if err := addItems(l, items); err != nil {
		return nil, err
	}
	return l, nil
}

// Href returns the target of the link.
func (l *Link) Href() string { return l.href }

// SetHref sets the target of the link.
func (l *Link) SetHref(href string) { l.href = href }

// ExtendAttributes adds "href" to the attributes of a label.
func (l *Link) ExtendAttributes(base node.Attrs) node.Attrs {
	return l.Label.ExtendAttributes(base).Set("href", l.href)
}

// Render renders a node with tag "link".
func (l *Link) Render() (*node.Node, error) {
	return l.renderAs("link", l.ExtendAttributes(nil), textLead(l.label)...)
}

// --- Frame -----------------------------------------------------------------

// Frame is a titled box around its items.
//
// Parameters:
//
//    title   caption of the frame, default ""
type Frame struct {
	Container
	title string
}

// NewFrame creates a frame around items.
func NewFrame(p Params, items ...Element) (*Frame, error) {
	f := &Frame{}
	f.Configure(p)
	f.title = Param(&f.Base, "title", "")
	if err := f.Finish(); err != nil {
		return nil, fmt.Errorf("frame: %w", err)
	}
	if err := addItems(f, items); err != nil {
		return nil, err
	}
	return f, nil
}

// Title returns the caption of the frame.
func (f *Frame) Title() string { return f.title }

// ExtendAttributes adds "title".
func (f *Frame) ExtendAttributes(base node.Attrs) node.Attrs {
	return f.Container.ExtendAttributes(base).Set("title", f.title)
}

// Render renders a node with tag "frame".
func (f *Frame) Render() (*node.Node, error) {
	return f.renderAs("frame", f.ExtendAttributes(nil))
}

// --- Form ------------------------------------------------------------------

// Form is a container for form controls.
//
// Parameters:
//
//    act        action URL, default ""
//    method     submission method, default "GET"
//    onsubmit   Handler for EventSubmit
type Form struct {
	Container
	act    string
	method string
}

// NewForm creates a form holding items.
func NewForm(p Params, items ...Element) (*Form, error) {
	f := &Form{}
	f.Configure(p)
	f.act = Param(&f.Base, "act", "")
	f.method = Param(&f.Base, "method", "GET")
	f.SupportEvent(EventSubmit, "onsubmit")
	if err := f.Finish(); err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}
	if err := addItems(f, items); err != nil {
		return nil, err
	}
	return f, nil
}

// ExtendAttributes adds "act" and "method".
func (f *Form) ExtendAttributes(base node.Attrs) node.Attrs {
	return f.Container.ExtendAttributes(base).Set("act", f.act).Set("method", f.method)
}

// Render renders a node with tag "form".
func (f *Form) Render() (*node.Node, error) {
	return f.renderAs("form", f.ExtendAttributes(nil))
}

// --- Separator -------------------------------------------------------------

// Separator orientations.
const (
	SeparatorH = 1
	SeparatorV = 2
)

// Separator is a horizontal or vertical rule.
//
// Parameters:
//
//    mode   SeparatorH (default) or SeparatorV
type Separator struct {
	Base
	mode int
}

// NewSeparator creates a separator.
func NewSeparator(p Params) (*Separator, error) {
	s := &Separator{}
	s.Configure(p)
	s.mode = Param(&s.Base, "mode", SeparatorH)
	if s.mode != SeparatorH && s.mode != SeparatorV {
		s.fail(fmt.Errorf("%w: parameter \"mode\" must be 1 or 2, is %d", ErrType, s.mode))
	}
	if err := s.Finish(); err != nil {
		return nil, fmt.Errorf("separator: %w", err)
	}
	return s, nil
}

// ExtendAttributes adds "mode".
func (s *Separator) ExtendAttributes(base node.Attrs) node.Attrs {
	return s.Base.ExtendAttributes(base).Set("mode", s.mode)
}

// Render renders a node with tag "separator".
func (s *Separator) Render() (*node.Node, error) {
	return node.New("separator", s.ExtendAttributes(nil))
}

// --- Heading ---------------------------------------------------------------

// Heading is a section heading of a given level.
//
// Parameters:
//
//    text    heading text, default ""
//    level   1 (default) to 6
type Heading struct {
	Base
	text  string
	level int
}

// NewHeading creates a heading.
func NewHeading(p Params) (*Heading, error) {
	h := &Heading{}
	h.Configure(p)
	h.text = Param(&h.Base, "text", "")
	h.level = Param(&h.Base, "level", 1)
	if h.level < 1 || h.level > 6 {
		h.fail(fmt.Errorf("%w: parameter \"level\" must be 1…6, is %d", ErrType, h.level))
	}
	if err := h.Finish(); err != nil {
		return nil, fmt.Errorf("heading: %w", err)
	}
	return h, nil
}

// ExtendAttributes adds "level".
func (h *Heading) ExtendAttributes(base node.Attrs) node.Attrs {
	return h.Base.ExtendAttributes(base).Set("level", h.level)
}

// Render renders a node with tag "heading".
func (h *Heading) Render() (*node.Node, error) {
	return node.New("heading", h.ExtendAttributes(nil), textLead(h.text)...)
}
