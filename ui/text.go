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

// Text tag types. A conversion engine unable to express a type renders the
// text like TextTagNone.
const (
	TextTagNone        = "none"
	TextTagNormal      = "normal"
	TextTagCustom      = "custom"
	TextTagLink        = "link"
	TextTagBold        = "bold"
	TextTagItalic      = "italic"
	TextTagUnderline   = "underline"
	TextTagStrike      = "strike"
	TextTagSuperline   = "superline"
	TextTagQuote       = "quote"
	TextTagSubscript   = "subscript"
	TextTagSuperscript = "superscript"
	TextTagSmall       = "small"
	TextTagBig         = "big"
	TextTagSerif       = "serif"
	TextTagSansSerif   = "sans-serif"
	TextTagMonospace   = "monospace"
)

// TextTag formats a single run of text.
//
// A text tag has no children. To apply more than one format to a text, text
// tags are mixed: the mixed-in tag replaces the text of the outer tag.
//
// Parameters:
//
//    type   one of the TextTag… constants, default TextTagNone
//    text   the text, default ""
//    href   target for TextTagLink, default "#"
type TextTag struct {
	Base
	typ   string
	text  string
	href  string
	mixed *TextTag
}

// NewTextTag creates a text tag.
func NewTextTag(p Params) (*TextTag, error) {
	t := &TextTag{}
	t.Configure(p)
	t.typ = Param(&t.Base, "type", TextTagNone)
	t.text = Param(&t.Base, "text", "")
	t.href = Param(&t.Base, "href", "#")
	if err := t.Finish(); err != nil {
		return nil, fmt.Errorf("text-tag: %w", err)
	}
	return t, nil
}

// Text returns the text of the tag, or "" for mixed tags.
func (t *TextTag) Text() string {
	if t.mixed != nil {
		return ""
	}
	return t.text
}

// SetText sets the text of the tag, undoing a mix.
func (t *TextTag) SetText(s string) {
	t.text = s
	t.mixed = nil
}

// Mix replaces the text of t by the text tag inner. inner must not contain t.
func (t *TextTag) Mix(inner *TextTag) error {
	for m := inner; m != nil; m = m.mixed {
		if m == t {
			return fmt.Errorf("%w: text tag cannot be mixed into itself", ErrOwnership)
		}
	}
	t.mixed = inner
	return nil
}

// Mixed returns the mixed-in text tag, if any.
func (t *TextTag) Mixed() *TextTag {
	return t.mixed
}

// ExtendAttributes adds "type" and "href".
func (t *TextTag) ExtendAttributes(base node.Attrs) node.Attrs {
	return t.Base.ExtendAttributes(base).Set("type", t.typ).Set("href", t.href)
}

// Render renders a node with tag "text-tag". Its single child is either the
// text or the rendered mixed-in tag.
func (t *TextTag) Render() (*node.Node, error) {
	if t.mixed == nil {
		return node.New("text-tag", t.ExtendAttributes(nil), node.Text(t.text))
	}
	inner, err := t.mixed.Render()
	if err != nil {
		return nil, err
	}
	return node.New("text-tag", t.ExtendAttributes(nil), inner)
}

// --- Text views ------------------------------------------------------------

// TextFormat selects the presentation of a text section.
type TextFormat int

// Text section formats.
const (
	TextNormal   TextFormat = 1 // whitespace may collapse
	TextRaw      TextFormat = 2 // displayed as-is
	TextCode     TextFormat = 3 // computer code
	TextTitle    TextFormat = 4
	TextSubtitle TextFormat = 5
	TextSecTitle TextFormat = 6
)

var textFormatTags = map[TextFormat]string{
	TextNormal:   "paragraph",
	TextRaw:      "raw-text",
	TextCode:     "code-text",
	TextTitle:    "title",
	TextSubtitle: "subtitle",
	TextSecTitle: "sectiontitle",
}

// TextView is a read-only, possibly multi-line text viewer. It holds text
// sections, text tags, images and other text views.
type TextView struct {
	Container
}

// NewTextView creates a text view with items as content.
func NewTextView(p Params, items ...Element) (*TextView, error) {
	tv := &TextView{}
	if err := tv.init("text", p, items); err != nil {
		return nil, err
	}
	return tv, nil
}

// AddText appends a text section in format f.
func (tv *TextView) AddText(text string, f TextFormat) error {
	sec, err := NewTextSection(Params{"text": text, "fmt": int(f)})
	if err != nil {
		return err
	}
	return tv.Add(sec)
}

// Render renders a node with tag "text".
func (tv *TextView) Render() (*node.Node, error) {
	return tv.renderAs("text", tv.ExtendAttributes(nil))
}

// TextSection is a section of raw text with a format.
//
// Parameters:
//
//    text   the text, default ""
//    fmt    a TextFormat, default TextNormal
type TextSection struct {
	Base
	text   string
	format TextFormat
}

// NewTextSection creates a text section.
func NewTextSection(p Params) (*TextSection, error) {
	sec := &TextSection{}
	sec.Configure(p)
	sec.text = Param(&sec.Base, "text", "")
	sec.format = TextFormat(Param(&sec.Base, "fmt", int(TextNormal)))
	if _, ok := textFormatTags[sec.format]; !ok {
		sec.fail(fmt.Errorf("%w: parameter \"fmt\" must be 1…6, is %d", ErrType, sec.format))
	}
	if err := sec.Finish(); err != nil {
		return nil, fmt.Errorf("text section: %w", err)
	}
	return sec, nil
}

// Format returns the format of the section.
func (sec *TextSection) Format() TextFormat { return sec.format }

// Render renders a node with a tag depending on the format, e.g. "paragraph"
// for TextNormal.
func (sec *TextSection) Render() (*node.Node, error) {
	return node.New(textFormatTags[sec.format], sec.ExtendAttributes(nil), node.Text(sec.text))
}
