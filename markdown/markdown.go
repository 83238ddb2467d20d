package markdown

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/uitree/node"
	"github.com/npillmayer/uitree/ui"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Kind is the kind name of Markdown descriptors in a ui.Registry.
const Kind = "markdown"

// Markdown is a descriptor for a Markdown text. Parameters:
//
//    source  Markdown text, default is the text given to New
//    gfm     enable strikethrough and autolinks, default false
//
// It renders as a "block" holding the rendered Markdown elements.
type Markdown struct {
	ui.Base
	source []byte
	gfm    bool
	doc    ast.Node
}

// New creates a Markdown descriptor for src.
func New(src string, p ui.Params) (*Markdown, error) {
	md := &Markdown{}
	md.Configure(p)
	md.source = []byte(ui.Param(&md.Base, "source", src))
	md.gfm = ui.Param(&md.Base, "gfm", false)
	if err := md.Finish(); err != nil {
		return nil, fmt.Errorf("markdown: %w", err)
	}
	var opts []goldmark.Option
	if md.gfm {
		opts = append(opts, goldmark.WithExtensions(extension.Strikethrough, extension.Linkify))
	}
	md.doc = goldmark.New(opts...).Parser().Parse(text.NewReader(md.source))
	tracer().Debugf("parsed %d bytes of Markdown", len(md.source))
	return md, nil
}

// Register adds the Markdown kind to reg.
func Register(reg *ui.Registry) {
	reg.Register(Kind, func(p ui.Params) (ui.Element, error) {
		md, err := New("", p)
		if err != nil {
			return nil, err
		}
		return md, nil
	})
}

// Source returns the Markdown text.
func (md *Markdown) Source() string {
	return string(md.source)
}

// Render is part of interface ui.Element.
func (md *Markdown) Render() (*node.Node, error) {
	r := renderer{source: md.source}
	children, err := r.children(md.doc)
	if err != nil {
		return nil, err
	}
	return node.New("block", md.ExtendAttributes(nil), children...)
}

// renderer maps AST nodes onto abstract nodes.
type renderer struct {
	source []byte
}

func (r renderer) children(parent ast.Node) (node.Children, error) {
	var children node.Children
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		chs, err := r.render(c)
		if err != nil {
			return nil, err
		}
		for _, ch := range chs {
			children = appendMerged(children, ch)
		}
	}
	return children, nil
}

// appendMerged appends ch, merging adjacent text.
func appendMerged(children node.Children, ch node.Child) node.Children {
	if t, ok := ch.(node.Text); ok && len(children) > 0 {
		if prev, ok := children[len(children)-1].(node.Text); ok {
			children[len(children)-1] = prev + t
			return children
		}
	}
	return append(children, ch)
}

func (r renderer) element(tag string, attrs node.Attrs, n ast.Node) (node.Children, error) {
	children, err := r.children(n)
	if err != nil {
		return nil, err
	}
	el, err := node.New(tag, attrs, children...)
	if err != nil {
		return nil, err
	}
	return node.Children{el}, nil
}

func (r renderer) leaf(tag string, attrs node.Attrs, children ...node.Child) (node.Children, error) {
	el, err := node.New(tag, attrs, children...)
	if err != nil {
		return nil, err
	}
	return node.Children{el}, nil
}

func (r renderer) render(n ast.Node) (node.Children, error) {
	switch x := n.(type) {
	case *ast.Heading:
		return r.element("heading", node.Attrs{{Key: "level", Value: x.Level}}, x)
	case *ast.Paragraph:
		return r.element("paragraph", nil, x)
	case *ast.TextBlock:
		return r.children(x)
	case *ast.Text:
		t := node.Children{node.Text(x.Segment.Value(r.source))}
		if x.HardLineBreak() {
			br, _ := node.New("line-break", nil)
			return append(t, br), nil
		} else if x.SoftLineBreak() {
			t = append(t, node.Text("\n"))
		}
		return t, nil
	case *ast.String:
		return node.Children{node.Text(x.Value)}, nil
	case *ast.Emphasis:
		typ := ui.TextTagItalic
		if x.Level >= 2 {
			typ = ui.TextTagBold
		}
		return r.element("text-tag", node.Attrs{{Key: "type", Value: typ}}, x)
	case *east.Strikethrough:
		return r.element("text-tag", node.Attrs{{Key: "type", Value: ui.TextTagStrike}}, x)
	case *ast.CodeSpan:
		return r.leaf("code-text", nil, node.Text(x.Text(r.source)))
	case *ast.FencedCodeBlock:
		var attrs node.Attrs
		if lang := x.Language(r.source); len(lang) > 0 {
			attrs = node.Attrs{{Key: "style", Value: "language-" + string(lang)}}
		}
		return r.codeBlock(x, attrs)
	case *ast.CodeBlock:
		return r.codeBlock(x, nil)
	case *ast.Link:
		attrs := node.Attrs{{Key: "href", Value: string(x.Destination)}}
		return r.element("link", attrs, x)
	case *ast.AutoLink:
		url := string(x.URL(r.source))
		if x.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(url, "mailto:") {
			url = "mailto:" + url
		}
		attrs := node.Attrs{{Key: "href", Value: url}}
		return r.leaf("link", attrs, node.Text(x.Label(r.source)))
	case *ast.Image:
		attrs := node.Attrs{
			{Key: "alt", Value: string(x.Text(r.source))},
			{Key: "title", Value: string(x.Title)},
		}
		return r.leaf("image", attrs, node.Text(x.Destination))
	case *ast.ThematicBreak:
		return r.leaf("separator", nil)
	case *ast.List:
		return r.element("list", node.Attrs{{Key: "ordered", Value: x.IsOrdered()}}, x)
	case *ast.ListItem:
		return r.element("list-item", nil, x)
	case *ast.Blockquote:
		return r.element("quote-block", nil, x)
	case *ast.HTMLBlock, *ast.RawHTML:
		tracer().Infof("dropping raw HTML from Markdown")
		return nil, nil
	}
	tracer().Debugf("flattening unknown Markdown node %s", n.Kind().String())
	return r.children(n)
}

// codeBlock renders as raw text holding code.
func (r renderer) codeBlock(n ast.Node, attrs node.Attrs) (node.Children, error) {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(r.source))
	}
	code, err := node.New("code-text", attrs, node.Text(sb.String()))
	if err != nil {
		return nil, err
	}
	return r.leaf("raw-text", nil, code)
}
