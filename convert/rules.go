package convert

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

func (e *Engine) setupRules() {
	v := e.vocab
	for src, target := range v.Renames {
		e.rules[src] = rename(target)
	}
	for src, target := range v.Entries {
		e.rules[src] = entryRule(target)
	}
	e.rules["heading"] = e.heading
	e.rules["button"] = e.button
	e.rules["label"] = e.label
	e.rules["link"] = e.link
	e.rules["frame"] = e.frame
	e.rules["form"] = e.form
	e.rules["text-tag"] = e.textTag
	e.rules["image"] = e.image
	e.rules["list"] = e.list
}

// attr returns the value of a source attribute, or def if it is absent.
func attr(src *node.Node, key string, def any) any {
	if v, ok := src.Attr(key); ok {
		return v
	}
	return def
}

func attrString(src *node.Node, key string, def string) string {
	return node.FormatValue(attr(src, key, def))
}

func rename(target string) Rule {
	return func(_ *node.Node, _ Context, children node.Children) (Result, error) {
		return Result{Tag: target, Children: children}, nil
	}
}

func (e *Engine) heading(src *node.Node, _ Context, children node.Children) (Result, error) {
	tag := e.vocab.HeadingPrefix + attrString(src, "level", "1")
	return Result{Tag: tag, Children: children}, nil
}

func (e *Engine) button(src *node.Node, _ Context, children node.Children) (Result, error) {
	typ := attr(src, "type", "button")
	if node.FormatValue(typ) == "link" {
		return Result{
			Tag:      e.vocab.Hyperlink,
			Attrs:    node.Attrs{{Key: "href", Value: attr(src, "href", "#")}},
			Children: children,
		}, nil
	}
	return Result{
		Tag:      e.vocab.Button,
		Attrs:    node.Attrs{{Key: "type", Value: typ}},
		Children: children,
	}, nil
}

func (e *Engine) label(_ *node.Node, ctx Context, children node.Children) (Result, error) {
	if ctx.InsideForm {
		return Result{Tag: e.vocab.FormLabel, Children: children}, nil
	}
	return Result{Tag: e.vocab.Span, Children: children}, nil
}

func (e *Engine) link(src *node.Node, _ Context, children node.Children) (Result, error) {
	return Result{
		Tag:      e.vocab.Hyperlink,
		Attrs:    node.Attrs{{Key: "href", Value: attr(src, "href", "#")}},
		Children: children,
	}, nil
}

// frame prepends a caption holding the title: a legend within forms, a
// centered box otherwise.
func (e *Engine) frame(src *node.Node, ctx Context, children node.Children) (Result, error) {
	title := node.Text(attrString(src, "title", ""))
	var tag string
	var caption *node.Node
	var err error
	if ctx.InsideForm {
		tag = e.vocab.Fieldset
		caption, err = node.New(e.vocab.Legend, nil, title)
	} else {
		tag = e.vocab.Box
		var attrs node.Attrs
		for _, k := range sortedKeys(e.vocab.CaptionAttrs) {
			attrs = append(attrs, node.Attr{Key: k, Value: e.vocab.CaptionAttrs[k]})
		}
		caption, err = node.New(e.vocab.Caption, attrs, title)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{
		Tag:      tag,
		Children: append(node.Children{caption}, children...),
	}, nil
}

func (e *Engine) form(src *node.Node, _ Context, children node.Children) (Result, error) {
	return Result{
		Tag: e.vocab.Form,
		Attrs: node.Attrs{
			{Key: "action", Value: attr(src, "act", "#")},
			{Key: "method", Value: attr(src, "method", "#")},
		},
		Children: children,
	}, nil
}

func (e *Engine) textTag(src *node.Node, _ Context, children node.Children) (Result, error) {
	typ := attrString(src, "type", "none")
	if typ == "link" {
		return Result{
			Tag:      e.vocab.Hyperlink,
			Attrs:    node.Attrs{{Key: "href", Value: attr(src, "href", "#")}},
			Children: children,
		}, nil
	}
	tag, ok := e.vocab.TextTags[typ]
	if !ok {
		tag = e.vocab.TextTagDefault
	}
	return Result{Tag: tag, Children: children}, nil
}

// entryRule creates the rule for a member of the entry family. A radio or
// check group becomes the input's name, unless a form name is given.
func entryRule(target EntryTarget) Rule {
	return func(src *node.Node, _ Context, children node.Children) (Result, error) {
		var attrs node.Attrs
		if target.Type != "" {
			attrs = attrs.Set("type", target.Type)
		}
		if g, ok := src.Attr("group"); ok && g != nil {
			attrs = attrs.Set("name", g)
		}
		for _, m := range [...]struct{ from, to string }{
			{"form_name", "name"},
			{"required", "required"},
			{"placeholder", "placeholder"},
		} {
			if v, ok := src.Attr(m.from); ok && v != nil {
				attrs = attrs.Set(m.to, v)
			}
		}
		return Result{Tag: target.Tag, Attrs: attrs, Children: children}, nil
	}
}

// image copies geometry and descriptions, even if absent, and takes the
// source from the first source child, which is never converted.
func (e *Engine) image(src *node.Node, _ Context, _ node.Children) (Result, error) {
	var attrs node.Attrs
	for _, k := range []string{"width", "height", "alt", "title"} {
		attrs = append(attrs, node.Attr{Key: k, Value: attr(src, k, nil)})
	}
	data, ok := src.Child(0).(node.Text)
	if !ok {
		return Result{}, fmt.Errorf("%w: first child has to be text", ErrImageSource)
	}
	attrs = append(attrs, node.Attr{Key: "src", Value: string(data)})
	return Result{Tag: e.vocab.Image, Attrs: attrs}, nil
}

func (e *Engine) list(src *node.Node, _ Context, children node.Children) (Result, error) {
	if ordered, _ := attr(src, "ordered", false).(bool); ordered {
		return Result{Tag: e.vocab.OrderedList, Children: children}, nil
	}
	return Result{Tag: e.vocab.UnorderedList, Children: children}, nil
}
