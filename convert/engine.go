package convert

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/npillmayer/uitree/node"
)

// Errors flagged by the conversion.
var (
	ErrUnsupportedTag    = errors.New("unsupported source tag")
	ErrReservedAttribute = errors.New("rule emitted a reserved attribute")
	ErrImageSource       = errors.New("image without source")
)

// Error is a conversion fault, carrying the path of source tags from the root
// to the offending node.
type Error struct {
	Path string // e.g. "form/frame/gizmo"
	Tag  string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("convert %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Context is handed down the recursion by value. Rules see the context of the
// node they convert; a form's children see a copy with InsideForm set.
type Context struct {
	InsideForm bool
	Depth      int
	path       string
}

// Path returns the source tags from the root down to the current node.
func (ctx Context) Path() string {
	return ctx.path
}

func (ctx Context) enter(tag string) Context {
	if ctx.path == "" {
		ctx.path = tag
	} else {
		ctx.path = ctx.path + "/" + tag
	}
	return ctx
}

// Result is what a rule resolves a source node to: the target tag, the
// attributes specific to the tag, and the children of the target node.
type Result struct {
	Tag      string
	Attrs    node.Attrs
	Children node.Children
}

// Rule converts a single source node. children holds the already converted
// children of src, which the rule usually passes on as they are.
type Rule func(src *node.Node, ctx Context, children node.Children) (Result, error)

// Option configures an Engine.
type Option func(*Engine)

// WithPassthrough lets the engine copy source nodes without a rule, instead of
// failing with ErrUnsupportedTag.
func WithPassthrough() Option {
	return func(e *Engine) {
		e.passthrough = true
	}
}

// Opaque declares source tags whose children are not converted, because their
// rule reads the raw source children.
func Opaque(tags ...string) Option {
	return func(e *Engine) {
		for _, t := range tags {
			e.opaque[t] = true
		}
	}
}

// Engine converts abstract node trees into the vocabulary it has been created
// with. An engine is immutable after its rules have been set up and may be
// used concurrently.
type Engine struct {
	vocab       Vocabulary
	rules       map[string]Rule
	opaque      map[string]bool
	passthrough bool
}

// NewEngine creates an engine with rules for all abstract tags, targeting
// vocabulary v.
func NewEngine(v Vocabulary, opts ...Option) *Engine {
	e := &Engine{
		vocab:  v.clone(),
		rules:  make(map[string]Rule),
		opaque: map[string]bool{"image": true},
	}
	e.setupRules()
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Vocabulary returns the target vocabulary of e.
func (e *Engine) Vocabulary() Vocabulary {
	return e.vocab.clone()
}

// Handle sets the rule for a source tag, replacing a previous one.
// Handle has to be called before the engine is used for conversions.
func (e *Engine) Handle(tag string, r Rule) {
	e.rules[tag] = r
}

// Convert converts a tree of abstract nodes. The source tree is left
// untouched. The first fault aborts the whole conversion.
func (e *Engine) Convert(n *node.Node) (*node.Node, error) {
	if n == nil {
		return nil, &Error{Err: fmt.Errorf("%w: nil node", node.ErrValidation)}
	}
	r, err := e.convert(n, Context{})
	if err != nil {
		tracer().Errorf("conversion failed: %v", err)
		return nil, err
	}
	return r, nil
}

// ToXML converts n and serializes the result.
func (e *Engine) ToXML(n *node.Node) (string, error) {
	r, err := e.Convert(n)
	if err != nil {
		return "", err
	}
	return r.ToXML(), nil
}

func (e *Engine) convert(n *node.Node, ctx Context) (*node.Node, error) {
	tag := n.Tag()
	ctx = ctx.enter(tag)
	rule, ok := e.rules[tag]
	if !ok {
		if !e.passthrough || n.IsNull() {
			return nil, &Error{Path: ctx.path, Tag: tag, Err: ErrUnsupportedTag}
		}
		tracer().Debugf("passing through unsupported tag %s", ctx.path)
		rule = passthrough
	}
	var children node.Children
	if !e.opaque[tag] {
		inner := ctx
		inner.Depth++
		if tag == "form" {
			inner.InsideForm = true
		}
		children = make(node.Children, 0, n.ChildCount())
		for _, ch := range n.Children() {
			switch c := ch.(type) {
			case node.Text:
				children = append(children, c)
			case *node.Node:
				cc, err := e.convert(c, inner)
				if err != nil {
					return nil, err
				}
				children = append(children, cc)
			}
		}
	}
	res, err := rule(n, ctx, children)
	if err != nil {
		return nil, wrap(ctx, tag, err)
	}
	for _, k := range reserved {
		if res.Attrs.Has(k) {
			return nil, wrap(ctx, tag, fmt.Errorf("%w: %s", ErrReservedAttribute, k))
		}
	}
	attrs := provenance(n, res.Attrs.Clone())
	r, err := node.New(res.Tag, attrs, res.Children...)
	if err != nil {
		return nil, wrap(ctx, tag, err)
	}
	return r, nil
}

func wrap(ctx Context, tag string, err error) error {
	var cerr *Error
	if errors.As(err, &cerr) {
		return err
	}
	return &Error{Path: ctx.path, Tag: tag, Err: err}
}

// Target attribute keys set by the universal provenance rules only.
var reserved = []string{"class", "id", "style"}

// provenance appends the universal attributes, in order:
// style → class, name → id, css → style.
func provenance(src *node.Node, attrs node.Attrs) node.Attrs {
	for _, m := range [...]struct{ from, to string }{
		{"style", "class"},
		{"name", "id"},
		{"css", "style"},
	} {
		v, ok := src.Attr(m.from)
		if !ok || v == nil {
			continue
		}
		s := node.FormatValue(v)
		if strings.TrimSpace(s) != "" {
			attrs = attrs.Set(m.to, s)
		}
	}
	return attrs
}

// passthrough copies the source tag and its attributes, leaving provenance
// keys to the universal rules.
func passthrough(src *node.Node, _ Context, children node.Children) (Result, error) {
	var attrs node.Attrs
	for _, a := range src.Attrs() {
		switch a.Key {
		case "style", "name", "css", "class", "id":
		default:
			attrs = append(attrs, a)
		}
	}
	return Result{Tag: src.Tag(), Attrs: attrs, Children: children}, nil
}

// --- HTML ------------------------------------------------------------------

// HTMLEngine returns a new engine for the HTML vocabulary. Clients may
// register handlers with it without affecting Convert and ToXML.
func HTMLEngine() *Engine {
	return NewEngine(HTML())
}

// htmlEngine backs Convert and ToXML and is never handed out.
var htmlEngine *Engine
var initHTML sync.Once

func sharedEngine() *Engine {
	initHTML.Do(func() {
		htmlEngine = NewEngine(HTML())
	})
	return htmlEngine
}

// Convert converts an abstract node tree into HTML nodes.
func Convert(n *node.Node) (*node.Node, error) {
	return sharedEngine().Convert(n)
}

// ToXML converts an abstract node tree into HTML and serializes it.
func ToXML(n *node.Node) (string, error) {
	return sharedEngine().ToXML(n)
}
