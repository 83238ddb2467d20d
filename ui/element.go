package ui

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/npillmayer/uitree/node"
	"github.com/npillmayer/uitree/style"
)

// Errors flagged by descriptors.
var (
	ErrType             = errors.New("parameter value of wrong type")
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrUnknownEvent     = errors.New("event not supported")
	ErrOwnership        = errors.New("element already owned")
	ErrUnknownKind      = errors.New("unknown element kind")
)

// Params is a bag of named parameters used to configure a descriptor.
type Params map[string]any

// Event names an event a descriptor may emit.
type Event string

// Events emitted by interactive descriptors.
const (
	EventClick        Event = "click"
	EventValueChanged Event = "value-changed"
	EventSubmit       Event = "submit"
)

// Handler is an event handler. Arguments and result are passed through Emit.
type Handler func(args ...any) any

// Element is the contract every widget descriptor fulfills.
//
// Implementations embed Base (or Container) and override ExtendAttributes and
// Render.
type Element interface {
	RegisterParameter(name string, def any) any
	IsParameterDeclared(name string) bool
	AddClass(c string)
	RemoveClass(c string) bool
	HasClass(c string) bool
	Classes() []string
	SetClasses(v any) error
	Name() string
	ExtendAttributes(base node.Attrs) node.Attrs
	Render() (*node.Node, error)
	Emit(ev Event, args ...any) any
	HasEvent(ev Event) bool
	core() *Base
}

// Base is the common part of all descriptors. It holds the parameters a
// descriptor has been configured with, its style classes, its name, and its
// event handlers.
//
// Base itself is not renderable: Render returns a null node.
type Base struct {
	params   Params
	declared map[string]bool
	classes  []string
	name     string
	css      string
	events   map[Event]Handler // supported events, nil handler if not attached
	owner    *Base
	err      error // first configuration error
}

var _ Element = &Base{}

// Configure initializes a descriptor from parameters p. It declares the
// parameters every descriptor recognizes:
//
//    style   list of style class names, default empty
//    name    identifier, default ""
//    css     inline style declarations, default ""
//
// Descriptor kinds outside this package call Configure first, then declare
// their own parameters with Param, then call Finish.
func (b *Base) Configure(p Params) {
	b.params = make(Params, len(p))
	for k, v := range p {
		b.params[k] = v
	}
	b.declared = make(map[string]bool)
	b.classes = make([]string, 0, 4)
	if cl := b.RegisterParameter("style", nil); cl != nil {
		if err := b.SetClasses(cl); err != nil {
			b.fail(err)
		}
	}
	b.name = Param(b, "name", "")
	if css := Param(b, "css", ""); strings.TrimSpace(css) != "" {
		norm, err := style.Normalize(css)
		if err != nil {
			b.fail(fmt.Errorf("%w: parameter \"css\": %s", ErrType, err.Error()))
		}
		b.css = norm
	}
}

// Finish ends configuration. It reports the first type fault encountered
// while reading parameters, or ErrUnknownParameter if p contained a parameter
// never declared.
func (b *Base) Finish() error {
	if b.err != nil {
		return b.err
	}
	var unknown []string
	for k := range b.params {
		if !b.declared[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: %s", ErrUnknownParameter, strings.Join(unknown, ", "))
	}
	return nil
}

func (b *Base) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Base) core() *Base {
	return b
}

// RegisterParameter returns the value supplied for parameter name, or def if
// the parameter has not been supplied. name is recorded as declared.
// Calling it more than once for the same name is harmless.
func (b *Base) RegisterParameter(name string, def any) any {
	if b.declared == nil {
		b.declared = make(map[string]bool)
	}
	b.declared[name] = true
	if v, ok := b.params[name]; ok {
		return v
	}
	return def
}

// IsParameterDeclared is true if RegisterParameter has been called for name.
func (b *Base) IsParameterDeclared(name string) bool {
	return b.declared[name]
}

// Param declares parameter name for descriptor b and returns its value as type
// T, or def if it has not been supplied. Supplied values of the wrong shape are
// recorded as a type fault, reported by Finish, and def is returned.
//
// Integer and float parameters accept any numeric value representing the
// target type exactly; []string parameters accept lists of strings.
func Param[T any](b *Base, name string, def T) T {
	v := b.RegisterParameter(name, def)
	if v == nil {
		return def
	}
	t, err := coerce[T](v)
	if err != nil {
		b.fail(fmt.Errorf("%w: parameter %q: %s", ErrType, name, err.Error()))
		return def
	}
	return t
}

func coerce[T any](v any) (T, error) {
	var t T
	if x, ok := v.(T); ok {
		return x, nil
	}
	fault := fmt.Errorf("cannot use %T as %T", v, t)
	switch p := any(&t).(type) {
	case *int:
		switch x := v.(type) {
		case int64:
			*p = int(x)
		case int32:
			*p = int(x)
		case uint64:
			*p = int(x)
		case float64:
			if x != math.Trunc(x) {
				return t, fault
			}
			*p = int(x)
		default:
			return t, fault
		}
	case *float64:
		switch x := v.(type) {
		case int:
			*p = float64(x)
		case int64:
			*p = float64(x)
		case float32:
			*p = float64(x)
		default:
			return t, fault
		}
	case *[]string:
		l, err := toStrings(v)
		if err != nil {
			return t, err
		}
		*p = l
	case *Handler:
		switch h := v.(type) {
		case func(...any) any:
			*p = h
		case func():
			*p = func(...any) any { h(); return nil }
		default:
			return t, fault
		}
	default:
		return t, fault
	}
	return t, nil
}

func toStrings(v any) ([]string, error) {
	switch l := v.(type) {
	case []string:
		r := make([]string, len(l))
		copy(r, l)
		return r, nil
	case []any:
		r := make([]string, len(l))
		for i, x := range l {
			s, ok := x.(string)
			if !ok {
				return nil, fmt.Errorf("list entry #%d is %T, not a string", i, x)
			}
			r[i] = s
		}
		return r, nil
	}
	return nil, fmt.Errorf("%T is not a list of strings", v)
}

// --- Style classes ---------------------------------------------------------

// AddClass appends a style class. Duplicates are permitted.
func (b *Base) AddClass(c string) {
	b.classes = append(b.classes, c)
}

// RemoveClass removes the first occurrence of style class c. It returns false
// if c is not present.
func (b *Base) RemoveClass(c string) bool {
	for i, cl := range b.classes {
		if cl == c {
			b.classes = append(b.classes[:i], b.classes[i+1:]...)
			return true
		}
	}
	return false
}

// HasClass is a predicate for membership of style class c.
func (b *Base) HasClass(c string) bool {
	for _, cl := range b.classes {
		if cl == c {
			return true
		}
	}
	return false
}

// Classes returns the style classes in order.
func (b *Base) Classes() []string {
	r := make([]string, len(b.classes))
	copy(r, b.classes)
	return r
}

// SetClasses replaces all style classes. v must be a list of strings,
// otherwise SetClasses fails with ErrType.
func (b *Base) SetClasses(v any) error {
	l, err := toStrings(v)
	if err != nil {
		return fmt.Errorf("%w: style classes: %s", ErrType, err.Error())
	}
	b.classes = l
	return nil
}

// Name returns the identifier of a descriptor.
func (b *Base) Name() string {
	return b.name
}

// SetName sets the identifier of a descriptor.
func (b *Base) SetName(name string) {
	b.name = name
}

// CSS returns the normalized inline style declarations of a descriptor.
func (b *Base) CSS() string {
	return b.css
}

// ExtendAttributes returns a copy of base, extended by the attributes every
// descriptor renders: "style" (the style classes, joined by a blank),
// "name", and "css" if inline styles are present.
func (b *Base) ExtendAttributes(base node.Attrs) node.Attrs {
	attrs := base.Clone()
	attrs = attrs.Set("style", strings.Join(b.classes, " "))
	attrs = attrs.Set("name", b.name)
	if b.css != "" {
		attrs = attrs.Set("css", b.css)
	}
	return attrs
}

// Render returns a null node. Base is not renderable.
func (b *Base) Render() (*node.Node, error) {
	return node.Null(), nil
}

// --- Events ----------------------------------------------------------------

// SupportEvent declares that a descriptor emits event ev. The handler is taken
// from parameter param, if present.
func (b *Base) SupportEvent(ev Event, param string) {
	if b.events == nil {
		b.events = make(map[Event]Handler)
	}
	b.events[ev] = Param[Handler](b, param, nil)
}

// On attaches handler h to event ev, replacing a previous handler.
// A nil handler detaches. Fails with ErrUnknownEvent if the descriptor does not
// emit ev.
func (b *Base) On(ev Event, h Handler) error {
	if _, ok := b.events[ev]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, ev)
	}
	b.events[ev] = h
	return nil
}

// HasEvent is true if a handler is attached to event ev.
func (b *Base) HasEvent(ev Event) bool {
	return b.events[ev] != nil
}

// Emit calls the handler attached to event ev, returning its result.
// Without a handler, Emit does nothing and returns nil.
func (b *Base) Emit(ev Event, args ...any) any {
	if h := b.events[ev]; h != nil {
		tracer().Debugf("emitting %s to %q", ev, b.name)
		return h(args...)
	}
	return nil
}
