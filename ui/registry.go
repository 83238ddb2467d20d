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
	"io"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Factory creates a descriptor from parameters.
type Factory func(p Params) (Element, error)

// Registry maps kind names to factories. Kinds are registered explicitly;
// a registry is safe for concurrent use.
type Registry struct {
	mx    sync.RWMutex
	kinds map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Factory)}
}

// Register sets the factory for kind, replacing a previous one.
func (r *Registry) Register(kind string, f Factory) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.kinds[kind] = f
}

// Lookup returns the factory for kind.
func (r *Registry) Lookup(kind string) (Factory, bool) {
	r.mx.RLock()
	defer r.mx.RUnlock()
	f, ok := r.kinds[kind]
	return f, ok
}

// Kinds returns all registered kind names, sorted.
func (r *Registry) Kinds() []string {
	r.mx.RLock()
	defer r.mx.RUnlock()
	kinds := make([]string, 0, len(r.kinds))
	for k := range r.kinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// New creates a descriptor of a registered kind.
func (r *Registry) New(kind string, p Params) (Element, error) {
	f, ok := r.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return f(p)
}

var defaultRegistry *Registry
var initDefault sync.Once

// Default returns a registry holding all kinds of this package, named by the
// tag they render. Clients may register additional kinds with it.
func Default() *Registry {
	initDefault.Do(func() {
		defaultRegistry = NewRegistry()
		RegisterStandardKinds(defaultRegistry)
	})
	return defaultRegistry
}

// RegisterStandardKinds registers all kinds of this package with r.
func RegisterStandardKinds(r *Registry) {
	r.Register("container", composite(NewContainer))
	r.Register("row", composite(NewRow))
	r.Register("column", composite(NewColumn))
	r.Register("block", composite(NewBlock))
	r.Register("button", composite(NewButton))
	r.Register("label", composite(NewLabel))
	r.Register("link", composite(NewLink))
	r.Register("frame", composite(NewFrame))
	r.Register("form", composite(NewForm))
	r.Register("separator", leaf(NewSeparator))
	r.Register("heading", leaf(NewHeading))
	r.Register("image", leaf(NewImage))
	r.Register("text-tag", leaf(NewTextTag))
	r.Register("text", composite(NewTextView))
	r.Register("text-section", leaf(NewTextSection))
	r.Register(TagEntry, leaf(NewEntry))
	r.Register(TagLineEntry, leaf(NewLineEntry))
	r.Register(TagPasswordEntry, leaf(NewPasswordEntry))
	r.Register(TagFileEntry, leaf(NewFileEntry))
	r.Register(TagNumberEntry, leaf(NewNumberEntry))
	r.Register(TagHiddenEntry, leaf(NewHiddenEntry))
	r.Register(TagTextEntry, leaf(NewTextEntry))
	r.Register(TagRadioButton, leaf(NewRadioButton))
	r.Register(TagCheckButton, leaf(NewCheckButton))
}

func leaf[E Element](f func(Params) (E, error)) Factory {
	return func(p Params) (Element, error) {
		e, err := f(p)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

func composite[E Element](f func(Params, ...Element) (E, error)) Factory {
	return func(p Params) (Element, error) {
		e, err := f(p)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

// --- YAML documents --------------------------------------------------------

// Keys of YAML UI documents with special meaning.
const (
	KeyKind  = "kind"
	KeyItems = "items"
	KeyMix   = "mix"
)

// ErrDocument is flagged for malformed UI documents.
var ErrDocument = errors.New("malformed UI document")

// Decode reads a UI document in YAML format and creates the descriptor tree it
// describes. Every mapping of the document describes a descriptor: "kind"
// names a kind registered with reg, "items" lists child descriptors of
// containers, text tags may "mix" in another text tag, and all other keys are
// passed as parameters:
//
//    kind: form
//    act: /login
//    items:
//      - kind: label
//        label: User
//        form: true
//      - kind: line-entry
//        form_name: user
//        required: true
//
// If reg is nil, the default registry is used.
func Decode(r io.Reader, reg *Registry) (Element, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDocument, err.Error())
	}
	if reg == nil {
		reg = Default()
	}
	return FromMap(doc, reg)
}

// FromMap creates a descriptor tree from a decoded UI document.
func FromMap(doc map[string]any, reg *Registry) (Element, error) {
	kind, ok := doc[KeyKind].(string)
	if !ok {
		return nil, fmt.Errorf("%w: missing kind", ErrDocument)
	}
	p := make(Params, len(doc))
	for k, v := range doc {
		if k != KeyKind && k != KeyItems && k != KeyMix {
			p[k] = v
		}
	}
	e, err := reg.New(kind, p)
	if err != nil {
		return nil, err
	}
	if items, ok := doc[KeyItems]; ok {
		c, ok := e.(Composite)
		if !ok {
			return nil, fmt.Errorf("%w: %s cannot hold items", ErrDocument, kind)
		}
		list, ok := items.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: items of %s must be a list", ErrDocument, kind)
		}
		for i, item := range list {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: item #%d of %s must be a mapping", ErrDocument, i, kind)
			}
			child, err := FromMap(m, reg)
			if err != nil {
				return nil, err
			}
			if err = c.Add(child); err != nil {
				return nil, err
			}
		}
	}
	if mix, ok := doc[KeyMix]; ok {
		t, ok := e.(*TextTag)
		m, isMap := mix.(map[string]any)
		if !ok || !isMap {
			return nil, fmt.Errorf("%w: mix requires a text-tag holding a text-tag", ErrDocument)
		}
		inner, err := FromMap(m, reg)
		if err != nil {
			return nil, err
		}
		it, ok := inner.(*TextTag)
		if !ok {
			return nil, fmt.Errorf("%w: only text-tags may be mixed", ErrDocument)
		}
		if err = t.Mix(it); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("decoded %s descriptor %q", kind, e.Name())
	return e, nil
}
