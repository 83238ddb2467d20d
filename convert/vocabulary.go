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
	"io"
	"sort"

	"github.com/npillmayer/uitree/node"
	"golang.org/x/net/html/atom"
	"gopkg.in/yaml.v3"
)

// ErrVocabulary is flagged for incomplete or malformed vocabularies.
var ErrVocabulary = errors.New("invalid vocabulary")

// EntryTarget is the target of an entry-family tag: a tag and an optional
// value for the "type" attribute.
type EntryTarget struct {
	Tag  string `yaml:"tag"`
	Type string `yaml:"type,omitempty"`
}

// Vocabulary holds the tag names of a concrete target dialect.
type Vocabulary struct {
	Name    string `yaml:"name"`
	Extends string `yaml:"extends,omitempty"` // "html" to start from the HTML vocabulary

	// Renames maps source tags to target tags 1:1.
	Renames map[string]string `yaml:"renames"`

	Hyperlink     string            `yaml:"hyperlink"`
	Button        string            `yaml:"button"`
	FormLabel     string            `yaml:"form-label"`
	Span          string            `yaml:"span"`
	Fieldset      string            `yaml:"fieldset"`
	Legend        string            `yaml:"legend"`
	Box           string            `yaml:"box"`
	Caption       string            `yaml:"caption"`
	CaptionAttrs  map[string]string `yaml:"caption-attributes"`
	Form          string            `yaml:"form"`
	Image         string            `yaml:"image"`
	HeadingPrefix string            `yaml:"heading-prefix"`
	OrderedList   string            `yaml:"ordered-list"`
	UnorderedList string            `yaml:"unordered-list"`

	// TextTags maps text-tag types to target tags. Type "link" always
	// results in a hyperlink; unknown types result in TextTagDefault.
	TextTags       map[string]string `yaml:"text-tags"`
	TextTagDefault string            `yaml:"text-tag-default"`

	// Entries maps entry-family source tags to their targets.
	Entries map[string]EntryTarget `yaml:"entries"`
}

// HTML returns the HTML vocabulary.
func HTML() Vocabulary {
	return Vocabulary{
		Name: "html",
		Renames: map[string]string{
			"container":     "div",
			"row":           "div",
			"column":        "div",
			"block":         "div",
			"text":          "div",
			"separator":     "hr",
			"raw-text":      "pre",
			"code-text":     "code",
			"paragraph":     "p",
			"title":         "h1",
			"subtitle":      "h2",
			"sectiontitle":  "h3",
			"section-title": "h3",
			"list-item":     "li",
			"quote-block":   "blockquote",
			"line-break":    "br",
		},
		Hyperlink:     "a",
		Button:        "button",
		FormLabel:     "label",
		Span:          "span",
		Fieldset:      "fieldset",
		Legend:        "legend",
		Box:           "div",
		Caption:       "div",
		CaptionAttrs:  map[string]string{"align": "center"},
		Form:          "form",
		Image:         "img",
		HeadingPrefix: "h",
		OrderedList:   "ol",
		UnorderedList: "ul",
		TextTags: map[string]string{
			"bold":        "b",
			"italic":      "i",
			"underline":   "u",
			"strike":      "s",
			"small":       "small",
			"big":         "big",
			"quote":       "q",
			"subscript":   "sub",
			"superscript": "sup",
			"custom":      "span",
			"normal":      "span",
		},
		TextTagDefault: "span",
		Entries: map[string]EntryTarget{
			"line-entry":     {Tag: "input", Type: "text"},
			"password-entry": {Tag: "input", Type: "password"},
			"file-entry":     {Tag: "input", Type: "file"},
			"number-entry":   {Tag: "input", Type: "number"},
			"hidden-entry":   {Tag: "input", Type: "hidden"},
			"radio-button":   {Tag: "input", Type: "radio"},
			"check-button":   {Tag: "input", Type: "checkbox"},
			"entry":          {Tag: "input"},
			"text-entry":     {Tag: "textarea"},
		},
	}
}

// LoadVocabulary reads a vocabulary from YAML. Unknown keys are rejected.
// A vocabulary with `extends: html` starts from the HTML vocabulary and
// overrides selected entries.
func LoadVocabulary(r io.Reader) (Vocabulary, error) {
	var v Vocabulary
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil {
		return Vocabulary{}, fmt.Errorf("%w: %s", ErrVocabulary, err.Error())
	}
	switch v.Extends {
	case "":
	case "html":
		v = HTML().overlay(v)
	default:
		return Vocabulary{}, fmt.Errorf("%w: cannot extend unknown vocabulary %q", ErrVocabulary, v.Extends)
	}
	if err := v.Validate(); err != nil {
		return Vocabulary{}, err
	}
	tracer().Infof("loaded vocabulary %q", v.Name)
	return v, nil
}

func (v Vocabulary) overlay(o Vocabulary) Vocabulary {
	r := v.clone()
	if o.Name != "" {
		r.Name = o.Name
	}
	for _, f := range []struct{ dst, src *string }{
		{&r.Hyperlink, &o.Hyperlink}, {&r.Button, &o.Button}, {&r.FormLabel, &o.FormLabel},
		{&r.Span, &o.Span}, {&r.Fieldset, &o.Fieldset}, {&r.Legend, &o.Legend},
		{&r.Box, &o.Box}, {&r.Caption, &o.Caption}, {&r.Form, &o.Form},
		{&r.Image, &o.Image}, {&r.HeadingPrefix, &o.HeadingPrefix},
		{&r.OrderedList, &o.OrderedList}, {&r.UnorderedList, &o.UnorderedList},
		{&r.TextTagDefault, &o.TextTagDefault},
	} {
		if *f.src != "" {
			*f.dst = *f.src
		}
	}
	for k, t := range o.Renames {
		r.Renames[k] = t
	}
	for k, t := range o.TextTags {
		r.TextTags[k] = t
	}
	for k, t := range o.Entries {
		r.Entries[k] = t
	}
	if o.CaptionAttrs != nil {
		r.CaptionAttrs = o.CaptionAttrs
	}
	return r
}

func (v Vocabulary) clone() Vocabulary {
	r := v
	r.Renames = make(map[string]string, len(v.Renames))
	for k, t := range v.Renames {
		r.Renames[k] = t
	}
	r.TextTags = make(map[string]string, len(v.TextTags))
	for k, t := range v.TextTags {
		r.TextTags[k] = t
	}
	r.Entries = make(map[string]EntryTarget, len(v.Entries))
	for k, t := range v.Entries {
		r.Entries[k] = t
	}
	r.CaptionAttrs = make(map[string]string, len(v.CaptionAttrs))
	for k, t := range v.CaptionAttrs {
		r.CaptionAttrs[k] = t
	}
	return r
}

// Validate checks that every target tag of the vocabulary is set and is a
// valid markup name. The heading prefix must be set and yield valid tags
// when followed by a level.
func (v Vocabulary) Validate() error {
	for _, t := range v.targets() {
		if !node.IsValidTag(t.tag) {
			return fmt.Errorf("%w: %s: invalid target tag %q", ErrVocabulary, t.role, t.tag)
		}
	}
	if !node.IsValidTag(v.HeadingPrefix + "1") {
		return fmt.Errorf("%w: invalid heading prefix %q", ErrVocabulary, v.HeadingPrefix)
	}
	return nil
}

// CheckHTML checks that every target tag of the vocabulary is a known HTML
// element.
func (v Vocabulary) CheckHTML() error {
	for _, t := range v.targets() {
		if atom.Lookup([]byte(t.tag)) == 0 {
			return fmt.Errorf("%w: %s: %q is not an HTML element", ErrVocabulary, t.role, t.tag)
		}
	}
	return nil
}

type target struct {
	role, tag string
}

func (v Vocabulary) targets() []target {
	ts := []target{
		{"hyperlink", v.Hyperlink}, {"button", v.Button}, {"form-label", v.FormLabel},
		{"span", v.Span}, {"fieldset", v.Fieldset}, {"legend", v.Legend},
		{"box", v.Box}, {"caption", v.Caption}, {"form", v.Form}, {"image", v.Image},
		{"ordered-list", v.OrderedList}, {"unordered-list", v.UnorderedList},
		{"text-tag-default", v.TextTagDefault},
	}
	for _, k := range sortedKeys(v.Renames) {
		ts = append(ts, target{"rename " + k, v.Renames[k]})
	}
	for _, k := range sortedKeys(v.TextTags) {
		ts = append(ts, target{"text-tag " + k, v.TextTags[k]})
	}
	for _, k := range sortedKeys(v.Entries) {
		ts = append(ts, target{"entry " + k, v.Entries[k].Tag})
	}
	return ts
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
