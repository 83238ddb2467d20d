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

// Tags of the entry family.
const (
	TagEntry         = "entry"
	TagLineEntry     = "line-entry"
	TagPasswordEntry = "password-entry"
	TagFileEntry     = "file-entry"
	TagNumberEntry   = "number-entry"
	TagHiddenEntry   = "hidden-entry"
	TagTextEntry     = "text-entry"
	TagRadioButton   = "radio-button"
	TagCheckButton   = "check-button"
)

// Entry is an input control. All members of the entry family share this type;
// they differ in the tag they render.
//
// Parameters:
//
//    value           current value (a scalar), default ""
//    form_name       name of the value within a submitted form, default ""
//    placeholder     hint shown while empty, default ""
//    required        true if a value is mandatory, default false
//    group           radio and check buttons only: group name, default ""
//    onvaluechanged  Handler for EventValueChanged
//
// Attributes "form_name", "placeholder" and "group" are rendered only if
// non-empty, "required" only if true.
type Entry struct {
	Base
	tag         string
	value       any
	formName    string
	placeholder string
	required    bool
	group       string
}

func newEntry(tag string, p Params) (*Entry, error) {
	e := &Entry{tag: tag}
	e.Configure(p)
	e.formName = Param(&e.Base, "form_name", "")
	e.placeholder = Param(&e.Base, "placeholder", "")
	e.required = Param(&e.Base, "required", false)
	e.value = e.RegisterParameter("value", "")
	if !node.IsScalar(e.value) {
		e.fail(fmt.Errorf("%w: parameter \"value\" must be a scalar, is %T", ErrType, e.value))
	}
	if tag == TagRadioButton || tag == TagCheckButton {
		e.group = Param(&e.Base, "group", "")
	}
	e.SupportEvent(EventValueChanged, "onvaluechanged")
	if err := e.Finish(); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	return e, nil
}

// NewEntry creates a generic input control.
func NewEntry(p Params) (*Entry, error) { return newEntry(TagEntry, p) }

// NewLineEntry creates a single-line text input.
func NewLineEntry(p Params) (*Entry, error) { return newEntry(TagLineEntry, p) }

// NewPasswordEntry creates a password input.
func NewPasswordEntry(p Params) (*Entry, error) { return newEntry(TagPasswordEntry, p) }

// NewFileEntry creates a file chooser.
func NewFileEntry(p Params) (*Entry, error) { return newEntry(TagFileEntry, p) }

// NewNumberEntry creates a numeric input.
func NewNumberEntry(p Params) (*Entry, error) { return newEntry(TagNumberEntry, p) }

// NewHiddenEntry creates an invisible form value.
func NewHiddenEntry(p Params) (*Entry, error) { return newEntry(TagHiddenEntry, p) }

// NewTextEntry creates a multi-line text input.
func NewTextEntry(p Params) (*Entry, error) { return newEntry(TagTextEntry, p) }

// NewRadioButton creates a radio button. Radio buttons of the same group are
// mutually exclusive.
func NewRadioButton(p Params) (*Entry, error) { return newEntry(TagRadioButton, p) }

// NewCheckButton creates a check box.
func NewCheckButton(p Params) (*Entry, error) { return newEntry(TagCheckButton, p) }

// Tag returns the tag the entry renders.
func (e *Entry) Tag() string { return e.tag }

// Value returns the current value.
func (e *Entry) Value() any { return e.value }

// SetValue sets the current value. Non-scalar values are rejected with ErrType.
func (e *Entry) SetValue(v any) error {
	if !node.IsScalar(v) {
		return fmt.Errorf("%w: entry value must be a scalar, is %T", ErrType, v)
	}
	e.value = v
	return nil
}

// ExtendAttributes adds "value" and, if set, "form_name", "placeholder",
// "required" and "group".
func (e *Entry) ExtendAttributes(base node.Attrs) node.Attrs {
	attrs := e.Base.ExtendAttributes(base).Set("value", e.value)
	if e.formName != "" {
		attrs = attrs.Set("form_name", e.formName)
	}
	if e.placeholder != "" {
		attrs = attrs.Set("placeholder", e.placeholder)
	}
	if e.required {
		attrs = attrs.Set("required", true)
	}
	if e.group != "" {
		attrs = attrs.Set("group", e.group)
	}
	return attrs
}

// Render renders a node with the entry's tag and no children.
func (e *Entry) Render() (*node.Node, error) {
	return node.New(e.tag, e.ExtendAttributes(nil))
}
