package node

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Field names of the serialized node form.
const (
	FieldTag        = "tag"
	FieldAttributes = "attributes"
	FieldChildren   = "children"
)

// FromFields creates a node from a field bag, e.g. decoded JSON or YAML.
// The bag must hold all three fields "tag", "attributes" and "children";
// a missing or nil field results in ErrRequiredField, a field of the wrong
// kind results in ErrValidation.
//
// Attributes may be given as Attrs, as a map (keys are then sorted, as maps
// carry no order) or as a list of single-entry maps. Children are a list of
// strings, Nodes or nested field bags.
func FromFields(fields map[string]any) (*Node, error) {
	for _, f := range []string{FieldTag, FieldAttributes, FieldChildren} {
		if v, ok := fields[f]; !ok || v == nil {
			return nil, fmt.Errorf("%w: %q", ErrRequiredField, f)
		}
	}
	tag, ok := fields[FieldTag].(string)
	if !ok {
		return nil, fmt.Errorf("%w: tag must be a string, is %T", ErrValidation, fields[FieldTag])
	}
	attrs, err := attrsFromValue(fields[FieldAttributes])
	if err != nil {
		return nil, fmt.Errorf("<%s>: %w", tag, err)
	}
	var children Children
	switch chs := fields[FieldChildren].(type) {
	case Children:
		children = chs
	case []any:
		children = make(Children, 0, len(chs))
		for i, ch := range chs {
			c, err := childFromValue(ch)
			if err != nil {
				return nil, fmt.Errorf("<%s> child #%d: %w", tag, i, err)
			}
			children = append(children, c)
		}
	default:
		return nil, fmt.Errorf("%w: <%s> children must be a list, is %T", ErrValidation, tag, chs)
	}
	return New(tag, attrs, children...)
}

func attrsFromValue(v any) (Attrs, error) {
	switch a := v.(type) {
	case Attrs:
		return a, nil
	case map[string]any:
		keys := make([]string, 0, len(a))
		for k := range a {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		attrs := make(Attrs, 0, len(a))
		for _, k := range keys {
			attrs = append(attrs, Attr{Key: k, Value: a[k]})
		}
		return attrs, nil
	case []any:
		attrs := make(Attrs, 0, len(a))
		for _, entry := range a {
			m, ok := entry.(map[string]any)
			if !ok || len(m) != 1 {
				return nil, fmt.Errorf("%w: attribute list entries must be single key/value pairs",
					ErrValidation)
			}
			for k, val := range m {
				attrs = append(attrs, Attr{Key: k, Value: val})
			}
		}
		return attrs, nil
	}
	return nil, fmt.Errorf("%w: attributes must be a mapping, are %T", ErrValidation, v)
}

func childFromValue(v any) (Child, error) {
	switch c := v.(type) {
	case string:
		return Text(c), nil
	case Text:
		return c, nil
	case *Node:
		return c, nil
	case map[string]any:
		return FromFields(c)
	}
	return nil, fmt.Errorf("%w: child must be text or node, is %T", ErrValidation, v)
}

// --- YAML ------------------------------------------------------------------

// Unmarshal decodes a node tree from YAML. The document has the form
//
//     tag: button
//     attributes:
//       type: button
//       style: "primary wide"
//     children:
//       - OK
//       - tag: span
//         attributes: {}
//         children: []
//
// Attribute order of the YAML mapping is preserved.
func Unmarshal(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrRequiredField)
	}
	return fromYAML(doc.Content[0])
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	m, err := fromYAML(value)
	if err != nil {
		return err
	}
	*n = *m
	return nil
}

func fromYAML(y *yaml.Node) (*Node, error) {
	if y.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: node must be a mapping", ErrValidation, y.Line)
	}
	fields := make(map[string]*yaml.Node, 3)
	for i := 0; i+1 < len(y.Content); i += 2 {
		fields[y.Content[i].Value] = y.Content[i+1]
	}
	for _, f := range []string{FieldTag, FieldAttributes, FieldChildren} {
		if v, ok := fields[f]; !ok || isNull(v) {
			return nil, fmt.Errorf("%w: line %d: %q", ErrRequiredField, y.Line, f)
		}
	}
	t := fields[FieldTag]
	if t.Kind != yaml.ScalarNode || t.Tag != "!!str" {
		return nil, fmt.Errorf("%w: line %d: tag must be a string", ErrValidation, t.Line)
	}
	tag := t.Value
	var attrs Attrs
	a := fields[FieldAttributes]
	switch {
	case a.Kind == yaml.MappingNode:
		for i := 0; i+1 < len(a.Content); i += 2 {
			k, v := a.Content[i], a.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: attribute %q must be a scalar",
					ErrValidation, v.Line, k.Value)
			}
			var val any
			if err := v.Decode(&val); err != nil {
				return nil, fmt.Errorf("%w: line %d: %s", ErrValidation, v.Line, err.Error())
			}
			attrs = append(attrs, Attr{Key: k.Value, Value: val})
		}
	default:
		return nil, fmt.Errorf("%w: line %d: attributes must be a mapping", ErrValidation, a.Line)
	}
	var children Children
	c := fields[FieldChildren]
	switch {
	case c.Kind == yaml.SequenceNode:
		for _, ch := range c.Content {
			switch ch.Kind {
			case yaml.ScalarNode:
				children = append(children, Text(ch.Value))
			case yaml.MappingNode:
				sub, err := fromYAML(ch)
				if err != nil {
					return nil, err
				}
				children = append(children, sub)
			default:
				return nil, fmt.Errorf("%w: line %d: child must be text or node", ErrValidation, ch.Line)
			}
		}
	default:
		return nil, fmt.Errorf("%w: line %d: children must be a list", ErrValidation, c.Line)
	}
	tracer().Debugf("decoded <%s> with %d attributes, %d children", tag, len(attrs), len(children))
	return New(tag, attrs, children...)
}

// isNull is true for an explicit YAML null, e.g. "children: ~".
func isNull(y *yaml.Node) bool {
	return y.Kind == yaml.ScalarNode && y.Tag == "!!null"
}
