package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"
)

// Property is the raw value of a style property, e.g. "2px" for
//
//     margin-left: 2px
type Property string

// NullStyle is the value of unset properties.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// KeyValue is a style property together with its key.
type KeyValue struct {
	Key   string
	Value Property
}

// Property groups. Properties with a key not belonging to any of the known
// groups are collected in group PGX.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGDisplay   = "Display"
	PGColor     = "Color"
	PGText      = "Text"
	PGX         = "X"
)

var groupOfKey = map[string]string{
	"width": PGDimension, "height": PGDimension,
	"min-width": PGDimension, "min-height": PGDimension,
	"max-width": PGDimension, "max-height": PGDimension,
	"display": PGDisplay, "float": PGDisplay, "visibility": PGDisplay, "position": PGDisplay,
	"color": PGColor, "background-color": PGColor,
	"direction": PGText, "font-size": PGText, "font-weight": PGText, "text-align": PGText,
	"white-space": PGText, "word-spacing": PGText, "letter-spacing": PGText,
}

// GroupOf returns the name of the property group a property key belongs to:
//
//    GroupOf("margin-top")   // "Margins"
//    GroupOf("line-height")  // "X"
func GroupOf(key string) string {
	switch {
	case strings.HasPrefix(key, "margin-"):
		return PGMargins
	case strings.HasPrefix(key, "padding-"):
		return PGPadding
	case strings.HasPrefix(key, "border-"):
		return PGBorder
	}
	if g, ok := groupOfKey[key]; ok {
		return g
	}
	return PGX
}

// --- Compound properties ---------------------------------------------------

type compound struct {
	prefix, suffix string
	parts          [4]string
}

var (
	sides   = [4]string{"top", "right", "bottom", "left"}
	corners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}
)

var compounds = map[string]compound{
	"margin":        {"margin", "", sides},
	"padding":       {"padding", "", sides},
	"border-color":  {"border", "color", sides},
	"border-width":  {"border", "width", sides},
	"border-style":  {"border", "style", sides},
	"border-radius": {"border", "radius", corners},
}

// spread[n-1] tells which of n values goes to each of the four parts:
// one value for all parts, then vertical/horizontal, then top/horizontal/bottom.
var spread = [4][4]int{
	{0, 0, 0, 0},
	{0, 1, 0, 1},
	{0, 1, 2, 1},
	{0, 1, 2, 3},
}

// IsCompound is true for shortcut properties SplitCompound can split.
func IsCompound(key string) bool {
	_, ok := compounds[key]
	return ok
}

// SplitCompound splits a shortcut property into its individual properties,
// following the CSS rules for 1 to 4 values:
//
//    SplitCompound("padding", "1px 2px")
//    // padding-top: 1px, padding-right: 2px, padding-bottom: 1px, padding-left: 2px
func SplitCompound(key string, value Property) ([]KeyValue, error) {
	c, ok := compounds[key]
	if !ok {
		return nil, fmt.Errorf("%s is not a compound property", key)
	}
	values := strings.Fields(string(value))
	if len(values) == 0 || len(values) > 4 {
		return nil, fmt.Errorf("%s takes 1 to 4 values, have %d", key, len(values))
	}
	kvs := make([]KeyValue, 4)
	for i, part := range c.parts {
		k := c.prefix + "-" + part
		if c.suffix != "" {
			k += "-" + c.suffix
		}
		kvs[i] = KeyValue{Key: k, Value: Property(values[spread[len(values)-1][i]])}
	}
	return kvs, nil
}

// --- Property groups -------------------------------------------------------

// PropertyGroup holds the properties of one group.
type PropertyGroup struct {
	name  string
	props map[string]Property
}

// Name returns the name of the group.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

func (pg *PropertyGroup) String() string {
	var sb strings.Builder
	sb.WriteString(pg.name)
	sb.WriteString(" {")
	for i, kv := range pg.Properties() {
		if i > 0 {
			sb.WriteByte(';')
		}
		fmt.Fprintf(&sb, " %s: %s", kv.Key, kv.Value)
	}
	sb.WriteString(" }")
	return sb.String()
}

// Properties returns the properties of the group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	kvs := make([]KeyValue, 0, len(pg.props))
	for k, v := range pg.props {
		kvs = append(kvs, KeyValue{Key: k, Value: v})
	}
	sort.Slice(kvs, func(i, j int) bool { return kvs[i].Key < kvs[j].Key })
	return kvs
}

// IsSet is true if property key has a non-empty value.
func (pg *PropertyGroup) IsSet(key string) bool {
	return pg.props[key] != NullStyle
}

// Get returns the value of property key.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	v, ok := pg.props[key]
	return v, ok
}

// Set sets property key, replacing a previous value.
func (pg *PropertyGroup) Set(key string, value Property) {
	if pg.props == nil {
		pg.props = make(map[string]Property)
	}
	pg.props[key] = value
}

// --- Property maps ---------------------------------------------------------

// PropertyMap holds style properties sorted into groups.
// A nil *PropertyMap is empty.
type PropertyMap struct {
	groups map[string]*PropertyGroup
}

// NewPropertyMap creates an empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{groups: make(map[string]*PropertyGroup)}
}

// Size is the number of non-empty groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.groups)
}

// Group returns the group named name, or nil.
func (pmap *PropertyMap) Group(name string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.groups[name]
}

// GroupNames returns the names of the non-empty groups in sorted order.
func (pmap *PropertyMap) GroupNames() []string {
	if pmap == nil {
		return nil
	}
	names := make([]string, 0, len(pmap.groups))
	for name := range pmap.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Property returns the value of property key.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	if g := pmap.Group(GroupOf(key)); g != nil {
		return g.Get(key)
	}
	return NullStyle, false
}

// Add sets property key in its group. Adding to a nil map does nothing.
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	name := GroupOf(key)
	g := pmap.groups[name]
	if g == nil {
		g = &PropertyGroup{name: name}
		pmap.groups[name] = g
	}
	g.Set(key, value)
}
