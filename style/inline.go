package style

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

	"github.com/aymerick/douceur/parser"
)

// ErrSyntax is flagged for malformed inline style declarations.
var ErrSyntax = errors.New("malformed style declaration")

// Declaration is a single inline style declaration.
type Declaration struct {
	Key       string
	Value     Property
	Important bool
}

func (d Declaration) String() string {
	if d.Important {
		return d.Key + ": " + d.Value.String() + " !important"
	}
	return d.Key + ": " + d.Value.String()
}

// Declarations is an ordered list of inline style declarations. A property
// declared twice keeps its first position and its last value.
type Declarations struct {
	decls []Declaration
}

// ParseInline parses inline style declarations like
//
//    color: Red; margin: 3px 6px !important
//
// Property names and values are normalized to lower case, except for values
// containing quotes or URLs.
func ParseInline(s string) (*Declarations, error) {
	ds := &Declarations{}
	s = strings.TrimSpace(s)
	if s == "" {
		return ds, nil
	}
	if !strings.HasSuffix(s, ";") {
		s += ";"
	}
	decls, err := parser.ParseDeclarations(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSyntax, err.Error())
	}
	for _, d := range decls {
		if strings.TrimSpace(d.Property) == "" {
			return nil, fmt.Errorf("%w: missing property name in %q", ErrSyntax, s)
		}
		if strings.TrimSpace(d.Value) == "" {
			return nil, fmt.Errorf("%w: missing value for %q", ErrSyntax, d.Property)
		}
		ds.Set(d.Property, Property(d.Value), d.Important)
	}
	tracer().Debugf("parsed %d inline style declarations", ds.Len())
	return ds, nil
}

// Normalize parses inline declarations and returns their normalized form.
func Normalize(s string) (string, error) {
	ds, err := ParseInline(s)
	if err != nil {
		return "", err
	}
	return ds.String(), nil
}

// Len returns the number of declarations.
func (ds *Declarations) Len() int {
	if ds == nil {
		return 0
	}
	return len(ds.decls)
}

// Declarations returns a copy of all declarations, in order.
func (ds *Declarations) Declarations() []Declaration {
	if ds == nil {
		return nil
	}
	r := make([]Declaration, len(ds.decls))
	copy(r, ds.decls)
	return r
}

// Get returns the value of a declared property.
func (ds *Declarations) Get(key string) (Property, bool) {
	if ds == nil {
		return NullStyle, false
	}
	key = strings.ToLower(strings.TrimSpace(key))
	for _, d := range ds.decls {
		if d.Key == key {
			return d.Value, true
		}
	}
	return NullStyle, false
}

// Set declares a property, normalizing key and value.
func (ds *Declarations) Set(key string, value Property, important bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	value = normalizeValue(value)
	for i := range ds.decls {
		if ds.decls[i].Key == key {
			ds.decls[i].Value = value
			ds.decls[i].Important = important
			return
		}
	}
	ds.decls = append(ds.decls, Declaration{Key: key, Value: value, Important: important})
}

// String serializes the declarations in normalized form, separated by "; ".
func (ds *Declarations) String() string {
	if ds == nil {
		return ""
	}
	s := make([]string, len(ds.decls))
	for i, d := range ds.decls {
		s[i] = d.String()
	}
	return strings.Join(s, "; ")
}

// PropertyMap sorts the declarations into property groups. Compound shortcuts
// like "margin" are split into their individual properties.
func (ds *Declarations) PropertyMap() (*PropertyMap, error) {
	pmap := NewPropertyMap()
	if ds == nil {
		return pmap, nil
	}
	for _, d := range ds.decls {
		if !IsCompound(d.Key) {
			pmap.Add(d.Key, d.Value)
			continue
		}
		kvs, err := SplitCompound(d.Key, d.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrSyntax, err.Error())
		}
		for _, kv := range kvs {
			pmap.Add(kv.Key, kv.Value)
		}
	}
	return pmap, nil
}

func normalizeValue(p Property) Property {
	v := strings.Join(strings.Fields(string(p)), " ")
	if strings.ContainsAny(v, `"'`) || strings.Contains(strings.ToLower(v), "url(") {
		return Property(v)
	}
	return Property(strings.ToLower(v))
}
