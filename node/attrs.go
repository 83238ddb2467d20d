package node

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
	"strings"
)

// Attr is a single attribute of a node. Values are scalars: strings, booleans,
// integers, floats, or nil (null).
type Attr struct {
	Key   string
	Value any
}

// Attrs is an ordered list of attributes with unique keys. The order of
// insertion is significant for serialization.
type Attrs []Attr

// Get returns the value for key and a flag telling if key is present.
func (as Attrs) Get(key string) (any, bool) {
	if i := as.index(key); i >= 0 {
		return as[i].Value, true
	}
	return nil, false
}

// Has is a predicate checking for the presence of key.
func (as Attrs) Has(key string) bool {
	return as.index(key) >= 0
}

// GetString returns the value for key as a string. Non-string values are
// stringified; absent keys result in "".
func (as Attrs) GetString(key string) string {
	if v, ok := as.Get(key); ok {
		return FormatValue(v)
	}
	return ""
}

// Set sets the value for key. An existing key keeps its position, a new key is
// appended. Set may modify the receiver's backing array, like append; it returns
// the resulting list.
func (as Attrs) Set(key string, value any) Attrs {
	if i := as.index(key); i >= 0 {
		as[i].Value = value
		return as
	}
	return append(as, Attr{Key: key, Value: value})
}

// Delete removes key, preserving the order of the remaining attributes.
func (as Attrs) Delete(key string) Attrs {
	if i := as.index(key); i >= 0 {
		return append(as[:i], as[i+1:]...)
	}
	return as
}

// Merge sets every attribute of other on top of the receiver. Later writes win.
func (as Attrs) Merge(other Attrs) Attrs {
	for _, a := range other {
		as = as.Set(a.Key, a.Value)
	}
	return as
}

// Keys returns the attribute keys in order.
func (as Attrs) Keys() []string {
	keys := make([]string, len(as))
	for i, a := range as {
		keys[i] = a.Key
	}
	return keys
}

// Clone returns a copy of the attribute list not sharing storage with the receiver.
func (as Attrs) Clone() Attrs {
	if as == nil {
		return nil
	}
	c := make(Attrs, len(as))
	copy(c, as)
	return c
}

// String serializes attributes as `k="v"` pairs, separated by single blanks.
func (as Attrs) String() string {
	var sb strings.Builder
	for i, a := range as {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(FormatValue(a.Value))
		sb.WriteByte('"')
	}
	return sb.String()
}

func (as Attrs) index(key string) int {
	for i, a := range as {
		if a.Key == key {
			return i
		}
	}
	return -1
}

func (as Attrs) validate() error {
	seen := make(map[string]bool, len(as))
	for _, a := range as {
		if a.Key == "" {
			return fmt.Errorf("%w: empty attribute key", ErrValidation)
		}
		if seen[a.Key] {
			return fmt.Errorf("%w: duplicate attribute key %q", ErrValidation, a.Key)
		}
		seen[a.Key] = true
		if !IsScalar(a.Value) {
			return fmt.Errorf("%w: attribute %q has non-scalar value of type %T",
				ErrValidation, a.Key, a.Value)
		}
	}
	return nil
}

// --- Scalar values ---------------------------------------------------------

// IsScalar is a predicate for values allowed as attribute values.
func IsScalar(v any) bool {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// FormatValue stringifies a scalar attribute value. Booleans become "true" or
// "false", nil becomes the empty string.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
