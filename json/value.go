// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package json

import (
	"sort"
	"strconv"
	"strings"
)

var (
	_ Value = Null{}
	_ Value = Float(0)
	_ Value = SignedInt(0)
	_ Value = UnsignedInt(0)
	_ Value = Bool(false)
	_ Value = Text("")
	_ Value = Sequence(nil)
	_ Value = Mapping(nil)
)

// Value is a node of a decoded document. The set of implementations is
// closed: Null, Float, SignedInt, UnsignedInt, Bool, Text, Sequence and
// Mapping.
type Value interface {
	// Field returns the member [key] of a Mapping. Any other value returns
	// ErrNotJSONType.
	Field(key string) (Value, error)
	// String renders the value for debugging. It is not a wire format.
	String() string

	isValue()
}

type (
	Null        struct{}
	Float       float64
	SignedInt   int64
	UnsignedInt uint64
	Bool        bool
	Text        string
	Sequence    []Value
	// Mapping keys are unique. Iteration helpers and rendering visit keys in
	// byte-wise order.
	Mapping map[string]Value
)

func (Null) isValue()        {}
func (Float) isValue()       {}
func (SignedInt) isValue()   {}
func (UnsignedInt) isValue() {}
func (Bool) isValue()        {}
func (Text) isValue()        {}
func (Sequence) isValue()    {}
func (Mapping) isValue()     {}

func (Null) Field(string) (Value, error)        { return nil, ErrNotJSONType }
func (Float) Field(string) (Value, error)       { return nil, ErrNotJSONType }
func (SignedInt) Field(string) (Value, error)   { return nil, ErrNotJSONType }
func (UnsignedInt) Field(string) (Value, error) { return nil, ErrNotJSONType }
func (Bool) Field(string) (Value, error)        { return nil, ErrNotJSONType }
func (Text) Field(string) (Value, error)        { return nil, ErrNotJSONType }
func (Sequence) Field(string) (Value, error)    { return nil, ErrNotJSONType }

func (m Mapping) Field(key string) (Value, error) {
	v, ok := m[key]
	if !ok {
		return nil, ErrMissingValue
	}
	return v, nil
}

// Keys returns the keys of [m] in sorted order.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (Null) String() string          { return "null" }
func (v Float) String() string       { return strconv.FormatFloat(float64(v), 'f', -1, 64) }
func (v SignedInt) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v UnsignedInt) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Bool) String() string        { return strconv.FormatBool(bool(v)) }
func (v Text) String() string        { return `"` + string(v) + `"` }

func (s Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(render(v))
	}
	b.WriteByte(']')
	return b.String()
}

func (m Mapping) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('"')
		b.WriteString(k)
		b.WriteString(`": `)
		b.WriteString(render(m[k]))
	}
	b.WriteByte('}')
	return b.String()
}

func render(v Value) string {
	if v == nil {
		return "null"
	}
	return v.String()
}

// Equal reports whether [a] and [b] are the same variant with equal
// contents. Containers are compared element by element.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Sequence:
		b, ok := b.(Sequence)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	case Mapping:
		b, ok := b.(Mapping)
		if !ok || len(a) != len(b) {
			return false
		}
		for k, av := range a {
			bv, ok := b[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		// scalars are comparable
		return a == b
	}
}
