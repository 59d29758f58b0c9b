// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package json

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

// DefaultMaxDepth bounds container nesting for Parse.
const DefaultMaxDepth = 64

// ParseOptions tune the scanner.
type ParseOptions struct {
	// MaxDepth is the deepest container nesting accepted. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

// Parse decodes [data] into a Value tree. It returns false if [data] is not
// a single well-formed document.
func Parse(data []byte) (Value, bool) {
	return Scan[Value](TreeBuilder{}, data, ParseOptions{})
}

// ParseWithOptions is Parse with explicit scanner options.
func ParseWithOptions(data []byte, opts ParseOptions) (Value, bool) {
	return Scan[Value](TreeBuilder{}, data, opts)
}

// Scan drives [b] over [data]. Every input byte is read as one code point,
// so bytes >= 0x80 inside strings become the matching Latin-1 characters.
// Any grammar violation, trailing content, or nesting deeper than
// [opts.MaxDepth] makes Scan return the zero V and false.
func Scan[V any](b Builder[V], data []byte, opts ParseOptions) (V, bool) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	s := &scanner[V]{
		b:        b,
		data:     data,
		maxDepth: maxDepth,
	}
	v, ok := s.value(0)
	if !ok {
		var zero V
		return zero, false
	}
	s.skipSpace()
	if s.pos != len(s.data) {
		var zero V
		return zero, false
	}
	return v, true
}

type scanner[V any] struct {
	b        Builder[V]
	data     []byte
	pos      int
	maxDepth int
}

func (s *scanner[V]) skipSpace() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *scanner[V]) peek() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	return s.data[s.pos], true
}

func (s *scanner[V]) value(depth int) (V, bool) {
	var zero V
	s.skipSpace()
	c, ok := s.peek()
	if !ok {
		return zero, false
	}
	switch {
	case c == '{':
		return s.mapping(depth + 1)
	case c == '[':
		return s.sequence(depth + 1)
	case c == '"':
		str, ok := s.text()
		if !ok {
			return zero, false
		}
		return s.b.Text(str), true
	case c == '-' || isDigit(c):
		return s.number()
	case s.literal("true"):
		return s.b.Bool(true), true
	case s.literal("false"):
		return s.b.Bool(false), true
	case s.literal("null"):
		return s.b.Null(), true
	default:
		return zero, false
	}
}

func (s *scanner[V]) literal(word string) bool {
	if !bytes.HasPrefix(s.data[s.pos:], []byte(word)) {
		return false
	}
	s.pos += len(word)
	return true
}

func (s *scanner[V]) sequence(depth int) (V, bool) {
	var zero V
	if depth > s.maxDepth {
		return zero, false
	}
	s.pos++ // '['
	seq := s.b.NewSequence()

	s.skipSpace()
	if c, ok := s.peek(); ok && c == ']' {
		s.pos++
		return seq, true
	}
	for {
		elem, ok := s.value(depth)
		if !ok {
			return zero, false
		}
		seq = s.b.Append(seq, elem)

		s.skipSpace()
		c, ok := s.peek()
		if !ok {
			return zero, false
		}
		s.pos++
		switch c {
		case ',':
		case ']':
			return seq, true
		default:
			return zero, false
		}
	}
}

func (s *scanner[V]) mapping(depth int) (V, bool) {
	var zero V
	if depth > s.maxDepth {
		return zero, false
	}
	s.pos++ // '{'
	m := s.b.NewMapping()

	s.skipSpace()
	if c, ok := s.peek(); ok && c == '}' {
		s.pos++
		return m, true
	}
	for {
		s.skipSpace()
		if c, ok := s.peek(); !ok || c != '"' {
			return zero, false
		}
		key, ok := s.text()
		if !ok {
			return zero, false
		}

		s.skipSpace()
		if c, ok := s.peek(); !ok || c != ':' {
			return zero, false
		}
		s.pos++

		elem, ok := s.value(depth)
		if !ok {
			return zero, false
		}
		m = s.b.Insert(m, key, elem)

		s.skipSpace()
		c, ok := s.peek()
		if !ok {
			return zero, false
		}
		s.pos++
		switch c {
		case ',':
		case '}':
			return m, true
		default:
			return zero, false
		}
	}
}

// text reads a quoted string starting at the opening quote.
func (s *scanner[V]) text() (string, bool) {
	s.pos++ // '"'
	var out strings.Builder
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		switch {
		case c == '"':
			return out.String(), true
		case c < 0x20:
			return "", false
		case c == '\\':
			r, ok := s.escape()
			if !ok {
				return "", false
			}
			out.WriteRune(r)
		default:
			out.WriteRune(rune(c))
		}
	}
	return "", false
}

// escape decodes the escape sequence following a backslash.
func (s *scanner[V]) escape() (rune, bool) {
	c, ok := s.peek()
	if !ok {
		return 0, false
	}
	s.pos++
	switch c {
	case '"', '\\', '/':
		return rune(c), true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'u':
	default:
		return 0, false
	}

	r, ok := s.hex4()
	if !ok {
		return 0, false
	}
	if !utf16.IsSurrogate(r) {
		return r, true
	}
	// a high surrogate must be followed by an escaped low surrogate
	if s.pos+1 >= len(s.data) || s.data[s.pos] != '\\' || s.data[s.pos+1] != 'u' {
		return 0, false
	}
	s.pos += 2
	low, ok := s.hex4()
	if !ok {
		return 0, false
	}
	combined := utf16.DecodeRune(r, low)
	if combined == unicode.ReplacementChar {
		return 0, false
	}
	return combined, true
}

func (s *scanner[V]) hex4() (rune, bool) {
	if s.pos+4 > len(s.data) {
		return 0, false
	}
	n, err := strconv.ParseUint(string(s.data[s.pos:s.pos+4]), 16, 16)
	if err != nil {
		return 0, false
	}
	s.pos += 4
	return rune(n), true
}

// number reads -?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func (s *scanner[V]) number() (V, bool) {
	var zero V
	start := s.pos
	negative := s.data[s.pos] == '-'
	if negative {
		s.pos++
	}

	if c, ok := s.peek(); !ok || !isDigit(c) {
		return zero, false
	}
	if s.data[s.pos] == '0' {
		s.pos++
	} else {
		s.digits()
	}

	integral := true
	if c, ok := s.peek(); ok && c == '.' {
		integral = false
		s.pos++
		if s.digits() == 0 {
			return zero, false
		}
	}
	if c, ok := s.peek(); ok && (c == 'e' || c == 'E') {
		integral = false
		s.pos++
		if c, ok := s.peek(); ok && (c == '+' || c == '-') {
			s.pos++
		}
		if s.digits() == 0 {
			return zero, false
		}
	}

	literal := string(s.data[start:s.pos])
	if integral {
		if !negative {
			if n, err := strconv.ParseUint(literal, 10, 64); err == nil {
				return s.b.UnsignedInt(n), true
			}
		}
		if n, err := strconv.ParseInt(literal, 10, 64); err == nil {
			return s.b.SignedInt(n), true
		}
	}
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsInf(f, 0) {
		return zero, false
	}
	return s.b.Float(f), true
}

func (s *scanner[V]) digits() int {
	n := 0
	for s.pos < len(s.data) && isDigit(s.data[s.pos]) {
		s.pos++
		n++
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
