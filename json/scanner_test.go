// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package json

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, doc string) Value {
	t.Helper()
	v, ok := Parse([]byte(doc))
	require.True(t, ok, "failed to parse %q", doc)
	return v
}

func TestParseDocument(t *testing.T) {
	assert := assert.New(t)

	v := mustParse(t, ` { "b" : 1, "a": [true, null, "x", -2, 0.5, {}] } `)
	expected := Mapping{
		"a": Sequence{Bool(true), Null{}, Text("x"), SignedInt(-2), Float(0.5), Mapping{}},
		"b": UnsignedInt(1),
	}
	assert.True(Equal(expected, v), "got %s", v)
	assert.Equal(`{"a": [true, null, "x", -2, 0.5, {}], "b": 1}`, v.String())
}

func TestParseKeyOrderIrrelevant(t *testing.T) {
	assert := assert.New(t)

	a := mustParse(t, `{"x": 1, "y": {"p": [1, 2], "q": "s"}, "z": false}`)
	b := mustParse(t, `{"z": false, "y": {"q": "s", "p": [1, 2]}, "x": 1}`)
	assert.True(Equal(a, b))
	assert.Equal(a.String(), b.String())

	c := mustParse(t, `{"z": false, "y": {"q": "s", "p": [2, 1]}, "x": 1}`)
	assert.False(Equal(a, c))
}

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		doc      string
		expected Value
	}{
		{"0", UnsignedInt(0)},
		{"18446744073709551615", UnsignedInt(math.MaxUint64)},
		{"-1", SignedInt(-1)},
		{"-0", SignedInt(0)},
		{"-9223372036854775808", SignedInt(math.MinInt64)},
		{"18446744073709551616", Float(18446744073709551616)},
		{"-9223372036854775809", Float(-9223372036854775809)},
		{"1.5", Float(1.5)},
		{"1e2", Float(100)},
		{"-2.5E-1", Float(-0.25)},
		{"10.0", Float(10)},
	}
	for _, test := range tests {
		t.Run(test.doc, func(t *testing.T) {
			v := mustParse(t, test.doc)
			assert.Equal(t, test.expected, v)
		})
	}
}

func TestParseStrings(t *testing.T) {
	tests := []struct {
		name     string
		doc      []byte
		expected Text
	}{
		{"plain", []byte(`"hello"`), "hello"},
		{"escapes", []byte(`"a\"b\\c\/d\b\f\n\r\t"`), "a\"b\\c/d\b\f\n\r\t"},
		{"unicode escape", []byte(`"\u00e9\u4e2d"`), "é中"},
		{"surrogate pair", []byte(`"\ud83d\ude00"`), "\U0001F600"},
		{"high bytes are latin-1", []byte{'"', 0xe9, 0xff, '"'}, "éÿ"},
		{"empty", []byte(`""`), ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v, ok := Parse(test.doc)
			require.True(t, ok)
			assert.Equal(t, test.expected, v)
		})
	}
}

func TestParseRejects(t *testing.T) {
	docs := []string{
		"",
		"   ",
		"{",
		"[",
		"[1,]",
		"[1 2]",
		`{"a":1,}`,
		`{"a" 1}`,
		`{a: 1}`,
		`{1: 2}`,
		"01",
		"1.",
		".5",
		"-",
		"1e",
		"1e+",
		"+1",
		"1e400",
		"tru",
		"nul",
		"True",
		"[1] x",
		`{} {}`,
		`"abc`,
		`"\x"`,
		`"\u12"`,
		`"\u12g4"`,
		`"\ud83d"`,
		`"\ud83dx"`,
		`"\ud83dA"`,
		"\"a\x01b\"",
		"\"tab\there\"",
	}
	for _, doc := range docs {
		v, ok := Parse([]byte(doc))
		assert.False(t, ok, "parsed %q", doc)
		assert.Nil(t, v)
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	v := mustParse(t, `{"a": 1, "a": "two"}`)
	assert.True(t, Equal(Mapping{"a": Text("two")}, v))
}

func TestParseDepthLimit(t *testing.T) {
	assert := assert.New(t)

	nested := func(depth int) []byte {
		return []byte(strings.Repeat("[", depth) + strings.Repeat("]", depth))
	}
	_, ok := Parse(nested(DefaultMaxDepth))
	assert.True(ok)
	_, ok = Parse(nested(DefaultMaxDepth + 1))
	assert.False(ok)
	_, ok = Parse(nested(100000))
	assert.False(ok)

	opts := ParseOptions{MaxDepth: 2}
	_, ok = ParseWithOptions([]byte(`{"a": [1]}`), opts)
	assert.True(ok)
	_, ok = ParseWithOptions([]byte(`{"a": [[1]]}`), opts)
	assert.False(ok)
}

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		`{"amount": "100", "receiver_id": "bob.near"}`,
		`[1, -2, 3.5, true, null]`,
		`"😀"`,
		`{"a": {"b": {"c": []}}}`,
	} {
		f.Add([]byte(seed))
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		v, ok := Parse(data)
		if !ok {
			return
		}
		// rendering is deterministic and accessors never panic
		if v.String() != v.String() {
			t.Fatal("unstable rendering")
		}
		_, _ = GetU128(v, "amount")
		_, _ = GetString(v, "receiver_id")
	})
}
