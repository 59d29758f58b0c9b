// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package json

var _ Builder[Value] = TreeBuilder{}

// Builder constructs documents of type V for the scanner. The scanner calls
// it bottom-up: leaves first, containers once their closing delimiter is
// read.
type Builder[V any] interface {
	NewSequence() V
	// Append adds [elem] to the end of [seq] and returns the updated sequence.
	Append(seq V, elem V) V
	NewMapping() V
	// Insert sets [key] in [m] and returns the updated mapping. A repeated key
	// replaces the earlier value.
	Insert(m V, key string, elem V) V

	Null() V
	Float(float64) V
	SignedInt(int64) V
	UnsignedInt(uint64) V
	Bool(bool) V
	Text(string) V
}

// TreeBuilder builds Value trees.
type TreeBuilder struct{}

func (TreeBuilder) NewSequence() Value { return Sequence{} }

func (TreeBuilder) Append(seq Value, elem Value) Value {
	return append(seq.(Sequence), elem)
}

func (TreeBuilder) NewMapping() Value { return Mapping{} }

func (TreeBuilder) Insert(m Value, key string, elem Value) Value {
	mapping := m.(Mapping)
	mapping[key] = elem
	return mapping
}

func (TreeBuilder) Null() Value                { return Null{} }
func (TreeBuilder) Float(v float64) Value      { return Float(v) }
func (TreeBuilder) SignedInt(v int64) Value    { return SignedInt(v) }
func (TreeBuilder) UnsignedInt(v uint64) Value { return UnsignedInt(v) }
func (TreeBuilder) Bool(v bool) Value          { return Bool(v) }
func (TreeBuilder) Text(v string) Value        { return Text(v) }
