// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/binary"
	"errors"

	"github.com/ava-labs/avalanchego/utils/wrappers"
)

// Fixed-width fields are written as-is. Variable length byte fields are
// written as a little-endian uint32 length followed by the bytes.

const (
	getStorageAtArgsSize = AddressLen + HashLen
	beginChainArgsSize   = WordLen
	beginBlockArgsSize   = 6 * WordLen

	functionCallArgsMinSize = AddressLen + wrappers.IntLen
	viewCallArgsMinSize     = 2*AddressLen + WordLen + wrappers.IntLen
)

var ErrInvalidRecordFormat = errors.New("invalid record format")

// FunctionCallArgs are the arguments of a contract call.
type FunctionCallArgs struct {
	Contract Address
	Input    []byte
}

// ViewCallArgs are the arguments of a read-only call.
type ViewCallArgs struct {
	Sender  Address
	Address Address
	Amount  Word
	Input   []byte
}

// GetStorageAtArgs address a single storage slot.
type GetStorageAtArgs struct {
	Address Address
	Key     Hash
}

// BeginChainArgs start a new chain.
type BeginChainArgs struct {
	ChainID Word
}

// BeginBlockArgs describe the block being executed.
type BeginBlockArgs struct {
	// Hash of the current block.
	Hash Word
	// Coinbase is the block's beneficiary.
	Coinbase Word
	// Timestamp in seconds since the Unix epoch.
	Timestamp Word
	// Number of the block; genesis is zero.
	Number     Word
	Difficulty Word
	GasLimit   Word
}

func (a *FunctionCallArgs) Bytes() []byte {
	raw := make([]byte, functionCallArgsMinSize+len(a.Input))
	work := raw

	copy(work, a.Contract[:])
	work = work[AddressLen:]
	putBytes(work, a.Input)
	return raw
}

func ParseFunctionCallArgs(raw []byte) (*FunctionCallArgs, error) {
	if len(raw) < functionCallArgsMinSize {
		return nil, ErrInvalidRecordFormat
	}
	var a FunctionCallArgs
	work := raw

	copy(a.Contract[:], work[:AddressLen])
	work = work[AddressLen:]

	input, err := getBytes(work)
	if err != nil {
		return nil, err
	}
	a.Input = input
	return &a, nil
}

func (a *ViewCallArgs) Bytes() []byte {
	raw := make([]byte, viewCallArgsMinSize+len(a.Input))
	work := raw

	copy(work, a.Sender[:])
	work = work[AddressLen:]
	copy(work, a.Address[:])
	work = work[AddressLen:]
	copy(work, a.Amount[:])
	work = work[WordLen:]
	putBytes(work, a.Input)
	return raw
}

func ParseViewCallArgs(raw []byte) (*ViewCallArgs, error) {
	if len(raw) < viewCallArgsMinSize {
		return nil, ErrInvalidRecordFormat
	}
	var a ViewCallArgs
	work := raw

	copy(a.Sender[:], work[:AddressLen])
	work = work[AddressLen:]
	copy(a.Address[:], work[:AddressLen])
	work = work[AddressLen:]
	copy(a.Amount[:], work[:WordLen])
	work = work[WordLen:]

	input, err := getBytes(work)
	if err != nil {
		return nil, err
	}
	a.Input = input
	return &a, nil
}

func (a *GetStorageAtArgs) Bytes() []byte {
	raw := make([]byte, getStorageAtArgsSize)
	copy(raw, a.Address[:])
	copy(raw[AddressLen:], a.Key[:])
	return raw
}

func ParseGetStorageAtArgs(raw []byte) (*GetStorageAtArgs, error) {
	if len(raw) != getStorageAtArgsSize {
		return nil, ErrInvalidRecordFormat
	}
	var a GetStorageAtArgs
	copy(a.Address[:], raw[:AddressLen])
	copy(a.Key[:], raw[AddressLen:])
	return &a, nil
}

func (a *BeginChainArgs) Bytes() []byte {
	raw := make([]byte, beginChainArgsSize)
	copy(raw, a.ChainID[:])
	return raw
}

func ParseBeginChainArgs(raw []byte) (*BeginChainArgs, error) {
	if len(raw) != beginChainArgsSize {
		return nil, ErrInvalidRecordFormat
	}
	var a BeginChainArgs
	copy(a.ChainID[:], raw)
	return &a, nil
}

func (a *BeginBlockArgs) Bytes() []byte {
	raw := make([]byte, 0, beginBlockArgsSize)
	for _, w := range a.words() {
		raw = append(raw, w[:]...)
	}
	return raw
}

func ParseBeginBlockArgs(raw []byte) (*BeginBlockArgs, error) {
	if len(raw) != beginBlockArgsSize {
		return nil, ErrInvalidRecordFormat
	}
	var a BeginBlockArgs
	work := raw
	for _, w := range a.words() {
		copy(w[:], work[:WordLen])
		work = work[WordLen:]
	}
	return &a, nil
}

// words lists the fields of [a] in encoding order.
func (a *BeginBlockArgs) words() []*Word {
	return []*Word{&a.Hash, &a.Coinbase, &a.Timestamp, &a.Number, &a.Difficulty, &a.GasLimit}
}

// putBytes writes the length-prefixed [b] to [dst], which must have room
// for it.
func putBytes(dst []byte, b []byte) {
	binary.LittleEndian.PutUint32(dst, uint32(len(b)))
	copy(dst[wrappers.IntLen:], b)
}

// getBytes reads a length-prefixed byte field that must span the rest of
// [src] exactly.
func getBytes(src []byte) ([]byte, error) {
	if len(src) < wrappers.IntLen {
		return nil, ErrInvalidRecordFormat
	}
	size := binary.LittleEndian.Uint32(src)
	src = src[wrappers.IntLen:]
	if uint64(size) != uint64(len(src)) {
		return nil, ErrInvalidRecordFormat
	}
	b := make([]byte, size)
	copy(b, src)
	return b, nil
}
