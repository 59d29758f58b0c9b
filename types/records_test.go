// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionCallArgsLayout(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	args := &FunctionCallArgs{Contract: Address{0x11}, Input: []byte{1, 2, 3}}
	raw := args.Bytes()
	assert.Len(raw, AddressLen+4+3)
	assert.Equal(byte(0x11), raw[0])
	assert.Equal([]byte{3, 0, 0, 0}, raw[AddressLen:AddressLen+4])
	assert.Equal([]byte{1, 2, 3}, raw[AddressLen+4:])

	parsed, err := ParseFunctionCallArgs(raw)
	require.NoError(err)
	assert.Equal(args, parsed)

	_, err = ParseFunctionCallArgs(raw[:len(raw)-1])
	assert.ErrorIs(err, ErrInvalidRecordFormat)
	_, err = ParseFunctionCallArgs(append(raw, 0))
	assert.ErrorIs(err, ErrInvalidRecordFormat)
	_, err = ParseFunctionCallArgs(raw[:AddressLen])
	assert.ErrorIs(err, ErrInvalidRecordFormat)
}

func TestFunctionCallArgsHugeLength(t *testing.T) {
	raw := make([]byte, AddressLen+4)
	raw[AddressLen], raw[AddressLen+1], raw[AddressLen+2], raw[AddressLen+3] = 0xff, 0xff, 0xff, 0xff
	_, err := ParseFunctionCallArgs(raw)
	assert.ErrorIs(t, err, ErrInvalidRecordFormat)
}

func TestViewCallArgsLayout(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	args := &ViewCallArgs{
		Sender:  Address{1},
		Address: Address{2},
		Amount:  Word{31: 9},
		Input:   []byte{},
	}
	raw := args.Bytes()
	assert.Len(raw, 2*AddressLen+WordLen+4)
	assert.Equal(byte(2), raw[AddressLen])
	assert.Equal(byte(9), raw[2*AddressLen+WordLen-1])

	parsed, err := ParseViewCallArgs(raw)
	require.NoError(err)
	assert.Equal(args, parsed)

	_, err = ParseViewCallArgs(raw[:len(raw)-1])
	assert.ErrorIs(err, ErrInvalidRecordFormat)
}

func TestFixedRecords(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	storage := &GetStorageAtArgs{Address: Address{5}, Key: Hash{31: 1}}
	raw := storage.Bytes()
	assert.Len(raw, AddressLen+HashLen)
	parsedStorage, err := ParseGetStorageAtArgs(raw)
	require.NoError(err)
	assert.Equal(storage, parsedStorage)
	_, err = ParseGetStorageAtArgs(append(raw, 0))
	assert.ErrorIs(err, ErrInvalidRecordFormat)

	chain := &BeginChainArgs{ChainID: Word{31: 0x4e}}
	parsedChain, err := ParseBeginChainArgs(chain.Bytes())
	require.NoError(err)
	assert.Equal(chain, parsedChain)
	_, err = ParseBeginChainArgs(nil)
	assert.ErrorIs(err, ErrInvalidRecordFormat)

	block := &BeginBlockArgs{
		Hash:       Word{1},
		Coinbase:   Word{2},
		Timestamp:  Word{3},
		Number:     Word{4},
		Difficulty: Word{5},
		GasLimit:   Word{6},
	}
	raw = block.Bytes()
	assert.Len(raw, 6*WordLen)
	for i := 0; i < 6; i++ {
		assert.Equal(byte(i+1), raw[i*WordLen])
	}
	parsedBlock, err := ParseBeginBlockArgs(raw)
	require.NoError(err)
	assert.Equal(block, parsedBlock)
	_, err = ParseBeginBlockArgs(raw[1:])
	assert.ErrorIs(err, ErrInvalidRecordFormat)
}
