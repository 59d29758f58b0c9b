// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToHex(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0001ff10", BytesToHex([]byte{0, 1, 255, 16}))
	assert.Equal("", BytesToHex(nil))

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	encoded := BytesToHex(all)
	assert.Len(encoded, 2*len(all))
	decoded, err := hex.DecodeString(encoded)
	assert.NoError(err)
	assert.Equal(all, decoded)
	assert.Equal(encoded, string(bytes.ToLower([]byte(encoded))))
}

func TestU256ToBytes(t *testing.T) {
	max := new(uint256.Int).SetAllOne()
	tests := []struct {
		name  string
		value *uint256.Int
	}{
		{"zero", uint256.NewInt(0)},
		{"one", uint256.NewInt(1)},
		{"max", max},
		{"mixed", new(uint256.Int).Lsh(uint256.NewInt(0xabcdef), 100)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)
			word := U256ToBytes(test.value)
			got := new(big.Int).SetBytes(word[:])
			assert.Equal(0, got.Cmp(test.value.ToBig()))
			assert.True(test.value.Eq(word.Int()))
		})
	}

	one := U256ToBytes(uint256.NewInt(1))
	assert.Equal(t, byte(1), one[WordLen-1])
	assert.Equal(t, make([]byte, WordLen-1), one[:WordLen-1])
	assert.True(t, U256ToBytes(nil).IsZero())
}

func TestLogToBytes(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	log := &Log{
		Topics: []Hash{{1}, {2}},
		Data:   []byte{0xaa, 0xbb},
	}
	raw, err := LogToBytes(log)
	require.NoError(err)
	assert.Len(raw, 1+2*HashLen+2)
	assert.Equal(byte(2), raw[0])
	assert.Equal(byte(1), raw[1])
	assert.Equal(byte(2), raw[1+HashLen])
	assert.Equal([]byte{0xaa, 0xbb}, raw[1+2*HashLen:])

	empty, err := LogToBytes(&Log{})
	require.NoError(err)
	assert.Equal([]byte{0}, empty)
}

func TestLogToBytesTopicLimit(t *testing.T) {
	assert := assert.New(t)

	raw, err := LogToBytes(&Log{Topics: make([]Hash, MaxLogTopics)})
	assert.NoError(err)
	assert.Equal(byte(255), raw[0])

	_, err = LogToBytes(&Log{Topics: make([]Hash, MaxLogTopics+1)})
	assert.ErrorIs(err, ErrTooManyTopics)
}
