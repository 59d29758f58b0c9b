// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

var keccakVectors = []struct {
	input  string
	digest string
}{
	{"", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
	{"abc", "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
}

func TestLocalHasherVectors(t *testing.T) {
	for _, v := range keccakVectors {
		digest := LocalHasher{}.Keccak256([]byte(v.input))
		assert.Equal(t, v.digest, digest.String(), "input %q", v.input)
	}
}

func TestHostHasherMatchesLocal(t *testing.T) {
	calls := 0
	host := HostHasher(func(data []byte) [HashLen]byte {
		calls++
		return LocalHasher{}.Keccak256(data)
	})
	for _, v := range keccakVectors {
		assert.Equal(t, LocalHasher{}.Keccak256([]byte(v.input)), host.Keccak256([]byte(v.input)))
	}
	assert.Equal(t, len(keccakVectors), calls)
}

func TestDeriveAddress(t *testing.T) {
	assert := assert.New(t)

	digest, err := hex.DecodeString(keccakVectors[0].digest)
	assert.NoError(err)
	address := DeriveAddress(LocalHasher{}, nil)
	assert.Equal(digest[12:], address[:])
	assert.Equal("dcc703c0e500b653ca82273b7bfad8045d85a470", address.String())

	assert.Equal(DeriveAddress(LocalHasher{}, []byte("alice.near")), AccountToAddress([]byte("alice.near")))
	assert.NotEqual(AccountToAddress([]byte("alice.near")), AccountToAddress([]byte("bob.near")))
}
