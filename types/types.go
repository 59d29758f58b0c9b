// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/holiman/uint256"
)

const (
	AddressLen = 20
	HashLen    = 32
	WordLen    = 32
)

var errBadLength = errors.New("unexpected byte length")

// Address is a 160-bit account address.
type Address [AddressLen]byte

// Hash is a 256-bit hash or storage slot.
type Hash [HashLen]byte

// Word is a raw big-endian 256-bit integer.
type Word [WordLen]byte

// BytesToAddress copies [b] into an Address. [b] must be exactly AddressLen bytes.
func BytesToAddress(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLen {
		return a, errBadLength
	}
	copy(a[:], b)
	return a, nil
}

// BytesToHash copies [b] into a Hash. [b] must be exactly HashLen bytes.
func BytesToHash(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashLen {
		return h, errBadLength
	}
	copy(h[:], b)
	return h, nil
}

func (a Address) String() string { return BytesToHex(a[:]) }
func (h Hash) String() string    { return BytesToHex(h[:]) }
func (w Word) String() string    { return BytesToHex(w[:]) }

// Int interprets the word as a big-endian unsigned integer.
func (w Word) Int() *uint256.Int {
	return new(uint256.Int).SetBytes32(w[:])
}

// IsZero reports whether every byte of the word is zero.
func (w Word) IsZero() bool {
	return w == Word{}
}

// HexToAddress parses a hex address with an optional 0x prefix.
func HexToAddress(s string) (Address, error) {
	b, err := hexToBytes(s)
	if err != nil {
		return Address{}, err
	}
	return BytesToAddress(b)
}

// HexToHash parses a hex hash with an optional 0x prefix.
func HexToHash(s string) (Hash, error) {
	b, err := hexToBytes(s)
	if err != nil {
		return Hash{}, err
	}
	return BytesToHash(b)
}

func hexToBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return hex.DecodeString(s)
}
