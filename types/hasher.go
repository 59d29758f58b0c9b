// Copyright (C) 2019-2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"golang.org/x/crypto/sha3"
)

var (
	_ Hasher = LocalHasher{}
	_ Hasher = HostHasher(nil)

	// DefaultHasher is used by AccountToAddress. Hosts that provide their own
	// Keccak-256 replace it once at startup.
	DefaultHasher Hasher = LocalHasher{}
)

// Hasher computes Keccak-256 digests.
type Hasher interface {
	Keccak256(data []byte) Hash
}

// LocalHasher computes Keccak-256 in process.
type LocalHasher struct{}

func (LocalHasher) Keccak256(data []byte) Hash {
	var h Hash
	d := sha3.NewLegacyKeccak256()
	d.Write(data)
	copy(h[:], d.Sum(nil))
	return h
}

// HostHasher delegates hashing to a function supplied by the host
// environment.
type HostHasher func(data []byte) [HashLen]byte

func (f HostHasher) Keccak256(data []byte) Hash {
	return Hash(f(data))
}

// DeriveAddress maps an opaque account identifier to an address: the low
// 20 bytes of keccak256([id]).
func DeriveAddress(h Hasher, id []byte) Address {
	digest := h.Keccak256(id)
	var a Address
	copy(a[:], digest[HashLen-AddressLen:])
	return a
}

// AccountToAddress derives the address of [id] with DefaultHasher.
func AccountToAddress(id []byte) Address {
	return DeriveAddress(DefaultHasher, id)
}
